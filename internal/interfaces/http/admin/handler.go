package admin

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	adminapp "github.com/mashatel/directory-services/api/internal/admin/application"
)

// Handler wires admin HTTP endpoints to application services.
type Handler struct {
	logger         *slog.Logger
	nurseryService adminapp.NurseryService
	offerService   adminapp.OfferService
	listingService adminapp.ListingService
	surveyService  adminapp.SurveyService
	contactService adminapp.ContactService
}

// Config provides dependencies for Handler.
type Config struct {
	Logger         *slog.Logger
	NurseryService adminapp.NurseryService
	OfferService   adminapp.OfferService
	ListingService adminapp.ListingService
	SurveyService  adminapp.SurveyService
	ContactService adminapp.ContactService
}

// NewHandler constructs an admin HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:         cfg.Logger,
		nurseryService: cfg.NurseryService,
		offerService:   cfg.OfferService,
		listingService: cfg.ListingService,
		surveyService:  cfg.SurveyService,
		contactService: cfg.ContactService,
	}
}

// Register mounts admin routes onto router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/nurseries", h.nurserySearchHandler())
	r.Get("/nurseries/{id}", h.nurseryDetailHandler())
	r.Post("/nurseries", h.nurseryCreateHandler())
	r.Put("/nurseries/{id}", h.nurseryUpdateHandler())
	r.Delete("/nurseries/{id}", h.nurseryDeleteHandler())

	r.Get("/offers", h.offerSearchHandler())
	r.Get("/offers/{id}", h.offerDetailHandler())
	r.Post("/offers", h.offerCreateHandler())
	r.Put("/offers/{id}", h.offerUpdateHandler())
	r.Delete("/offers/{id}", h.offerDeleteHandler())

	r.Get("/listings/{kind}", h.listingListHandler())
	r.Get("/listings/{kind}/{id}", h.listingDetailHandler())
	r.Post("/listings/{kind}", h.listingCreateHandler())
	r.Put("/listings/{kind}/{id}", h.listingUpdateHandler())
	r.Delete("/listings/{kind}/{id}", h.listingDeleteHandler())

	r.Get("/surveys", h.surveyListHandler())
	r.Get("/surveys/{id}", h.surveyDetailHandler())
	r.Patch("/surveys/{id}", h.surveyStatusHandler())
	r.Delete("/surveys/{id}", h.surveyDeleteHandler())

	r.Get("/contacts", h.contactListHandler())
}

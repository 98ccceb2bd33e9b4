package public

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	publicapp "github.com/mashatel/directory-services/api/internal/public/application"
	"go.mongodb.org/mongo-driver/mongo"
)

// Handler wires public HTTP endpoints to application services.
type Handler struct {
	logger               *slog.Logger
	nurseryQueries       publicapp.NurseryQueryService
	offerQueries         publicapp.OfferQueryService
	listingQueries       publicapp.ListingQueryService
	surveyCommands       publicapp.SurveyCommandService
	contactCommands      publicapp.ContactCommandService
	failedNotifications  *mongo.Collection
	location             *time.Location
	httpClient           *http.Client
	messengerEndpoint    string
	messengerDestination string
	adminContactBaseURL  string
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger               *slog.Logger
	NurseryQueries       publicapp.NurseryQueryService
	OfferQueries         publicapp.OfferQueryService
	ListingQueries       publicapp.ListingQueryService
	SurveyCommands       publicapp.SurveyCommandService
	ContactCommands      publicapp.ContactCommandService
	FailedNotifications  *mongo.Collection
	Location             *time.Location
	HTTPClient           *http.Client
	MessengerEndpoint    string
	MessengerDestination string
	AdminContactBaseURL  string
}

// NewHandler constructs a public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:               cfg.Logger,
		nurseryQueries:       cfg.NurseryQueries,
		offerQueries:         cfg.OfferQueries,
		listingQueries:       cfg.ListingQueries,
		surveyCommands:       cfg.SurveyCommands,
		contactCommands:      cfg.ContactCommands,
		failedNotifications:  cfg.FailedNotifications,
		location:             cfg.Location,
		httpClient:           cfg.HTTPClient,
		messengerEndpoint:    cfg.MessengerEndpoint,
		messengerDestination: cfg.MessengerDestination,
		adminContactBaseURL:  cfg.AdminContactBaseURL,
	}
}

// Register mounts all public routes onto the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/nurseries", h.nurseryListHandler())
	r.Get("/nurseries/{id}", h.nurseryDetailHandler())
	r.Get("/offers", h.offerListHandler())
	r.Get("/offers/{id}", h.offerDetailHandler())
	r.Get("/categories", h.listingHandler(listingCategoryKind))
	r.Get("/sponsors", h.listingHandler(listingSponsorKind))
	r.Get("/banners", h.listingHandler(listingBannerKind))
	r.Get("/premium-nurseries", h.listingHandler(listingPremiumKind))
	r.Post("/surveys", h.surveyCreateHandler())
	r.Post("/contact", h.contactCreateHandler())
}

package application

import (
	"context"

	"github.com/mashatel/directory-services/api/internal/public/domain"
)

// NurseryRepository is the read port for published nurseries. Find returns
// the full published set; filtering happens in the catalog query.
type NurseryRepository interface {
	Find(ctx context.Context) ([]domain.Nursery, error)
	FindByID(ctx context.Context, id string) (*domain.Nursery, error)
}

// OfferRepository is the read port for published offers.
type OfferRepository interface {
	Find(ctx context.Context) ([]domain.Offer, error)
	FindByID(ctx context.Context, id string) (*domain.Offer, error)
}

// ListingRepository reads the simple display collections.
type ListingRepository interface {
	FindByKind(ctx context.Context, kind domain.ListingKind) ([]domain.Listing, error)
}

// SurveyRepository persists public survey submissions.
type SurveyRepository interface {
	Create(ctx context.Context, survey *domain.Survey) error
}

// ContactRepository persists contact-form messages.
type ContactRepository interface {
	Create(ctx context.Context, message *domain.ContactMessage) error
}

// CatalogQuery carries the request parameters of one public listing call.
type CatalogQuery struct {
	Filter domain.Filter
	Sort   string
	Page   int
	Limit  int
}

// NurseryPage is a page of nurseries annotated with their resolved discounts
// keyed by nursery ID.
type NurseryPage struct {
	domain.PageResult[domain.Nursery]
	Discounts map[string]*float64
}

// NurseryQueryService provides the public nursery read use-cases.
type NurseryQueryService interface {
	List(ctx context.Context, query CatalogQuery) (NurseryPage, error)
	Detail(ctx context.Context, id string) (*domain.Nursery, *domain.Offer, error)
}

// OfferQueryService provides the public offer read use-cases.
type OfferQueryService interface {
	List(ctx context.Context, query OfferQuery) (domain.PageResult[domain.Offer], error)
	Detail(ctx context.Context, id string) (*domain.Offer, error)
}

// OfferQuery extends the catalog query with offer-specific switches.
type OfferQuery struct {
	CatalogQuery
	NurseryID  string
	Tag        string
	ActiveOnly bool
}

// ListingQueryService reads the ordered display collections.
type ListingQueryService interface {
	List(ctx context.Context, kind domain.ListingKind) ([]domain.Listing, error)
}

// SubmitSurveyCommand captures an anonymous survey submission.
type SubmitSurveyCommand struct {
	Name            string
	Phone           string
	Email           string
	City            string
	VisitFrequency  string
	PreferredPlants []string
	PurchaseChannel string
	Satisfaction    string
	HeardFrom       string
	Suggestions     string
}

// SurveyCommandService handles public survey writes.
type SurveyCommandService interface {
	Submit(ctx context.Context, cmd SubmitSurveyCommand) (*domain.Survey, error)
}

// SubmitContactCommand captures a contact-form submission.
type SubmitContactCommand struct {
	Name    string
	Phone   string
	Email   string
	Subject string
	Body    string
}

// ContactCommandService handles public contact-form writes.
type ContactCommandService interface {
	Submit(ctx context.Context, cmd SubmitContactCommand) (*domain.ContactMessage, error)
}

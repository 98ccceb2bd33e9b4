package application

import (
	"context"
	"time"

	admindomain "github.com/mashatel/directory-services/api/internal/admin/domain"
)

// NurseryRepository is the admin persistence port for nurseries.
type NurseryRepository interface {
	Find(ctx context.Context, filter NurseryFilter, paging Paging) ([]admindomain.Nursery, error)
	FindByID(ctx context.Context, id string) (*admindomain.Nursery, error)
	Create(ctx context.Context, nursery *admindomain.Nursery) error
	Update(ctx context.Context, nursery *admindomain.Nursery) error
	Delete(ctx context.Context, id string) error
}

// OfferRepository is the admin persistence port for offers.
type OfferRepository interface {
	Find(ctx context.Context, filter OfferFilter, paging Paging) ([]admindomain.Offer, error)
	FindByID(ctx context.Context, id string) (*admindomain.Offer, error)
	Create(ctx context.Context, offer *admindomain.Offer) error
	Update(ctx context.Context, offer *admindomain.Offer) error
	Delete(ctx context.Context, id string) error
}

// ListingRepository is the admin persistence port for display records.
type ListingRepository interface {
	Find(ctx context.Context, kind admindomain.ListingKind) ([]admindomain.Listing, error)
	FindByID(ctx context.Context, kind admindomain.ListingKind, id string) (*admindomain.Listing, error)
	Create(ctx context.Context, listing *admindomain.Listing) error
	Update(ctx context.Context, listing *admindomain.Listing) error
	Delete(ctx context.Context, kind admindomain.ListingKind, id string) error
}

// SurveyRepository is the admin persistence port for survey responses.
type SurveyRepository interface {
	Find(ctx context.Context, filter SurveyFilter, paging Paging) ([]admindomain.Survey, error)
	FindByID(ctx context.Context, id string) (*admindomain.Survey, error)
	UpdateStatus(ctx context.Context, id, status string) (*admindomain.Survey, error)
	Delete(ctx context.Context, id string) error
}

// ContactRepository reads stored contact-form messages.
type ContactRepository interface {
	Find(ctx context.Context, paging Paging) ([]admindomain.ContactMessage, error)
}

// NurseryFilter expresses admin search criteria for nurseries.
type NurseryFilter struct {
	Region   string
	Category string
	Keyword  string
}

// OfferFilter expresses admin search criteria for offers.
type OfferFilter struct {
	NurseryID string
	Tag       string
	Keyword   string
}

// SurveyFilter expresses admin search criteria for survey responses.
type SurveyFilter struct {
	Keyword string
	Status  string
	From    *time.Time
	To      *time.Time
}

// Paging controls admin list pagination.
type Paging struct {
	Page  int
	Limit int
}

// UpsertNurseryCommand carries validated nursery fields.
type UpsertNurseryCommand struct {
	Name        string
	Description string
	Categories  admindomain.CategoryList
	Region      admindomain.Region
	City        string
	District    string
	Services    admindomain.ServiceTypeList
	Phone       string
	WhatsApp    string
	Image       admindomain.URL
	Featured    bool
	Published   bool
}

// UpsertOfferCommand carries validated offer fields.
type UpsertOfferCommand struct {
	Title       string
	Description string
	NurseryID   string
	Discount    *admindomain.Discount
	EndDate     string
	Tags        []string
	Highlighted bool
	Published   bool
}

// UpsertListingCommand carries validated display-record fields.
type UpsertListingCommand struct {
	Kind      admindomain.ListingKind
	Title     string
	Slug      string
	Image     admindomain.URL
	Link      admindomain.URL
	NurseryID string
	Order     admindomain.DisplayOrder
	Published bool
}

// NurseryService describes admin nursery use-cases.
type NurseryService interface {
	List(ctx context.Context, filter NurseryFilter, paging Paging) ([]admindomain.Nursery, error)
	Detail(ctx context.Context, id string) (*admindomain.Nursery, error)
	Create(ctx context.Context, cmd UpsertNurseryCommand) (*admindomain.Nursery, error)
	Update(ctx context.Context, id string, cmd UpsertNurseryCommand) (*admindomain.Nursery, error)
	Delete(ctx context.Context, id string) error
}

// OfferService describes admin offer use-cases.
type OfferService interface {
	List(ctx context.Context, filter OfferFilter, paging Paging) ([]admindomain.Offer, error)
	Detail(ctx context.Context, id string) (*admindomain.Offer, error)
	Create(ctx context.Context, cmd UpsertOfferCommand) (*admindomain.Offer, error)
	Update(ctx context.Context, id string, cmd UpsertOfferCommand) (*admindomain.Offer, error)
	Delete(ctx context.Context, id string) error
}

// ListingService describes admin display-record use-cases.
type ListingService interface {
	List(ctx context.Context, kind admindomain.ListingKind) ([]admindomain.Listing, error)
	Detail(ctx context.Context, kind admindomain.ListingKind, id string) (*admindomain.Listing, error)
	Create(ctx context.Context, cmd UpsertListingCommand) (*admindomain.Listing, error)
	Update(ctx context.Context, id string, cmd UpsertListingCommand) (*admindomain.Listing, error)
	Delete(ctx context.Context, kind admindomain.ListingKind, id string) error
}

// SurveyService describes admin survey moderation use-cases.
type SurveyService interface {
	List(ctx context.Context, filter SurveyFilter, paging Paging) ([]admindomain.Survey, error)
	Detail(ctx context.Context, id string) (*admindomain.Survey, error)
	SetStatus(ctx context.Context, id, status string) (*admindomain.Survey, error)
	Delete(ctx context.Context, id string) error
}

// ContactService lists contact-form messages for the dashboard.
type ContactService interface {
	List(ctx context.Context, paging Paging) ([]admindomain.ContactMessage, error)
}

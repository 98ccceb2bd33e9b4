package admin

import (
	"time"

	admindomain "github.com/mashatel/directory-services/api/internal/admin/domain"
)

type adminNurseryRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Categories  []string `json:"categories"`
	Region      string   `json:"region"`
	City        string   `json:"city"`
	District    string   `json:"district"`
	Services    []string `json:"services"`
	Phone       string   `json:"phone"`
	WhatsApp    string   `json:"whatsapp"`
	Image       string   `json:"image"`
	Featured    bool     `json:"featured"`
	Published   *bool    `json:"published"`
}

type adminNurseryResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Categories  []string   `json:"categories,omitempty"`
	Region      string     `json:"region,omitempty"`
	City        string     `json:"city,omitempty"`
	District    string     `json:"district,omitempty"`
	Services    []string   `json:"services,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	WhatsApp    string     `json:"whatsapp,omitempty"`
	Image       string     `json:"image,omitempty"`
	Featured    bool       `json:"featured"`
	Published   bool       `json:"published"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

type adminOfferRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	NurseryID   string   `json:"nurseryId"`
	Discount    *float64 `json:"discount"`
	EndDate     string   `json:"endDate"`
	Tags        []string `json:"tags"`
	Highlighted bool     `json:"highlighted"`
	Published   *bool    `json:"published"`
}

type adminOfferResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	NurseryID   string     `json:"nurseryId,omitempty"`
	Discount    *float64   `json:"discount,omitempty"`
	EndDate     string     `json:"endDate,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	Highlighted bool       `json:"highlighted"`
	Published   bool       `json:"published"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

type adminListingRequest struct {
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Image     string `json:"image"`
	Link      string `json:"link"`
	NurseryID string `json:"nurseryId"`
	Order     int    `json:"order"`
	Published *bool  `json:"published"`
}

type adminListingResponse struct {
	ID        string     `json:"id"`
	Kind      string     `json:"kind"`
	Title     string     `json:"title"`
	Slug      string     `json:"slug,omitempty"`
	Image     string     `json:"image,omitempty"`
	Link      string     `json:"link,omitempty"`
	NurseryID string     `json:"nurseryId,omitempty"`
	Order     int        `json:"order"`
	Published bool       `json:"published"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type adminSurveyResponse struct {
	ID              string     `json:"id"`
	Status          string     `json:"status"`
	Name            string     `json:"name,omitempty"`
	Phone           string     `json:"phone,omitempty"`
	Email           string     `json:"email,omitempty"`
	City            string     `json:"city,omitempty"`
	VisitFrequency  string     `json:"visitFrequency,omitempty"`
	PreferredPlants []string   `json:"preferredPlants,omitempty"`
	PurchaseChannel string     `json:"purchaseChannel,omitempty"`
	Satisfaction    string     `json:"satisfaction,omitempty"`
	HeardFrom       string     `json:"heardFrom,omitempty"`
	Suggestions     string     `json:"suggestions,omitempty"`
	SubmittedAt     *time.Time `json:"submittedAt,omitempty"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
}

type adminSurveyStatusRequest struct {
	Status string `json:"status"`
}

type adminContactResponse struct {
	ID        string     `json:"id"`
	Reference string     `json:"reference,omitempty"`
	Name      string     `json:"name,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	Email     string     `json:"email,omitempty"`
	Subject   string     `json:"subject,omitempty"`
	Body      string     `json:"body,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func adminNurseryDomainToResponse(nursery admindomain.Nursery) adminNurseryResponse {
	return adminNurseryResponse{
		ID:          nursery.ID,
		Name:        nursery.Name,
		Description: nursery.Description,
		Categories:  nursery.Categories.Strings(),
		Region:      nursery.Region.String(),
		City:        nursery.City,
		District:    nursery.District,
		Services:    nursery.Services.Strings(),
		Phone:       nursery.Phone,
		WhatsApp:    nursery.WhatsApp,
		Image:       nursery.Image.String(),
		Featured:    nursery.Featured,
		Published:   nursery.Published,
		CreatedAt:   timePtr(nursery.CreatedAt),
		UpdatedAt:   timePtr(nursery.UpdatedAt),
	}
}

func adminOfferDomainToResponse(offer admindomain.Offer) adminOfferResponse {
	var discount *float64
	if offer.Discount != nil {
		value := offer.Discount.Float64()
		discount = &value
	}
	return adminOfferResponse{
		ID:          offer.ID,
		Title:       offer.Title,
		Description: offer.Description,
		NurseryID:   offer.NurseryID,
		Discount:    discount,
		EndDate:     offer.EndDate,
		Tags:        append([]string{}, offer.Tags...),
		Highlighted: offer.Highlighted,
		Published:   offer.Published,
		CreatedAt:   timePtr(offer.CreatedAt),
		UpdatedAt:   timePtr(offer.UpdatedAt),
	}
}

func adminListingDomainToResponse(listing admindomain.Listing) adminListingResponse {
	return adminListingResponse{
		ID:        listing.ID,
		Kind:      listing.Kind.String(),
		Title:     listing.Title,
		Slug:      listing.Slug,
		Image:     listing.Image.String(),
		Link:      listing.Link.String(),
		NurseryID: listing.NurseryID,
		Order:     listing.Order.Int(),
		Published: listing.Published,
		CreatedAt: timePtr(listing.CreatedAt),
		UpdatedAt: timePtr(listing.UpdatedAt),
	}
}

func adminSurveyDomainToResponse(survey admindomain.Survey) adminSurveyResponse {
	return adminSurveyResponse{
		ID:              survey.ID,
		Status:          survey.Status,
		Name:            survey.Name,
		Phone:           survey.Phone,
		Email:           survey.Email.String(),
		City:            survey.City,
		VisitFrequency:  survey.VisitFrequency,
		PreferredPlants: append([]string{}, survey.PreferredPlants...),
		PurchaseChannel: survey.PurchaseChannel,
		Satisfaction:    survey.Satisfaction,
		HeardFrom:       survey.HeardFrom,
		Suggestions:     survey.Suggestions,
		SubmittedAt:     timePtr(survey.SubmittedAt),
		UpdatedAt:       timePtr(survey.UpdatedAt),
	}
}

func adminContactDomainToResponse(message admindomain.ContactMessage) adminContactResponse {
	return adminContactResponse{
		ID:        message.ID,
		Reference: message.Reference,
		Name:      message.Name,
		Phone:     message.Phone,
		Email:     message.Email,
		Subject:   message.Subject,
		Body:      message.Body,
		CreatedAt: timePtr(message.CreatedAt),
	}
}

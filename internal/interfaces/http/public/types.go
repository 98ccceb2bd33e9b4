package public

import (
	"strings"
	"time"

	publicdomain "github.com/mashatel/directory-services/api/internal/public/domain"
)

type nurserySummaryResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Categories  []string `json:"categories,omitempty"`
	Region      string   `json:"region,omitempty"`
	City        string   `json:"city,omitempty"`
	District    string   `json:"district,omitempty"`
	Location    string   `json:"location,omitempty"`
	Image       string   `json:"image,omitempty"`
	Featured    bool     `json:"featured"`
	Discount    *float64 `json:"discount,omitempty"`
}

type nurseryDetailResponse struct {
	nurserySummaryResponse
	Services    []string       `json:"services,omitempty"`
	Phone       string         `json:"phone,omitempty"`
	WhatsApp    string         `json:"whatsapp,omitempty"`
	ActiveOffer *offerResponse `json:"activeOffer,omitempty"`
	CreatedAt   *time.Time     `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time     `json:"updatedAt,omitempty"`
}

type offerResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	NurseryID   string   `json:"nurseryId,omitempty"`
	Discount    *float64 `json:"discount,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Highlighted bool     `json:"highlighted"`
	Active      bool     `json:"active"`
}

type listingResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Slug      string `json:"slug,omitempty"`
	Image     string `json:"image,omitempty"`
	Link      string `json:"link,omitempty"`
	NurseryID string `json:"nurseryId,omitempty"`
	Order     int    `json:"order"`
}

type pageMetaResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int   `json:"total"`
	TotalPages int   `json:"totalPages"`
	Pages      []int `json:"pages"`
}

type nurseryListResponse struct {
	Items []nurserySummaryResponse `json:"items"`
	pageMetaResponse
}

type offerListResponse struct {
	Items []offerResponse `json:"items"`
	pageMetaResponse
}

type listingListResponse struct {
	Items []listingResponse `json:"items"`
}

type surveyCreatedResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type contactCreatedResponse struct {
	ID        string `json:"id"`
	Reference string `json:"reference"`
}

func buildNurserySummaryResponse(nursery publicdomain.Nursery, discount *float64) nurserySummaryResponse {
	return nurserySummaryResponse{
		ID:          nursery.ID,
		Name:        nursery.Name,
		Description: strings.TrimSpace(nursery.Description),
		Categories:  append([]string{}, nursery.Categories...),
		Region:      nursery.Location.Region,
		City:        nursery.Location.City,
		District:    nursery.Location.District,
		Location:    nursery.Location.String(),
		Image:       nursery.Image,
		Featured:    nursery.Featured,
		Discount:    discount,
	}
}

func buildNurseryDetailResponse(nursery publicdomain.Nursery, activeOffer *publicdomain.Offer, now time.Time) nurseryDetailResponse {
	detail := nurseryDetailResponse{
		nurserySummaryResponse: buildNurserySummaryResponse(nursery, nil),
		Services:               append([]string{}, nursery.Services...),
		Phone:                  nursery.Phone,
		WhatsApp:               nursery.WhatsApp,
	}
	if activeOffer != nil {
		offer := buildOfferResponse(*activeOffer, now)
		detail.ActiveOffer = &offer
		detail.Discount = activeOffer.Discount
	}
	if !nursery.CreatedAt.IsZero() {
		created := nursery.CreatedAt
		detail.CreatedAt = &created
	}
	if !nursery.UpdatedAt.IsZero() {
		updated := nursery.UpdatedAt
		detail.UpdatedAt = &updated
	}
	return detail
}

func buildOfferResponse(offer publicdomain.Offer, now time.Time) offerResponse {
	return offerResponse{
		ID:          offer.ID,
		Title:       offer.Title,
		Description: strings.TrimSpace(offer.Description),
		NurseryID:   offer.NurseryID,
		Discount:    offer.Discount,
		EndDate:     offer.EndDate,
		Tags:        append([]string{}, offer.Tags...),
		Highlighted: offer.Highlighted,
		Active:      publicdomain.OfferActive(offer, now),
	}
}

func buildListingResponse(listing publicdomain.Listing) listingResponse {
	return listingResponse{
		ID:        listing.ID,
		Title:     listing.Title,
		Slug:      listing.Slug,
		Image:     listing.Image,
		Link:      listing.Link,
		NurseryID: listing.NurseryID,
		Order:     listing.Order,
	}
}

func buildPageMeta(page, limit, total, totalPages int, pages []int) pageMetaResponse {
	if pages == nil {
		pages = []int{}
	}
	return pageMetaResponse{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		Pages:      pages,
	}
}

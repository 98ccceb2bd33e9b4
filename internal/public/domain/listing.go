package domain

import "time"

// ListingKind discriminates the simple display collections shown on the
// public site alongside the catalog.
type ListingKind string

const (
	ListingCategory ListingKind = "category"
	ListingSponsor  ListingKind = "sponsor"
	ListingBanner   ListingKind = "banner"
	ListingPremium  ListingKind = "premium"
)

// Listing is a display record: a category tile, sponsor logo, promotional
// banner or premium nursery placement. Ordered by Order ascending, ties kept
// in insertion order.
type Listing struct {
	ID        string
	Kind      ListingKind
	Title     string
	Slug      string
	Image     string
	Link      string
	NurseryID string
	Order     int
	Published bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

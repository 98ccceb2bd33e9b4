package domain

import (
	"fmt"
	"strings"
	"time"
)

// ListingKind mirrors the public display-record kinds.
type ListingKind string

const (
	ListingCategory ListingKind = "category"
	ListingSponsor  ListingKind = "sponsor"
	ListingBanner   ListingKind = "banner"
	ListingPremium  ListingKind = "premium"
)

// NewListingKind validates a kind supplied through the admin API.
func NewListingKind(value string) (ListingKind, error) {
	switch ListingKind(strings.ToLower(strings.TrimSpace(value))) {
	case ListingCategory:
		return ListingCategory, nil
	case ListingSponsor:
		return ListingSponsor, nil
	case ListingBanner:
		return ListingBanner, nil
	case ListingPremium:
		return ListingPremium, nil
	default:
		return "", fmt.Errorf("invalid listing kind: %s", value)
	}
}

func (k ListingKind) String() string {
	return string(k)
}

// Listing is the admin aggregate for a display record.
type Listing struct {
	ID        string
	Kind      ListingKind
	Title     string
	Slug      string
	Image     URL
	Link      URL
	NurseryID string
	Order     DisplayOrder
	Published bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

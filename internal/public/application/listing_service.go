package application

import (
	"context"

	"github.com/mashatel/directory-services/api/internal/public/domain"
)

type listingQueryService struct {
	listings ListingRepository
}

// NewListingQueryService creates a new listing query service.
func NewListingQueryService(listings ListingRepository) ListingQueryService {
	return &listingQueryService{listings: listings}
}

func (s *listingQueryService) List(ctx context.Context, kind domain.ListingKind) ([]domain.Listing, error) {
	return s.listings.FindByKind(ctx, kind)
}

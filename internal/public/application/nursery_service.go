package application

import (
	"context"
	"log/slog"
	"time"

	"github.com/mashatel/directory-services/api/internal/public/domain"
)

// nurseryQueryService composes the repositories with the catalog query
// engine. A failed offer fetch degrades to "no discounts" instead of failing
// the listing.
type nurseryQueryService struct {
	nurseries NurseryRepository
	offers    OfferRepository
	logger    *slog.Logger
}

// NewNurseryQueryService creates a new nursery query service.
func NewNurseryQueryService(nurseries NurseryRepository, offers OfferRepository, logger *slog.Logger) NurseryQueryService {
	return &nurseryQueryService{nurseries: nurseries, offers: offers, logger: logger}
}

func (s *nurseryQueryService) List(ctx context.Context, query CatalogQuery) (NurseryPage, error) {
	nurseries, err := s.nurseries.Find(ctx)
	if err != nil {
		return NurseryPage{}, err
	}
	offers := s.fetchOffers(ctx)

	result := domain.RunQuery(nurseries, offers, domain.Query{
		Filter:   query.Filter,
		Sort:     query.Sort,
		Page:     query.Page,
		PageSize: query.Limit,
	})

	now := time.Now()
	discounts := make(map[string]*float64, len(result.Items))
	for _, nursery := range result.Items {
		discounts[nursery.ID] = domain.ResolveDiscount(nursery.ID, offers, now)
	}

	return NurseryPage{PageResult: result, Discounts: discounts}, nil
}

func (s *nurseryQueryService) Detail(ctx context.Context, id string) (*domain.Nursery, *domain.Offer, error) {
	nursery, err := s.nurseries.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	offers := s.fetchOffers(ctx)
	return nursery, domain.ResolveActiveOffer(nursery.ID, offers, time.Now()), nil
}

func (s *nurseryQueryService) fetchOffers(ctx context.Context) []domain.Offer {
	offers, err := s.offers.Find(ctx)
	if err != nil {
		s.logger.Warn("offer fetch failed, rendering without discounts", "error", err)
		return nil
	}
	return offers
}

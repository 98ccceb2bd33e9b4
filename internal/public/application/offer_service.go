package application

import (
	"context"
	"time"

	"github.com/mashatel/directory-services/api/internal/public/domain"
)

type offerQueryService struct {
	offers OfferRepository
}

// NewOfferQueryService creates a new offer query service.
func NewOfferQueryService(offers OfferRepository) OfferQueryService {
	return &offerQueryService{offers: offers}
}

func (s *offerQueryService) List(ctx context.Context, query OfferQuery) (domain.PageResult[domain.Offer], error) {
	offers, err := s.offers.Find(ctx)
	if err != nil {
		return domain.PageResult[domain.Offer]{}, err
	}

	now := time.Now()
	scoped := make([]domain.Offer, 0, len(offers))
	for _, offer := range offers {
		if query.NurseryID != "" && offer.NurseryID != query.NurseryID {
			continue
		}
		if query.Tag != "" && !hasTag(offer.Tags, query.Tag) {
			continue
		}
		if query.ActiveOnly && !domain.OfferActive(offer, now) {
			continue
		}
		scoped = append(scoped, offer)
	}

	return domain.RunQuery(scoped, nil, domain.Query{
		Filter:   query.Filter,
		Sort:     query.Sort,
		Page:     query.Page,
		PageSize: query.Limit,
		Now:      now,
	}), nil
}

func (s *offerQueryService) Detail(ctx context.Context, id string) (*domain.Offer, error) {
	return s.offers.FindByID(ctx, id)
}

func hasTag(tags []string, want string) bool {
	for _, tag := range tags {
		if tag == want {
			return true
		}
	}
	return false
}

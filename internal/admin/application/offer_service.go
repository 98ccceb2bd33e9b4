package application

import (
	"context"
	"errors"

	admindomain "github.com/mashatel/directory-services/api/internal/admin/domain"
	publicdomain "github.com/mashatel/directory-services/api/internal/public/domain"
)

type offerService struct {
	repo OfferRepository
}

// NewOfferService creates the admin offer service.
func NewOfferService(repo OfferRepository) OfferService {
	return &offerService{repo: repo}
}

func (s *offerService) List(ctx context.Context, filter OfferFilter, paging Paging) ([]admindomain.Offer, error) {
	return s.repo.Find(ctx, filter, paging)
}

func (s *offerService) Detail(ctx context.Context, id string) (*admindomain.Offer, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *offerService) Create(ctx context.Context, cmd UpsertOfferCommand) (*admindomain.Offer, error) {
	offer, err := buildOfferFromCommand("", cmd)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, offer); err != nil {
		return nil, err
	}
	return offer, nil
}

func (s *offerService) Update(ctx context.Context, id string, cmd UpsertOfferCommand) (*admindomain.Offer, error) {
	offer, err := buildOfferFromCommand(id, cmd)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, offer); err != nil {
		return nil, err
	}
	return offer, nil
}

func (s *offerService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func buildOfferFromCommand(id string, cmd UpsertOfferCommand) (*admindomain.Offer, error) {
	// A blank end date is allowed (the offer just never resolves as active),
	// but a non-blank one the resolver cannot read is an input mistake worth
	// rejecting at the dashboard.
	if cmd.EndDate != "" {
		if _, ok := publicdomain.ParseOfferDate(cmd.EndDate); !ok {
			return nil, errors.New("end date must be YYYY-MM-DD or an Arabic long-form date")
		}
	}
	return &admindomain.Offer{
		ID:          id,
		Title:       cmd.Title,
		Description: cmd.Description,
		NurseryID:   cmd.NurseryID,
		Discount:    cmd.Discount,
		EndDate:     cmd.EndDate,
		Tags:        append([]string{}, cmd.Tags...),
		Highlighted: cmd.Highlighted,
		Published:   cmd.Published,
	}, nil
}

package application

import (
	"context"

	admindomain "github.com/mashatel/directory-services/api/internal/admin/domain"
)

type listingService struct {
	repo ListingRepository
}

// NewListingService creates the admin display-record service.
func NewListingService(repo ListingRepository) ListingService {
	return &listingService{repo: repo}
}

func (s *listingService) List(ctx context.Context, kind admindomain.ListingKind) ([]admindomain.Listing, error) {
	return s.repo.Find(ctx, kind)
}

func (s *listingService) Detail(ctx context.Context, kind admindomain.ListingKind, id string) (*admindomain.Listing, error) {
	return s.repo.FindByID(ctx, kind, id)
}

func (s *listingService) Create(ctx context.Context, cmd UpsertListingCommand) (*admindomain.Listing, error) {
	listing := buildListingFromCommand("", cmd)
	if err := s.repo.Create(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

func (s *listingService) Update(ctx context.Context, id string, cmd UpsertListingCommand) (*admindomain.Listing, error) {
	listing := buildListingFromCommand(id, cmd)
	if err := s.repo.Update(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

func (s *listingService) Delete(ctx context.Context, kind admindomain.ListingKind, id string) error {
	return s.repo.Delete(ctx, kind, id)
}

func buildListingFromCommand(id string, cmd UpsertListingCommand) *admindomain.Listing {
	return &admindomain.Listing{
		ID:        id,
		Kind:      cmd.Kind,
		Title:     cmd.Title,
		Slug:      cmd.Slug,
		Image:     cmd.Image,
		Link:      cmd.Link,
		NurseryID: cmd.NurseryID,
		Order:     cmd.Order,
		Published: cmd.Published,
	}
}

package application

import (
	"context"

	admindomain "github.com/mashatel/directory-services/api/internal/admin/domain"
)

type nurseryService struct {
	repo NurseryRepository
}

// NewNurseryService creates the admin nursery service.
func NewNurseryService(repo NurseryRepository) NurseryService {
	return &nurseryService{repo: repo}
}

func (s *nurseryService) List(ctx context.Context, filter NurseryFilter, paging Paging) ([]admindomain.Nursery, error) {
	return s.repo.Find(ctx, filter, paging)
}

func (s *nurseryService) Detail(ctx context.Context, id string) (*admindomain.Nursery, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *nurseryService) Create(ctx context.Context, cmd UpsertNurseryCommand) (*admindomain.Nursery, error) {
	nursery := buildNurseryFromCommand("", cmd)
	if err := s.repo.Create(ctx, nursery); err != nil {
		return nil, err
	}
	return nursery, nil
}

func (s *nurseryService) Update(ctx context.Context, id string, cmd UpsertNurseryCommand) (*admindomain.Nursery, error) {
	nursery := buildNurseryFromCommand(id, cmd)
	if err := s.repo.Update(ctx, nursery); err != nil {
		return nil, err
	}
	return nursery, nil
}

func (s *nurseryService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func buildNurseryFromCommand(id string, cmd UpsertNurseryCommand) *admindomain.Nursery {
	return &admindomain.Nursery{
		ID:          id,
		Name:        cmd.Name,
		Description: cmd.Description,
		Categories:  append(admindomain.CategoryList{}, cmd.Categories...),
		Region:      cmd.Region,
		City:        cmd.City,
		District:    cmd.District,
		Services:    append(admindomain.ServiceTypeList{}, cmd.Services...),
		Phone:       cmd.Phone,
		WhatsApp:    cmd.WhatsApp,
		Image:       cmd.Image,
		Featured:    cmd.Featured,
		Published:   cmd.Published,
	}
}

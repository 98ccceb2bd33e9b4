package application

import (
	"context"

	admindomain "github.com/mashatel/directory-services/api/internal/admin/domain"
	publicdomain "github.com/mashatel/directory-services/api/internal/public/domain"
)

type surveyService struct {
	repo SurveyRepository
}

// NewSurveyService creates the admin survey moderation service.
func NewSurveyService(repo SurveyRepository) SurveyService {
	return &surveyService{repo: repo}
}

func (s *surveyService) List(ctx context.Context, filter SurveyFilter, paging Paging) ([]admindomain.Survey, error) {
	if filter.Status != "" {
		filter.Status = publicdomain.NormalizeSurveyStatus(filter.Status)
	}
	return s.repo.Find(ctx, filter, paging)
}

func (s *surveyService) Detail(ctx context.Context, id string) (*admindomain.Survey, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *surveyService) SetStatus(ctx context.Context, id, status string) (*admindomain.Survey, error) {
	return s.repo.UpdateStatus(ctx, id, publicdomain.NormalizeSurveyStatus(status))
}

func (s *surveyService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

type contactService struct {
	repo ContactRepository
}

// NewContactService creates the admin contact-message service.
func NewContactService(repo ContactRepository) ContactService {
	return &contactService{repo: repo}
}

func (s *contactService) List(ctx context.Context, paging Paging) ([]admindomain.ContactMessage, error) {
	return s.repo.Find(ctx, paging)
}

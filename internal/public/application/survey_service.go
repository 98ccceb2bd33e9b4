package application

import (
	"context"
	"time"

	"github.com/mashatel/directory-services/api/internal/public/domain"
)

type surveyCommandService struct {
	repo SurveyRepository
}

// NewSurveyCommandService creates a new survey command service.
func NewSurveyCommandService(repo SurveyRepository) SurveyCommandService {
	return &surveyCommandService{repo: repo}
}

func (s *surveyCommandService) Submit(ctx context.Context, cmd SubmitSurveyCommand) (*domain.Survey, error) {
	now := time.Now().UTC()
	survey := &domain.Survey{
		Status:          domain.SurveyStatusActive,
		Name:            cmd.Name,
		Phone:           cmd.Phone,
		Email:           cmd.Email,
		City:            cmd.City,
		VisitFrequency:  cmd.VisitFrequency,
		PreferredPlants: append([]string{}, cmd.PreferredPlants...),
		PurchaseChannel: cmd.PurchaseChannel,
		Satisfaction:    cmd.Satisfaction,
		HeardFrom:       cmd.HeardFrom,
		Suggestions:     cmd.Suggestions,
		SubmittedAt:     now,
		UpdatedAt:       now,
	}
	return survey, s.repo.Create(ctx, survey)
}

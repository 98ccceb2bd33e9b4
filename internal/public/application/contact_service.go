package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mashatel/directory-services/api/internal/public/domain"
)

type contactCommandService struct {
	repo ContactRepository
}

// NewContactCommandService creates a new contact command service.
func NewContactCommandService(repo ContactRepository) ContactCommandService {
	return &contactCommandService{repo: repo}
}

func (s *contactCommandService) Submit(ctx context.Context, cmd SubmitContactCommand) (*domain.ContactMessage, error) {
	message := &domain.ContactMessage{
		Reference: uuid.NewString(),
		Name:      cmd.Name,
		Phone:     cmd.Phone,
		Email:     cmd.Email,
		Subject:   cmd.Subject,
		Body:      cmd.Body,
		CreatedAt: time.Now().UTC(),
	}
	return message, s.repo.Create(ctx, message)
}

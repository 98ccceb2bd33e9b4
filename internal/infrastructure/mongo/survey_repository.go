package mongo

import (
	"context"

	"github.com/mashatel/directory-services/api/internal/public/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// SurveyRepository implements the public application.SurveyRepository.
type SurveyRepository struct {
	collection *mongo.Collection
}

// NewSurveyRepository creates a Mongo-backed public survey repository.
func NewSurveyRepository(db *mongo.Database, collectionName string) *SurveyRepository {
	return &SurveyRepository{collection: db.Collection(collectionName)}
}

// Create inserts a new survey response and backfills its generated ID.
func (r *SurveyRepository) Create(ctx context.Context, survey *domain.Survey) error {
	doc := SurveyDocument{
		ID:              primitive.NewObjectID(),
		Status:          survey.Status,
		Name:            survey.Name,
		Phone:           survey.Phone,
		Email:           survey.Email,
		City:            survey.City,
		VisitFrequency:  survey.VisitFrequency,
		PreferredPlants: survey.PreferredPlants,
		PurchaseChannel: survey.PurchaseChannel,
		Satisfaction:    survey.Satisfaction,
		HeardFrom:       survey.HeardFrom,
		Suggestions:     survey.Suggestions,
		SubmittedAt:     survey.SubmittedAt,
		UpdatedAt:       survey.UpdatedAt,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return err
	}
	survey.ID = doc.ID.Hex()
	return nil
}

// ContactRepository implements the public application.ContactRepository.
type ContactRepository struct {
	collection *mongo.Collection
}

// NewContactRepository creates a Mongo-backed contact-message repository.
func NewContactRepository(db *mongo.Database, collectionName string) *ContactRepository {
	return &ContactRepository{collection: db.Collection(collectionName)}
}

// Create inserts a contact-form message and backfills its generated ID.
func (r *ContactRepository) Create(ctx context.Context, message *domain.ContactMessage) error {
	doc := ContactDocument{
		ID:        primitive.NewObjectID(),
		Reference: message.Reference,
		Name:      message.Name,
		Phone:     message.Phone,
		Email:     message.Email,
		Subject:   message.Subject,
		Body:      message.Body,
		CreatedAt: message.CreatedAt,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return err
	}
	message.ID = doc.ID.Hex()
	return nil
}

package mongo

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/mashatel/directory-services/api/internal/admin/application"
	admindomain "github.com/mashatel/directory-services/api/internal/admin/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AdminSurveyRepository handles survey moderation reads and writes.
type AdminSurveyRepository struct {
	collection *mongo.Collection
}

// NewAdminSurveyRepository binds the survey collection.
func NewAdminSurveyRepository(db *mongo.Database, collection string) *AdminSurveyRepository {
	return &AdminSurveyRepository{collection: db.Collection(collection)}
}

// Find translates the keyword/status/date-range criteria into a Mongo query.
func (r *AdminSurveyRepository) Find(ctx context.Context, filter application.SurveyFilter, paging application.Paging) ([]admindomain.Survey, error) {
	mongoFilter := bson.M{}
	if keyword := strings.TrimSpace(filter.Keyword); keyword != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(keyword), Options: "i"}
		mongoFilter["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"city": pattern},
			bson.M{"suggestions": pattern},
			bson.M{"heardFrom": pattern},
		}
	}
	if status := strings.TrimSpace(filter.Status); status != "" {
		mongoFilter["status"] = status
	}
	if filter.From != nil || filter.To != nil {
		window := bson.M{}
		if filter.From != nil {
			window["$gte"] = *filter.From
		}
		if filter.To != nil {
			window["$lt"] = *filter.To
		}
		mongoFilter["submittedAt"] = window
	}

	opts := options.Find().SetSort(bson.D{{Key: "submittedAt", Value: -1}})
	applyPaging(opts, paging)

	cursor, err := r.collection.Find(ctx, mongoFilter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	surveys := make([]admindomain.Survey, 0)
	for cursor.Next(ctx) {
		var doc SurveyDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		survey, err := mapAdminSurvey(doc)
		if err != nil {
			return nil, err
		}
		surveys = append(surveys, survey)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return surveys, nil
}

// FindByID returns one survey response.
func (r *AdminSurveyRepository) FindByID(ctx context.Context, id string) (*admindomain.Survey, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	var doc SurveyDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		return nil, err
	}
	survey, err := mapAdminSurvey(doc)
	if err != nil {
		return nil, err
	}
	return &survey, nil
}

// UpdateStatus transitions a survey's moderation status and returns the
// updated record.
func (r *AdminSurveyRepository) UpdateStatus(ctx context.Context, id, status string) (*admindomain.Survey, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc SurveyDocument
	if err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, update, opts).Decode(&doc); err != nil {
		return nil, err
	}
	survey, err := mapAdminSurvey(doc)
	if err != nil {
		return nil, err
	}
	return &survey, nil
}

// Delete removes a survey response.
func (r *AdminSurveyRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return err
	}
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func mapAdminSurvey(doc SurveyDocument) (admindomain.Survey, error) {
	email, err := admindomain.NewEmail(doc.Email)
	if err != nil {
		// Moderators still need to see rows with bad historical emails.
		email = admindomain.Email(strings.TrimSpace(doc.Email))
	}

	return admindomain.Survey{
		ID:              doc.ID.Hex(),
		Status:          doc.Status,
		Name:            doc.Name,
		Phone:           doc.Phone,
		Email:           email,
		City:            doc.City,
		VisitFrequency:  doc.VisitFrequency,
		PreferredPlants: append([]string{}, doc.PreferredPlants...),
		PurchaseChannel: doc.PurchaseChannel,
		Satisfaction:    doc.Satisfaction,
		HeardFrom:       doc.HeardFrom,
		Suggestions:     doc.Suggestions,
		SubmittedAt:     doc.SubmittedAt,
		UpdatedAt:       doc.UpdatedAt,
	}, nil
}

// AdminContactRepository lists stored contact-form messages.
type AdminContactRepository struct {
	collection *mongo.Collection
}

// NewAdminContactRepository binds the contact collection.
func NewAdminContactRepository(db *mongo.Database, collection string) *AdminContactRepository {
	return &AdminContactRepository{collection: db.Collection(collection)}
}

// Find returns contact messages, newest first.
func (r *AdminContactRepository) Find(ctx context.Context, paging application.Paging) ([]admindomain.ContactMessage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	applyPaging(opts, paging)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	messages := make([]admindomain.ContactMessage, 0)
	for cursor.Next(ctx) {
		var doc ContactDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		messages = append(messages, admindomain.ContactMessage{
			ID:        doc.ID.Hex(),
			Reference: doc.Reference,
			Name:      doc.Name,
			Phone:     doc.Phone,
			Email:     doc.Email,
			Subject:   doc.Subject,
			Body:      doc.Body,
			CreatedAt: doc.CreatedAt,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return messages, nil
}

package mongo

import (
	"context"
	"strings"

	"github.com/mashatel/directory-services/api/internal/public/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// OfferRepository implements the public application.OfferRepository using
// MongoDB.
type OfferRepository struct {
	collection *mongo.Collection
}

// NewOfferRepository creates a Mongo-backed public offer repository.
func NewOfferRepository(db *mongo.Database, collectionName string) *OfferRepository {
	return &OfferRepository{collection: db.Collection(collectionName)}
}

// Find returns every published offer.
func (r *OfferRepository) Find(ctx context.Context) ([]domain.Offer, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"published": bson.M{"$ne": false}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	offers := make([]domain.Offer, 0)
	for cursor.Next(ctx) {
		var doc OfferDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		offers = append(offers, mapOfferDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return offers, nil
}

// FindByID returns a single published offer by its identifier.
func (r *OfferRepository) FindByID(ctx context.Context, id string) (*domain.Offer, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	var doc OfferDocument
	filter := bson.M{"_id": objectID, "published": bson.M{"$ne": false}}
	if err := r.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, err
	}
	offer := mapOfferDocument(doc)
	return &offer, nil
}

func mapOfferDocument(doc OfferDocument) domain.Offer {
	return domain.Offer{
		ID:          doc.ID.Hex(),
		Title:       doc.Title,
		Description: doc.Description,
		NurseryID:   doc.NurseryID,
		Discount:    doc.Discount,
		EndDate:     strings.TrimSpace(doc.EndDate),
		Tags:        append([]string{}, doc.Tags...),
		Highlighted: doc.Highlighted,
		Published:   publishedValue(doc.Published),
		CreatedAt:   doc.CreatedAt.Time,
		UpdatedAt:   doc.UpdatedAt.Time,
	}
}

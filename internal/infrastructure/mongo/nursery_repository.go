package mongo

import (
	"context"
	"strings"

	"github.com/mashatel/directory-services/api/internal/public/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// NurseryRepository implements the public application.NurseryRepository
// using MongoDB. Only the published flag is pushed down; filtering, sorting
// and pagination run in the catalog query over the fetched slice.
type NurseryRepository struct {
	collection *mongo.Collection
}

// NewNurseryRepository creates a Mongo-backed public nursery repository.
func NewNurseryRepository(db *mongo.Database, collectionName string) *NurseryRepository {
	return &NurseryRepository{collection: db.Collection(collectionName)}
}

// Find returns every published nursery.
func (r *NurseryRepository) Find(ctx context.Context) ([]domain.Nursery, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"published": bson.M{"$ne": false}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	nurseries := make([]domain.Nursery, 0)
	for cursor.Next(ctx) {
		var doc NurseryDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		nurseries = append(nurseries, mapNurseryDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return nurseries, nil
}

// FindByID returns a single published nursery by its identifier.
func (r *NurseryRepository) FindByID(ctx context.Context, id string) (*domain.Nursery, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	var doc NurseryDocument
	filter := bson.M{"_id": objectID, "published": bson.M{"$ne": false}}
	if err := r.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, err
	}
	nursery := mapNurseryDocument(doc)
	return &nursery, nil
}

func mapNurseryDocument(doc NurseryDocument) domain.Nursery {
	location := domain.Location{
		Region:   strings.TrimSpace(doc.Region),
		City:     strings.TrimSpace(doc.City),
		District: strings.TrimSpace(doc.District),
	}
	// Older documents carry a single combined location string.
	if location == (domain.Location{}) && doc.Location != "" {
		location = domain.ParseLocation(doc.Location)
	}

	return domain.Nursery{
		ID:          doc.ID.Hex(),
		Name:        doc.Name,
		Description: doc.Description,
		Categories:  append([]string{}, doc.Categories...),
		Location:    location,
		Services:    append([]string{}, doc.Services...),
		Phone:       doc.Phone,
		WhatsApp:    doc.WhatsApp,
		Image:       doc.Image,
		Featured:    doc.Featured,
		Published:   publishedValue(doc.Published),
		CreatedAt:   doc.CreatedAt.Time,
		UpdatedAt:   doc.UpdatedAt.Time,
	}
}

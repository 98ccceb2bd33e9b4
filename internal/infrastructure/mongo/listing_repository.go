package mongo

import (
	"context"
	"fmt"

	"github.com/mashatel/directory-services/api/internal/public/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListingCollections names the per-kind collections for display records.
type ListingCollections struct {
	Categories string
	Sponsors   string
	Banners    string
	Premium    string
}

// ListingRepository implements the public application.ListingRepository: one
// collection per display-record kind, ordered by the admin-assigned order
// with insertion order breaking ties.
type ListingRepository struct {
	database    *mongo.Database
	collections ListingCollections
}

// NewListingRepository creates a Mongo-backed listing repository.
func NewListingRepository(db *mongo.Database, collections ListingCollections) *ListingRepository {
	return &ListingRepository{database: db, collections: collections}
}

func (r *ListingRepository) collectionFor(kind domain.ListingKind) (*mongo.Collection, error) {
	var name string
	switch kind {
	case domain.ListingCategory:
		name = r.collections.Categories
	case domain.ListingSponsor:
		name = r.collections.Sponsors
	case domain.ListingBanner:
		name = r.collections.Banners
	case domain.ListingPremium:
		name = r.collections.Premium
	default:
		return nil, fmt.Errorf("unknown listing kind: %s", kind)
	}
	return r.database.Collection(name), nil
}

// FindByKind returns the published display records of one kind.
func (r *ListingRepository) FindByKind(ctx context.Context, kind domain.ListingKind) ([]domain.Listing, error) {
	collection, err := r.collectionFor(kind)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: 1}})
	cursor, err := collection.Find(ctx, bson.M{"published": bson.M{"$ne": false}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	listings := make([]domain.Listing, 0)
	for cursor.Next(ctx) {
		var doc ListingDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		listings = append(listings, mapListingDocument(kind, doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return listings, nil
}

func mapListingDocument(kind domain.ListingKind, doc ListingDocument) domain.Listing {
	return domain.Listing{
		ID:        doc.ID.Hex(),
		Kind:      kind,
		Title:     doc.Title,
		Slug:      doc.Slug,
		Image:     doc.Image,
		Link:      doc.Link,
		NurseryID: doc.NurseryID,
		Order:     doc.Order,
		Published: publishedValue(doc.Published),
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}

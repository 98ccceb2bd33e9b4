package mongo

import (
	"context"
	"fmt"
	"strings"
	"time"

	admindomain "github.com/mashatel/directory-services/api/internal/admin/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AdminListingRepository manages the four display-record collections for the
// dashboard.
type AdminListingRepository struct {
	database    *mongo.Database
	collections ListingCollections
}

// NewAdminListingRepository binds the display-record collections.
func NewAdminListingRepository(db *mongo.Database, collections ListingCollections) *AdminListingRepository {
	return &AdminListingRepository{database: db, collections: collections}
}

func (r *AdminListingRepository) collectionFor(kind admindomain.ListingKind) (*mongo.Collection, error) {
	var name string
	switch kind {
	case admindomain.ListingCategory:
		name = r.collections.Categories
	case admindomain.ListingSponsor:
		name = r.collections.Sponsors
	case admindomain.ListingBanner:
		name = r.collections.Banners
	case admindomain.ListingPremium:
		name = r.collections.Premium
	default:
		return nil, fmt.Errorf("unknown listing kind: %s", kind)
	}
	return r.database.Collection(name), nil
}

// Find lists all records of one kind, unpublished included.
func (r *AdminListingRepository) Find(ctx context.Context, kind admindomain.ListingKind) ([]admindomain.Listing, error) {
	collection, err := r.collectionFor(kind)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: 1}})
	cursor, err := collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	listings := make([]admindomain.Listing, 0)
	for cursor.Next(ctx) {
		var doc ListingDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		listing, err := mapAdminListing(kind, doc)
		if err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return listings, nil
}

// FindByID returns one record of the given kind.
func (r *AdminListingRepository) FindByID(ctx context.Context, kind admindomain.ListingKind, id string) (*admindomain.Listing, error) {
	collection, err := r.collectionFor(kind)
	if err != nil {
		return nil, err
	}
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	var doc ListingDocument
	if err := collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		return nil, err
	}
	listing, err := mapAdminListing(kind, doc)
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

// Create inserts a new display record.
func (r *AdminListingRepository) Create(ctx context.Context, listing *admindomain.Listing) error {
	collection, err := r.collectionFor(listing.Kind)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	published := listing.Published
	doc := ListingDocument{
		ID:        primitive.NewObjectID(),
		Title:     strings.TrimSpace(listing.Title),
		Slug:      listing.Slug,
		Image:     listing.Image.String(),
		Link:      listing.Link.String(),
		NurseryID: listing.NurseryID,
		Order:     listing.Order.Int(),
		Published: &published,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := collection.InsertOne(ctx, doc); err != nil {
		return err
	}
	listing.ID = doc.ID.Hex()
	listing.CreatedAt = now
	listing.UpdatedAt = now
	return nil
}

// Update replaces the mutable fields of a display record.
func (r *AdminListingRepository) Update(ctx context.Context, listing *admindomain.Listing) error {
	collection, err := r.collectionFor(listing.Kind)
	if err != nil {
		return err
	}
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(listing.ID))
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"title":     strings.TrimSpace(listing.Title),
		"slug":      listing.Slug,
		"image":     listing.Image.String(),
		"link":      listing.Link.String(),
		"nurseryId": listing.NurseryID,
		"order":     listing.Order.Int(),
		"published": listing.Published,
		"updatedAt": now,
	}}

	result, err := collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	listing.UpdatedAt = now
	return nil
}

// Delete removes a display record.
func (r *AdminListingRepository) Delete(ctx context.Context, kind admindomain.ListingKind, id string) error {
	collection, err := r.collectionFor(kind)
	if err != nil {
		return err
	}
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return err
	}
	result, err := collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func mapAdminListing(kind admindomain.ListingKind, doc ListingDocument) (admindomain.Listing, error) {
	image, err := admindomain.NewURL(doc.Image)
	if err != nil {
		return admindomain.Listing{}, err
	}
	link, err := admindomain.NewURL(doc.Link)
	if err != nil {
		return admindomain.Listing{}, err
	}
	order, err := admindomain.NewDisplayOrder(doc.Order)
	if err != nil {
		order = 0
	}

	return admindomain.Listing{
		ID:        doc.ID.Hex(),
		Kind:      kind,
		Title:     doc.Title,
		Slug:      doc.Slug,
		Image:     image,
		Link:      link,
		NurseryID: doc.NurseryID,
		Order:     order,
		Published: publishedValue(doc.Published),
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}, nil
}

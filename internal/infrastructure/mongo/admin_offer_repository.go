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

// AdminOfferRepository is the admin-side Mongo implementation of the offer
// aggregate.
type AdminOfferRepository struct {
	collection *mongo.Collection
}

// NewAdminOfferRepository binds the offer collection.
func NewAdminOfferRepository(db *mongo.Database, collection string) *AdminOfferRepository {
	return &AdminOfferRepository{collection: db.Collection(collection)}
}

// Find lists offers for the dashboard, unpublished included.
func (r *AdminOfferRepository) Find(ctx context.Context, filter application.OfferFilter, paging application.Paging) ([]admindomain.Offer, error) {
	mongoFilter := bson.M{}
	if nurseryID := strings.TrimSpace(filter.NurseryID); nurseryID != "" {
		mongoFilter["nurseryId"] = nurseryID
	}
	if tag := strings.TrimSpace(filter.Tag); tag != "" {
		mongoFilter["tags"] = tag
	}
	if keyword := strings.TrimSpace(filter.Keyword); keyword != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(keyword), Options: "i"}
		mongoFilter["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"description": pattern},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	applyPaging(opts, paging)

	cursor, err := r.collection.Find(ctx, mongoFilter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	offers := make([]admindomain.Offer, 0)
	for cursor.Next(ctx) {
		var doc OfferDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		offer, err := mapAdminOffer(doc)
		if err != nil {
			return nil, err
		}
		offers = append(offers, offer)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return offers, nil
}

// FindByID returns a single offer aggregate.
func (r *AdminOfferRepository) FindByID(ctx context.Context, id string) (*admindomain.Offer, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	var doc OfferDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		return nil, err
	}
	offer, err := mapAdminOffer(doc)
	if err != nil {
		return nil, err
	}
	return &offer, nil
}

// Create inserts a new offer.
func (r *AdminOfferRepository) Create(ctx context.Context, offer *admindomain.Offer) error {
	now := time.Now().UTC()
	doc := offerToDocument(primitive.NewObjectID(), offer, now, now)
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return err
	}
	offer.ID = doc.ID.Hex()
	offer.CreatedAt = now
	offer.UpdatedAt = now
	return nil
}

// Update replaces the mutable fields of an existing offer.
func (r *AdminOfferRepository) Update(ctx context.Context, offer *admindomain.Offer) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(offer.ID))
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	set := bson.M{
		"title":       strings.TrimSpace(offer.Title),
		"description": offer.Description,
		"nurseryId":   offer.NurseryID,
		"endDate":     offer.EndDate,
		"tags":        offer.Tags,
		"highlighted": offer.Highlighted,
		"published":   offer.Published,
		"updatedAt":   now,
	}
	update := bson.M{"$set": set}
	if offer.Discount != nil {
		set["discount"] = offer.Discount.Float64()
	} else {
		update["$unset"] = bson.M{"discount": ""}
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	offer.UpdatedAt = now
	return nil
}

// Delete removes an offer document.
func (r *AdminOfferRepository) Delete(ctx context.Context, id string) error {
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

func offerToDocument(id primitive.ObjectID, offer *admindomain.Offer, createdAt, updatedAt time.Time) OfferDocument {
	published := offer.Published
	var discount *float64
	if offer.Discount != nil {
		value := offer.Discount.Float64()
		discount = &value
	}
	return OfferDocument{
		ID:          id,
		Title:       strings.TrimSpace(offer.Title),
		Description: offer.Description,
		NurseryID:   offer.NurseryID,
		Discount:    discount,
		EndDate:     offer.EndDate,
		Tags:        offer.Tags,
		Highlighted: offer.Highlighted,
		Published:   &published,
		CreatedAt:   FlexTime{createdAt},
		UpdatedAt:   FlexTime{updatedAt},
	}
}

func mapAdminOffer(doc OfferDocument) (admindomain.Offer, error) {
	var discount *admindomain.Discount
	if doc.Discount != nil {
		value, err := admindomain.NewDiscount(*doc.Discount)
		if err != nil {
			return admindomain.Offer{}, err
		}
		discount = &value
	}

	return admindomain.Offer{
		ID:          doc.ID.Hex(),
		Title:       doc.Title,
		Description: doc.Description,
		NurseryID:   doc.NurseryID,
		Discount:    discount,
		EndDate:     strings.TrimSpace(doc.EndDate),
		Tags:        append([]string{}, doc.Tags...),
		Highlighted: doc.Highlighted,
		Published:   publishedValue(doc.Published),
		CreatedAt:   doc.CreatedAt.Time,
		UpdatedAt:   doc.UpdatedAt.Time,
	}, nil
}

package mongo

import (
	"context"
	"errors"
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

// AdminNurseryRepository is the admin-side Mongo implementation of the
// nursery aggregate.
type AdminNurseryRepository struct {
	collection *mongo.Collection
}

// NewAdminNurseryRepository binds the nursery collection.
func NewAdminNurseryRepository(db *mongo.Database, collection string) *AdminNurseryRepository {
	return &AdminNurseryRepository{collection: db.Collection(collection)}
}

// Find supports fuzzy keyword search plus region/category equality for the
// dashboard table, unpublished documents included.
func (r *AdminNurseryRepository) Find(ctx context.Context, filter application.NurseryFilter, paging application.Paging) ([]admindomain.Nursery, error) {
	mongoFilter := bson.M{}
	clauses := make([]bson.M, 0)
	if filter.Region != "" {
		clauses = append(clauses, bson.M{"region": filter.Region})
	}
	if filter.Category != "" {
		clauses = append(clauses, bson.M{"categories": filter.Category})
	}
	if filter.Keyword != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Keyword), Options: "i"}
		clauses = append(clauses, bson.M{"$or": bson.A{
			bson.M{"name": pattern},
			bson.M{"description": pattern},
		}})
	}
	if len(clauses) == 1 {
		mongoFilter = clauses[0]
	} else if len(clauses) > 1 {
		mongoFilter["$and"] = clauses
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	applyPaging(opts, paging)

	cursor, err := r.collection.Find(ctx, mongoFilter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	nurseries := make([]admindomain.Nursery, 0)
	for cursor.Next(ctx) {
		var doc NurseryDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		nursery, err := mapAdminNursery(doc)
		if err != nil {
			return nil, err
		}
		nurseries = append(nurseries, nursery)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return nurseries, nil
}

// FindByID returns a single nursery aggregate.
func (r *AdminNurseryRepository) FindByID(ctx context.Context, id string) (*admindomain.Nursery, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	var doc NurseryDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		return nil, err
	}
	nursery, err := mapAdminNursery(doc)
	if err != nil {
		return nil, err
	}
	return &nursery, nil
}

// Create inserts a new nursery after a name+region duplicate check.
func (r *AdminNurseryRepository) Create(ctx context.Context, nursery *admindomain.Nursery) error {
	filter := bson.M{
		"name":   strings.TrimSpace(nursery.Name),
		"region": nursery.Region.String(),
	}
	if err := r.collection.FindOne(ctx, filter).Err(); err == nil {
		return errors.New("nursery already exists")
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	now := time.Now().UTC()
	doc := nurseryToDocument(primitive.NewObjectID(), nursery, now, now)
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return err
	}
	nursery.ID = doc.ID.Hex()
	nursery.CreatedAt = now
	nursery.UpdatedAt = now
	return nil
}

// Update replaces the mutable fields of an existing nursery.
func (r *AdminNurseryRepository) Update(ctx context.Context, nursery *admindomain.Nursery) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(nursery.ID))
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"name":        strings.TrimSpace(nursery.Name),
		"description": nursery.Description,
		"categories":  nursery.Categories.Strings(),
		"region":      nursery.Region.String(),
		"city":        nursery.City,
		"district":    nursery.District,
		"services":    nursery.Services.Strings(),
		"phone":       nursery.Phone,
		"whatsapp":    nursery.WhatsApp,
		"image":       nursery.Image.String(),
		"featured":    nursery.Featured,
		"published":   nursery.Published,
		"updatedAt":   now,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	nursery.UpdatedAt = now
	return nil
}

// Delete removes a nursery document.
func (r *AdminNurseryRepository) Delete(ctx context.Context, id string) error {
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

func nurseryToDocument(id primitive.ObjectID, nursery *admindomain.Nursery, createdAt, updatedAt time.Time) NurseryDocument {
	published := nursery.Published
	return NurseryDocument{
		ID:          id,
		Name:        strings.TrimSpace(nursery.Name),
		Description: nursery.Description,
		Categories:  nursery.Categories.Strings(),
		Region:      nursery.Region.String(),
		City:        nursery.City,
		District:    nursery.District,
		Services:    nursery.Services.Strings(),
		Phone:       nursery.Phone,
		WhatsApp:    nursery.WhatsApp,
		Image:       nursery.Image.String(),
		Featured:    nursery.Featured,
		Published:   &published,
		CreatedAt:   FlexTime{createdAt},
		UpdatedAt:   FlexTime{updatedAt},
	}
}

func mapAdminNursery(doc NurseryDocument) (admindomain.Nursery, error) {
	categories, err := admindomain.NewCategoryList(doc.Categories)
	if err != nil {
		// Legacy documents may predate the category requirement.
		categories = nil
	}
	region, err := admindomain.NewRegion(doc.Region)
	if err != nil {
		region = admindomain.Region(strings.TrimSpace(doc.Region))
	}
	services, err := admindomain.NewServiceTypeList(doc.Services)
	if err != nil {
		return admindomain.Nursery{}, err
	}
	image, err := admindomain.NewURL(doc.Image)
	if err != nil {
		return admindomain.Nursery{}, err
	}

	return admindomain.Nursery{
		ID:          doc.ID.Hex(),
		Name:        doc.Name,
		Description: doc.Description,
		Categories:  categories,
		Region:      region,
		City:        doc.City,
		District:    doc.District,
		Services:    services,
		Phone:       doc.Phone,
		WhatsApp:    doc.WhatsApp,
		Image:       image,
		Featured:    doc.Featured,
		Published:   publishedValue(doc.Published),
		CreatedAt:   doc.CreatedAt.Time,
		UpdatedAt:   doc.UpdatedAt.Time,
	}, nil
}

func applyPaging(opts *options.FindOptions, paging application.Paging) {
	limit := paging.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	opts.SetLimit(int64(limit))
	if paging.Page > 1 {
		opts.SetSkip(int64((paging.Page - 1) * limit))
	}
}

package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FlexTime decodes timestamps that may be stored as native BSON datetimes,
// ISO strings, or Firestore-export {_seconds,_nanoseconds} wrappers. All
// three forms normalize to the same ordering; anything unreadable decodes to
// the zero time so a malformed document sorts last instead of failing the
// cursor.
type FlexTime struct {
	time.Time
}

type secondsWrapper struct {
	Seconds int64 `bson:"_seconds"`
	Nanos   int64 `bson:"_nanoseconds"`
}

// UnmarshalBSONValue implements bson.ValueUnmarshaler.
func (t *FlexTime) UnmarshalBSONValue(btype bsontype.Type, data []byte) error {
	t.Time = time.Time{}
	switch btype {
	case bsontype.DateTime:
		raw := bson.RawValue{Type: btype, Value: data}
		t.Time = raw.Time()
	case bsontype.String:
		raw := bson.RawValue{Type: btype, Value: data}
		value := raw.StringValue()
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
			if parsed, err := time.Parse(layout, value); err == nil {
				t.Time = parsed
				break
			}
		}
	case bsontype.EmbeddedDocument:
		var wrapper secondsWrapper
		if err := bson.Unmarshal(data, &wrapper); err == nil && wrapper.Seconds != 0 {
			t.Time = time.Unix(wrapper.Seconds, wrapper.Nanos)
		}
	}
	return nil
}

// MarshalBSONValue implements bson.ValueMarshaler; writes stay native
// datetimes.
func (t FlexTime) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(t.Time)
}

// NurseryDocument is the nursery schema as stored in MongoDB.
type NurseryDocument struct {
	ID          primitive.ObjectID `bson:"_id"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	Categories  []string           `bson:"categories,omitempty"`
	Region      string             `bson:"region,omitempty"`
	City        string             `bson:"city,omitempty"`
	District    string             `bson:"district,omitempty"`
	Location    string             `bson:"location,omitempty"`
	Services    []string           `bson:"services,omitempty"`
	Phone       string             `bson:"phone,omitempty"`
	WhatsApp    string             `bson:"whatsapp,omitempty"`
	Image       string             `bson:"image,omitempty"`
	Featured    bool               `bson:"featured,omitempty"`
	Published   *bool              `bson:"published,omitempty"`
	CreatedAt   FlexTime           `bson:"createdAt,omitempty"`
	UpdatedAt   FlexTime           `bson:"updatedAt,omitempty"`
}

// OfferDocument is the offer schema as stored in MongoDB.
type OfferDocument struct {
	ID          primitive.ObjectID `bson:"_id"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	NurseryID   string             `bson:"nurseryId,omitempty"`
	Discount    *float64           `bson:"discount,omitempty"`
	EndDate     string             `bson:"endDate,omitempty"`
	Tags        []string           `bson:"tags,omitempty"`
	Highlighted bool               `bson:"highlighted,omitempty"`
	Published   *bool              `bson:"published,omitempty"`
	CreatedAt   FlexTime           `bson:"createdAt,omitempty"`
	UpdatedAt   FlexTime           `bson:"updatedAt,omitempty"`
}

// ListingDocument is the shared schema for categories, sponsors, banners and
// premium placements; each kind lives in its own collection.
type ListingDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Title     string             `bson:"title"`
	Slug      string             `bson:"slug,omitempty"`
	Image     string             `bson:"image,omitempty"`
	Link      string             `bson:"link,omitempty"`
	NurseryID string             `bson:"nurseryId,omitempty"`
	Order     int                `bson:"order"`
	Published *bool              `bson:"published,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

// SurveyDocument is the survey-response schema.
type SurveyDocument struct {
	ID              primitive.ObjectID `bson:"_id"`
	Status          string             `bson:"status,omitempty"`
	Name            string             `bson:"name,omitempty"`
	Phone           string             `bson:"phone,omitempty"`
	Email           string             `bson:"email,omitempty"`
	City            string             `bson:"city,omitempty"`
	VisitFrequency  string             `bson:"visitFrequency,omitempty"`
	PreferredPlants []string           `bson:"preferredPlants,omitempty"`
	PurchaseChannel string             `bson:"purchaseChannel,omitempty"`
	Satisfaction    string             `bson:"satisfaction,omitempty"`
	HeardFrom       string             `bson:"heardFrom,omitempty"`
	Suggestions     string             `bson:"suggestions,omitempty"`
	SubmittedAt     time.Time          `bson:"submittedAt"`
	UpdatedAt       time.Time          `bson:"updatedAt"`
}

// ContactDocument is the contact-form message schema.
type ContactDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Reference string             `bson:"reference"`
	Name      string             `bson:"name"`
	Phone     string             `bson:"phone,omitempty"`
	Email     string             `bson:"email,omitempty"`
	Subject   string             `bson:"subject,omitempty"`
	Body      string             `bson:"body"`
	CreatedAt time.Time          `bson:"createdAt"`
}

// publishedValue resolves the tri-state published flag; absent means true.
func publishedValue(flag *bool) bool {
	return flag == nil || *flag
}

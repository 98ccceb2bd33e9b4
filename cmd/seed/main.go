package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type seedOptions struct {
	nurseryCount    int
	offerCount      int
	surveyCount     int
	contactCount    int
	dropCollections bool
	randomSeed      int64
}

type collections struct {
	nurseries string
	offers    string
	categories string
	sponsors  string
	banners   string
	premium   string
	surveys   string
	contacts  string
}

type nurseryDocument struct {
	ID          primitive.ObjectID `bson:"_id"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	Categories  []string           `bson:"categories,omitempty"`
	Region      string             `bson:"region"`
	City        string             `bson:"city,omitempty"`
	District    string             `bson:"district,omitempty"`
	Services    []string           `bson:"services,omitempty"`
	Phone       string             `bson:"phone,omitempty"`
	WhatsApp    string             `bson:"whatsapp,omitempty"`
	Image       string             `bson:"image,omitempty"`
	Featured    bool               `bson:"featured"`
	Published   bool               `bson:"published"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

type offerDocument struct {
	ID          primitive.ObjectID `bson:"_id"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	NurseryID   primitive.ObjectID `bson:"nurseryId"`
	Discount    *float64           `bson:"discount,omitempty"`
	EndDate     string             `bson:"endDate,omitempty"`
	Tags        []string           `bson:"tags,omitempty"`
	Highlighted bool               `bson:"highlighted"`
	Published   bool               `bson:"published"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

type listingDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Title     string             `bson:"title"`
	Slug      string             `bson:"slug,omitempty"`
	Image     string             `bson:"image,omitempty"`
	Link      string             `bson:"link,omitempty"`
	NurseryID string             `bson:"nurseryId,omitempty"`
	Order     int                `bson:"order"`
	Published bool               `bson:"published"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

type surveyDocument struct {
	ID              primitive.ObjectID `bson:"_id"`
	Status          string             `bson:"status"`
	Name            string             `bson:"name"`
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

type contactDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Reference string             `bson:"reference"`
	Name      string             `bson:"name"`
	Phone     string             `bson:"phone,omitempty"`
	Email     string             `bson:"email,omitempty"`
	Subject   string             `bson:"subject,omitempty"`
	Body      string             `bson:"body"`
	CreatedAt time.Time          `bson:"createdAt"`
}

var (
	regions   = []string{"الرياض", "جدة", "الدمام", "مكة المكرمة", "المدينة المنورة", "أبها"}
	cities    = map[string][]string{
		"الرياض":          {"الرياض", "الدرعية", "الخرج"},
		"جدة":             {"جدة", "ذهبان"},
		"الدمام":          {"الدمام", "الخبر", "القطيف"},
		"مكة المكرمة":     {"مكة", "الطائف"},
		"المدينة المنورة": {"المدينة", "ينبع"},
		"أبها":            {"أبها", "خميس مشيط"},
	}
	categoryNames = []string{"نباتات داخلية", "نباتات خارجية", "أشجار مثمرة", "زهور موسمية", "عصاريات وصباريات", "مستلزمات الزراعة"}
	serviceCodes  = []string{"delivery", "consultation", "maintenance", "installation"}
	plantNames    = []string{"بوتس", "مونستيرا", "فيكس", "جهنمية", "ياسمين", "نخيل زينة", "صبار"}
	arabicMonths  = []string{"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو", "يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر"}
)

func main() {
	opts := parseFlags()

	_ = godotenv.Load()

	cfg := collections{
		nurseries:  envOrDefault("NURSERY_COLLECTION", "nurseries"),
		offers:     envOrDefault("OFFER_COLLECTION", "offers"),
		categories: envOrDefault("CATEGORY_COLLECTION", "categories"),
		sponsors:   envOrDefault("SPONSOR_COLLECTION", "sponsors"),
		banners:    envOrDefault("BANNER_COLLECTION", "banners"),
		premium:    envOrDefault("PREMIUM_COLLECTION", "premium_nurseries"),
		surveys:    envOrDefault("SURVEY_COLLECTION", "surveys"),
		contacts:   envOrDefault("CONTACT_COLLECTION", "contacts"),
	}

	mongoURI := envOrDefault("MONGO_URI", "mongodb://localhost:27017")
	dbName := envOrDefault("MONGO_DB", "mashatel")

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("mongo connect failed: %v", err)
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	db := client.Database(dbName)

	if opts.dropCollections {
		if err := dropCollections(ctx, db, cfg); err != nil {
			log.Fatalf("dropping collections failed: %v", err)
		}
		log.Printf("dropped existing collections")
	}

	if err := ensureIndexes(ctx, db, cfg); err != nil {
		log.Fatalf("creating indexes failed: %v", err)
	}

	rng := rand.New(rand.NewSource(opts.randomSeed))

	nurseryDocs := generateNurseries(rng, opts.nurseryCount)
	if err := insertMany(ctx, db.Collection(cfg.nurseries), toAnySlice(nurseryDocs)); err != nil {
		log.Fatalf("inserting nurseries failed: %v", err)
	}

	offerDocs := generateOffers(rng, nurseryDocs, opts.offerCount)
	if err := insertMany(ctx, db.Collection(cfg.offers), toAnySlice(offerDocs)); err != nil {
		log.Fatalf("inserting offers failed: %v", err)
	}

	categoryDocs := generateCategories()
	if err := insertMany(ctx, db.Collection(cfg.categories), toAnySlice(categoryDocs)); err != nil {
		log.Fatalf("inserting categories failed: %v", err)
	}

	sponsorDocs := generateSponsors(rng)
	if err := insertMany(ctx, db.Collection(cfg.sponsors), toAnySlice(sponsorDocs)); err != nil {
		log.Fatalf("inserting sponsors failed: %v", err)
	}

	bannerDocs := generateBanners(rng)
	if err := insertMany(ctx, db.Collection(cfg.banners), toAnySlice(bannerDocs)); err != nil {
		log.Fatalf("inserting banners failed: %v", err)
	}

	premiumDocs := generatePremium(rng, nurseryDocs)
	if err := insertMany(ctx, db.Collection(cfg.premium), toAnySlice(premiumDocs)); err != nil {
		log.Fatalf("inserting premium placements failed: %v", err)
	}

	surveyDocs := generateSurveys(rng, opts.surveyCount)
	if err := insertMany(ctx, db.Collection(cfg.surveys), toAnySlice(surveyDocs)); err != nil {
		log.Fatalf("inserting surveys failed: %v", err)
	}

	contactDocs := generateContacts(rng, opts.contactCount)
	if err := insertMany(ctx, db.Collection(cfg.contacts), toAnySlice(contactDocs)); err != nil {
		log.Fatalf("inserting contacts failed: %v", err)
	}

	log.Printf("seed done: nurseries=%d offers=%d categories=%d sponsors=%d banners=%d premium=%d surveys=%d contacts=%d",
		len(nurseryDocs), len(offerDocs), len(categoryDocs), len(sponsorDocs), len(bannerDocs), len(premiumDocs), len(surveyDocs), len(contactDocs))
	log.Printf("mongo: %s / %s", mongoURI, dbName)
}

func parseFlags() seedOptions {
	var opts seedOptions
	flag.IntVar(&opts.nurseryCount, "nurseries", 24, "number of nurseries to generate")
	flag.IntVar(&opts.offerCount, "offers", 30, "number of offers to generate")
	flag.IntVar(&opts.surveyCount, "surveys", 15, "number of survey responses to generate")
	flag.IntVar(&opts.contactCount, "contacts", 8, "number of contact messages to generate")
	flag.BoolVar(&opts.dropCollections, "drop", true, "drop existing collections before seeding")
	flag.Int64Var(&opts.randomSeed, "seed", time.Now().UnixNano(), "random seed for reproducible runs")
	flag.Parse()

	if opts.nurseryCount <= 0 {
		log.Fatal("nurseries must be at least 1")
	}
	if opts.offerCount < 0 {
		opts.offerCount = 0
	}
	if opts.surveyCount < 0 {
		opts.surveyCount = 0
	}
	if opts.contactCount < 0 {
		opts.contactCount = 0
	}
	return opts
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func dropCollections(ctx context.Context, db *mongo.Database, cfg collections) error {
	names := []string{cfg.nurseries, cfg.offers, cfg.categories, cfg.sponsors, cfg.banners, cfg.premium, cfg.surveys, cfg.contacts}
	for _, name := range names {
		if err := db.Collection(name).Drop(ctx); err != nil {
			return err
		}
	}
	return nil
}

func ensureIndexes(ctx context.Context, db *mongo.Database, cfg collections) error {
	_, err := db.Collection(cfg.nurseries).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "region", Value: 1}, {Key: "city", Value: 1}}},
		{Keys: bson.D{{Key: "name", Value: 1}}},
	})
	if err != nil {
		return err
	}
	_, err = db.Collection(cfg.offers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "nurseryId", Value: 1}},
	})
	if err != nil {
		return err
	}
	_, err = db.Collection(cfg.surveys).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "submittedAt", Value: -1}},
	})
	return err
}

func insertMany(ctx context.Context, coll *mongo.Collection, docs []any) error {
	if len(docs) == 0 {
		return nil
	}
	_, err := coll.InsertMany(ctx, docs)
	return err
}

func toAnySlice[T any](items []T) []any {
	result := make([]any, 0, len(items))
	for _, item := range items {
		result = append(result, item)
	}
	return result
}

func imageURL() string {
	return fmt.Sprintf("https://media.mashatel.example/images/%s.jpg", uuid.NewString())
}

func generateNurseries(rng *rand.Rand, count int) []nurseryDocument {
	docs := make([]nurseryDocument, 0, count)
	now := time.Now().UTC()
	for i := 0; i < count; i++ {
		region := regions[rng.Intn(len(regions))]
		cityOptions := cities[region]
		city := cityOptions[rng.Intn(len(cityOptions))]

		categories := pickSome(rng, categoryNames, 1+rng.Intn(3))
		services := pickSome(rng, serviceCodes, 1+rng.Intn(len(serviceCodes)))

		docs = append(docs, nurseryDocument{
			ID:          primitive.NewObjectID(),
			Name:        fmt.Sprintf("مشتل الواحة %d", i+1),
			Description: fmt.Sprintf("مشتل متخصص في %s ومستلزمات الحدائق.", categories[0]),
			Categories:  categories,
			Region:      region,
			City:        city,
			District:    fmt.Sprintf("حي %d", 1+rng.Intn(20)),
			Services:    services,
			Phone:       fmt.Sprintf("+9665%08d", rng.Intn(100000000)),
			WhatsApp:    fmt.Sprintf("+9665%08d", rng.Intn(100000000)),
			Image:       imageURL(),
			Featured:    rng.Intn(4) == 0,
			Published:   rng.Intn(10) != 0,
			CreatedAt:   now.Add(-time.Duration(rng.Intn(365*24)) * time.Hour),
			UpdatedAt:   now,
		})
	}
	return docs
}

func generateOffers(rng *rand.Rand, nurseries []nurseryDocument, count int) []offerDocument {
	docs := make([]offerDocument, 0, count)
	now := time.Now().UTC()
	for i := 0; i < count; i++ {
		nursery := nurseries[rng.Intn(len(nurseries))]
		discount := float64(5 + 5*rng.Intn(10))

		end := now.AddDate(0, 0, -10+rng.Intn(60))
		endDate := end.Format("2006-01-02")
		if rng.Intn(3) == 0 {
			endDate = fmt.Sprintf("%d %s %d", end.Day(), arabicMonths[int(end.Month())-1], end.Year())
		}

		docs = append(docs, offerDocument{
			ID:          primitive.NewObjectID(),
			Title:       fmt.Sprintf("خصم %.0f%% على %s", discount, plantNames[rng.Intn(len(plantNames))]),
			Description: "عرض لفترة محدودة حتى نفاد الكمية.",
			NurseryID:   nursery.ID,
			Discount:    &discount,
			EndDate:     endDate,
			Tags:        pickSome(rng, categoryNames, 1+rng.Intn(2)),
			Highlighted: rng.Intn(5) == 0,
			Published:   rng.Intn(8) != 0,
			CreatedAt:   now.Add(-time.Duration(rng.Intn(60*24)) * time.Hour),
			UpdatedAt:   now,
		})
	}
	return docs
}

func generateCategories() []listingDocument {
	now := time.Now().UTC()
	docs := make([]listingDocument, 0, len(categoryNames))
	for i, name := range categoryNames {
		docs = append(docs, listingDocument{
			ID:        primitive.NewObjectID(),
			Title:     name,
			Slug:      fmt.Sprintf("category-%d", i+1),
			Image:     imageURL(),
			Order:     i,
			Published: true,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return docs
}

func generateSponsors(rng *rand.Rand) []listingDocument {
	now := time.Now().UTC()
	docs := make([]listingDocument, 0, 4)
	for i := 0; i < 4; i++ {
		docs = append(docs, listingDocument{
			ID:        primitive.NewObjectID(),
			Title:     fmt.Sprintf("راعي %d", i+1),
			Image:     imageURL(),
			Link:      fmt.Sprintf("https://sponsor-%d.example", i+1),
			Order:     i,
			Published: rng.Intn(6) != 0,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return docs
}

func generateBanners(rng *rand.Rand) []listingDocument {
	now := time.Now().UTC()
	docs := make([]listingDocument, 0, 3)
	for i := 0; i < 3; i++ {
		docs = append(docs, listingDocument{
			ID:        primitive.NewObjectID(),
			Title:     fmt.Sprintf("إعلان موسمي %d", i+1),
			Image:     imageURL(),
			Link:      fmt.Sprintf("https://mashatel.example/campaigns/%d", i+1),
			Order:     i,
			Published: rng.Intn(6) != 0,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return docs
}

func generatePremium(rng *rand.Rand, nurseries []nurseryDocument) []listingDocument {
	now := time.Now().UTC()
	count := 3
	if count > len(nurseries) {
		count = len(nurseries)
	}
	docs := make([]listingDocument, 0, count)
	for i := 0; i < count; i++ {
		nursery := nurseries[rng.Intn(len(nurseries))]
		docs = append(docs, listingDocument{
			ID:        primitive.NewObjectID(),
			Title:     nursery.Name,
			Image:     nursery.Image,
			NurseryID: nursery.ID.Hex(),
			Order:     i,
			Published: true,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return docs
}

func generateSurveys(rng *rand.Rand, count int) []surveyDocument {
	now := time.Now().UTC()
	frequencies := []string{"أسبوعياً", "شهرياً", "نادراً"}
	channels := []string{"من المشتل مباشرة", "عبر الإنترنت", "كلاهما"}
	satisfactions := []string{"راضٍ جداً", "راضٍ", "محايد"}
	sources := []string{"تويتر", "انستقرام", "صديق", "بحث جوجل"}

	docs := make([]surveyDocument, 0, count)
	for i := 0; i < count; i++ {
		region := regions[rng.Intn(len(regions))]
		cityOptions := cities[region]
		docs = append(docs, surveyDocument{
			ID:              primitive.NewObjectID(),
			Status:          "active",
			Name:            fmt.Sprintf("زائر %d", i+1),
			Phone:           fmt.Sprintf("+9665%08d", rng.Intn(100000000)),
			City:            cityOptions[rng.Intn(len(cityOptions))],
			VisitFrequency:  frequencies[rng.Intn(len(frequencies))],
			PreferredPlants: pickSome(rng, plantNames, 1+rng.Intn(3)),
			PurchaseChannel: channels[rng.Intn(len(channels))],
			Satisfaction:    satisfactions[rng.Intn(len(satisfactions))],
			HeardFrom:       sources[rng.Intn(len(sources))],
			Suggestions:     "نتمنى توفير المزيد من النباتات النادرة.",
			SubmittedAt:     now.Add(-time.Duration(rng.Intn(90*24)) * time.Hour),
			UpdatedAt:       now,
		})
	}
	return docs
}

func generateContacts(rng *rand.Rand, count int) []contactDocument {
	now := time.Now().UTC()
	subjects := []string{"استفسار عن التسجيل", "مشكلة في الموقع", "اقتراح شراكة", "تحديث بيانات مشتل"}
	docs := make([]contactDocument, 0, count)
	for i := 0; i < count; i++ {
		docs = append(docs, contactDocument{
			ID:        primitive.NewObjectID(),
			Reference: uuid.NewString(),
			Name:      fmt.Sprintf("مراسل %d", i+1),
			Email:     fmt.Sprintf("user%d@example.com", i+1),
			Subject:   subjects[rng.Intn(len(subjects))],
			Body:      "أرغب في التواصل مع إدارة الدليل بخصوص الموضوع المذكور.",
			CreatedAt: now.Add(-time.Duration(rng.Intn(30*24)) * time.Hour),
		})
	}
	return docs
}

func pickSome(rng *rand.Rand, pool []string, count int) []string {
	if count > len(pool) {
		count = len(pool)
	}
	indexes := rng.Perm(len(pool))[:count]
	result := make([]string, 0, count)
	for _, idx := range indexes {
		result = append(result, pool[idx])
	}
	return result
}

package public

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"gotest.tools/assert"
	is "gotest.tools/assert/cmp"

	publicapp "github.com/mashatel/directory-services/api/internal/public/application"
	publicdomain "github.com/mashatel/directory-services/api/internal/public/domain"
)

type stubNurseryRepo struct {
	nurseries []publicdomain.Nursery
}

func (s *stubNurseryRepo) Find(context.Context) ([]publicdomain.Nursery, error) {
	return s.nurseries, nil
}

func (s *stubNurseryRepo) FindByID(_ context.Context, id string) (*publicdomain.Nursery, error) {
	for _, n := range s.nurseries {
		if n.ID == id {
			nursery := n
			return &nursery, nil
		}
	}
	return nil, nil
}

type stubOfferRepo struct {
	offers []publicdomain.Offer
}

func (s *stubOfferRepo) Find(context.Context) ([]publicdomain.Offer, error) {
	return s.offers, nil
}

func (s *stubOfferRepo) FindByID(_ context.Context, id string) (*publicdomain.Offer, error) {
	for _, o := range s.offers {
		if o.ID == id {
			offer := o
			return &offer, nil
		}
	}
	return nil, nil
}

type stubSurveyRepo struct{}

func (stubSurveyRepo) Create(_ context.Context, survey *publicdomain.Survey) error {
	survey.ID = "0123456789abcdef01234567"
	return nil
}

func newTestRouter(t *testing.T, nurseries []publicdomain.Nursery, offers []publicdomain.Offer) chi.Router {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	nurseryRepo := &stubNurseryRepo{nurseries: nurseries}
	offerRepo := &stubOfferRepo{offers: offers}

	handler := NewHandler(Config{
		Logger:         logger,
		NurseryQueries: publicapp.NewNurseryQueryService(nurseryRepo, offerRepo, logger),
		OfferQueries:   publicapp.NewOfferQueryService(offerRepo),
		SurveyCommands: publicapp.NewSurveyCommandService(stubSurveyRepo{}),
		HTTPClient:     &http.Client{Timeout: time.Second},
	})

	router := chi.NewRouter()
	handler.Register(router)
	return router
}

func testNurseries() []publicdomain.Nursery {
	return []publicdomain.Nursery{
		{
			ID:         "64b000000000000000000001",
			Name:       "مشتل الواحة",
			Categories: []string{"نباتات داخلية"},
			Location:   publicdomain.Location{Region: "الرياض", City: "الرياض"},
			Published:  true,
		},
		{
			ID:         "64b000000000000000000002",
			Name:       "مشتل الربيع",
			Categories: []string{"زهور موسمية"},
			Location:   publicdomain.Location{Region: "جدة", City: "جدة"},
			Featured:   true,
			Published:  true,
		},
	}
}

func TestNurseryListFiltersByRegion(t *testing.T) {
	router := newTestRouter(t, testNurseries(), nil)

	req := httptest.NewRequest(http.MethodGet, "/nurseries?region="+url.QueryEscape("جدة"), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, rec.Code, http.StatusOK)

	var body nurseryListResponse
	assert.NilError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, body.Total, 1)
	assert.Assert(t, is.Len(body.Items, 1))
	assert.Equal(t, body.Items[0].Name, "مشتل الربيع")
	assert.Equal(t, body.Page, 1)
}

func TestNurseryListAnnotatesDiscounts(t *testing.T) {
	discount := 20.0
	endDate := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	offers := []publicdomain.Offer{{
		ID:        "64b00000000000000000000a",
		NurseryID: "64b000000000000000000001",
		Discount:  &discount,
		EndDate:   endDate,
		Published: true,
	}}

	router := newTestRouter(t, testNurseries(), offers)

	req := httptest.NewRequest(http.MethodGet, "/nurseries?offers=true", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, rec.Code, http.StatusOK)

	var body nurseryListResponse
	assert.NilError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Assert(t, is.Len(body.Items, 1))
	assert.Assert(t, body.Items[0].Discount != nil)
	assert.Equal(t, *body.Items[0].Discount, 20.0)
}

func TestNurseryDetailRejectsMalformedID(t *testing.T) {
	router := newTestRouter(t, testNurseries(), nil)

	req := httptest.NewRequest(http.MethodGet, "/nurseries/not-an-id", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, rec.Code, http.StatusBadRequest)
}

func TestSurveyCreateValidatesName(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/surveys", strings.NewReader(`{"name":"  "}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, rec.Code, http.StatusBadRequest)
}

func TestSurveyCreateReturnsCreated(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	payload := `{"name":"زائر","city":"الرياض","satisfaction":"راضٍ"}`
	req := httptest.NewRequest(http.MethodPost, "/surveys", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, rec.Code, http.StatusCreated)

	var body surveyCreatedResponse
	assert.NilError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, body.Status, publicdomain.SurveyStatusActive)
	assert.Assert(t, body.ID != "")
}

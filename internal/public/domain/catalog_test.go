package domain

import (
	"fmt"
	"testing"
	"time"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)

func testNursery(id, name string) Nursery {
	return Nursery{
		ID:         id,
		Name:       name,
		Categories: []string{"زهور"},
		Location:   Location{Region: "الرياض", City: "الرياض", District: "النرجس"},
		Published:  true,
		CreatedAt:  testNow.Add(-24 * time.Hour),
	}
}

func TestMatchesKeywordAcrossFields(t *testing.T) {
	n := testNursery("n1", "مشتل الورود")
	n.Description = "نباتات داخلية وخارجية"

	cases := []struct {
		keyword string
		want    bool
	}{
		{"", true},
		{"الورود", true},
		{"داخلية", true},
		{"النرجس", true}, // location string
		{"زهور", true},   // category
		{"صبار", false},
	}
	for _, tc := range cases {
		if got := Matches(n, Filter{Keyword: tc.keyword}, nil, testNow); got != tc.want {
			t.Fatalf("keyword %q: expected %v, got %v", tc.keyword, tc.want, got)
		}
	}
}

func TestMatchesSentinelAndExactFilters(t *testing.T) {
	n := testNursery("n1", "مشتل الورود")

	if !Matches(n, Filter{Category: FilterAll, Region: FilterAll, City: "", District: "all"}, nil, testNow) {
		t.Fatal("sentinel filters must match everything")
	}
	if !Matches(n, Filter{Category: "زهور", Region: "الرياض", District: "النرجس"}, nil, testNow) {
		t.Fatal("exact filters should match the entity values")
	}
	if Matches(n, Filter{Region: "جدة"}, nil, testNow) {
		t.Fatal("mismatched region must not match")
	}
}

func TestMatchesMalformedEntity(t *testing.T) {
	if Matches(Nursery{Name: "بدون معرف"}, Filter{}, nil, testNow) {
		t.Fatal("an entity without an ID must never match")
	}
	// Nil categories are treated as "no categories", not an error.
	n := Nursery{ID: "n1", Name: "مشتل", Published: true}
	if Matches(n, Filter{Category: "زهور"}, nil, testNow) {
		t.Fatal("missing categories must fail the category condition")
	}
	if !Matches(n, Filter{}, nil, testNow) {
		t.Fatal("missing optional fields must not block an unfiltered match")
	}
}

func TestFilterMonotonicity(t *testing.T) {
	nurseries := make([]Nursery, 0, 8)
	for i := 0; i < 8; i++ {
		n := testNursery(fmt.Sprintf("n%d", i), fmt.Sprintf("مشتل %d", i))
		if i%2 == 0 {
			n.Location.Region = "جدة"
		}
		if i%3 == 0 {
			n.Categories = []string{"نخيل"}
		}
		nurseries = append(nurseries, n)
	}

	base := Filter{Region: "جدة"}
	narrowed := base
	narrowed.Category = "نخيل"

	baseIDs := map[string]bool{}
	for _, n := range nurseries {
		if Matches(n, base, nil, testNow) {
			baseIDs[n.ID] = true
		}
	}
	for _, n := range nurseries {
		if Matches(n, narrowed, nil, testNow) && !baseIDs[n.ID] {
			t.Fatalf("narrowed filter matched %s which the broader filter excluded", n.ID)
		}
	}
}

func TestSortPopularIsStable(t *testing.T) {
	items := []Nursery{
		testNursery("a", "أ"),
		testNursery("b", "ب"),
		{ID: "c", Name: "ج", Featured: true, Published: true},
		testNursery("d", "د"),
	}

	SortItems(items, SortPopular)

	if items[0].ID != "c" {
		t.Fatalf("featured entity must sort first, got %s", items[0].ID)
	}
	rest := []string{items[1].ID, items[2].ID, items[3].ID}
	for i, want := range []string{"a", "b", "d"} {
		if rest[i] != want {
			t.Fatalf("non-featured order changed: expected %v, got %v", []string{"a", "b", "d"}, rest)
		}
	}
}

func TestSortNewestTreatsMissingAsOldest(t *testing.T) {
	items := []Offer{
		{ID: "undated", Published: true},
		{ID: "old", Published: true, CreatedAt: testNow.Add(-48 * time.Hour)},
		{ID: "new", Published: true, CreatedAt: testNow},
	}

	SortItems(items, SortNewest)

	if items[0].ID != "new" || items[2].ID != "undated" {
		t.Fatalf("expected [new old undated], got [%s %s %s]", items[0].ID, items[1].ID, items[2].ID)
	}
}

func TestSortLowestPriceNilsLast(t *testing.T) {
	items := []Offer{
		{ID: "none", Published: true},
		{ID: "big", Published: true, Discount: discountOf(40)},
		{ID: "small", Published: true, Discount: discountOf(10)},
	}

	SortItems(items, SortLowestPrice)

	if items[0].ID != "small" || items[1].ID != "big" || items[2].ID != "none" {
		t.Fatalf("expected [small big none], got [%s %s %s]", items[0].ID, items[1].ID, items[2].ID)
	}
}

func TestSortUnknownKeyKeepsOrder(t *testing.T) {
	items := []Nursery{testNursery("a", "أ"), testNursery("b", "ب")}
	SortItems(items, "rating")
	if items[0].ID != "a" || items[1].ID != "b" {
		t.Fatal("unknown sort key must leave the input order untouched")
	}
}

func TestRunQueryOffersOnlyScenario(t *testing.T) {
	nurseries := make([]Nursery, 0, 12)
	offers := make([]Offer, 0, 4)
	for i := 0; i < 12; i++ {
		nurseries = append(nurseries, testNursery(fmt.Sprintf("n%d", i), fmt.Sprintf("مشتل %d", i)))
	}
	for _, id := range []string{"n2", "n5", "n9"} {
		offers = append(offers, Offer{
			ID:        "offer-" + id,
			NurseryID: id,
			Published: true,
			Discount:  discountOf(15),
			EndDate:   "2099-01-01",
		})
	}
	// An expired offer must not make its nursery count.
	offers = append(offers, Offer{ID: "stale", NurseryID: "n0", Published: true, Discount: discountOf(50), EndDate: "2020-01-01"})

	result := RunQuery(nurseries, offers, Query{
		Filter: Filter{OffersOnly: true, Category: FilterAll},
		Now:    testNow,
	})

	if result.Total != 3 {
		t.Fatalf("expected 3 nurseries with active offers, got %d", result.Total)
	}
	for _, n := range result.Items {
		if ResolveDiscount(n.ID, offers, testNow) == nil {
			t.Fatalf("nursery %s in result without a resolvable discount", n.ID)
		}
	}
}

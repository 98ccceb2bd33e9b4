package domain

import (
	"sort"
	"strings"
	"time"
)

// FilterAll is the sentinel value that matches every entity for the
// category/region/city/district filters. An empty string behaves the same.
const FilterAll = "all"

// Supported sort keys. Anything else leaves the input order untouched.
const (
	SortNewest      = "newest"
	SortPopular     = "popular"
	SortLowestPrice = "lowest_price"
)

// Filter captures the user-selected catalog filters. The zero value matches
// every entity. Active conditions combine with logical AND.
type Filter struct {
	Keyword    string
	Category   string
	Region     string
	City       string
	District   string
	OffersOnly bool
}

// CatalogItem is the shape shared by nurseries and offers as far as the
// catalog query is concerned. Absent fields are represented by zero values
// and simply fail their sub-condition instead of erroring.
type CatalogItem interface {
	ItemID() string
	SearchText() []string
	CategoryList() []string
	ItemLocation() Location
	IsFeatured() bool
	CreatedTime() time.Time
	DiscountValue() *float64
}

// Query bundles the parameters of one catalog evaluation.
type Query struct {
	Filter   Filter
	Sort     string
	Page     int
	PageSize int
	Now      time.Time
}

// Matches reports whether the entity is visible under the filter. offers is
// consulted only for the OffersOnly condition. An entity without an ID is
// never visible.
func Matches(item CatalogItem, f Filter, offers []Offer, now time.Time) bool {
	if item == nil || item.ItemID() == "" {
		return false
	}
	if !matchesKeyword(item, f.Keyword) {
		return false
	}
	if !matchesCategory(item.CategoryList(), f.Category) {
		return false
	}
	loc := item.ItemLocation()
	if !matchesExact(loc.Region, f.Region) ||
		!matchesExact(loc.City, f.City) ||
		!matchesExact(loc.District, f.District) {
		return false
	}
	if f.OffersOnly && ResolveDiscount(item.ItemID(), offers, now) == nil {
		return false
	}
	return true
}

func matchesKeyword(item CatalogItem, keyword string) bool {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return true
	}
	for _, field := range item.SearchText() {
		if strings.Contains(strings.ToLower(field), keyword) {
			return true
		}
	}
	for _, category := range item.CategoryList() {
		if strings.Contains(strings.ToLower(category), keyword) {
			return true
		}
	}
	return false
}

func matchesCategory(categories []string, selected string) bool {
	if isAll(selected) {
		return true
	}
	for _, c := range categories {
		if c == selected {
			return true
		}
	}
	return false
}

func matchesExact(value, selected string) bool {
	if isAll(selected) {
		return true
	}
	return value == selected
}

func isAll(selected string) bool {
	return selected == "" || selected == FilterAll
}

// SortItems orders items in place by the given key using a stable sort, so
// entities the key does not distinguish keep their input order. An
// unrecognized key is a no-op.
func SortItems[T CatalogItem](items []T, key string) {
	switch key {
	case SortNewest:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].CreatedTime().After(items[j].CreatedTime())
		})
	case SortPopular:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].IsFeatured() && !items[j].IsFeatured()
		})
	case SortLowestPrice:
		// Entities without a discount sort after those with one.
		sort.SliceStable(items, func(i, j int) bool {
			iv, jv := items[i].DiscountValue(), items[j].DiscountValue()
			if iv == nil {
				return false
			}
			if jv == nil {
				return true
			}
			return *iv < *jv
		})
	}
}

// RunQuery evaluates one catalog query over an already fetched entity slice:
// filter, sort, then paginate. It is pure apart from defaulting Now, and a
// malformed entity can only ever drop out of the result, never fail it.
func RunQuery[T CatalogItem](items []T, offers []Offer, q Query) PageResult[T] {
	now := q.Now
	if now.IsZero() {
		now = time.Now()
	}

	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if Matches(item, q.Filter, offers, now) {
			filtered = append(filtered, item)
		}
	}

	SortItems(filtered, q.Sort)
	return Paginate(filtered, q.Page, q.PageSize)
}

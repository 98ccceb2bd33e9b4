package domain

import (
	"strings"
	"time"
)

// Nursery represents a publicly visible plant nursery listing.
type Nursery struct {
	ID          string
	Name        string
	Description string
	Categories  []string
	Location    Location
	Services    []string
	Phone       string
	WhatsApp    string
	Image       string
	Featured    bool
	Published   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Location is the region/city/district triple a nursery is listed under.
type Location struct {
	Region   string
	City     string
	District string
}

// ParseLocation splits a combined "region - city - district" string into its
// parts. Missing segments stay empty; a plain string becomes the region.
func ParseLocation(raw string) Location {
	parts := strings.Split(raw, " - ")
	loc := Location{}
	if len(parts) > 0 {
		loc.Region = strings.TrimSpace(parts[0])
	}
	if len(parts) > 1 {
		loc.City = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		loc.District = strings.TrimSpace(parts[2])
	}
	return loc
}

// String joins the non-empty segments back into the display form.
func (l Location) String() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{l.Region, l.City, l.District} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, strings.TrimSpace(p))
		}
	}
	return strings.Join(parts, " - ")
}

func (n Nursery) ItemID() string          { return n.ID }
func (n Nursery) SearchText() []string    { return []string{n.Name, n.Description, n.Location.String()} }
func (n Nursery) CategoryList() []string  { return n.Categories }
func (n Nursery) ItemLocation() Location  { return n.Location }
func (n Nursery) IsFeatured() bool        { return n.Featured }
func (n Nursery) CreatedTime() time.Time  { return n.CreatedAt }
func (n Nursery) DiscountValue() *float64 { return nil }

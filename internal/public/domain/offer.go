package domain

import "time"

// Offer represents a promotional offer attached to a nursery.
type Offer struct {
	ID          string
	Title       string
	Description string
	NurseryID   string
	Discount    *float64
	EndDate     string
	Tags        []string
	Highlighted bool
	Published   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (o Offer) ItemID() string          { return o.ID }
func (o Offer) SearchText() []string    { return []string{o.Title, o.Description} }
func (o Offer) CategoryList() []string  { return o.Tags }
func (o Offer) ItemLocation() Location  { return Location{} }
func (o Offer) IsFeatured() bool        { return o.Highlighted }
func (o Offer) CreatedTime() time.Time  { return o.CreatedAt }
func (o Offer) DiscountValue() *float64 { return o.Discount }

package domain

import "time"

// Offer is the admin view of a promotional offer.
type Offer struct {
	ID          string
	Title       string
	Description string
	NurseryID   string
	Discount    *Discount
	EndDate     string
	Tags        []string
	Highlighted bool
	Published   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

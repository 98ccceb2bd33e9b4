package domain

import "time"

// Nursery aggregates the data required for admin operations.
type Nursery struct {
	ID          string
	Name        string
	Description string
	Categories  CategoryList
	Region      Region
	City        string
	District    string
	Services    ServiceTypeList
	Phone       string
	WhatsApp    string
	Image       URL
	Featured    bool
	Published   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

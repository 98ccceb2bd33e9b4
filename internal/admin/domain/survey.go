package domain

import "time"

// Survey is the admin view of a survey response, including moderation state.
type Survey struct {
	ID              string
	Status          string
	Name            string
	Phone           string
	Email           Email
	City            string
	VisitFrequency  string
	PreferredPlants []string
	PurchaseChannel string
	Satisfaction    string
	HeardFrom       string
	Suggestions     string
	SubmittedAt     time.Time
	UpdatedAt       time.Time
}

// ContactMessage is the admin view of a contact-form submission.
type ContactMessage struct {
	ID        string
	Reference string
	Name      string
	Phone     string
	Email     string
	Subject   string
	Body      string
	CreatedAt time.Time
}

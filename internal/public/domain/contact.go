package domain

import "time"

// ContactMessage is a message submitted through the public contact form.
// Reference is a short identifier handed back to the visitor.
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

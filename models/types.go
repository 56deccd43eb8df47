package models

import "time"

// Flash categories
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Column limits of the lead table
const (
	MaxNameLen  = 120
	MaxEmailLen = 200
	MaxPhoneLen = 50
)

// Request types

type AdminDoorRequest struct {
	PIN string `json:"pin"`
}

// ContactForm is the trimmed contact form submission
type ContactForm struct {
	Name     string
	Email    string
	Phone    string
	Message  string
	Honeypot string
}

// Response types

type AdminDoorResponse struct {
	OK bool `json:"ok"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// Domain types

type Lead struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Phone     *string   `db:"phone" json:"phone,omitempty"`
	Message   string    `db:"message" json:"message"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// PhoneOrEmpty returns the phone number or "" when none was given
func (l Lead) PhoneOrEmpty() string {
	if l.Phone == nil {
		return ""
	}
	return *l.Phone
}

// Flash is a one-shot message shown on the next rendered page
type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

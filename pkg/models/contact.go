package models

// ContactMessage is a single contact-form submission. It only exists for
// the lifetime of one request and is never persisted.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

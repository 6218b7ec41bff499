package domain

// Document is an open-schema reference record (service listings, testimonials).
type Document map[string]any

// Message is a note left by any visitor.
type Message struct {
	ID      string `json:"_id"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

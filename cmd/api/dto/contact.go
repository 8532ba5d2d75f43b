package dto

import "time"

// ContactRequest is the public contact-form submission payload.
type ContactRequest struct {
	Name    string `json:"name" example:"John Doe"`
	Email   string `json:"email" example:"john@example.com"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" example:"I am interested in hiring you for a web project."`
}

// ContactSubmittedDTO is the confirmation summary returned to the public
// caller. The full record (status, priority, captured metadata) stays
// private.
type ContactSubmittedDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactStatusUpdateRequest carries the admin edit of a message. Nil
// pointers mean "leave unchanged".
type ContactStatusUpdateRequest struct {
	Status   *string `json:"status"`
	Priority *string `json:"priority"`
	Notes    *string `json:"notes"`
}

// DeletedContactDTO summarizes a removed contact message.
type DeletedContactDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

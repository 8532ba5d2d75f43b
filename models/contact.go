package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contact message statuses.
const (
	ContactStatusNew      = "new"
	ContactStatusRead     = "read"
	ContactStatusReplied  = "replied"
	ContactStatusArchived = "archived"
)

var ContactStatuses = []string{ContactStatusNew, ContactStatusRead, ContactStatusReplied, ContactStatusArchived}

// Contact message priorities.
var ContactPriorities = []string{"low", "normal", "high", "urgent"}

// Contact represents a contact-form submission document.
// Collection: contacts
//
// RespondedAt/RespondedBy are stamped the first time Status becomes
// "replied" and are never rewritten afterwards. IPAddress and UserAgent are
// stored for abuse tracing but stripped from admin list/get responses.
type Contact struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	Phone       string             `bson:"phone" json:"phone,omitempty"`
	Subject     string             `bson:"subject" json:"subject,omitempty"`
	Message     string             `bson:"message" json:"message"`
	Status      string             `bson:"status" json:"status"`
	Priority    string             `bson:"priority" json:"priority"`
	Source      string             `bson:"source" json:"source"`
	IPAddress   string             `bson:"ip_address" json:"-"`
	UserAgent   string             `bson:"user_agent" json:"-"`
	Notes       string             `bson:"notes" json:"notes,omitempty"`
	RespondedAt *time.Time         `bson:"responded_at,omitempty" json:"responded_at,omitempty"`
	RespondedBy string             `bson:"responded_by,omitempty" json:"responded_by,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// IsValidContactStatus reports whether s is one of ContactStatuses.
func IsValidContactStatus(s string) bool {
	for _, v := range ContactStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// IsValidContactPriority reports whether p is one of ContactPriorities.
func IsValidContactPriority(p string) bool {
	for _, v := range ContactPriorities {
		if v == p {
			return true
		}
	}
	return false
}

// ContactStats is the contact-wide stats aggregation result.
type ContactStats struct {
	Total    int64 `json:"total"`
	New      int64 `json:"new"`
	Read     int64 `json:"read"`
	Replied  int64 `json:"replied"`
	Archived int64 `json:"archived"`
	LastWeek int64 `json:"lastWeek"`
}

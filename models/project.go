package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project categories accepted by validation.
var ProjectCategories = []string{"web", "mobile", "desktop", "api", "fullstack", "other"}

// Project represents a portfolio project document.
// Collection: projects
type Project struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Category     string             `bson:"category" json:"category"`
	Image        string             `bson:"image" json:"image"`
	Description  string             `bson:"description" json:"description"`
	Technologies []string           `bson:"technologies" json:"technologies"`
	ProjectURL   string             `bson:"project_url" json:"project_url"`
	GithubURL    string             `bson:"github_url" json:"github_url"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

// IsValidProjectCategory reports whether c is one of ProjectCategories.
func IsValidProjectCategory(c string) bool {
	for _, v := range ProjectCategories {
		if v == c {
			return true
		}
	}
	return false
}

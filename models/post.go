package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog post statuses.
const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
	PostStatusArchived  = "archived"
)

var PostStatuses = []string{PostStatusDraft, PostStatusPublished, PostStatusArchived}

// Post represents a blog post document.
// Collection: posts
//
// Views only ever grows and is incremented atomically with the fetch.
// PublishedAt is stamped the first time Status becomes "published" and is
// never rewritten afterwards.
type Post struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Content     string             `bson:"content" json:"content,omitempty"`
	Excerpt     string             `bson:"excerpt" json:"excerpt"`
	Tags        []string           `bson:"tags" json:"tags"`
	Status      string             `bson:"status" json:"status"`
	Author      string             `bson:"author" json:"author"`
	ReadTime    int                `bson:"read_time" json:"read_time"`
	Views       int64              `bson:"views" json:"views"`
	PublishedAt *time.Time         `bson:"published_at,omitempty" json:"published_at,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// IsValidPostStatus reports whether s is one of PostStatuses.
func IsValidPostStatus(s string) bool {
	for _, v := range PostStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// TagCount is one popular-tag aggregation row.
type TagCount struct {
	Tag   string `bson:"_id" json:"tag"`
	Count int64  `bson:"count" json:"count"`
}

// PostStats is the blog-wide stats aggregation result.
type PostStats struct {
	TotalPosts     int64   `bson:"total_posts" json:"totalPosts"`
	PublishedPosts int64   `bson:"published_posts" json:"publishedPosts"`
	DraftPosts     int64   `bson:"draft_posts" json:"draftPosts"`
	TotalViews     int64   `bson:"total_views" json:"totalViews"`
	AvgReadTime    float64 `bson:"avg_read_time" json:"avgReadTime"`
}

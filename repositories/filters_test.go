package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildProjectFilter(t *testing.T) {
	assert.Equal(t, bson.M{}, BuildProjectFilter(ListProjectsOptions{}))
	assert.Equal(t,
		bson.M{"category": "web"},
		BuildProjectFilter(ListProjectsOptions{Category: "web"}))
}

func TestProjectSortOrder(t *testing.T) {
	assert.Equal(t,
		bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}},
		ProjectSortOrder("oldest"))
	assert.Equal(t,
		bson.D{{Key: "title", Value: 1}, {Key: "_id", Value: 1}},
		ProjectSortOrder("title"))
	// Unknown keywords fall back to newest-first.
	assert.Equal(t,
		bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}},
		ProjectSortOrder("whatever"))
}

func TestBuildPostFilter(t *testing.T) {
	assert.Equal(t, bson.M{}, BuildPostFilter(ListPostsOptions{}))

	filter := BuildPostFilter(ListPostsOptions{Status: "published", Tag: "go"})
	assert.Equal(t, "published", filter["status"])
	tag, ok := filter["tags"].(primitive.Regex)
	assert.True(t, ok)
	assert.Equal(t, "^go$", tag.Pattern)
	assert.Equal(t, "i", tag.Options)

	// Regex metacharacters in the tag must match literally.
	filter = BuildPostFilter(ListPostsOptions{Tag: "c++"})
	tag = filter["tags"].(primitive.Regex)
	assert.Equal(t, `^c\+\+$`, tag.Pattern)
}

func TestBuildPostFilterSearch(t *testing.T) {
	filter := BuildPostFilter(ListPostsOptions{Search: "mongo"})
	or, ok := filter["$or"].([]bson.M)
	assert.True(t, ok)
	assert.Len(t, or, 3)

	pattern := primitive.Regex{Pattern: "mongo", Options: "i"}
	assert.Equal(t, pattern, or[0]["title"])
	assert.Equal(t, pattern, or[1]["content"])
	assert.Equal(t, pattern, or[2]["tags"])
}

func TestPostSortOrder(t *testing.T) {
	assert.Equal(t,
		bson.D{{Key: "views", Value: -1}, {Key: "_id", Value: -1}},
		PostSortOrder("popular"))
	assert.Equal(t,
		bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}},
		PostSortOrder(""))
}

func TestBuildContactFilter(t *testing.T) {
	assert.Equal(t, bson.M{}, BuildContactFilter(ListContactsOptions{}))
	assert.Equal(t,
		bson.M{"status": "new", "priority": "high"},
		BuildContactFilter(ListContactsOptions{Status: "new", Priority: "high"}))
}

func TestContactSortOrder(t *testing.T) {
	assert.Equal(t,
		bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}},
		ContactSortOrder("name"))
	assert.Equal(t,
		bson.D{{Key: "email", Value: 1}, {Key: "_id", Value: 1}},
		ContactSortOrder("email"))
	assert.Equal(t,
		bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}},
		ContactSortOrder("newest"))
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePage(t *testing.T) {
	page, size := NormalizePage(0, 0)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, size)

	page, size = NormalizePage(-3, 999)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, size)

	page, size = NormalizePage(4, 25)
	assert.Equal(t, 4, page)
	assert.Equal(t, 25, size)
}

func TestBuildProjectUpdateStripsProtectedFields(t *testing.T) {
	set, errs := BuildProjectUpdate(map[string]any{
		"_id":        "64a0c2f5e13f4a2b9c8d1e07",
		"__v":        7,
		"created_at": "2024-01-01T00:00:00Z",
		"updatedAt":  "2024-01-01T00:00:00Z",
		"title":      " Portfolio Site ",
		"unknown":    "dropped silently",
	})
	assert.Empty(t, errs)
	assert.Len(t, set, 1)
	assert.Equal(t, "Portfolio Site", set["title"])
}

func TestBuildProjectUpdateEmptyPayload(t *testing.T) {
	// A payload that strips to nothing still yields a usable (non-nil) set.
	set, errs := BuildProjectUpdate(map[string]any{})
	assert.Empty(t, errs)
	assert.NotNil(t, set)
	assert.Empty(t, set)
}

func TestBuildProjectUpdateValidation(t *testing.T) {
	_, errs := BuildProjectUpdate(map[string]any{"category": "blockchain"})
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0], "Category must be one of")

	_, errs = BuildProjectUpdate(map[string]any{"image": "https://example.com/readme.txt"})
	assert.Contains(t, errs, "Image must be a valid image URL (jpg, jpeg, png, gif, webp, svg)")

	_, errs = BuildProjectUpdate(map[string]any{"title": ""})
	assert.Contains(t, errs, "Title is required")

	set, errs := BuildProjectUpdate(map[string]any{
		"category":   "web",
		"image":      "https://cdn.example.com/shot.png?v=2",
		"github_url": " https://github.com/example/portfolio ",
	})
	assert.Empty(t, errs)
	assert.Equal(t, "web", set["category"])
	assert.Equal(t, "https://github.com/example/portfolio", set["github_url"])
}

func TestBuildProjectUpdateTechnologies(t *testing.T) {
	// JSON decoding hands the service []any, not []string.
	set, errs := BuildProjectUpdate(map[string]any{
		"technologies": []any{" Go ", "MongoDB", ""},
	})
	assert.Empty(t, errs)
	assert.Equal(t, []string{"Go", "MongoDB"}, set["technologies"])

	_, errs = BuildProjectUpdate(map[string]any{"technologies": "Go"})
	assert.Contains(t, errs, "technologies must be an array of strings")

	_, errs = BuildProjectUpdate(map[string]any{"technologies": []any{"Go", 42}})
	assert.Contains(t, errs, "technologies must be an array of strings")
}

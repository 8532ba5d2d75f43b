package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"portfolio-backend/models"
	"portfolio-backend/repositories"
)

// fakePostStore records view-count increments so the fetch side effect is
// observable without a running store.
type fakePostStore struct {
	post       *models.Post
	increments int
}

func (f *fakePostStore) FindByIDAndIncrementViews(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	f.increments++
	if f.post == nil || f.post.ID != id {
		return nil, mongo.ErrNoDocuments
	}
	f.post.Views++
	return f.post, nil
}

func (f *fakePostStore) List(ctx context.Context, opt repositories.ListPostsOptions) ([]models.Post, int64, error) {
	return nil, 0, nil
}

func (f *fakePostStore) PopularTags(ctx context.Context, limit int) ([]models.TagCount, error) {
	return nil, nil
}

func (f *fakePostStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	if f.post == nil || f.post.ID != id {
		return nil, mongo.ErrNoDocuments
	}
	return f.post, nil
}

func (f *fakePostStore) Insert(ctx context.Context, p *models.Post) (*mongo.InsertOneResult, error) {
	return &mongo.InsertOneResult{InsertedID: primitive.NewObjectID()}, nil
}

func (f *fakePostStore) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Post, error) {
	if f.post == nil || f.post.ID != id {
		return nil, mongo.ErrNoDocuments
	}
	return f.post, nil
}

func (f *fakePostStore) DeleteByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	return nil, mongo.ErrNoDocuments
}

func (f *fakePostStore) Stats(ctx context.Context) (*models.PostStats, error) {
	return &models.PostStats{}, nil
}

func TestNormalizeTags(t *testing.T) {
	assert.Equal(t,
		[]string{"go", "mongodb", "rest"},
		NormalizeTags([]string{" Go ", "MongoDB", "rest", "", "   "}))
	assert.Empty(t, NormalizeTags(nil))
}

func TestComputeReadTime(t *testing.T) {
	assert.Equal(t, 0, ComputeReadTime(""))
	assert.Equal(t, 1, ComputeReadTime("a few short words"))
	assert.Equal(t, 1, ComputeReadTime(strings.Repeat("word ", 200)))
	assert.Equal(t, 2, ComputeReadTime(strings.Repeat("word ", 201)))
	assert.Equal(t, 5, ComputeReadTime(strings.Repeat("word ", 1000)))
}

func TestDeriveExcerpt(t *testing.T) {
	assert.Equal(t, "short content", DeriveExcerpt("short content"))

	long := strings.Repeat("x", 400)
	excerpt := DeriveExcerpt(long)
	assert.True(t, strings.HasSuffix(excerpt, "..."))
	assert.LessOrEqual(t, len([]rune(excerpt)), 153)
}

func TestMaybeStampPublished(t *testing.T) {
	draft := &models.Post{Status: models.PostStatusDraft}
	MaybeStampPublished(draft)
	assert.Nil(t, draft.PublishedAt)

	published := &models.Post{Status: models.PostStatusPublished}
	MaybeStampPublished(published)
	assert.NotNil(t, published.PublishedAt)

	// Stamped exactly once: a second pass keeps the original timestamp.
	first := *published.PublishedAt
	time.Sleep(time.Millisecond)
	MaybeStampPublished(published)
	assert.Equal(t, first, *published.PublishedAt)
}

func TestGetHidesUnpublishedAfterIncrementingViews(t *testing.T) {
	store := &fakePostStore{post: &models.Post{
		ID:     primitive.NewObjectID(),
		Status: models.PostStatusDraft,
		Views:  3,
	}}
	svc := NewPostService(store)

	_, err := svc.Get(context.Background(), store.post.ID.Hex())
	assert.ErrorIs(t, err, ErrNotFound)
	// The counter moved even though the caller saw nothing.
	assert.Equal(t, 1, store.increments)
	assert.Equal(t, int64(4), store.post.Views)
}

func TestGetReturnsPublishedPostWithIncrementedViews(t *testing.T) {
	store := &fakePostStore{post: &models.Post{
		ID:     primitive.NewObjectID(),
		Status: models.PostStatusPublished,
		Views:  3,
	}}
	svc := NewPostService(store)

	post, err := svc.Get(context.Background(), store.post.ID.Hex())
	assert.NoError(t, err)
	assert.Equal(t, int64(4), post.Views)
	assert.Equal(t, 1, store.increments)
}

func TestGetMissingPost(t *testing.T) {
	svc := NewPostService(&fakePostStore{})

	_, err := svc.Get(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Get(context.Background(), "not-a-hex-id")
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestStampPublishedOnUpdate(t *testing.T) {
	set := bson.M{"status": models.PostStatusPublished}
	StampPublishedOnUpdate(set, &models.Post{Status: models.PostStatusDraft})
	assert.Contains(t, set, "published_at")

	// Already published once: the original timestamp survives the edit.
	stamped := time.Now().Add(-time.Hour)
	set = bson.M{"status": models.PostStatusPublished}
	StampPublishedOnUpdate(set, &models.Post{Status: models.PostStatusPublished, PublishedAt: &stamped})
	assert.NotContains(t, set, "published_at")

	set = bson.M{"status": models.PostStatusArchived}
	StampPublishedOnUpdate(set, &models.Post{Status: models.PostStatusPublished})
	assert.NotContains(t, set, "published_at")

	set = bson.M{"title": "edited"}
	StampPublishedOnUpdate(set, &models.Post{Status: models.PostStatusDraft})
	assert.NotContains(t, set, "published_at")
}

func TestBuildPostUpdateStripsProtectedFields(t *testing.T) {
	set, errs := BuildPostUpdate(map[string]any{
		"_id":          "64a0c2f5e13f4a2b9c8d1e07",
		"__v":          3,
		"created_at":   "2024-01-01T00:00:00Z",
		"views":        100000,
		"published_at": "2024-01-01T00:00:00Z",
		"title":        "  New Title  ",
	})
	assert.Empty(t, errs)
	assert.Len(t, set, 1)
	assert.Equal(t, "New Title", set["title"])
}

func TestBuildPostUpdateRecomputesDerivedFields(t *testing.T) {
	content := strings.Repeat("word ", 450)
	set, errs := BuildPostUpdate(map[string]any{"content": content})
	assert.Empty(t, errs)
	assert.Equal(t, 3, set["read_time"])
	excerpt, ok := set["excerpt"].(string)
	assert.True(t, ok)
	assert.True(t, strings.HasSuffix(excerpt, "..."))

	// An explicit excerpt wins over the derived one.
	set, errs = BuildPostUpdate(map[string]any{"content": content, "excerpt": "my own excerpt"})
	assert.Empty(t, errs)
	assert.Equal(t, "my own excerpt", set["excerpt"])
}

func TestBuildPostUpdateNormalizesTags(t *testing.T) {
	set, errs := BuildPostUpdate(map[string]any{"tags": []any{" Go ", "MongoDB"}})
	assert.Empty(t, errs)
	assert.Equal(t, []string{"go", "mongodb"}, set["tags"])
}

func TestBuildPostUpdateRejectsBadValues(t *testing.T) {
	_, errs := BuildPostUpdate(map[string]any{"status": "scheduled"})
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0], "Status must be one of")

	_, errs = BuildPostUpdate(map[string]any{"title": ""})
	assert.Contains(t, errs, "Title is required")

	_, errs = BuildPostUpdate(map[string]any{"tags": "not-an-array"})
	assert.Contains(t, errs, "tags must be an array of strings")
}

package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"portfolio-backend/cmd/api/dto"
	"portfolio-backend/models"
	"portfolio-backend/repositories"
)

const (
	wordsPerMinute   = 200
	excerptRuneLimit = 150
	popularTagLimit  = 10
)

// PostStore is the persistence surface PostService depends on.
// *repositories.PostRepository satisfies it.
type PostStore interface {
	List(ctx context.Context, opt repositories.ListPostsOptions) ([]models.Post, int64, error)
	PopularTags(ctx context.Context, limit int) ([]models.TagCount, error)
	FindByIDAndIncrementViews(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
	Insert(ctx context.Context, p *models.Post) (*mongo.InsertOneResult, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Post, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
	Stats(ctx context.Context) (*models.PostStats, error)
}

// PostService encapsulates business logic for blog posts: tag
// normalization, derived excerpt/read-time, the publish timestamp rule and
// the view-count side effect.
type PostService struct {
	repo PostStore
}

func NewPostService(repo PostStore) *PostService {
	return &PostService{repo: repo}
}

type ListPostsInput struct {
	Status   string
	Tag      string
	Search   string
	Sort     string
	Page     int
	PageSize int
}

type ListPostsResult struct {
	Posts       []models.Post
	PopularTags []models.TagCount
	Pagination  dto.PostPagination
}

// List returns a page of posts without their content, plus the most used
// tags among published posts. Status defaults to published for the public
// surface.
func (s *PostService) List(ctx context.Context, in ListPostsInput) (*ListPostsResult, error) {
	if in.Status == "" {
		in.Status = models.PostStatusPublished
	}
	in.Page, in.PageSize = NormalizePage(in.Page, in.PageSize)

	items, total, err := s.repo.List(ctx, repositories.ListPostsOptions{
		Status:   in.Status,
		Tag:      strings.ToLower(strings.TrimSpace(in.Tag)),
		Search:   strings.TrimSpace(in.Search),
		Sort:     in.Sort,
		Page:     in.Page,
		PageSize: in.PageSize,
	})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Post{}
	}

	tags, err := s.repo.PopularTags(ctx, popularTagLimit)
	if err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []models.TagCount{}
	}

	return &ListPostsResult{
		Posts:       items,
		PopularTags: tags,
		Pagination: dto.PostPagination{
			Pagination: dto.NewPagination(in.Page, in.PageSize, total),
			TotalPosts: total,
		},
	}, nil
}

// Get increments the view counter atomically with the fetch, then hides the
// post unless it is published. The increment deliberately happens first, so
// an unpublished post's counter advances even though the caller sees
// NotFound; stored counters stay compatible with that behavior.
func (s *PostService) Get(ctx context.Context, hexID string) (*models.Post, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, ErrInvalidID
	}
	p, err := s.repo.FindByIDAndIncrementViews(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if p.Status != models.PostStatusPublished {
		return nil, ErrNotFound
	}
	return p, nil
}

// Create validates and persists a new post. Tags are normalized, the
// excerpt is derived from content when absent, read time is computed from
// the word count, and a post born published gets its publish timestamp.
func (s *PostService) Create(ctx context.Context, in dto.PostRequest) (*models.Post, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)
	if in.Status == "" {
		in.Status = models.PostStatusDraft
	}

	if errs := ValidatePost(in.Title, in.Content, in.Status); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	excerpt := strings.TrimSpace(in.Excerpt)
	if excerpt == "" {
		excerpt = DeriveExcerpt(in.Content)
	}

	p := &models.Post{
		Title:    in.Title,
		Content:  in.Content,
		Excerpt:  excerpt,
		Tags:     NormalizeTags(in.Tags),
		Status:   in.Status,
		Author:   strings.TrimSpace(in.Author),
		ReadTime: ComputeReadTime(in.Content),
	}
	MaybeStampPublished(p)

	res, err := s.repo.Insert(ctx, p)
	if err != nil {
		return nil, err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = id
	}
	return p, nil
}

// protected field names stripped from every partial post update. views is
// included: the counter can only move through the get side effect.
var protectedPostFields = []string{"id", "_id", "__v", "created_at", "createdAt", "updated_at", "updatedAt", "views", "published_at", "publishedAt", "read_time", "readTime"}

// BuildPostUpdate turns a partial payload into a validated field set.
// Content changes recompute read time, and re-derive the excerpt unless the
// payload sets one explicitly.
func BuildPostUpdate(fields map[string]any) (bson.M, []string) {
	for _, k := range protectedPostFields {
		delete(fields, k)
	}

	set := bson.M{}
	var errs []string
	for key, value := range fields {
		switch key {
		case "title", "content", "excerpt", "status", "author":
			str, ok := value.(string)
			if !ok {
				errs = append(errs, fmt.Sprintf("%s must be a string", key))
				continue
			}
			set[key] = strings.TrimSpace(str)
		case "tags":
			list, ok := toStringSlice(value)
			if !ok {
				errs = append(errs, "tags must be an array of strings")
				continue
			}
			set[key] = NormalizeTags(list)
		}
	}

	if title, ok := set["title"].(string); ok {
		if title == "" {
			errs = append(errs, "Title is required")
		} else if len(title) > maxTitleLength {
			errs = append(errs, fmt.Sprintf("Title cannot exceed %d characters", maxTitleLength))
		}
	}
	if content, ok := set["content"].(string); ok {
		if content == "" {
			errs = append(errs, "Content is required")
		} else {
			set["read_time"] = ComputeReadTime(content)
			if _, explicit := set["excerpt"]; !explicit {
				set["excerpt"] = DeriveExcerpt(content)
			}
		}
	}
	if status, ok := set["status"].(string); ok && !models.IsValidPostStatus(status) {
		errs = append(errs, fmt.Sprintf("Status must be one of: %s", strings.Join(models.PostStatuses, ", ")))
	}
	return set, errs
}

// Update applies a partial edit. When the edit publishes a post that was
// never published before, the publish timestamp is stamped exactly once.
func (s *PostService) Update(ctx context.Context, hexID string, fields map[string]any) (*models.Post, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, ErrInvalidID
	}

	set, errs := BuildPostUpdate(fields)
	if len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}

	StampPublishedOnUpdate(set, existing)

	p, err := s.repo.UpdateByID(ctx, id, set)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *PostService) Delete(ctx context.Context, hexID string) (*dto.DeletedPostDTO, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, ErrInvalidID
	}
	p, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &dto.DeletedPostDTO{ID: p.ID.Hex(), Title: p.Title}, nil
}

func (s *PostService) Stats(ctx context.Context) (*models.PostStats, error) {
	return s.repo.Stats(ctx)
}

// NormalizeTags lowercases and trims tags, dropping empties.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// ComputeReadTime estimates reading minutes as word count over 200, rounded
// up. Non-empty content always reads as at least one minute.
func ComputeReadTime(content string) int {
	words := len(strings.Fields(content))
	if words == 0 {
		return 0
	}
	return (words + wordsPerMinute - 1) / wordsPerMinute
}

// DeriveExcerpt takes the leading runes of content as a fallback excerpt.
func DeriveExcerpt(content string) string {
	content = strings.TrimSpace(content)
	rs := []rune(content)
	if len(rs) <= excerptRuneLimit {
		return content
	}
	return strings.TrimSpace(string(rs[:excerptRuneLimit])) + "..."
}

// MaybeStampPublished stamps the publish timestamp on a post that is
// published and has never been published before.
func MaybeStampPublished(p *models.Post) {
	if p.Status == models.PostStatusPublished && p.PublishedAt == nil {
		now := time.Now()
		p.PublishedAt = &now
	}
}

// StampPublishedOnUpdate adds the publish timestamp to the field set when
// the edit publishes a post that was never published before. A post already
// published once keeps its original timestamp.
func StampPublishedOnUpdate(set bson.M, existing *models.Post) {
	if status, ok := set["status"].(string); ok &&
		status == models.PostStatusPublished && existing.PublishedAt == nil {
		set["published_at"] = time.Now()
	}
}

package services

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"portfolio-backend/cmd/api/dto"
	"portfolio-backend/config"
	"portfolio-backend/models"
	"portfolio-backend/repositories"
)

// ProjectService encapsulates business logic for portfolio projects.
type ProjectService struct {
	repo *repositories.ProjectRepository
}

func NewProjectService(repo *repositories.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

type ListProjectsInput struct {
	Category string
	Sort     string
	Page     int
	PageSize int
}

// NormalizePage clamps page and page size to the configured bounds.
func NormalizePage(page, pageSize int) (int, int) {
	cfg := config.GetConfig().Pagination
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > cfg.MaxPageSize {
		pageSize = cfg.DefaultPageSize
	}
	return page, pageSize
}

func (s *ProjectService) List(ctx context.Context, in ListProjectsInput) ([]models.Project, dto.ProjectPagination, error) {
	in.Page, in.PageSize = NormalizePage(in.Page, in.PageSize)
	items, total, err := s.repo.List(ctx, repositories.ListProjectsOptions{
		Category: in.Category,
		Sort:     in.Sort,
		Page:     in.Page,
		PageSize: in.PageSize,
	})
	if err != nil {
		return nil, dto.ProjectPagination{}, err
	}
	if items == nil {
		items = []models.Project{}
	}
	return items, dto.ProjectPagination{
		Pagination:    dto.NewPagination(in.Page, in.PageSize, total),
		TotalProjects: total,
	}, nil
}

func (s *ProjectService) Get(ctx context.Context, hexID string) (*models.Project, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, ErrInvalidID
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// Create validates, trims and persists a new project. Optional fields
// default to empty values rather than being left unset.
func (s *ProjectService) Create(ctx context.Context, in dto.ProjectRequest) (*models.Project, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Category = strings.TrimSpace(in.Category)
	in.Image = strings.TrimSpace(in.Image)
	in.Description = strings.TrimSpace(in.Description)

	if errs := ValidateProject(in.Title, in.Category, in.Image, in.Description); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	technologies := make([]string, 0, len(in.Technologies))
	for _, t := range in.Technologies {
		if t = strings.TrimSpace(t); t != "" {
			technologies = append(technologies, t)
		}
	}

	p := &models.Project{
		Title:        in.Title,
		Category:     in.Category,
		Image:        in.Image,
		Description:  in.Description,
		Technologies: technologies,
		ProjectURL:   strings.TrimSpace(in.ProjectURL),
		GithubURL:    strings.TrimSpace(in.GithubURL),
	}
	res, err := s.repo.Insert(ctx, p)
	if err != nil {
		return nil, err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = id
	}
	return p, nil
}

// protected field names stripped from every partial update before it is
// applied. Both snake_case and the legacy document-store spellings are
// covered so a replayed stored record cannot rewrite them.
var protectedProjectFields = []string{"id", "_id", "__v", "created_at", "createdAt", "updated_at", "updatedAt"}

// BuildProjectUpdate turns a partial payload into a validated field set.
// Unknown and protected keys are dropped silently.
func BuildProjectUpdate(fields map[string]any) (bson.M, []string) {
	for _, k := range protectedProjectFields {
		delete(fields, k)
	}

	set := bson.M{}
	var errs []string
	for key, value := range fields {
		switch key {
		case "title", "category", "image", "description", "project_url", "github_url":
			str, ok := value.(string)
			if !ok {
				errs = append(errs, fmt.Sprintf("%s must be a string", key))
				continue
			}
			set[key] = strings.TrimSpace(str)
		case "technologies":
			list, ok := toStringSlice(value)
			if !ok {
				errs = append(errs, "technologies must be an array of strings")
				continue
			}
			set[key] = list
		}
	}

	if title, ok := set["title"].(string); ok {
		if title == "" {
			errs = append(errs, "Title is required")
		} else if len(title) > maxTitleLength {
			errs = append(errs, fmt.Sprintf("Title cannot exceed %d characters", maxTitleLength))
		}
	}
	if category, ok := set["category"].(string); ok && !models.IsValidProjectCategory(category) {
		errs = append(errs, fmt.Sprintf("Category must be one of: %s", strings.Join(models.ProjectCategories, ", ")))
	}
	if image, ok := set["image"].(string); ok && !IsValidImageURL(image) {
		errs = append(errs, "Image must be a valid image URL (jpg, jpeg, png, gif, webp, svg)")
	}
	if description, ok := set["description"].(string); ok && len(description) > maxDescriptionLength {
		errs = append(errs, fmt.Sprintf("Description cannot exceed %d characters", maxDescriptionLength))
	}
	return set, errs
}

func (s *ProjectService) Update(ctx context.Context, hexID string, fields map[string]any) (*models.Project, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, ErrInvalidID
	}

	set, errs := BuildProjectUpdate(fields)
	if len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	// An empty set still bumps updated_at and resolves NotFound the same
	// way a real update would.
	p, err := s.repo.UpdateByID(ctx, id, set)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *ProjectService) Delete(ctx context.Context, hexID string) (*dto.DeletedProjectDTO, error) {
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
	return &dto.DeletedProjectDTO{ID: p.ID.Hex(), Title: p.Title}, nil
}

// toStringSlice coerces a decoded JSON array into []string, trimming each
// element and dropping empties.
func toStringSlice(value any) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		out := make([]string, 0, len(v))
		for _, s := range v {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out, true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out, true
	default:
		return nil, false
	}
}

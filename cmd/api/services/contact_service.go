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

// ContactService encapsulates business logic for contact-form messages:
// the public submit path, admin triage and the replied-once stamp.
type ContactService struct {
	repo *repositories.ContactRepository
}

func NewContactService(repo *repositories.ContactRepository) *ContactService {
	return &ContactService{repo: repo}
}

type SubmitContactInput struct {
	Name      string
	Email     string
	Phone     string
	Subject   string
	Message   string
	IPAddress string
	UserAgent string
}

// Submit validates and persists a public submission with default triage
// state. Caller metadata is captured for abuse tracing but never echoed.
func (s *ContactService) Submit(ctx context.Context, in SubmitContactInput) (*dto.ContactSubmittedDTO, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Message = strings.TrimSpace(in.Message)
	in.Subject = strings.TrimSpace(in.Subject)

	if errs := ValidateContact(in.Name, in.Email, in.Subject, in.Message); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	m := &models.Contact{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     strings.TrimSpace(in.Phone),
		Subject:   in.Subject,
		Message:   in.Message,
		Status:    models.ContactStatusNew,
		Priority:  "normal",
		Source:    "website",
		IPAddress: in.IPAddress,
		UserAgent: in.UserAgent,
	}
	res, err := s.repo.Insert(ctx, m)
	if err != nil {
		return nil, err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		m.ID = id
	}
	return &dto.ContactSubmittedDTO{
		ID:        m.ID.Hex(),
		Name:      m.Name,
		Email:     m.Email,
		CreatedAt: m.CreatedAt,
	}, nil
}

type ListContactsInput struct {
	Status   string
	Priority string
	Sort     string
	Page     int
	PageSize int
}

type ListContactsResult struct {
	Contacts    []models.Contact
	UnreadCount int64
	Pagination  dto.ContactPagination
}

// List returns a page of messages plus the running unread count. Captured
// IP/user-agent metadata never leaves the store (json:"-" on the model).
func (s *ContactService) List(ctx context.Context, in ListContactsInput) (*ListContactsResult, error) {
	in.Page, in.PageSize = NormalizePage(in.Page, in.PageSize)

	items, total, err := s.repo.List(ctx, repositories.ListContactsOptions{
		Status:   in.Status,
		Priority: in.Priority,
		Sort:     in.Sort,
		Page:     in.Page,
		PageSize: in.PageSize,
	})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Contact{}
	}

	unread, err := s.repo.CountUnread(ctx)
	if err != nil {
		return nil, err
	}

	return &ListContactsResult{
		Contacts:    items,
		UnreadCount: unread,
		Pagination: dto.ContactPagination{
			Pagination:    dto.NewPagination(in.Page, in.PageSize, total),
			TotalContacts: total,
		},
	}, nil
}

// Get fetches a message; a message still in "new" flips to "read" as an
// atomic side effect of the first admin fetch.
func (s *ContactService) Get(ctx context.Context, hexID string) (*models.Contact, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, ErrInvalidID
	}

	m, err := s.repo.MarkReadIfNew(ctx, id)
	if err == nil {
		return m, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	// Not in "new" status (or gone); plain fetch decides which.
	m, err = s.repo.FindByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

// UpdateTriage applies only the supplied status/priority/notes fields. The
// first transition to "replied" stamps respondedAt and respondedBy; both
// stay untouched on every later edit.
func (s *ContactService) UpdateTriage(ctx context.Context, hexID string, in dto.ContactStatusUpdateRequest, actor string) (*models.Contact, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, ErrInvalidID
	}

	set := bson.M{}
	var errs []string
	if in.Status != nil {
		if !models.IsValidContactStatus(*in.Status) {
			errs = append(errs, fmt.Sprintf("Status must be one of: %s", strings.Join(models.ContactStatuses, ", ")))
		} else {
			set["status"] = *in.Status
		}
	}
	if in.Priority != nil {
		if !models.IsValidContactPriority(*in.Priority) {
			errs = append(errs, fmt.Sprintf("Priority must be one of: %s", strings.Join(models.ContactPriorities, ", ")))
		} else {
			set["priority"] = *in.Priority
		}
	}
	if in.Notes != nil {
		set["notes"] = strings.TrimSpace(*in.Notes)
	}
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

	StampRepliedOnUpdate(set, existing, actor)

	m, err := s.repo.UpdateByID(ctx, id, set)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

// StampRepliedOnUpdate adds respondedAt/respondedBy to the field set on the
// first transition to "replied". A message already replied to keeps its
// original stamp on every later edit.
func StampRepliedOnUpdate(set bson.M, existing *models.Contact, actor string) {
	status, ok := set["status"].(string)
	if !ok || status != models.ContactStatusReplied || existing.RespondedAt != nil {
		return
	}
	if actor == "" {
		actor = "admin"
	}
	set["responded_at"] = time.Now()
	set["responded_by"] = actor
}

func (s *ContactService) Delete(ctx context.Context, hexID string) (*dto.DeletedContactDTO, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, ErrInvalidID
	}
	m, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &dto.DeletedContactDTO{ID: m.ID.Hex(), Name: m.Name, Email: m.Email}, nil
}

func (s *ContactService) Stats(ctx context.Context) (*models.ContactStats, error) {
	return s.repo.Stats(ctx)
}

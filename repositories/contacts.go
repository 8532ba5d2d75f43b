package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"portfolio-backend/models"
)

type ContactRepository struct {
	col *mongo.Collection
}

func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{col: db.Collection("contacts")}
}

type ListContactsOptions struct {
	Status   string
	Priority string
	Sort     string // newest | oldest | name | email
	Page     int
	PageSize int
}

// BuildContactFilter maps list options onto a Mongo filter document.
func BuildContactFilter(opt ListContactsOptions) bson.M {
	filter := bson.M{}
	if opt.Status != "" {
		filter["status"] = opt.Status
	}
	if opt.Priority != "" {
		filter["priority"] = opt.Priority
	}
	return filter
}

// ContactSortOrder maps a sort keyword onto a Mongo sort document.
// Unknown keywords fall back to newest-first.
func ContactSortOrder(sort string) bson.D {
	switch sort {
	case "oldest":
		return bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}
	case "name":
		return bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}}
	case "email":
		return bson.D{{Key: "email", Value: 1}, {Key: "_id", Value: 1}}
	default:
		return bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}
	}
}

// List returns contact messages with filters and pagination plus the total
// count of the same filter.
func (r *ContactRepository) List(ctx context.Context, opt ListContactsOptions) ([]models.Contact, int64, error) {
	filter := BuildContactFilter(opt)

	skip := int64((opt.Page - 1) * opt.PageSize)
	limit := int64(opt.PageSize)

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOpts := options.Find().SetSkip(skip).SetLimit(limit).SetSort(ContactSortOrder(opt.Sort))
	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var results []models.Contact
	for cur.Next(ctx) {
		var m models.Contact
		if err := cur.Decode(&m); err != nil {
			return nil, 0, err
		}
		results = append(results, m)
	}
	if err := cur.Err(); err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

// CountUnread counts messages still in the "new" status.
func (r *ContactRepository) CountUnread(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"status": models.ContactStatusNew})
}

// Insert inserts a new contact document.
func (r *ContactRepository) Insert(ctx context.Context, m *models.Contact) (*mongo.InsertOneResult, error) {
	now := time.Now()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now
	return r.col.InsertOne(ctx, m)
}

// FindByID returns a contact message by its ObjectID.
func (r *ContactRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Contact, error) {
	var m models.Contact
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

// MarkReadIfNew flips a "new" message to "read" atomically and returns the
// updated document. Returns mongo.ErrNoDocuments when the message exists but
// is no longer in the "new" status.
func (r *ContactRepository) MarkReadIfNew(ctx context.Context, id primitive.ObjectID) (*models.Contact, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	filter := bson.M{"_id": id, "status": models.ContactStatusNew}
	update := bson.M{"$set": bson.M{"status": models.ContactStatusRead, "updated_at": time.Now()}}
	var m models.Contact
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdateByID applies the given field set and returns the updated document.
func (r *ContactRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Contact, error) {
	set["updated_at"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var m models.Contact
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&m)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// DeleteByID removes a contact message and returns the deleted document.
func (r *ContactRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (*models.Contact, error) {
	var m models.Contact
	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Stats aggregates per-status counts in one pipeline and counts submissions
// from the trailing 7 days.
func (r *ContactRepository) Stats(ctx context.Context) (*models.ContactStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}

	stats := models.ContactStats{}
	for _, row := range rows {
		stats.Total += row.Count
		switch row.Status {
		case models.ContactStatusNew:
			stats.New = row.Count
		case models.ContactStatusRead:
			stats.Read = row.Count
		case models.ContactStatusReplied:
			stats.Replied = row.Count
		case models.ContactStatusArchived:
			stats.Archived = row.Count
		}
	}

	weekAgo := time.Now().AddDate(0, 0, -7)
	lastWeek, err := r.col.CountDocuments(ctx, bson.M{"created_at": bson.M{"$gte": weekAgo}})
	if err != nil {
		return nil, err
	}
	stats.LastWeek = lastWeek
	return &stats, nil
}

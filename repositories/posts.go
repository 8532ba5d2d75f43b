package repositories

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"portfolio-backend/models"
)

type PostRepository struct {
	col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{col: db.Collection("posts")}
}

type ListPostsOptions struct {
	Status   string
	Tag      string
	Search   string
	Sort     string // newest | oldest | title | popular
	Page     int
	PageSize int
}

// BuildPostFilter maps list options onto a Mongo filter document.
// Tag matches case-insensitively inside the tags array; search matches a
// case-insensitive substring across title, content and tags.
func BuildPostFilter(opt ListPostsOptions) bson.M {
	filter := bson.M{}
	if opt.Status != "" {
		filter["status"] = opt.Status
	}
	if opt.Tag != "" {
		filter["tags"] = primitive.Regex{Pattern: "^" + regexp.QuoteMeta(opt.Tag) + "$", Options: "i"}
	}
	if opt.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(opt.Search), Options: "i"}
		filter["$or"] = []bson.M{
			{"title": pattern},
			{"content": pattern},
			{"tags": pattern},
		}
	}
	return filter
}

// PostSortOrder maps a sort keyword onto a Mongo sort document.
// Unknown keywords fall back to newest-first.
func PostSortOrder(sort string) bson.D {
	switch sort {
	case "oldest":
		return bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}
	case "title":
		return bson.D{{Key: "title", Value: 1}, {Key: "_id", Value: 1}}
	case "popular":
		return bson.D{{Key: "views", Value: -1}, {Key: "_id", Value: -1}}
	default:
		return bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}
	}
}

// List returns posts with filters and pagination plus the total count of the
// same filter. The content field is excluded from list results.
func (r *PostRepository) List(ctx context.Context, opt ListPostsOptions) ([]models.Post, int64, error) {
	filter := BuildPostFilter(opt)

	skip := int64((opt.Page - 1) * opt.PageSize)
	limit := int64(opt.PageSize)

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOpts := options.Find().
		SetSkip(skip).
		SetLimit(limit).
		SetSort(PostSortOrder(opt.Sort)).
		SetProjection(bson.M{"content": 0})
	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var results []models.Post
	for cur.Next(ctx) {
		var p models.Post
		if err := cur.Decode(&p); err != nil {
			return nil, 0, err
		}
		results = append(results, p)
	}
	if err := cur.Err(); err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

// FindByIDAndIncrementViews atomically increments the view counter and
// returns the post as it looks after the increment.
func (r *PostRepository) FindByIDAndIncrementViews(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var p models.Post
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"views": 1}}, opts).Decode(&p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindByID returns a post by its ObjectID without side effects.
func (r *PostRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	var p models.Post
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Insert inserts a new post document.
func (r *PostRepository) Insert(ctx context.Context, p *models.Post) (*mongo.InsertOneResult, error) {
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	return r.col.InsertOne(ctx, p)
}

// UpdateByID applies the given field set and returns the updated document.
func (r *PostRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Post, error) {
	set["updated_at"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var p models.Post
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteByID removes a post and returns the deleted document.
func (r *PostRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	var p models.Post
	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// PopularTags returns up to limit tags by usage count across published
// posts, most used first.
func (r *PostRepository) PopularTags(ctx context.Context, limit int) ([]models.TagCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": models.PostStatusPublished}}},
		{{Key: "$unwind", Value: "$tags"}},
		{{Key: "$group", Value: bson.M{"_id": "$tags", "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: limit}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var tags []models.TagCount
	if err := cur.All(ctx, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// Stats aggregates blog-wide counters in a single pipeline. Returns zeros
// when the collection is empty.
func (r *PostRepository) Stats(ctx context.Context) (*models.PostStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":         nil,
			"total_posts": bson.M{"$sum": 1},
			"published_posts": bson.M{"$sum": bson.M{
				"$cond": bson.A{bson.M{"$eq": bson.A{"$status", models.PostStatusPublished}}, 1, 0},
			}},
			"draft_posts": bson.M{"$sum": bson.M{
				"$cond": bson.A{bson.M{"$eq": bson.A{"$status", models.PostStatusDraft}}, 1, 0},
			}},
			"total_views":   bson.M{"$sum": "$views"},
			"avg_read_time": bson.M{"$avg": "$read_time"},
		}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []models.PostStats
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return &models.PostStats{}, nil
	}
	return &rows[0], nil
}

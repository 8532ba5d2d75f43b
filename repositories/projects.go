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

type ProjectRepository struct {
	col *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{col: db.Collection("projects")}
}

type ListProjectsOptions struct {
	Category string
	Sort     string // newest | oldest | title
	Page     int
	PageSize int
}

// BuildProjectFilter maps list options onto a Mongo filter document.
func BuildProjectFilter(opt ListProjectsOptions) bson.M {
	filter := bson.M{}
	if opt.Category != "" {
		filter["category"] = opt.Category
	}
	return filter
}

// ProjectSortOrder maps a sort keyword onto a Mongo sort document.
// Unknown keywords fall back to newest-first.
func ProjectSortOrder(sort string) bson.D {
	switch sort {
	case "oldest":
		return bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}
	case "title":
		return bson.D{{Key: "title", Value: 1}, {Key: "_id", Value: 1}}
	default:
		return bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}
	}
}

// List returns projects with filters and pagination plus the total count of
// the same filter.
func (r *ProjectRepository) List(ctx context.Context, opt ListProjectsOptions) ([]models.Project, int64, error) {
	filter := BuildProjectFilter(opt)

	skip := int64((opt.Page - 1) * opt.PageSize)
	limit := int64(opt.PageSize)

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOpts := options.Find().SetSkip(skip).SetLimit(limit).SetSort(ProjectSortOrder(opt.Sort))
	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var results []models.Project
	for cur.Next(ctx) {
		var p models.Project
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

// FindByID returns a project by its ObjectID.
func (r *ProjectRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	var p models.Project
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Insert inserts a new project document.
func (r *ProjectRepository) Insert(ctx context.Context, p *models.Project) (*mongo.InsertOneResult, error) {
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	return r.col.InsertOne(ctx, p)
}

// UpdateByID applies the given field set and returns the updated document.
func (r *ProjectRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Project, error) {
	set["updated_at"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var p models.Project
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteByID removes a project and returns the deleted document.
func (r *ProjectRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	var p models.Project
	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

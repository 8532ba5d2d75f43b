package repositories

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"portfolio-backend/models"
)

type AdminRepository struct {
	col *mongo.Collection
}

func NewAdminRepository(db *mongo.Database) *AdminRepository {
	return &AdminRepository{col: db.Collection("admins")}
}

// FindByIdentifier returns the admin whose email or username matches the
// given identifier case-insensitively.
func (r *AdminRepository) FindByIdentifier(ctx context.Context, identifier string) (*models.Admin, error) {
	pattern := primitive.Regex{Pattern: "^" + regexp.QuoteMeta(identifier) + "$", Options: "i"}
	filter := bson.M{"$or": []bson.M{
		{"email": pattern},
		{"username": pattern},
	}}
	var a models.Admin
	if err := r.col.FindOne(ctx, filter).Decode(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

// ExistsByUsernameOrEmail checks whether an account already claims either
// the username or the email.
func (r *AdminRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	filter := bson.M{"$or": []bson.M{
		{"username": username},
		{"email": email},
	}}
	err := r.col.FindOne(ctx, filter).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	return err == nil, err
}

// Insert inserts a new admin document.
func (r *AdminRepository) Insert(ctx context.Context, a *models.Admin) (*mongo.InsertOneResult, error) {
	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now
	return r.col.InsertOne(ctx, a)
}

// FindByID returns an admin by its ObjectID.
func (r *AdminRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Admin, error) {
	var a models.Admin
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

package services

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"portfolio-backend/cmd/api/auth"
	"portfolio-backend/cmd/api/dto"
	"portfolio-backend/models"
	"portfolio-backend/repositories"
)

// AuthService encapsulates credential checks, token issuance and token
// verification for admin accounts.
type AuthService struct {
	repo *repositories.AdminRepository
	jwt  *auth.JWTManager
}

func NewAuthService(repo *repositories.AdminRepository, jwt *auth.JWTManager) *AuthService {
	return &AuthService{repo: repo, jwt: jwt}
}

// Login matches the identifier against email or username case-insensitively
// and compares the password against the stored hash. A missing account and a
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (string, *models.Admin, error) {
	account, err := s.repo.FindByIdentifier(ctx, strings.TrimSpace(identifier))
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !auth.CheckPassword(password, account.Password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.jwt.Sign(account.ID.Hex(), account.Username, account.Role)
	if err != nil {
		return "", nil, err
	}
	return token, account, nil
}

// Register creates a new admin account with a hashed password and the
// default role. Hashing happens here, before the store write, never inside
// the persistence layer.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*models.Admin, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if errs := ValidateRegisterInput(username, email, password); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	exists, err := s.repo.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrConflict
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	account := &models.Admin{
		Username: username,
		Email:    email,
		Password: hash,
		Role:     auth.RoleAdmin,
	}
	res, err := s.repo.Insert(ctx, account)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		account.ID = id
	}
	return account, nil
}

// ParseAccessToken verifies a token and returns its claims.
func (s *AuthService) ParseAccessToken(token string) (*auth.Claims, error) {
	return s.jwt.Parse(token)
}

// ResolveAccount loads the password-free account behind verified claims.
// Returns ErrNotFound when the account no longer exists.
func (s *AuthService) ResolveAccount(ctx context.Context, claims *auth.Claims) (*models.Admin, error) {
	id, err := primitive.ObjectIDFromHex(claims.AdminID)
	if err != nil {
		return nil, ErrNotFound
	}
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return account, nil
}

// NewAdminDTO converts an account into its password-free summary.
func NewAdminDTO(a *models.Admin) dto.AdminDTO {
	return dto.AdminDTO{
		ID:        a.ID.Hex(),
		Username:  a.Username,
		Email:     a.Email,
		Role:      a.Role,
		CreatedAt: a.CreatedAt,
	}
}

package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewJWTManagerFromEnvRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_ISSUER", "issuer-for-test")

	manager, err := NewJWTManagerFromEnv()
	if err == nil {
		t.Fatalf("expected error when JWT_SECRET is empty")
	}
	if manager != nil {
		t.Fatalf("expected nil manager when env is invalid")
	}
}

func TestNewJWTManagerFromEnvUsesDefaultIssuer(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_ISSUER", "")

	manager, err := NewJWTManagerFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if manager.issuer != "portfolio-backend" {
		t.Fatalf("expected default issuer portfolio-backend, got %q", manager.issuer)
	}
	if manager.audience != "portfolio-backend-admin" {
		t.Fatalf("expected derived audience, got %q", manager.audience)
	}
	if manager.ttl != 24*time.Hour {
		t.Fatalf("expected default ttl 24h, got %s", manager.ttl)
	}
}

func TestJWTManagerSignAndParseRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_ISSUER", "test-issuer")

	manager, err := NewJWTManagerFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, err := manager.Sign("64a0c2f5e13f4a2b9c8d1e07", "admin", RoleAdmin)
	if err != nil {
		t.Fatalf("unexpected sign error: %v", err)
	}

	claims, err := manager.Parse(token)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if claims.AdminID != "64a0c2f5e13f4a2b9c8d1e07" {
		t.Fatalf("expected admin id round trip, got %q", claims.AdminID)
	}
	if claims.Username != "admin" {
		t.Fatalf("expected username admin, got %q", claims.Username)
	}
	if claims.Role != RoleAdmin {
		t.Fatalf("expected role %q, got %q", RoleAdmin, claims.Role)
	}
}

func TestJWTManagerParseRejectsInvalidSignature(t *testing.T) {
	manager := &JWTManager{
		secret:   []byte("service-secret"),
		issuer:   "issuer",
		audience: "issuer-admin",
		ttl:      time.Hour,
	}

	forgedClaims := jwt.MapClaims{
		"sub":      "64a0c2f5e13f4a2b9c8d1e07",
		"username": "admin",
		"role":     RoleAdmin,
		"iss":      "issuer",
		"aud":      "issuer-admin",
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	forgedToken := jwt.NewWithClaims(jwt.SigningMethodHS256, forgedClaims)
	tokenString, err := forgedToken.SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("failed to sign forged token: %v", err)
	}

	if _, err := manager.Parse(tokenString); err == nil {
		t.Fatalf("expected parse error for invalid signature")
	}
}

func TestJWTManagerParseRejectsExpiredToken(t *testing.T) {
	manager := &JWTManager{
		secret:   []byte("service-secret"),
		issuer:   "issuer",
		audience: "issuer-admin",
		ttl:      time.Hour,
	}

	claims := jwt.MapClaims{
		"sub":      "64a0c2f5e13f4a2b9c8d1e07",
		"username": "admin",
		"role":     RoleAdmin,
		"iss":      "issuer",
		"aud":      "issuer-admin",
		"exp":      time.Now().Add(-time.Minute).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(manager.secret)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	if _, err := manager.Parse(tokenString); err == nil {
		t.Fatalf("expected parse error for expired token")
	}
}

func TestJWTManagerParseRejectsWrongIssuer(t *testing.T) {
	manager := &JWTManager{
		secret:   []byte("service-secret"),
		issuer:   "issuer",
		audience: "issuer-admin",
		ttl:      time.Hour,
	}

	claims := jwt.MapClaims{
		"sub":      "64a0c2f5e13f4a2b9c8d1e07",
		"username": "admin",
		"role":     RoleAdmin,
		"iss":      "someone-else",
		"aud":      "issuer-admin",
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(manager.secret)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	if _, err := manager.Parse(tokenString); err == nil {
		t.Fatalf("expected parse error for wrong issuer")
	}
}

func TestJWTManagerParseRejectsMissingSubClaim(t *testing.T) {
	manager := &JWTManager{
		secret:   []byte("service-secret"),
		issuer:   "issuer",
		audience: "issuer-admin",
		ttl:      time.Hour,
	}

	claims := jwt.MapClaims{
		"username": "admin",
		"role":     RoleAdmin,
		"iss":      "issuer",
		"aud":      "issuer-admin",
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(manager.secret)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	_, err = manager.Parse(tokenString)
	if err == nil {
		t.Fatalf("expected parse error for missing sub claim")
	}
	if !strings.Contains(err.Error(), "token missing sub claim") {
		t.Fatalf("expected missing sub error, got %v", err)
	}
}

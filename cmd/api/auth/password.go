package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// bcrypt cost used for admin passwords. Raising it only affects newly hashed
// passwords; stored hashes keep their original cost.
const bcryptCost = 12

// HashPassword hashes a plaintext password for storage. The hook that used
// to hide this inside the persistence layer is now an explicit call made by
// the auth service before every write that replaces the plaintext field.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compares a plaintext password against a stored hash.
func CheckPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

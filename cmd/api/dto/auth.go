package dto

import "time"

// LoginRequest carries admin credentials. Identifier matches either the
// email or the username, case-insensitively.
type LoginRequest struct {
	Identifier string `json:"identifier" example:"admin@example.com"`
	Password   string `json:"password" example:"secret123"`
}

type RegisterRequest struct {
	Username string `json:"username" example:"admin"`
	Email    string `json:"email" example:"admin@example.com"`
	Password string `json:"password" example:"secret123"`
}

// AdminDTO is the password-free account summary returned by auth endpoints.
type AdminDTO struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginResponse struct {
	Success bool     `json:"success"`
	Token   string   `json:"token"`
	Admin   AdminDTO `json:"admin"`
}

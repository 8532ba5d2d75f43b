package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("john@example.com"))
	assert.True(t, IsValidEmail("john.doe+tag@sub.example.co"))
	assert.False(t, IsValidEmail("john@example"))
	assert.False(t, IsValidEmail("johnexample.com"))
	assert.False(t, IsValidEmail("john @example.com"))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidImageURL(t *testing.T) {
	assert.True(t, IsValidImageURL("https://cdn.example.com/shot.png"))
	assert.True(t, IsValidImageURL("https://cdn.example.com/shot.JPG"))
	assert.True(t, IsValidImageURL("https://cdn.example.com/shot.webp?w=800"))
	assert.False(t, IsValidImageURL("https://cdn.example.com/shot.pdf"))
	assert.False(t, IsValidImageURL("https://cdn.example.com/shot"))
}

func TestValidateRegisterInput(t *testing.T) {
	assert.Empty(t, ValidateRegisterInput("admin", "admin@example.com", "secret123"))

	errs := ValidateRegisterInput("", "", "12345")
	assert.Len(t, errs, 3)
	assert.Contains(t, errs, "Username is required")
	assert.Contains(t, errs, "Email is required")
	assert.Contains(t, errs, "Password must be at least 6 characters")

	errs = ValidateRegisterInput("admin", "not-an-email", "secret123")
	assert.Equal(t, []string{"Please provide a valid email address"}, errs)
}

func TestValidateProject(t *testing.T) {
	assert.Empty(t, ValidateProject("Weather Dashboard", "web", "https://cdn.example.com/shot.png", "A dashboard"))

	errs := ValidateProject("", "", "", "")
	assert.Contains(t, errs, "Title is required")
	assert.Contains(t, errs, "Category is required")
	assert.Contains(t, errs, "Image is required")

	errs = ValidateProject("Weather Dashboard", "Not A Real Category", "https://cdn.example.com/shot.png", "")
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0], "Category must be one of")

	errs = ValidateProject("Weather Dashboard", "web", "https://cdn.example.com/shot.pdf", "")
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0], "Image must be a valid image URL")
}

func TestValidatePost(t *testing.T) {
	assert.Empty(t, ValidatePost("Shipping a side project", "Some content here.", "draft"))

	errs := ValidatePost("", "", "")
	assert.Contains(t, errs, "Title is required")
	assert.Contains(t, errs, "Content is required")

	errs = ValidatePost("Title", "Content", "scheduled")
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0], "Status must be one of")
}

func TestValidateContact(t *testing.T) {
	assert.Empty(t, ValidateContact("John Doe", "john@example.com", "", "I am interested in hiring you for a web project."))

	errs := ValidateContact("", "", "", "")
	assert.Contains(t, errs, "Name is required")
	assert.Contains(t, errs, "Email is required")
	assert.Contains(t, errs, "Message is required")

	errs = ValidateContact("John Doe", "john@", "", "hello")
	assert.Equal(t, []string{"Please provide a valid email address"}, errs)
}

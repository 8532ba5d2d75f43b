package services

import (
	"fmt"
	"regexp"
	"strings"

	"portfolio-backend/models"
)

// Validation limits. These mirror the declarative field rules the document
// schemas used to carry, made explicit so they run before any store call.
const (
	minPasswordLength    = 6
	maxTitleLength       = 100
	maxDescriptionLength = 2000
	maxNameLength        = 100
	maxSubjectLength     = 200
	maxMessageLength     = 5000
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	imagePattern = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|gif|webp|svg)(\?.*)?$`)
)

// IsValidEmail reports whether s matches the contact email pattern.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsValidImageURL reports whether s ends with an image extension.
func IsValidImageURL(s string) bool {
	return imagePattern.MatchString(s)
}

// ValidateRegisterInput returns one message per failed field.
func ValidateRegisterInput(username, email, password string) []string {
	var errs []string
	if strings.TrimSpace(username) == "" {
		errs = append(errs, "Username is required")
	}
	if strings.TrimSpace(email) == "" {
		errs = append(errs, "Email is required")
	} else if !IsValidEmail(email) {
		errs = append(errs, "Please provide a valid email address")
	}
	if len(password) < minPasswordLength {
		errs = append(errs, fmt.Sprintf("Password must be at least %d characters", minPasswordLength))
	}
	return errs
}

// ValidateProject returns one message per failed field of a full project
// payload. Title, category and image are always required.
func ValidateProject(title, category, image, description string) []string {
	var errs []string
	if strings.TrimSpace(title) == "" {
		errs = append(errs, "Title is required")
	} else if len(title) > maxTitleLength {
		errs = append(errs, fmt.Sprintf("Title cannot exceed %d characters", maxTitleLength))
	}
	if strings.TrimSpace(category) == "" {
		errs = append(errs, "Category is required")
	} else if !models.IsValidProjectCategory(category) {
		errs = append(errs, fmt.Sprintf("Category must be one of: %s", strings.Join(models.ProjectCategories, ", ")))
	}
	if strings.TrimSpace(image) == "" {
		errs = append(errs, "Image is required")
	} else if !IsValidImageURL(image) {
		errs = append(errs, "Image must be a valid image URL (jpg, jpeg, png, gif, webp, svg)")
	}
	if len(description) > maxDescriptionLength {
		errs = append(errs, fmt.Sprintf("Description cannot exceed %d characters", maxDescriptionLength))
	}
	return errs
}

// ValidatePost returns one message per failed field of a full post payload.
func ValidatePost(title, content, status string) []string {
	var errs []string
	if strings.TrimSpace(title) == "" {
		errs = append(errs, "Title is required")
	} else if len(title) > maxTitleLength {
		errs = append(errs, fmt.Sprintf("Title cannot exceed %d characters", maxTitleLength))
	}
	if strings.TrimSpace(content) == "" {
		errs = append(errs, "Content is required")
	}
	if status != "" && !models.IsValidPostStatus(status) {
		errs = append(errs, fmt.Sprintf("Status must be one of: %s", strings.Join(models.PostStatuses, ", ")))
	}
	return errs
}

// ValidateContact returns one message per failed field of a contact-form
// submission.
func ValidateContact(name, email, subject, message string) []string {
	var errs []string
	if strings.TrimSpace(name) == "" {
		errs = append(errs, "Name is required")
	} else if len(name) > maxNameLength {
		errs = append(errs, fmt.Sprintf("Name cannot exceed %d characters", maxNameLength))
	}
	if strings.TrimSpace(email) == "" {
		errs = append(errs, "Email is required")
	} else if !IsValidEmail(email) {
		errs = append(errs, "Please provide a valid email address")
	}
	if len(subject) > maxSubjectLength {
		errs = append(errs, fmt.Sprintf("Subject cannot exceed %d characters", maxSubjectLength))
	}
	if strings.TrimSpace(message) == "" {
		errs = append(errs, "Message is required")
	} else if len(message) > maxMessageLength {
		errs = append(errs, fmt.Sprintf("Message cannot exceed %d characters", maxMessageLength))
	}
	return errs
}

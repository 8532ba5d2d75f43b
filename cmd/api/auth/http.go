package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var ErrMissingToken = errors.New("missing_token")

// ExtractToken pulls the token from the Authorization header. Both the
// "Bearer <token>" form and a bare token value are accepted identically.
func ExtractToken(c *gin.Context) (string, error) {
	authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
	if authHeader == "" {
		return "", ErrMissingToken
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if strings.EqualFold(parts[0], "bearer") {
		if len(parts) != 2 {
			return "", ErrMissingToken
		}
		token := strings.TrimSpace(parts[1])
		if token == "" {
			return "", ErrMissingToken
		}
		return token, nil
	}

	return authHeader, nil
}

// AbortWithAccessDenied aborts the request with 403 and a message body.
func AbortWithAccessDenied(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": message})
}

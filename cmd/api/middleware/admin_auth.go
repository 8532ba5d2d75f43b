package middleware

import (
	"github.com/gin-gonic/gin"

	"portfolio-backend/cmd/api/auth"
	"portfolio-backend/cmd/api/services"
	"portfolio-backend/internal/logger"
)

// Gin context keys set by AdminAuth for downstream handlers.
const (
	CtxAdminID  = "admin_id"
	CtxUsername = "username"
	CtxRole     = "role"
)

// AdminAuth 는 요청 헤더의 토큰을 검증하고, 검증된 신원을 컨텍스트에 저장한다.
// 토큰이 없거나 유효하지 않으면 403으로 요청을 중단한다.
func AdminAuth(authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractToken(c)
		if err != nil {
			auth.AbortWithAccessDenied(c, "Access denied. No token provided.")
			return
		}

		claims, err := authSvc.ParseAccessToken(token)
		if err != nil {
			logger.Log.Debugf("token parse error: %v", err)
			auth.AbortWithAccessDenied(c, "Invalid token.")
			return
		}

		c.Set(CtxAdminID, claims.AdminID)
		c.Set(CtxUsername, claims.Username)
		c.Set(CtxRole, claims.Role)

		c.Next()
	}
}

// CallerUsername returns the verified username attached by AdminAuth, or ""
// when the route is unprotected.
func CallerUsername(c *gin.Context) string {
	username, _ := c.Get(CtxUsername)
	s, _ := username.(string)
	return s
}

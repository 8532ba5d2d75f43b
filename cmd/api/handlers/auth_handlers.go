package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/cmd/api/auth"
	"portfolio-backend/cmd/api/dto"
	"portfolio-backend/cmd/api/services"
)

// LoginHandler godoc
// @Summary      관리자 로그인
// @Description  이메일 또는 유저네임과 비밀번호로 로그인하고 24시간 유효한 토큰을 발급받습니다.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LoginRequest  true  "credentials"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /auth/login [post]
func LoginHandler(authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.LoginRequest
		if !bindJSON(c, &req) {
			return
		}
		if req.Identifier == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Success: false,
				Message: "Identifier and password are required",
			})
			return
		}

		token, account, err := authSvc.Login(c.Request.Context(), req.Identifier, req.Password)
		if err != nil {
			respondError(c, err, "Admin not found", "Login failed")
			return
		}

		c.JSON(http.StatusOK, dto.LoginResponse{
			Success: true,
			Token:   token,
			Admin:   services.NewAdminDTO(account),
		})
	}
}

// RegisterHandler godoc
// @Summary      관리자 계정 등록
// @Description  새 관리자 계정을 생성합니다. 유저네임/이메일이 이미 존재하면 409를 반환합니다.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RegisterRequest  true  "new account"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /auth/register [post]
func RegisterHandler(authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.RegisterRequest
		if !bindJSON(c, &req) {
			return
		}

		account, err := authSvc.Register(c.Request.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			respondError(c, err, "Admin not found", "Registration failed")
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Admin account created",
			"admin":   services.NewAdminDTO(account),
		})
	}
}

// MeHandler godoc
// @Summary      현재 토큰의 계정 조회
// @Description  Authorization 헤더의 토큰을 검증하고, 해당 계정의 비밀번호 없는 요약을 반환합니다.
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /auth/me [get]
func MeHandler(authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractToken(c)
		if err != nil {
			auth.AbortWithAccessDenied(c, "Access denied. No token provided.")
			return
		}
		claims, err := authSvc.ParseAccessToken(token)
		if err != nil {
			auth.AbortWithAccessDenied(c, "Invalid token.")
			return
		}

		account, err := authSvc.ResolveAccount(c.Request.Context(), claims)
		if err != nil {
			respondError(c, err, "Admin not found", "Failed to load account")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"admin":   services.NewAdminDTO(account),
		})
	}
}

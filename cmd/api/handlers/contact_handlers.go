package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/cmd/api/dto"
	"portfolio-backend/cmd/api/middleware"
	"portfolio-backend/cmd/api/services"
)

// SubmitContactHandler godoc
// @Summary      문의 제출 (공개)
// @Description  이름/이메일/메시지는 필수입니다. 확인 요약만 반환하며 전체 레코드는 노출하지 않습니다.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ContactRequest  true  "submission"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /contact [post]
func SubmitContactHandler(svc *services.ContactService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.ContactRequest
		if !bindJSON(c, &req) {
			return
		}

		submitted, err := svc.Submit(c.Request.Context(), services.SubmitContactInput{
			Name:      req.Name,
			Email:     req.Email,
			Phone:     req.Phone,
			Subject:   req.Subject,
			Message:   req.Message,
			IPAddress: c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		})
		if err != nil {
			respondError(c, err, "Message not found", "Failed to submit message")
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Thank you for your message! I will get back to you soon.",
			"data":    submitted,
		})
	}
}

// ListContactsHandler godoc
// @Summary      문의 목록 조회
// @Description  IP/User-Agent 메타데이터는 응답에서 제외됩니다. 미확인(new) 건수를 함께 반환합니다.
// @Tags         contact
// @Security     BearerAuth
// @Produce      json
// @Param        status    query  string  false  "new | read | replied | archived"
// @Param        priority  query  string  false  "low | normal | high | urgent"
// @Param        sort      query  string  false  "newest | oldest | name | email"
// @Param        limit     query  int     false  "page size"
// @Param        page      query  int     false  "1-based page"
// @Success      200  {object}  map[string]any
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /contact [get]
func ListContactsHandler(svc *services.ContactService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit := pageParams(c)
		result, err := svc.List(c.Request.Context(), services.ListContactsInput{
			Status:   c.Query("status"),
			Priority: c.Query("priority"),
			Sort:     c.DefaultQuery("sort", "newest"),
			Page:     page,
			PageSize: limit,
		})
		if err != nil {
			respondError(c, err, "Message not found", "Failed to fetch messages")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":     true,
			"data":        result.Contacts,
			"unreadCount": result.UnreadCount,
			"pagination":  result.Pagination,
		})
	}
}

// GetContactHandler godoc
// @Summary      문의 단건 조회
// @Description  status가 new인 메시지는 조회와 동시에 read로 전환됩니다.
// @Tags         contact
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "message id (24-hex)"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /contact/{id} [get]
func GetContactHandler(svc *services.ContactService) gin.HandlerFunc {
	return func(c *gin.Context) {
		message, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err, "Message not found", "Failed to fetch message")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": message})
	}
}

// UpdateContactHandler godoc
// @Summary      문의 상태/우선순위/메모 수정
// @Description  전달된 필드만 적용합니다. replied로의 첫 전환 시 respondedAt/respondedBy가 기록됩니다.
// @Tags         contact
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path      string                          true  "message id (24-hex)"
// @Param        body  body      dto.ContactStatusUpdateRequest  true  "triage fields"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /contact/{id} [put]
func UpdateContactHandler(svc *services.ContactService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.ContactStatusUpdateRequest
		if !bindJSON(c, &req) {
			return
		}

		message, err := svc.UpdateTriage(c.Request.Context(), c.Param("id"), req, middleware.CallerUsername(c))
		if err != nil {
			respondError(c, err, "Message not found", "Failed to update message")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Message updated successfully",
			"data":    message,
		})
	}
}

// DeleteContactHandler godoc
// @Summary      문의 삭제
// @Tags         contact
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "message id (24-hex)"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /contact/{id} [delete]
func DeleteContactHandler(svc *services.ContactService) gin.HandlerFunc {
	return func(c *gin.Context) {
		deleted, err := svc.Delete(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err, "Message not found", "Failed to delete message")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Message deleted successfully",
			"data":    deleted,
		})
	}
}

// ContactStatsHandler godoc
// @Summary      문의 통계
// @Description  상태별 건수와 최근 7일 제출 건수를 집계합니다.
// @Tags         contact
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /contact/stats [get]
func ContactStatsHandler(svc *services.ContactService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := svc.Stats(c.Request.Context())
		if err != nil {
			respondError(c, err, "Message not found", "Failed to fetch contact stats")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
	}
}

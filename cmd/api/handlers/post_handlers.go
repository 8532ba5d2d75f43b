package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/cmd/api/dto"
	"portfolio-backend/cmd/api/services"
)

// ListPostsHandler godoc
// @Summary      블로그 포스트 목록 조회
// @Description  본문(content)은 목록에서 제외됩니다. 발행된 포스트의 인기 태그 10개를 함께 반환합니다.
// @Tags         blog
// @Produce      json
// @Param        status  query  string  false  "draft | published | archived (default published)"
// @Param        tag     query  string  false  "tag filter (case-insensitive)"
// @Param        search  query  string  false  "substring match across title/content/tags"
// @Param        sort    query  string  false  "newest | oldest | title | popular"
// @Param        limit   query  int     false  "page size"
// @Param        page    query  int     false  "1-based page"
// @Success      200  {object}  map[string]any
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /blog [get]
func ListPostsHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit := pageParams(c)
		result, err := svc.List(c.Request.Context(), services.ListPostsInput{
			Status:   c.Query("status"),
			Tag:      c.Query("tag"),
			Search:   c.Query("search"),
			Sort:     c.DefaultQuery("sort", "newest"),
			Page:     page,
			PageSize: limit,
		})
		if err != nil {
			respondError(c, err, "Post not found", "Failed to fetch posts")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":     true,
			"data":        result.Posts,
			"popularTags": result.PopularTags,
			"pagination":  result.Pagination,
		})
	}
}

// GetPostHandler godoc
// @Summary      블로그 포스트 단건 조회
// @Description  조회 성공 시 뷰 카운터가 1 증가합니다. 발행되지 않은 포스트는 404로 숨겨집니다.
// @Tags         blog
// @Produce      json
// @Param        id   path      string  true  "post id (24-hex)"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /blog/{id} [get]
func GetPostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		post, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err, "Post not found", "Failed to fetch post")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": post})
	}
}

// CreatePostHandler godoc
// @Summary      블로그 포스트 생성
// @Tags         blog
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.PostRequest  true  "new post"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /blog [post]
func CreatePostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.PostRequest
		if !bindJSON(c, &req) {
			return
		}

		post, err := svc.Create(c.Request.Context(), req)
		if err != nil {
			respondError(c, err, "Post not found", "Failed to create post")
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Post created successfully",
			"data":    post,
		})
	}
}

// UpdatePostHandler godoc
// @Summary      블로그 포스트 수정
// @Description  전달된 필드만 적용합니다. views/published_at 은 직접 수정할 수 없습니다.
// @Tags         blog
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "post id (24-hex)"
// @Param        body  body      map[string]any  true  "partial fields"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /blog/{id} [put]
func UpdatePostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		fields := map[string]any{}
		if !bindJSON(c, &fields) {
			return
		}

		post, err := svc.Update(c.Request.Context(), c.Param("id"), fields)
		if err != nil {
			respondError(c, err, "Post not found", "Failed to update post")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Post updated successfully",
			"data":    post,
		})
	}
}

// DeletePostHandler godoc
// @Summary      블로그 포스트 삭제
// @Tags         blog
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "post id (24-hex)"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /blog/{id} [delete]
func DeletePostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		deleted, err := svc.Delete(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err, "Post not found", "Failed to delete post")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Post deleted successfully",
			"data":    deleted,
		})
	}
}

// PostStatsHandler godoc
// @Summary      블로그 통계
// @Description  전체/발행/초안 수, 누적 뷰, 평균 읽기 시간을 단일 파이프라인으로 집계합니다.
// @Tags         blog
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /blog/stats [get]
func PostStatsHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := svc.Stats(c.Request.Context())
		if err != nil {
			respondError(c, err, "Post not found", "Failed to fetch blog stats")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
	}
}

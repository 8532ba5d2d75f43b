package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/cmd/api/dto"
	"portfolio-backend/cmd/api/services"
)

// ListProjectsHandler godoc
// @Summary      프로젝트 목록 조회
// @Tags         projects
// @Produce      json
// @Param        category  query  string  false  "category filter"
// @Param        sort      query  string  false  "newest | oldest | title"
// @Param        limit     query  int     false  "page size"
// @Param        page      query  int     false  "1-based page"
// @Success      200  {object}  map[string]any
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /projects [get]
func ListProjectsHandler(svc *services.ProjectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit := pageParams(c)
		projects, pagination, err := svc.List(c.Request.Context(), services.ListProjectsInput{
			Category: c.Query("category"),
			Sort:     c.DefaultQuery("sort", "newest"),
			Page:     page,
			PageSize: limit,
		})
		if err != nil {
			respondError(c, err, "Project not found", "Failed to fetch projects")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"data":       projects,
			"pagination": pagination,
		})
	}
}

// GetProjectHandler godoc
// @Summary      프로젝트 단건 조회
// @Tags         projects
// @Produce      json
// @Param        id   path      string  true  "project id (24-hex)"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /projects/{id} [get]
func GetProjectHandler(svc *services.ProjectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		project, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err, "Project not found", "Failed to fetch project")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": project})
	}
}

// CreateProjectHandler godoc
// @Summary      프로젝트 생성
// @Tags         projects
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ProjectRequest  true  "new project"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /projects [post]
func CreateProjectHandler(svc *services.ProjectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.ProjectRequest
		if !bindJSON(c, &req) {
			return
		}

		project, err := svc.Create(c.Request.Context(), req)
		if err != nil {
			respondError(c, err, "Project not found", "Failed to create project")
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Project created successfully",
			"data":    project,
		})
	}
}

// UpdateProjectHandler godoc
// @Summary      프로젝트 수정
// @Description  전달된 필드만 적용합니다. 식별자/생성 타임스탬프 필드는 무시됩니다.
// @Tags         projects
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "project id (24-hex)"
// @Param        body  body      map[string]any  true  "partial fields"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /projects/{id} [put]
func UpdateProjectHandler(svc *services.ProjectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		fields := map[string]any{}
		if !bindJSON(c, &fields) {
			return
		}

		project, err := svc.Update(c.Request.Context(), c.Param("id"), fields)
		if err != nil {
			respondError(c, err, "Project not found", "Failed to update project")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Project updated successfully",
			"data":    project,
		})
	}
}

// DeleteProjectHandler godoc
// @Summary      프로젝트 삭제
// @Tags         projects
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "project id (24-hex)"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /projects/{id} [delete]
func DeleteProjectHandler(svc *services.ProjectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		deleted, err := svc.Delete(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err, "Project not found", "Failed to delete project")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Project deleted successfully",
			"data":    deleted,
		})
	}
}

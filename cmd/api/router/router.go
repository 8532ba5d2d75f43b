package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"portfolio-backend/cmd/api/auth"
	"portfolio-backend/cmd/api/handlers"
	"portfolio-backend/cmd/api/middleware"
	"portfolio-backend/cmd/api/services"
	"portfolio-backend/db"
	_ "portfolio-backend/docs"
	"portfolio-backend/repositories"
)

// Bound on the store ping so a down store cannot hold /health for the full
// server-selection timeout.
const healthPingTimeout = 2 * time.Second

// healthCheck answers 200 when the store ping succeeds within the bound and
// 503 otherwise.
func healthCheck(ping func(context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
		defer cancel()
		if err := ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// New builds the engine with all middleware and routes wired. The JWT
// manager is injected so tests can run against a known secret.
func New(jwtManager *auth.JWTManager) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace())
	r.Use(middleware.CORS())

	// Health check
	r.GET("/health", healthCheck(func(ctx context.Context) error {
		return db.Client().Ping(ctx, readpref.Primary())
	}))

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authSvc := services.NewAuthService(repositories.NewAdminRepository(db.Database()), jwtManager)
	projectSvc := services.NewProjectService(repositories.NewProjectRepository(db.Database()))
	postSvc := services.NewPostService(repositories.NewPostRepository(db.Database()))
	contactSvc := services.NewContactService(repositories.NewContactRepository(db.Database()))

	gate := middleware.AdminAuth(authSvc)

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.POST("/auth/login", handlers.LoginHandler(authSvc))
		api.POST("/auth/register", handlers.RegisterHandler(authSvc))
		api.GET("/auth/me", handlers.MeHandler(authSvc))

		api.GET("/projects", handlers.ListProjectsHandler(projectSvc))
		api.GET("/projects/:id", handlers.GetProjectHandler(projectSvc))
		api.POST("/projects", gate, handlers.CreateProjectHandler(projectSvc))
		api.PUT("/projects/:id", gate, handlers.UpdateProjectHandler(projectSvc))
		api.DELETE("/projects/:id", gate, handlers.DeleteProjectHandler(projectSvc))

		// /blog/stats must register before /blog/:id so gin does not treat
		// "stats" as an id.
		api.GET("/blog/stats", gate, handlers.PostStatsHandler(postSvc))
		api.GET("/blog", handlers.ListPostsHandler(postSvc))
		api.GET("/blog/:id", handlers.GetPostHandler(postSvc))
		api.POST("/blog", gate, handlers.CreatePostHandler(postSvc))
		api.PUT("/blog/:id", gate, handlers.UpdatePostHandler(postSvc))
		api.DELETE("/blog/:id", gate, handlers.DeletePostHandler(postSvc))

		api.POST("/contact", handlers.SubmitContactHandler(contactSvc))
		api.GET("/contact/stats", gate, handlers.ContactStatsHandler(contactSvc))
		api.GET("/contact", gate, handlers.ListContactsHandler(contactSvc))
		api.GET("/contact/:id", gate, handlers.GetContactHandler(contactSvc))
		api.PUT("/contact/:id", gate, handlers.UpdateContactHandler(contactSvc))
		api.DELETE("/contact/:id", gate, handlers.DeleteContactHandler(contactSvc))
	}

	return r
}

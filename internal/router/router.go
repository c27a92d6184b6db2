package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/balitech/backend/internal/handlers"
	"github.com/balitech/backend/internal/middleware"
)

type Dependencies struct {
	Jobs         *handlers.JobHandler
	Applications *handlers.ApplicationHandler
	Contacts     *handlers.ContactHandler
	Admin        *handlers.AdminHandler
	Upload       *handlers.UploadHandler

	Auth *middleware.AuthMiddleware
	CSRF *middleware.CSRFMiddleware

	Limiter    middleware.Limiter
	RateLimit  int
	RateWindow time.Duration

	AllowedOrigins []string
}

// New wires the route table. Admin mutations stack the session gate
// and the CSRF guard in that order, so a missing session is a 401
// before the guard ever sees the request. Public form submissions are
// throttled per client IP instead.
func New(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = deps.AllowedOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", middleware.CSRFHeader}
	r.Use(cors.New(corsConfig))

	requireAdmin := deps.Auth.RequireAdmin()
	guard := deps.CSRF.Guard()
	throttle := middleware.RateLimit(deps.Limiter, deps.RateLimit, deps.RateWindow)

	r.GET("/health", handlers.HealthCheck)

	api := r.Group("/api")
	{
		api.GET("/jobs", deps.Auth.OptionalAdmin(), deps.Jobs.List)
		api.GET("/jobs/:id", deps.Jobs.Get)
		api.POST("/jobs", requireAdmin, guard, deps.Jobs.Create)
		api.PUT("/jobs/:id", requireAdmin, guard, deps.Jobs.Update)
		api.DELETE("/jobs/:id", requireAdmin, guard, deps.Jobs.Delete)
		api.PATCH("/jobs/:id/toggle-status", requireAdmin, guard, deps.Jobs.ToggleStatus)

		api.GET("/applications", requireAdmin, deps.Applications.List)
		api.GET("/applications/:id", requireAdmin, deps.Applications.Get)
		api.GET("/applications/job/:jobId", requireAdmin, deps.Applications.ListByJob)
		api.POST("/applications", throttle, deps.Applications.Create)
		api.PUT("/applications/:id/status", requireAdmin, guard, deps.Applications.UpdateStatus)
		api.PUT("/applications/:id/notes", requireAdmin, guard, deps.Applications.UpdateNotes)
		api.DELETE("/applications/:id", requireAdmin, guard, deps.Applications.Delete)

		api.GET("/contacts", requireAdmin, deps.Contacts.List)
		api.GET("/contacts/:id", requireAdmin, deps.Contacts.Get)
		api.POST("/contacts", throttle, deps.Contacts.Create)
		api.PUT("/contacts/:id/status", requireAdmin, guard, deps.Contacts.UpdateStatus)
		api.DELETE("/contacts/:id", requireAdmin, guard, deps.Contacts.Delete)

		api.POST("/upload", throttle, deps.Upload.Upload)
		api.GET("/csrf-token", requireAdmin, deps.Admin.CSRFToken)

		admin := api.Group("/admin")
		{
			admin.POST("/login", throttle, deps.Admin.Login)
			admin.GET("/logout", deps.Admin.Logout)
			admin.GET("/me", deps.Admin.Me)
		}
	}

	return r
}

package routes

import (
	"net/http"
	"time"

	"safebridge/handlers"
	"safebridge/middleware"
	"safebridge/services/policy"
	"safebridge/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterSessionRoutes registers login/logout and the quick-exit panic
// endpoint. Quick exit stays outside the auth group on purpose.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/session")
	{
		api.POST("/login", hb.Session.LoginHandler)
		api.POST("/quick-exit", hb.Session.QuickExitHandler)

		api.Use(middleware.SessionAuthMiddleware(hb.Sessions))
		api.DELETE("/logout", hb.Session.LogoutHandler)
	}

	r.GET("/api/views", middleware.SessionAuthMiddleware(hb.Sessions), hb.Session.ViewsHandler)
}

// RegisterDirectoryRoutes registers resource, legal and user endpoints.
// Reads are open to any session; mutations are gated per the policy table.
func RegisterDirectoryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	api.Use(middleware.SessionAuthMiddleware(hb.Sessions))
	{
		api.GET("/resources", hb.Directory.ListResourcesHandler)
		api.GET("/legal", hb.Directory.ListLegalHandler)

		res := api.Group("/resources")
		res.Use(middleware.RequireCapability(policy.CapManageResources))
		res.POST("", hb.Directory.AddResourceHandler)
		res.PUT("/:id", hb.Directory.UpdateResourceHandler)
		res.DELETE("/:id", hb.Directory.DeleteResourceHandler)

		legal := api.Group("/legal")
		legal.Use(middleware.RequireCapability(policy.CapManageLegal))
		legal.POST("", hb.Directory.AddLegalHandler)
		legal.PUT("/:id", hb.Directory.UpdateLegalHandler)
		legal.DELETE("/:id", hb.Directory.DeleteLegalHandler)

		users := api.Group("/users")
		users.Use(middleware.RequireCapability(policy.CapManageUsers))
		users.GET("", hb.Directory.ListUsersHandler)
		users.POST("", hb.Directory.AddUserHandler)
		users.PUT("/:id", hb.Directory.UpdateUserHandler)
		users.DELETE("/:id", hb.Directory.DeleteUserHandler)
	}
}

// RegisterCaseRoutes sets up the endpoints for the case lifecycle.
func RegisterCaseRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/cases")
	api.Use(middleware.SessionAuthMiddleware(hb.Sessions))
	{
		api.POST("", middleware.RequireCapability(policy.CapCreateCase), hb.Cases.CreateCaseHandler)

		view := api.Group("")
		view.Use(middleware.RequireCapability(policy.CapViewCases))
		view.GET("", hb.Cases.ListCasesHandler)
		view.GET("/:id", hb.Cases.GetCaseHandler)

		act := api.Group("")
		act.Use(middleware.RequireCapability(policy.CapActOnCases))
		act.PUT("/:id/assign", hb.Cases.AssignCaseHandler)
		act.PUT("/:id/status", hb.Cases.UpdateCaseStatusHandler)
	}
}

// RegisterAdminRoutes sets up the dashboard overview and the admin data
// wipe. The overview is read-only and open to any session; the wipe takes
// the passcode check on top of the Admin session role.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/overview", middleware.SessionAuthMiddleware(hb.Sessions), hb.Admin.OverviewHandler)

	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middleware.SessionAuthMiddleware(hb.Sessions))
	adminGroup.Use(middleware.RequireCapability(policy.CapWipeData))
	{
		adminGroup.DELETE("/data", middleware.AdminPasscodeMiddleware(), hb.Admin.WipeDataHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Admin-Passcode"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterSessionRoutes(r, hb)
	RegisterDirectoryRoutes(r, hb)
	RegisterCaseRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}

package routes

import (
	"net/http"
	"time"

	"sparkle/handlers"
	"sparkle/middleware"
	"sparkle/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHealthRoute registers the health endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	health := hb.Health
	if health == nil {
		health = handlers.Health
	}
	r.GET("/health", health)
}

// RegisterPricingRoutes registers the public quote endpoint.
func RegisterPricingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/pricing")
	{
		api.POST("/quote", hb.Pricing.Quote)
	}
}

// RegisterDraftRoutes registers the booking wizard endpoints.
func RegisterDraftRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/drafts")
	// Signed-in clients own the drafts they start; guests may still use the wizard.
	api.Use(middleware.OptionalAuthMiddleware(hb.AdminToken))
	{
		api.POST("", hb.Drafts.Start)
		api.GET("/:id", hb.Drafts.Get)
		api.PATCH("/:id", hb.Drafts.Apply)
		api.DELETE("/:id", hb.Drafts.Discard)

		// Submitting requires a signed-in client.
		api.POST("/:id/submit", middleware.JWTAuthMiddleware(hb.AdminToken, utils.RoleClient), hb.Drafts.Submit)
	}
}

// RegisterCalendarRoutes registers the scheduling calendar for admins and cleaners.
func RegisterCalendarRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/calendar")
	api.Use(middleware.JWTAuthMiddleware(hb.AdminToken, utils.RoleAdmin, utils.RoleCleaner))
	{
		api.GET("/day/:date", hb.Availability.DaySchedule)
		api.GET("/:year/:month", hb.Availability.MonthCalendar)
	}
}

// RegisterAdminRoutes registers pricing administration endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	admin := r.Group("/api/admin/pricing")
	admin.Use(middleware.AdminAuthMiddleware(hb.AdminToken))
	{
		admin.GET("/rules", hb.Pricing.ListRules)
		admin.POST("/rules", hb.Pricing.CreateRule)
		admin.GET("/rules/:id", hb.Pricing.GetRule)
		admin.PUT("/rules/:id", hb.Pricing.UpdateRule)
		admin.DELETE("/rules/:id", hb.Pricing.DeleteRule)

		admin.GET("/warnings", hb.Warnings.List)
		admin.DELETE("/warnings/:id", hb.Warnings.Dismiss)
	}
}

// RegisterRoutes sets up global middleware and every route group.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, utils.ErrorResponse{Error: "not found", Message: "No route for " + c.Request.URL.Path})
	})

	RegisterHealthRoute(r, hb)
	RegisterPricingRoutes(r, hb)
	RegisterDraftRoutes(r, hb)
	RegisterCalendarRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}

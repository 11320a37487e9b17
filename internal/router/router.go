package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "heatwatch/docs"
	"heatwatch/internal/domain"
	"heatwatch/internal/handler"
	"heatwatch/internal/middleware"
	"heatwatch/internal/service"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth           *handler.AuthHandler
	Platform       *handler.PlatformHandler
	Region         *handler.RegionHandler
	Zone           *handler.ZoneHandler
	Heatwave       *handler.HeatwaveHandler
	Statistic      *handler.StatisticHandler
	Recommendation *handler.RecommendationHandler
	Notification   *handler.NotificationHandler
	Report         *handler.ReportHandler
	Admin          *handler.AdminHandler
	Health         *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(logger *slog.Logger, allowedOrigins []string, authSvc service.AuthService, h Handlers) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks and tooling
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Paths the original dashboard client calls directly
	r.POST("/register/", h.Auth.Register)
	r.POST("/login/", h.Auth.Login)
	r.GET("/me/", middleware.AuthMiddleware(authSvc), h.Auth.Me)

	v1 := r.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)
	auth.GET("/me", middleware.AuthMiddleware(authSvc), h.Auth.Me)

	v1.GET("/platform/context", middleware.OptionalAuth(authSvc), h.Platform.Context)
	v1.GET("/regions", h.Region.List)
	v1.GET("/regions/nearest", h.Region.Nearest)
	v1.GET("/dashboard/focus", h.Region.Focus)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	adminOrExpert := middleware.RequireRole(domain.RoleAdmin, domain.RoleExpert)
	adminOrAgent := middleware.RequireRole(domain.RoleAdmin, domain.RoleAgent)

	zones := protected.Group("/zones")
	zones.GET("", h.Zone.List)
	zones.GET("/:id", h.Zone.Get)
	zones.POST("", adminOnly, h.Zone.Create)
	zones.PUT("/:id", adminOnly, h.Zone.Update)
	zones.DELETE("/:id", adminOnly, h.Zone.Delete)
	zones.POST("/:id/residents", adminOnly, h.Zone.AddResident)
	zones.DELETE("/:id/residents", adminOnly, h.Zone.RemoveResident)

	heatwaves := protected.Group("/heatwaves")
	heatwaves.GET("", h.Heatwave.List)
	heatwaves.GET("/active", h.Heatwave.Active)
	heatwaves.GET("/:id", h.Heatwave.Get)
	heatwaves.POST("", adminOrExpert, h.Heatwave.Create)
	heatwaves.PUT("/:id", adminOrExpert, h.Heatwave.Update)
	heatwaves.DELETE("/:id", adminOrExpert, h.Heatwave.Delete)

	stats := protected.Group("/statistics")
	stats.GET("", h.Statistic.List)
	stats.GET("/summary", h.Statistic.Summary)
	stats.GET("/export.csv", h.Statistic.Export)
	stats.GET("/by-heatwave/:id", h.Statistic.GetByHeatwave)
	stats.GET("/:id", h.Statistic.Get)
	stats.POST("", adminOrAgent, h.Statistic.Create)
	stats.PUT("/:id", adminOrAgent, h.Statistic.Update)
	stats.DELETE("/:id", adminOrAgent, h.Statistic.Delete)

	recs := protected.Group("/recommendations")
	recs.GET("", h.Recommendation.List)
	recs.GET("/:id", h.Recommendation.Get)
	recs.POST("", adminOrAgent, h.Recommendation.Create)
	recs.PUT("/:id", adminOrAgent, h.Recommendation.Update)
	recs.DELETE("/:id", adminOrAgent, h.Recommendation.Delete)

	notifs := protected.Group("/notifications")
	notifs.GET("", h.Notification.ListMine)
	notifs.PATCH("/:id/read", h.Notification.MarkRead)
	notifs.POST("", adminOnly, h.Notification.Create)

	reports := protected.Group("/reports/regions")
	reports.POST("/:name", h.Report.Publish)
	reports.GET("/:name", h.Report.Text)

	// Admin routes
	admin := protected.Group("/admin")
	admin.Use(adminOnly)
	admin.GET("/dashboard", h.Admin.Dashboard)

	return r
}

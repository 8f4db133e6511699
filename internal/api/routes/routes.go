package routes

import (
	"uddaan/internal/api/handlers"
	"uddaan/internal/api/middleware"
	"uddaan/internal/config"
	"uddaan/internal/models"
	"uddaan/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupRoutes wires the request pipeline. Every admin route passes through
// rate limiting, token resolution, a permission check and, for mutations,
// audit recording, in that order.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log *zap.Logger) {
	// Initialize services
	authService := services.NewAuthService(db, cfg)
	auditService := services.NewAuditService(db, log)
	userService := services.NewUserService(db, authService)
	roleService := services.NewRoleService(db)
	jobService := services.NewJobService(db)
	applicationService := services.NewApplicationService(db)
	consultationService := services.NewConsultationService(db)
	testimonialService := services.NewTestimonialService(db)
	eventService := services.NewEventService(db)
	pageService := services.NewPageService(db)
	mediaService := services.NewMediaService(db, cfg)
	settingService := services.NewSettingService(db)
	dashboardService := services.NewDashboardService(db)
	themeService := services.NewThemeService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, auditService)
	userHandler := handlers.NewUserHandler(userService)
	roleHandler := handlers.NewRoleHandler(roleService)
	jobHandler := handlers.NewJobHandler(jobService)
	applicationHandler := handlers.NewApplicationHandler(applicationService, mediaService)
	consultationHandler := handlers.NewConsultationHandler(consultationService)
	testimonialHandler := handlers.NewTestimonialHandler(testimonialService)
	eventHandler := handlers.NewEventHandler(eventService)
	pageHandler := handlers.NewPageHandler(pageService)
	mediaHandler := handlers.NewMediaHandler(mediaService, cfg)
	settingHandler := handlers.NewSettingHandler(settingService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	auditHandler := handlers.NewAuditHandler(auditService)
	themeHandler := handlers.NewThemeHandler(themeService)

	// Metrics registry
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := middleware.NewMetrics(registry)

	// Global middleware
	r.Use(middleware.CORSMiddleware(cfg.Security.AllowedOrigins))
	r.Use(metrics.Middleware())
	if cfg.Security.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(
			float64(cfg.Security.RateLimit.RequestsPerSecond),
			cfg.Security.RateLimit.Burst,
		)
		r.Use(limiter.Middleware())
	}

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	r.Static("/uploads", cfg.Uploads.Path)

	// Public routes
	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "ok",
				"message": "Uddaan Consultancy API is running",
			})
		})

		api.GET("/jobs", jobHandler.GetPublicJobs)
		api.GET("/jobs/:id", jobHandler.GetPublicJob)
		api.POST("/applications", applicationHandler.SubmitApplication)
		api.POST("/consultations", consultationHandler.BookConsultation)
		api.GET("/testimonials", testimonialHandler.GetPublicTestimonials)
		api.GET("/events", eventHandler.GetPublicEvents)
		api.GET("/pages/:slug", pageHandler.GetPublishedPage)
	}

	// Auth routes (public, tighter rate limit on login)
	admin := api.Group("/admin")
	{
		login := []gin.HandlerFunc{authHandler.Login}
		if cfg.Security.RateLimit.Enabled {
			loginLimiter := middleware.NewRateLimiter(
				float64(cfg.Security.RateLimit.LoginPerMinute)/60.0,
				cfg.Security.RateLimit.LoginPerMinute,
			)
			login = append([]gin.HandlerFunc{loginLimiter.Middleware()}, login...)
		}
		admin.POST("/login", login...)
	}

	// Protected routes
	protected := admin.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	{
		protected.POST("/logout", authHandler.Logout)
		protected.GET("/me", authHandler.GetMe)
		protected.POST("/mfa/setup", authHandler.MFASetup)
		protected.POST("/mfa/verify", authHandler.MFAVerify)

		protected.GET("/dashboard",
			middleware.RequirePermission("dashboard.view"),
			dashboardHandler.GetDashboard)
		protected.GET("/dashboard/stats",
			middleware.RequirePermission("dashboard.view"),
			dashboardHandler.GetMonthlyStats)

		jobs := protected.Group("/jobs")
		{
			jobs.GET("", middleware.RequirePermission("jobs.read"), jobHandler.GetJobs)
			jobs.GET("/:id", middleware.RequirePermission("jobs.read"), jobHandler.GetJob)
			jobs.POST("", middleware.RequirePermission("jobs.create"),
				middleware.Audit(auditService, models.AuditActionCreate, "Job"),
				jobHandler.CreateJob)
			jobs.PUT("/:id", middleware.RequirePermission("jobs.update"),
				middleware.Audit(auditService, models.AuditActionUpdate, "Job"),
				jobHandler.UpdateJob)
			jobs.DELETE("/:id", middleware.RequirePermission("jobs.delete"),
				middleware.Audit(auditService, models.AuditActionDelete, "Job"),
				jobHandler.DeleteJob)
		}

		applications := protected.Group("/applications")
		{
			applications.GET("", middleware.RequirePermission("applications.read"), applicationHandler.GetApplications)
			applications.GET("/:id", middleware.RequirePermission("applications.read"), applicationHandler.GetApplication)
			applications.PUT("/:id", middleware.RequirePermission("applications.update"),
				middleware.Audit(auditService, models.AuditActionUpdate, "Application"),
				applicationHandler.UpdateApplication)
			applications.POST("/:id/notes", middleware.RequirePermission("applications.update"),
				middleware.Audit(auditService, models.AuditActionUpdate, "Application"),
				applicationHandler.AddNote)
			applications.DELETE("/:id", middleware.RequirePermission("applications.delete"),
				middleware.Audit(auditService, models.AuditActionDelete, "Application"),
				applicationHandler.DeleteApplication)
		}

		consultations := protected.Group("/consultations")
		{
			consultations.GET("", middleware.RequirePermission("consultations.read"), consultationHandler.GetConsultations)
			consultations.GET("/:id", middleware.RequirePermission("consultations.read"), consultationHandler.GetConsultation)
			consultations.PUT("/:id", middleware.RequirePermission("consultations.update"),
				middleware.Audit(auditService, models.AuditActionUpdate, "Consultation"),
				consultationHandler.UpdateConsultation)
		}

		testimonials := protected.Group("/testimonials")
		{
			testimonials.GET("", middleware.RequirePermission("testimonials.read"), testimonialHandler.GetTestimonials)
			testimonials.POST("", middleware.RequirePermission("testimonials.create"),
				middleware.Audit(auditService, models.AuditActionCreate, "Testimonial"),
				testimonialHandler.CreateTestimonial)
			testimonials.PUT("/:id", middleware.RequirePermission("testimonials.update"),
				middleware.Audit(auditService, models.AuditActionUpdate, "Testimonial"),
				testimonialHandler.UpdateTestimonial)
			testimonials.DELETE("/:id", middleware.RequirePermission("testimonials.delete"),
				middleware.Audit(auditService, models.AuditActionDelete, "Testimonial"),
				testimonialHandler.DeleteTestimonial)
		}

		events := protected.Group("/events")
		{
			events.GET("", middleware.RequirePermission("events.read"), eventHandler.GetEvents)
			events.GET("/:id", middleware.RequirePermission("events.read"), eventHandler.GetEvent)
			events.POST("", middleware.RequirePermission("events.create"),
				middleware.Audit(auditService, models.AuditActionCreate, "Event"),
				eventHandler.CreateEvent)
			events.PUT("/:id", middleware.RequirePermission("events.update"),
				middleware.Audit(auditService, models.AuditActionUpdate, "Event"),
				eventHandler.UpdateEvent)
			events.DELETE("/:id", middleware.RequirePermission("events.delete"),
				middleware.Audit(auditService, models.AuditActionDelete, "Event"),
				eventHandler.DeleteEvent)
		}

		pages := protected.Group("/pages")
		{
			pages.GET("", middleware.RequirePermission("pages.read"), pageHandler.GetPages)
			pages.GET("/:id", middleware.RequirePermission("pages.read"), pageHandler.GetPage)
			pages.POST("", middleware.RequirePermission("pages.create"),
				middleware.Audit(auditService, models.AuditActionCreate, "Page"),
				pageHandler.CreatePage)
			pages.PUT("/:id", middleware.RequirePermission("pages.update"),
				middleware.Audit(auditService, models.AuditActionUpdate, "Page"),
				pageHandler.UpdatePage)
			pages.DELETE("/:id", middleware.RequirePermission("pages.delete"),
				middleware.Audit(auditService, models.AuditActionDelete, "Page"),
				pageHandler.DeletePage)
		}

		media := protected.Group("/media")
		{
			media.GET("", middleware.RequirePermission("media.read"), mediaHandler.GetMedia)
			media.POST("", middleware.RequirePermission("media.upload"),
				middleware.Audit(auditService, models.AuditActionUpload, "Media"),
				mediaHandler.Upload)
			media.DELETE("/:id", middleware.RequirePermission("media.delete"),
				middleware.Audit(auditService, models.AuditActionDelete, "Media"),
				mediaHandler.DeleteMedia)
		}

		users := protected.Group("/users")
		{
			users.GET("", middleware.RequirePermission("users.read"), userHandler.GetUsers)
			users.GET("/:id", middleware.RequirePermission("users.read"), userHandler.GetUser)
			users.POST("", middleware.RequirePermission("users.create"),
				middleware.Audit(auditService, models.AuditActionCreate, "User"),
				userHandler.CreateUser)
			users.PUT("/:id", middleware.RequirePermission("users.update"),
				middleware.Audit(auditService, models.AuditActionUpdate, "User"),
				userHandler.UpdateUser)
			users.POST("/:id/password", middleware.RequirePermission("users.update"),
				middleware.Audit(auditService, models.AuditActionUpdate, "User"),
				userHandler.UpdatePassword)
			users.DELETE("/:id", middleware.RequirePermission("users.delete"),
				middleware.Audit(auditService, models.AuditActionDelete, "User"),
				userHandler.DeactivateUser)
		}

		roles := protected.Group("/roles")
		{
			roles.GET("", middleware.RequirePermission("roles.read"), roleHandler.GetRoles)
			roles.GET("/permissions", middleware.RequirePermission("roles.read"), roleHandler.GetPermissions)
			roles.POST("", middleware.RequirePermission("roles.create"),
				middleware.Audit(auditService, models.AuditActionCreate, "Role"),
				roleHandler.CreateRole)
			roles.PUT("/:id", middleware.RequirePermission("roles.update"),
				middleware.Audit(auditService, models.AuditActionUpdate, "Role"),
				roleHandler.UpdateRole)
			roles.DELETE("/:id", middleware.RequirePermission("roles.delete"),
				middleware.Audit(auditService, models.AuditActionDelete, "Role"),
				roleHandler.DeleteRole)
		}

		settings := protected.Group("/settings")
		{
			settings.GET("", middleware.RequirePermission("settings.read"), settingHandler.GetSettings)
			settings.PUT("", middleware.RequirePermission("settings.update"),
				middleware.Audit(auditService, models.AuditActionUpdate, "Setting"),
				settingHandler.UpdateSettings)
		}

		themes := protected.Group("/themes")
		{
			themes.GET("", middleware.RequirePermission("theme.read"), themeHandler.GetThemes)
			themes.POST("", middleware.RequirePermission("theme.update"),
				middleware.Audit(auditService, models.AuditActionCreate, "Theme"),
				themeHandler.CreateTheme)
		}

		protected.GET("/audit-logs",
			middleware.RequirePermission("audit.read"),
			auditHandler.GetLogs)
	}
}

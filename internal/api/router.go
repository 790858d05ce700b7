package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jobdeck/jobboard-api/internal/api/handler"
	"github.com/jobdeck/jobboard-api/internal/api/middleware"
	"github.com/jobdeck/jobboard-api/internal/core/domain"
	"github.com/jobdeck/jobboard-api/internal/core/ports"
	"github.com/jobdeck/jobboard-api/internal/core/service"
	"github.com/jobdeck/jobboard-api/internal/infrastructure/config"
	mongodb "github.com/jobdeck/jobboard-api/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The notification service and queue are constructed by the caller because
// the queue's worker pool lifecycle belongs to main.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	cfg *config.Config,
	log zerolog.Logger,
	notifications ports.NotificationService,
	queue service.NotificationQueue,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("jobboard"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	companyRepo := mongodb.NewCompanyRepository(db)
	jobRepo := mongodb.NewJobRepository(db)
	applicationRepo := mongodb.NewApplicationRepository(db)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokenService)
	companyService := service.NewCompanyService(companyRepo, log)
	jobService := service.NewJobService(jobRepo, companyRepo, log)
	applicationService := service.NewApplicationService(applicationRepo, jobRepo, queue, log)

	authHandler := handler.NewAuthHandler(authService)
	companyHandler := handler.NewCompanyHandler(companyService)
	jobHandler := handler.NewJobHandler(jobService)
	applicationHandler := handler.NewApplicationHandler(applicationService)
	notificationHandler := handler.NewNotificationHandler(notifications)

	authRequired := middleware.Auth(tokenService)
	manageRoles := middleware.RequireRole(domain.RoleEmployer, domain.RoleAdmin)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.GET("/profile", authHandler.Profile, authRequired)

	// --- Job routes ---
	jobs := e.Group("/api/jobs")
	jobs.GET("", jobHandler.List)
	jobs.GET("/:id", jobHandler.Get)
	jobs.POST("", jobHandler.Create, authRequired, manageRoles)
	jobs.PUT("/:id", jobHandler.Update, authRequired, manageRoles)
	jobs.DELETE("/:id", jobHandler.Delete, authRequired, manageRoles)

	// --- Company routes ---
	companies := e.Group("/api/companies")
	companies.GET("", companyHandler.List)
	companies.GET("/:id", companyHandler.Get)
	companies.POST("", companyHandler.Create, authRequired, manageRoles)
	companies.PUT("/:id", companyHandler.Update, authRequired, manageRoles)
	companies.DELETE("/:id", companyHandler.Delete, authRequired, manageRoles)

	// --- Application routes (ownership enforced in the service) ---
	applications := e.Group("/api/applications", authRequired)
	applications.GET("", applicationHandler.List)
	applications.POST("", applicationHandler.Create)
	applications.GET("/:id", applicationHandler.Get)
	applications.PUT("/:id", applicationHandler.Update)
	applications.DELETE("/:id", applicationHandler.Delete)

	// --- Notifications ---
	e.GET("/api/notifications", notificationHandler.List, authRequired)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

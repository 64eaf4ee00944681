package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/atelierweb/sitecms/docs"
	"github.com/atelierweb/sitecms/internal/auth"
	"github.com/atelierweb/sitecms/internal/config"
	"github.com/atelierweb/sitecms/internal/handlers"
	"github.com/atelierweb/sitecms/internal/logger"
	"github.com/atelierweb/sitecms/internal/middleware"
	"github.com/atelierweb/sitecms/internal/repositories"
	"github.com/atelierweb/sitecms/internal/services"
	"github.com/atelierweb/sitecms/internal/storage"
)

// @title Atelier Web CMS API
// @version 1.0
// @description Content management API for the marketing website

// @contact.name API Support
// @contact.email dev@atelierweb.example

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting Atelier Web CMS")

	// Connect to database
	db, err := connectDB(cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	if err := runMigrations(db); err != nil {
		logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize JWT token generator
	tokenGenerator := auth.NewTokenGenerator(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	// Initialize upload storage
	uploadStorage := storage.NewLocalStorage(cfg.Media.UploadRoot)

	// Initialize repositories
	settingsRepo := repositories.NewSettingsRepository(db)
	contentRepo := repositories.NewContentSectionRepository(db)
	mediaRepo := repositories.NewMediaRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	serviceRepo := repositories.NewServiceRepository(db)
	faqRepo := repositories.NewFAQRepository(db)
	reportRepo := repositories.NewReportRepository(db)
	processItemRepo := repositories.NewProcessItemRepository(db)
	contactRepo := repositories.NewContactRepository(db)
	adminUserRepo := repositories.NewAdminUserRepository(db)
	statsRepo := repositories.NewStatsRepository(db)

	// Initialize services
	settingsService := services.NewSettingsService(settingsRepo)
	contentService := services.NewContentService(contentRepo)
	mediaService := services.NewMediaService(mediaRepo, uploadStorage, logger.Logger, cfg.Media.MaxUploadSize, services.MediaURLConfig{
		PublicPathPrefix: cfg.Media.PublicPathPrefix,
		DevServerPort:    cfg.Media.DevServerPort,
	})
	projectService := services.NewProjectService(projectRepo)
	serviceCatalogService := services.NewServiceCatalogService(serviceRepo)
	faqService := services.NewFAQService(faqRepo)
	reportService := services.NewReportService(reportRepo)
	processItemService := services.NewProcessItemService(processItemRepo)
	contactService := services.NewContactService(contactRepo)
	authService := services.NewAuthService(adminUserRepo, tokenGenerator)
	dashboardService := services.NewDashboardService(statsRepo)

	// Initialize handlers
	settingsHandler := handlers.NewSettingsHandler(settingsService, logger.Logger)
	contentHandler := handlers.NewContentHandler(contentService, logger.Logger)
	mediaHandler := handlers.NewMediaHandler(mediaService, logger.Logger)
	projectsHandler := handlers.NewProjectsHandler(projectService, logger.Logger)
	servicesHandler := handlers.NewServicesHandler(serviceCatalogService, logger.Logger)
	faqsHandler := handlers.NewFAQsHandler(faqService, logger.Logger)
	reportsHandler := handlers.NewReportsHandler(reportService, logger.Logger)
	processItemsHandler := handlers.NewProcessItemsHandler(processItemService, logger.Logger)
	contactsHandler := handlers.NewContactsHandler(contactService, logger.Logger)
	authHandler := handlers.NewAuthHandler(authService, logger.Logger)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, logger.Logger)
	maintenanceHandler := handlers.NewMaintenanceHandler(db, logger.Logger)

	// Initialize auth middleware
	authMiddleware := middleware.AuthMiddleware(tokenGenerator)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggerMiddleware(logger.Logger))
	r.Use(middleware.RecoveryMiddleware(logger.Logger))
	r.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(middleware.RequestSizeLimitMiddleware(cfg.Media.MaxUploadSize + 1<<20))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// Uploaded files are served directly from the upload root
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadStorage.Root()))))

	// Scope router to /api/v1
	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		authHandler.RegisterPublicRoutes(r)
		settingsHandler.RegisterPublicRoutes(r)
		contentHandler.RegisterPublicRoutes(r)
		projectsHandler.RegisterPublicRoutes(r)
		servicesHandler.RegisterPublicRoutes(r)
		faqsHandler.RegisterPublicRoutes(r)
		reportsHandler.RegisterPublicRoutes(r)
		processItemsHandler.RegisterPublicRoutes(r)
		contactsHandler.RegisterPublicRoutes(r)

		// Admin routes behind JWT auth
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			settingsHandler.RegisterAdminRoutes(r)
			contentHandler.RegisterAdminRoutes(r)
			mediaHandler.RegisterAdminRoutes(r)
			projectsHandler.RegisterAdminRoutes(r)
			servicesHandler.RegisterAdminRoutes(r)
			faqsHandler.RegisterAdminRoutes(r)
			reportsHandler.RegisterAdminRoutes(r)
			processItemsHandler.RegisterAdminRoutes(r)
			contactsHandler.RegisterAdminRoutes(r)
			dashboardHandler.RegisterAdminRoutes(r)
		})

		// Internal maintenance routes behind the API key
		if cfg.APIKey != "" {
			r.Group(func(r chi.Router) {
				r.Use(middleware.APIKeyMiddleware(cfg.APIKey))
				maintenanceHandler.RegisterRoutes(r)
			})
		}
	})

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

// connectDB connects to the database
func connectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// runMigrations runs database migrations for the fixed site tables.
// The settings, content and media tables are created lazily on first use.
func runMigrations(db *sql.DB) error {
	driver, err := mysql.WithInstance(db, &mysql.Config{
		MigrationsTable: "cms_schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	migrationPath := "file://migrations"
	if _, err := os.Stat("migrations"); os.IsNotExist(err) {
		// Try parent directory if running from cmd
		if _, err := os.Stat("../migrations"); err == nil {
			migrationPath = "file://../migrations"
		}
	}

	m, err := migrate.NewWithDatabaseInstance(
		migrationPath,
		"mysql",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fibresite/config"
	"fibresite/database"
	"fibresite/routes"
	"fibresite/services"
	"fibresite/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	app, err := NewApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Start(); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

// Application wires configuration, datastore, media host and HTTP server.
type Application struct {
	config *config.Config
	server *http.Server
	router *gin.Engine
}

// NewApplication creates and initializes a new application instance
func NewApplication() (*Application, error) {
	cfg := config.LoadConfig()
	if err := cfg.ValidateConfig(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := setupRouter(cfg)

	app := &Application{
		config: cfg,
		router: router,
		server: &http.Server{
			Addr:         cfg.GetServerAddress(),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}

	return app, nil
}

// Start initializes all components and starts the HTTP server
func (app *Application) Start() error {
	log.Printf("Starting %s v%s in %s mode",
		app.config.AppName,
		app.config.AppVersion,
		app.config.Environment)

	// A Mongo outage at boot is not fatal; requests surface errors until
	// the driver reconnects.
	app.initializeDatabase()

	if err := storage.Init(app.config); err != nil {
		log.Printf("Warning: media host initialization failed: %v", err)
	}

	app.setupRoutes()
	app.startBackgroundJobs()

	go func() {
		log.Printf("Server starting on %s", app.server.Addr)
		if err := app.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()

	return nil
}

// initializeDatabase connects to Mongo, ensures indexes and seeds the
// singleton documents plus the default admin account.
func (app *Application) initializeDatabase() {
	log.Println("Initializing database...")

	if err := database.Connect(app.config.MongoURI, app.config.DBName); err != nil {
		log.Printf("Warning: database connection failed: %v", err)
		return
	}

	if err := database.CreateIndexes(); err != nil {
		log.Printf("Warning: index creation failed: %v", err)
	}

	if err := database.Seed(app.config.AdminDefaultEmail, app.config.AdminDefaultPass); err != nil {
		log.Printf("Warning: database seeding failed: %v", err)
	}

	log.Println("Database initialization completed")
}

// setupRoutes configures all API routes and middleware
func (app *Application) setupRoutes() {
	routes.SetupRoutes(app.router, services.NewAuthService())
	log.Println("Routes configured successfully")
}

func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Trust proxies for proper client IP detection
	router.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	router.Use(gin.Recovery())

	// Health check endpoints (before other middleware)
	router.GET("/health", healthCheckHandler())
	router.GET("/version", versionHandler())

	// Static file serving: marketing site plus local asset fallback
	router.Static("/uploads", cfg.UploadPath)
	router.Static("/public", "./public")
	router.StaticFile("/", "./public/index.html")

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Route not found",
		})
	})

	return router
}

// startBackgroundJobs launches the periodic session sweep. The TTL index
// already expires sessions; the sweep keeps the collection tidy when the
// Mongo TTL monitor lags.
func (app *Application) startBackgroundJobs() {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			if err := database.CleanupExpiredSessions(); err != nil {
				log.Printf("Session cleanup failed: %v", err)
			}
		}
	}()
}

// waitForShutdown blocks until an interrupt arrives, then drains the server.
func (app *Application) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Println("Shutdown signal received...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	if err := database.Disconnect(); err != nil {
		log.Printf("Error closing database: %v", err)
	}

	log.Println("Server shutdown complete")
}

// Health check handler for monitoring
func healthCheckHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"service":   config.AppConfig.AppName,
			"version":   config.AppConfig.AppVersion,
			"timestamp": time.Now().Unix(),
		}

		if database.GetDatabase() != nil {
			if err := database.Ping(); err != nil {
				health["status"] = "degraded"
				health["database"] = "unhealthy"
			} else {
				health["database"] = "healthy"
			}
		} else {
			health["status"] = "degraded"
			health["database"] = "unhealthy"
		}

		c.JSON(http.StatusOK, health)
	}
}

// Version handler
func versionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        config.AppConfig.AppName,
			"version":     config.AppConfig.AppVersion,
			"environment": config.AppConfig.Environment,
		})
	}
}

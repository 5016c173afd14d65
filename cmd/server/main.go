package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ovies_landing_go/config"
	"ovies_landing_go/handlers"
	"ovies_landing_go/middleware"
	"ovies_landing_go/models"
	"ovies_landing_go/services"
	"ovies_landing_go/static"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()
	for _, warning := range cfg.Validate() {
		log.Printf("[WARNING] %s", warning)
	}

	// Landing copy
	content, err := services.LoadLandingContent()
	if err != nil {
		log.Fatalf("Failed to load landing content: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// One lead form per visitor, all sharing the configured submitter
	submitter := services.NewLeadSubmitterFromConfig(cfg)
	store := services.NewLeadSessionStore(cfg.SessionTTL, func() *services.LeadFormController {
		return services.NewLeadFormController(submitter,
			services.WithSubmitTimeout(cfg.LeadSubmitTimeout),
			services.WithTransitionHook(func(from, to models.SubmissionState) {
				log.Printf("[INFO] Lead form %s -> %s", from, to)
			}),
		)
	})
	store.StartCleanup(ctx, 10*time.Minute)
	services.InitSecurityMonitor(ctx)
	middleware.InitAssetVersions(static.FS)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(echomiddleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "SAMEORIGIN",
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))
	e.Use(middleware.CSPNonce(cfg))

	// Make config and content available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			c.Set("content", content)
			return next(c)
		}
	})
	e.Use(middleware.CSRF(cfg))

	// Static files
	e.StaticFS("/static", static.FS)

	// Public pages
	e.GET("/book", handlers.BookingHandler)
	e.GET("/sitemap.xml", handlers.GetSitemapHandler)
	e.GET("/robots.txt", handlers.RobotsHandler)
	e.GET("/healthz", handlers.HealthHandler)

	// Routes backed by the visitor's lead form
	site := e.Group("", middleware.LeadSession(store, cfg))
	{
		site.GET("/", handlers.LandingHandler)
		site.GET("/api/lead", handlers.LeadSnapshotHandler)

		lead := site.Group("/lead")
		lead.POST("/field", handlers.LeadFieldHandler, middleware.LeadFieldRateLimiter.Middleware())
		lead.POST("/submit", handlers.LeadSubmitHandler, middleware.LeadSubmitRateLimiter.Middleware())
		lead.POST("/reset", handlers.LeadResetHandler, middleware.LeadFieldRateLimiter.Middleware())
	}

	// Start server
	go func() {
		log.Printf("Server starting on port %s (submitter: %v)", cfg.ServerPort, cfg.SubmitterNames())
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("[WARNING] Server shutdown: %v", err)
	}
}

package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"article-stream/core/config"
	"article-stream/core/database"
	"article-stream/core/loader"
	"article-stream/core/logger"
	"article-stream/core/middleware/auth"
	"article-stream/core/middleware/rayid"
	"article-stream/core/sources"
	"article-stream/core/storage"

	"article-stream/feature/articles"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "article-stream/docs/swagger"
)

// @title Article Stream API
// @version 1.0
// @description API for streaming reconciled article records.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the article stream server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if !cfg.Sources.IsValidBackend() {
			logg.Fatal("Unknown reference backend",
				zap.String("backend", cfg.Sources.ReferenceBackend))
		}

		// 3. Connect to Database (Optional)
		// Only the database reference backend needs it; the service falls
		// back to the workbook when the connection is missing.
		var db *gorm.DB
		if cfg.Sources.ReferenceBackend == sources.BackendDatabase {
			if conn, err := database.Connect(cfg.Database); err != nil {
				logg.Warn("Optional database connection failed", zap.Error(err))
			} else {
				db = conn
				logg.Info("Connected to reference database", zap.String("name", cfg.Database.Name))
			}
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 5. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()

		// Register Features
		mgr.Register(articles.NewFeature(store, cfg.Storage.Bucket, logg, db, cfg.Sources))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 2.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 7. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}

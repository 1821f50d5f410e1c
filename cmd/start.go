package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"catalog-sync/core/config"
	"catalog-sync/core/database"
	"catalog-sync/core/loader"
	"catalog-sync/core/logger"
	"catalog-sync/core/middleware/auth"
	"catalog-sync/core/middleware/rayid"
	"catalog-sync/feature/catalog"
	"catalog-sync/feature/catalog/models"
	"catalog-sync/feature/streams"
	syncfeature "catalog-sync/feature/sync"
	"catalog-sync/provider/opencritic"
	"catalog-sync/provider/rawg"
	"catalog-sync/provider/twitch"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "catalog-sync/docs/swagger"
)

// @title Game Catalog Sync API
// @version 1.0
// @description API for the canonical game catalog and its sync pipeline.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the catalog HTTP server",
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

		if err := cfg.Validate(); err != nil {
			logg.Fatal("Invalid configuration", zap.Error(err))
		}

		// 3. Connect to Database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		if err := database.Migrate(db, &models.Game{}, &models.SyncLog{}); err != nil {
			logg.Fatal("Failed to migrate database", zap.Error(err))
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 5. Build provider clients
		criticClient := opencritic.NewClient(cfg.Providers.OpenCritic, logg)
		rawgClient := rawg.NewClient(cfg.Providers.Rawg, logg)
		twitchClient := twitch.NewClient(cfg.Providers.Twitch, logg)
		resolver := twitch.NewResolver(twitchClient, logg)

		repo := catalog.NewRepository(db)
		syncService := syncfeature.NewService(criticClient, rawgClient, repo, logg)
		streamsService := streams.NewService(repo, twitchClient, resolver, logg)

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(catalog.NewFeature(db, logg))
		mgr.Register(syncfeature.NewFeature(syncService, logg))
		mgr.Register(streams.NewFeature(streamsService, logg))

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
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
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

package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"lexicon-manager/core/cache"
	"lexicon-manager/core/config"
	"lexicon-manager/core/database"
	"lexicon-manager/core/loader"
	"lexicon-manager/core/logger"
	"lexicon-manager/core/mailer"
	"lexicon-manager/core/middleware/auth"
	"lexicon-manager/core/middleware/rayid"
	"lexicon-manager/core/storage"

	"lexicon-manager/feature/audit"
	"lexicon-manager/feature/example"
	examplemodels "lexicon-manager/feature/example/models"
	"lexicon-manager/feature/user"
	usermodels "lexicon-manager/feature/user/models"
	"lexicon-manager/feature/word"
	wordmodels "lexicon-manager/feature/word/models"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the lexicon manager server",
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

		// 3. Connect to Database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		if err := database.Migrate(db,
			&wordmodels.Word{}, &wordmodels.WordSuggestion{}, &wordmodels.MergeIntent{},
			&examplemodels.Example{}, &examplemodels.ExampleSuggestion{},
			&usermodels.User{},
		); err != nil {
			logg.Fatal("Failed to migrate schema", zap.Error(err))
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 5. Initialize Archive Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}
		archiver := storage.NewArchiver(store, cfg.Storage.Bucket)
		if err := archiver.EnsureBucket(context.Background()); err != nil {
			logg.Fatal("Failed to prepare archive bucket", zap.Error(err))
		}

		// 6. Initialize Word Cache (Optional)
		var wordCache *cache.Cache
		if cfg.Cache.URL != "" {
			if wordCache, err = cache.New(cfg.Cache); err != nil {
				logg.Warn("Optional cache connection failed", zap.Error(err))
				wordCache = nil
			}
		}

		// 7. Initialize Mail Dispatcher (Optional)
		var sender mailer.Sender
		if cfg.Mail.Host != "" {
			sender = mailer.NewSMTPSender(cfg.Mail)
		}
		dispatcher := mailer.NewDispatcher(sender, logg, cfg.Mail)

		// 8. Wire Features
		// The example feature answers word-existence checks through a
		// standalone checker so the two features stay one-way.
		exampleFeature := example.NewFeature(db, logg, word.NewChecker(db))
		userFeature := user.NewFeature(db, logg)
		exampleFeature.Service().EnableNotifications(userFeature.Service(), dispatcher, cfg.Server)
		wordService := word.NewService(db, logg, exampleFeature.Service(), userFeature.Service(),
			dispatcher, wordCache, archiver, cfg.Server)

		mgr := loader.NewManager()
		mgr.Register(exampleFeature)
		mgr.Register(word.NewFeature(wordService))
		mgr.Register(userFeature)
		mgr.Register(audit.NewFeature(db, logg))

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

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 9. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 10. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 11. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
		dispatcher.Wait()
		_ = wordCache.Close()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}

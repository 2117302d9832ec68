package cmd

import (
	"fmt"

	"lexicon-manager/core/config"
	"lexicon-manager/core/database"
	"lexicon-manager/core/logger"
	"lexicon-manager/core/mailer"
	"lexicon-manager/core/storage"
	"lexicon-manager/feature/example"
	"lexicon-manager/feature/user"
	"lexicon-manager/feature/word"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// services bundles the wired service graph for one-shot CLI commands.
type services struct {
	cfg      *config.Config
	logger   *zap.Logger
	db       *gorm.DB
	examples *example.Service
	words    *word.Service
}

// wireServices loads configuration and builds the service graph the CLI
// commands operate on. Cache and outbound mail are left disabled; one-shot
// commands have no use for either.
func wireServices() (*services, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	archiver := storage.NewArchiver(store, cfg.Storage.Bucket)

	exampleService := example.NewService(db, logg, word.NewChecker(db))
	userService := user.NewService(db, logg)
	dispatcher := mailer.NewDispatcher(nil, logg, cfg.Mail)
	exampleService.EnableNotifications(userService, dispatcher, cfg.Server)
	wordService := word.NewService(db, logg, exampleService, userService,
		dispatcher, nil, archiver, cfg.Server)

	return &services{
		cfg:      cfg,
		logger:   logg,
		db:       db,
		examples: exampleService,
		words:    wordService,
	}, nil
}

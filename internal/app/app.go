package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hance08/tankhah/internal/config"
	"github.com/hance08/tankhah/internal/log"
	"github.com/hance08/tankhah/internal/model"
	"github.com/hance08/tankhah/internal/reference"
	"github.com/hance08/tankhah/internal/service"
	"github.com/hance08/tankhah/internal/store"
)

type App struct {
	Service *service.Service
	Store   store.Repository
	Logger  *log.Logger
}

// NewApp validates the config and builds the session: logger, reference tables, the
// in-memory collection (seeded unless disabled) and the services over it.
func NewApp(cfg *config.Config) (*App, error) {
	return newApp(cfg, nil)
}

func newApp(cfg *config.Config, clock func() time.Time) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := log.New(log.Config{
		Level:     cfg.Log.Level,
		Format:    cfg.Log.Format,
		Component: log.ComponentApp,
		Writer:    os.Stderr,
	})

	var seed []model.Transaction
	if cfg.Ledger.Seed {
		seed = store.SeedTransactions()
	}
	repo := store.NewMemory(seed)

	svc := service.NewService(repo, reference.Default(), cfg, logger, clock)

	logger.Debug("session started",
		log.FieldCount, repo.Len(),
		log.FieldPath, cfg.ConfigPath,
	)

	return &App{
		Service: svc,
		Store:   repo,
		Logger:  logger,
	}, nil
}

// DataDir is where the config file lives.
func DataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".tankhah"), nil
	}

	return filepath.Join(configDir, "tankhah"), nil
}

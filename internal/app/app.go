package app

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"trailers/inventory/internal/assets"
	"trailers/inventory/internal/catalog"
	"trailers/inventory/internal/config"
	"trailers/inventory/internal/service"
)

// App holds all initialized components
type App struct {
	Config  *config.Config
	Checker assets.Checker

	Service *service.Service
}

// New creates the application with all dependencies initialized
func New(cfg *config.Config) (*App, error) {
	checker, err := assets.NewChecker(cfg.Assets)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize asset checker: %w", err)
	}

	roots := catalog.Roots()
	log.Debugf("Loaded inventory with %d root containers", len(roots))

	return &App{
		Config:  cfg,
		Checker: checker,
		Service: service.NewService(roots, checker, cfg.Validation.Strict),
	}, nil
}

// Close performs cleanup when shutting down
func (a *App) Close() error {
	log.Debug("Shutting down app...")

	if a.Checker != nil {
		if err := a.Checker.Close(); err != nil {
			return fmt.Errorf("failed to close asset checker: %w", err)
		}
	}

	log.Debug("App shut down successfully")
	return nil
}

package app

import (
	"log/slog"

	"github.com/trebuchet-org/netcfg/internal/domain/config"
	"github.com/trebuchet-org/netcfg/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Logger *slog.Logger

	// Use cases
	ResolveConfig *usecase.ResolveConfig
	ListNetworks  *usecase.ListNetworks
	ShowExplorer  *usecase.ShowExplorer
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	logger *slog.Logger,
	resolveConfig *usecase.ResolveConfig,
	listNetworks *usecase.ListNetworks,
	showExplorer *usecase.ShowExplorer,
) (*App, error) {
	return &App{
		Config:        cfg,
		Logger:        logger,
		ResolveConfig: resolveConfig,
		ListNetworks:  listNetworks,
		ShowExplorer:  showExplorer,
	}, nil
}

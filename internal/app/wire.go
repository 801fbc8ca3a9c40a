//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/netcfg/internal/adapters"
	"github.com/trebuchet-org/netcfg/internal/config"
	"github.com/trebuchet-org/netcfg/internal/logging"
	"github.com/trebuchet-org/netcfg/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Runtime config from viper
		config.Provider,

		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewResolveConfig,
		usecase.NewListNetworks,
		usecase.NewShowExplorer,

		// App
		NewApp,
	)
	return nil, nil
}

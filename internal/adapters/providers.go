package adapters

import (
	"github.com/google/wire"
	internalconfig "github.com/trebuchet-org/netcfg/internal/adapters/config"
	"github.com/trebuchet-org/netcfg/internal/adapters/env"
	"github.com/trebuchet-org/netcfg/internal/usecase"
)

// EnvSet provides environment-backed implementations
var EnvSet = wire.NewSet(
	env.NewOSSecretStore,
	wire.Bind(new(usecase.SecretLoader), new(*env.SecretStore)),
)

// ConfigSet provides configuration-based implementations
var ConfigSet = wire.NewSet(
	internalconfig.NewProjectCatalog,
	wire.Bind(new(usecase.NetworkCatalog), new(*internalconfig.ProjectCatalog)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	EnvSet,
	ConfigSet,
)

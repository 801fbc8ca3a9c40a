package usecase

import (
	"context"

	"github.com/trebuchet-org/netcfg/internal/domain/config"
)

// SecretLoader reads the credential bundle, failing on a missing required secret
type SecretLoader interface {
	LoadSecrets(ctx context.Context) (config.SecretBundle, error)
}

// NetworkCatalog provides the network descriptors and the optional overrides of the project
type NetworkCatalog interface {
	Networks(ctx context.Context) []config.NetworkDescriptor
	// ScenarioBases returns the project's scenario bases; false means use the built-in ones
	ScenarioBases(ctx context.Context) ([]config.ScenarioBase, bool)
	// Accounts returns the HD account overrides, or nil
	Accounts(ctx context.Context) *config.AccountsFile
}

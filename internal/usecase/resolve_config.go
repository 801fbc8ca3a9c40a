package usecase

import (
	"context"
	"fmt"
	"log/slog"

	netcfg "github.com/trebuchet-org/netcfg/internal/config"
	"github.com/trebuchet-org/netcfg/internal/domain/config"
)

// ResolveConfigParams contains parameters for resolving the configuration
type ResolveConfigParams struct {
	ActiveNetwork string
	ReportGas     bool
}

// ResolveConfigResult contains the assembled configuration
type ResolveConfigResult struct {
	Config     config.Config
	Explorer   ExplorerSelection
	Duplicates []string
	// Secrets are returned so renderers can redact them
	Secrets config.SecretBundle
}

// ResolveConfig is a use case for building the full configuration
type ResolveConfig struct {
	secrets SecretLoader
	catalog NetworkCatalog
	log     *slog.Logger
}

// NewResolveConfig creates a new ResolveConfig use case
func NewResolveConfig(secrets SecretLoader, catalog NetworkCatalog, log *slog.Logger) *ResolveConfig {
	return &ResolveConfig{
		secrets: secrets,
		catalog: catalog,
		log:     log,
	}
}

// Run executes the use case. Secrets are validated before any network is resolved.
func (uc *ResolveConfig) Run(ctx context.Context, params ResolveConfigParams) (*ResolveConfigResult, error) {
	secrets, err := uc.secrets.LoadSecrets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}
	uc.log.Debug("loaded secrets", "secrets", fmt.Sprintf("%+v", netcfg.MaskSecrets(secrets)))

	catalog := uc.catalog.Networks(ctx)
	duplicates := netcfg.DuplicateNames(catalog)
	for _, name := range duplicates {
		uc.log.Warn("network defined more than once, last definition wins", "network", name)
	}

	accounts, err := netcfg.ApplyAccountsFile(netcfg.DefaultHDAccounts(""), uc.catalog.Accounts(ctx))
	if err != nil {
		return nil, fmt.Errorf("invalid accounts settings: %w", err)
	}

	networks := netcfg.BuildAll(catalog, secrets, netcfg.WithAccounts(accounts))
	uc.log.Debug("resolved networks", "count", networks.Len(), "names", networks.Names())

	explorer := selectExplorer(params.ActiveNetwork, netcfg.CatalogNames(catalog))
	logExplorerFallback(uc.log, explorer)
	apiKey := netcfg.SelectAPIKey(params.ActiveNetwork, secrets.ExplorerKeys())

	static := netcfg.DefaultStaticSettings(secrets, params.ReportGas)
	if bases, ok := uc.catalog.ScenarioBases(ctx); ok {
		static.Scenario.Bases = netcfg.ResolveScenarioBases(bases, networks)
	}

	return &ResolveConfigResult{
		Config:     netcfg.Assemble(networks, apiKey, static),
		Explorer:   explorer,
		Duplicates: duplicates,
		Secrets:    secrets,
	}, nil
}

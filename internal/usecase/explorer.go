package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/lo"
	netcfg "github.com/trebuchet-org/netcfg/internal/config"
	"github.com/trebuchet-org/netcfg/internal/domain/config"
)

// ExplorerSelection describes which explorer key the active network uses
type ExplorerSelection struct {
	ActiveNetwork string
	Family        config.ExplorerFamily
	// Listed is false when the network fell back to the default explorer
	Listed bool
	// Suggestion is a catalog network close to an unknown active network
	Suggestion string
}

// selectExplorer resolves the explorer family and, for a name that is neither
// listed nor in the catalog, looks for a likely intended network.
func selectExplorer(activeNetwork string, catalogNames []string) ExplorerSelection {
	family, listed := netcfg.ExplorerFamilyFor(activeNetwork)
	sel := ExplorerSelection{
		ActiveNetwork: activeNetwork,
		Family:        family,
		Listed:        listed,
	}
	if !listed && activeNetwork != "" && !lo.Contains(catalogNames, activeNetwork) {
		candidates := lo.Uniq(lo.Flatten([][]string{catalogNames, netcfg.ExplorerNetworks()}))
		if suggestion, ok := netcfg.SuggestNetwork(activeNetwork, candidates); ok {
			sel.Suggestion = suggestion
		}
	}
	return sel
}

func logExplorerFallback(log *slog.Logger, sel ExplorerSelection) {
	if sel.Listed || sel.ActiveNetwork == "" {
		return
	}
	attrs := []any{"network", sel.ActiveNetwork, "explorer", sel.Family}
	if sel.Suggestion != "" {
		attrs = append(attrs, "suggestion", sel.Suggestion)
	}
	log.Warn("no explorer mapping for network, using default", attrs...)
}

// ShowExplorerParams contains parameters for showing the explorer selection
type ShowExplorerParams struct {
	ActiveNetwork string
}

// ShowExplorerResult contains the explorer selection and its key
type ShowExplorerResult struct {
	Selection ExplorerSelection
	APIKey    string
	Secrets   config.SecretBundle
}

// ShowExplorer is a use case for showing which explorer key is selected
type ShowExplorer struct {
	secrets SecretLoader
	catalog NetworkCatalog
	log     *slog.Logger
}

// NewShowExplorer creates a new ShowExplorer use case
func NewShowExplorer(secrets SecretLoader, catalog NetworkCatalog, log *slog.Logger) *ShowExplorer {
	return &ShowExplorer{
		secrets: secrets,
		catalog: catalog,
		log:     log,
	}
}

// Run executes the use case
func (uc *ShowExplorer) Run(ctx context.Context, params ShowExplorerParams) (*ShowExplorerResult, error) {
	secrets, err := uc.secrets.LoadSecrets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	sel := selectExplorer(params.ActiveNetwork, netcfg.CatalogNames(uc.catalog.Networks(ctx)))
	logExplorerFallback(uc.log, sel)

	return &ShowExplorerResult{
		Selection: sel,
		APIKey:    netcfg.SelectAPIKey(params.ActiveNetwork, secrets.ExplorerKeys()),
		Secrets:   secrets,
	}, nil
}

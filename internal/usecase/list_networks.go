package usecase

import (
	"context"

	"github.com/trebuchet-org/netcfg/internal/domain/config"
)

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct {
	ActiveNetwork string
}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus
	Secrets  config.SecretBundle
}

// NetworkStatus represents one resolved network
type NetworkStatus struct {
	Name     string
	ChainID  uint64
	URL      string
	Gas      config.GasSetting
	GasPrice config.GasSetting
	// DefaultURL is true when the URL came from the default provider
	DefaultURL bool
	Active     bool
}

// ListNetworks is a use case for listing the resolved networks
type ListNetworks struct {
	resolve *ResolveConfig
	catalog NetworkCatalog
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(resolve *ResolveConfig, catalog NetworkCatalog) *ListNetworks {
	return &ListNetworks{
		resolve: resolve,
		catalog: catalog,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	resolved, err := uc.resolve.Run(ctx, ResolveConfigParams{ActiveNetwork: params.ActiveNetwork})
	if err != nil {
		return nil, err
	}

	// Last definition wins, matching the resolved map
	explicitURL := make(map[string]bool)
	for _, d := range uc.catalog.Networks(ctx) {
		explicitURL[d.Name] = d.URL != ""
	}

	items := resolved.Config.Networks.All()
	networks := make([]NetworkStatus, 0, len(items))
	for _, item := range items {
		networks = append(networks, NetworkStatus{
			Name:       item.Name,
			ChainID:    item.Network.ChainID,
			URL:        item.Network.URL,
			Gas:        item.Network.Gas,
			GasPrice:   item.Network.GasPrice,
			DefaultURL: !explicitURL[item.Name],
			Active:     item.Name == params.ActiveNetwork,
		})
	}

	return &ListNetworksResult{
		Networks: networks,
		Secrets:  resolved.Secrets,
	}, nil
}

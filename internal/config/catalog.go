package config

import (
	"github.com/samber/lo"
	"github.com/trebuchet-org/netcfg/internal/domain/config"
)

// Well-known RPC endpoints for chains that are not served by Infura
const (
	AvalancheRPCURL = "https://api.avax.network/ext/bc/C/rpc"
	FujiRPCURL      = "https://api.avax-test.network/ext/bc/C/rpc"
)

// DefaultCatalog returns the built-in network catalog in declaration order
func DefaultCatalog() []config.NetworkDescriptor {
	return []config.NetworkDescriptor{
		{Name: "mainnet", ChainID: 1},
		{Name: "ropsten", ChainID: 3},
		{Name: "rinkeby", ChainID: 4},
		{Name: "goerli", ChainID: 5},
		{Name: "kovan", ChainID: 42},
		{Name: "avalanche", ChainID: 43114, URL: AvalancheRPCURL},
		{Name: "fuji", ChainID: 43113, URL: FujiRPCURL},
	}
}

// CatalogNames returns the descriptor names in catalog order, duplicates included
func CatalogNames(catalog []config.NetworkDescriptor) []string {
	return lo.Map(catalog, func(d config.NetworkDescriptor, _ int) string {
		return d.Name
	})
}

// DuplicateNames returns each name that appears more than once, in order of first repetition
func DuplicateNames(catalog []config.NetworkDescriptor) []string {
	return lo.FindDuplicates(CatalogNames(catalog))
}

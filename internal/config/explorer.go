package config

import (
	"sort"

	"github.com/trebuchet-org/netcfg/internal/domain/config"
)

// DefaultExplorerFamily is used for an empty or unlisted active network
const DefaultExplorerFamily = config.ExplorerEtherscan

// explorerFamilies maps network names to the explorer that verifies their contracts
var explorerFamilies = map[string]config.ExplorerFamily{
	"mainnet":   config.ExplorerEtherscan,
	"rinkeby":   config.ExplorerEtherscan,
	"goerli":    config.ExplorerEtherscan,
	"ropsten":   config.ExplorerEtherscan,
	"avalanche": config.ExplorerSnowtrace,
	"fuji":      config.ExplorerSnowtrace,
}

// ExplorerFamilyFor returns the explorer family of the active network.
// The bool is false when the name is not listed and the default was used.
func ExplorerFamilyFor(activeNetwork string) (config.ExplorerFamily, bool) {
	family, ok := explorerFamilies[activeNetwork]
	if !ok {
		return DefaultExplorerFamily, false
	}
	return family, true
}

// SelectAPIKey returns the explorer API key required by the active network
func SelectAPIKey(activeNetwork string, keys config.ExplorerKeys) string {
	family, _ := ExplorerFamilyFor(activeNetwork)
	return keys.For(family)
}

// ExplorerNetworks returns the explicitly listed network names, sorted
func ExplorerNetworks() []string {
	names := make([]string, 0, len(explorerFamilies))
	for name := range explorerFamilies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package config

import (
	"github.com/trebuchet-org/netcfg/internal/domain/config"
)

// Assemble places the resolved networks, the selected explorer key and the
// static settings into a new Config. Nothing passed in is retained by reference
// except the read-only network map.
func Assemble(networks *config.NetworkMap, apiKey string, static config.StaticSettings) config.Config {
	bases := make([]config.ScenarioBase, len(static.Scenario.Bases))
	copy(bases, static.Scenario.Bases)

	return config.Config{
		Solidity:     static.Solidity,
		LocalNetwork: static.LocalNetwork,
		Networks:     networks,
		Etherscan: config.EtherscanConfig{
			APIKey: apiKey,
		},
		GasReporter: static.GasReporter,
		Typechain:   static.Typechain,
		Scenario: config.ScenarioConfig{
			Bases: bases,
		},
	}
}

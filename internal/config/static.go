package config

import (
	"github.com/trebuchet-org/netcfg/internal/domain/config"
)

// Compiler settings
const (
	SolidityVersion = "0.8.4"
	OptimizerRuns   = 1000
)

// Local in-memory test network
const (
	LocalNetworkName  = "hardhat"
	LocalChainID      = 1337
	LocalGasLimit     = 12_000_000
	LocalTestMnemonic = "myth like bonus scare over problem client lizard pioneer submit female collect"
)

// Gas reporter and binding generation settings
const (
	GasReporterCurrency  = "USD"
	GasReporterPriceGwei = 200
	TypechainOutDir      = "build/types"
	TypechainTarget      = "ethers-v5"
)

// ParseReportGas reads the REPORT_GAS value. Only the exact string "true" enables reporting.
func ParseReportGas(value string) bool {
	return value == "true"
}

// DefaultStaticSettings returns the pass-through settings blocks
func DefaultStaticSettings(secrets config.SecretBundle, reportGas bool) config.StaticSettings {
	return config.StaticSettings{
		Solidity: config.SolidityConfig{
			Version: SolidityVersion,
			Optimizer: config.OptimizerConfig{
				Enabled: true,
				Runs:    OptimizerRuns,
			},
		},
		LocalNetwork: config.LocalNetworkConfig{
			Name:           LocalNetworkName,
			ChainID:        LocalChainID,
			LoggingEnabled: false,
			Gas:            config.FixedGas(LocalGasLimit),
			GasPrice:       config.AutoGas(),
			BlockGasLimit:  LocalGasLimit,
			Accounts:       DefaultHDAccounts(LocalTestMnemonic),
		},
		GasReporter: config.GasReporterConfig{
			Enabled:       reportGas,
			Currency:      GasReporterCurrency,
			Coinmarketcap: secrets.CoinmarketcapKey,
			GasPriceGwei:  GasReporterPriceGwei,
		},
		Typechain: config.TypechainConfig{
			OutDir: TypechainOutDir,
			Target: TypechainTarget,
		},
		Scenario: config.ScenarioConfig{
			Bases: DefaultScenarioBases(secrets.InfuraKey),
		},
	}
}

// DefaultScenarioBases returns the built-in scenario environments
func DefaultScenarioBases(infuraKey string) []config.ScenarioBase {
	return []config.ScenarioBase{
		{Name: "development"},
		{Name: "goerli", URL: ResolveDefaultURL("goerli", infuraKey)},
		{Name: "fuji", URL: FujiRPCURL},
	}
}

// ResolveScenarioBases returns a copy of bases where each base without a URL
// that names a resolved network takes that network's URL.
func ResolveScenarioBases(bases []config.ScenarioBase, networks *config.NetworkMap) []config.ScenarioBase {
	resolved := make([]config.ScenarioBase, len(bases))
	for i, base := range bases {
		if base.URL == "" {
			if n, ok := networks.Get(base.Name); ok {
				base.URL = n.URL
			}
		}
		resolved[i] = base
	}
	return resolved
}

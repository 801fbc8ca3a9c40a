package config

// OptimizerConfig holds solc optimizer flags
type OptimizerConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	Runs    int  `json:"runs" yaml:"runs"`
}

// SolidityConfig pins the compiler
type SolidityConfig struct {
	Version   string          `json:"version" yaml:"version"`
	Optimizer OptimizerConfig `json:"optimizer" yaml:"optimizer"`
}

// LocalNetworkConfig is the in-process test network
type LocalNetworkConfig struct {
	Name           string     `json:"name" yaml:"name"`
	ChainID        uint64     `json:"chainId" yaml:"chainId"`
	LoggingEnabled bool       `json:"loggingEnabled" yaml:"loggingEnabled"`
	Gas            GasSetting `json:"gas" yaml:"gas"`
	GasPrice       GasSetting `json:"gasPrice" yaml:"gasPrice"`
	BlockGasLimit  uint64     `json:"blockGasLimit" yaml:"blockGasLimit"`
	Accounts       HDAccounts `json:"accounts" yaml:"accounts"`
}

// EtherscanConfig carries the explorer key chosen for the active network
type EtherscanConfig struct {
	APIKey string `json:"apiKey" yaml:"apiKey" mask:"fixed"`
}

// GasReporterConfig configures gas usage reporting
type GasReporterConfig struct {
	Enabled       bool   `json:"enabled" yaml:"enabled"`
	Currency      string `json:"currency" yaml:"currency"`
	Coinmarketcap string `json:"coinmarketcap,omitempty" yaml:"coinmarketcap,omitempty" mask:"fixed"`
	GasPriceGwei  uint64 `json:"gasPrice" yaml:"gasPrice"`
}

// TypechainConfig configures generated contract bindings
type TypechainConfig struct {
	OutDir string `json:"outDir" yaml:"outDir"`
	Target string `json:"target" yaml:"target"`
}

// ScenarioBase is a named environment used by scenario runs
type ScenarioBase struct {
	Name string `json:"name" toml:"name" yaml:"name"`
	URL  string `json:"url,omitempty" toml:"url,omitempty" yaml:"url,omitempty"`
}

// ScenarioConfig lists the scenario bases
type ScenarioConfig struct {
	Bases []ScenarioBase `json:"bases" yaml:"bases"`
}

// StaticSettings are the pass-through blocks placed next to the resolved networks
type StaticSettings struct {
	Solidity     SolidityConfig
	LocalNetwork LocalNetworkConfig
	GasReporter  GasReporterConfig
	Typechain    TypechainConfig
	Scenario     ScenarioConfig
}

// Config is the fully assembled configuration handed to the build tool.
// It is built once and must not be modified afterwards.
type Config struct {
	Solidity     SolidityConfig     `json:"solidity" yaml:"solidity"`
	LocalNetwork LocalNetworkConfig `json:"localNetwork" yaml:"localNetwork"`
	Networks     *NetworkMap        `json:"networks" yaml:"networks"`
	Etherscan    EtherscanConfig    `json:"etherscan" yaml:"etherscan"`
	GasReporter  GasReporterConfig  `json:"gasReporter" yaml:"gasReporter"`
	Typechain    TypechainConfig    `json:"typechain" yaml:"typechain"`
	Scenario     ScenarioConfig     `json:"scenario" yaml:"scenario"`
}

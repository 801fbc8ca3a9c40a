package config

// Environment variable names read at startup
const (
	EnvMnemonic         = "MNEMONIC"
	EnvInfuraKey        = "INFURA_KEY"
	EnvEtherscanKey     = "ETHERSCAN_KEY"
	EnvSnowtraceKey     = "SNOWTRACE_KEY"
	EnvCoinmarketcapKey = "COINMARKETCAP_API_KEY"
	EnvReportGas        = "REPORT_GAS"
	EnvActiveNetwork    = "NETWORK"
)

// SecretBundle holds the credentials read once at process start
type SecretBundle struct {
	Mnemonic         string `json:"mnemonic" mask:"fixed"`
	InfuraKey        string `json:"infuraKey" mask:"fixed"`
	EtherscanKey     string `json:"etherscanKey" mask:"fixed"`
	SnowtraceKey     string `json:"snowtraceKey" mask:"fixed"`
	CoinmarketcapKey string `json:"coinmarketcapKey,omitempty" mask:"fixed"`
}

// ExplorerKeys returns the block-explorer credentials of the bundle
func (s SecretBundle) ExplorerKeys() ExplorerKeys {
	return ExplorerKeys{
		Etherscan: s.EtherscanKey,
		Snowtrace: s.SnowtraceKey,
	}
}

// Values returns every non-empty secret value
func (s SecretBundle) Values() []string {
	var values []string
	for _, v := range []string{s.Mnemonic, s.InfuraKey, s.EtherscanKey, s.SnowtraceKey, s.CoinmarketcapKey} {
		if v != "" {
			values = append(values, v)
		}
	}
	return values
}

// ExplorerFamily identifies a block-explorer service family
type ExplorerFamily string

const (
	ExplorerEtherscan ExplorerFamily = "etherscan"
	ExplorerSnowtrace ExplorerFamily = "snowtrace"
)

// ExplorerKeys holds one API key per explorer family
type ExplorerKeys struct {
	Etherscan string `mask:"fixed"`
	Snowtrace string `mask:"fixed"`
}

// For returns the key of the given family
func (k ExplorerKeys) For(family ExplorerFamily) string {
	switch family {
	case ExplorerSnowtrace:
		return k.Snowtrace
	default:
		return k.Etherscan
	}
}

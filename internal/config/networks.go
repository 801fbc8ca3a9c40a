package config

import (
	"github.com/trebuchet-org/netcfg/internal/domain/config"
)

// BuildOption customizes BuildAll
type BuildOption func(*buildOptions)

type buildOptions struct {
	accounts *config.HDAccounts
}

// WithAccounts uses accounts for every network instead of the mnemonic defaults.
// The mnemonic is always taken from the secret bundle.
func WithAccounts(accounts config.HDAccounts) BuildOption {
	return func(o *buildOptions) {
		o.accounts = &accounts
	}
}

// BuildAll resolves every catalog entry into its runtime settings.
// The result holds one entry per distinct name; when two descriptors share a
// name the later one wins.
func BuildAll(catalog []config.NetworkDescriptor, secrets config.SecretBundle, opts ...BuildOption) *config.NetworkMap {
	o := buildOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	accounts := DefaultHDAccounts(secrets.Mnemonic)
	if o.accounts != nil {
		accounts = *o.accounts
		accounts.Mnemonic = secrets.Mnemonic
	}

	items := make([]config.NamedNetwork, 0, len(catalog))
	for _, descriptor := range catalog {
		items = append(items, config.NamedNetwork{
			Name:    descriptor.Name,
			Network: resolveNetwork(descriptor, secrets.InfuraKey, accounts),
		})
	}

	return config.NewNetworkMap(items)
}

func resolveNetwork(d config.NetworkDescriptor, infuraKey string, accounts config.HDAccounts) config.ResolvedNetwork {
	url := d.URL
	if url == "" {
		url = ResolveDefaultURL(d.Name, infuraKey)
	}

	return config.ResolvedNetwork{
		ChainID:  d.ChainID,
		URL:      url,
		Gas:      gasOrAuto(d.Gas),
		GasPrice: gasOrAuto(d.GasPrice),
		Accounts: accounts,
	}
}

func gasOrAuto(g *config.GasSetting) config.GasSetting {
	if g == nil {
		return config.AutoGas()
	}
	return *g
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trebuchet-org/netcfg/internal/domain/config"
)

func TestSelectAPIKey(t *testing.T) {
	keys := config.ExplorerKeys{Etherscan: "E", Snowtrace: "S"}

	tests := []struct {
		active     string
		want       string
		wantFamily config.ExplorerFamily
		listed     bool
	}{
		{active: "mainnet", want: "E", wantFamily: config.ExplorerEtherscan, listed: true},
		{active: "rinkeby", want: "E", wantFamily: config.ExplorerEtherscan, listed: true},
		{active: "goerli", want: "E", wantFamily: config.ExplorerEtherscan, listed: true},
		{active: "ropsten", want: "E", wantFamily: config.ExplorerEtherscan, listed: true},
		{active: "avalanche", want: "S", wantFamily: config.ExplorerSnowtrace, listed: true},
		{active: "fuji", want: "S", wantFamily: config.ExplorerSnowtrace, listed: true},
		{active: "", want: "E", wantFamily: config.ExplorerEtherscan},
		{active: "kovan", want: "E", wantFamily: config.ExplorerEtherscan},
		{active: "polygon", want: "E", wantFamily: config.ExplorerEtherscan},
		{active: "Fuji", want: "E", wantFamily: config.ExplorerEtherscan},
	}

	for _, tt := range tests {
		t.Run("active="+tt.active, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectAPIKey(tt.active, keys))

			family, listed := ExplorerFamilyFor(tt.active)
			assert.Equal(t, tt.wantFamily, family)
			assert.Equal(t, tt.listed, listed)
		})
	}
}

func TestExplorerNetworks(t *testing.T) {
	assert.Equal(t,
		[]string{"avalanche", "fuji", "goerli", "mainnet", "rinkeby", "ropsten"},
		ExplorerNetworks(),
	)
}

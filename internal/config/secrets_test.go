package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/netcfg/internal/domain"
	"github.com/trebuchet-org/netcfg/internal/domain/config"
)

type envMap map[string]string

func (m envMap) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func fullEnv() envMap {
	return envMap{
		config.EnvMnemonic:         "test test test test test test test test test test test junk",
		config.EnvInfuraKey:        "infura123",
		config.EnvEtherscanKey:     "etherscan456",
		config.EnvSnowtraceKey:     "snowtrace789",
		config.EnvCoinmarketcapKey: "cmc000",
	}
}

func TestSecretSource(t *testing.T) {
	src := NewSecretSource(envMap{"SET": "value", "EMPTY": ""})

	t.Run("require returns the value", func(t *testing.T) {
		v, err := src.Require("SET")
		require.NoError(t, err)
		assert.Equal(t, "value", v)
	})

	t.Run("require fails on unset", func(t *testing.T) {
		_, err := src.Require("UNSET")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrMissingSecret))
		assert.Contains(t, err.Error(), "UNSET")
	})

	t.Run("require fails on empty", func(t *testing.T) {
		_, err := src.Require("EMPTY")
		var missing *domain.MissingSecretError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "EMPTY", missing.Name)
	})

	t.Run("optional never fails", func(t *testing.T) {
		assert.Equal(t, "value", src.Optional("SET"))
		assert.Equal(t, "", src.Optional("UNSET"))
	})
}

func TestLoadSecrets(t *testing.T) {
	t.Run("full environment", func(t *testing.T) {
		secrets, err := LoadSecrets(NewSecretSource(fullEnv()))
		require.NoError(t, err)
		assert.Equal(t, "infura123", secrets.InfuraKey)
		assert.Equal(t, "etherscan456", secrets.EtherscanKey)
		assert.Equal(t, "snowtrace789", secrets.SnowtraceKey)
		assert.Equal(t, "cmc000", secrets.CoinmarketcapKey)
		assert.NotEmpty(t, secrets.Mnemonic)
	})

	t.Run("missing mnemonic yields empty string", func(t *testing.T) {
		env := fullEnv()
		delete(env, config.EnvMnemonic)
		secrets, err := LoadSecrets(NewSecretSource(env))
		require.NoError(t, err)
		assert.Equal(t, "", secrets.Mnemonic)
	})

	tests := []struct {
		name    string
		remove  []string
		missing string
	}{
		{name: "missing infura key", remove: []string{config.EnvInfuraKey}, missing: config.EnvInfuraKey},
		{name: "missing snowtrace key", remove: []string{config.EnvSnowtraceKey}, missing: config.EnvSnowtraceKey},
		{name: "missing etherscan key", remove: []string{config.EnvEtherscanKey}, missing: config.EnvEtherscanKey},
		{
			name:    "first missing in check order is reported",
			remove:  []string{config.EnvInfuraKey, config.EnvSnowtraceKey, config.EnvEtherscanKey},
			missing: config.EnvEtherscanKey,
		},
		{
			name:    "snowtrace checked before infura",
			remove:  []string{config.EnvInfuraKey, config.EnvSnowtraceKey},
			missing: config.EnvSnowtraceKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := fullEnv()
			for _, k := range tt.remove {
				delete(env, k)
			}
			_, err := LoadSecrets(NewSecretSource(env))
			var missing *domain.MissingSecretError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tt.missing, missing.Name)
		})
	}
}

func TestLookupFunc(t *testing.T) {
	f := LookupFunc(func(key string) (string, bool) {
		return "x-" + key, true
	})
	v, ok := f.LookupEnv("A")
	assert.True(t, ok)
	assert.Equal(t, "x-A", v)
}

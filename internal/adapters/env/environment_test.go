package env

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/netcfg/internal/domain"
	"github.com/trebuchet-org/netcfg/internal/domain/config"
)

func TestSecretStore(t *testing.T) {
	ctx := context.Background()

	t.Run("map environment", func(t *testing.T) {
		store := NewSecretStore(MapEnvironment{
			config.EnvInfuraKey:     "i",
			config.EnvEtherscanKey:  "e",
			config.EnvSnowtraceKey:  "s",
			config.EnvMnemonic:      "m",
			config.EnvReportGas:     "true",
			config.EnvActiveNetwork: "fuji",
		})

		secrets, err := store.LoadSecrets(ctx)
		require.NoError(t, err)
		assert.Equal(t, config.SecretBundle{
			Mnemonic:     "m",
			InfuraKey:    "i",
			EtherscanKey: "e",
			SnowtraceKey: "s",
		}, secrets)
	})

	t.Run("missing key", func(t *testing.T) {
		store := NewSecretStore(MapEnvironment{config.EnvEtherscanKey: "e"})

		_, err := store.LoadSecrets(ctx)
		var missing *domain.MissingSecretError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, config.EnvSnowtraceKey, missing.Name)
	})

	t.Run("process environment", func(t *testing.T) {
		t.Setenv(config.EnvInfuraKey, "proc-i")
		t.Setenv(config.EnvEtherscanKey, "proc-e")
		t.Setenv(config.EnvSnowtraceKey, "proc-s")
		t.Setenv(config.EnvMnemonic, "")

		secrets, err := NewOSSecretStore().LoadSecrets(ctx)
		require.NoError(t, err)
		assert.Equal(t, "proc-i", secrets.InfuraKey)
		assert.Equal(t, "", secrets.Mnemonic)
	})

	t.Run("empty process value counts as missing", func(t *testing.T) {
		t.Setenv(config.EnvInfuraKey, "")
		t.Setenv(config.EnvEtherscanKey, "proc-e")
		t.Setenv(config.EnvSnowtraceKey, "proc-s")

		_, err := NewOSSecretStore().LoadSecrets(ctx)
		assert.ErrorIs(t, err, domain.ErrMissingSecret)
	})
}

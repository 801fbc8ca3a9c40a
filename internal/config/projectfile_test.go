package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/netcfg/internal/domain"
	"github.com/trebuchet-org/netcfg/internal/domain/config"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadProjectFile(t *testing.T) {
	env := envMap{"ALCHEMY_KEY": "alc"}

	t.Run("no file", func(t *testing.T) {
		pf, err := LoadProjectFile(t.TempDir(), env)
		require.NoError(t, err)
		assert.Nil(t, pf)
	})

	t.Run("toml", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, ProjectFileTOML, `
[[networks]]
name = "mainnet"
chain_id = 1
url = "https://eth-mainnet.g.alchemy.com/v2/${ALCHEMY_KEY}"
gas = 9000000
gas_price = "auto"

[[networks]]
name = "sepolia"
chain_id = 11155111

[[scenarios]]
name = "development"

[[scenarios]]
name = "sepolia"

[accounts]
path = "m/44'/60'/0'/0"
count = 3
`)

		pf, err := LoadProjectFile(dir, env)
		require.NoError(t, err)
		require.NotNil(t, pf)
		assert.Equal(t, path, pf.Path)

		require.Len(t, pf.Networks, 2)
		assert.Equal(t, "https://eth-mainnet.g.alchemy.com/v2/alc", pf.Networks[0].URL)
		require.NotNil(t, pf.Networks[0].Gas)
		assert.Equal(t, config.FixedGas(9000000), *pf.Networks[0].Gas)
		require.NotNil(t, pf.Networks[0].GasPrice)
		assert.True(t, pf.Networks[0].GasPrice.IsAuto())
		assert.Equal(t, uint64(11155111), pf.Networks[1].ChainID)
		assert.Nil(t, pf.Networks[1].Gas)

		assert.Equal(t, []config.ScenarioBase{{Name: "development"}, {Name: "sepolia"}}, pf.Scenarios)

		require.NotNil(t, pf.Accounts)
		require.NotNil(t, pf.Accounts.Count)
		assert.Equal(t, uint32(3), *pf.Accounts.Count)
		assert.Nil(t, pf.Accounts.InitialIndex)
	})

	t.Run("yaml", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ProjectFileYAML, `
networks:
  - name: local
    chainId: 31337
    url: http://127.0.0.1:8545
    gasPrice: 1000000000
scenarios:
  - name: local
accounts:
  initialIndex: 2
`)

		pf, err := LoadProjectFile(dir, env)
		require.NoError(t, err)
		require.NotNil(t, pf)
		require.Len(t, pf.Networks, 1)
		assert.Equal(t, "http://127.0.0.1:8545", pf.Networks[0].URL)
		assert.Equal(t, config.FixedGas(1000000000), *pf.Networks[0].GasPrice)
		require.NotNil(t, pf.Accounts.InitialIndex)
		assert.Equal(t, uint32(2), *pf.Accounts.InitialIndex)
	})

	t.Run("toml preferred over yaml", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ProjectFileTOML, "[[networks]]\nname = \"from-toml\"\nchain_id = 1\n")
		writeFile(t, dir, ProjectFileYAML, "networks:\n  - name: from-yaml\n    chainId: 1\n")

		pf, err := LoadProjectFile(dir, env)
		require.NoError(t, err)
		assert.Equal(t, "from-toml", pf.Networks[0].Name)
	})

	t.Run("network url with unset variable", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ProjectFileTOML, "[[networks]]\nname = \"sepolia\"\nchain_id = 11155111\nurl = \"${SEPOLIA_RPC_URL}\"\n")

		pf, err := LoadProjectFile(dir, env)
		require.Error(t, err)
		assert.Nil(t, pf)
		assert.ErrorIs(t, err, domain.ErrUnsetURLVariable)
		assert.Contains(t, err.Error(), `network "sepolia"`)
		assert.Contains(t, err.Error(), "SEPOLIA_RPC_URL")
	})

	t.Run("empty variable counts as unset", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ProjectFileYAML, "networks:\n  - name: x\n    chainId: 1\n    url: https://rpc/${EMPTY}/${EMPTY}\n")

		_, err := LoadProjectFile(dir, envMap{"EMPTY": ""})
		require.ErrorIs(t, err, domain.ErrUnsetURLVariable)
		assert.Equal(t, 1, strings.Count(err.Error(), "EMPTY"))
	})

	t.Run("scenario url with unset variable", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ProjectFileTOML, "[[scenarios]]\nname = \"staging\"\nurl = \"https://rpc/${STAGING_KEY}\"\n")

		_, err := LoadProjectFile(dir, env)
		require.ErrorIs(t, err, domain.ErrUnsetURLVariable)
		assert.Contains(t, err.Error(), `scenario "staging"`)
		assert.Contains(t, err.Error(), "STAGING_KEY")
	})

	t.Run("explicit url never falls back to the default provider", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ProjectFileTOML, "[[networks]]\nname = \"sepolia\"\nchain_id = 11155111\nurl = \"${SEPOLIA_RPC_URL}\"\n")

		pf, err := LoadProjectFile(dir, envMap{"SEPOLIA_RPC_URL": "https://rpc.sepolia.org"})
		require.NoError(t, err)

		networks := BuildAll(pf.Networks, testSecrets())
		n, ok := networks.Get("sepolia")
		require.True(t, ok)
		assert.Equal(t, "https://rpc.sepolia.org", n.URL)
	})

	t.Run("network without name", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ProjectFileTOML, "[[networks]]\nchain_id = 1\n")

		_, err := LoadProjectFile(dir, env)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "network #1 has no name")
	})

	t.Run("invalid gas", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ProjectFileYAML, "networks:\n  - name: x\n    gas: fast\n")

		_, err := LoadProjectFile(dir, env)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse netcfg.yaml")
	})

	t.Run("invalid derivation path", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ProjectFileTOML, "[accounts]\npath = \"bogus\"\n")

		_, err := LoadProjectFile(dir, env)
		assert.ErrorIs(t, err, domain.ErrInvalidDerivationPath)
	})
}

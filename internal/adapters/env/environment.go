package env

import (
	"context"
	"os"

	netcfg "github.com/trebuchet-org/netcfg/internal/config"
	"github.com/trebuchet-org/netcfg/internal/domain/config"
	"github.com/trebuchet-org/netcfg/internal/usecase"
)

// OSEnvironment reads the process environment
type OSEnvironment struct{}

// NewOSEnvironment creates a new process environment reader
func NewOSEnvironment() OSEnvironment {
	return OSEnvironment{}
}

func (OSEnvironment) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapEnvironment is a fixed environment, used where the process environment must not leak in
type MapEnvironment map[string]string

func (m MapEnvironment) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// SecretStore loads the secret bundle from an environment
type SecretStore struct {
	source *netcfg.SecretSource
}

// NewSecretStore creates a new secret store
func NewSecretStore(env netcfg.Lookuper) *SecretStore {
	return &SecretStore{source: netcfg.NewSecretSource(env)}
}

// NewOSSecretStore creates a secret store over the process environment
func NewOSSecretStore() *SecretStore {
	return NewSecretStore(NewOSEnvironment())
}

// LoadSecrets implements usecase.SecretLoader
func (s *SecretStore) LoadSecrets(ctx context.Context) (config.SecretBundle, error) {
	return netcfg.LoadSecrets(s.source)
}

// Ensure the store implements the interface
var _ usecase.SecretLoader = (*SecretStore)(nil)

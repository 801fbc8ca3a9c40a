package config

import (
	"github.com/trebuchet-org/netcfg/internal/domain"
	"github.com/trebuchet-org/netcfg/internal/domain/config"
)

// Lookuper looks up environment values
type Lookuper interface {
	LookupEnv(key string) (string, bool)
}

// LookupFunc adapts a function such as os.LookupEnv to Lookuper
type LookupFunc func(key string) (string, bool)

func (f LookupFunc) LookupEnv(key string) (string, bool) {
	return f(key)
}

// SecretSource reads credentials from the environment
type SecretSource struct {
	env Lookuper
}

// NewSecretSource creates a secret source backed by env
func NewSecretSource(env Lookuper) *SecretSource {
	return &SecretSource{env: env}
}

// Require returns the value of name, or a *domain.MissingSecretError when it is unset or empty
func (s *SecretSource) Require(name string) (string, error) {
	value, ok := s.env.LookupEnv(name)
	if !ok || value == "" {
		return "", &domain.MissingSecretError{Name: name}
	}
	return value, nil
}

// Optional returns the value of name or "" when unset
func (s *SecretSource) Optional(name string) string {
	value, _ := s.env.LookupEnv(name)
	return value
}

// requiredSecrets are checked in this order; the first missing one fails the load
var requiredSecrets = []string{
	config.EnvEtherscanKey,
	config.EnvSnowtraceKey,
	config.EnvInfuraKey,
}

// LoadSecrets reads the full bundle. It fails on the first missing
// required credential, before anything else is read.
func LoadSecrets(src *SecretSource) (config.SecretBundle, error) {
	values := make(map[string]string, len(requiredSecrets))
	for _, name := range requiredSecrets {
		value, err := src.Require(name)
		if err != nil {
			return config.SecretBundle{}, err
		}
		values[name] = value
	}

	return config.SecretBundle{
		Mnemonic:         src.Optional(config.EnvMnemonic),
		InfuraKey:        values[config.EnvInfuraKey],
		EtherscanKey:     values[config.EnvEtherscanKey],
		SnowtraceKey:     values[config.EnvSnowtraceKey],
		CoinmarketcapKey: src.Optional(config.EnvCoinmarketcapKey),
	}, nil
}

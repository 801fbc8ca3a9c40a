package config

import (
	"strings"

	"github.com/samber/lo"
	mask "github.com/showa-93/go-mask"
	"github.com/trebuchet-org/netcfg/internal/domain/config"
)

// Redacted replaces secret values in rendered output
const Redacted = "********"

var secretMasker = newSecretMasker()

func newSecretMasker() *mask.Masker {
	masker := mask.NewMasker()
	masker.RegisterMaskStringFunc(mask.MaskTypeFixed, masker.MaskFixedString)
	return masker
}

// MaskSecrets returns a copy of the bundle that is safe to log
func MaskSecrets(secrets config.SecretBundle) config.SecretBundle {
	masked, err := secretMasker.Mask(secrets)
	if err != nil {
		return config.SecretBundle{}
	}
	bundle, ok := masked.(config.SecretBundle)
	if !ok {
		return config.SecretBundle{}
	}
	return bundle
}

// RedactString replaces s, or any URL segment of s, that equals a secret value with Redacted
func RedactString(s string, secrets config.SecretBundle) string {
	r := newRedactor(secrets)
	if r == nil {
		return s
	}
	return r.Replace(s)
}

// RedactConfig returns a copy of cfg with every secret value replaced by
// Redacted, including keys embedded as provider URL segments.
func RedactConfig(cfg config.Config, secrets config.SecretBundle) config.Config {
	r := newRedactor(secrets)
	if r == nil {
		return cfg
	}

	out := cfg
	out.Networks = cfg.Networks.Map(func(_ string, n config.ResolvedNetwork) config.ResolvedNetwork {
		n.URL = r.Replace(n.URL)
		n.Accounts.Mnemonic = r.Replace(n.Accounts.Mnemonic)
		return n
	})
	out.Etherscan.APIKey = r.Replace(cfg.Etherscan.APIKey)
	out.GasReporter.Coinmarketcap = r.Replace(cfg.GasReporter.Coinmarketcap)

	bases := make([]config.ScenarioBase, len(cfg.Scenario.Bases))
	for i, base := range cfg.Scenario.Bases {
		base.URL = r.Replace(base.URL)
		bases[i] = base
	}
	out.Scenario.Bases = bases

	return out
}

// newRedactor returns nil when there is nothing to redact
func newRedactor(secrets config.SecretBundle) *redactor {
	values := secrets.Values()
	if len(values) == 0 {
		return nil
	}
	return &redactor{secrets: lo.Keyify(values)}
}

// redactor replaces a string equal to a secret, or a URL segment equal to
// one. Partial matches inside longer text are left alone.
type redactor struct {
	secrets map[string]struct{}
}

func (r *redactor) Replace(s string) string {
	if r.isSecret(s) {
		return Redacted
	}

	var b strings.Builder
	start := 0
	for i := 0; i <= len(s); i++ {
		if i < len(s) && !isURLDelimiter(s[i]) {
			continue
		}
		if segment := s[start:i]; r.isSecret(segment) {
			b.WriteString(Redacted)
		} else {
			b.WriteString(segment)
		}
		if i < len(s) {
			b.WriteByte(s[i])
		}
		start = i + 1
	}
	return b.String()
}

func (r *redactor) isSecret(s string) bool {
	if s == "" {
		return false
	}
	_, ok := r.secrets[s]
	return ok
}

func isURLDelimiter(c byte) bool {
	switch c {
	case '/', '?', '&', '=', '#', ':', '@':
		return true
	}
	return false
}

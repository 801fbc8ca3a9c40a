package config

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/trebuchet-org/netcfg/internal/domain"
	"github.com/trebuchet-org/netcfg/internal/domain/config"
)

// HD account defaults used by the build tool for mnemonic accounts
const (
	DefaultDerivationPath = "m/44'/60'/0'/0"
	DefaultAccountCount   = 20
)

// DefaultHDAccounts returns the account block for mnemonic with the default derivation settings
func DefaultHDAccounts(mnemonic string) config.HDAccounts {
	return config.HDAccounts{
		Mnemonic:     mnemonic,
		Path:         DefaultDerivationPath,
		InitialIndex: 0,
		Count:        DefaultAccountCount,
	}
}

// ValidateDerivationPath checks that path is a BIP-32 derivation path
func ValidateDerivationPath(path string) error {
	if _, err := accounts.ParseDerivationPath(path); err != nil {
		return fmt.Errorf("%w %q: %v", domain.ErrInvalidDerivationPath, path, err)
	}
	return nil
}

// ApplyAccountsFile overrides the defaults in base with the values set in file.
// A nil file returns base unchanged.
func ApplyAccountsFile(base config.HDAccounts, file *config.AccountsFile) (config.HDAccounts, error) {
	if file == nil {
		return base, nil
	}
	if file.Path != "" {
		if err := ValidateDerivationPath(file.Path); err != nil {
			return config.HDAccounts{}, err
		}
		base.Path = file.Path
	}
	if file.InitialIndex != nil {
		base.InitialIndex = *file.InitialIndex
	}
	if file.Count != nil {
		base.Count = *file.Count
	}
	return base, nil
}

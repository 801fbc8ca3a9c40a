package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain operations
var (
	// ErrMissingSecret is returned when a required credential is absent or empty
	ErrMissingSecret = errors.New("missing required secret")

	// ErrInvalidDerivationPath is returned when an HD derivation path cannot be parsed
	ErrInvalidDerivationPath = errors.New("invalid derivation path")

	// ErrUnsetURLVariable is returned when a configured URL references an unset environment variable
	ErrUnsetURLVariable = errors.New("url references unset environment variable")
)

// MissingSecretError reports the environment variable that was required but not set.
// It matches ErrMissingSecret with errors.Is.
type MissingSecretError struct {
	Name string
}

func (e *MissingSecretError) Error() string {
	return fmt.Sprintf("Missing required environment variable: %s", e.Name)
}

func (e *MissingSecretError) Is(target error) bool {
	return target == ErrMissingSecret
}

package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissingSecretError(t *testing.T) {
	err := fmt.Errorf("failed to load secrets: %w", &MissingSecretError{Name: "INFURA_KEY"})

	assert.True(t, errors.Is(err, ErrMissingSecret))
	assert.False(t, errors.Is(err, ErrInvalidDerivationPath))

	var missing *MissingSecretError
	assert.True(t, errors.As(err, &missing))
	assert.Equal(t, "INFURA_KEY", missing.Name)
	assert.Equal(t, "Missing required environment variable: INFURA_KEY", missing.Error())
}

package usecase_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"

	"github.com/stretchr/testify/mock"
	"github.com/trebuchet-org/netcfg/internal/domain/config"
)

// MockSecretLoader is a mock implementation of SecretLoader
type MockSecretLoader struct {
	mock.Mock
}

func (m *MockSecretLoader) LoadSecrets(ctx context.Context) (config.SecretBundle, error) {
	args := m.Called(ctx)
	return args.Get(0).(config.SecretBundle), args.Error(1)
}

// MockNetworkCatalog is a mock implementation of NetworkCatalog
type MockNetworkCatalog struct {
	mock.Mock
}

func (m *MockNetworkCatalog) Networks(ctx context.Context) []config.NetworkDescriptor {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]config.NetworkDescriptor)
}

func (m *MockNetworkCatalog) ScenarioBases(ctx context.Context) ([]config.ScenarioBase, bool) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).([]config.ScenarioBase), args.Bool(1)
}

func (m *MockNetworkCatalog) Accounts(ctx context.Context) *config.AccountsFile {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*config.AccountsFile)
}

func testSecrets() config.SecretBundle {
	return config.SecretBundle{
		Mnemonic:     "word word word",
		InfuraKey:    "infura123",
		EtherscanKey: "etherscan456",
		SnowtraceKey: "snowtrace789",
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func bufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

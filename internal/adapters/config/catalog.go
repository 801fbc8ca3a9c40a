package config

import (
	"context"

	netcfg "github.com/trebuchet-org/netcfg/internal/config"
	"github.com/trebuchet-org/netcfg/internal/domain/config"
	"github.com/trebuchet-org/netcfg/internal/usecase"
)

// ProjectCatalog serves the network catalog from the project file, falling
// back to the built-in catalog when the file is absent or lists no networks.
type ProjectCatalog struct {
	file *config.ProjectFile
}

// NewProjectCatalog creates a catalog for the runtime configuration
func NewProjectCatalog(cfg *config.RuntimeConfig) *ProjectCatalog {
	return &ProjectCatalog{file: cfg.ProjectFile}
}

// Networks returns a copy of the catalog
func (c *ProjectCatalog) Networks(ctx context.Context) []config.NetworkDescriptor {
	if c.file == nil || len(c.file.Networks) == 0 {
		return netcfg.DefaultCatalog()
	}
	networks := make([]config.NetworkDescriptor, len(c.file.Networks))
	copy(networks, c.file.Networks)
	return networks
}

// ScenarioBases returns the project's scenario bases when it defines any
func (c *ProjectCatalog) ScenarioBases(ctx context.Context) ([]config.ScenarioBase, bool) {
	if c.file == nil || len(c.file.Scenarios) == 0 {
		return nil, false
	}
	bases := make([]config.ScenarioBase, len(c.file.Scenarios))
	copy(bases, c.file.Scenarios)
	return bases, true
}

// Accounts returns the project's HD account overrides
func (c *ProjectCatalog) Accounts(ctx context.Context) *config.AccountsFile {
	if c.file == nil {
		return nil
	}
	return c.file.Accounts
}

// Ensure the catalog implements the interface
var _ usecase.NetworkCatalog = (*ProjectCatalog)(nil)

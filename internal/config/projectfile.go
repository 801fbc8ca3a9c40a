package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/samber/lo"
	"github.com/trebuchet-org/netcfg/internal/domain"
	"github.com/trebuchet-org/netcfg/internal/domain/config"
	"gopkg.in/yaml.v3"
)

// Project file names, in lookup order
const (
	ProjectFileTOML = "netcfg.toml"
	ProjectFileYAML = "netcfg.yaml"
)

// LoadProjectFile loads netcfg.toml, or netcfg.yaml when no TOML file exists.
// Returns (nil, nil) when neither file exists. ${VAR} references in network
// and scenario URLs are expanded from env; referencing an unset variable fails.
func LoadProjectFile(projectRoot string, env Lookuper) (*config.ProjectFile, error) {
	tomlPath := filepath.Join(projectRoot, ProjectFileTOML)
	yamlPath := filepath.Join(projectRoot, ProjectFileYAML)

	var (
		pf  config.ProjectFile
		err error
	)
	switch {
	case fileExists(tomlPath):
		pf.Path = tomlPath
		_, err = toml.DecodeFile(tomlPath, &pf)
	case fileExists(yamlPath):
		pf.Path = yamlPath
		err = decodeYAMLFile(yamlPath, &pf)
	default:
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(pf.Path), err)
	}

	file := filepath.Base(pf.Path)
	for i, n := range pf.Networks {
		if n.Name == "" {
			return nil, fmt.Errorf("%s: network #%d has no name", file, i+1)
		}
		url, err := expandURL(n.URL, env)
		if err != nil {
			return nil, fmt.Errorf("%s: network %q: %w", file, n.Name, err)
		}
		pf.Networks[i].URL = url
	}
	for i, s := range pf.Scenarios {
		url, err := expandURL(s.URL, env)
		if err != nil {
			return nil, fmt.Errorf("%s: scenario %q: %w", file, s.Name, err)
		}
		pf.Scenarios[i].URL = url
	}

	if pf.Accounts != nil && pf.Accounts.Path != "" {
		if err := ValidateDerivationPath(pf.Accounts.Path); err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
	}

	return &pf, nil
}

func decodeYAMLFile(path string, out *config.ProjectFile) error {
	data, err := os.ReadFile(path) //nolint:gosec // project file path
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, out)
}

// expandURL substitutes ${VAR} references from env. Unset or empty
// variables are reported instead of expanding to "".
func expandURL(value string, env Lookuper) (string, error) {
	var missing []string
	expanded := os.Expand(value, func(name string) string {
		v, ok := env.LookupEnv(name)
		if !ok || v == "" {
			missing = append(missing, name)
		}
		return v
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("%w: %s", domain.ErrUnsetURLVariable, strings.Join(lo.Uniq(missing), ", "))
	}
	return expanded, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

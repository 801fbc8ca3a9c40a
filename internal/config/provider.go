package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/trebuchet-org/netcfg/internal/domain/config"
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	// .env must be in the process environment before any env-backed key is read
	loadDotEnvOrWarn(projectRoot)

	output := config.OutputFormat(strings.ToLower(v.GetString("output")))
	if !output.IsValid() {
		return nil, fmt.Errorf("unknown output format %q (expected table, json or yaml)", output)
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:   projectRoot,
		ActiveNetwork: v.GetString("network"),
		ReportGas:     ParseReportGas(v.GetString("report_gas")),
		Debug:         v.GetBool("debug"),
		Output:        output,
		ShowSecrets:   v.GetBool("show_secrets"),
	}

	projectFile, err := LoadProjectFile(projectRoot, LookupFunc(os.LookupEnv))
	if err != nil {
		return nil, fmt.Errorf("failed to load project file: %w", err)
	}
	cfg.ProjectFile = projectFile

	return cfg, nil
}

// projectMarkers identify a project root; the first directory containing any of them wins
var projectMarkers = []string{ProjectFileTOML, ProjectFileYAML, ".env"}

// FindProjectRoot walks up from the current directory looking for a project
// marker and falls back to the current directory when none is found.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		for _, marker := range projectMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string) *viper.Viper {
	v := viper.New()

	// Tool knobs use the NETCFG_ prefix
	v.SetEnvPrefix("NETCFG")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// The build tool's own variables are read unprefixed
	_ = v.BindEnv("network", config.EnvActiveNetwork)
	_ = v.BindEnv("report_gas", config.EnvReportGas)

	v.SetDefault("project_root", projectRoot)
	v.SetDefault("output", string(config.OutputTable))
	v.SetDefault("report_gas", "false")
	v.SetDefault("debug", false)
	v.SetDefault("show_secrets", false)

	return v
}

package config

// RuntimeConfig represents the resolved tool settings.
// This is injected into use cases alongside the secret source.
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string

	// ActiveNetwork is the network targeted by the build tool; empty when unset
	ActiveNetwork string

	// Gas reporting toggle, parsed from REPORT_GAS ("true" only)
	ReportGas bool

	// Output settings
	Debug       bool
	Output      OutputFormat
	ShowSecrets bool

	// ProjectFile is the optional netcfg.toml / netcfg.yaml; nil when absent
	ProjectFile *ProjectFile
}

// OutputFormat selects how the CLI prints results
type OutputFormat string

const (
	OutputTable OutputFormat = "table"
	OutputJSON  OutputFormat = "json"
	OutputYAML  OutputFormat = "yaml"
)

// IsValid reports whether f is a known format
func (f OutputFormat) IsValid() bool {
	switch f {
	case OutputTable, OutputJSON, OutputYAML:
		return true
	}
	return false
}

package config

// ProjectFile represents the optional netcfg.toml / netcfg.yaml project file.
// Networks, when present, replace the built-in catalog; Scenarios replace the
// built-in scenario bases. A scenario without a url that names a catalog
// network takes that network's resolved URL.
type ProjectFile struct {
	Networks  []NetworkDescriptor `toml:"networks" yaml:"networks"`
	Scenarios []ScenarioBase      `toml:"scenarios" yaml:"scenarios"`
	Accounts  *AccountsFile       `toml:"accounts,omitempty" yaml:"accounts,omitempty"`

	// Path the file was loaded from
	Path string `toml:"-" yaml:"-"`
}

// AccountsFile overrides the HD derivation defaults
type AccountsFile struct {
	Path         string  `toml:"path,omitempty" yaml:"path,omitempty"`
	InitialIndex *uint32 `toml:"initial_index,omitempty" yaml:"initialIndex,omitempty"`
	Count        *uint32 `toml:"count,omitempty" yaml:"count,omitempty"`
}

package config

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

const gasAuto = "auto"

// GasSetting is either the literal "auto" or a fixed amount.
// The zero value is "auto"; the parsers reject a fixed amount of zero.
type GasSetting struct {
	value uint64
}

// AutoGas returns a setting that lets the node estimate the value
func AutoGas() GasSetting {
	return GasSetting{}
}

// FixedGas returns a setting pinned to v
func FixedGas(v uint64) GasSetting {
	return GasSetting{value: v}
}

// IsAuto reports whether the setting is "auto"
func (g GasSetting) IsAuto() bool {
	return g.value == 0
}

// Value returns the fixed amount and false when the setting is "auto"
func (g GasSetting) Value() (uint64, bool) {
	return g.value, g.value != 0
}

func (g GasSetting) String() string {
	if g.IsAuto() {
		return gasAuto
	}
	return strconv.FormatUint(g.value, 10)
}

// ParseGasSetting parses "auto" or a base-10 amount
func ParseGasSetting(s string) (GasSetting, error) {
	if s == gasAuto {
		return AutoGas(), nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil || v == 0 {
		return GasSetting{}, fmt.Errorf("invalid gas setting %q: must be %q or a positive integer", s, gasAuto)
	}
	return FixedGas(v), nil
}

func (g GasSetting) MarshalJSON() ([]byte, error) {
	if g.IsAuto() {
		return json.Marshal(gasAuto)
	}
	return json.Marshal(g.value)
}

func (g *GasSetting) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := ParseGasSetting(s)
		if err != nil {
			return err
		}
		*g = parsed
		return nil
	}

	var v uint64
	if err := json.Unmarshal(data, &v); err != nil || v == 0 {
		return fmt.Errorf("invalid gas setting %s: must be %q or a positive integer", string(data), gasAuto)
	}
	*g = FixedGas(v)
	return nil
}

func (g GasSetting) MarshalYAML() (any, error) {
	if g.IsAuto() {
		return gasAuto, nil
	}
	return g.value, nil
}

func (g *GasSetting) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("invalid gas setting at line %d: expected a scalar", node.Line)
	}
	parsed, err := ParseGasSetting(node.Value)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// UnmarshalTOML implements toml.Unmarshaler
func (g *GasSetting) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case string:
		parsed, err := ParseGasSetting(v)
		if err != nil {
			return err
		}
		*g = parsed
	case int64:
		if v <= 0 {
			return fmt.Errorf("invalid gas setting %d: must be %q or a positive integer", v, gasAuto)
		}
		*g = FixedGas(uint64(v))
	default:
		return fmt.Errorf("invalid gas setting %v: must be %q or a positive integer", data, gasAuto)
	}
	return nil
}

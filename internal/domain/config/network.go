package config

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// NetworkDescriptor is one entry of the network catalog.
// An empty URL and nil gas fields mean "not set".
type NetworkDescriptor struct {
	Name     string      `json:"name" toml:"name" yaml:"name"`
	ChainID  uint64      `json:"chainId" toml:"chain_id" yaml:"chainId"`
	URL      string      `json:"url,omitempty" toml:"url,omitempty" yaml:"url,omitempty"`
	Gas      *GasSetting `json:"gas,omitempty" toml:"gas,omitempty" yaml:"gas,omitempty"`
	GasPrice *GasSetting `json:"gasPrice,omitempty" toml:"gas_price,omitempty" yaml:"gasPrice,omitempty"`
}

// HDAccounts configures mnemonic-derived signing accounts
type HDAccounts struct {
	Mnemonic     string `json:"mnemonic" yaml:"mnemonic" mask:"fixed"`
	Path         string `json:"path" yaml:"path"`
	InitialIndex uint32 `json:"initialIndex" yaml:"initialIndex"`
	Count        uint32 `json:"count" yaml:"count"`
}

// ResolvedNetwork holds the ready-to-use connection and signing settings for one chain
type ResolvedNetwork struct {
	ChainID  uint64     `json:"chainId" yaml:"chainId"`
	URL      string     `json:"url" yaml:"url"`
	Gas      GasSetting `json:"gas" yaml:"gas"`
	GasPrice GasSetting `json:"gasPrice" yaml:"gasPrice"`
	Accounts HDAccounts `json:"accounts" yaml:"accounts"`
}

// NamedNetwork pairs a resolved network with its catalog name
type NamedNetwork struct {
	Name    string
	Network ResolvedNetwork
}

// NetworkMap is a read-only mapping from network name to its resolved settings.
// Iteration follows the order in which names were first seen.
type NetworkMap struct {
	names   []string
	entries map[string]ResolvedNetwork
}

// NewNetworkMap builds a map from items. A repeated name keeps its first
// position and takes the value of its last occurrence.
func NewNetworkMap(items []NamedNetwork) *NetworkMap {
	m := &NetworkMap{
		names:   make([]string, 0, len(items)),
		entries: make(map[string]ResolvedNetwork, len(items)),
	}
	for _, item := range items {
		if _, exists := m.entries[item.Name]; !exists {
			m.names = append(m.names, item.Name)
		}
		m.entries[item.Name] = item.Network
	}
	return m
}

// Len returns the number of distinct networks
func (m *NetworkMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.names)
}

// Get returns the resolved settings for name
func (m *NetworkMap) Get(name string) (ResolvedNetwork, bool) {
	if m == nil {
		return ResolvedNetwork{}, false
	}
	n, ok := m.entries[name]
	return n, ok
}

// Names returns the network names in iteration order
func (m *NetworkMap) Names() []string {
	if m == nil {
		return nil
	}
	names := make([]string, len(m.names))
	copy(names, m.names)
	return names
}

// All returns every entry in iteration order
func (m *NetworkMap) All() []NamedNetwork {
	if m == nil {
		return nil
	}
	items := make([]NamedNetwork, 0, len(m.names))
	for _, name := range m.names {
		items = append(items, NamedNetwork{Name: name, Network: m.entries[name]})
	}
	return items
}

// Map returns a new NetworkMap with fn applied to every entry
func (m *NetworkMap) Map(fn func(name string, n ResolvedNetwork) ResolvedNetwork) *NetworkMap {
	items := m.All()
	for i := range items {
		items[i].Network = fn(items[i].Name, items[i].Network)
	}
	return NewNetworkMap(items)
}

// MarshalJSON writes the entries as a JSON object in iteration order
func (m *NetworkMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, item := range m.All() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(item.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(item.Network)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML writes the entries as a YAML mapping in iteration order
func (m *NetworkMap) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, item := range m.All() {
		var value yaml.Node
		if err := value.Encode(item.Network); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: item.Name},
			&value,
		)
	}
	return node, nil
}

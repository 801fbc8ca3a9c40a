package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	netcfg "github.com/trebuchet-org/netcfg/internal/config"
	"github.com/trebuchet-org/netcfg/internal/domain/config"
	"github.com/trebuchet-org/netcfg/internal/usecase"
)

// ConfigRenderer renders the assembled configuration
type ConfigRenderer struct {
	out         io.Writer
	format      config.OutputFormat
	showSecrets bool
	color       bool
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer, format config.OutputFormat, showSecrets, color bool) *ConfigRenderer {
	return &ConfigRenderer{
		out:         out,
		format:      format,
		showSecrets: showSecrets,
		color:       color,
	}
}

// Render renders the configuration
func (r *ConfigRenderer) Render(result *usecase.ResolveConfigResult) error {
	cfg := result.Config
	if !r.showSecrets {
		cfg = netcfg.RedactConfig(cfg, result.Secrets)
	}

	if r.format != config.OutputTable {
		return encode(r.out, r.format, cfg)
	}

	fmt.Fprintln(r.out, paint(sectionHeaderStyle, r.color, "📋 Resolved configuration"))
	fmt.Fprintln(r.out)

	r.field("Solidity", fmt.Sprintf("%s (optimizer: %s, %d runs)",
		cfg.Solidity.Version, onOff(cfg.Solidity.Optimizer.Enabled), cfg.Solidity.Optimizer.Runs))
	r.field("Explorer", r.explorerLine(result.Explorer, cfg.Etherscan.APIKey))
	r.field("Gas reporter", fmt.Sprintf("%s (%s, %d gwei)",
		onOff(cfg.GasReporter.Enabled), cfg.GasReporter.Currency, cfg.GasReporter.GasPriceGwei))
	r.field("Typechain", fmt.Sprintf("%s (%s)", cfg.Typechain.OutDir, cfg.Typechain.Target))
	r.field("Local network", fmt.Sprintf("%s (chain %d, gas %s, block gas limit %d)",
		cfg.LocalNetwork.Name, cfg.LocalNetwork.ChainID, cfg.LocalNetwork.Gas, cfg.LocalNetwork.BlockGasLimit))
	fmt.Fprintln(r.out)

	fmt.Fprintln(r.out, paint(sectionHeaderStyle, r.color, "🌐 Networks:"))
	t := newTable()
	t.AppendHeader(table.Row{"NAME", "CHAIN ID", "URL", "GAS", "GAS PRICE"})
	for _, item := range cfg.Networks.All() {
		name := item.Name
		if name == result.Explorer.ActiveNetwork {
			name = paint(activeStyle, r.color, name+" *")
		}
		t.AppendRow(table.Row{name, item.Network.ChainID, item.Network.URL, item.Network.Gas.String(), item.Network.GasPrice.String()})
	}
	fmt.Fprintln(r.out, t.Render())
	fmt.Fprintln(r.out)

	fmt.Fprintln(r.out, paint(sectionHeaderStyle, r.color, "🎬 Scenario bases:"))
	for _, base := range cfg.Scenario.Bases {
		if base.URL == "" {
			fmt.Fprintf(r.out, "  - %s\n", base.Name)
		} else {
			fmt.Fprintf(r.out, "  - %s %s\n", base.Name, paint(labelStyle, r.color, base.URL))
		}
	}

	for _, name := range result.Duplicates {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("Network '%s' is defined more than once; the last definition is used", name), r.color))
	}

	return nil
}

func (r *ConfigRenderer) field(label, value string) {
	fmt.Fprintf(r.out, "%s %s\n", paint(labelStyle, r.color, fmt.Sprintf("%-14s", label+":")), value)
}

func (r *ConfigRenderer) explorerLine(sel usecase.ExplorerSelection, apiKey string) string {
	line := fmt.Sprintf("%s (key %s)", familyTitle(sel.Family), apiKey)
	if !sel.Listed {
		line += " " + paint(warningStyle, r.color, "[default]")
	}
	return line
}

func onOff(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}

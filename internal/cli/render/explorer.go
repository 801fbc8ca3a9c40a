package render

import (
	"fmt"
	"io"

	netcfg "github.com/trebuchet-org/netcfg/internal/config"
	"github.com/trebuchet-org/netcfg/internal/domain/config"
	"github.com/trebuchet-org/netcfg/internal/usecase"
)

// ExplorerRenderer renders the explorer key selection
type ExplorerRenderer struct {
	out         io.Writer
	format      config.OutputFormat
	showSecrets bool
	color       bool
}

// NewExplorerRenderer creates a new explorer renderer
func NewExplorerRenderer(out io.Writer, format config.OutputFormat, showSecrets, color bool) *ExplorerRenderer {
	return &ExplorerRenderer{
		out:         out,
		format:      format,
		showSecrets: showSecrets,
		color:       color,
	}
}

type explorerView struct {
	Network    string                `json:"network" yaml:"network"`
	Explorer   config.ExplorerFamily `json:"explorer" yaml:"explorer"`
	Default    bool                  `json:"default" yaml:"default"`
	APIKey     string                `json:"apiKey" yaml:"apiKey"`
	Suggestion string                `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// Render renders the selection
func (r *ExplorerRenderer) Render(result *usecase.ShowExplorerResult) error {
	apiKey := result.APIKey
	if !r.showSecrets {
		apiKey = netcfg.RedactString(apiKey, result.Secrets)
	}

	sel := result.Selection
	if r.format != config.OutputTable {
		return encode(r.out, r.format, explorerView{
			Network:    sel.ActiveNetwork,
			Explorer:   sel.Family,
			Default:    !sel.Listed,
			APIKey:     apiKey,
			Suggestion: sel.Suggestion,
		})
	}

	network := sel.ActiveNetwork
	if network == "" {
		network = "(not set)"
	}

	fmt.Fprintf(r.out, "Network:  %s\n", network)
	fmt.Fprintf(r.out, "Explorer: %s\n", familyTitle(sel.Family))
	fmt.Fprintf(r.out, "API key:  %s\n", apiKey)

	if !sel.Listed && sel.ActiveNetwork != "" {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("No explorer mapping for '%s', using the %s key", sel.ActiveNetwork, familyTitle(sel.Family)), r.color))
		if sel.Suggestion != "" {
			fmt.Fprintf(r.out, "   Did you mean '%s'?\n", sel.Suggestion)
		}
	}

	return nil
}

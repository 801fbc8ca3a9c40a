package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	netcfg "github.com/trebuchet-org/netcfg/internal/config"
	"github.com/trebuchet-org/netcfg/internal/domain/config"
	"github.com/trebuchet-org/netcfg/internal/usecase"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out         io.Writer
	format      config.OutputFormat
	showSecrets bool
	color       bool
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer, format config.OutputFormat, showSecrets, color bool) *NetworksRenderer {
	return &NetworksRenderer{
		out:         out,
		format:      format,
		showSecrets: showSecrets,
		color:       color,
	}
}

type networkView struct {
	Name       string            `json:"name" yaml:"name"`
	ChainID    uint64            `json:"chainId" yaml:"chainId"`
	URL        string            `json:"url" yaml:"url"`
	DefaultURL bool              `json:"defaultUrl" yaml:"defaultUrl"`
	Gas        config.GasSetting `json:"gas" yaml:"gas"`
	GasPrice   config.GasSetting `json:"gasPrice" yaml:"gasPrice"`
	Active     bool              `json:"active" yaml:"active"`
}

// Render renders the resolved networks
func (r *NetworksRenderer) Render(result *usecase.ListNetworksResult) error {
	views := make([]networkView, 0, len(result.Networks))
	for _, n := range result.Networks {
		url := n.URL
		if !r.showSecrets {
			url = netcfg.RedactString(url, result.Secrets)
		}
		views = append(views, networkView{
			Name:       n.Name,
			ChainID:    n.ChainID,
			URL:        url,
			DefaultURL: n.DefaultURL,
			Gas:        n.Gas,
			GasPrice:   n.GasPrice,
			Active:     n.Active,
		})
	}

	if r.format != config.OutputTable {
		return encode(r.out, r.format, views)
	}

	if len(views) == 0 {
		fmt.Fprintln(r.out, "No networks configured")
		return nil
	}

	fmt.Fprintln(r.out, paint(sectionHeaderStyle, r.color, "🌐 Available Networks:"))
	fmt.Fprintln(r.out)

	t := newTable()
	t.AppendHeader(table.Row{"NAME", "CHAIN ID", "URL", "GAS", "GAS PRICE"})
	for _, v := range views {
		name := v.Name
		if v.Active {
			name = paint(activeStyle, r.color, name+" *")
		}
		url := v.URL
		if v.DefaultURL {
			url = paint(defaultURLStyle, r.color, url)
		}
		t.AppendRow(table.Row{name, v.ChainID, url, v.Gas.String(), v.GasPrice.String()})
	}
	fmt.Fprintln(r.out, t.Render())

	return nil
}

package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/netcfg/internal/cli/render"
	"github.com/trebuchet-org/netcfg/internal/usecase"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List the resolved networks",
		Long: `List every network of the catalog with its resolved RPC endpoint and gas settings.

Networks without an explicit URL use the default Infura endpoint.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ListNetworksParams{ActiveNetwork: app.Config.ActiveNetwork}
			result, err := app.ListNetworks.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			renderer := render.NewNetworksRenderer(cmd.OutOrStdout(), app.Config.Output, app.Config.ShowSecrets, !color.NoColor)
			return renderer.Render(result)
		},
	}

	return cmd
}

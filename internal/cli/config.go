package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/netcfg/internal/cli/render"
	"github.com/trebuchet-org/netcfg/internal/usecase"
)

// NewConfigCmd creates the config command
func NewConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration",
		Long: `Resolve every network in the catalog, select the explorer key for the
active network and print the assembled configuration.

Credentials are masked unless --show-secrets is given.

Examples:
  netcfg config
  netcfg config --network fuji -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ResolveConfigParams{
				ActiveNetwork: app.Config.ActiveNetwork,
				ReportGas:     app.Config.ReportGas,
			}
			result, err := app.ResolveConfig.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			renderer := render.NewConfigRenderer(cmd.OutOrStdout(), app.Config.Output, app.Config.ShowSecrets, !color.NoColor)
			return renderer.Render(result)
		},
	}
}

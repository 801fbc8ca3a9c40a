package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/netcfg/internal/cli/render"
	"github.com/trebuchet-org/netcfg/internal/usecase"
)

// NewExplorerCmd creates the explorer command
func NewExplorerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explorer",
		Short: "Show the block-explorer key used for the active network",
		Long: `Show which block-explorer API key is used to verify contracts on the active network.

Networks that have no explorer mapping use the Etherscan key.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ShowExplorerParams{ActiveNetwork: app.Config.ActiveNetwork}
			result, err := app.ShowExplorer.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			renderer := render.NewExplorerRenderer(cmd.OutOrStdout(), app.Config.Output, app.Config.ShowSecrets, !color.NoColor)
			return renderer.Render(result)
		},
	}
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/netcfg/internal/app"
	"github.com/trebuchet-org/netcfg/internal/config"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "netcfg",
		Short: "Resolve network, credential and tool settings for contract builds",
		Long: `netcfg resolves the network catalog, the credentials in the environment
and the static tool settings into the configuration used to build, test
and deploy smart contracts.

Required environment: ETHERSCAN_KEY, SNOWTRACE_KEY, INFURA_KEY.
Optional: MNEMONIC, COINMARKETCAP_API_KEY, REPORT_GAS, NETWORK.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			v := config.SetupViper(projectRoot)
			bindGlobalFlags(v, cmd)

			appInstance, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			cmd.SetContext(context.WithValue(cmd.Context(), appKey, appInstance))
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("network", "n", "", "Active network (defaults to $NETWORK)")
	rootCmd.PersistentFlags().String("project-root", "", "Project directory holding .env and netcfg.toml")
	rootCmd.PersistentFlags().StringP("output", "o", "table", "Output format: table, json or yaml")
	rootCmd.PersistentFlags().Bool("report-gas", false, "Enable the gas reporter (defaults to $REPORT_GAS)")
	rootCmd.PersistentFlags().Bool("show-secrets", false, "Print credentials instead of masking them")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")

	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewNetworksCmd())
	rootCmd.AddCommand(NewExplorerCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// globalFlags maps flag names to viper keys
var globalFlags = map[string]string{
	"network":      "network",
	"project-root": "project_root",
	"output":       "output",
	"report-gas":   "report_gas",
	"show-secrets": "show_secrets",
	"debug":        "debug",
}

// bindGlobalFlags binds command flags to viper
func bindGlobalFlags(v *viper.Viper, cmd *cobra.Command) {
	// Only bind flags that exist and have been changed
	for flag, key := range globalFlags {
		if f := cmd.Flag(flag); f != nil && f.Changed {
			v.Set(key, f.Value.String())
		}
	}
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}

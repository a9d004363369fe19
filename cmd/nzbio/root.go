package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amaumene/nzbio/internal/constants"
)

type serveFlags struct {
	configPath string
	port       string
}

func newRootCommand() *cobra.Command {
	flags := &serveFlags{}

	rootCmd := &cobra.Command{
		Use:           "nzbio",
		Short:         "Stremio addon streaming NZB releases found through NZBHydra",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), flags)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Configuration file path (default $CONFIG_FILE or config.json)")
	rootCmd.PersistentFlags().StringVarP(&flags.port, "port", "p", "", "Listen port, overrides PORT")

	rootCmd.AddCommand(newServeCommand(flags))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func newServeCommand(flags *serveFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the addon HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), flags)
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the addon version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", constants.AddonName, constants.AddonVersion, constants.AddonID)
		},
	}
}

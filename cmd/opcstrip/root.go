package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose    bool
	configPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "opcstrip",
		Short:         "opcstrip plays lighting patterns on addressable LED strips",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML config file")

	cmd.AddCommand(newRunCmd(flags))
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

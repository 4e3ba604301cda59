package main

import (
	"github.com/spf13/cobra"

	"github.com/charlieallen/portfolio/pkg/config"
)

var envFiles []string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "portfolio",
		Short:         "Portfolio site and contact form relay",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if len(envFiles) == 0 {
				return nil
			}
			return config.LoadEnv(envFiles...)
		},
	}
	root.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "Load environment variables from these files")

	root.AddCommand(newServeCmd(), newLambdaCmd(), newExportCmd())
	return root
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/build"
)

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "moviesearch %s (built %s, %s)\n", build.Version, build.Time, build.GoVersion)
		},
	}
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"bwgraph/internal/version"
)

var versionCommand = &cobra.Command{
	Use:   "version",
	Short: "Print version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "bwgraph %s (%s)\n", version.VERSION, version.COMMIT)
	},
}

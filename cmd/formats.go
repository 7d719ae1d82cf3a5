package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// formatsCmd lists the supported output formats.
var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the supported output formats",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), formatList())
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}

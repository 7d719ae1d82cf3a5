package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xll-gen/chex/internal/bundle"
)

// bundleCmd represents the bundle command.
var bundleCmd = &cobra.Command{
	Use:   "bundle",
	Short: "Render every entry listed in chex.yaml",
	Long: `Reads the bundle section of the configuration file and writes one output file per
entry. When bundle.header is set, a C header with the extern declarations of all
c-source entries is written as well.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		res, err := runBundle()
		if err != nil {
			fail(err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d file(s).\n", len(res.Outputs))
	},
}

func init() {
	rootCmd.AddCommand(bundleCmd)
}

// runBundle renders the bundle described by the loaded configuration.
func runBundle() (*bundle.Result, error) {
	if len(cfg.Bundle.Entries) == 0 {
		return nil, fmt.Errorf("no bundle entries in %s", cfgFile)
	}
	return bundle.Run(cfg)
}

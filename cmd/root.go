package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xll-gen/chex/internal/chex"
	"github.com/xll-gen/chex/internal/config"
	"github.com/xll-gen/chex/pkg/log"
)

var (
	// cfgFile is the path of the configuration file (--config).
	cfgFile string
	// logLevel and logFile override the logging section of the configuration.
	logLevel string
	logFile  string

	// cfg is loaded before any command runs.
	cfg *config.Config
)

// rootCmd represents the base command. Called with a format and a file it dumps the file.
var rootCmd = &cobra.Command{
	Use:   "chex [flags] <format> <infile>",
	Short: "Convert a binary file to a hex array literal",
	Long: `chex reads a binary file and prints it as a hex literal ready to embed in C or Zig
source, or as a plain hex string.`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig()
	},
	Run: func(cmd *cobra.Command, args []string) {
		if err := runDump(cmd.OutOrStdout(), cmd, dumpFlags, args[0], args[1]); err != nil {
			fail(err)
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		log.Close()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "Configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file (default stderr)")

	addDumpFlags(rootCmd)
	rootCmd.Long += "\n\nFormats:\n" + formatList()
}

// loadConfig reads the configuration file, applies defaults, validates it and
// initializes logging.
func loadConfig() error {
	c, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFile != "" {
		c.Logging.Path = logFile
	}

	config.ApplyDefaults(c)
	if err := config.Validate(c); err != nil {
		return err
	}

	if err := log.Init(c.Logging.Path, c.Logging.Level); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log.Debug("configuration loaded", "path", cfgFile, "word_size", c.Defaults.WordSize, "entries", len(c.Bundle.Entries))

	cfg = c
	return nil
}

func formatList() string {
	var b strings.Builder
	for _, f := range chex.Formats() {
		fmt.Fprintf(&b, "  %-10s %s\n", f.Name, f.Description)
	}
	return b.String()
}

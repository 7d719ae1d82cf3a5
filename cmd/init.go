package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xll-gen/chex/internal/chex"
	"github.com/xll-gen/chex/internal/templates"
)

var (
	initWordSize int
	initFormat   string
)

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a starter chex.yaml",
	Args:  cobra.MaximumNArgs(1),
	// The file may not exist yet, so the configuration is not loaded.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		path := cfgFile
		if len(args) == 1 {
			path = args[0]
		}
		if err := runInit(path, initWordSize, initFormat); err != nil {
			fail(fmt.Errorf("initializing configuration: %w", err))
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", path)
	},
}

func init() {
	initCmd.Flags().IntVarP(&initWordSize, "wordsize", "w", 1, "Default word size in bytes")
	initCmd.Flags().StringVar(&initFormat, "format", "c-source", "Default format for bundle entries")
	rootCmd.AddCommand(initCmd)
}

// runInit writes a configuration file with the given defaults.
//
// Parameters:
//   - path: The file to create. It must not exist.
//   - wordSize: The default word size written to the file.
//   - format: The default format written to the file.
//
// Returns:
//   - error: An error if the file exists, the defaults are invalid or writing fails.
func runInit(path string, wordSize int, format string) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return fmt.Errorf("%s already exists", path)
	}

	if _, err := chex.NewWordSize(wordSize); err != nil {
		return err
	}
	if _, err := chex.ParseFormat(format); err != nil {
		return err
	}

	data := struct {
		WordSize int
		Format   string
		Formats  []chex.FormatInfo
	}{wordSize, format, chex.Formats()}

	var buf bytes.Buffer
	if err := templates.Execute(&buf, "chex.yaml.tmpl", data, nil); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xll-gen/chex/internal/bundle"
	"github.com/xll-gen/chex/internal/chex"
	"github.com/xll-gen/chex/internal/ident"
	"github.com/xll-gen/chex/pkg/log"
)

// dumpOptions holds the flags of the root dump command.
type dumpOptions struct {
	wordSize int
	caps     bool
	name     string
	prefix   string
	output   string
	options  []string
}

var dumpFlags dumpOptions

func addDumpFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVarP(&dumpFlags.wordSize, "wordsize", "w", 1, "Word size in bytes. Supported sizes: 1, 2, 4, 8")
	f.BoolVar(&dumpFlags.caps, "caps", false, "Capitalize variable names")
	f.StringVar(&dumpFlags.name, "name", "", "Base name for variables (default: the input path)")
	f.StringVar(&dumpFlags.prefix, "prefix", "", "Prefix variable names with string")
	f.StringVarP(&dumpFlags.output, "output", "o", "", "Write to file instead of stdout")
	f.StringArrayVar(&dumpFlags.options, "option", nil, "Request option as key=value (repeatable)")
}

// runDump renders a single input file.
// Flags that were not set on the command line fall back to the configuration defaults.
//
// Parameters:
//   - w: The writer receiving the output when no --output is given.
//   - cmd: The command whose flags were parsed, or nil to take opts as given.
//   - opts: The parsed flag values.
//   - formatName: One of the names listed by `chex formats`.
//   - input: The input path, or "-" for stdin.
//
// Returns:
//   - error: An error if the arguments are invalid or reading/writing fails.
func runDump(w io.Writer, cmd *cobra.Command, opts dumpOptions, formatName, input string) error {
	if cmd != nil && cfg != nil {
		flags := cmd.Flags()
		if !flags.Changed("wordsize") {
			opts.wordSize = cfg.Defaults.WordSize
		}
		if !flags.Changed("caps") {
			opts.caps = cfg.Defaults.Caps
		}
		if !flags.Changed("prefix") {
			opts.prefix = cfg.Defaults.Prefix
		}
	}

	ws, err := chex.NewWordSize(opts.wordSize)
	if err != nil {
		return err
	}

	format, err := chex.ParseFormat(formatName)
	if err != nil {
		return err
	}

	reqOpts, err := parseOptions(opts.options)
	if err != nil {
		return err
	}

	name := opts.name
	if name == "" {
		name = input
		if input == "-" {
			name = "stdin"
		}
	}

	req := &chex.Request{
		Basename: ident.Basename(name, opts.prefix, opts.caps),
		Options:  reqOpts,
		WordSize: ws,
	}

	in, err := bundle.ReadInput(input, format)
	if err != nil {
		return err
	}
	log.Debug("dumping", "input", input, "format", format, "word_size", int(ws), "basename", req.Basename, "size", in.Size)

	if opts.output == "" {
		return chex.Dump(w, req, in, format)
	}

	var buf bytes.Buffer
	if err := chex.Dump(&buf, req, in, format); err != nil {
		return err
	}
	if dir := filepath.Dir(opts.output); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(opts.output, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.output, err)
	}
	log.Info("wrote output", "path", opts.output, "bytes", buf.Len())
	return nil
}

// parseOptions turns key=value pairs into request options, keeping their order.
func parseOptions(pairs []string) ([]chex.Option, error) {
	var out []chex.Option
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid option %q (expected key=value)", p)
		}
		out = append(out, chex.Option{Key: k, Value: v})
	}
	return out, nil
}

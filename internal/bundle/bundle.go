package bundle

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/xll-gen/chex/internal/chex"
	"github.com/xll-gen/chex/internal/config"
	"github.com/xll-gen/chex/internal/ident"
	"github.com/xll-gen/chex/internal/templates"
	"github.com/xll-gen/chex/internal/ui"
	"github.com/xll-gen/chex/pkg/log"
)

// Result lists the files written by Run.
type Result struct {
	Outputs []string
	Header  string
}

// Run renders every entry of cfg.Bundle to its output file and, when a header is
// configured, writes the combined extern declarations of all c-source entries.
// Defaults must already be applied to cfg.
//
// Parameters:
//   - cfg: The validated configuration.
//
// Returns:
//   - *Result: The files that were written.
//   - error: The first error encountered. Files written before it are left in place.
func Run(cfg *config.Config) (*Result, error) {
	res := &Result{}
	seen := make(map[string]string)
	var decls []string

	ui.PrintHeader(fmt.Sprintf("Bundling %d file(s)", len(cfg.Bundle.Entries)))

	for _, raw := range cfg.Bundle.Entries {
		e := raw.Resolve(cfg.Defaults)

		f, err := chex.ParseFormat(e.Format)
		if err != nil {
			return res, fmt.Errorf("%s: %w", e.Input, err)
		}
		ws, err := chex.NewWordSize(e.WordSize)
		if err != nil {
			return res, fmt.Errorf("%s: %w", e.Input, err)
		}

		req := &chex.Request{
			Basename: ident.Basename(e.Name, e.Prefix, *e.Caps),
			Options:  e.Options,
			WordSize: ws,
		}
		if prev, ok := seen[req.Basename]; ok {
			return res, fmt.Errorf("%s: identifier %s already used by %s", e.Input, req.Basename, prev)
		}
		seen[req.Basename] = e.Input

		in, err := ReadInput(e.Input, f)
		if err != nil {
			ui.PrintError(e.Input, err.Error())
			return res, err
		}

		var buf bytes.Buffer
		if err := chex.Dump(&buf, req, in, f); err != nil {
			ui.PrintError(e.Input, err.Error())
			return res, fmt.Errorf("%s: %w", e.Input, err)
		}
		if err := writeFile(e.Output, buf.Bytes()); err != nil {
			ui.PrintError(e.Input, err.Error())
			return res, err
		}
		res.Outputs = append(res.Outputs, e.Output)
		log.Info("rendered", "input", e.Input, "output", e.Output, "format", f, "word_size", int(ws), "size", in.Size)
		ui.PrintSuccess(e.Input, e.Output)

		if cfg.Bundle.Header != "" && f == chex.FormatCSource {
			decl, err := chex.DumpString(req, chex.SizeOnly(in.Size), chex.FormatCExtern)
			if err != nil {
				return res, err
			}
			decls = append(decls, decl)
		}
	}

	if cfg.Bundle.Header == "" {
		return res, nil
	}
	if len(decls) == 0 {
		ui.PrintWarning(cfg.Bundle.Header, "no c-source entries")
	}

	guard := cfg.Bundle.Guard
	if guard == "" {
		guard = HeaderGuard(cfg.Bundle.Header)
	}

	var buf bytes.Buffer
	data := struct {
		Guard        string
		Declarations []string
	}{guard, decls}
	if err := templates.Execute(&buf, "bundle_header.h.tmpl", data, nil); err != nil {
		return res, err
	}
	if err := writeFile(cfg.Bundle.Header, buf.Bytes()); err != nil {
		return res, err
	}
	res.Header = cfg.Bundle.Header
	log.Info("wrote header", "path", cfg.Bundle.Header, "guard", guard, "declarations", len(decls))
	ui.PrintSuccess("header", cfg.Bundle.Header)

	return res, nil
}

// HeaderGuard derives a stable include guard from a header path.
func HeaderGuard(path string) string {
	id := uuid.NewSHA1(uuid.NameSpaceURL, []byte(filepath.ToSlash(filepath.Clean(path))))
	return "CHEX_" + strings.ToUpper(strings.ReplaceAll(id.String(), "-", "_")) + "_H"
}

// ReadInput loads the bytes f needs from path. "-" reads stdin.
// Formats that only need the size are served by a stat when possible.
func ReadInput(path string, f chex.Format) (chex.Input, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return chex.Input{}, fmt.Errorf("failed to read stdin: %w", err)
		}
		return chex.Bytes(data), nil
	}

	st, err := os.Stat(path)
	if err != nil {
		return chex.Input{}, fmt.Errorf("could not stat input file: %w", err)
	}
	if st.IsDir() {
		return chex.Input{}, fmt.Errorf("'%s' is not a file", path)
	}

	if !f.NeedsData() {
		return chex.SizeOnly(int(st.Size())), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return chex.Input{}, fmt.Errorf("failed to open input file for reading: %w", err)
	}
	return chex.Bytes(data), nil
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

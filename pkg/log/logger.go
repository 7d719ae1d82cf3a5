package log

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	mu      sync.Mutex
	closer  io.Closer
	current = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
)

// Init initializes the global logger.
// It configures the default slog logger to write to the specified path (or stderr)
// at the specified level. Stdout is never used because it carries the rendered output.
//
// path: Log file path. If empty, logs to stderr.
// level: Log level ("debug", "info", "warn", "error"). Defaults to "info".
func Init(path string, level string) error {
	mu.Lock()
	defer mu.Unlock()

	var w io.Writer = os.Stderr
	var c io.Closer
	if path != "" {
		dir := filepath.Dir(path)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
		}

		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		w = f
		c = f
	}

	if closer != nil {
		closer.Close()
	}
	closer = c

	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
	}

	current = slog.New(slog.NewTextHandler(w, opts))
	slog.SetDefault(current)
	return nil
}

// Close releases the log file opened by Init, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if closer == nil {
		return nil
	}
	err := closer.Close()
	closer = nil
	return err
}

// Default returns the logger installed by the last Init call.
func Default() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return current
}

// ParseLevel maps a level name to its slog.Level. Unknown names map to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func Debug(msg string, args ...any) { Default().Debug(msg, args...) }

func Info(msg string, args ...any) { Default().Info(msg, args...) }

func Warn(msg string, args ...any) { Default().Warn(msg, args...) }

func Error(msg string, args ...any) { Default().Error(msg, args...) }

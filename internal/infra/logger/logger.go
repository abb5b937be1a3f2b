// Package logger owns the process-wide slog logger. Records go to a JSON
// file under the working directory; until Setup succeeds they are discarded.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Log location relative to Config.Root.
const (
	LogDir  = ".mathsheets/logs"
	LogFile = "mathsheets.log"
)

type Config struct {
	Root  string
	Debug bool
	// Attrs are attached to every record (e.g. version).
	Attrs []any
}

type state struct {
	logger   *slog.Logger
	file     *os.File
	path     string
	initedAt time.Time
}

var (
	mu  sync.RWMutex
	cur = discard()
)

func Setup(cfg Config) (func() error, error) {
	root := cfg.Root
	if root == "" {
		root = "."
	}
	dir := filepath.Join(filepath.Clean(root), LogDir)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		swap(discard())
		return nil, err
	}

	path := filepath.Join(dir, LogFile)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		swap(discard())
		return nil, err
	}

	l := slog.New(newHandler(f, cfg.Debug))
	if len(cfg.Attrs) > 0 {
		l = l.With(cfg.Attrs...)
	}

	swap(state{logger: l, file: f, path: path, initedAt: time.Now().UTC()})
	l.Info("logger.initialized", "path", path, "debug", cfg.Debug)

	cleanup := func() error {
		old := swap(discard())
		if old.file != nil {
			return old.file.Close()
		}
		return nil
	}
	return cleanup, nil
}

// newHandler writes JSON with UTC RFC3339Nano timestamps.
func newHandler(w io.Writer, debug bool) slog.Handler {
	opts := &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: debug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	}
	if debug {
		opts.Level = slog.LevelDebug
	}
	return slog.NewJSONHandler(w, opts)
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return cur.logger
}

func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return cur.path
}

func InitTime() time.Time {
	mu.RLock()
	defer mu.RUnlock()
	return cur.initedAt
}

func IsReady() error {
	mu.RLock()
	defer mu.RUnlock()
	if cur.file == nil || cur.path == "" {
		return errors.New("logger not initialized")
	}
	return nil
}

func discard() state {
	return state{logger: slog.New(slog.NewJSONHandler(io.Discard, nil))}
}

func swap(next state) state {
	mu.Lock()
	defer mu.Unlock()
	old := cur
	cur = next
	return old
}

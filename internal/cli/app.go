package cli

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/mathsheets/internal/buildinfo"
	"github.com/aalvaropc/mathsheets/internal/domain"
	"github.com/aalvaropc/mathsheets/internal/infra/config"
	"github.com/aalvaropc/mathsheets/internal/infra/htmlfile"
	"github.com/aalvaropc/mathsheets/internal/infra/keystore"
	"github.com/aalvaropc/mathsheets/internal/infra/logger"
	"github.com/aalvaropc/mathsheets/internal/render/sheet"
	"github.com/aalvaropc/mathsheets/internal/usecase"
)

type app struct {
	root   string
	cfg    domain.Config
	sheets *usecase.GenerateSheets
}

// withApp sets up logging and wiring for one command, then runs fn.
func withApp(cmd *cobra.Command, opts *rootOptions, fn func(*app) error) error {
	root, err := resolveWorkdir(opts.workdir)
	if err != nil {
		return err
	}

	cleanup, lerr := logger.Setup(logger.Config{
		Root:  root,
		Debug: opts.debug,
		Attrs: []any{"version", buildinfo.Version},
	})
	if cleanup != nil {
		defer func() { _ = cleanup() }()
	}
	if lerr != nil && opts.debug {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: logging disabled: %v\n", lerr)
	}

	a, err := loadApp(root, opts.config)
	if err != nil {
		logger.L().Error("app.load_failed", "err", err)
		return err
	}
	logger.L().Debug("app.loaded", "command", cmd.Name(), "root", root, "out_dir", a.cfg.Output.Dir)

	if err := fn(a); err != nil {
		logger.L().Error("command.failed", "command", cmd.Name(), "err", err)
		return err
	}
	return nil
}

func loadApp(root, configFlag string) (*app, error) {
	cfgPath := strings.TrimSpace(configFlag)
	if cfgPath != "" && !filepath.IsAbs(cfgPath) {
		cfgPath = filepath.Join(root, cfgPath)
	}

	cfg, err := config.Load(config.LoadOptions{Path: cfgPath, Dir: root})
	if err != nil {
		return nil, err
	}

	head, err := config.LoadHeadTemplate(cfg, sheet.HeadVars)
	if err != nil {
		return nil, err
	}

	renderer, err := sheet.New(sheet.OptionsFromConfig(cfg.Layout, head))
	if err != nil {
		return nil, err
	}

	outDir := cfg.Output.Dir
	if !filepath.IsAbs(outDir) {
		outDir = filepath.Join(root, outDir)
	}

	opts := []usecase.GenerateOption{usecase.WithLogger(logger.L())}
	if cfg.AnswerKey.Enabled {
		opts = append(opts, usecase.WithKeyStore(keystore.NewJSONStore(root, cfg, keystore.WithIndex(true))))
	}

	// Fresh, unseeded source per run: problem order is not reproducible.
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

	return &app{
		root:   root,
		cfg:    cfg,
		sheets: usecase.NewGenerateSheets(renderer, htmlfile.NewWriter(outDir), rng, cfg.Output, opts...),
	}, nil
}

func resolveWorkdir(flag string) (string, error) {
	w := strings.TrimSpace(flag)
	if w == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		w = wd
	}

	abs, err := filepath.Abs(w)
	if err != nil {
		return "", fmt.Errorf("invalid workdir: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("workdir %q: %w", abs, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("workdir %q is not a directory", abs)
	}
	return abs, nil
}

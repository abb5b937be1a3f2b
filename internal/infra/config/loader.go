package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	apptemplate "github.com/aalvaropc/mathsheets/internal/app/template"
	"github.com/aalvaropc/mathsheets/internal/domain"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = "mathsheets.yaml"

type LoadOptions struct {
	// Path is an explicit config file. When empty, DefaultFile under Dir is
	// used if present.
	Path string
	Dir  string
	// Environment replaces os.Environ for overrides (tests).
	Environment map[string]string
}

// Load applies, in order: defaults, the YAML file, environment overrides.
// A missing default file is not an error; a missing explicit file is.
func Load(opts LoadOptions) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := opts.Path
	explicit := path != ""
	if !explicit {
		dir := opts.Dir
		if dir == "" {
			dir = "."
		}
		path = filepath.Join(dir, DefaultFile)
	}

	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := applyYAML(&cfg, path, b); err != nil {
			return cfg, err
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// defaults only
	default:
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	if err := applyEnv(&cfg, opts.Environment); err != nil {
		return cfg, err
	}

	if err := Validate(cfg); err != nil {
		return cfg, &domain.OpError{
			Op:   "config.validate",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return cfg, nil
}

func applyYAML(cfg *domain.Config, path string, b []byte) error {
	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	m := y.Mathsheets
	if m.Output.Dir != "" {
		cfg.Output.Dir = m.Output.Dir
	}
	if m.Output.NegSheet != "" {
		cfg.Output.NegSheet = m.Output.NegSheet
	}
	if m.Output.CubeSheet != "" {
		cfg.Output.CubeSheet = m.Output.CubeSheet
	}
	if m.Layout.Columns != nil {
		cfg.Layout.Columns = *m.Layout.Columns
	}
	if m.Layout.NegTitle != "" {
		cfg.Layout.NegTitle = m.Layout.NegTitle
	}
	if m.Layout.CubeTitle != "" {
		cfg.Layout.CubeTitle = m.Layout.CubeTitle
	}
	if m.Layout.Stylesheet != "" {
		cfg.Layout.Stylesheet = m.Layout.Stylesheet
	}
	if m.Layout.HeadTemplate != "" {
		// Relative to the config file, not the working directory.
		p := m.Layout.HeadTemplate
		if !filepath.IsAbs(p) {
			p = filepath.Join(filepath.Dir(path), p)
		}
		cfg.Layout.HeadTemplate = filepath.Clean(p)
	}
	if m.AnswerKey.Enabled != nil {
		cfg.AnswerKey.Enabled = *m.AnswerKey.Enabled
	}
	if m.AnswerKey.Dir != "" {
		cfg.AnswerKey.Dir = m.AnswerKey.Dir
	}
	return nil
}

func applyEnv(cfg *domain.Config, environment map[string]string) error {
	var o envOverrides
	opts := env.Options{}
	if environment != nil {
		opts.Environment = environment
	}
	if err := env.ParseWithOptions(&o, opts); err != nil {
		return &domain.OpError{
			Op:   "config.env",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("parse env: %w", err),
		}
	}

	if o.OutDir != nil {
		cfg.Output.Dir = *o.OutDir
	}
	if o.Columns != nil {
		cfg.Layout.Columns = *o.Columns
	}
	if o.AnswerKey != nil {
		cfg.AnswerKey.Enabled = *o.AnswerKey
	}
	if o.KeysDir != nil {
		cfg.AnswerKey.Dir = *o.KeysDir
	}
	return nil
}

// Validate reports the first invalid field of cfg.
func Validate(cfg domain.Config) error {
	if cfg.Layout.Columns < 1 {
		return invalidField("layout.columns", fmt.Sprintf("must be at least 1, got %d", cfg.Layout.Columns))
	}
	sheets := []struct{ field, name string }{
		{"output.neg_sheet", cfg.Output.NegSheet},
		{"output.cube_sheet", cfg.Output.CubeSheet},
	}
	for _, s := range sheets {
		if strings.TrimSpace(s.name) == "" {
			return invalidField(s.field, "file name is required")
		}
		if s.name != filepath.Base(s.name) {
			return invalidField(s.field, fmt.Sprintf("%q must not contain a path", s.name))
		}
	}
	if cfg.Output.NegSheet == cfg.Output.CubeSheet {
		return invalidField("output.cube_sheet", "must differ from output.neg_sheet")
	}
	return nil
}

// LoadHeadTemplate returns the configured head template, or "" for the built-in one.
func LoadHeadTemplate(cfg domain.Config, known []string) (string, error) {
	path := cfg.Layout.HeadTemplate
	if path == "" {
		return "", nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", &domain.OpError{
			Op:   "config.head_template",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	tmpl := string(b)
	for _, name := range apptemplate.Placeholders(tmpl) {
		if !slices.Contains(known, name) {
			return "", &domain.OpError{
				Op:   "config.head_template",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  fmt.Errorf("unknown placeholder {{%s}} (expected one of %s): %w", name, strings.Join(known, ", "), domain.ErrInvalidConfig),
			}
		}
	}
	return tmpl, nil
}

func invalidField(field, msg string) error {
	return fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig)
}

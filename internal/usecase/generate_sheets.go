package usecase

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/aalvaropc/mathsheets/internal/domain"
	"github.com/aalvaropc/mathsheets/internal/ports"
	"github.com/aalvaropc/mathsheets/internal/usecase/cubes"
	"github.com/aalvaropc/mathsheets/internal/usecase/problems"
)

// GenerateSheets runs enumerate → filter → shuffle → render → write for each sheet.
type GenerateSheets struct {
	renderer ports.SheetRenderer
	writer   ports.SheetWriter
	rng      ports.Random
	names    domain.OutputConfig

	keys ports.KeyStore // nil: no answer keys
	log  *slog.Logger
	now  func() time.Time
}

type GenerateOption func(*GenerateSheets)

func WithKeyStore(ks ports.KeyStore) GenerateOption {
	return func(uc *GenerateSheets) { uc.keys = ks }
}

func WithLogger(l *slog.Logger) GenerateOption {
	return func(uc *GenerateSheets) {
		if l != nil {
			uc.log = l
		}
	}
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) GenerateOption {
	return func(uc *GenerateSheets) { uc.now = now }
}

func NewGenerateSheets(r ports.SheetRenderer, w ports.SheetWriter, rng ports.Random, names domain.OutputConfig, opts ...GenerateOption) *GenerateSheets {
	uc := &GenerateSheets{
		renderer: r,
		writer:   w,
		rng:      rng,
		names:    names,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// All writes the negative-number sheet, then the cube sheet. The first
// failure stops the run.
func (uc *GenerateSheets) All(ctx context.Context) ([]domain.SheetResult, error) {
	neg, err := uc.Negative(ctx)
	if err != nil {
		return nil, err
	}
	cube, err := uc.Cube(ctx)
	if err != nil {
		return []domain.SheetResult{neg}, err
	}
	return []domain.SheetResult{neg, cube}, nil
}

func (uc *GenerateSheets) Negative(ctx context.Context) (domain.SheetResult, error) {
	list, err := problems.Negative(uc.rng)
	if err != nil {
		return domain.SheetResult{}, err
	}
	uc.log.Debug("sheet.generated", "sheet", domain.SheetNegative, "problems", len(list))

	path, err := uc.write(ctx, uc.names.NegSheet, func(w io.Writer) error {
		return uc.renderer.RenderNegSheet(ctx, w, list)
	})
	if err != nil {
		return domain.SheetResult{}, err
	}

	res := domain.SheetResult{Kind: domain.SheetNegative, Path: path, Problems: len(list)}
	res.KeyID, err = uc.saveKey(domain.AnswerKey{
		Sheet:     domain.SheetNegative,
		SheetPath: path,
		Problems:  list,
	})
	if err != nil {
		return res, err
	}

	uc.log.Info("sheet.written", "sheet", res.Kind, "path", res.Path, "problems", res.Problems, "key", res.KeyID)
	return res, nil
}

func (uc *GenerateSheets) Cube(ctx context.Context) (domain.SheetResult, error) {
	list, err := cubes.Sheet(uc.rng)
	if err != nil {
		return domain.SheetResult{}, err
	}
	uc.log.Debug("sheet.generated", "sheet", domain.SheetCube, "problems", len(list))

	path, err := uc.write(ctx, uc.names.CubeSheet, func(w io.Writer) error {
		return uc.renderer.RenderCubeSheet(ctx, w, list)
	})
	if err != nil {
		return domain.SheetResult{}, err
	}

	answers := make([]domain.CubeAnswer, len(list))
	for i, c := range list {
		answers[i] = c.Answer()
	}

	res := domain.SheetResult{Kind: domain.SheetCube, Path: path, Problems: len(list)}
	res.KeyID, err = uc.saveKey(domain.AnswerKey{
		Sheet:     domain.SheetCube,
		SheetPath: path,
		Cubes:     answers,
	})
	if err != nil {
		return res, err
	}

	uc.log.Info("sheet.written", "sheet", res.Kind, "path", res.Path, "problems", res.Problems, "key", res.KeyID)
	return res, nil
}

// write renders into name and closes it on every path. A close error is
// reported when rendering itself succeeded.
func (uc *GenerateSheets) write(ctx context.Context, name string, render func(io.Writer) error) (path string, err error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, path, err := uc.writer.Create(name)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &domain.OpError{Op: "sheet.close", Kind: domain.KindExecution, Path: path, Err: cerr}
		}
	}()

	bw := bufio.NewWriter(f)
	if err := render(bw); err != nil {
		return path, &domain.OpError{Op: "sheet.render", Kind: domain.KindExecution, Path: path, Err: err}
	}
	if err := bw.Flush(); err != nil {
		return path, &domain.OpError{Op: "sheet.write", Kind: domain.KindExecution, Path: path, Err: err}
	}
	return path, nil
}

func (uc *GenerateSheets) saveKey(key domain.AnswerKey) (string, error) {
	if uc.keys == nil {
		return "", nil
	}
	key.GeneratedAt = uc.now().UTC()
	return uc.keys.SaveKey(key)
}

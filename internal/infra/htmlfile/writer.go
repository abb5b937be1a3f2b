package htmlfile

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/mathsheets/internal/domain"
	"github.com/aalvaropc/mathsheets/internal/ports"
)

// Writer creates worksheet files under a fixed directory, overwriting existing ones.
type Writer struct {
	dir string
}

func NewWriter(dir string) *Writer {
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}
	return &Writer{dir: filepath.Clean(dir)}
}

var _ ports.SheetWriter = (*Writer)(nil)

func (w *Writer) Create(name string) (io.WriteCloser, string, error) {
	if name == "" || name != filepath.Base(name) {
		return nil, "", &domain.OpError{
			Op:   "htmlfile.create",
			Kind: domain.KindInvalidConfig,
			Path: name,
			Err:  errors.New("sheet name must be a plain file name"),
		}
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return nil, "", &domain.OpError{
			Op:   "htmlfile.mkdir",
			Kind: domain.KindExecution,
			Path: w.dir,
			Err:  err,
		}
	}

	path := filepath.Join(w.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return nil, "", &domain.OpError{
			Op:   "htmlfile.create",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return f, path, nil
}

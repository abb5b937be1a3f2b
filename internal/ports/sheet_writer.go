package ports

import "io"

// SheetWriter opens the destination of a rendered worksheet (e.g., a file on disk).
// The caller must Close the returned writer on every path.
type SheetWriter interface {
	Create(name string) (io.WriteCloser, string, error)
}

package ports

import (
	"context"
	"io"

	"github.com/aalvaropc/mathsheets/internal/domain"
)

// SheetRenderer turns generated problems into a complete document.
type SheetRenderer interface {
	RenderNegSheet(ctx context.Context, w io.Writer, problems []domain.Problem) error
	RenderCubeSheet(ctx context.Context, w io.Writer, problems []domain.CubeProblem) error
}

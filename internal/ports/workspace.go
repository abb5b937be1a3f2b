package ports

import "github.com/aalvaropc/mathsheets/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}

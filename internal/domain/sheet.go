package domain

import "time"

// SheetKind identifies which worksheet was generated.
type SheetKind string

const (
	SheetNegative SheetKind = "negative"
	SheetCube     SheetKind = "cube"
)

// AnswerKey records the solutions of one generated sheet, in sheet order.
type AnswerKey struct {
	Sheet       SheetKind    `json:"sheet"`
	SheetPath   string       `json:"sheet_path"`
	GeneratedAt time.Time    `json:"generated_at"`
	Problems    []Problem    `json:"problems,omitempty"`
	Cubes       []CubeAnswer `json:"cubes,omitempty"`
}

// CubeAnswer is the serializable form of a solved CubeProblem.
type CubeAnswer struct {
	Given     string  `json:"given"`
	Side      float64 `json:"side"`
	Face      float64 `json:"face"`
	TotalArea float64 `json:"total_area"`
	Volume    float64 `json:"volume"`
}

// Answer returns the solved measurements of c.
func (c CubeProblem) Answer() CubeAnswer {
	return CubeAnswer{
		Given:     c.given.String(),
		Side:      c.Side(),
		Face:      c.Face(),
		TotalArea: c.TotalArea(),
		Volume:    c.Volume(),
	}
}

// SheetResult describes one written worksheet.
type SheetResult struct {
	Kind     SheetKind
	Path     string
	Problems int
	KeyID    string
}

// WorkspaceSpec is the directory `mathsheets init` populates.
type WorkspaceSpec struct {
	Root string
}

// Package problems builds the candidate set for the negative-number sheet.
package problems

import (
	"github.com/aalvaropc/mathsheets/internal/domain"
	"github.com/aalvaropc/mathsheets/internal/ports"
)

// Operand range of the negative-number sheet: [Lo, Hi).
const (
	Lo = -20
	Hi = 20
)

// SheetOperators are the operators the negative-number sheet draws from.
var SheetOperators = []domain.Operator{domain.Add, domain.Subtract}

// Enumerate returns every problem a op b for a, b in [lo, hi) and op in ops,
// skipping zero operands. Order is a-major, then b, then op.
func Enumerate(lo, hi int, ops []domain.Operator) ([]domain.Problem, error) {
	if hi <= lo {
		return nil, nil
	}

	n := hi - lo
	out := make([]domain.Problem, 0, n*n*len(ops))
	for a := lo; a < hi; a++ {
		if a == 0 {
			continue
		}
		for b := lo; b < hi; b++ {
			if b == 0 {
				continue
			}
			for _, op := range ops {
				p, err := domain.NewProblem(a, b, op)
				if err != nil {
					return nil, err
				}
				out = append(out, p)
			}
		}
	}
	return out, nil
}

// Filter keeps the problems for which keep returns true. The input is not modified.
func Filter(in []domain.Problem, keep func(domain.Problem) bool) []domain.Problem {
	out := make([]domain.Problem, 0, len(in))
	for _, p := range in {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// Shuffle permutes list in place (Fisher–Yates, last index down).
func Shuffle[T any](rng ports.Random, list []T) {
	for i := len(list) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		list[i], list[j] = list[j], list[i]
	}
}

// Negative returns the shuffled problems of the negative-number sheet.
func Negative(rng ports.Random) ([]domain.Problem, error) {
	all, err := Enumerate(Lo, Hi, SheetOperators)
	if err != nil {
		return nil, err
	}

	out := Filter(all, domain.Problem.InvolvesNegative)
	Shuffle(rng, out)
	return out, nil
}

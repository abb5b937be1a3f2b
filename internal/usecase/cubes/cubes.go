// Package cubes builds the problem set for the cube-geometry sheet.
package cubes

import (
	"github.com/aalvaropc/mathsheets/internal/domain"
	"github.com/aalvaropc/mathsheets/internal/ports"
	"github.com/aalvaropc/mathsheets/internal/usecase/problems"
)

// Side lengths covered by the cube sheet, inclusive.
const (
	MinSide = 1
	MaxSide = 13
)

// Enumerate returns one problem per side in [minSide, maxSide] and given kind.
// Each problem is rebuilt from the given measurement of the integer cube.
func Enumerate(minSide, maxSide int) ([]domain.CubeProblem, error) {
	if maxSide < minSide {
		return nil, nil
	}

	out := make([]domain.CubeProblem, 0, (maxSide-minSide+1)*len(domain.CubeGivens))
	for side := minSide; side <= maxSide; side++ {
		for _, g := range domain.CubeGivens {
			c, err := domain.CubeFrom(g, givenValue(g, side))
			if err != nil {
				return nil, err
			}
			out = append(out, c)
		}
	}
	return out, nil
}

// Sheet returns the shuffled problems of the cube sheet.
func Sheet(rng ports.Random) ([]domain.CubeProblem, error) {
	out, err := Enumerate(MinSide, MaxSide)
	if err != nil {
		return nil, err
	}
	problems.Shuffle(rng, out)
	return out, nil
}

func givenValue(g domain.CubeGiven, side int) int {
	switch g {
	case domain.GiveFaceArea:
		return side * side
	case domain.GiveTotalArea:
		return 6 * side * side
	case domain.GiveVolume:
		return side * side * side
	default:
		return side
	}
}

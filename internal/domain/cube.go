package domain

import (
	"fmt"
	"math"
)

// CubeGiven names the measurement a cube problem starts from.
type CubeGiven int

const (
	GiveSide CubeGiven = iota
	GiveFaceArea
	GiveTotalArea
	GiveVolume
)

// CubeGivens lists every given kind in declaration order.
var CubeGivens = []CubeGiven{GiveSide, GiveFaceArea, GiveTotalArea, GiveVolume}

func (g CubeGiven) String() string {
	switch g {
	case GiveSide:
		return "side"
	case GiveFaceArea:
		return "face_area"
	case GiveTotalArea:
		return "total_area"
	case GiveVolume:
		return "volume"
	default:
		return fmt.Sprintf("cube_given(%d)", int(g))
	}
}

// CubeProblem is a cube derived from a single given measurement.
type CubeProblem struct {
	side  float64
	given CubeGiven
}

func CubeFromSide(side int) (CubeProblem, error) {
	if side <= 0 {
		return CubeProblem{}, invalidInput("cube.from_side", "side must be positive, got %d", side)
	}
	return CubeProblem{side: float64(side), given: GiveSide}, nil
}

func CubeFromFace(face int) (CubeProblem, error) {
	if face <= 0 {
		return CubeProblem{}, invalidInput("cube.from_face", "face area must be positive, got %d", face)
	}
	return CubeProblem{side: math.Sqrt(float64(face)), given: GiveFaceArea}, nil
}

func CubeFromTotalArea(total int) (CubeProblem, error) {
	if total <= 0 {
		return CubeProblem{}, invalidInput("cube.from_total_area", "total area must be positive, got %d", total)
	}
	return CubeProblem{side: math.Sqrt(float64(total) / 6), given: GiveTotalArea}, nil
}

func CubeFromVolume(volume int) (CubeProblem, error) {
	if volume <= 0 {
		return CubeProblem{}, invalidInput("cube.from_volume", "volume must be positive, got %d", volume)
	}
	return CubeProblem{side: math.Cbrt(float64(volume)), given: GiveVolume}, nil
}

// CubeFrom dispatches to the constructor matching given.
func CubeFrom(given CubeGiven, value int) (CubeProblem, error) {
	switch given {
	case GiveSide:
		return CubeFromSide(value)
	case GiveFaceArea:
		return CubeFromFace(value)
	case GiveTotalArea:
		return CubeFromTotalArea(value)
	case GiveVolume:
		return CubeFromVolume(value)
	default:
		return CubeProblem{}, invalidInput("cube.from", "unknown given %d", int(given))
	}
}

func (c CubeProblem) Side() float64      { return c.side }
func (c CubeProblem) Face() float64      { return c.side * c.side }
func (c CubeProblem) TotalArea() float64 { return 6 * c.side * c.side }
func (c CubeProblem) Volume() float64    { return c.side * c.side * c.side }
func (c CubeProblem) Given() CubeGiven   { return c.given }

// GivenValue returns the measurement the problem was built from.
func (c CubeProblem) GivenValue() float64 {
	return c.Measure(c.given)
}

// Measure returns the derived measurement of the given kind.
func (c CubeProblem) Measure(g CubeGiven) float64 {
	switch g {
	case GiveFaceArea:
		return c.Face()
	case GiveTotalArea:
		return c.TotalArea()
	case GiveVolume:
		return c.Volume()
	default:
		return c.Side()
	}
}

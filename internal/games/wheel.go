package games

import (
	"math"

	"roulette/internal/engine"
)

// Pockets is the number of compartments on a European single-zero wheel.
const Pockets = 37

// Color of a wheel pocket.
type Color string

const (
	ColorGreen Color = "green"
	ColorRed   Color = "red"
	ColorBlack Color = "black"
)

// Parity of a nonzero pocket.
type Parity string

const (
	ParityEven Parity = "even"
	ParityOdd  Parity = "odd"
)

// Pocket is a wheel compartment value, 0 through 36.
type Pocket int

// pocketColors is the standard European layout. Zero is the single green
// pocket; 1-36 carry the fixed red/black assignment.
var pocketColors = [Pockets]Color{
	ColorGreen, // 0
	ColorRed, ColorBlack, ColorRed, ColorBlack, ColorRed, ColorBlack, // 1-6
	ColorRed, ColorBlack, ColorRed, ColorBlack, ColorBlack, ColorRed, // 7-12
	ColorBlack, ColorRed, ColorBlack, ColorRed, ColorBlack, ColorRed, // 13-18
	ColorRed, ColorBlack, ColorRed, ColorBlack, ColorRed, ColorBlack, // 19-24
	ColorRed, ColorBlack, ColorRed, ColorBlack, ColorBlack, ColorRed, // 25-30
	ColorBlack, ColorRed, ColorBlack, ColorRed, ColorBlack, ColorRed, // 31-36
}

// Valid reports whether p is on the wheel.
func (p Pocket) Valid() bool {
	return p >= 0 && p < Pockets
}

// Color returns the pocket's color. Callers must pass a valid pocket.
func (p Pocket) Color() Color {
	return pocketColors[p]
}

// Parity classifies a nonzero pocket as even or odd. Zero reports ok=false:
// it has no parity for betting purposes.
func (p Pocket) Parity() (Parity, bool) {
	if p == 0 {
		return "", false
	}
	if p%2 == 0 {
		return ParityEven, true
	}
	return ParityOdd, true
}

// SpinOutcome pairs the landed pocket with its color.
type SpinOutcome struct {
	Value Pocket `json:"value"`
	Color Color  `json:"color"`
}

// Wheel draws uniform pocket outcomes from a float source. Spins carry no
// memory of previous spins.
type Wheel struct {
	src engine.FloatSource
}

// NewWheel creates a wheel backed by the given float source.
func NewWheel(src engine.FloatSource) *Wheel {
	return &Wheel{src: src}
}

// Spin draws the next outcome: floor(f * 37) over a float in [0, 1).
func (w *Wheel) Spin() SpinOutcome {
	f := w.src.NextFloat()
	p := Pocket(math.Floor(f * Pockets))
	if p >= Pockets {
		p = Pockets - 1
	}
	return SpinOutcome{Value: p, Color: p.Color()}
}

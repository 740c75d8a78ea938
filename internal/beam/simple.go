package beam

import (
	"github.com/aminghali/structural-engineering-notebooks/internal/calcerr"
	"gonum.org/v1/gonum/floats"
)

// SimpleSpan is a simply-supported beam (pin at x=0, roller at x=L) under a
// uniformly distributed load. Forces follow the physical sign convention:
// shear positive at the left support, sagging moment positive.
type SimpleSpan struct {
	Length float64 // L (m)
	Load   float64 // w (kN/m)
}

// NewSimpleSpan validates the span and load.
func NewSimpleSpan(length, load float64) (SimpleSpan, error) {
	if !positive(length) {
		return SimpleSpan{}, calcerr.InvalidGeometry("length", length)
	}
	if !nonNegative(load) {
		return SimpleSpan{}, calcerr.InvalidInput("factored_load", load, notNegative)
	}
	return SimpleSpan{Length: length, Load: load}, nil
}

// Shear returns V(x) = wL/2 - wx (kN).
func (s SimpleSpan) Shear(x float64) float64 {
	return s.Load*s.Length/2 - s.Load*x
}

// Moment returns M(x) = wx(L - x)/2 (kN-m).
func (s SimpleSpan) Moment(x float64) float64 {
	return s.Load * x * (s.Length - x) / 2
}

// MaxMoment returns wL²/8, the midspan moment.
func (s SimpleSpan) MaxMoment() float64 {
	return s.Load * s.Length * s.Length / 8
}

// MaxShear returns wL/2, the support reaction.
func (s SimpleSpan) MaxShear() float64 {
	return s.Load * s.Length / 2
}

// Station is the internal force state at one point along the span.
type Station struct {
	X      float64 // m from the left support
	Shear  float64 // kN
	Moment float64 // kN-m
}

// Sample evaluates the span at n evenly spaced stations including both
// supports. n below 2 is raised to 2.
func (s SimpleSpan) Sample(n int) []Station {
	if n < 2 {
		n = 2
	}
	xs := floats.Span(make([]float64, n), 0, s.Length)

	stations := make([]Station, n)
	for i, x := range xs {
		stations[i] = Station{X: x, Shear: s.Shear(x), Moment: s.Moment(x)}
	}
	return stations
}

// Package rebar computes the bottom-bar arrangement of a rectangular
// section from a required steel area.
//
// All bars are placed in a single row at y = cover. There is no multi-row
// fallback and no minimum clear-spacing check, so large bar counts produce
// a physically crowded row.
package rebar

import (
	"math"

	"github.com/aminghali/structural-engineering-notebooks/internal/beam"
)

// Bar is one reinforcing bar in section coordinates (mm, origin at the
// bottom-left corner).
type Bar struct {
	X float64
	Y float64
}

// Layout is a single-row bar arrangement.
type Layout struct {
	Width       float64 // section width b (mm)
	Height      float64 // section height h (mm)
	Cover       float64 // mm
	BarDiameter float64 // mm
	BarArea     float64 // mm² per bar
	AsRequired  float64 // mm²
	Count       int
	AsProvided  float64 // mm²
	Spacing     float64 // centre-to-centre (mm), 0 for a single bar
	Bars        []Bar
}

// BarArea returns π(db/2)².
func BarArea(diameter float64) float64 {
	return math.Pi * (diameter / 2) * (diameter / 2)
}

// BarCount returns ceil(As / bar area), so the provided area never falls
// short of the requirement.
func BarCount(asRequired, diameter float64) int {
	return int(math.Ceil(asRequired / BarArea(diameter)))
}

// NewLayout arranges the bars for the given section. A single bar sits on
// the vertical centreline; otherwise bars are evenly spaced from x = cover
// to x = width - cover inclusive. Areas needing more than
// beam.MaxBarCount bars are rejected.
func NewLayout(width, height, asRequired, diameter, cover float64) (*Layout, error) {
	if err := beam.ValidateSection(width, height); err != nil {
		return nil, err
	}
	if err := beam.ValidateReinforcement(width, asRequired, diameter, cover); err != nil {
		return nil, err
	}

	l := &Layout{
		Width:       width,
		Height:      height,
		Cover:       cover,
		BarDiameter: diameter,
		BarArea:     BarArea(diameter),
		AsRequired:  asRequired,
		Count:       BarCount(asRequired, diameter),
	}
	l.AsProvided = float64(l.Count) * l.BarArea

	l.Bars = make([]Bar, l.Count)
	if l.Count == 1 {
		l.Bars[0] = Bar{X: width / 2, Y: cover}
		return l, nil
	}

	clear := width - 2*cover
	l.Spacing = clear / float64(l.Count-1)
	for i := range l.Bars {
		l.Bars[i] = Bar{X: cover + float64(i)*l.Spacing, Y: cover}
	}
	return l, nil
}

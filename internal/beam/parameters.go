// Package beam holds the beam parameter record used across the calc sheet,
// the closed-form internal forces of a simply-supported span, and the
// singly-reinforced flexural design used to estimate required steel.
package beam

import (
	"fmt"
	"math"

	"github.com/aminghali/structural-engineering-notebooks/internal/calcerr"
)

const (
	// DefaultCover is the clear cover to the bottom bars (mm).
	DefaultCover = 40.0

	// DefaultBarDiameter is used when no bar size is given (mm).
	DefaultBarDiameter = 20.0

	// MaxBarCount bounds the single-row layout. A steel area needing more
	// bars than this is rejected as input.
	MaxBarCount = 100
)

// Parameters describes one simply-supported beam on a calculation sheet.
// It is passed by value and never modified by the renderers.
type Parameters struct {
	// Span and loading
	Length       float64 // L - span (m)
	DeadLoad     float64 // w_d - unfactored dead load (kN/m)
	LiveLoad     float64 // w_l - unfactored live load (kN/m)
	FactoredLoad float64 // w_u - factored load (kN/m), normally 1.2D + 1.6L

	// Section (mm)
	Width  float64 // b
	Height float64 // h

	// Reinforcement
	SteelAreaRequired float64 // As,req (mm²)
	BarDiameter       float64 // db (mm)
	Cover             float64 // clear cover (mm)
}

// ValidateGeometry checks the span and section dimensions.
func (p Parameters) ValidateGeometry() error {
	if !positive(p.Length) {
		return calcerr.InvalidGeometry("length", p.Length)
	}
	return ValidateSection(p.Width, p.Height)
}

// ValidateSection checks the rectangular section dimensions.
func ValidateSection(width, height float64) error {
	if !positive(width) {
		return calcerr.InvalidGeometry("width", width)
	}
	if !positive(height) {
		return calcerr.InvalidGeometry("height", height)
	}
	return nil
}

// ValidateLoads checks that every distributed load is finite and not negative.
func (p Parameters) ValidateLoads() error {
	if !nonNegative(p.DeadLoad) {
		return calcerr.InvalidInput("dead_load", p.DeadLoad, notNegative)
	}
	if !nonNegative(p.LiveLoad) {
		return calcerr.InvalidInput("live_load", p.LiveLoad, notNegative)
	}
	if !nonNegative(p.FactoredLoad) {
		return calcerr.InvalidInput("factored_load", p.FactoredLoad, notNegative)
	}
	return nil
}

// Validate checks the whole record and returns the first violation.
func (p Parameters) Validate() error {
	if err := p.ValidateGeometry(); err != nil {
		return err
	}
	if err := p.ValidateLoads(); err != nil {
		return err
	}
	return ValidateReinforcement(p.Width, p.SteelAreaRequired, p.BarDiameter, p.Cover)
}

// ValidateReinforcement checks the inputs of a single-row bar layout.
func ValidateReinforcement(width, asRequired, barDiameter, cover float64) error {
	if !positive(asRequired) {
		return calcerr.InvalidInput("steel_area_required", asRequired, mustBePositive)
	}
	if !positive(barDiameter) {
		return calcerr.InvalidInput("bar_diameter", barDiameter, mustBePositive)
	}
	if !nonNegative(cover) {
		return calcerr.InvalidInput("cover", cover, notNegative)
	}
	if 2*cover >= width {
		return calcerr.InvalidInput("cover", cover, fmt.Sprintf("must be less than half the width (%g mm)", width))
	}
	if n := math.Ceil(asRequired / (math.Pi * barDiameter * barDiameter / 4)); n > MaxBarCount {
		return calcerr.InvalidInput("steel_area_required", asRequired,
			fmt.Sprintf("needs %g bars of %g mm, more than %d fit one row", n, barDiameter, MaxBarCount))
	}
	return nil
}

const (
	mustBePositive = "must be positive and finite"
	notNegative    = "must be finite and not negative"
)

// positive reports whether v is a finite number above zero. NaN fails.
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}

// TotalLoad returns w_d + w_l, the top of the stacked service load band.
func (p Parameters) TotalLoad() float64 {
	return p.DeadLoad + p.LiveLoad
}

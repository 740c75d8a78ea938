package beam

import (
	"fmt"
	"math"

	"github.com/aminghali/structural-engineering-notebooks/internal/aci"
)

// EffectiveDepthAllowance is subtracted from the total height to estimate
// the effective depth d when the bar layout is not yet known (mm).
const EffectiveDepthAllowance = 50.0

// SinglyReinforced represents a singly reinforced rectangular beam section
type SinglyReinforced struct {
	// Geometry (mm)
	Width          float64 // b - beam width
	Height         float64 // h - total depth
	EffectiveDepth float64 // d - effective depth (to centroid of tension steel)

	// Materials (MPa)
	Fc float64 // f'c - concrete compressive strength
	Fy float64 // fy - steel yield strength
}

// NewSinglyReinforced creates a section with d = h - EffectiveDepthAllowance
func NewSinglyReinforced(width, height, fc, fy float64) *SinglyReinforced {
	return &SinglyReinforced{
		Width:          width,
		Height:         height,
		EffectiveDepth: height - EffectiveDepthAllowance,
		Fc:             fc,
		Fy:             fy,
	}
}

// DesignResult holds the results of beam design
type DesignResult struct {
	AsRequired float64 // Required steel area (mm²)
	AsMin      float64 // Minimum steel area (mm²)

	RhoRequired float64
	RhoMin      float64
	RhoMax      float64

	A        float64 // Depth of compression block (mm)
	C        float64 // Neutral axis depth (mm)
	EpsilonT float64 // Net tensile strain
	Phi      float64 // Strength reduction factor
	PhiMn    float64 // Design moment capacity (kN-m)

	IsTensionControlled bool
}

// Design calculates the tension steel required for a factored moment.
// The section must be adequate as singly reinforced.
func (b *SinglyReinforced) Design(mu float64) (*DesignResult, error) {
	if b.Width <= 0 || b.EffectiveDepth <= 0 {
		return nil, fmt.Errorf("invalid beam dimensions: width=%.2f, d=%.2f", b.Width, b.EffectiveDepth)
	}
	if b.Fc <= 0 || b.Fy <= 0 {
		return nil, fmt.Errorf("invalid material properties: f'c=%.2f, fy=%.2f", b.Fc, b.Fy)
	}
	if mu < 0 {
		return nil, fmt.Errorf("invalid factored moment: Mu=%.2f kN-m", mu)
	}

	result := &DesignResult{
		RhoMin: aci.RhoMin(b.Fc, b.Fy),
		RhoMax: aci.RhoMax(b.Fc, b.Fy),
	}
	result.AsMin = result.RhoMin * b.Width * b.EffectiveDepth

	// Rn = Mu / (φ b d²), assuming a tension-controlled section
	muNmm := mu * 1e6
	rn := muNmm / (aci.PhiFlexure * b.Width * math.Pow(b.EffectiveDepth, 2))

	// ρ = (0.85 f'c / fy)(1 - √(1 - 2Rn / 0.85f'c))
	term := 2 * rn / (0.85 * b.Fc)
	if term > 1 {
		return nil, fmt.Errorf("section inadequate for singly reinforced design: Mu=%.2f kN-m", mu)
	}
	result.RhoRequired = (0.85 * b.Fc / b.Fy) * (1 - math.Sqrt(1-term))
	if result.RhoRequired > result.RhoMax {
		return nil, fmt.Errorf("section inadequate for singly reinforced design: ρ=%.5f > ρmax=%.5f", result.RhoRequired, result.RhoMax)
	}

	rho := math.Max(result.RhoRequired, result.RhoMin)
	result.AsRequired = rho * b.Width * b.EffectiveDepth

	// Verify with the provided area
	result.A = result.AsRequired * b.Fy / (0.85 * b.Fc * b.Width)
	result.C = result.A / aci.Beta1(b.Fc)
	result.EpsilonT = aci.EpsilonCU * (b.EffectiveDepth - result.C) / result.C
	result.Phi = aci.Phi(result.EpsilonT, b.Fy)
	result.IsTensionControlled = aci.IsTensionControlled(result.EpsilonT, b.Fy)
	result.PhiMn = result.Phi * result.AsRequired * b.Fy * (b.EffectiveDepth - result.A/2) / 1e6

	return result, nil
}

// RequiredSteel estimates As for the midspan moment of a simple span.
func RequiredSteel(p Parameters, fc, fy float64) (float64, error) {
	span, err := NewSimpleSpan(p.Length, p.FactoredLoad)
	if err != nil {
		return 0, err
	}
	res, err := NewSinglyReinforced(p.Width, p.Height, fc, fy).Design(span.MaxMoment())
	if err != nil {
		return 0, err
	}
	return res.AsRequired, nil
}

// Package aci holds the ACI 318-19 constants and load combinations used to
// prepare the numbers that go on a beam calculation sheet.
package aci

import "math"

// Flexural design constants, SI units.
const (
	EpsilonCU = 0.003    // concrete crushing strain, 22.2.2.1
	Es        = 200000.0 // steel modulus (MPa), 20.2.2.2

	PhiFlexure     = 0.90 // tension-controlled, Table 21.2.2
	PhiCompression = 0.65 // compression-controlled, tied

	// Beta1 bounds, Table 22.2.2.4.3.
	Beta1Max = 0.85
	Beta1Min = 0.65

	// tensionControlledMargin is how far εt must exceed εty for a section
	// to be tension-controlled.
	tensionControlledMargin = 0.003
)

// Beta1 returns the stress block depth factor: 0.85 up to f'c = 28 MPa,
// then 0.05 less per 7 MPa, never below 0.65.
func Beta1(fc float64) float64 {
	if fc <= 28 {
		return Beta1Max
	}
	return math.Max(Beta1Max-0.05*(fc-28)/7, Beta1Min)
}

// YieldStrain returns εty = fy / Es.
func YieldStrain(fy float64) float64 {
	return fy / Es
}

// Phi returns the flexural strength reduction factor for a net tensile
// strain epsilonT, interpolating linearly across the transition zone.
func Phi(epsilonT, fy float64) float64 {
	ety := YieldStrain(fy)
	switch {
	case epsilonT >= ety+tensionControlledMargin:
		return PhiFlexure
	case epsilonT <= ety:
		return PhiCompression
	}
	return PhiCompression + (PhiFlexure-PhiCompression)*(epsilonT-ety)/tensionControlledMargin
}

// IsTensionControlled reports whether epsilonT reaches εty + 0.003.
func IsTensionControlled(epsilonT, fy float64) bool {
	return epsilonT >= YieldStrain(fy)+tensionControlledMargin
}

// RhoMin is the flexural minimum of 9.6.1.2, max(0.25√f'c, 1.4) / fy.
func RhoMin(fc, fy float64) float64 {
	return math.Max(0.25*math.Sqrt(fc), 1.4) / fy
}

// RhoMax is the steel ratio that puts the neutral axis at εt = 0.005.
func RhoMax(fc, fy float64) float64 {
	return 0.85 * Beta1(fc) * (fc / fy) * (EpsilonCU / (EpsilonCU + 0.005))
}

package aci

import "fmt"

// LoadCombination represents a strength design load combination
// Based on ACI 318-19 Section 5.3.1 (ASCE/SEI 7 basic combinations)
type LoadCombination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead       float64 // D - Dead load
	Live       float64 // L - Live load
	Roof       float64 // Lr - Roof live load
	Snow       float64 // S - Snow load
	Rain       float64 // R - Rain load
	Wind       float64 // W - Wind load
	Earthquake float64 // E - Earthquake load
}

// ACI 318-19 Table 5.3.1 - Load combinations
var LoadCombinations = []LoadCombination{
	{
		ID:          "5.3.1a",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "5.3.1b",
		Description: "1.2D + 1.6L + 0.5(Lr or S or R)",
		Dead:        1.2,
		Live:        1.6,
		Roof:        0.5,
		Snow:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "5.3.1c",
		Description: "1.2D + 1.6(Lr or S or R) + (1.0L or 0.5W)",
		Dead:        1.2,
		Live:        1.0,
		Roof:        1.6,
		Snow:        1.6,
		Rain:        1.6,
	},
	{
		ID:          "5.3.1d",
		Description: "1.2D + 1.0W + 1.0L + 0.5(Lr or S or R)",
		Dead:        1.2,
		Live:        1.0,
		Wind:        1.0,
		Roof:        0.5,
		Snow:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "5.3.1e",
		Description: "1.2D + 1.0E + 1.0L + 0.2S",
		Dead:        1.2,
		Live:        1.0,
		Earthquake:  1.0,
		Snow:        0.2,
	},
	{
		ID:          "5.3.1f",
		Description: "0.9D + 1.0W",
		Dead:        0.9,
		Wind:        1.0,
	},
	{
		ID:          "5.3.1g",
		Description: "0.9D + 1.0E",
		Dead:        0.9,
		Earthquake:  1.0,
	},
}

// GravityCombinations are the dead + live combinations used for
// ordinary floor beams. The calc sheet's factored load is 1.2D + 1.6L.
var GravityCombinations = []LoadCombination{
	{
		ID:          "5.3.1a",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "5.3.1b",
		Description: "1.2D + 1.6L",
		Dead:        1.2,
		Live:        1.6,
	},
}

// LineLoads holds unfactored uniformly distributed loads (kN/m)
type LineLoads struct {
	Dead       float64
	Live       float64
	Roof       float64
	Snow       float64
	Rain       float64
	Wind       float64
	Earthquake float64
}

// IsZero reports whether no load of any type was given.
func (l LineLoads) IsZero() bool {
	return l == LineLoads{}
}

// Validate rejects negative gravity loads. Wind and earthquake may act in
// either direction and are not checked.
func (l LineLoads) Validate() error {
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"dead", l.Dead}, {"live", l.Live}, {"roof", l.Roof}, {"snow", l.Snow}, {"rain", l.Rain},
	} {
		if v.value < 0 {
			return fmt.Errorf("%s load must not be negative: %.2f kN/m", v.name, v.value)
		}
	}
	return nil
}

// Factored calculates the factored line load for a given load combination
func (lc LoadCombination) Factored(loads LineLoads) float64 {
	return lc.Dead*loads.Dead +
		lc.Live*loads.Live +
		lc.Roof*loads.Roof +
		lc.Snow*loads.Snow +
		lc.Rain*loads.Rain +
		lc.Wind*loads.Wind +
		lc.Earthquake*loads.Earthquake
}

// GoverningLoad finds the maximum factored line load over all combinations.
// Ties keep the earlier combination.
func GoverningLoad(loads LineLoads, combinations []LoadCombination) (float64, LoadCombination) {
	var maxLoad float64
	var governing LoadCombination

	for i, combo := range combinations {
		wu := combo.Factored(loads)
		if i == 0 || wu > maxLoad {
			maxLoad = wu
			governing = combo
		}
	}

	return maxLoad, governing
}

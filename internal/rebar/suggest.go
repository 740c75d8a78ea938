package rebar

// CommonDiameters are the stock bar sizes offered in bar schedules (mm).
var CommonDiameters = []float64{16, 20, 25, 28, 32}

// Suggestion is one bar-size option that satisfies a required area.
type Suggestion struct {
	Diameter   float64
	Count      int
	AsProvided float64
	Ratio      float64 // AsProvided / AsRequired
}

// Suggest lists the stock sizes that need between 2 and 8 bars in one row.
func Suggest(asRequired float64, diameters []float64) []Suggestion {
	if asRequired <= 0 {
		return nil
	}

	var out []Suggestion
	for _, d := range diameters {
		if d <= 0 {
			continue
		}
		n := BarCount(asRequired, d)
		if n < 2 || n > 8 {
			continue
		}
		provided := float64(n) * BarArea(d)
		out = append(out, Suggestion{
			Diameter:   d,
			Count:      n,
			AsProvided: provided,
			Ratio:      provided / asRequired,
		})
	}
	return out
}

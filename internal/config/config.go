// Package config loads the calc-sheet settings from YAML. A missing file or
// a missing key leaves the calc-sheet default in place.
package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/aminghali/structural-engineering-notebooks/internal/aci"
	"github.com/aminghali/structural-engineering-notebooks/internal/beam"
	"github.com/aminghali/structural-engineering-notebooks/internal/diagram"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// DefaultOutputDir is where figures go when nothing else is configured.
const DefaultOutputDir = "reports/figures"

// Config is the whole settings file.
type Config struct {
	Beam   BeamConfig   `yaml:"beam"`
	Style  StyleConfig  `yaml:"style"`
	Output OutputConfig `yaml:"output"`
}

// BeamConfig holds the span, loads, section and materials. FactoredLoad and
// SteelAreaRequired are derived when left unset.
type BeamConfig struct {
	Length   float64 `yaml:"length"`    // m
	DeadLoad float64 `yaml:"dead_load"` // kN/m
	LiveLoad float64 `yaml:"live_load"` // kN/m

	// FactoredLoad defaults to the governing gravity combination.
	FactoredLoad *float64 `yaml:"factored_load"`

	Width  float64 `yaml:"width"`  // mm
	Height float64 `yaml:"height"` // mm

	// SteelAreaRequired defaults to a singly reinforced design for the
	// midspan moment.
	SteelAreaRequired *float64 `yaml:"steel_area_required"`

	// BarDiameter and Cover take the beam package defaults only when
	// unset; an explicit zero is kept and left to validation.
	BarDiameter *float64 `yaml:"bar_diameter"`
	Cover       *float64 `yaml:"cover"`

	Fc float64 `yaml:"fc"` // MPa
	Fy float64 `yaml:"fy"` // MPa
}

// StyleConfig overrides parts of diagram.DefaultStyle. Colours accept a
// hex triplet ("#1f4e79") or an SVG colour name ("steelblue").
type StyleConfig struct {
	DPI         int               `yaml:"dpi"`
	Samples     int               `yaml:"samples"`
	FontVariant string            `yaml:"font"`
	Colors      map[string]string `yaml:"colors"`
}

// OutputConfig selects where figures are written.
type OutputConfig struct {
	Dir string `yaml:"dir"`

	// Unique writes each run into its own job subdirectory.
	Unique bool `yaml:"unique"`
}

// Default returns the calc-sheet example beam.
func Default() *Config {
	as := 1800.0
	bar := 25.0
	cover := beam.DefaultCover

	return &Config{
		Beam: BeamConfig{
			Length:            8,
			DeadLoad:          20,
			LiveLoad:          25,
			Width:             350,
			Height:            600,
			SteelAreaRequired: &as,
			BarDiameter:       &bar,
			Cover:             &cover,
			Fc:                25,
			Fy:                420,
		},
		Output: OutputConfig{
			Dir: DefaultOutputDir,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault returns Default when path is empty.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Loads returns the unfactored line loads.
func (b BeamConfig) Loads() aci.LineLoads {
	return aci.LineLoads{Dead: b.DeadLoad, Live: b.LiveLoad}
}

// Governing returns the factored load and the combination it came from. An
// explicit factored_load is returned as is, with an empty combination.
func (b BeamConfig) Governing() (float64, aci.LoadCombination) {
	if b.FactoredLoad != nil {
		return *b.FactoredLoad, aci.LoadCombination{}
	}
	return aci.GoverningLoad(b.Loads(), aci.GravityCombinations)
}

// Parameters resolves the derived values and returns the beam record.
func (b BeamConfig) Parameters() (beam.Parameters, error) {
	wu, _ := b.Governing()
	p := beam.Parameters{
		Length:       b.Length,
		DeadLoad:     b.DeadLoad,
		LiveLoad:     b.LiveLoad,
		FactoredLoad: wu,
		Width:        b.Width,
		Height:       b.Height,
		BarDiameter:  beam.DefaultBarDiameter,
		Cover:        beam.DefaultCover,
	}
	if b.BarDiameter != nil {
		p.BarDiameter = *b.BarDiameter
	}
	if b.Cover != nil {
		p.Cover = *b.Cover
	}

	if err := p.ValidateGeometry(); err != nil {
		return beam.Parameters{}, err
	}
	if err := p.ValidateLoads(); err != nil {
		return beam.Parameters{}, err
	}

	if b.SteelAreaRequired != nil {
		p.SteelAreaRequired = *b.SteelAreaRequired
		return p, nil
	}

	as, err := beam.RequiredSteel(p, b.Fc, b.Fy)
	if err != nil {
		return beam.Parameters{}, fmt.Errorf("estimate steel area: %w", err)
	}
	p.SteelAreaRequired = as
	return p, nil
}

// Style applies the overrides to diagram.DefaultStyle.
func (s StyleConfig) Style() (diagram.Style, error) {
	st := diagram.DefaultStyle()
	if s.DPI < 0 {
		return st, fmt.Errorf("style.dpi must be positive, got %d", s.DPI)
	}
	if s.DPI > 0 {
		st = st.WithDPI(s.DPI)
	}
	if s.Samples > 0 {
		st = st.WithSamples(s.Samples)
	}

	switch s.FontVariant {
	case "":
	case "Serif", "Sans", "Mono":
		st.FontVariant = s.FontVariant
	default:
		return st, fmt.Errorf("style.font must be Serif, Sans or Mono, got %q", s.FontVariant)
	}

	for name, value := range s.Colors {
		c, err := ParseColor(value)
		if err != nil {
			return st, fmt.Errorf("style.colors.%s: %w", name, err)
		}
		switch name {
		case "blue":
			st.Palette.Blue = c
		case "red":
			st.Palette.Red = c
		case "green":
			st.Palette.Green = c
		case "gray":
			st.Palette.Gray = c
		case "light_blue":
			st.Palette.LightBlue = c
		case "dark_blue":
			st.Palette.DarkBlue = c
		default:
			return st, fmt.Errorf("unknown palette entry %q", name)
		}
	}
	return st, nil
}

// ParseColor reads "#rrggbb", "#rgb" or an SVG colour name.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}

	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return nil, fmt.Errorf("invalid colour %q", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return nil, fmt.Errorf("invalid colour %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid colour %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

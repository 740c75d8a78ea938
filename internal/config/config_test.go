package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/aminghali/structural-engineering-notebooks/internal/calcerr"
	"github.com/aminghali/structural-engineering-notebooks/internal/diagram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "beam.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultParameters(t *testing.T) {
	p, err := Default().Beam.Parameters()
	require.NoError(t, err)

	assert.Equal(t, 8.0, p.Length)
	assert.InDelta(t, 64.0, p.FactoredLoad, 1e-9)
	assert.Equal(t, 350.0, p.Width)
	assert.Equal(t, 600.0, p.Height)
	assert.Equal(t, 1800.0, p.SteelAreaRequired)
	assert.Equal(t, 25.0, p.BarDiameter)
	assert.Equal(t, 40.0, p.Cover)
	assert.Equal(t, DefaultOutputDir, Default().Output.Dir)
}

func TestGoverning(t *testing.T) {
	tests := []struct {
		name     string
		dead     float64
		live     float64
		wantWu   float64
		wantCode string
	}{
		{"live_governs", 20, 25, 64, "5.3.1b"},
		{"dead_only", 10, 0, 14, "5.3.1a"},
		{"light_live", 30, 2, 42, "5.3.1a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := BeamConfig{DeadLoad: tt.dead, LiveLoad: tt.live}
			wu, combo := b.Governing()
			assert.InDelta(t, tt.wantWu, wu, 1e-9)
			assert.Equal(t, tt.wantCode, combo.ID)
		})
	}
}

func TestGoverningExplicit(t *testing.T) {
	wu := 70.0
	got, combo := BeamConfig{DeadLoad: 20, LiveLoad: 25, FactoredLoad: &wu}.Governing()
	assert.Equal(t, 70.0, got)
	assert.Empty(t, combo.ID)
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
beam:
  length: 6
  factored_load: 50
  cover: 0
style:
  dpi: 150
  colors:
    red: "#ff0000"
    blue: navy
output:
  dir: out/figs
  unique: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 6.0, cfg.Beam.Length)
	assert.Equal(t, 20.0, cfg.Beam.DeadLoad, "untouched keys keep the default")
	require.NotNil(t, cfg.Beam.Cover)
	assert.Equal(t, 0.0, *cfg.Beam.Cover)
	assert.Equal(t, "out/figs", cfg.Output.Dir)
	assert.True(t, cfg.Output.Unique)

	p, err := cfg.Beam.Parameters()
	require.NoError(t, err)
	assert.Equal(t, 50.0, p.FactoredLoad)
	assert.Equal(t, 0.0, p.Cover)

	st, err := cfg.Style.Style()
	require.NoError(t, err)
	assert.Equal(t, 150, st.DPI)
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, st.Palette.Red)
	assert.Equal(t, color.RGBA{B: 0x80, A: 0xff}, st.Palette.Blue)
	assert.Equal(t, diagram.DefaultStyle().Palette.Green, st.Palette.Green)
}

func TestParametersBarDiameter(t *testing.T) {
	zero, sixteen := 0.0, 16.0
	tests := []struct {
		name  string
		bar   *float64
		want  float64
		valid bool
	}{
		{"unset_takes_default", nil, 20, true},
		{"explicit_kept", &sixteen, 16, true},
		{"explicit_zero_kept", &zero, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Beam.BarDiameter = tt.bar

			p, err := cfg.Beam.Parameters()
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.BarDiameter)

			err = p.Validate()
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			var ce *calcerr.Error
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, calcerr.KindInvalidInput, ce.Kind)
			assert.Equal(t, "bar_diameter", ce.Param)
		})
	}
}

func TestParametersEstimatesSteel(t *testing.T) {
	cfg := Default()
	cfg.Beam.SteelAreaRequired = nil

	p, err := cfg.Beam.Parameters()
	require.NoError(t, err)
	assert.InDelta(t, 2892, p.SteelAreaRequired, 5)
}

func TestParametersInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BeamConfig)
		kind   calcerr.Kind
	}{
		{"zero_length", func(b *BeamConfig) { b.Length = 0 }, calcerr.KindInvalidGeometry},
		{"negative_height", func(b *BeamConfig) { b.Height = -1 }, calcerr.KindInvalidGeometry},
		{"negative_live", func(b *BeamConfig) { b.LiveLoad = -5 }, calcerr.KindInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg.Beam)
			_, err := cfg.Beam.Parameters()
			require.Error(t, err)
			assert.Equal(t, tt.kind, calcerr.KindOf(err))
		})
	}
}

func TestParametersInadequateSection(t *testing.T) {
	cfg := Default()
	cfg.Beam.SteelAreaRequired = nil
	cfg.Beam.DeadLoad = 400

	_, err := cfg.Beam.Parameters()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "estimate steel area")
	assert.Contains(t, err.Error(), "inadequate")
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, err = Load(writeConfig(t, "beam: [1, 2"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoadOrDefaultEmptyPath(t *testing.T) {
	cfg, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestStyleErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  StyleConfig
	}{
		{"negative_dpi", StyleConfig{DPI: -1}},
		{"bad_font", StyleConfig{FontVariant: "Comic"}},
		{"bad_colour", StyleConfig{Colors: map[string]string{"red": "#12"}}},
		{"unknown_entry", StyleConfig{Colors: map[string]string{"purple": "#123456"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.cfg.Style()
			assert.Error(t, err)
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.Color
		ok   bool
	}{
		{"#1f4e79", color.RGBA{R: 0x1f, G: 0x4e, B: 0x79, A: 0xff}, true},
		{"#fff", color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, true},
		{"SteelBlue", color.RGBA{R: 0x46, G: 0x82, B: 0xb4, A: 0xff}, true},
		{"1f4e79", nil, false},
		{"#gggggg", nil, false},
		{"#12345", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if !tt.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

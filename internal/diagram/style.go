package diagram

import (
	"image/color"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Palette is the firm colour scheme used on every figure.
type Palette struct {
	Blue      color.Color // titles, shear diagram
	Red       color.Color // loads, moment diagram, bars
	Green     color.Color // dead load, zero points, cover marks
	Gray      color.Color // notes
	LightBlue color.Color // concrete fill
	DarkBlue  color.Color // emphasis
}

// Style carries every rendering setting. It is passed by value into each
// renderer; there is no package-level default that renderers read.
type Style struct {
	Palette Palette

	// FontVariant selects the Liberation family: "Serif", "Sans" or "Mono".
	FontVariant string
	TitleSize   vg.Length
	LabelSize   vg.Length
	TickSize    vg.Length
	NoteSize    vg.Length

	// DPI applies to the PNG raster only; the PDF is resolution independent.
	DPI int

	// Samples is the number of stations used to draw the force diagrams.
	// Peak values never depend on it.
	Samples int
}

// DefaultStyle returns the calc-sheet house style.
func DefaultStyle() Style {
	return Style{
		Palette: Palette{
			Blue:      color.RGBA{R: 0x1f, G: 0x4e, B: 0x79, A: 0xff},
			Red:       color.RGBA{R: 0xc5, G: 0x50, B: 0x4b, A: 0xff},
			Green:     color.RGBA{R: 0x4c, G: 0xaf, B: 0x50, A: 0xff},
			Gray:      color.RGBA{R: 0x42, G: 0x42, B: 0x42, A: 0xff},
			LightBlue: color.RGBA{R: 0xe3, G: 0xf2, B: 0xfd, A: 0xff},
			DarkBlue:  color.RGBA{R: 0x0d, G: 0x47, B: 0xa1, A: 0xff},
		},
		FontVariant: "Serif",
		TitleSize:   vg.Points(14),
		LabelSize:   vg.Points(12),
		TickSize:    vg.Points(10),
		NoteSize:    vg.Points(9),
		DPI:         300,
		Samples:     100,
	}
}

// WithDPI returns a copy of s rendering rasters at dpi.
func (s Style) WithDPI(dpi int) Style {
	s.DPI = dpi
	return s
}

// WithSamples returns a copy of s drawing force diagrams with n stations.
func (s Style) WithSamples(n int) Style {
	s.Samples = n
	return s
}

func (s Style) font(size vg.Length) font.Font {
	return font.Font{
		Typeface: "Liberation",
		Variant:  font.Variant(s.FontVariant),
		Size:     size,
	}
}

// newPlot creates a plot with the style's fonts, a coloured title and a
// light grid. Only the regular Liberation faces are embedded in the PDF.
func (s Style) newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()

	p.Title.Text = title
	p.Title.TextStyle.Font = s.font(s.TitleSize)
	p.Title.TextStyle.Color = s.Palette.Blue

	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.X.Label.TextStyle.Font = s.font(s.LabelSize)
	p.Y.Label.TextStyle.Font = s.font(s.LabelSize)
	p.X.Tick.Label.Font = s.font(s.TickSize)
	p.Y.Tick.Label.Font = s.font(s.TickSize)
	p.Legend.TextStyle.Font = s.font(s.TickSize)

	grid := plotter.NewGrid()
	grid.Vertical.Color = colornames.Lightgray
	grid.Horizontal.Color = colornames.Lightgray
	grid.Vertical.Width = vg.Points(0.5)
	grid.Horizontal.Width = vg.Points(0.5)
	p.Add(grid)

	return p
}

// withAlpha returns c with its alpha channel replaced.
func withAlpha(c color.Color, a uint8) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = a
	return n
}

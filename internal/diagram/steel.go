package diagram

import (
	"fmt"
	"image/color"
	"math"

	"github.com/aminghali/structural-engineering-notebooks/internal/calcerr"
	"github.com/aminghali/structural-engineering-notebooks/internal/rebar"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const opSteel = "steel_layout"

// RenderSteel lays out bottom bars for the required area and draws the
// section to scale, with cover and overall dimensions and a summary block.
// It returns the PDF path, the bar count and the provided area.
func RenderSteel(t Target, s Style, width, height, asRequired, barDiameter, cover float64) (path string, nBars int, asProvided float64, err error) {
	layout, err := rebar.NewLayout(width, height, asRequired, barDiameter, cover)
	if err != nil {
		return "", 0, 0, calcerr.Attribute(opSteel, err)
	}
	Logger().Debug("bar layout", "op", opSteel, "bars", layout.Count, "spacing", layout.Spacing, "as_provided", layout.AsProvided)

	f := figure{width: 10 * vg.Inch, height: 8 * vg.Inch}

	plt, err := sectionPlot(s, layout, float64(f.width)/float64(f.height))
	if err != nil {
		return "", 0, 0, calcerr.Attribute(opSteel, err)
	}
	f.rows = [][]*plot.Plot{{plt}}

	path, err = t.save(opSteel, SteelLayoutFile, f, s)
	if err != nil {
		return "", 0, 0, err
	}
	return path, layout.Count, layout.AsProvided, nil
}

// SteelInfo is the text block printed beside the section.
func SteelInfo(l *rebar.Layout) string {
	return fmt.Sprintf("Steel Layout Information:\n"+
		"Required As: %.0f mm²\n"+
		"Bar Size: #%gmm\n"+
		"Bar Area: %.1f mm²\n"+
		"Number of Bars: %d\n"+
		"Provided As: %.0f mm²\n"+
		"Cover: %gmm",
		l.AsRequired, l.BarDiameter, l.BarArea, l.Count, l.AsProvided, l.Cover)
}

func sectionPlot(s Style, l *rebar.Layout, ratio float64) (*plot.Plot, error) {
	b, h := l.Width, l.Height

	plt := s.newPlot(fmt.Sprintf("Reinforcement Steel Layout - %d#%gmm Bars", l.Count, l.BarDiameter),
		"Width (mm)", "Height (mm)")

	concrete, err := polygon(plotter.XYs{{X: 0, Y: 0}, {X: b, Y: 0}, {X: b, Y: h}, {X: 0, Y: h}},
		withAlpha(s.Palette.LightBlue, 180), color.Black, vg.Points(2))
	if err != nil {
		return nil, err
	}
	plt.Add(concrete)

	centers := make(plotter.XYs, len(l.Bars))
	names := make([]string, len(l.Bars))
	for i, bar := range l.Bars {
		centers[i] = plotter.XY{X: bar.X, Y: bar.Y}
		names[i] = fmt.Sprintf("#%d", int(l.BarDiameter))
	}
	plt.Add(&circles{Centers: centers, Radius: l.BarDiameter / 2, Color: withAlpha(s.Palette.Red, 204)})

	barLabels, err := plotter.NewLabels(plotter.XYLabels{XYs: centers, Labels: names})
	if err != nil {
		return nil, err
	}
	for i := range barLabels.TextStyle {
		barLabels.TextStyle[i].Font = s.font(vg.Points(7))
		barLabels.TextStyle[i].Color = color.White
		barLabels.TextStyle[i].XAlign = draw.XCenter
		barLabels.TextStyle[i].YAlign = draw.YCenter
	}
	plt.Add(barLabels)

	if err := coverMarks(plt, s, l); err != nil {
		return nil, err
	}
	if err := overallDimensions(plt, s, b, h); err != nil {
		return nil, err
	}

	info, err := label(s, b*1.05, h*0.7, SteelInfo(l), color.Black, s.TickSize, draw.XLeft, draw.YTop)
	if err != nil {
		return nil, err
	}
	plt.Add(info)

	xMin, xMax, yMin, yMax := fitAspect(-b*0.2, b*1.9, -h*0.25, h*1.1, ratio)
	plt.X.Min, plt.X.Max = xMin, xMax
	plt.Y.Min, plt.Y.Max = yMin, yMax

	return plt, nil
}

// coverMarks dimensions the cover at both ends of the bar row.
func coverMarks(plt *plot.Plot, s Style, l *rebar.Layout) error {
	y := l.Cover
	text := fmt.Sprintf("%gmm", l.Cover)
	plt.Add(
		dimension(plotter.XY{X: 0, Y: y}, plotter.XY{X: l.Cover, Y: y}, s.Palette.Green, vg.Points(1.5)),
		dimension(plotter.XY{X: l.Width - l.Cover, Y: y}, plotter.XY{X: l.Width, Y: y}, s.Palette.Green, vg.Points(1.5)),
	)

	left, err := label(s, l.Cover/2, y+l.BarDiameter, text, s.Palette.Green, s.NoteSize, draw.XCenter, draw.YBottom)
	if err != nil {
		return err
	}
	right, err := label(s, l.Width-l.Cover/2, y+l.BarDiameter, text, s.Palette.Green, s.NoteSize, draw.XCenter, draw.YBottom)
	if err != nil {
		return err
	}
	plt.Add(left, right)
	return nil
}

func overallDimensions(plt *plot.Plot, s Style, b, h float64) error {
	plt.Add(
		dimension(plotter.XY{X: 0, Y: -h * 0.1}, plotter.XY{X: b, Y: -h * 0.1}, color.Black, vg.Points(2)),
		dimension(plotter.XY{X: -b * 0.05, Y: 0}, plotter.XY{X: -b * 0.05, Y: h}, color.Black, vg.Points(2)),
	)

	across, err := label(s, b/2, -h*0.15, fmt.Sprintf("%gmm", b), color.Black, s.LabelSize, draw.XCenter, draw.YTop)
	if err != nil {
		return err
	}
	up, err := label(s, -b*0.1, h/2, fmt.Sprintf("%gmm", h), color.Black, s.LabelSize, draw.XCenter, draw.YBottom)
	if err != nil {
		return err
	}
	up.TextStyle[0].Rotation = math.Pi / 2
	plt.Add(across, up)
	return nil
}

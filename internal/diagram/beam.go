package diagram

import (
	"fmt"
	"image/color"

	"github.com/aminghali/structural-engineering-notebooks/internal/beam"
	"github.com/aminghali/structural-engineering-notebooks/internal/calcerr"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const opBeamDiagram = "beam_diagram"

// RenderBeam draws the beam elevation with its supports and the stacked
// service load diagram (dead load band with live load on top). It writes
// beam_diagram.png and beam_diagram.pdf into t and returns the PDF path.
func RenderBeam(t Target, s Style, length, deadLoad, liveLoad, width, height float64) (string, error) {
	p := beam.Parameters{Length: length, DeadLoad: deadLoad, LiveLoad: liveLoad, Width: width, Height: height}
	if err := p.ValidateGeometry(); err != nil {
		return "", calcerr.Attribute(opBeamDiagram, err)
	}
	if err := p.ValidateLoads(); err != nil {
		return "", calcerr.Attribute(opBeamDiagram, err)
	}

	f := figure{width: 12 * vg.Inch, height: 8 * vg.Inch}

	elevation, err := elevationPlot(s, p, float64(f.width)/float64(f.height/2))
	if err != nil {
		return "", calcerr.Attribute(opBeamDiagram, err)
	}
	loading, err := loadingPlot(s, p)
	if err != nil {
		return "", calcerr.Attribute(opBeamDiagram, err)
	}
	f.rows = [][]*plot.Plot{{elevation}, {loading}}

	return t.save(opBeamDiagram, BeamDiagramFile, f, s)
}

// elevationPlot draws the section depth to scale along the span, in metres.
func elevationPlot(s Style, p beam.Parameters, ratio float64) (*plot.Plot, error) {
	L := p.Length
	h := p.Height / 1000
	support := L * 0.05

	plt := s.newPlot("Beam Geometry and Support Conditions", "Length (m)", "Height (m)")

	body, err := polygon(plotter.XYs{{X: 0, Y: 0}, {X: L, Y: 0}, {X: L, Y: h}, {X: 0, Y: h}},
		withAlpha(s.Palette.LightBlue, 180), color.Black, vg.Points(2))
	if err != nil {
		return nil, err
	}
	plt.Add(body)
	plt.Legend.Add(fmt.Sprintf("Concrete Beam: %g×%g mm", p.Width, p.Height), body)

	pin, err := polygon(plotter.XYs{{X: 0, Y: 0}, {X: -support / 2, Y: -support}, {X: support / 2, Y: -support}},
		color.White, color.Black, vg.Points(2))
	if err != nil {
		return nil, err
	}
	roller, err := polygon(plotter.XYs{{X: L, Y: 0}, {X: L - support/2, Y: -support * 0.6}, {X: L + support/2, Y: -support * 0.6}},
		color.White, color.Black, vg.Points(2))
	if err != nil {
		return nil, err
	}
	wheels, err := markers(plotter.XYs{{X: L - support/4, Y: -support * 0.8}, {X: L + support/4, Y: -support * 0.8}},
		color.Black, vg.Points(3), draw.RingGlyph{})
	if err != nil {
		return nil, err
	}
	plt.Add(pin, roller, wheels)

	xMin, xMax, yMin, yMax := fitAspect(-L*0.1, L*1.1, -support*1.5, h*1.3, ratio)
	plt.X.Min, plt.X.Max = xMin, xMax
	plt.Y.Min, plt.Y.Max = yMin, yMax
	plt.Legend.Top = true

	return plt, nil
}

// loadingPlot stacks the live load band on top of the dead load band.
func loadingPlot(s Style, p beam.Parameters) (*plot.Plot, error) {
	L := p.Length
	wd, wt := p.DeadLoad, p.TotalLoad()

	plt := s.newPlot(fmt.Sprintf("Loading Diagram - Total: %.1f kN/m", wt), "Length (m)", "Load Intensity (kN/m)")

	dead, err := polygon(plotter.XYs{{X: 0, Y: 0}, {X: L, Y: 0}, {X: L, Y: wd}, {X: 0, Y: wd}},
		withAlpha(s.Palette.Green, 153), nil, 0)
	if err != nil {
		return nil, err
	}
	live, err := polygon(plotter.XYs{{X: 0, Y: wd}, {X: L, Y: wd}, {X: L, Y: wt}, {X: 0, Y: wt}},
		withAlpha(s.Palette.Red, 153), nil, 0)
	if err != nil {
		return nil, err
	}
	girder, err := line(plotter.XYs{{X: 0, Y: 0}, {X: L, Y: 0}}, color.Black, vg.Points(3))
	if err != nil {
		return nil, err
	}
	plt.Add(dead, live, girder)
	plt.Legend.Add(fmt.Sprintf("Dead Load: %.1f kN/m", p.DeadLoad), dead)
	plt.Legend.Add(fmt.Sprintf("Live Load: %.1f kN/m", p.LiveLoad), live)
	plt.Legend.Add("Beam", girder)

	yMax := wt * 1.4
	if wt == 0 {
		yMax = 1
	}
	plt.Add(downArrows(L*0.1, L*0.9, wt+(yMax-wt)*0.8, wt, 8, s.Palette.Red))

	plt.X.Min, plt.X.Max = -L*0.05, L*1.05
	plt.Y.Min, plt.Y.Max = 0, yMax
	plt.Legend.Top = true

	return plt, nil
}

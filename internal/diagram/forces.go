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

const opForces = "bmd_sfd"

// MomentNote is printed on every bending moment diagram. Report text that
// describes the figure relies on this convention.
const MomentNote = "Note: Positive moments shown downward\n(structural engineering convention)"

// RenderForces solves a simply-supported span under the factored uniform
// load and draws the loaded beam, the shear force diagram and the bending
// moment diagram. Shear is plotted with its natural sign; moment is drawn
// positive downward. The returned peaks are the closed-form wL²/8 and wL/2,
// not values read back from the plotted samples.
func RenderForces(t Target, s Style, length, factoredLoad float64) (path string, mMax, vMax float64, err error) {
	span, err := beam.NewSimpleSpan(length, factoredLoad)
	if err != nil {
		return "", 0, 0, calcerr.Attribute(opForces, err)
	}
	mMax, vMax = span.MaxMoment(), span.MaxShear()

	stations := span.Sample(s.Samples)
	Logger().Debug("sampled span", "op", opForces, "stations", len(stations), "m_max", mMax, "v_max", vMax)

	schematic, err := loadedBeamPlot(s, span)
	if err != nil {
		return "", 0, 0, calcerr.Attribute(opForces, err)
	}
	sfd, err := shearPlot(s, span, stations)
	if err != nil {
		return "", 0, 0, calcerr.Attribute(opForces, err)
	}
	bmd, err := momentPlot(s, span, stations)
	if err != nil {
		return "", 0, 0, calcerr.Attribute(opForces, err)
	}

	f := figure{
		rows:   [][]*plot.Plot{{schematic}, {sfd}, {bmd}},
		width:  12 * vg.Inch,
		height: 10 * vg.Inch,
	}
	path, err = t.save(opForces, ForcesFile, f, s)
	if err != nil {
		return "", 0, 0, err
	}
	return path, mMax, vMax, nil
}

// shearXYs returns V(x) with its physical sign.
func shearXYs(stations []beam.Station) plotter.XYs {
	xys := make(plotter.XYs, len(stations))
	for i, st := range stations {
		xys[i] = plotter.XY{X: st.X, Y: st.Shear}
	}
	return xys
}

// momentXYs returns the drawn moment ordinates. Sagging moment is positive
// in the solver and drawn below the axis, so the sign is inverted here and
// only here.
func momentXYs(stations []beam.Station) plotter.XYs {
	xys := make(plotter.XYs, len(stations))
	for i, st := range stations {
		xys[i] = plotter.XY{X: st.X, Y: -st.Moment}
	}
	return xys
}

// closeToAxis turns a diagram curve into a polygon bounded by y = 0.
func closeToAxis(xys plotter.XYs) plotter.XYs {
	out := make(plotter.XYs, 0, len(xys)+2)
	out = append(out, plotter.XY{X: xys[0].X, Y: 0})
	out = append(out, xys...)
	out = append(out, plotter.XY{X: xys[len(xys)-1].X, Y: 0})
	return out
}

// supports adds a filled pin at x=0 and a roller at x=L, both hanging
// below y=0 with the given size.
func supports(plt *plot.Plot, L, size float64) error {
	pin, err := polygon(plotter.XYs{{X: 0, Y: 0}, {X: -size, Y: -size * 1.5}, {X: size, Y: -size * 1.5}},
		color.Black, color.Black, vg.Points(2))
	if err != nil {
		return err
	}
	roller, err := polygon(plotter.XYs{{X: L, Y: 0}, {X: L - size, Y: -size * 1.5}, {X: L + size, Y: -size * 1.5}},
		color.White, color.Black, vg.Points(2))
	if err != nil {
		return err
	}
	wheel, err := markers(plotter.XYs{{X: L, Y: -size * 1.9}}, color.Black, vg.Points(3), draw.RingGlyph{})
	if err != nil {
		return err
	}
	plt.Add(pin, roller, wheel)
	return nil
}

func loadedBeamPlot(s Style, span beam.SimpleSpan) (*plot.Plot, error) {
	L := span.Length
	size := L * 0.03

	plt := s.newPlot("Simply Supported Beam with Uniform Load", "", "Load")

	girder, err := line(plotter.XYs{{X: 0, Y: 0}, {X: L, Y: 0}}, color.Black, vg.Points(4))
	if err != nil {
		return nil, err
	}
	plt.Add(girder)
	plt.Legend.Add("Simply Supported Beam", girder)

	if err := supports(plt, L, size); err != nil {
		return nil, err
	}
	plt.Add(downArrows(L*0.15, L*0.85, L*0.1, 0, 6, s.Palette.Red))

	w, err := label(s, L/2, L*0.11, fmt.Sprintf("w = %.1f kN/m", span.Load), s.Palette.Red, s.LabelSize, draw.XCenter, draw.YBottom)
	if err != nil {
		return nil, err
	}
	length, err := label(s, L/2, -size*2.5, fmt.Sprintf("L = %.1f m", L), color.Black, s.LabelSize, draw.XCenter, draw.YTop)
	if err != nil {
		return nil, err
	}
	plt.Add(w, length)

	plt.X.Min, plt.X.Max = -L*0.1, L*1.1
	plt.Y.Min, plt.Y.Max = -size*5, L*0.16
	plt.Legend.Top = true

	return plt, nil
}

func shearPlot(s Style, span beam.SimpleSpan, stations []beam.Station) (*plot.Plot, error) {
	L, vMax := span.Length, span.MaxShear()

	plt := s.newPlot("Shear Force Diagram", "", "Shear Force (kN)")

	xys := shearXYs(stations)
	fill, err := polygon(closeToAxis(xys), withAlpha(s.Palette.Blue, 77), nil, 0)
	if err != nil {
		return nil, err
	}
	curve, err := line(xys, s.Palette.Blue, vg.Points(2.5))
	if err != nil {
		return nil, err
	}
	plt.Add(fill, curve)

	if err := axisAndMidspan(plt, L); err != nil {
		return nil, err
	}

	ends, err := markers(plotter.XYs{{X: 0, Y: vMax}, {X: L, Y: -vMax}}, s.Palette.Red, vg.Points(4), draw.CircleGlyph{})
	if err != nil {
		return nil, err
	}
	zero, err := markers(plotter.XYs{{X: L / 2, Y: 0}}, s.Palette.Green, vg.Points(4), draw.CircleGlyph{})
	if err != nil {
		return nil, err
	}
	plt.Add(ends, zero)

	left, err := label(s, 0.05*L, vMax*0.8, fmt.Sprintf("+%.1f kN", vMax), s.Palette.Red, s.LabelSize, draw.XLeft, draw.YCenter)
	if err != nil {
		return nil, err
	}
	right, err := label(s, 0.95*L, -vMax*0.8, fmt.Sprintf("-%.1f kN", vMax), s.Palette.Red, s.LabelSize, draw.XRight, draw.YCenter)
	if err != nil {
		return nil, err
	}
	mid, err := label(s, L/2, vMax*0.15, "0", s.Palette.Green, s.LabelSize, draw.XCenter, draw.YBottom)
	if err != nil {
		return nil, err
	}
	plt.Add(left, right, mid)

	plt.X.Min, plt.X.Max = 0, L
	if vMax > 0 {
		plt.Y.Min, plt.Y.Max = -vMax*1.15, vMax*1.15
	}

	return plt, nil
}

func momentPlot(s Style, span beam.SimpleSpan, stations []beam.Station) (*plot.Plot, error) {
	L, mMax := span.Length, span.MaxMoment()

	plt := s.newPlot("Bending Moment Diagram (Positive Downward - Structural Convention)",
		"Distance from Left Support (m)", "Bending Moment (kN·m)")

	xys := momentXYs(stations)
	fill, err := polygon(closeToAxis(xys), withAlpha(s.Palette.Red, 77), nil, 0)
	if err != nil {
		return nil, err
	}
	curve, err := line(xys, s.Palette.Red, vg.Points(2.5))
	if err != nil {
		return nil, err
	}
	plt.Add(fill, curve)

	if err := axisAndMidspan(plt, L); err != nil {
		return nil, err
	}

	peak, err := markers(plotter.XYs{{X: L / 2, Y: -mMax}}, s.Palette.Red, vg.Points(5), draw.CircleGlyph{})
	if err != nil {
		return nil, err
	}
	zeros, err := markers(plotter.XYs{{X: 0, Y: 0}, {X: L, Y: 0}}, s.Palette.Green, vg.Points(3), draw.CircleGlyph{})
	if err != nil {
		return nil, err
	}
	plt.Add(peak, zeros)

	peakLabel, err := label(s, L/2, -mMax*1.1, fmt.Sprintf("M_max = %.1f kN·m\n(at midspan)", mMax),
		s.Palette.Red, s.LabelSize, draw.XCenter, draw.YTop)
	if err != nil {
		return nil, err
	}
	note, err := label(s, 0.02*L, -mMax*0.1, MomentNote, s.Palette.Gray, s.NoteSize, draw.XLeft, draw.YTop)
	if err != nil {
		return nil, err
	}
	plt.Add(peakLabel, note)

	plt.X.Min, plt.X.Max = 0, L
	if mMax > 0 {
		plt.Y.Min, plt.Y.Max = -mMax*1.5, mMax*0.15
	}

	return plt, nil
}

// axisAndMidspan draws the zero line and a dashed line at midspan.
func axisAndMidspan(plt *plot.Plot, L float64) error {
	axis, err := line(plotter.XYs{{X: 0, Y: 0}, {X: L, Y: 0}}, color.Black, vg.Points(1))
	if err != nil {
		return err
	}
	midspan := &verticalLine{
		X: L / 2,
		LineStyle: draw.LineStyle{
			Color:  color.Gray{Y: 128},
			Width:  vg.Points(1),
			Dashes: []vg.Length{vg.Points(5), vg.Points(3)},
		},
	}
	plt.Add(axis, midspan)
	return nil
}

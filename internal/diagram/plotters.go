package diagram

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// arrows draws straight arrows between data points. Heads are sized in
// page units so they look the same at any data scale.
type arrows struct {
	Segments  [][2]plotter.XY // tail, tip
	BothEnds  bool
	LineStyle draw.LineStyle
	Head      vg.Length
}

func (a *arrows) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	for _, s := range a.Segments {
		tail := vg.Point{X: trX(s[0].X), Y: trY(s[0].Y)}
		tip := vg.Point{X: trX(s[1].X), Y: trY(s[1].Y)}

		c.StrokeLine2(a.LineStyle, tail.X, tail.Y, tip.X, tip.Y)
		a.head(&c, tail, tip)
		if a.BothEnds {
			a.head(&c, tip, tail)
		}
	}
}

func (a *arrows) head(c *draw.Canvas, from, tip vg.Point) {
	dx, dy := tip.X-from.X, tip.Y-from.Y
	n := vg.Length(math.Hypot(float64(dx), float64(dy)))
	if n == 0 {
		return
	}
	ux, uy := dx/n, dy/n

	base := vg.Point{X: tip.X - 2*a.Head*ux, Y: tip.Y - 2*a.Head*uy}
	c.FillPolygon(a.LineStyle.Color, []vg.Point{
		tip,
		{X: base.X - a.Head*uy, Y: base.Y + a.Head*ux},
		{X: base.X + a.Head*uy, Y: base.Y - a.Head*ux},
	})
}

// downArrows returns n evenly spaced vertical arrows pointing from y=top
// down to y=tip, between x0 and x1.
func downArrows(x0, x1, top, tip float64, n int, clr color.Color) *arrows {
	a := &arrows{
		LineStyle: draw.LineStyle{Color: clr, Width: vg.Points(1.5)},
		Head:      vg.Points(3),
	}
	for i := 0; i < n; i++ {
		x := x0
		if n > 1 {
			x = x0 + float64(i)*(x1-x0)/float64(n-1)
		}
		a.Segments = append(a.Segments, [2]plotter.XY{{X: x, Y: top}, {X: x, Y: tip}})
	}
	return a
}

// dimension returns a double-headed dimension line.
func dimension(from, to plotter.XY, clr color.Color, width vg.Length) *arrows {
	return &arrows{
		Segments:  [][2]plotter.XY{{from, to}},
		BothEnds:  true,
		LineStyle: draw.LineStyle{Color: clr, Width: width},
		Head:      vg.Points(2.5),
	}
}

// circles fills circles whose radius is given in data units along x.
type circles struct {
	Centers plotter.XYs
	Radius  float64
	Color   color.Color
}

func (cs *circles) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	c.SetColor(cs.Color)
	for _, pt := range cs.Centers {
		ctr := vg.Point{X: trX(pt.X), Y: trY(pt.Y)}
		r := trX(pt.X+cs.Radius) - ctr.X

		var path vg.Path
		path.Move(vg.Point{X: ctr.X + r, Y: ctr.Y})
		path.Arc(ctr, r, 0, 2*math.Pi)
		path.Close()
		c.Fill(path)
	}
}

// verticalLine spans the full height of the data area at X.
type verticalLine struct {
	X         float64
	LineStyle draw.LineStyle
}

func (v *verticalLine) Plot(c draw.Canvas, p *plot.Plot) {
	trX, _ := p.Transforms(&c)
	x := trX(v.X)
	c.StrokeLine2(v.LineStyle, x, c.Min.Y, x, c.Max.Y)
}

// line builds a solid polyline.
func line(xys plotter.XYs, clr color.Color, width vg.Length) (*plotter.Line, error) {
	l, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	l.LineStyle.Color = clr
	l.LineStyle.Width = width
	return l, nil
}

// polygon builds a filled polygon with an optional outline.
func polygon(xys plotter.XYs, fill, outline color.Color, width vg.Length) (*plotter.Polygon, error) {
	poly, err := plotter.NewPolygon(xys)
	if err != nil {
		return nil, err
	}
	poly.Color = fill
	if outline == nil {
		poly.LineStyle.Width = 0
	} else {
		poly.LineStyle.Color = outline
		poly.LineStyle.Width = width
	}
	return poly, nil
}

// markers places round glyphs of one colour.
func markers(xys plotter.XYs, clr color.Color, radius vg.Length, shape draw.GlyphDrawer) (*plotter.Scatter, error) {
	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}
	sc.GlyphStyle.Color = clr
	sc.GlyphStyle.Radius = radius
	sc.GlyphStyle.Shape = shape
	return sc, nil
}

// label places one text item. xAlign and yAlign use the draw package's
// alignment constants.
func label(s Style, x, y float64, text string, clr color.Color, size vg.Length, xAlign draw.XAlignment, yAlign draw.YAlignment) (*plotter.Labels, error) {
	l, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: x, Y: y}},
		Labels: []string{text},
	})
	if err != nil {
		return nil, err
	}
	l.TextStyle[0].Font = s.font(size)
	l.TextStyle[0].Color = clr
	l.TextStyle[0].XAlign = xAlign
	l.TextStyle[0].YAlign = yAlign
	return l, nil
}

// fitAspect widens either the x or the y range about its centre so that one
// data unit spans the same page length on both axes, given the width/height
// ratio of the data area.
func fitAspect(xMin, xMax, yMin, yMax, ratio float64) (float64, float64, float64, float64) {
	xSpan, ySpan := xMax-xMin, yMax-yMin
	if xSpan/ySpan > ratio {
		grow := xSpan/ratio - ySpan
		return xMin, xMax, yMin - grow/2, yMax + grow/2
	}
	grow := ySpan*ratio - xSpan
	return xMin - grow/2, xMax + grow/2, yMin, yMax
}

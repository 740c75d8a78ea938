package diagram

import (
	"github.com/aminghali/structural-engineering-notebooks/internal/beam"
	"github.com/aminghali/structural-engineering-notebooks/internal/calcerr"
)

// Artifact keys of Results.Paths.
const (
	KeyBeamDiagram = "beam_diagram"
	KeyForces      = "bmd_sfd_diagram"
	KeySteelLayout = "steel_layout"
)

const opAll = "render_all"

// Results collects the artifacts and derived values of one RenderAll call.
type Results struct {
	Paths      map[string]string // artifact key to PDF path
	MMax       float64           // kN·m
	VMax       float64           // kN
	NBars      int
	AsProvided float64 // mm²
}

// RenderAll draws the beam diagram, the force diagrams and the steel layout
// for p into t. Every parameter is checked before the first figure is drawn,
// so invalid input writes nothing. p is used as given; a zero Cover is a
// valid cover and a zero BarDiameter is rejected. If a later figure fails,
// the figures already written by this call are removed.
func RenderAll(t Target, s Style, p beam.Parameters) (res *Results, err error) {
	if err := p.Validate(); err != nil {
		return nil, calcerr.Attribute(opAll, err)
	}

	log := Logger().With("op", opAll, "dir", t.Dir)
	log.Debug("rendering figures", "length", p.Length, "factored_load", p.FactoredLoad)

	var written []string
	defer func() {
		if err != nil {
			t.discard(log, written...)
		}
	}()
	keep := func(name string) {
		written = append(written, t.Path(name+".png"), t.Path(name+".pdf"))
	}

	res = &Results{Paths: make(map[string]string, 3)}

	path, err := RenderBeam(t, s, p.Length, p.DeadLoad, p.LiveLoad, p.Width, p.Height)
	if err != nil {
		return nil, err
	}
	keep(BeamDiagramFile)
	res.Paths[KeyBeamDiagram] = path

	path, res.MMax, res.VMax, err = RenderForces(t, s, p.Length, p.FactoredLoad)
	if err != nil {
		return nil, err
	}
	keep(ForcesFile)
	res.Paths[KeyForces] = path

	path, res.NBars, res.AsProvided, err = RenderSteel(t, s, p.Width, p.Height, p.SteelAreaRequired, p.BarDiameter, p.Cover)
	if err != nil {
		return nil, err
	}
	res.Paths[KeySteelLayout] = path

	log.Info("figures complete", "m_max", res.MMax, "v_max", res.VMax, "bars", res.NBars)
	return res, nil
}

package diagram

import (
	"bytes"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/aminghali/structural-engineering-notebooks/internal/calcerr"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/google/uuid"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
)

// Conventional base names of the written figures. Document templates look
// for these names, so they must not change.
const (
	BeamDiagramFile = "beam_diagram"
	ForcesFile      = "bmd_sfd"
	SteelLayoutFile = "steel_layout"
)

// Target is the directory a render call writes into. Each call receives
// its target explicitly; callers that render concurrently must give each
// call its own directory (see ForJob).
type Target struct {
	FS  billy.Filesystem
	Dir string
}

// NewTarget returns a target on the local filesystem. Relative directories
// are resolved against the working directory.
func NewTarget(dir string) (Target, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return Target{}, calcerr.IOFailure("target", dir, err)
	}
	return Target{FS: osfs.New("/"), Dir: abs}, nil
}

// ForJob returns a target under a fresh per-job subdirectory and the job ID.
func (t Target) ForJob() (Target, string) {
	id := uuid.NewString()
	return Target{FS: t.FS, Dir: t.FS.Join(t.Dir, id)}, id
}

// Path returns the location of name inside the target.
func (t Target) Path(name string) string {
	return t.FS.Join(t.Dir, name)
}

// figure is a grid of plots drawn onto one page.
type figure struct {
	rows   [][]*plot.Plot
	width  vg.Length
	height vg.Length
}

func (f figure) draw(c vg.CanvasSizer) {
	dc := draw.New(c)
	tiles := draw.Tiles{
		Rows:      len(f.rows),
		Cols:      len(f.rows[0]),
		PadTop:    vg.Points(6),
		PadBottom: vg.Points(6),
		PadLeft:   vg.Points(6),
		PadRight:  vg.Points(12),
		PadY:      vg.Points(18),
		PadX:      vg.Points(18),
	}

	canvases := plot.Align(f.rows, tiles, dc)
	for j, row := range f.rows {
		for i, p := range row {
			if p != nil {
				p.Draw(canvases[j][i])
			}
		}
	}
}

func (f figure) png(dpi int) ([]byte, error) {
	c := vgimg.NewWith(vgimg.UseWH(f.width, f.height), vgimg.UseDPI(dpi))
	f.draw(c)

	var buf bytes.Buffer
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func (f figure) pdf() ([]byte, error) {
	c := vgpdf.New(f.width, f.height)
	f.draw(c)

	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encode pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// save writes name.png and name.pdf into the target and returns the PDF
// path. Both images are encoded before anything is written; if the second
// write fails the first file is removed, so a failed call leaves no output.
func (t Target) save(op, name string, f figure, s Style) (string, error) {
	log := Logger().With("op", op)

	pngPath := t.Path(name + ".png")
	pdfPath := t.Path(name + ".pdf")

	raster, err := f.png(s.DPI)
	if err != nil {
		return "", calcerr.IOFailure(op, pngPath, err)
	}
	vector, err := f.pdf()
	if err != nil {
		return "", calcerr.IOFailure(op, pdfPath, err)
	}
	log.Debug("encoded figure", "png_bytes", len(raster), "pdf_bytes", len(vector), "dpi", s.DPI)

	if err := t.FS.MkdirAll(t.Dir, 0o755); err != nil {
		return "", calcerr.IOFailure(op, t.Dir, err)
	}
	if err := util.WriteFile(t.FS, pngPath, raster, 0o644); err != nil {
		t.discard(log, pngPath)
		return "", calcerr.IOFailure(op, pngPath, err)
	}
	if err := util.WriteFile(t.FS, pdfPath, vector, 0o644); err != nil {
		t.discard(log, pngPath, pdfPath)
		return "", calcerr.IOFailure(op, pdfPath, err)
	}

	log.Info("figure written", "png", pngPath, "pdf", pdfPath)
	return pdfPath, nil
}

func (t Target) discard(log *slog.Logger, paths ...string) {
	for _, p := range paths {
		if _, err := t.FS.Lstat(p); err != nil {
			continue
		}
		if err := t.FS.Remove(p); err != nil {
			log.Warn("remove partial output", "path", p, "error", err)
		}
	}
}

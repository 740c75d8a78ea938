package diagram

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aminghali/structural-engineering-notebooks/internal/beam"
	"github.com/aminghali/structural-engineering-notebooks/internal/calcerr"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTarget() Target {
	return Target{FS: memfs.New(), Dir: "/out"}
}

func testStyle() Style {
	return DefaultStyle().WithDPI(40).WithSamples(40)
}

func calcSheet() beam.Parameters {
	return beam.Parameters{
		Length:            8,
		DeadLoad:          20,
		LiveLoad:          25,
		FactoredLoad:      64,
		Width:             350,
		Height:            600,
		SteelAreaRequired: 1800,
		BarDiameter:       25,
		Cover:             40,
	}
}

func assertWritten(t *testing.T, tg Target, name string) {
	t.Helper()
	for _, ext := range []string{".png", ".pdf"} {
		fi, err := tg.FS.Stat(tg.Path(name + ext))
		require.NoError(t, err, name+ext)
		assert.Positive(t, fi.Size(), name+ext)
	}
}

func assertNothingWritten(t *testing.T, tg Target) {
	t.Helper()
	entries, err := tg.FS.ReadDir(tg.Dir)
	if err == nil {
		assert.Empty(t, entries)
	}
}

func TestRenderBeam(t *testing.T) {
	tg := testTarget()
	path, err := RenderBeam(tg, testStyle(), 8, 20, 25, 350, 600)
	require.NoError(t, err)

	assert.Equal(t, tg.Path("beam_diagram.pdf"), path)
	assertWritten(t, tg, BeamDiagramFile)
}

func TestRenderBeamZeroLoad(t *testing.T) {
	tg := testTarget()
	_, err := RenderBeam(tg, testStyle(), 5, 0, 0, 300, 500)
	require.NoError(t, err)
	assertWritten(t, tg, BeamDiagramFile)
}

func TestRenderBeamRejects(t *testing.T) {
	tests := []struct {
		name                     string
		length, dead, live, b, h float64
		kind                     calcerr.Kind
		param                    string
	}{
		{"zero_length", 0, 20, 25, 350, 600, calcerr.KindInvalidGeometry, "length"},
		{"negative_width", 8, 20, 25, -350, 600, calcerr.KindInvalidGeometry, "width"},
		{"zero_height", 8, 20, 25, 350, 0, calcerr.KindInvalidGeometry, "height"},
		{"negative_dead", 8, -1, 25, 350, 600, calcerr.KindInvalidInput, "dead_load"},
		{"negative_live", 8, 20, -5, 350, 600, calcerr.KindInvalidInput, "live_load"},
		{"infinite_length", math.Inf(1), 20, 25, 350, 600, calcerr.KindInvalidGeometry, "length"},
		{"nan_dead", 8, math.NaN(), 25, 350, 600, calcerr.KindInvalidInput, "dead_load"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tg := testTarget()
			_, err := RenderBeam(tg, testStyle(), tt.length, tt.dead, tt.live, tt.b, tt.h)
			require.Error(t, err)

			var ce *calcerr.Error
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, tt.kind, ce.Kind)
			assert.Equal(t, tt.param, ce.Param)
			assert.Equal(t, opBeamDiagram, ce.Op)
			assertNothingWritten(t, tg)
		})
	}
}

func TestRenderForcesScenario(t *testing.T) {
	tg := testTarget()
	path, mMax, vMax, err := RenderForces(tg, testStyle(), 8, 64)
	require.NoError(t, err)

	assert.Equal(t, tg.Path("bmd_sfd.pdf"), path)
	assert.InDelta(t, 512.0, mMax, 1e-9)
	assert.InDelta(t, 256.0, vMax, 1e-9)
	assertWritten(t, tg, ForcesFile)
}

func TestRenderForcesPeaksIgnoreSampling(t *testing.T) {
	for _, n := range []int{2, 3, 7, 250} {
		_, mMax, vMax, err := RenderForces(testTarget(), testStyle().WithSamples(n), 7.3, 41)
		require.NoError(t, err)
		assert.InDelta(t, 273.11125, mMax, 1e-9, "samples=%d", n)
		assert.InDelta(t, 149.65, vMax, 1e-9, "samples=%d", n)
	}
}

func TestRenderForcesInvalidLength(t *testing.T) {
	for _, L := range []float64{0, -3, math.NaN(), math.Inf(1)} {
		tg := testTarget()
		_, _, _, err := RenderForces(tg, testStyle(), L, 64)
		require.Error(t, err, "length=%g", L)
		assert.True(t, errors.Is(err, calcerr.ErrInvalidGeometry))

		var ce *calcerr.Error
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, opForces, ce.Op)
		assert.Equal(t, "length", ce.Param)
		assertNothingWritten(t, tg)
	}
}

func TestRenderForcesZeroLoad(t *testing.T) {
	tg := testTarget()
	_, mMax, vMax, err := RenderForces(tg, testStyle(), 6, 0)
	require.NoError(t, err)

	assert.Zero(t, mMax)
	assert.Zero(t, vMax)
	assertWritten(t, tg, ForcesFile)
}

func TestRenderForcesNegativeLoad(t *testing.T) {
	tg := testTarget()
	_, _, _, err := RenderForces(tg, testStyle(), 8, -1)
	require.Error(t, err)
	assert.Equal(t, calcerr.KindInvalidInput, calcerr.KindOf(err))
	assertNothingWritten(t, tg)
}

func TestMomentDrawnPositiveDownward(t *testing.T) {
	span, err := beam.NewSimpleSpan(8, 64)
	require.NoError(t, err)
	stations := span.Sample(9)

	moment := momentXYs(stations)
	shear := shearXYs(stations)
	for i, st := range stations {
		assert.Equal(t, -st.Moment, moment[i].Y)
		assert.Equal(t, st.Shear, shear[i].Y)
		assert.LessOrEqual(t, moment[i].Y, 0.0)
	}
	assert.InDelta(t, -512.0, moment[4].Y, 1e-9)
	assert.InDelta(t, 256.0, shear[0].Y, 1e-9)
	assert.InDelta(t, -256.0, shear[8].Y, 1e-9)

	// The solver keeps the physical sign.
	assert.Positive(t, span.Moment(4))
}

func TestCloseToAxis(t *testing.T) {
	poly := closeToAxis(momentXYs([]beam.Station{{X: 0}, {X: 1, Moment: 2}, {X: 2}}))
	require.Len(t, poly, 5)
	assert.Equal(t, 0.0, poly[0].Y)
	assert.Equal(t, 0.0, poly[4].Y)
	assert.Equal(t, 2.0, poly[4].X)
}

func TestRenderSteelScenario(t *testing.T) {
	tg := testTarget()
	path, n, provided, err := RenderSteel(tg, testStyle(), 350, 600, 1800, 25, 40)
	require.NoError(t, err)

	assert.Equal(t, tg.Path("steel_layout.pdf"), path)
	assert.Equal(t, 4, n)
	assert.InDelta(t, 1963.5, provided, 0.05)
	assertWritten(t, tg, SteelLayoutFile)
}

func TestRenderSteelSingleBar(t *testing.T) {
	_, n, provided, err := RenderSteel(testTarget(), testStyle(), 300, 500, 200, 16, 40)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.InDelta(t, 201.06, provided, 0.01)
}

func TestRenderSteelRejects(t *testing.T) {
	tests := []struct {
		name               string
		b, h, as, d, cover float64
		kind               calcerr.Kind
	}{
		{"zero_width", 0, 600, 1800, 25, 40, calcerr.KindInvalidGeometry},
		{"zero_height", 350, 0, 1800, 25, 40, calcerr.KindInvalidGeometry},
		{"zero_area", 350, 600, 0, 25, 40, calcerr.KindInvalidInput},
		{"negative_area", 350, 600, -10, 25, 40, calcerr.KindInvalidInput},
		{"zero_bar", 350, 600, 1800, 0, 40, calcerr.KindInvalidInput},
		{"negative_cover", 350, 600, 1800, 25, -1, calcerr.KindInvalidInput},
		{"cover_too_large", 350, 600, 1800, 25, 175, calcerr.KindInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tg := testTarget()
			_, _, _, err := RenderSteel(tg, testStyle(), tt.b, tt.h, tt.as, tt.d, tt.cover)
			require.Error(t, err)
			assert.Equal(t, tt.kind, calcerr.KindOf(err))
			assert.True(t, strings.HasPrefix(err.Error(), opSteel+": "))
			assertNothingWritten(t, tg)
		})
	}
}

func TestRenderAll(t *testing.T) {
	tg := testTarget()
	res, err := RenderAll(tg, testStyle(), calcSheet())
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		KeyBeamDiagram: tg.Path("beam_diagram.pdf"),
		KeyForces:      tg.Path("bmd_sfd.pdf"),
		KeySteelLayout: tg.Path("steel_layout.pdf"),
	}, res.Paths)
	assert.InDelta(t, 512.0, res.MMax, 1e-9)
	assert.InDelta(t, 256.0, res.VMax, 1e-9)
	assert.Equal(t, 4, res.NBars)
	assert.InDelta(t, 1963.5, res.AsProvided, 0.05)

	for _, name := range []string{BeamDiagramFile, ForcesFile, SteelLayoutFile} {
		assertWritten(t, tg, name)
	}
}

func TestRenderAllKeepsZeroCover(t *testing.T) {
	p := calcSheet()
	p.Cover = 0

	all := testTarget()
	_, err := RenderAll(all, testStyle(), p)
	require.NoError(t, err)

	steelPNG := func(tg Target) []byte {
		t.Helper()
		data, err := util.ReadFile(tg.FS, tg.Path(SteelLayoutFile+".png"))
		require.NoError(t, err)
		return data
	}

	bare, covered := testTarget(), testTarget()
	_, _, _, err = RenderSteel(bare, testStyle(), p.Width, p.Height, p.SteelAreaRequired, p.BarDiameter, 0)
	require.NoError(t, err)
	_, _, _, err = RenderSteel(covered, testStyle(), p.Width, p.Height, p.SteelAreaRequired, p.BarDiameter, beam.DefaultCover)
	require.NoError(t, err)

	assert.Equal(t, steelPNG(bare), steelPNG(all))
	assert.NotEqual(t, steelPNG(covered), steelPNG(all))
}

func TestRenderAllValidatesFirst(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*beam.Parameters)
		kind   calcerr.Kind
	}{
		{"length", func(p *beam.Parameters) { p.Length = 0 }, calcerr.KindInvalidGeometry},
		{"factored", func(p *beam.Parameters) { p.FactoredLoad = -64 }, calcerr.KindInvalidInput},
		{"steel", func(p *beam.Parameters) { p.SteelAreaRequired = 0 }, calcerr.KindInvalidInput},
		{"zero_bar", func(p *beam.Parameters) { p.BarDiameter = 0 }, calcerr.KindInvalidInput},
		{"nan_width", func(p *beam.Parameters) { p.Width = math.NaN() }, calcerr.KindInvalidGeometry},
		{"huge_steel", func(p *beam.Parameters) { p.SteelAreaRequired = 1e30 }, calcerr.KindInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := calcSheet()
			tt.mutate(&p)

			tg := testTarget()
			res, err := RenderAll(tg, testStyle(), p)
			require.Error(t, err)
			assert.Nil(t, res)
			assert.Equal(t, tt.kind, calcerr.KindOf(err))
			assertNothingWritten(t, tg)
		})
	}
}

// failingFS refuses to create files with the given suffix.
type failingFS struct {
	billy.Filesystem
	suffix   string
	noMkdirs bool
}

func (f failingFS) OpenFile(name string, flag int, perm os.FileMode) (billy.File, error) {
	if strings.HasSuffix(name, f.suffix) {
		return nil, errors.New("disk full")
	}
	return f.Filesystem.OpenFile(name, flag, perm)
}

func (f failingFS) Create(name string) (billy.File, error) {
	return f.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o666)
}

func (f failingFS) MkdirAll(name string, perm os.FileMode) error {
	if f.noMkdirs {
		return errors.New("read-only file system")
	}
	return f.Filesystem.MkdirAll(name, perm)
}

func TestSaveRemovesPartialOutput(t *testing.T) {
	mem := memfs.New()
	tg := Target{FS: failingFS{Filesystem: mem, suffix: ".pdf"}, Dir: "/out"}

	_, _, _, err := RenderForces(tg, testStyle(), 8, 64)
	require.Error(t, err)
	assert.True(t, errors.Is(err, calcerr.ErrIOFailure))
	assert.Contains(t, err.Error(), "disk full")

	_, statErr := mem.Stat("/out/bmd_sfd.png")
	assert.True(t, os.IsNotExist(statErr), "png left behind: %v", statErr)
}

func TestRenderAllRemovesEarlierFigures(t *testing.T) {
	mem := memfs.New()
	tg := Target{FS: failingFS{Filesystem: mem, suffix: SteelLayoutFile + ".pdf"}, Dir: "/out"}

	res, err := RenderAll(tg, testStyle(), calcSheet())
	require.Error(t, err)
	assert.Nil(t, res)
	assert.Equal(t, calcerr.KindIOFailure, calcerr.KindOf(err))

	entries, err := mem.ReadDir("/out")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveUnwritableDirectory(t *testing.T) {
	tg := Target{FS: failingFS{Filesystem: memfs.New(), noMkdirs: true, suffix: "\x00"}, Dir: "/out"}

	_, err := RenderBeam(tg, testStyle(), 8, 20, 25, 350, 600)
	require.Error(t, err)

	var ce *calcerr.Error
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, calcerr.KindIOFailure, ce.Kind)
	assert.Equal(t, opBeamDiagram, ce.Op)
}

func TestNewTargetOnDisk(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports", "figures")

	tg, err := NewTarget(dir)
	require.NoError(t, err)

	path, err := RenderBeam(tg, testStyle(), 6, 10, 12, 300, 500)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "beam_diagram.pdf"), path)

	for _, name := range []string{"beam_diagram.png", "beam_diagram.pdf"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err)
	}
}

func TestNewTargetBlockedByFile(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	tg, err := NewTarget(filepath.Join(blocker, "sub"))
	require.NoError(t, err)

	_, _, _, err = RenderSteel(tg, testStyle(), 350, 600, 1800, 25, 40)
	require.Error(t, err)
	assert.Equal(t, calcerr.KindIOFailure, calcerr.KindOf(err))
}

func TestForJob(t *testing.T) {
	base := testTarget()
	a, idA := base.ForJob()
	b, idB := base.ForJob()

	assert.NotEqual(t, idA, idB)
	assert.Equal(t, "/out/"+idA, a.Dir)
	assert.NotEqual(t, a.Dir, b.Dir)

	_, err := RenderBeam(a, testStyle(), 8, 20, 25, 350, 600)
	require.NoError(t, err)
	_, err = RenderBeam(b, testStyle(), 4, 5, 5, 250, 400)
	require.NoError(t, err)

	assertWritten(t, a, BeamDiagramFile)
	assertWritten(t, b, BeamDiagramFile)
}

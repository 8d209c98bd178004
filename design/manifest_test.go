// Package design_test - manifest writer: file layout, formats, round-trips,
// collaborator invocation, failure surfacing.
package design_test

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lhsdesign/design"
)

// buildScenario returns the 4-point reference design over ranges (0,10),(1,2).
func buildScenario(t *testing.T) design.Design {
	t.Helper()
	opts := design.DefaultBuildOptions(design.Main)
	opts.Points = 4
	opts.Seed = 42

	d, err := design.BuildWithSpace(pbpb, twoParamSpace(t), opts)
	require.NoError(t, err)

	return d
}

// readLines reads a manifest and splits it into non-empty lines.
func readLines(t *testing.T, path string) []string {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err, "manifest %s must exist", path)

	return strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
}

// TestWriter_Write_Layout checks artifact paths, headers, and line counts for
// the reference scenario: a 5-line point file and a 3-line range file.
func TestWriter_Write_Layout(t *testing.T) {
	root := t.TempDir()
	d := buildScenario(t)

	w := design.Writer{Root: root, Physics: design.DefaultPhysics()}
	require.NoError(t, w.Write(d))

	// Per-design output directory for the collaborator (idempotent creation).
	info, err := os.Stat(filepath.Join(root, "main", "PbPb-2760"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	require.NoError(t, w.Write(d), "rewriting must be idempotent")

	points := readLines(t, filepath.Join(root, "design_points_main_PbPb-2760.dat"))
	require.Len(t, points, 5, "header + one row per point")
	assert.Equal(t, "idx,a,b", points[0])
	for i, line := range points[1:] {
		fields := strings.Split(line, ",")
		require.Len(t, fields, 3)
		assert.Equal(t, strconv.Itoa(i), fields[0], "ids keep generation order")
	}

	ranges := readLines(t, filepath.Join(root, "design_ranges_main_PbPb-2760.dat"))
	require.Len(t, ranges, 3, "header + one row per sampled parameter")
	assert.Equal(t, "param,min,max", ranges[0])
	assert.Equal(t, "a,0,10", ranges[1])
	assert.Equal(t, "b,1,2", ranges[2])
}

// TestWriter_RangeRoundTrip checks that awkward range endpoints survive the
// write-parse cycle exactly.
func TestWriter_RangeRoundTrip(t *testing.T) {
	root := t.TempDir()

	min, max := 0.0002, 0.06 // fourth-power style endpoints with long decimals
	space, err := design.NewCustomSpace([]design.ParamSpec{
		mustSpec(t, "zeta_area", min, max),
		mustSpec(t, "asymm", -0.8, 0.8),
	}, nil)
	require.NoError(t, err)

	opts := design.DefaultBuildOptions(design.Validation)
	opts.Points = 3
	d, err := design.BuildWithSpace(pbpb, space, opts)
	require.NoError(t, err)

	w := design.Writer{Root: root, Physics: design.DefaultPhysics()}
	require.NoError(t, w.Write(d))

	lines := readLines(t, filepath.Join(root, "design_ranges_validation_PbPb-2760.dat"))
	require.Len(t, lines, 3)

	for i, want := range []design.Range{{min, max}, {-0.8, 0.8}} {
		fields := strings.Split(lines[i+1], ",")
		require.Len(t, fields, 3)

		gotMin, perr := strconv.ParseFloat(fields[1], 64)
		require.NoError(t, perr)
		gotMax, perr := strconv.ParseFloat(fields[2], 64)
		require.NoError(t, perr)

		assert.Equal(t, want.Min, gotMin, "row %d min must round-trip exactly", i+1)
		assert.Equal(t, want.Max, gotMax, "row %d max must round-trip exactly", i+1)
	}
}

// TestWriter_PointValuesRoundTrip checks that every written value parses back
// to the design's exact scaled value, in space column order.
func TestWriter_PointValuesRoundTrip(t *testing.T) {
	root := t.TempDir()
	d := buildScenario(t)

	w := design.Writer{Root: root, Physics: design.DefaultPhysics()}
	require.NoError(t, w.Write(d))

	lines := readLines(t, filepath.Join(root, "design_points_main_PbPb-2760.dat"))
	keys := strings.Split(lines[0], ",")[1:]

	for i, line := range lines[1:] {
		fields := strings.Split(line, ",")[1:]
		require.Len(t, fields, len(keys))
		for j, k := range keys {
			got, perr := strconv.ParseFloat(fields[j], 64)
			require.NoError(t, perr)
			assert.Equal(t, d.Points[i].Values[k], got, "point %d key %s", i, k)
		}
	}
}

// TestWriter_FlooredRanges checks that the range manifest carries the
// floor-adjusted sampling bounds.
func TestWriter_FlooredRanges(t *testing.T) {
	root := t.TempDir()

	space, err := design.NewCustomSpace([]design.ParamSpec{
		mustSpec(t, "zetas_width", 0, 0.1).WithFloor(1e-4),
	}, nil)
	require.NoError(t, err)

	opts := design.DefaultBuildOptions(design.Main)
	opts.Points = 2
	d, err := design.BuildWithSpace(pbpb, space, opts)
	require.NoError(t, err)

	w := design.Writer{Root: root, Physics: design.DefaultPhysics()}
	require.NoError(t, w.Write(d))

	lines := readLines(t, filepath.Join(root, "design_points_main_PbPb-2760.dat"))
	require.Len(t, lines, 3)
	ranges := readLines(t, filepath.Join(root, "design_ranges_main_PbPb-2760.dat"))
	assert.Equal(t, "zetas_width,0.0001,0.1", ranges[1])
}

// captureInputs is a test double for the external module-input collaborator.
type captureInputs struct {
	dirs   []string
	ids    []string
	metas  []design.SystemMeta
	failOn string
}

func (c *captureInputs) WriteModuleInputs(dir, pointID string, values design.Values, meta design.SystemMeta) error {
	if pointID == c.failOn {
		return os.ErrPermission
	}
	c.dirs = append(c.dirs, dir)
	c.ids = append(c.ids, pointID)
	c.metas = append(c.metas, meta)
	_ = values

	return nil
}

// TestWriter_Collaborator checks that an attached ModuleInputWriter receives
// one call per point with the resolved metadata, and that its failures
// surface.
func TestWriter_Collaborator(t *testing.T) {
	root := t.TempDir()
	d := buildScenario(t)

	sink := &captureInputs{}
	w := design.Writer{Root: root, Physics: design.DefaultPhysics(), Inputs: sink}
	require.NoError(t, w.Write(d))

	require.Len(t, sink.ids, 4)
	assert.Equal(t, []string{"0", "1", "2", "3"}, sink.ids)
	wantDir := filepath.Join(root, "main", "PbPb-2760")
	for i, dir := range sink.dirs {
		assert.Equal(t, wantDir, dir)
		assert.Equal(t, 6.4, sink.metas[i].CrossSection)
	}

	w.Inputs = &captureInputs{failOn: "2"}
	err := w.Write(d)
	assert.ErrorIs(t, err, os.ErrPermission, "collaborator failures must surface")
}

// TestWriter_IOFailure checks that an unwritable root surfaces an error with
// path context instead of silently truncating.
func TestWriter_IOFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	w := design.Writer{Root: blocker, Physics: design.DefaultPhysics()}
	err := w.Write(buildScenario(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not-a-dir", "error must carry path context")
}

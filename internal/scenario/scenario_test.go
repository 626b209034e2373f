// SPDX-License-Identifier: MIT

package scenario_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mathrobo/cmtm"
	"github.com/katalvlaran/mathrobo/internal/scenario"
	"github.com/katalvlaran/mathrobo/matrix"
	"github.com/katalvlaran/mathrobo/se3"
	"github.com/katalvlaran/mathrobo/so3"
)

const armScenario = `
dimension = 6
derivatives = [[0, 0, 1, 0.1, 0, 0], [0, 0, 0, 0, 0, 0.5]]

[[frames]]
name = "shoulder"
axis = [0, 0, 1]
angle = 1.5707963267948966
translation = [0, 0, 0.3]

[[frames]]
name = "elbow"
quaternion = [1, 0, 0, 0]
translation = [0.4, 0, 0]
`

func mustParse(t *testing.T, src string) *scenario.File {
	t.Helper()
	f, err := scenario.Parse([]byte(src))
	require.NoError(t, err)

	return f
}

func TestParse_Arm(t *testing.T) {
	f := mustParse(t, armScenario)
	assert.Equal(t, 6, f.Dimension)
	require.Len(t, f.Frames, 2)
	assert.Equal(t, "shoulder", f.Frames[0].Name)
	require.NotNil(t, f.Frames[0].Angle)
	assert.InDelta(t, math.Pi/2, *f.Frames[0].Angle, 1e-15)
	assert.Equal(t, []float64{0.4, 0, 0}, f.Frames[1].Translation)
	assert.Len(t, f.Derivatives, 2)
}

func TestParse_Errors(t *testing.T) {
	_, err := scenario.Parse([]byte("dimension = = 3"))
	require.ErrorIs(t, err, scenario.ErrParse)
	assert.Contains(t, err.Error(), "line 1")

	_, err = scenario.Parse([]byte("dimension = 3\nspeed = 2\n"))
	require.ErrorIs(t, err, scenario.ErrParse)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arm.toml")
	require.NoError(t, os.WriteFile(path, []byte(armScenario), 0o600))

	f, err := scenario.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, f.Dimension)

	_, err = scenario.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolve_Arm(t *testing.T) {
	r, err := scenario.Resolve(mustParse(t, armScenario), nil)
	require.NoError(t, err)
	assert.Equal(t, 6, r.Dimension)
	assert.Equal(t, 3, r.Order())

	want := se3.FromAxisAngleTranslation([3]float64{0, 0, 1}, math.Pi/2, [3]float64{0, 0, 0.3}).
		Compose(se3.FromParts(so3.Identity(), [3]float64{0.4, 0, 0}))
	assert.True(t, r.Transform.ApproxEqual(want, 1e-12))

	// the elbow's x offset is rotated onto y by the shoulder
	p := r.Transform.Apply([3]float64{})
	assert.InDelta(t, 0, p[0], 1e-12)
	assert.InDelta(t, 0.4, p[1], 1e-12)
	assert.InDelta(t, 0.3, p[2], 1e-12)

	bm, err := r.BlockMatrix()
	require.NoError(t, err)
	assert.Equal(t, 18, bm.Rows())

	bm2, err := r.BlockMatrix(cmtm.WithOrder(2))
	require.NoError(t, err)
	assert.Equal(t, 12, bm2.Cols())

	_, err = r.BlockMatrix(cmtm.WithOrder(4))
	require.ErrorIs(t, err, cmtm.ErrOrderExceeded)
}

func TestResolve_ApplyMatchesAdjoint(t *testing.T) {
	r, err := scenario.Resolve(mustParse(t, armScenario), nil)
	require.NoError(t, err)

	twist := []float64{0.1, -0.2, 0.3, 1, 2, 3}
	got, err := r.Apply(twist)
	require.NoError(t, err)

	want, err := matrix.MatVec(r.Transform.AdjointDense(), twist)
	require.NoError(t, err)
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-12, "component %d", i)
	}

	_, err = r.Apply([]float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestResolve_RotationalIgnoresTranslation(t *testing.T) {
	src := `
dimension = 3
derivatives = [[1, 0, 0]]

[[frames]]
name = "yaw"
euler = [0, 0, 1.5707963267948966]
translation = [5, 5, 5]
`
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	r, err := scenario.Resolve(mustParse(t, src), logger)
	require.NoError(t, err)
	assert.Equal(t, 3, r.Dimension)
	assert.Equal(t, 2, r.Order())
	assert.Contains(t, buf.String(), "translation ignored")
	assert.Contains(t, buf.String(), "resolved frame")

	got, err := r.Apply([]float64{1, 0, 0})
	require.NoError(t, err)
	assert.InDelta(t, 0, got[0], 1e-12)
	assert.InDelta(t, 1, got[1], 1e-12)
	assert.InDelta(t, 0, got[2], 1e-12)
}

func TestResolve_RotationForms(t *testing.T) {
	quarter := so3.FromAxisAngle([3]float64{1, 0, 0}, math.Pi/2)
	cases := []struct {
		name  string
		frame string
	}{
		{"axis-angle", "axis = [1, 0, 0]\nangle = 1.5707963267948966"},
		{"quaternion", "quaternion = [0.7071067811865476, 0.7071067811865476, 0, 0]"},
		{"euler", "euler = [1.5707963267948966, 0, 0]"},
		{"rotation-vector", "rotation_vector = [1.5707963267948966, 0, 0]"},
		{"matrix", "matrix = [[1, 0, 0], [0, 0, -1], [0, 1, 0]]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := "dimension = 3\n[[frames]]\n" + tc.frame + "\n"
			r, err := scenario.Resolve(mustParse(t, src), nil)
			require.NoError(t, err)
			assert.True(t, r.Transform.Rotation().ApproxEqual(quarter, 1e-9))
		})
	}
}

func TestResolve_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"dimension", "dimension = 4", cmtm.ErrUnsupportedDimension},
		{"ambiguous", "dimension = 3\n[[frames]]\neuler = [0, 0, 0]\nquaternion = [1, 0, 0, 0]", scenario.ErrAmbiguousRotation},
		{"missing angle", "dimension = 3\n[[frames]]\naxis = [0, 0, 1]", scenario.ErrMissingAngle},
		{"short axis", "dimension = 3\n[[frames]]\naxis = [0, 1]\nangle = 1.0", scenario.ErrBadLength},
		{"short quaternion", "dimension = 3\n[[frames]]\nquaternion = [1, 0, 0]", scenario.ErrBadLength},
		{"matrix rows", "dimension = 3\n[[frames]]\nmatrix = [[1, 0, 0], [0, 1, 0]]", scenario.ErrBadLength},
		{"not a rotation", "dimension = 3\n[[frames]]\nmatrix = [[2, 0, 0], [0, 1, 0], [0, 0, 1]]", so3.ErrNotRotation},
		{"translation", "dimension = 6\n[[frames]]\ntranslation = [1, 2]", scenario.ErrBadLength},
		{"derivative 3", "dimension = 3\nderivatives = [[1, 2, 3, 4, 5, 6]]", scenario.ErrBadLength},
		{"derivative 6", "dimension = 6\nderivatives = [[1, 2, 3]]", scenario.ErrBadLength},
		{"negative tolerance", "dimension = 3\ntolerance = -1e-6", scenario.ErrBadTolerance},
		{"nan tolerance", "dimension = 3\ntolerance = nan", scenario.ErrBadTolerance},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scenario.Resolve(mustParse(t, tc.src), nil)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestResolve_EmptyChainIsIdentity(t *testing.T) {
	r, err := scenario.Resolve(mustParse(t, "dimension = 6"), nil)
	require.NoError(t, err)
	assert.True(t, r.Transform.ApproxEqual(se3.Identity(), 0))
	assert.Equal(t, 1, r.Order())
}

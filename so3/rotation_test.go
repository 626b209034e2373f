package so3_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mathrobo/matrix"
	"github.com/katalvlaran/mathrobo/so3"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const tol = 1e-12

// fixtures returns a few well-conditioned rotations used across tests.
func fixtures() []so3.Rotation {
	return []so3.Rotation{
		so3.Identity(),
		so3.FromAxisAngle([3]float64{0, 0, 1}, math.Pi/2),
		so3.FromAxisAngle([3]float64{1, 2, 3}, 0.7),
		so3.FromAxisAngle([3]float64{-1, 0.5, 0.2}, 2.9),
		so3.FromEulerAngles(0.1, -0.4, 1.3),
	}
}

func requireVec3(t *testing.T, want, got [3]float64, delta float64) {
	t.Helper()
	require.InDeltaSlice(t, want[:], got[:], delta)
}

func requireRot(t *testing.T, want, got so3.Rotation, delta float64) {
	t.Helper()
	require.Truef(t, want.ApproxEqual(got, delta), "want %v, got %v", want.Matrix(), got.Matrix())
}

func TestApplyQuarterTurnZ(t *testing.T) {
	r := so3.FromAxisAngle([3]float64{0, 0, 1}, math.Pi/2)
	requireVec3(t, [3]float64{0, 1, 0}, r.Apply([3]float64{1, 0, 0}), tol)
}

func TestDegenerateFallbacks(t *testing.T) {
	requireRot(t, so3.Identity(), so3.FromAxisAngle([3]float64{}, 1.5), 0)
	requireRot(t, so3.Identity(), so3.FromQuaternion([4]float64{}), 0)

	// Unnormalised axes and quaternions are accepted.
	requireRot(t,
		so3.FromAxisAngle([3]float64{0, 0, 1}, 0.3),
		so3.FromAxisAngle([3]float64{0, 0, 42}, 0.3), tol)
	requireRot(t,
		so3.FromQuaternion([4]float64{1, 0, 0, 1}),
		so3.FromQuaternion([4]float64{5, 0, 0, 5}), tol)
}

func TestGroupLaws(t *testing.T) {
	x := [3]float64{0.3, -1.2, 2.5}
	for _, a := range fixtures() {
		requireRot(t, a, a.Compose(so3.Identity()), 0)
		requireRot(t, so3.Identity(), a.Compose(a.Inverse()), tol)
		require.Equal(t, a.Inverse().Matrix(), a.InverseMatrix())

		for _, b := range fixtures() {
			requireVec3(t, a.Apply(b.Apply(x)), a.Compose(b).Apply(x), 1e-12)
		}
	}
}

func TestComposeOrder(t *testing.T) {
	// b is applied first: rotate x about z to y, then about x to z.
	a := so3.FromAxisAngle([3]float64{1, 0, 0}, math.Pi/2)
	b := so3.FromAxisAngle([3]float64{0, 0, 1}, math.Pi/2)
	requireVec3(t, [3]float64{0, 0, 1}, a.Compose(b).Apply([3]float64{1, 0, 0}), tol)
}

func TestAdjointIsRotation(t *testing.T) {
	w := [3]float64{0.4, 0.1, -0.9}
	for _, r := range fixtures() {
		require.Equal(t, r.Matrix(), r.Adjoint())

		// R·[w]×·Rᵀ = [R·w]×
		lhs := so3.FromMatrix(r.Matrix()).Compose(so3.FromMatrix(so3.Hat(w))).Compose(r.Inverse())
		requireRot(t, so3.FromMatrix(so3.Hat(r.Apply(w))), lhs, 1e-12)
	}
}

func TestFromMatrixChecked(t *testing.T) {
	for _, r := range fixtures() {
		got, err := so3.FromMatrixChecked(r.Matrix(), 1e-9)
		require.NoError(t, err)
		requireRot(t, r, got, 0)
	}

	// Reflection: orthonormal but det = -1.
	_, err := so3.FromMatrixChecked([3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, -1}}, 1e-9)
	require.ErrorIs(t, err, so3.ErrNotRotation)

	// Scaled matrix: not orthonormal.
	_, err = so3.FromMatrixChecked([3][3]float64{{2, 0, 0}, {0, 1, 0}, {0, 0, 1}}, 1e-9)
	require.ErrorIs(t, err, so3.ErrNotRotation)

	// Non-finite input reports both sentinels.
	_, err = so3.FromMatrixChecked([3][3]float64{{math.NaN(), 0, 0}, {0, 1, 0}, {0, 0, 1}}, 1e-9)
	require.ErrorIs(t, err, so3.ErrNotRotation)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDenseExport(t *testing.T) {
	r := fixtures()[2]
	d := r.Dense()
	m := r.Matrix()
	require.Equal(t, [][]float64{m[0][:], m[1][:], m[2][:]}, d.RawRows())

	// Mutating the export leaves the rotation untouched.
	require.NoError(t, d.Set(0, 0, 99))
	require.Equal(t, m, r.Matrix())
}

func TestOrthonormalOutputs(t *testing.T) {
	for _, r := range fixtures() {
		_, err := so3.FromMatrixChecked(r.Matrix(), 1e-12)
		require.NoError(t, err)
	}
	_, err := so3.FromMatrixChecked(so3.FromQuaternion([4]float64{0.3, -0.2, 0.9, 0.1}).Matrix(), 1e-12)
	require.NoError(t, err)
}

// TestExpMatchesGonum checks the closed form against a Padé matrix exponential.
func TestExpMatchesGonum(t *testing.T) {
	for _, w := range [][3]float64{
		{0, 0, 0},
		{1e-14, 0, 0},
		{0.1, 0.2, 0.3},
		{1, -2, 0.5},
		{0, math.Pi, 0},
	} {
		h := so3.Hat(w)
		var oracle mat.Dense
		oracle.Exp(mat.NewDense(3, 3, []float64{
			h[0][0], h[0][1], h[0][2],
			h[1][0], h[1][1], h[1][2],
			h[2][0], h[2][1], h[2][2],
		}))

		got := so3.Exp(w, 1)
		var i, j int
		for i = 0; i < 3; i++ {
			for j = 0; j < 3; j++ {
				require.InDelta(t, oracle.At(i, j), got[i][j], 1e-10, "w=%v (%d,%d)", w, i, j)
			}
		}
	}
}

func TestExpScale(t *testing.T) {
	w := [3]float64{0.2, -0.1, 0.4}
	requireRot(t,
		so3.FromMatrix(so3.Exp([3]float64{0.5, -0.25, 1}, 1)),
		so3.FromMatrix(so3.Exp(w, 2.5)), 1e-14)
}

// SPDX-License-Identifier: MIT

package scenario

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/mathrobo/cmtm"
	"github.com/katalvlaran/mathrobo/lie"
	"github.com/katalvlaran/mathrobo/matrix"
	"github.com/katalvlaran/mathrobo/se3"
	"github.com/katalvlaran/mathrobo/so3"
)

// DefaultTolerance bounds the orthonormality check on matrix frames when the
// file does not set one.
const DefaultTolerance = 1e-9

// Resolved is a scenario turned into numbers: the composed transform and the
// CMTM of the scenario's dimension.
type Resolved struct {
	Dimension  int
	Transform  se3.Transform
	rotational cmtm.Rotational
	spatial    cmtm.Spatial
}

// Resolve validates f, composes its frames and builds the CMTM.
// A nil logger discards output.
//
// Errors:
//   - cmtm.ErrUnsupportedDimension for a dimension other than 3 or 6.
//   - ErrBadTolerance for a negative or non-finite tolerance; zero selects
//     DefaultTolerance.
//   - ErrBadLength, ErrAmbiguousRotation, ErrMissingAngle, so3.ErrNotRotation.
func Resolve(f *File, logger *log.Logger) (*Resolved, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if err := cmtm.ValidateDimension(f.Dimension); err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	tol := f.Tolerance
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		return nil, fmt.Errorf("tolerance %g: %w", tol, ErrBadTolerance)
	}
	if tol == 0 {
		tol = DefaultTolerance
	}

	frames := make([]se3.Transform, len(f.Frames))
	for i, fr := range f.Frames {
		g, err := fr.transform(tol)
		if err != nil {
			return nil, fmt.Errorf("frame %d (%s): %w", i, fr.Name, err)
		}
		if f.Dimension == cmtm.DimRotational && len(fr.Translation) > 0 {
			logger.Warn("translation ignored for rotational scenario", "frame", i, "name", fr.Name)
		}
		axis, angle := g.Rotation().AxisAngle()
		logger.Debug("resolved frame", "index", i, "name", fr.Name,
			"axis", axis, "angle", angle, "translation", g.Translation())
		frames[i] = g
	}
	chain := lie.Chain(se3.Identity(), frames...)

	r := &Resolved{Dimension: f.Dimension, Transform: chain}
	switch f.Dimension {
	case cmtm.DimRotational:
		ds, err := vectors3(f.Derivatives)
		if err != nil {
			return nil, fmt.Errorf("derivatives: %w", err)
		}
		r.rotational = cmtm.FromSO3(chain.Rotation(), ds...)
	case cmtm.DimSpatial:
		ds, err := vectors6(f.Derivatives)
		if err != nil {
			return nil, fmt.Errorf("derivatives: %w", err)
		}
		r.spatial = cmtm.FromSE3(chain, ds...)
	}
	logger.Debug("resolved scenario", "dimension", r.Dimension, "frames", len(frames), "order", r.Order())

	return r, nil
}

// Order returns the order of the resolved CMTM.
func (r *Resolved) Order() int {
	if r.Dimension == cmtm.DimRotational {
		return r.rotational.Order()
	}

	return r.spatial.Order()
}

// BlockMatrix forwards to the CMTM of the scenario's dimension.
func (r *Resolved) BlockMatrix(opts ...cmtm.Option) (*matrix.Dense, error) {
	if r.Dimension == cmtm.DimRotational {
		return r.rotational.BlockMatrix(opts...)
	}

	return r.spatial.BlockMatrix(opts...)
}

// Apply applies the CMTM base to v, whose length must equal Dimension.
func (r *Resolved) Apply(v []float64) ([]float64, error) {
	if err := matrix.ValidateVecLen(v, r.Dimension); err != nil {
		return nil, fmt.Errorf("apply: %w", err)
	}
	if r.Dimension == cmtm.DimRotational {
		out := cmtm.ApplyOmega(r.rotational, [3]float64(v))

		return out[:], nil
	}
	out := cmtm.ApplyTwist(r.spatial, [6]float64(v))

	return out[:], nil
}

// transform builds the frame's rigid transform.
func (fr Frame) transform(tol float64) (se3.Transform, error) {
	rot, err := fr.rotation(tol)
	if err != nil {
		return se3.Transform{}, err
	}
	var t [3]float64
	if len(fr.Translation) > 0 {
		if t, err = vec3("translation", fr.Translation); err != nil {
			return se3.Transform{}, err
		}
	}

	return se3.FromParts(rot, t), nil
}

// rotation picks the single rotation form set on the frame.
func (fr Frame) rotation(tol float64) (so3.Rotation, error) {
	set := 0
	for _, present := range []bool{
		len(fr.Axis) > 0 || fr.Angle != nil,
		len(fr.Quaternion) > 0,
		len(fr.Euler) > 0,
		len(fr.RotationVector) > 0,
		len(fr.Matrix) > 0,
	} {
		if present {
			set++
		}
	}
	if set > 1 {
		return so3.Rotation{}, ErrAmbiguousRotation
	}

	switch {
	case len(fr.Axis) > 0 || fr.Angle != nil:
		if fr.Angle == nil {
			return so3.Rotation{}, ErrMissingAngle
		}
		axis := [3]float64{0, 0, 1}
		if len(fr.Axis) > 0 {
			var err error
			if axis, err = vec3("axis", fr.Axis); err != nil {
				return so3.Rotation{}, err
			}
		}

		return so3.FromAxisAngle(axis, *fr.Angle), nil
	case len(fr.Quaternion) > 0:
		if len(fr.Quaternion) != 4 {
			return so3.Rotation{}, fmt.Errorf("quaternion has %d values, want 4: %w", len(fr.Quaternion), ErrBadLength)
		}

		return so3.FromQuaternion([4]float64(fr.Quaternion)), nil
	case len(fr.Euler) > 0:
		e, err := vec3("euler", fr.Euler)
		if err != nil {
			return so3.Rotation{}, err
		}

		return so3.FromEulerAngles(e[0], e[1], e[2]), nil
	case len(fr.RotationVector) > 0:
		w, err := vec3("rotation_vector", fr.RotationVector)
		if err != nil {
			return so3.Rotation{}, err
		}

		return so3.FromRotationVector(w), nil
	case len(fr.Matrix) > 0:
		if len(fr.Matrix) != 3 {
			return so3.Rotation{}, fmt.Errorf("matrix has %d rows, want 3: %w", len(fr.Matrix), ErrBadLength)
		}
		var m [3][3]float64
		var err error
		for i, row := range fr.Matrix {
			if m[i], err = vec3(fmt.Sprintf("matrix row %d", i), row); err != nil {
				return so3.Rotation{}, err
			}
		}

		return so3.FromMatrixChecked(m, tol)
	}

	return so3.Identity(), nil
}

func vec3(field string, v []float64) ([3]float64, error) {
	if len(v) != 3 {
		return [3]float64{}, fmt.Errorf("%s has %d values, want 3: %w", field, len(v), ErrBadLength)
	}

	return [3]float64(v), nil
}

func vectors3(vs [][]float64) ([][3]float64, error) {
	out := make([][3]float64, len(vs))
	var err error
	for i, v := range vs {
		if out[i], err = vec3(fmt.Sprintf("derivative %d", i), v); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func vectors6(vs [][]float64) ([][6]float64, error) {
	out := make([][6]float64, len(vs))
	for i, v := range vs {
		if len(v) != 6 {
			return nil, fmt.Errorf("derivative %d has %d values, want 6: %w", i, len(v), ErrBadLength)
		}
		out[i] = [6]float64(v)
	}

	return out, nil
}

// SPDX-License-Identifier: MIT

// Package scenario reads TOML descriptions of a kinematic chain plus a list
// of derivative vectors and resolves them into a CMTM.
//
// A scenario file looks like:
//
//	dimension = 6
//	derivatives = [[0, 0, 1, 0.1, 0, 0], [0, 0, 0, 0, 0, 0.5]]
//
//	[[frames]]
//	name = "shoulder"
//	axis = [0, 0, 1]
//	angle = 1.5707963267948966
//	translation = [0, 0, 0.3]
//
//	[[frames]]
//	name = "elbow"
//	quaternion = [1, 0, 0, 0]
//	translation = [0.4, 0, 0]
//
// Frames compose left to right (the last frame is applied first). Each frame
// sets its rotation by at most one of axis+angle, quaternion, euler
// ([roll, pitch, yaw]), rotation_vector or matrix; no rotation means identity.
// For dimension 3 translations are ignored.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

var (
	// ErrParse wraps TOML syntax and unknown-field errors.
	ErrParse = errors.New("scenario: cannot parse")

	// ErrBadLength is returned when a vector or matrix row has the wrong length.
	ErrBadLength = errors.New("scenario: wrong vector length")

	// ErrAmbiguousRotation is returned when a frame sets more than one rotation form.
	ErrAmbiguousRotation = errors.New("scenario: frame sets more than one rotation")

	// ErrMissingAngle is returned when a frame has an axis but no angle.
	ErrMissingAngle = errors.New("scenario: axis given without angle")

	// ErrBadTolerance is returned for a negative or non-finite tolerance.
	ErrBadTolerance = errors.New("scenario: tolerance must be finite and non-negative")
)

// File is the decoded form of a scenario file.
type File struct {
	Dimension   int         `toml:"dimension"`
	Tolerance   float64     `toml:"tolerance"`
	Derivatives [][]float64 `toml:"derivatives"`
	Frames      []Frame     `toml:"frames"`
}

// Frame is one link of the chain.
type Frame struct {
	Name           string      `toml:"name"`
	Axis           []float64   `toml:"axis"`
	Angle          *float64    `toml:"angle"`
	Quaternion     []float64   `toml:"quaternion"`
	Euler          []float64   `toml:"euler"`
	RotationVector []float64   `toml:"rotation_vector"`
	Matrix         [][]float64 `toml:"matrix"`
	Translation    []float64   `toml:"translation"`
}

// Parse decodes a scenario and rejects unknown keys.
func Parse(data []byte) (*File, error) {
	var f File
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("%w: line %d, column %d: %w", ErrParse, row, col, err)
		}

		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return &f, nil
}

// Load reads and parses the scenario at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

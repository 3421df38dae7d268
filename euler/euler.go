// Package euler composes Euler angle sequences into rotation matrices.
//
// A sequence is a string of 1 to 3 axis letters. Lowercase letters (x, y, z)
// denote extrinsic rotations, applied about the fixed world axes; uppercase
// letters (X, Y, Z) denote intrinsic rotations, applied about the body's
// current axes. Mixing cases within one sequence is invalid.
//
// The sequence string is parsed once into explicit Axis and Mode tags, then
// composed from elementary single-axis matrices:
//   - Extrinsic: the matrix for each successive axis pre-multiplies the
//     accumulated result, so the first listed axis is applied first in the
//     world frame.
//   - Intrinsic: each successive matrix post-multiplies the accumulated
//     result, rotating about the already-rotated body axes.
//
// A single-axis sequence therefore composes to the same matrix in either
// mode.
package euler

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Axis identifies one of the three coordinate axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// Mode selects the frame each successive rotation is applied in.
type Mode int

const (
	// Extrinsic rotations are applied about the fixed world axes.
	Extrinsic Mode = iota
	// Intrinsic rotations are applied about the body's current axes.
	Intrinsic
)

func (m Mode) String() string {
	if m == Intrinsic {
		return "intrinsic"
	}
	return "extrinsic"
}

// Sequence is a parsed Euler axis sequence: 1 to 3 axes sharing one Mode.
type Sequence struct {
	Axes []Axis
	Mode Mode
}

// SequenceError reports an axis string that cannot be parsed.
type SequenceError struct {
	Seq    string
	Reason string
}

func (e *SequenceError) Error() string {
	return fmt.Sprintf("invalid euler sequence %q: %s", e.Seq, e.Reason)
}

// ShapeError reports a mismatch between the number of axes in a sequence
// and the number of angles supplied for it.
type ShapeError struct {
	Seq    string
	Angles int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("euler sequence %q expects %d angles, got %d", e.Seq, len(e.Seq), e.Angles)
}

// Parse converts an axis string such as "xyz" or "ZYX" into a Sequence.
// Lowercase letters select Extrinsic mode, uppercase Intrinsic; the two
// cannot be mixed. Returns a *SequenceError on any malformed input.
func Parse(seq string) (Sequence, error) {
	if len(seq) < 1 || len(seq) > 3 {
		return Sequence{}, &SequenceError{Seq: seq, Reason: "must contain 1 to 3 axes"}
	}

	axes := make([]Axis, 0, len(seq))
	mode := Extrinsic
	for i, c := range seq {
		var axis Axis
		var intrinsic bool
		switch c {
		case 'x':
			axis = AxisX
		case 'y':
			axis = AxisY
		case 'z':
			axis = AxisZ
		case 'X':
			axis, intrinsic = AxisX, true
		case 'Y':
			axis, intrinsic = AxisY, true
		case 'Z':
			axis, intrinsic = AxisZ, true
		default:
			return Sequence{}, &SequenceError{Seq: seq, Reason: fmt.Sprintf("unrecognized axis %q", c)}
		}

		if i == 0 {
			if intrinsic {
				mode = Intrinsic
			}
		} else if (mode == Intrinsic) != intrinsic {
			return Sequence{}, &SequenceError{Seq: seq, Reason: "cannot mix intrinsic and extrinsic rotations"}
		}
		axes = append(axes, axis)
	}

	return Sequence{Axes: axes, Mode: mode}, nil
}

// Elementary returns the rotation matrix about a single axis. Angle is in
// radians. Intrinsic mode returns the transpose of the extrinsic matrix,
// the passive form, equivalent to negating the angle.
func Elementary(a Axis, angle float64, m Mode) mgl64.Mat3 {
	var dcm mgl64.Mat3
	switch a {
	case AxisX:
		dcm = mgl64.Rotate3DX(angle)
	case AxisY:
		dcm = mgl64.Rotate3DY(angle)
	default:
		dcm = mgl64.Rotate3DZ(angle)
	}

	if m == Intrinsic {
		return dcm.Transpose()
	}
	return dcm
}

// Compose builds the single rotation matrix equivalent to applying the
// sequence's axes in order with the given angles (radians). Returns a
// *ShapeError if the angle count does not match the axis count.
func (s Sequence) Compose(angles []float64) (mgl64.Mat3, error) {
	if len(angles) != len(s.Axes) {
		return mgl64.Mat3{}, &ShapeError{Seq: s.signature(), Angles: len(angles)}
	}

	dcm := mgl64.Ident3()
	for i, axis := range s.Axes {
		r := Elementary(axis, angles[i], Extrinsic)
		if s.Mode == Extrinsic {
			dcm = r.Mul3(dcm)
		} else {
			dcm = dcm.Mul3(r)
		}
	}
	return dcm, nil
}

// signature reconstructs the axis string in the sequence's letter case.
func (s Sequence) signature() string {
	out := make([]byte, len(s.Axes))
	for i, a := range s.Axes {
		c := "xyz"[a]
		if s.Mode == Intrinsic {
			c -= 'x' - 'X'
		}
		out[i] = c
	}
	return string(out)
}

// Package orient converts between representations of 3D rotations.
//
// Four representations are supported: unit quaternions in scalar-last
// (x, y, z, w) order, 3x3 direction cosine matrices (DCM), rotation vectors
// (axis-angle, axis direction scaled by angle in radians), and Euler angle
// sequences. Every rotation is stored internally as a unit quaternion;
// constructors normalize on the way in, accessors convert on the way out.
// Values are immutable after construction, so distinct rotations can be
// converted concurrently without synchronization.
//
// The numerically delicate paths follow the published methods:
//   - DCM to quaternion uses the branch-selecting extraction of Markley,
//     "Unit Quaternion from Rotation Matrix" (2008), a refinement of
//     Shepperd's method. Picking the largest of the three diagonal entries
//     or the trace avoids the cancellation that trace-only extraction
//     suffers when the trace is small or negative. Near-orthogonal input
//     degrades gracefully into a best-fit unit quaternion.
//   - Rotation vector conversions switch to Taylor expansions below 1e-3
//     radians, where the exact sin ratios would divide by a vanishing value.
//
// Single rotations use Rotation; uniform collections use Batch, which fans
// conversions out across workers.
package orient

import (
	"github.com/akmonengine/orient/euler"
	"github.com/go-gl/mathgl/mgl64"
)

// Rotation is a single 3D rotation, stored as a unit quaternion in
// scalar-last (x, y, z, w) order. The zero value is not a valid rotation;
// use Identity or a From constructor.
type Rotation struct {
	q mgl64.Vec4
}

// Identity returns the rotation that maps every vector to itself.
func Identity() Rotation {
	return Rotation{q: mgl64.Vec4{0, 0, 0, 1}}
}

// FromQuat builds a Rotation from a scalar-last (x, y, z, w) quaternion,
// normalizing it to unit length. Returns a *DegenerateInputError if the
// quaternion has exactly zero norm.
func FromQuat(q mgl64.Vec4) (Rotation, error) {
	norm := q.Len()
	if norm == 0 {
		return Rotation{}, &DegenerateInputError{Rows: []int{0}}
	}
	return Rotation{q: q.Mul(1 / norm)}, nil
}

// FromUnitQuat builds a Rotation from a quaternion that is already unit
// length, skipping normalization. This is the fast path used by codecs
// whose output is unit by construction; callers passing non-unit input get
// undefined results.
func FromUnitQuat(q mgl64.Vec4) Rotation {
	return Rotation{q: q}
}

// FromQuatSlice builds a Rotation from a flat scalar-last quaternion.
// Returns a *ShapeError unless len(q) == 4.
func FromQuatSlice(q []float64) (Rotation, error) {
	if len(q) != 4 {
		return Rotation{}, &ShapeError{What: "quaternion", Want: "4", Got: len(q)}
	}
	return FromQuat(mgl64.Vec4{q[0], q[1], q[2], q[3]})
}

// FromRotVec builds a Rotation from a rotation vector, whose direction is
// the rotation axis and whose length is the angle in radians. The zero
// vector yields the identity rotation exactly.
func FromRotVec(v mgl64.Vec3) Rotation {
	return FromUnitQuat(rotVecToQuat(v))
}

// FromDCM builds a Rotation from a direction cosine matrix. The input is
// not checked for orthogonality; near-orthogonal matrices produce the
// best-fit unit quaternion, anything further off produces garbage. The
// sign of the extracted quaternion is whatever the selected branch yields.
func FromDCM(m mgl64.Mat3) Rotation {
	return FromUnitQuat(dcmToQuat(m))
}

// FromEuler builds a Rotation from an Euler axis sequence and matching
// angles in radians. Lowercase sequences are extrinsic, uppercase
// intrinsic; see package euler. The composed matrix is reduced to a
// quaternion through the DCM codec.
func FromEuler(seq string, angles []float64) (Rotation, error) {
	s, err := euler.Parse(seq)
	if err != nil {
		return Rotation{}, err
	}
	dcm, err := s.Compose(angles)
	if err != nil {
		return Rotation{}, err
	}
	return FromDCM(dcm), nil
}

// FromEulerDegrees is FromEuler with angles in degrees.
func FromEulerDegrees(seq string, angles []float64) (Rotation, error) {
	return FromEuler(seq, degToRad(angles))
}

// FromOrientation builds a Rotation from a scalar-first mgl64 quaternion,
// the form transform and rigid-body code keeps.
func FromOrientation(q mgl64.Quat) (Rotation, error) {
	return FromQuat(mgl64.Vec4{q.V[0], q.V[1], q.V[2], q.W})
}

// Quat returns the unit quaternion in scalar-last (x, y, z, w) order.
func (r Rotation) Quat() mgl64.Vec4 {
	return r.q
}

// DCM returns the direction cosine matrix form of the rotation.
func (r Rotation) DCM() mgl64.Mat3 {
	return quatToDCM(r.q)
}

// RotVec returns the rotation vector form of the rotation. Its length is
// the rotation angle, constrained to [0, pi] by flipping the quaternion
// sign so the scalar part is non-negative.
func (r Rotation) RotVec() mgl64.Vec3 {
	return quatToRotVec(r.q)
}

// Orientation returns the rotation as a scalar-first mgl64 quaternion for
// use in transform and rigid-body code.
func (r Rotation) Orientation() mgl64.Quat {
	return mgl64.Quat{W: r.q[3], V: mgl64.Vec3{r.q[0], r.q[1], r.q[2]}}
}

// Apply rotates a vector by the rotation.
func (r Rotation) Apply(v mgl64.Vec3) mgl64.Vec3 {
	return r.DCM().Mul3x1(v)
}

func degToRad(angles []float64) []float64 {
	out := make([]float64, len(angles))
	for i, a := range angles {
		out[i] = mgl64.DegToRad(a)
	}
	return out
}

func vecPart(q mgl64.Vec4) mgl64.Vec3 {
	return mgl64.Vec3{q[0], q[1], q[2]}
}

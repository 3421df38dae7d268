package orient

import (
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/num/quat"
)

// Quaternion returns the rotation as a gonum quat.Number, the scalar-first
// form robotics and spatial-math consumers compose with.
func (r Rotation) Quaternion() quat.Number {
	return quat.Number{Real: r.q[3], Imag: r.q[0], Jmag: r.q[1], Kmag: r.q[2]}
}

// FromQuaternion builds a Rotation from a gonum quat.Number, normalizing
// it. Returns a *DegenerateInputError on a zero quaternion.
func FromQuaternion(n quat.Number) (Rotation, error) {
	return FromQuat(mgl64.Vec4{n.Imag, n.Jmag, n.Kmag, n.Real})
}

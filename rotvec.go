package orient

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// smallAngle is the threshold (radians) below which the rotation vector
// codecs switch from the exact sin ratios to their Taylor expansions. The
// exact forms divide by sin(angle/2) or by the vector norm, both of which
// vanish at zero angle.
const smallAngle = 1e-3

// quatToRotVec converts a unit quaternion to its rotation vector. The
// quaternion sign is flipped to w >= 0 first so the encoded angle lands in
// [0, pi].
func quatToRotVec(q mgl64.Vec4) mgl64.Vec3 {
	if q[3] < 0 {
		q = q.Mul(-1)
	}

	v := vecPart(q)
	// atan2 keeps full precision near angle 0 and angle pi, where acos of
	// the scalar part loses digits.
	angle := 2 * math.Atan2(v.Len(), q[3])

	var scale float64
	if angle <= smallAngle {
		// Taylor expansion of angle / sin(angle/2).
		angle2 := angle * angle
		scale = 2 + angle2/12 + 7*angle2*angle2/2880
	} else {
		scale = angle / math.Sin(angle/2)
	}

	return v.Mul(scale)
}

// rotVecToQuat converts a rotation vector to a unit quaternion. The result
// is unit by construction, so callers can take the trusted path. A zero
// vector maps to the identity quaternion exactly: the Taylor branch
// evaluates to scale 1/2 and cos(0) = 1 with no division by the norm.
func rotVecToQuat(v mgl64.Vec3) mgl64.Vec4 {
	norm := v.Len()

	var scale float64
	if norm <= smallAngle {
		// Taylor expansion of sin(norm/2) / norm.
		norm2 := norm * norm
		scale = 0.5 - norm2/48 + norm2*norm2/3840
	} else {
		scale = math.Sin(norm/2) / norm
	}

	return mgl64.Vec4{scale * v[0], scale * v[1], scale * v[2], math.Cos(norm / 2)}
}

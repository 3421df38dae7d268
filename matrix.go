package orient

import "github.com/go-gl/mathgl/mgl64"

// quatToDCM expands the standard quaternion-to-matrix polynomial. Every
// entry is degree 2 in the components, so this direction needs no
// branching and is exact up to rounding.
func quatToDCM(q mgl64.Vec4) mgl64.Mat3 {
	x, y, z, w := q[0], q[1], q[2], q[3]

	x2 := x * x
	y2 := y * y
	z2 := z * z
	w2 := w * w

	xy := x * y
	zw := z * w
	xz := x * z
	yw := y * w
	yz := y * z
	xw := x * w

	// mgl64.Mat3 literals are column-major.
	return mgl64.Mat3{
		x2 - y2 - z2 + w2, 2 * (xy + zw), 2 * (xz - yw),
		2 * (xy - zw), -x2 + y2 - z2 + w2, 2 * (yz + xw),
		2 * (xz + yw), 2 * (yz - xw), -x2 - y2 + z2 + w2,
	}
}

// dcmToQuat extracts a unit quaternion from a rotation matrix using the
// Markley/Shepperd branch selection: whichever of the three diagonal
// entries or the trace is largest picks the extraction branch, keeping
// the dominant quaternion component away from cancellation. The final
// normalization also absorbs small departures from orthogonality in the
// input. The sign of the result is whatever the branch algebra yields.
func dcmToQuat(m mgl64.Mat3) mgl64.Vec4 {
	diag := m.Diag()
	trace := diag.X() + diag.Y() + diag.Z()

	decision := [4]float64{diag.X(), diag.Y(), diag.Z(), trace}
	choice := 0
	for i := 1; i < 4; i++ {
		if decision[i] > decision[choice] {
			choice = i
		}
	}

	var q mgl64.Vec4
	if choice != 3 {
		i := choice
		j := (i + 1) % 3
		k := (j + 1) % 3

		q[i] = 1 - trace + 2*m.At(i, i)
		q[j] = m.At(j, i) + m.At(i, j)
		q[k] = m.At(k, i) + m.At(i, k)
		q[3] = m.At(k, j) - m.At(j, k)
	} else {
		q[0] = m.At(2, 1) - m.At(1, 2)
		q[1] = m.At(0, 2) - m.At(2, 0)
		q[2] = m.At(1, 0) - m.At(0, 1)
		q[3] = 1 + trace
	}

	return q.Normalize()
}

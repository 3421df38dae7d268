package orient

import "github.com/go-gl/mathgl/mgl64"

// Flat-block constructors and accessors. These are the raw numeric
// boundary for callers that hold rotations as contiguous float64 blocks:
// quaternions as rows of 4, rotation vectors as rows of 3, matrices as
// row-major rows of 9. Lengths are validated before any row is decoded.

// FromQuatBlock builds a Batch from a flat block of scalar-last
// quaternions, 4 values per row. Returns a *ShapeError unless the length
// is a multiple of 4.
func FromQuatBlock(data []float64) (*Batch, error) {
	if len(data)%4 != 0 {
		return nil, &ShapeError{What: "quaternion block", Want: "a multiple of 4", Got: len(data)}
	}

	quats := make([]mgl64.Vec4, len(data)/4)
	for i := range quats {
		row := data[i*4:]
		quats[i] = mgl64.Vec4{row[0], row[1], row[2], row[3]}
	}
	return FromQuats(quats)
}

// FromRotVecBlock builds a Batch from a flat block of rotation vectors,
// 3 values per row.
func FromRotVecBlock(data []float64) (*Batch, error) {
	if len(data)%3 != 0 {
		return nil, &ShapeError{What: "rotation vector block", Want: "a multiple of 3", Got: len(data)}
	}

	vecs := make([]mgl64.Vec3, len(data)/3)
	for i := range vecs {
		row := data[i*3:]
		vecs[i] = mgl64.Vec3{row[0], row[1], row[2]}
	}
	return FromRotVecs(vecs), nil
}

// FromDCMBlock builds a Batch from a flat block of row-major 3x3
// matrices, 9 values per row.
func FromDCMBlock(data []float64) (*Batch, error) {
	if len(data)%9 != 0 {
		return nil, &ShapeError{What: "matrix block", Want: "a multiple of 9", Got: len(data)}
	}

	dcms := make([]mgl64.Mat3, len(data)/9)
	for i := range dcms {
		row := data[i*9:]
		// Row-major input, column-major mgl64.Mat3 literal.
		dcms[i] = mgl64.Mat3{
			row[0], row[3], row[6],
			row[1], row[4], row[7],
			row[2], row[5], row[8],
		}
	}
	return FromDCMs(dcms), nil
}

// QuatBlock returns the batch as a flat block of scalar-last quaternions,
// 4 values per row.
func (b *Batch) QuatBlock() []float64 {
	out := make([]float64, 4*len(b.quats))
	task(b.workers(), b.quats, func(i int, q mgl64.Vec4) {
		copy(out[i*4:], q[:])
	})
	return out
}

// RotVecBlock returns the batch as a flat block of rotation vectors,
// 3 values per row.
func (b *Batch) RotVecBlock() []float64 {
	out := make([]float64, 3*len(b.quats))
	task(b.workers(), b.quats, func(i int, q mgl64.Vec4) {
		v := quatToRotVec(q)
		copy(out[i*3:], v[:])
	})
	return out
}

// DCMBlock returns the batch as a flat block of row-major 3x3 matrices,
// 9 values per row.
func (b *Batch) DCMBlock() []float64 {
	out := make([]float64, 9*len(b.quats))
	task(b.workers(), b.quats, func(i int, q mgl64.Vec4) {
		m := quatToDCM(q)
		row := out[i*9:]
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				row[r*3+c] = m.At(r, c)
			}
		}
	})
	return out
}

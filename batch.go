package orient

import (
	"fmt"
	"sync"

	"github.com/akmonengine/orient/euler"
	"github.com/go-gl/mathgl/mgl64"
)

const DEFAULT_WORKERS = 1

// task fans the rows of data out across workersCount goroutines in
// contiguous chunks. Rows are independent, so fn must not assume any
// ordering between them.
func task[T any](workersCount int, data []T, fn func(i int, row T)) {
	var wg sync.WaitGroup
	dataSize := len(data)
	chunkSize := (dataSize + workersCount - 1) / workersCount

	for workerID := 0; workerID < workersCount; workerID++ {
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(i, data[i])
			}
		}(workerID*chunkSize, min((workerID+1)*chunkSize, dataSize))
	}
	wg.Wait()
}

// Batch is an ordered collection of rotations processed uniformly, stored
// as unit quaternions in scalar-last order. Row data is immutable after
// construction; accessors return fresh slices. Workers controls how many
// goroutines batch conversions fan out over (minimum 1) and is the only
// mutable field.
type Batch struct {
	quats []mgl64.Vec4

	Workers int
}

// FromQuats builds a Batch from scalar-last quaternions, normalizing each
// row by its own norm. If any rows have exactly zero norm, the whole batch
// is rejected with a *DegenerateInputError listing every such row.
func FromQuats(quats []mgl64.Vec4) (*Batch, error) {
	out := make([]mgl64.Vec4, len(quats))
	var zeroRows []int
	for i, q := range quats {
		norm := q.Len()
		if norm == 0 {
			zeroRows = append(zeroRows, i)
			continue
		}
		out[i] = q.Mul(1 / norm)
	}
	if zeroRows != nil {
		return nil, &DegenerateInputError{Rows: zeroRows}
	}
	return &Batch{quats: out}, nil
}

// FromUnitQuats builds a Batch from quaternions that are already unit
// length, skipping normalization.
func FromUnitQuats(quats []mgl64.Vec4) *Batch {
	out := make([]mgl64.Vec4, len(quats))
	copy(out, quats)
	return &Batch{quats: out}
}

// FromDCMs builds a Batch by extracting a quaternion from each matrix.
func FromDCMs(dcms []mgl64.Mat3) *Batch {
	out := make([]mgl64.Vec4, len(dcms))
	for i, m := range dcms {
		out[i] = dcmToQuat(m)
	}
	return &Batch{quats: out}
}

// FromRotVecs builds a Batch from rotation vectors.
func FromRotVecs(vecs []mgl64.Vec3) *Batch {
	out := make([]mgl64.Vec4, len(vecs))
	for i, v := range vecs {
		out[i] = rotVecToQuat(v)
	}
	return &Batch{quats: out}
}

// FromEulerBatch builds a Batch by applying one three-axis sequence to a
// batch of angle triples (radians).
func FromEulerBatch(seq string, angles []mgl64.Vec3) (*Batch, error) {
	s, err := euler.Parse(seq)
	if err != nil {
		return nil, err
	}

	out := make([]mgl64.Vec4, len(angles))
	for i, row := range angles {
		dcm, err := s.Compose(row[:])
		if err != nil {
			return nil, err
		}
		out[i] = dcmToQuat(dcm)
	}
	return &Batch{quats: out}, nil
}

// FromEulerBatchDegrees is FromEulerBatch with angles in degrees.
func FromEulerBatchDegrees(seq string, angles []mgl64.Vec3) (*Batch, error) {
	return FromEulerBatch(seq, radAngles(angles))
}

// FromEulerSequences builds a Batch from per-row axis sequences, each
// paired with its own angle triple (radians). Returns a *ShapeError if the
// two slices differ in length.
func FromEulerSequences(seqs []string, angles []mgl64.Vec3) (*Batch, error) {
	if len(seqs) != len(angles) {
		return nil, &ShapeError{What: "euler sequences", Want: fmt.Sprint(len(angles)), Got: len(seqs)}
	}

	out := make([]mgl64.Vec4, len(seqs))
	for i, seq := range seqs {
		s, err := euler.Parse(seq)
		if err != nil {
			return nil, err
		}
		dcm, err := s.Compose(angles[i][:])
		if err != nil {
			return nil, err
		}
		out[i] = dcmToQuat(dcm)
	}
	return &Batch{quats: out}, nil
}

// FromEulerSequencesDegrees is FromEulerSequences with angles in degrees.
func FromEulerSequencesDegrees(seqs []string, angles []mgl64.Vec3) (*Batch, error) {
	return FromEulerSequences(seqs, radAngles(angles))
}

// Len returns the number of rotations in the batch.
func (b *Batch) Len() int {
	return len(b.quats)
}

// At returns the i-th rotation.
func (b *Batch) At(i int) Rotation {
	return Rotation{q: b.quats[i]}
}

// Quats returns a copy of the unit quaternion rows.
func (b *Batch) Quats() []mgl64.Vec4 {
	out := make([]mgl64.Vec4, len(b.quats))
	task(b.workers(), b.quats, func(i int, q mgl64.Vec4) {
		out[i] = q
	})
	return out
}

// DCMs returns the direction cosine matrix of every row.
func (b *Batch) DCMs() []mgl64.Mat3 {
	out := make([]mgl64.Mat3, len(b.quats))
	task(b.workers(), b.quats, func(i int, q mgl64.Vec4) {
		out[i] = quatToDCM(q)
	})
	return out
}

// RotVecs returns the rotation vector of every row.
func (b *Batch) RotVecs() []mgl64.Vec3 {
	out := make([]mgl64.Vec3, len(b.quats))
	task(b.workers(), b.quats, func(i int, q mgl64.Vec4) {
		out[i] = quatToRotVec(q)
	})
	return out
}

func (b *Batch) workers() int {
	return max(DEFAULT_WORKERS, b.Workers)
}

func radAngles(angles []mgl64.Vec3) []mgl64.Vec3 {
	out := make([]mgl64.Vec3, len(angles))
	for i, row := range angles {
		out[i] = mgl64.Vec3{mgl64.DegToRad(row[0]), mgl64.DegToRad(row[1]), mgl64.DegToRad(row[2])}
	}
	return out
}

package euler

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func floatEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func mat3Equal(a, b mgl64.Mat3, tolerance float64) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !floatEqual(a.At(i, j), b.At(i, j), tolerance) {
				return false
			}
		}
	}
	return true
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		seq     string
		want    Sequence
		wantErr bool
	}{
		{
			name: "extrinsic xyz",
			seq:  "xyz",
			want: Sequence{Axes: []Axis{AxisX, AxisY, AxisZ}, Mode: Extrinsic},
		},
		{
			name: "intrinsic ZYX",
			seq:  "ZYX",
			want: Sequence{Axes: []Axis{AxisZ, AxisY, AxisX}, Mode: Intrinsic},
		},
		{
			name: "single axis",
			seq:  "y",
			want: Sequence{Axes: []Axis{AxisY}, Mode: Extrinsic},
		},
		{
			name: "repeated axes",
			seq:  "zxz",
			want: Sequence{Axes: []Axis{AxisZ, AxisX, AxisZ}, Mode: Extrinsic},
		},
		{name: "mixed case", seq: "xY", wantErr: true},
		{name: "mixed case reversed", seq: "Xy", wantErr: true},
		{name: "unknown letter", seq: "xw", wantErr: true},
		{name: "empty", seq: "", wantErr: true},
		{name: "too long", seq: "xyzx", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.seq)
			if tt.wantErr {
				var seqErr *SequenceError
				if !errors.As(err, &seqErr) {
					t.Fatalf("Parse(%q) error = %v, want *SequenceError", tt.seq, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.seq, err)
			}
			if got.Mode != tt.want.Mode || len(got.Axes) != len(tt.want.Axes) {
				t.Fatalf("Parse(%q) = %+v, want %+v", tt.seq, got, tt.want)
			}
			for i := range got.Axes {
				if got.Axes[i] != tt.want.Axes[i] {
					t.Errorf("Parse(%q).Axes[%d] = %v, want %v", tt.seq, i, got.Axes[i], tt.want.Axes[i])
				}
			}
		})
	}
}

func TestElementary(t *testing.T) {
	angle := 0.7

	tests := []struct {
		name string
		axis Axis
		want mgl64.Mat3
	}{
		{name: "x", axis: AxisX, want: mgl64.Rotate3DX(angle)},
		{name: "y", axis: AxisY, want: mgl64.Rotate3DY(angle)},
		{name: "z", axis: AxisZ, want: mgl64.Rotate3DZ(angle)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Elementary(tt.axis, angle, Extrinsic)
			if !mat3Equal(got, tt.want, 0) {
				t.Errorf("Elementary(%v) = %v, want %v", tt.axis, got, tt.want)
			}

			// The intrinsic form is the transpose, i.e. the rotation by the
			// negated angle.
			intrinsic := Elementary(tt.axis, angle, Intrinsic)
			if !mat3Equal(intrinsic, got.Transpose(), 0) {
				t.Errorf("intrinsic Elementary(%v) is not the transpose", tt.axis)
			}
			if !mat3Equal(intrinsic, Elementary(tt.axis, -angle, Extrinsic), 1e-15) {
				t.Errorf("intrinsic Elementary(%v) differs from the negated angle", tt.axis)
			}
		})
	}
}

func TestComposeAngleCountMismatch(t *testing.T) {
	s, err := Parse("xyz")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	for _, angles := range [][]float64{nil, {0.1}, {0.1, 0.2}, {0.1, 0.2, 0.3, 0.4}} {
		_, err := s.Compose(angles)
		var shape *ShapeError
		if !errors.As(err, &shape) {
			t.Errorf("Compose(%v) error = %v, want *ShapeError", angles, err)
		}
	}
}

// A single-axis sequence must compose to the same matrix whether it is
// declared extrinsic or intrinsic.
func TestComposeSingleAxisModeInvariance(t *testing.T) {
	for _, seqs := range [][2]string{{"x", "X"}, {"y", "Y"}, {"z", "Z"}} {
		lower, err := Parse(seqs[0])
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", seqs[0], err)
		}
		upper, err := Parse(seqs[1])
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", seqs[1], err)
		}

		angles := []float64{math.Pi / 2}
		ext, err := lower.Compose(angles)
		if err != nil {
			t.Fatalf("Compose() error = %v", err)
		}
		intr, err := upper.Compose(angles)
		if err != nil {
			t.Fatalf("Compose() error = %v", err)
		}

		if !mat3Equal(ext, intr, 1e-15) {
			t.Errorf("%q and %q compose differently: %v vs %v", seqs[0], seqs[1], ext, intr)
		}
	}
}

func TestComposeSingleAxisAgainstElementary(t *testing.T) {
	tests := []struct {
		seq    string
		angles []float64
		want   mgl64.Mat3
	}{
		{seq: "xyz", angles: []float64{math.Pi / 2, 0, 0}, want: mgl64.Rotate3DX(math.Pi / 2)},
		{seq: "XYZ", angles: []float64{math.Pi / 2, 0, 0}, want: mgl64.Rotate3DX(math.Pi / 2)},
		{seq: "z", angles: []float64{0.3}, want: mgl64.Rotate3DZ(0.3)},
	}

	for _, tt := range tests {
		t.Run(tt.seq, func(t *testing.T) {
			s, err := Parse(tt.seq)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.seq, err)
			}
			got, err := s.Compose(tt.angles)
			if err != nil {
				t.Fatalf("Compose() error = %v", err)
			}
			if !mat3Equal(got, tt.want, 1e-15) {
				t.Errorf("Compose(%q, %v) = %v, want %v", tt.seq, tt.angles, got, tt.want)
			}
		})
	}
}

// Extrinsic composition applies the first listed axis first in the world
// frame, so the matrices stack in reverse on the left.
func TestComposeExtrinsicOrder(t *testing.T) {
	s, err := Parse("xyz")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	angles := []float64{0.1, 0.2, 0.3}

	got, err := s.Compose(angles)
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	want := mgl64.Rotate3DZ(0.3).Mul3(mgl64.Rotate3DY(0.2)).Mul3(mgl64.Rotate3DX(0.1))
	if !mat3Equal(got, want, 1e-14) {
		t.Errorf("Compose(xyz) = %v, want %v", got, want)
	}
}

// Intrinsic composition about the body axes stacks in listed order on the
// left, which is the extrinsic composition of the reversed sequence.
func TestComposeIntrinsicOrder(t *testing.T) {
	s, err := Parse("XYZ")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	angles := []float64{0.1, 0.2, 0.3}

	got, err := s.Compose(angles)
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	want := mgl64.Rotate3DX(0.1).Mul3(mgl64.Rotate3DY(0.2)).Mul3(mgl64.Rotate3DZ(0.3))
	if !mat3Equal(got, want, 1e-14) {
		t.Errorf("Compose(XYZ) = %v, want %v", got, want)
	}

	reversed, err := Parse("zyx")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	ext, err := reversed.Compose([]float64{0.3, 0.2, 0.1})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	if !mat3Equal(got, ext, 1e-14) {
		t.Errorf("intrinsic XYZ %v differs from extrinsic zyx reversed %v", got, ext)
	}
}

// Composed matrices stay proper rotations.
func TestComposeProperRotation(t *testing.T) {
	seqs := []string{"xyz", "zyx", "zxz", "XZY", "yx", "Z"}
	angles := [][]float64{
		{0.1, -0.7, 2.0},
		{1.1, 0.4, -0.9},
		{3.0, 0.2, -3.0},
		{-1.5, 0.8, 0.3},
		{0.6, -0.6},
		{2.2},
	}

	for i, seq := range seqs {
		s, err := Parse(seq)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", seq, err)
		}
		m, err := s.Compose(angles[i])
		if err != nil {
			t.Fatalf("Compose(%q) error = %v", seq, err)
		}

		if !mat3Equal(m.Transpose().Mul3(m), mgl64.Ident3(), 1e-12) {
			t.Errorf("Compose(%q): M^T * M deviates from identity", seq)
		}
		if !floatEqual(m.Det(), 1.0, 1e-12) {
			t.Errorf("Compose(%q): det = %v, want 1", seq, m.Det())
		}
	}
}

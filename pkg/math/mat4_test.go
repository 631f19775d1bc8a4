package math

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	id := Identity()
	result := m.Mul(id)

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Translation should be in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(float32(math.Pi / 2)) // 90 degrees
	p := Vec3{1, 0, 0}                 // Point on X axis
	result := m.TransformVec3(p)

	// After 90 degree Y rotation, (1,0,0) should become approximately (0,0,-1)
	if abs(result.X) > 0.001 || abs(result.Y) > 0.001 || abs(result.Z+1) > 0.001 {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", result)
	}
}

func TestPerspective(t *testing.T) {
	fov := float32(math.Pi / 4) // 45 degrees
	aspect := float32(1.0)
	near := float32(0.1)
	far := float32(100.0)

	m := Perspective(fov, aspect, near, far)

	// Should be a valid projection matrix (not identity)
	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	// Element [15] should be 0 for perspective projection
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	// Element [11] should be -1 for perspective projection
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestLookAt(t *testing.T) {
	eye := Vec3{0, 0, 5}
	center := Vec3{0, 0, 0}
	up := Vec3{0, 1, 0}

	m := LookAt(eye, center, up)

	// Transform eye position - should result in origin (or close to it)
	// This is a simple sanity check
	if m[15] != 1 {
		t.Errorf("LookAt [15] should be 1, got %f", m[15])
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func TestTransformVec3(t *testing.T) {
	m := Translate(10, 20, 30)
	got := m.TransformVec3(Vec3{1, 2, 3})
	if want := (Vec3{11, 22, 33}); got != want {
		t.Errorf("TransformVec3: got %v, want %v", got, want)
	}
}

func TestRotateAxisMatchesRotateY(t *testing.T) {
	angle := float32(0.7)
	// Unnormalized axis must give the same result as the unit axis.
	got := RotateAxis(Vec3{0, 5, 0}, angle)
	want := RotateY(angle)
	if !got.ApproxEqual(want, 1e-6) {
		t.Errorf("RotateAxis(Y) = %v, want %v", got, want)
	}
}

func TestTranspose(t *testing.T) {
	m := Translate(1, 2, 3)
	tr := m.Transpose()
	if tr[3] != 1 || tr[7] != 2 || tr[11] != 3 {
		t.Errorf("Transpose: translation not moved to bottom row: %v", tr)
	}
	if tr.Transpose() != m {
		t.Error("Transpose twice should give back the original")
	}
}

func TestNormalMatrixOfRigidTransform(t *testing.T) {
	// For rotation plus translation the normal matrix is the rotation itself.
	r := RotateY(1.2)
	m := Translate(4, 5, 6).Mul(r)
	got := m.NormalMatrix()
	want := [9]float32{r[0], r[1], r[2], r[4], r[5], r[6], r[8], r[9], r[10]}
	for i := range got {
		if abs(got[i]-want[i]) > 1e-5 {
			t.Fatalf("NormalMatrix[%d] = %f, want %f", i, got[i], want[i])
		}
	}
}

func TestNormalMatrixMatchesInverseTranspose(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
	}{
		{"non-uniform scale", Mat4{2, 0, 0, 0, 0, 4, 0, 0, 0, 0, 8, 0, 0, 0, 0, 1}},
		{"view times model", LookAt(Vec3{3, 5, 2}, Vec3{0, 0, 0}, Up).
			Mul(RotateAxis(Vec3{0, 1, 1}, 0.8)).
			Mul(Translate(347, 0, 0)).
			Mul(Mat4{1, 0, 0, 0, 0, 3, 0, 0, 0, 0, 0.5, 0, 0, 0, 0, 1})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := mgl32.Mat4(tt.m).Mat3().Inv().Transpose()
			got := tt.m.NormalMatrix()
			for i := range got {
				if abs(got[i]-want[i]) > 1e-4 {
					t.Fatalf("NormalMatrix[%d] = %f, want %f", i, got[i], want[i])
				}
			}
		})
	}
}

func TestNormalMatrixSingular(t *testing.T) {
	got := Mat4{}.NormalMatrix()
	want := [9]float32{1, 0, 0, 0, 1, 0, 0, 0, 1}
	if got != want {
		t.Errorf("NormalMatrix of zero matrix = %v, want identity", got)
	}
}

func TestWithoutTranslation(t *testing.T) {
	m := Translate(7, 8, 9).Mul(RotateX(0.3))
	s := m.WithoutTranslation()
	if s.Translation() != (Vec3{}) {
		t.Errorf("translation should be dropped, got %v", s.Translation())
	}
	if s[5] != m[5] || s[10] != m[10] {
		t.Error("rotation part should be preserved")
	}
}

package math

import (
	"math"
	"testing"
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
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestMulOrder(t *testing.T) {
	// Translate(T) * Scale(S) scales first, then translates.
	m := Translate(10, 0, 0).Mul(Scale(2, 2, 2))
	got := m.TransformPoint(Vec3{1, 0, 0})
	if got != (Vec3{12, 0, 0}) {
		t.Errorf("T*S applied to (1,0,0): got %v, want (12, 0, 0)", got)
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Translation should be in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
	if got := m.Translation(); got != (Vec3{5, 10, 15}) {
		t.Errorf("Translation() = %v", got)
	}
}

func TestWithTranslation(t *testing.T) {
	m := RotateY(0.3).WithTranslation(Vec3{1, 2, 3})
	if got := m.Translation(); got != (Vec3{1, 2, 3}) {
		t.Errorf("Translation() = %v", got)
	}
	if m[0] != RotateY(0.3)[0] {
		t.Error("WithTranslation must leave the rotation part untouched")
	}
}

func TestTransformPoint(t *testing.T) {
	m := Translate(10, 20, 30)
	result := m.TransformPoint(Vec3{1, 2, 3})

	expected := Vec3{11, 22, 33}
	if result != expected {
		t.Errorf("TransformPoint: got %v, want %v", result, expected)
	}
}

func TestTransformDirectionIgnoresTranslation(t *testing.T) {
	m := Translate(10, 20, 30)
	if got := m.TransformDirection(XAxis); got != XAxis {
		t.Errorf("TransformDirection: got %v, want %v", got, XAxis)
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(float32(math.Pi / 2)) // 90 degrees
	result := m.TransformPoint(Vec3{1, 0, 0})

	// After 90 degree Y rotation, (1,0,0) should become approximately (0,0,-1)
	if abs(result.X) > 0.001 || abs(result.Y) > 0.001 || abs(result.Z+1) > 0.001 {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", result)
	}
}

func TestRotateAxisMatchesRotateY(t *testing.T) {
	angle := float32(0.7)
	got := RotateAxis(Vec3{0, 2, 0}, angle)
	want := RotateY(angle)
	for i := 0; i < 16; i++ {
		if abs(got[i]-want[i]) > 0.0001 {
			t.Errorf("element %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRotateAxisX(t *testing.T) {
	m := RotateAxis(XAxis, float32(math.Pi/2))
	got := m.TransformDirection(YAxis)
	if abs(got.X) > 0.001 || abs(got.Y) > 0.001 || abs(got.Z-1) > 0.001 {
		t.Errorf("RotateAxis X 90 of +Y: got %v, want (0, 0, 1)", got)
	}
}

func TestPerspective(t *testing.T) {
	fov := float32(math.Pi / 4) // 45 degrees
	m := Perspective(fov, 1.0, 0.1, 100.0)

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

func TestPerspectiveAspect(t *testing.T) {
	wide := Perspective(1, 2, 0.1, 100)
	square := Perspective(1, 1, 0.1, 100)
	if abs(wide[0]*2-square[0]) > 0.0001 {
		t.Errorf("x scale should halve when aspect doubles: %v vs %v", wide[0], square[0])
	}
}

func TestLookAt(t *testing.T) {
	eye := Vec3{0, 0, 5}
	m := LookAt(eye, Vec3{}, YAxis)

	if m[15] != 1 {
		t.Errorf("LookAt [15] should be 1, got %f", m[15])
	}
	// Eye maps to the view-space origin.
	got := m.TransformPoint(eye)
	if got.Length() > 0.0001 {
		t.Errorf("eye in view space: got %v, want origin", got)
	}
	// The target lies straight ahead on -Z.
	got = m.TransformPoint(Vec3{})
	if abs(got.X) > 0.0001 || abs(got.Y) > 0.0001 || abs(got.Z+5) > 0.0001 {
		t.Errorf("target in view space: got %v, want (0, 0, -5)", got)
	}
}

func TestInverse(t *testing.T) {
	m := Translate(1, 2, 3).Mul(RotateAxis(Vec3{1, 1, 0}, 0.4)).Mul(Scale(2, 2, 2))
	p := m.Mul(m.Inverse())
	id := Identity()
	for i := 0; i < 16; i++ {
		if abs(p[i]-id[i]) > 0.0001 {
			t.Errorf("M * M^-1 element %d: got %v, want %v", i, p[i], id[i])
		}
	}
}

func TestInverseSingular(t *testing.T) {
	if got := Scale(0, 1, 1).Inverse(); got != Identity() {
		t.Errorf("singular inverse should be identity, got %v", got)
	}
}

func TestViewInverseColumns(t *testing.T) {
	view := LookAt(Vec3{0, 0, 5}, Vec3{}, YAxis)
	inv := view.Inverse()
	right := inv.Column(0)
	up := inv.Column(1)
	if abs(right.X-1) > 0.0001 || abs(up.Y-1) > 0.0001 {
		t.Errorf("camera basis: right %v, up %v", right, up)
	}
	if got := inv.Translation(); abs(got.Z-5) > 0.0001 {
		t.Errorf("camera position: got %v, want (0, 0, 5)", got)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

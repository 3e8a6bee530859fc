package math

import (
	"math"
	"testing"
)

func TestVec3Operations(t *testing.T) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	// Addition
	result := v1.Add(v2)
	expected := NewVec3(5, 7, 9)
	if result != expected {
		t.Errorf("Add: expected %v, got %v", expected, result)
	}

	// Subtraction
	result = v2.Sub(v1)
	expected = NewVec3(3, 3, 3)
	if result != expected {
		t.Errorf("Sub: expected %v, got %v", expected, result)
	}

	// Scalar multiplication
	result = v1.Mul(2)
	expected = NewVec3(2, 4, 6)
	if result != expected {
		t.Errorf("Mul: expected %v, got %v", expected, result)
	}

	// Dot product
	dot := v1.Dot(v2)
	expectedDot := float32(32) // 1*4 + 2*5 + 3*6
	if dot != expectedDot {
		t.Errorf("Dot: expected %v, got %v", expectedDot, dot)
	}

	// Cross product: X x Y = Z in a right-handed system
	cross := NewVec3(1, 0, 0).Cross(Vec3Up)
	if cross != NewVec3(0, 0, 1) {
		t.Errorf("Cross: expected (0,0,1), got %v", cross)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 0, 0)
	normalized := v.Normalize()
	expected := NewVec3(1, 0, 0)

	if normalized != expected {
		t.Errorf("Normalize: expected %v, got %v", expected, normalized)
	}

	// Check length is 1
	length := normalized.Length()
	if math.Abs(float64(length-1)) > 0.0001 {
		t.Errorf("Normalize: expected length 1, got %v", length)
	}

	// Zero vector stays zero instead of producing NaN
	if Vec3Zero.Normalize() != Vec3Zero {
		t.Errorf("Normalize: zero vector changed")
	}
}

func TestMat4Identity(t *testing.T) {
	m := Mat4Identity()

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			expected := float32(0)
			if i == j {
				expected = 1
			}
			if m[i][j] != expected {
				t.Errorf("Identity: expected [%d][%d] = %v, got %v", i, j, expected, m[i][j])
			}
		}
	}
}

func TestMat4Multiplication(t *testing.T) {
	m1 := Mat4Identity()
	m2 := Mat4Translation(NewVec3(1, 2, 3))

	result := m1.Mul(m2)

	// Identity * M = M
	if result != m2 {
		t.Errorf("Mul: expected %v, got %v", m2, result)
	}
}

func TestMat4MulApplicationOrder(t *testing.T) {
	// a.Mul(b) applies a first, then b
	scale := Mat4Scale(NewVec3(2, 2, 2))
	translate := Mat4Translation(NewVec3(1, 0, 0))

	p := NewVec4(1, 0, 0, 1).MulMat(scale.Mul(translate))
	if p.ToVec3() != NewVec3(3, 0, 0) {
		t.Errorf("Mul order: expected (3,0,0), got %v", p.ToVec3())
	}

	p = NewVec4(1, 0, 0, 1).MulMat(translate.Mul(scale))
	if p.ToVec3() != NewVec3(4, 0, 0) {
		t.Errorf("Mul order: expected (4,0,0), got %v", p.ToVec3())
	}
}

func TestMat4Translation(t *testing.T) {
	translation := NewVec3(1, 2, 3)
	m := Mat4Translation(translation)

	// Check translation components
	if m[3][0] != 1 || m[3][1] != 2 || m[3][2] != 3 {
		t.Errorf("Translation: expected (1,2,3), got (%v,%v,%v)", m[3][0], m[3][1], m[3][2])
	}

	// Test transforming a point
	point := NewVec4(0, 0, 0, 1)
	result := point.MulMat(m)

	if result.ToVec3() != translation {
		t.Errorf("Translation: expected %v, got %v", translation, result.ToVec3())
	}
}

func TestMat4LookAt(t *testing.T) {
	// Eye on +Z looking at origin: the view transform should move the
	// origin to -eyeDist along Z.
	view := Mat4LookAt(NewVec3(0, 0, 5), Vec3Zero, Vec3Up)
	p := NewVec4(0, 0, 0, 1).MulMat(view)

	if math.Abs(float64(p.Z+5)) > 0.0001 {
		t.Errorf("LookAt: expected origin at z=-5, got %v", p.Z)
	}
}

func TestMat4Perspective(t *testing.T) {
	fovY := float32(math.Pi / 4)
	m := Mat4Perspective(fovY, 16.0/9.0, 0.1, 100)

	// m[1][1] = 1/tan(fovy/2) = cot(22.5°) ≈ 2.4142
	if math.Abs(float64(m[1][1])-2.4142135) > 0.0001 {
		t.Errorf("Perspective: expected m[1][1] ≈ 2.4142, got %v", m[1][1])
	}
	if m[2][3] != -1 {
		t.Errorf("Perspective: expected m[2][3] = -1, got %v", m[2][3])
	}
}

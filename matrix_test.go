package convexaa

import (
	"math"
	"testing"
)

func TestMatrixIdentity(t *testing.T) {
	m := Identity()
	if !m.IsIdentity() {
		t.Error("Identity() should be identity")
	}

	p := Pt(3, 4)
	if got := m.TransformPoint(p); got != p {
		t.Errorf("identity TransformPoint = %v, want %v", got, p)
	}
}

func TestMatrixTranslate(t *testing.T) {
	m := Translate(10, 20)
	if !m.IsTranslation() {
		t.Error("Translate should report IsTranslation")
	}

	if got := m.TransformPoint(Pt(1, 2)); got != Pt(11, 22) {
		t.Errorf("TransformPoint = %v, want (11,22)", got)
	}

	// Vectors ignore translation.
	if got := m.TransformVector(V2(1, 2)); got != V2(1, 2) {
		t.Errorf("TransformVector = %v, want (1,2)", got)
	}
}

func TestMatrixScale(t *testing.T) {
	m := Scale(2, 3)
	if got := m.TransformPoint(Pt(4, 5)); got != Pt(8, 15) {
		t.Errorf("TransformPoint = %v, want (8,15)", got)
	}
}

func TestMatrixRotate(t *testing.T) {
	m := Rotate(math.Pi / 2)
	got := m.TransformPoint(Pt(1, 0))
	if !got.Approx(Pt(0, 1), testEpsilon) {
		t.Errorf("Rotate(90) of (1,0) = %v, want (0,1)", got)
	}
}

func TestMatrixMultiplyOrder(t *testing.T) {
	// m.Multiply(other) applies other first.
	m := Translate(10, 0).Multiply(Scale(2, 2))
	got := m.TransformPoint(Pt(1, 1))
	if !got.Approx(Pt(12, 2), testEpsilon) {
		t.Errorf("TransformPoint = %v, want (12,2)", got)
	}
}

func TestMatrixTryInvert(t *testing.T) {
	m := Translate(5, -3).Multiply(Scale(2, 4))
	inv, ok := m.TryInvert()
	if !ok {
		t.Fatal("TryInvert reported singular for an invertible matrix")
	}

	p := Pt(7, 11)
	got := inv.TransformPoint(m.TransformPoint(p))
	if !got.Approx(p, testEpsilon) {
		t.Errorf("inverse round trip = %v, want %v", got, p)
	}
}

func TestMatrixTryInvertSingular(t *testing.T) {
	m := Scale(0, 1)
	inv, ok := m.TryInvert()
	if ok {
		t.Error("TryInvert should report false for singular matrix")
	}
	if !inv.IsIdentity() {
		t.Errorf("singular inverse = %+v, want identity", inv)
	}
}

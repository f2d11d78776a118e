package vmath

import (
	"math"
	"testing"
)

func TestVectorCache(t *testing.T) {
	tests := []struct {
		x, y       float64
		mag        float64
		dirX, dirY float64
	}{
		{5, 0, 5, 1, 0},
		{0, 5, 5, 0, 1},
		{-5, 0, 5, -1, 0},
		{0, -5, 5, 0, -1},
	}
	for _, tt := range tests {
		v := NewVector2D(tt.x, tt.y)
		if v.Magnitude() != tt.mag {
			t.Errorf("Magnitude(%v,%v) = %v, want %v", tt.x, tt.y, v.Magnitude(), tt.mag)
		}
		d := v.Direction()
		if d.X() != tt.dirX || d.Y() != tt.dirY {
			t.Errorf("Direction(%v,%v) = (%v,%v)", tt.x, tt.y, d.X(), d.Y())
		}
	}
}

func TestVectorSetKeepsCacheFresh(t *testing.T) {
	v := NewVector2D(1, 0)
	v.SetY(1)
	if !NearlyEqual(v.Angle(), math.Pi/4) {
		t.Errorf("Angle = %v, want pi/4", v.Angle())
	}
	if !NearlyEqual(v.Magnitude(), math.Sqrt2) {
		t.Errorf("Magnitude = %v, want sqrt2", v.Magnitude())
	}

	v.SetMagnitude(2)
	if !NearlyEqual(v.X(), math.Sqrt2) || !NearlyEqual(v.Y(), math.Sqrt2) {
		t.Errorf("SetMagnitude = (%v,%v)", v.X(), v.Y())
	}
}

func TestVectorZero(t *testing.T) {
	var v Vector2D
	v.SetMagnitude(3)
	if v.X() != 0 || v.Y() != 0 {
		t.Errorf("SetMagnitude on zero vector changed it: (%v,%v)", v.X(), v.Y())
	}
	if v.Angle() != 0 {
		t.Errorf("zero Angle = %v", v.Angle())
	}
	if d := v.Direction(); d.Magnitude() != 0 {
		t.Errorf("zero Direction = %v", d)
	}
}

func TestRemoveComponent(t *testing.T) {
	v := NewVector2D(1.5, -3)
	up := NewVector2D(0, 1)
	got := v.RemoveComponent(up)
	if got.X() != 1.5 || got.Y() != 0 {
		t.Errorf("RemoveComponent = (%v,%v), want (1.5,0)", got.X(), got.Y())
	}
	if !NearlyEqual(got.Dot(up), 0) {
		t.Errorf("residual normal component %v", got.Dot(up))
	}

	r := v.Reflect(up)
	if r.X() != 1.5 || r.Y() != 3 {
		t.Errorf("Reflect = (%v,%v), want (1.5,3)", r.X(), r.Y())
	}
}

func TestScalarHelpers(t *testing.T) {
	if Sign(-0.3) != -1 || Sign(0) != 0 || Sign(2) != 1 {
		t.Error("Sign mismatch")
	}
	if Lerp(2, 4, 0.25) != 2.5 {
		t.Errorf("Lerp = %v", Lerp(2, 4, 0.25))
	}
	if Clamp(5, -1, 1) != 1 || Clamp(-5, -1, 1) != -1 || Clamp(0.5, -1, 1) != 0.5 {
		t.Error("Clamp mismatch")
	}
	if IsFinite(math.NaN()) || IsFinite(math.Inf(-1)) || !IsFinite(0) {
		t.Error("IsFinite mismatch")
	}
}

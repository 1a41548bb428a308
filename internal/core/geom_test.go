package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestSpanContains(t *testing.T) {
	s := Span{Lo: 50, Hi: 150}

	tests := []struct {
		v        float64
		expected bool
	}{
		{50, true},
		{100, true},
		{150, true},
		{49.9, false},
		{150.1, false},
	}

	for _, tc := range tests {
		if got := s.Contains(tc.v); got != tc.expected {
			t.Errorf("Contains(%v) = %v, expected %v", tc.v, got, tc.expected)
		}
	}
}

func TestVecAdd(t *testing.T) {
	v := Vec{X: 1, Y: -2}.Add(Vec{X: 10, Y: 100})
	if v.X != 11 || v.Y != 98 {
		t.Errorf("Add() = %+v, expected {X:11 Y:98}", v)
	}
}

func TestSizeEmpty(t *testing.T) {
	if !(Size{}).Empty() {
		t.Error("zero Size should be empty")
	}
	if (Size{W: 400, H: 800}).Empty() {
		t.Error("400x800 should not be empty")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
		{-100, -25, 425, -25},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

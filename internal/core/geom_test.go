package core

import (
	"math"
	"testing"
)

func TestPointDist(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Point
		expected float64
	}{
		{"same point", Pt(3, 4), Pt(3, 4), 0},
		{"3-4-5 triangle", Pt(0, 0), Pt(3, 4), 5},
		{"negative coords", Pt(-1, -1), Pt(2, 3), 5},
		{"vertical", Pt(500, 350), Pt(500, 430), 80},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Dist(tc.b)
			if math.Abs(result-tc.expected) > 1e-9 {
				t.Errorf("Dist() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			if reverse := tc.b.Dist(tc.a); math.Abs(reverse-tc.expected) > 1e-9 {
				t.Errorf("Dist() (reversed) = %v, expected %v", reverse, tc.expected)
			}
		})
	}
}

func TestPointArithmetic(t *testing.T) {
	p := Pt(10, 20).Add(Pt(0, 80))
	if p != Pt(10, 100) {
		t.Errorf("Add() = %v, expected (10, 100)", p)
	}
	d := Pt(10, 20).Sub(Pt(4, 5))
	if d != Pt(6, 15) {
		t.Errorf("Sub() = %v, expected (6, 15)", d)
	}
}

func TestSizeEmpty(t *testing.T) {
	tests := []struct {
		size     Size
		expected bool
	}{
		{Sz(800, 600), false},
		{Sz(0, 600), true},
		{Sz(800, 0), true},
		{Sz(-1, 10), true},
	}

	for _, tc := range tests {
		if got := tc.size.Empty(); got != tc.expected {
			t.Errorf("%v.Empty() = %v, expected %v", tc.size, got, tc.expected)
		}
	}
}

func TestBoxContains(t *testing.T) {
	b := BoxAround(Pt(200, 100), Sz(120, 100))

	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"center", Pt(200, 100), true},
		{"top-left corner (inclusive)", Pt(140, 50), true},
		{"bottom-right corner (inclusive)", Pt(260, 150), true},
		{"outside left", Pt(139, 100), false},
		{"outside right", Pt(261, 100), false},
		{"outside top", Pt(200, 49), false},
		{"outside bottom", Pt(200, 151), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
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
		{7, 50, 30, 50}, // inverted range collapses to min
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

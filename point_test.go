package kdtree

import (
	"errors"
	"math"
	"testing"
)

func TestValidatePoint_WrongDimensions(t *testing.T) {
	err := validatePoint(Point{1, 2, 3}, 2)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestValidatePoint_NonFinite(t *testing.T) {
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := validatePoint(Point{0, bad}, 2)
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("coordinate %v: expected ValidationError, got %v", bad, err)
		}
	}
}

func TestValidatePoint_Valid(t *testing.T) {
	if err := validatePoint(Point{0, -1.5}, 2); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestPointEqual_Tolerance(t *testing.T) {
	a := Point{1, 2}
	b := Point{1 + 1e-12, 2 - 1e-12}
	if !a.Equal(b, 1e-10) {
		t.Error("points within tolerance should compare equal")
	}
	if a.Equal(b, 1e-14) {
		t.Error("points outside tolerance should not compare equal")
	}
	if a.Equal(Point{1}, 1) {
		t.Error("points of different dimensionality are never equal")
	}
}

func TestPointClone_Independent(t *testing.T) {
	a := Point{1, 2}
	c := a.Clone()
	c[0] = 99
	if a[0] != 1 {
		t.Error("mutating a clone must not affect the original")
	}
	if Point(nil).Clone() != nil {
		t.Error("cloning a nil point should stay nil")
	}
}

func TestBoundingBox_Validate(t *testing.T) {
	b := BoundingBox{Min: Point{0, 0}, Max: Point{1, 1}}
	if err := b.validate(2); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	inverted := BoundingBox{Min: Point{2, 0}, Max: Point{1, 1}}
	var ve *ValidationError
	if err := inverted.validate(2); !errors.As(err, &ve) {
		t.Errorf("expected ValidationError for inverted bounds, got %v", err)
	}

	short := BoundingBox{Min: Point{0}, Max: Point{1, 1}}
	if err := short.validate(2); !errors.As(err, &ve) {
		t.Errorf("expected ValidationError for short min, got %v", err)
	}
}

func TestBoundingBox_Contains(t *testing.T) {
	b := BoundingBox{Min: Point{0, 0}, Max: Point{2, 2}}

	if !b.contains(Point{2, 2}, false) {
		t.Error("inclusive box should contain its max corner")
	}
	if b.contains(Point{2, 2}, true) {
		t.Error("half-open box should exclude its max corner")
	}
	if !b.contains(Point{0, 0}, true) {
		t.Error("half-open box should include its min corner")
	}
	if b.contains(Point{-0.1, 1}, false) {
		t.Error("point below min should be outside")
	}
}

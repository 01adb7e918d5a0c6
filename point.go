package kdtree

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Point is an ordered sequence of finite coordinates. The tree always stores
// its own copy of a point; callers may reuse or mutate their slice after an
// operation returns.
type Point []float64

// Clone returns an independent copy of p.
func (p Point) Clone() Point {
	if p == nil {
		return nil
	}
	c := make(Point, len(p))
	copy(c, p)
	return c
}

// Equal reports whether p and q have the same dimensionality and every
// coordinate pair differs by at most tol.
func (p Point) Equal(q Point, tol float64) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if !scalar.EqualWithinAbs(p[i], q[i], tol) {
			return false
		}
	}
	return true
}

// validatePoint checks that p has exactly dims coordinates, all finite.
func validatePoint(p Point, dims int) error {
	if len(p) != dims {
		return &ValidationError{Reason: fmt.Sprintf("point has %d coordinates, want %d", len(p), dims)}
	}
	for i, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &ValidationError{Reason: fmt.Sprintf("coordinate %d is not finite (%v)", i, v)}
		}
	}
	return nil
}

// BoundingBox is an axis-aligned box used as a range-query argument.
// Min and Max must have the tree's dimensionality with Min[d] <= Max[d]
// for every dimension d. It is never persisted by the tree.
type BoundingBox struct {
	Min Point
	Max Point
}

// validate checks dimensionality, finiteness, and Min <= Max per dimension.
func (b BoundingBox) validate(dims int) error {
	if err := validatePoint(b.Min, dims); err != nil {
		return err
	}
	if err := validatePoint(b.Max, dims); err != nil {
		return err
	}
	for d := range b.Min {
		if b.Min[d] > b.Max[d] {
			return &ValidationError{Reason: fmt.Sprintf("bounds inverted on dimension %d: min %v > max %v", d, b.Min[d], b.Max[d])}
		}
	}
	return nil
}

// contains reports whether p lies within b. With exclusive set, the box is
// half-open: Min is included, Max is not.
func (b BoundingBox) contains(p Point, exclusive bool) bool {
	for d := range p {
		if p[d] < b.Min[d] {
			return false
		}
		if exclusive {
			if p[d] >= b.Max[d] {
				return false
			}
		} else if p[d] > b.Max[d] {
			return false
		}
	}
	return true
}

package kdtree

import (
	"errors"
	"math"
	"testing"
)

func TestEdgeCase_OneDimensionalTree(t *testing.T) {
	tree := mustNew(t, DefaultConfig(1))
	for _, v := range []float64{5, 2, 8, 1, 9} {
		if res := tree.Insert(Point{v}); !res.Success {
			t.Fatalf("insert %v failed: %v", v, res.Err)
		}
	}
	res := tree.NearestNeighbor(Point{6}, NearestNeighborOptions{})
	if !res.Success || !res.Point.Equal(Point{5}, floatTol) {
		t.Errorf("nearest to 6 = %v, want {5}", res.Point)
	}
	checkPartition(t, tree)
}

func TestEdgeCase_AllIdenticalPoints(t *testing.T) {
	cfg := DefaultConfig(2)
	cfg.AllowDuplicates = true
	tree := mustNew(t, cfg)
	for i := 0; i < 10; i++ {
		if res := tree.Insert(Point{5, 5}); !res.Success {
			t.Fatalf("insert %d failed: %v", i, res.Err)
		}
	}

	if tree.Size() != 10 {
		t.Fatalf("Size() = %d, want 10", tree.Size())
	}
	res := tree.KNearestNeighbors(Point{5, 5}, KNNOptions{K: 5})
	if !res.Success || len(res.Neighbors) != 5 {
		t.Fatalf("expected 5 neighbors, got %d (err=%v)", len(res.Neighbors), res.Err)
	}
	for _, nb := range res.Neighbors {
		if nb.Distance != 0 {
			t.Errorf("expected distance 0, got %v", nb.Distance)
		}
	}
}

func TestEdgeCase_NegativeCoordinates(t *testing.T) {
	tree := mustNew(t, DefaultConfig(2))
	pts := []Point{{-5, -5}, {-1, 3}, {2, -7}, {0, 0}}
	for _, p := range pts {
		tree.Insert(p)
	}
	res := tree.RangeQuery(BoundingBox{Min: Point{-10, -10}, Max: Point{10, 10}}, RangeQueryOptions{})
	if !res.Success || len(res.Points) != 4 {
		t.Errorf("got %d points, want 4", len(res.Points))
	}
	checkPartition(t, tree)
}

func TestEdgeCase_QueriesNeverPanic(t *testing.T) {
	tree := mustNew(t, DefaultConfig(2))

	// Every expected failure surfaces as a structured result.
	cases := []func() OpReport{
		func() OpReport { return tree.Insert(Point{math.NaN(), 0}).OpReport },
		func() OpReport { return tree.Search(Point{math.Inf(1), 0}).OpReport },
		func() OpReport { return tree.Remove(nil).OpReport },
		func() OpReport {
			return tree.NearestNeighbor(Point{1, 2, 3}, NearestNeighborOptions{}).OpReport
		},
		func() OpReport {
			return tree.RangeQuery(BoundingBox{}, RangeQueryOptions{}).OpReport
		},
	}
	for i, fn := range cases {
		rep := fn()
		if rep.Success || rep.Err == nil {
			t.Errorf("case %d: expected structured failure, got %+v", i, rep)
		}
		if rep.Duration < 0 {
			t.Errorf("case %d: missing duration", i)
		}
	}
}

func TestEdgeCase_ErrorTaxonomy(t *testing.T) {
	tree := mustNew(t, DefaultConfig(2))

	var ve *ValidationError
	if err := tree.Insert(Point{1}).Err; !errors.As(err, &ve) {
		t.Errorf("wrong-arity insert: want ValidationError, got %v", err)
	}

	var et *EmptyTreeError
	if err := tree.Search(Point{1, 1}).Err; !errors.As(err, &et) {
		t.Errorf("empty-tree search: want EmptyTreeError, got %v", err)
	}

	tree.Insert(Point{1, 1})
	var de *DuplicateError
	if err := tree.Insert(Point{1, 1}).Err; !errors.As(err, &de) {
		t.Errorf("duplicate insert: want DuplicateError, got %v", err)
	}

	var nf *NotFoundError
	if err := tree.Remove(Point{9, 9}).Err; !errors.As(err, &nf) {
		t.Errorf("absent remove: want NotFoundError, got %v", err)
	}
}

func TestEdgeCase_DegenerateInsertionStillExact(t *testing.T) {
	// Monotone insertion order degrades the tree to a spine; queries stay
	// exact, only slower.
	tree := mustNew(t, DefaultConfig(2))
	pts := make([]Point, 30)
	for i := range pts {
		pts[i] = Point{float64(i), float64(i)}
		tree.Insert(pts[i])
	}

	res := tree.NearestNeighbor(Point{14.4, 14.4}, NearestNeighborOptions{})
	if !res.Success || !res.Point.Equal(Point{14, 14}, floatTol) {
		t.Errorf("nearest = %v, want {14,14}", res.Point)
	}

	rq := tree.RangeQuery(BoundingBox{Min: Point{10, 10}, Max: Point{12, 12}}, RangeQueryOptions{})
	if !rq.Success || len(rq.Points) != 3 {
		t.Errorf("got %d points in range, want 3", len(rq.Points))
	}
}

func TestEdgeCase_ZeroToleranceExactEquality(t *testing.T) {
	cfg := DefaultConfig(2)
	cfg.Tolerance = 0
	tree, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// Tolerance 0 is replaced by the default; construct via explicit field.
	if tree.cfg.Tolerance != DefaultTolerance {
		t.Fatalf("zero tolerance should default to %v", DefaultTolerance)
	}
}

package kdtree

import "testing"

func TestNearestNeighborBatch_MatchesSequential(t *testing.T) {
	pts := randomPoints(300, 2, 91)
	tree := mustNew(t, DefaultConfig(2))
	for _, p := range pts {
		tree.Insert(p)
	}
	queries := randomPoints(64, 2, 92)

	sequential := tree.NearestNeighborBatch(queries, NearestNeighborOptions{}, 1)
	parallel := tree.NearestNeighborBatch(queries, NearestNeighborOptions{}, 8)

	if len(sequential) != len(queries) || len(parallel) != len(queries) {
		t.Fatalf("result lengths %d/%d, want %d", len(sequential), len(parallel), len(queries))
	}
	for i := range queries {
		if !sequential[i].Success || !parallel[i].Success {
			t.Fatalf("query %d failed: seq=%v par=%v", i, sequential[i].Err, parallel[i].Err)
		}
		if !almostEqual(sequential[i].Distance, parallel[i].Distance, floatTol) {
			t.Errorf("query %d: sequential %v, parallel %v",
				i, sequential[i].Distance, parallel[i].Distance)
		}
	}
}

func TestNearestNeighborBatch_PerQueryFailures(t *testing.T) {
	tree := mustNew(t, DefaultConfig(2))
	tree.Insert(Point{0, 0})

	queries := []Point{{1, 1}, {1}, {2, 2}} // middle query is invalid
	results := tree.NearestNeighborBatch(queries, NearestNeighborOptions{}, 4)

	if !results[0].Success || !results[2].Success {
		t.Error("valid queries should succeed despite a failing sibling")
	}
	if results[1].Success || results[1].Err == nil {
		t.Error("invalid query should fail in its own result")
	}
}

func TestNearestNeighborBatch_Empty(t *testing.T) {
	tree := mustNew(t, DefaultConfig(2))
	tree.Insert(Point{0, 0})
	if got := tree.NearestNeighborBatch(nil, NearestNeighborOptions{}, 4); len(got) != 0 {
		t.Errorf("expected empty result slice, got %d", len(got))
	}
}

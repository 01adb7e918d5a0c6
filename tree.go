package kdtree

import (
	"log/slog"
	"time"
)

// Tree is a k-dimensional binary space-partitioning tree over points.
// Construct one with [New]; the zero value is not usable.
type Tree struct {
	root *node
	dims int
	cfg  Config

	// size counts live points (insertions minus successful removals),
	// independent of physical node count.
	size int

	stats     statistics
	observers []Observer
	logger    *slog.Logger
	createdAt time.Time
}

// New constructs a Tree from cfg. Zero-valued optional fields get defaults;
// an invalid config returns an error. InitialPoints are inserted via batch
// insertion: items that fail are logged and skipped.
func New(cfg Config) (*Tree, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	t := &Tree{
		dims:      cfg.Dimensions,
		cfg:       cfg,
		observers: cfg.Observers,
		logger:    cfg.Logger,
		createdAt: time.Now(),
	}
	t.stats.enabled = cfg.EnableStats

	if len(cfg.InitialPoints) > 0 {
		res := t.InsertBatch(cfg.InitialPoints)
		for _, be := range res.Errors {
			if t.logger != nil {
				t.logger.Warn("kdtree: initial point rejected",
					"index", be.Index, "point", be.Point, "err", be.Err)
			}
		}
	}
	return t, nil
}

// Size returns the number of live points in the tree.
func (t *Tree) Size() int { return t.size }

// IsEmpty reports whether the tree holds no points.
func (t *Tree) IsEmpty() bool { return t.size == 0 }

// Dimensions returns the dimensionality k fixed at construction.
func (t *Tree) Dimensions() int { return t.dims }

// Points returns the live point set as an in-order snapshot of independent
// copies. The order is deterministic for a given tree shape but is not part
// of the API contract.
func (t *Tree) Points() []Point {
	out := make([]Point, 0, t.size)
	var walk func(n *node)
	walk = func(n *node) {
		if n == nil {
			return
		}
		walk(n.left)
		out = append(out, n.point.Clone())
		walk(n.right)
	}
	walk(t.root)
	return out
}

// Clear discards every point. Operation counters are monotonic and survive;
// tree shape and size reset.
func (t *Tree) Clear() (res ClearResult) {
	start := time.Now()
	defer func() {
		t.complete(OpClear, start, &res.OpReport, recover())
		t.notify(OpClear, res)
	}()

	res.Removed = t.size
	t.root = nil
	t.size = 0
	res.Success = true
	if t.logger != nil {
		t.logger.Debug("kdtree: cleared", "removed", res.Removed)
	}
	return res
}

// equal compares two points under the configured tolerance.
func (t *Tree) equal(a, b Point) bool {
	return a.Equal(b, t.cfg.Tolerance)
}

// complete stamps the common report fields at the end of a public operation
// and converts a recovered panic (rec, the value returned by recover in the
// caller's deferred function) into a structured InternalError so that no
// fault crosses the API.
func (t *Tree) complete(op Operation, start time.Time, rep *OpReport, rec any) {
	if rec != nil {
		rep.Success = false
		rep.Err = &InternalError{Cause: rec}
		if t.logger != nil {
			t.logger.Error("kdtree: recovered internal fault", "op", string(op), "fault", rec)
		}
	}
	rep.Duration = time.Since(start)
	t.stats.record(op, rep.Duration)
}

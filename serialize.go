package kdtree

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Snapshot is the serialized form of a tree: the live point multiset plus
// the configuration and metadata needed to reconstruct an equivalent tree
// via bulk construction. The physical node layout is not preserved;
// deserialization always yields a balanced tree. Observers and loggers are
// runtime wiring and are not captured.
type Snapshot struct {
	ID              string    `json:"id"`
	CreatedAt       time.Time `json:"created_at"`
	TreeCreatedAt   time.Time `json:"tree_created_at"`
	Dimensions      int       `json:"dimensions"`
	MaxDepth        int       `json:"max_depth"`
	AllowDuplicates bool      `json:"allow_duplicates"`
	Tolerance       float64   `json:"tolerance"`
	EnableStats     bool      `json:"enable_stats"`
	PointCount      int       `json:"point_count"`
	Height          int       `json:"height"`
	Points          []Point   `json:"points"`
}

// Snapshot captures the tree's current point set and configuration under a
// fresh snapshot ID.
func (t *Tree) Snapshot() Snapshot {
	return Snapshot{
		ID:              uuid.NewString(),
		CreatedAt:       time.Now(),
		TreeCreatedAt:   t.createdAt,
		Dimensions:      t.dims,
		MaxDepth:        t.cfg.MaxDepth,
		AllowDuplicates: t.cfg.AllowDuplicates,
		Tolerance:       t.cfg.Tolerance,
		EnableStats:     t.cfg.EnableStats,
		PointCount:      t.size,
		Height:          t.height(),
		Points:          t.Points(),
	}
}

// Serialize encodes the tree as a JSON snapshot.
func (t *Tree) Serialize() ([]byte, error) {
	return json.Marshal(t.Snapshot())
}

// Deserialize decodes a JSON snapshot and reconstructs an equivalent tree.
func Deserialize(data []byte) (*Tree, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("kdtree: decode snapshot: %w", err)
	}
	return FromSnapshot(snap)
}

// FromSnapshot reconstructs a tree from a snapshot using median-split bulk
// construction, so the result is balanced regardless of the source tree's
// shape. Every snapshot point is validated before any node is built.
func FromSnapshot(snap Snapshot) (*Tree, error) {
	t, err := New(Config{
		Dimensions:      snap.Dimensions,
		MaxDepth:        snap.MaxDepth,
		AllowDuplicates: snap.AllowDuplicates,
		Tolerance:       snap.Tolerance,
		EnableStats:     snap.EnableStats,
	})
	if err != nil {
		return nil, err
	}

	for i, p := range snap.Points {
		if err := validatePoint(p, t.dims); err != nil {
			return nil, fmt.Errorf("kdtree: snapshot point %d: %w", i, err)
		}
	}

	pts := make([]Point, len(snap.Points))
	for i, p := range snap.Points {
		pts[i] = p.Clone()
	}
	t.root = t.buildBalanced(pts, 0)
	t.size = len(snap.Points)
	return t, nil
}

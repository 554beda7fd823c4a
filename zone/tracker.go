// SPDX-License-Identifier: MIT
// Package zone records the snowball wave ("zone") at which each sampled node
// was first discovered.
//
// A Tracker is a pure mapping built alongside traversal; it never touches the
// graph it describes. The first assignment for a node wins and is never
// overwritten, so every node carries exactly one zone and zones are
// non-decreasing in discovery order.
package zone

// Seed is the zone of every seed node.
const Seed = 0

// Record is the typed per-node entry kept by a Tracker.
type Record struct {
	Node int
	Zone int
}

// Tracker maps node IDs to their first-discovery zone.
// A Tracker is not safe for concurrent mutation; each sample owns its own.
type Tracker struct {
	index   map[int]int // node → position in records
	records []Record    // discovery order
}

// New returns an empty Tracker sized for roughly capacity nodes.
func New(capacity int) *Tracker {
	if capacity < 0 {
		capacity = 0
	}

	return &Tracker{
		index:   make(map[int]int, capacity),
		records: make([]Record, 0, capacity),
	}
}

// Initialize marks every seed with zone 0. Seeds already present keep their
// existing zone, so duplicate seeds are harmless.
func (t *Tracker) Initialize(seeds []int) {
	for _, s := range seeds {
		t.MarkIfUnseen(s, Seed)
	}
}

// MarkIfUnseen assigns zone to node only if node has no entry yet.
// It reports whether the assignment happened.
func (t *Tracker) MarkIfUnseen(node, zone int) bool {
	if _, seen := t.index[node]; seen {
		return false
	}
	t.index[node] = len(t.records)
	t.records = append(t.records, Record{Node: node, Zone: zone})

	return true
}

// Contains reports whether node has been assigned a zone.
func (t *Tracker) Contains(node int) bool {
	_, ok := t.index[node]
	return ok
}

// Zone returns the zone of node and whether node is tracked.
func (t *Tracker) Zone(node int) (int, bool) {
	pos, ok := t.index[node]
	if !ok {
		return 0, false
	}

	return t.records[pos].Zone, true
}

// Len returns the number of tracked nodes.
func (t *Tracker) Len() int { return len(t.records) }

// Records returns a copy of all entries in discovery order.
func (t *Tracker) Records() []Record {
	out := make([]Record, len(t.records))
	copy(out, t.records)

	return out
}

// Map returns a node → zone snapshot.
func (t *Tracker) Map() map[int]int {
	out := make(map[int]int, len(t.records))
	for _, r := range t.records {
		out[r.Node] = r.Zone
	}

	return out
}

// MaxZone returns the largest zone assigned, or -1 for an empty tracker.
func (t *Tracker) MaxZone() int {
	maxZone := -1
	for _, r := range t.records {
		if r.Zone > maxZone {
			maxZone = r.Zone
		}
	}

	return maxZone
}

// Counts returns the number of nodes per zone; index i holds the size of zone i.
// The result has MaxZone()+1 entries.
func (t *Tracker) Counts() []int {
	counts := make([]int, t.MaxZone()+1)
	for _, r := range t.records {
		counts[r.Zone]++
	}

	return counts
}

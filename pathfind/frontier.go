package pathfind

import "container/heap"

// Frontier is a min-priority queue of (key, node) entries.
//
// Ties on key are broken by insertion order, so a run is reproducible.
// The same node may be pushed many times; the queue never removes or
// reorders existing entries, and callers discard superseded ones on pop.
type Frontier[ID comparable] struct {
	h   entryHeap[ID]
	seq uint64
}

// NewFrontier returns an empty Frontier with room for capacity entries.
func NewFrontier[ID comparable](capacity int) *Frontier[ID] {
	return &Frontier[ID]{h: make(entryHeap[ID], 0, capacity)}
}

// Push inserts node with the given key.
// Complexity: O(log n).
func (f *Frontier[ID]) Push(key float64, node ID) {
	heap.Push(&f.h, entry[ID]{key: key, seq: f.seq, node: node})
	f.seq++
}

// PopMin removes and returns the entry with the smallest key.
// ok is false when the Frontier is empty.
// Complexity: O(log n).
func (f *Frontier[ID]) PopMin() (key float64, node ID, ok bool) {
	if len(f.h) == 0 {
		return 0, node, false
	}
	e := heap.Pop(&f.h).(entry[ID])

	return e.key, e.node, true
}

// Len returns the number of pending entries, stale ones included.
func (f *Frontier[ID]) Len() int { return len(f.h) }

// Empty reports whether no entries are pending.
func (f *Frontier[ID]) Empty() bool { return len(f.h) == 0 }

// entry is one pending frontier item; seq is the insertion tie-breaker.
type entry[ID comparable] struct {
	key  float64
	seq  uint64
	node ID
}

// entryHeap implements heap.Interface ordered by (key, seq) ascending.
type entryHeap[ID comparable] []entry[ID]

func (h entryHeap[ID]) Len() int { return len(h) }

func (h entryHeap[ID]) Less(i, j int) bool {
	if h[i].key != h[j].key {
		return h[i].key < h[j].key
	}
	return h[i].seq < h[j].seq
}

func (h entryHeap[ID]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap[ID]) Push(x any) { *h = append(*h, x.(entry[ID])) }

func (h *entryHeap[ID]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}

package geo

import (
	"errors"
	"math"
)

// ErrEmptyIndex is returned when Nearest is asked of an index with no nodes.
var ErrEmptyIndex = errors.New("geo: nearest-node index is empty")

type located[ID comparable] struct {
	id ID
	at Point
}

// Index resolves arbitrary coordinates to the closest known node.
// Lookup is a linear scan by great-circle distance; ties go to the node
// added first. An Index is safe for concurrent Nearest calls once filled.
type Index[ID comparable] struct {
	items []located[ID]
}

// NewIndex returns an empty index with room for capacity nodes.
func NewIndex[ID comparable](capacity int) *Index[ID] {
	return &Index[ID]{items: make([]located[ID], 0, capacity)}
}

// Add registers id at p.
func (ix *Index[ID]) Add(id ID, p Point) {
	ix.items = append(ix.items, located[ID]{id: id, at: p})
}

// Len is the number of registered nodes.
func (ix *Index[ID]) Len() int { return len(ix.items) }

// Nearest returns the node closest to p and its distance in metres.
func (ix *Index[ID]) Nearest(p Point) (ID, float64, error) {
	var zero ID
	if len(ix.items) == 0 {
		return zero, 0, ErrEmptyIndex
	}

	best, bestD := 0, math.Inf(1)
	for i, it := range ix.items {
		if d := Haversine(p, it.at); d < bestD {
			best, bestD = i, d
		}
	}

	return ix.items[best].id, bestD, nil
}

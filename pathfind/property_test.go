package pathfind_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/pathfind"
)

// randomDigraph samples a directed graph over n nodes where each ordered
// pair is an arc with probability p and an integer weight in [0, 9].
// Integer weights keep every path sum exact in float64.
func randomDigraph(t *testing.T, rng *rand.Rand, n int, p float64) *core.Graph[int] {
	t.Helper()
	b := core.NewBuilder[int]()
	for i := 0; i < n; i++ {
		require.NoError(t, b.AddNode(i))
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && rng.Float64() < p {
				require.NoError(t, b.AddEdge(i, j, float64(rng.Intn(10))))
			}
		}
	}

	return b.Build()
}

// bruteForce enumerates every simple path from src to dst.
func bruteForce(g *core.Graph[int], src, dst int) float64 {
	best := math.Inf(1)
	onPath := map[int]bool{src: true}
	var walk func(u int, cost float64)
	walk = func(u int, cost float64) {
		if u == dst {
			best = math.Min(best, cost)
			return
		}
		for v, w := range g.Adjacent(u) {
			if onPath[v] {
				continue
			}
			onPath[v] = true
			walk(v, cost+w)
			onPath[v] = false
		}
	}
	walk(src, 0)

	return best
}

func TestProperty_DijkstraMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 60; trial++ {
		g := randomDigraph(t, rng, 7, 0.35)
		for src := 0; src < 7; src++ {
			for dst := 0; dst < 7; dst++ {
				want := bruteForce(g, src, dst)
				res, err := pathfind.Dijkstra(g, src, dst)
				require.NoError(t, err)
				require.Equal(t, want, res.Cost, "trial %d %d→%d", trial, src, dst)
				require.Equal(t, !math.IsInf(want, 1), res.Found)
				if res.Found {
					cost, err := pathfind.PathCost(g, res.Path)
					require.NoError(t, err)
					require.Equal(t, res.Cost, cost)
				} else {
					require.Equal(t, []int{dst}, res.Path)
				}
			}
		}
	}
}

func TestProperty_AStarZeroMatchesDijkstra(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 40; trial++ {
		g := randomDigraph(t, rng, 12, 0.2)
		for src := 0; src < 12; src++ {
			dst := (src*5 + trial) % 12
			d, err := pathfind.Dijkstra(g, src, dst)
			require.NoError(t, err)
			a, err := pathfind.AStar(g, src, dst, pathfind.Zero[int]())
			require.NoError(t, err)
			require.Equal(t, d, a, "zero heuristic must replay Dijkstra exactly")
		}
	}
}

// lattice is a rows×cols grid of two-way unit streets with integer
// coordinates; node id = r*cols + c.
type lattice struct {
	g    *core.Graph[int]
	cols int
}

func newLattice(t *testing.T, rows, cols int) lattice {
	t.Helper()
	b := core.NewBuilder[int]()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := r*cols + c
			require.NoError(t, b.AddNode(u))
			if c+1 < cols {
				require.NoError(t, b.AddEdge(u, u+1, 1))
				require.NoError(t, b.AddEdge(u+1, u, 1))
			}
			if r+1 < rows {
				require.NoError(t, b.AddEdge(u, u+cols, 1))
				require.NoError(t, b.AddEdge(u+cols, u, 1))
			}
		}
	}

	return lattice{g: b.Build(), cols: cols}
}

// euclid is the straight-line heuristic on lattice coordinates.
func (l lattice) euclid(u, v int) float64 {
	dr := float64(u/l.cols - v/l.cols)
	dc := float64(u%l.cols - v%l.cols)
	return math.Hypot(dr, dc)
}

func TestProperty_EuclideanAStarNeverExpandsMore(t *testing.T) {
	l := newLattice(t, 15, 15)
	h := pathfind.HeuristicFunc[int](l.euclid)
	pairs := [][2]int{{0, 224}, {7, 217}, {105, 119}, {0, 14}, {112, 0}, {30, 31}}
	for _, pr := range pairs {
		d, err := pathfind.Dijkstra(l.g, pr[0], pr[1])
		require.NoError(t, err)
		a, err := pathfind.AStar(l.g, pr[0], pr[1], h)
		require.NoError(t, err)

		assert.Equal(t, d.Cost, a.Cost, "%v: same optimum", pr)
		assert.LessOrEqual(t, a.Expanded, d.Expanded, "%v: A* expanded more than Dijkstra", pr)
		cost, err := pathfind.PathCost(l.g, a.Path)
		require.NoError(t, err)
		assert.Equal(t, a.Cost, cost)
	}
}

func TestProperty_ConcurrentSearchesShareGraph(t *testing.T) {
	l := newLattice(t, 10, 10)
	want, err := pathfind.Dijkstra(l.g, 0, 99)
	require.NoError(t, err)

	done := make(chan pathfind.Result[int], 16)
	for i := 0; i < cap(done); i++ {
		go func() {
			res, _ := pathfind.AStar(l.g, 0, 99, pathfind.HeuristicFunc[int](l.euclid))
			done <- res
		}()
	}
	for i := 0; i < cap(done); i++ {
		res := <-done
		assert.Equal(t, want.Cost, res.Cost)
	}
}

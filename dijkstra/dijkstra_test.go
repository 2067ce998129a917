package dijkstra_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lowerbound/core"
	"github.com/katalvlaran/lowerbound/dijkstra"
)

// adjList is a minimal dense Adjacency for tests: adjList[u] are u's arcs.
type adjList [][]dijkstra.Arc

func (a adjList) Order() int                { return len(a) }
func (a adjList) Arcs(u int) []dijkstra.Arc { return a[u] }

func arc(to int, w float64) dijkstra.Arc {
	return dijkstra.Arc{To: to, Weight: w, Modes: core.AllModes}
}

func modeArc(to int, w float64, m core.Mode) dijkstra.Arc {
	return dijkstra.Arc{To: to, Weight: w, Modes: m}
}

var inf = math.Inf(1)

func equalDist(t *testing.T, got, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("len(dist)=%d; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("dist[%d]=%v; want %v", i, got[i], want[i])
		}
	}
}

// 1. Validation Tests

func TestNilGraph(t *testing.T) {
	_, _, err := dijkstra.Run(nil, dijkstra.WithSeed(0, 0))
	if !errors.Is(err, dijkstra.ErrNilGraph) {
		t.Fatalf("expected ErrNilGraph, got %v", err)
	}
}

func TestSeedOutOfRange(t *testing.T) {
	g := adjList{{}, {}}
	for _, node := range []int{-1, 2, 100} {
		_, _, err := dijkstra.Run(g, dijkstra.WithSeed(node, 0))
		if !errors.Is(err, dijkstra.ErrSeedOutOfRange) {
			t.Errorf("seed %d: expected ErrSeedOutOfRange, got %v", node, err)
		}
	}
}

func TestNegativeSeedCost(t *testing.T) {
	g := adjList{{}}
	for _, c := range []float64{-1, math.NaN()} {
		_, _, err := dijkstra.Run(g, dijkstra.WithSeed(0, c))
		if !errors.Is(err, dijkstra.ErrNegativeWeight) {
			t.Errorf("cost %v: expected ErrNegativeWeight, got %v", c, err)
		}
	}
}

func TestNegativeArcWeight(t *testing.T) {
	g := adjList{{arc(1, -2)}, {}}
	_, _, err := dijkstra.Run(g, dijkstra.WithSeed(0, 0))
	if !errors.Is(err, dijkstra.ErrNegativeWeight) {
		t.Fatalf("expected ErrNegativeWeight, got %v", err)
	}
}

func TestNegativeArcUnreachableIsIgnored(t *testing.T) {
	// The bad arc hangs off a node no seed reaches, so it is never relaxed.
	g := adjList{{arc(1, 1)}, {}, {arc(0, -5)}}
	dist, _, err := dijkstra.Run(g, dijkstra.WithSeed(0, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	equalDist(t, dist, []float64{0, 1, inf})
}

func TestOptionPanics(t *testing.T) {
	cases := map[string]func(){
		"MaxDistance negative":  func() { dijkstra.WithMaxDistance(-1) },
		"MaxDistance NaN":       func() { dijkstra.WithMaxDistance(math.NaN()) },
		"InfThreshold zero":     func() { dijkstra.WithInfEdgeThreshold(0) },
		"InfThreshold negative": func() { dijkstra.WithInfEdgeThreshold(-3) },
	}
	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic")
				}
			}()
			fn()
		})
	}
}

// 2. Functional Tests

func TestNoSeedsAllInfinite(t *testing.T) {
	g := adjList{{arc(1, 1)}, {}}
	dist, prev, err := dijkstra.Run(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prev != nil {
		t.Errorf("prev should be nil without WithReturnPath")
	}
	equalDist(t, dist, []float64{inf, inf})
}

func TestEmptyGraph(t *testing.T) {
	dist, _, err := dijkstra.Run(adjList{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dist) != 0 {
		t.Fatalf("expected empty result, got %v", dist)
	}
}

func TestChain(t *testing.T) {
	// 0→1 (5), 1→2 (3), 2→3 (2)
	g := adjList{{arc(1, 5)}, {arc(2, 3)}, {arc(3, 2)}, {}}
	dist, prev, err := dijkstra.Run(g, dijkstra.WithSeed(0, 0), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	equalDist(t, dist, []float64{0, 5, 8, 10})
	wantPrev := []int{dijkstra.NoPredecessor, 0, 1, 2}
	for i, p := range wantPrev {
		if prev[i] != p {
			t.Errorf("prev[%d]=%d; want %d", i, prev[i], p)
		}
	}
}

func TestShorterDetour(t *testing.T) {
	// 0→2 directly costs 10; 0→1→2 costs 3.
	g := adjList{{arc(2, 10), arc(1, 1)}, {arc(2, 2)}, {}}
	dist, prev, err := dijkstra.Run(g, dijkstra.WithSeed(0, 0), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	equalDist(t, dist, []float64{0, 1, 3})
	if prev[2] != 1 {
		t.Errorf("prev[2]=%d; want 1", prev[2])
	}
}

func TestMultiSeed(t *testing.T) {
	// Two seeds at different costs feeding a shared node.
	g := adjList{{arc(2, 4)}, {arc(2, 1)}, {}}
	dist, _, err := dijkstra.Run(g,
		dijkstra.WithSeeds(dijkstra.Seed{Node: 0, Cost: 0}, dijkstra.Seed{Node: 1, Cost: 2}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	equalDist(t, dist, []float64{0, 2, 3})
}

func TestDuplicateSeedKeepsCheapest(t *testing.T) {
	g := adjList{{arc(1, 1)}, {}}
	dist, _, err := dijkstra.Run(g, dijkstra.WithSeed(0, 7), dijkstra.WithSeed(0, 3), dijkstra.WithSeed(0, 9))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	equalDist(t, dist, []float64{3, 4})
}

func TestZeroWeightArcs(t *testing.T) {
	g := adjList{{arc(1, 0)}, {arc(2, 0)}, {}}
	dist, _, err := dijkstra.Run(g, dijkstra.WithSeed(0, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	equalDist(t, dist, []float64{0, 0, 0})
}

func TestCycleTerminates(t *testing.T) {
	g := adjList{{arc(1, 1)}, {arc(2, 1)}, {arc(0, 1)}}
	dist, _, err := dijkstra.Run(g, dijkstra.WithSeed(0, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	equalDist(t, dist, []float64{0, 1, 2})
}

func TestDeterministicTies(t *testing.T) {
	// Both 1 and 2 reach 3 at cost 2; node 1 settles first, so it wins prev[3].
	g := adjList{{arc(2, 1), arc(1, 1)}, {arc(3, 1)}, {arc(3, 1)}, {}}
	for i := 0; i < 20; i++ {
		_, prev, err := dijkstra.Run(g, dijkstra.WithSeed(0, 0), dijkstra.WithReturnPath())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if prev[3] != 1 {
			t.Fatalf("run %d: prev[3]=%d; want 1", i, prev[3])
		}
	}
}

// 3. Filter Tests

func TestModeFilter(t *testing.T) {
	// A cheap walk-only arc and an expensive car arc to the same node.
	g := adjList{{modeArc(1, 1, core.Walk), modeArc(1, 10, core.Car)}, {}}

	dist, _, err := dijkstra.Run(g, dijkstra.WithSeed(0, 0), dijkstra.WithModes(core.Car))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	equalDist(t, dist, []float64{0, 10})

	dist, _, _ = dijkstra.Run(g, dijkstra.WithSeed(0, 0), dijkstra.WithModes(core.Transit))
	equalDist(t, dist, []float64{0, inf})

	// An empty mask means every mode.
	dist, _, _ = dijkstra.Run(g, dijkstra.WithSeed(0, 0), dijkstra.WithModes(0))
	equalDist(t, dist, []float64{0, 1})
}

func TestMaxDistance(t *testing.T) {
	g := adjList{{arc(1, 2)}, {arc(2, 2)}, {arc(3, 2)}, {}}
	dist, _, err := dijkstra.Run(g, dijkstra.WithSeed(0, 0), dijkstra.WithMaxDistance(4))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	equalDist(t, dist, []float64{0, 2, 4, inf})
}

func TestMaxDistanceDropsFarSeed(t *testing.T) {
	g := adjList{{}, {}}
	dist, _, _ := dijkstra.Run(g,
		dijkstra.WithSeed(0, 1), dijkstra.WithSeed(1, 50), dijkstra.WithMaxDistance(10))
	equalDist(t, dist, []float64{1, inf})
}

func TestInfEdgeThreshold(t *testing.T) {
	g := adjList{{arc(1, 100), arc(2, 1)}, {}, {arc(1, 200)}}
	dist, _, err := dijkstra.Run(g, dijkstra.WithSeed(0, 0), dijkstra.WithInfEdgeThreshold(100))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	equalDist(t, dist, []float64{0, inf, 1})
}

func TestInfiniteArcIsWall(t *testing.T) {
	g := adjList{{arc(1, inf)}, {}}
	dist, _, err := dijkstra.Run(g, dijkstra.WithSeed(0, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	equalDist(t, dist, []float64{0, inf})
}

// 4. Concurrency Tests

func TestConcurrentRunsShareGraph(t *testing.T) {
	g := adjList{{arc(1, 1)}, {arc(2, 1)}, {arc(3, 1)}, {}}
	done := make(chan []float64, 8)
	for i := 0; i < 8; i++ {
		go func() {
			dist, _, _ := dijkstra.Run(g, dijkstra.WithSeed(0, 0))
			done <- dist
		}()
	}
	for i := 0; i < 8; i++ {
		equalDist(t, <-done, []float64{0, 1, 2, 3})
	}
}

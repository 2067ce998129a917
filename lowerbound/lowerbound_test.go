package lowerbound_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lowerbound/core"
	"github.com/katalvlaran/lowerbound/dijkstra"
	"github.com/katalvlaran/lowerbound/lowerbound"
)

var inf = math.Inf(1)

// chain builds 4 single-vertex groups: 0→1 (5), 1→2 (3), 2→3 (2).
func chain(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i, id := range []string{"v0", "v1", "v2", "v3"} {
		require.NoError(t, g.AddVertex(id, core.WithGroup(i)))
	}
	_, err := g.AddEdge("v0", "v1", 5)
	require.NoError(t, err)
	_, err = g.AddEdge("v1", "v2", 3)
	require.NoError(t, err)
	_, err = g.AddEdge("v2", "v3", 2)
	require.NoError(t, err)

	return g
}

func vertex(t *testing.T, g *core.Graph, id string) *core.Vertex {
	t.Helper()
	v, err := g.Vertex(id)
	require.NoError(t, err)

	return v
}

func sweep(t *testing.T, g *core.Graph, dir lowerbound.Direction, target *core.Vertex, opts core.TraverseOptions) []float64 {
	t.Helper()
	lg, err := lowerbound.Build(g, dir)
	require.NoError(t, err)
	dist, err := lg.SSSP(target, opts)
	require.NoError(t, err)

	return dist
}

func TestChainDepartAt(t *testing.T) {
	g := chain(t)
	got := sweep(t, g, lowerbound.DepartAt, vertex(t, g, "v3"), core.DefaultTraverseOptions())
	if diff := cmp.Diff([]float64{10, 5, 2, 0}, got); diff != "" {
		t.Fatalf("depart-at table mismatch (-want +got):\n%s", diff)
	}
}

func TestChainArriveBy(t *testing.T) {
	g := chain(t)
	opts := core.DefaultTraverseOptions()
	opts.ArriveBy = true

	// Nothing leaves v3, so from the target nothing is reachable.
	got := sweep(t, g, lowerbound.ArriveBy, vertex(t, g, "v3"), opts)
	if diff := cmp.Diff([]float64{inf, inf, inf, 0}, got); diff != "" {
		t.Fatalf("arrive-by table mismatch (-want +got):\n%s", diff)
	}

	// From v0 everything downstream is reachable.
	got = sweep(t, g, lowerbound.ArriveBy, vertex(t, g, "v0"), opts)
	if diff := cmp.Diff([]float64{0, 5, 8, 10}, got); diff != "" {
		t.Fatalf("arrive-by table from v0 mismatch (-want +got):\n%s", diff)
	}
}

func TestDirectionsBuildDistinctGraphs(t *testing.T) {
	g := chain(t)
	fwd, err := lowerbound.Build(g, lowerbound.DepartAt)
	require.NoError(t, err)
	rev, err := lowerbound.Build(g, lowerbound.ArriveBy)
	require.NoError(t, err)

	require.Equal(t, lowerbound.DepartAt, fwd.Direction())
	require.Equal(t, lowerbound.ArriveBy, rev.Direction())
	require.Equal(t, g.ID(), fwd.Source())

	// Depart-at stores 0→1 under head 1; arrive-by under head 0.
	require.Equal(t, []dijkstra.Arc{{To: 0, Weight: 5, Modes: core.AllModes}}, fwd.Arcs(1))
	require.Equal(t, []dijkstra.Arc{{To: 1, Weight: 5, Modes: core.AllModes}}, rev.Arcs(0))
	require.Empty(t, fwd.Arcs(0))
}

func TestGroupsCollapseAndIntraGroupEdgesDrop(t *testing.T) {
	g := core.NewGraph()
	// corner and stop share group 0; market is group 1.
	require.NoError(t, g.AddVertex("corner", core.WithGroup(0)))
	require.NoError(t, g.AddVertex("stop", core.WithGroup(0)))
	require.NoError(t, g.AddVertex("market", core.WithGroup(1)))
	_, _ = g.AddEdge("corner", "stop", 60)  // intra-group, dropped
	_, _ = g.AddEdge("corner", "market", 9) // kept, larger
	_, _ = g.AddEdge("stop", "market", 4)   // kept, minimum

	lg, err := lowerbound.Build(g, lowerbound.DepartAt)
	require.NoError(t, err)
	require.Equal(t, 2, lg.GroupCount())
	require.Equal(t, 1, lg.ArcCount())
	require.Equal(t, 4.0, lg.Arcs(1)[0].Weight)

	dist, err := lg.SSSP(vertex(t, g, "market"), core.DefaultTraverseOptions())
	require.NoError(t, err)
	require.Equal(t, []float64{4, 0}, dist)
}

func TestMinimumPerModeMask(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("a", "b", 10, core.WithModes(core.Walk))
	_, _ = g.AddEdge("a", "b", 3, core.WithModes(core.Car))
	_, _ = g.AddEdge("a", "b", 12, core.WithModes(core.Walk))

	lg, err := lowerbound.Build(g, lowerbound.DepartAt)
	require.NoError(t, err)
	require.Equal(t, 2, lg.ArcCount(), "one arc per distinct mode mask")

	b := vertex(t, g, "b")
	walk := core.DefaultTraverseOptions()
	walk.Modes = core.Walk
	dist, err := lg.SSSP(b, walk)
	require.NoError(t, err)
	require.Equal(t, 10.0, dist[0], "walk-only sweep must not use the car arc")

	all, err := lg.SSSP(b, core.DefaultTraverseOptions())
	require.NoError(t, err)
	require.Equal(t, 3.0, all[0])
}

func TestCollapsedModes(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("a", "b", 10, core.WithModes(core.Walk))
	_, _ = g.AddEdge("a", "b", 3, core.WithModes(core.Car))

	lg, err := lowerbound.Build(g, lowerbound.DepartAt, lowerbound.WithCollapsedModes())
	require.NoError(t, err)
	require.Equal(t, 1, lg.ArcCount())
	arcs := lg.Arcs(1)
	require.Equal(t, core.Walk|core.Car, arcs[0].Modes)
	require.Equal(t, 3.0, arcs[0].Weight)

	// Still a lower bound for walking (3 ≤ 10), just a weaker one.
	walk := core.DefaultTraverseOptions()
	walk.Modes = core.Walk
	dist, err := lg.SSSP(vertex(t, g, "b"), walk)
	require.NoError(t, err)
	require.Equal(t, 3.0, dist[0])
}

func TestInfiniteEdgesSkipped(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("a", "b", inf)

	lg, err := lowerbound.Build(g, lowerbound.DepartAt)
	require.NoError(t, err)
	require.Zero(t, lg.ArcCount())
}

func TestGroupGapsAreIsolatedNodes(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("a", core.WithGroup(0)))
	require.NoError(t, g.AddVertex("z", core.WithGroup(3)))
	_, _ = g.AddEdge("a", "z", 7)

	lg, err := lowerbound.Build(g, lowerbound.DepartAt)
	require.NoError(t, err)
	require.Equal(t, 4, lg.GroupCount())

	dist, err := lg.SSSP(vertex(t, g, "z"), core.DefaultTraverseOptions())
	require.NoError(t, err)
	if diff := cmp.Diff([]float64{7, inf, inf, 0}, dist); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestLocationTargetDepartAtUsesInboundLinks(t *testing.T) {
	g := chain(t)
	loc := core.NewLocation("doorstep", 0, 0)
	require.NoError(t, g.LinkFrom(loc, "v2", 1)) // v2 → doorstep
	require.NoError(t, g.LinkTo(loc, "v0", 1))   // doorstep → v0, ignored in depart-at

	got := sweep(t, g, lowerbound.DepartAt, loc, core.DefaultTraverseOptions())
	if diff := cmp.Diff([]float64{9, 4, 1, inf}, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestLocationTargetArriveByUsesOutboundLinks(t *testing.T) {
	g := chain(t)
	loc := core.NewLocation("doorstep", 0, 0)
	require.NoError(t, g.LinkTo(loc, "v1", 2))   // doorstep → v1
	require.NoError(t, g.LinkFrom(loc, "v3", 1)) // v3 → doorstep, ignored in arrive-by

	opts := core.DefaultTraverseOptions()
	opts.ArriveBy = true
	got := sweep(t, g, lowerbound.ArriveBy, loc, opts)
	if diff := cmp.Diff([]float64{inf, 2, 5, 7}, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestLocationLinksFilteredByMode(t *testing.T) {
	g := chain(t)
	loc := core.NewLocation("doorstep", 0, 0)
	require.NoError(t, g.LinkFrom(loc, "v2", 1, core.WithModes(core.Car)))

	opts := core.DefaultTraverseOptions()
	opts.Modes = core.Walk
	got := sweep(t, g, lowerbound.DepartAt, loc, opts)
	for i, d := range got {
		require.True(t, math.IsInf(d, 1), "group %d should be unreachable", i)
	}
}

func TestDeterministicTables(t *testing.T) {
	g := chain(t)
	_, _ = g.AddEdge("v0", "v2", 8)
	_, _ = g.AddEdge("v1", "v3", 5)
	lg, err := lowerbound.Build(g, lowerbound.DepartAt)
	require.NoError(t, err)

	first, err := lg.SSSP(vertex(t, g, "v3"), core.DefaultTraverseOptions())
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, _ := lg.SSSP(vertex(t, g, "v3"), core.DefaultTraverseOptions())
		require.Equal(t, first, again)
	}
}

func TestBuildErrors(t *testing.T) {
	_, err := lowerbound.Build(nil, lowerbound.DepartAt)
	require.ErrorIs(t, err, lowerbound.ErrNilGraph)

	_, err = lowerbound.Build(core.NewGraph(), lowerbound.DepartAt)
	require.ErrorIs(t, err, lowerbound.ErrEmptyGraph)

	_, err = lowerbound.Build(chain(t), lowerbound.Direction(7))
	require.ErrorIs(t, err, lowerbound.ErrBadDirection)
}

func TestBuildRejectsCorruptedWeights(t *testing.T) {
	g := chain(t)
	e, err := g.GetEdge("e1")
	require.NoError(t, err)

	e.Weight = math.NaN()
	_, err = lowerbound.Build(g, lowerbound.DepartAt)
	require.ErrorIs(t, err, lowerbound.ErrNaNWeight)

	e.Weight = -1
	_, err = lowerbound.Build(g, lowerbound.DepartAt)
	require.ErrorIs(t, err, lowerbound.ErrNegativeWeight)
}

func TestSSSPErrors(t *testing.T) {
	g := chain(t)
	lg, err := lowerbound.Build(g, lowerbound.DepartAt)
	require.NoError(t, err)

	_, err = lg.SSSP(nil, core.DefaultTraverseOptions())
	require.ErrorIs(t, err, lowerbound.ErrNilTarget)

	// The graph grew after Build: the new group is unknown to lg.
	require.NoError(t, g.AddVertex("late"))
	_, err = lg.SSSP(vertex(t, g, "late"), core.DefaultTraverseOptions())
	require.ErrorIs(t, err, lowerbound.ErrGroupOutOfRange)
}

func TestDirectionHelpers(t *testing.T) {
	opts := core.DefaultTraverseOptions()
	require.Equal(t, lowerbound.DepartAt, lowerbound.DirectionOf(opts))
	opts.ArriveBy = true
	require.Equal(t, lowerbound.ArriveBy, lowerbound.DirectionOf(opts))

	require.Equal(t, "depart_at", lowerbound.DepartAt.String())
	require.Equal(t, "arrive_by", lowerbound.ArriveBy.String())
	require.Equal(t, "direction(9)", lowerbound.Direction(9).String())
	require.False(t, lowerbound.Direction(9).Valid())
}

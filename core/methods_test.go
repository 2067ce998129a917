package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lowerbound/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	s.g = core.NewGraph()
}

func (s *GraphSuite) TestAddVertexAndHasVertex() {
	require := require.New(s.T())
	require.False(s.g.HasVertex("A"), "empty graph should not have A")
	require.False(s.g.HasVertex(""), "empty ID is never present")

	require.NoError(s.g.AddVertex("A"))
	require.True(s.g.HasVertex("A"))

	// Idempotence: adding again does not change count or group.
	v, err := s.g.Vertex("A")
	require.NoError(err)
	group := v.Group
	require.NoError(s.g.AddVertex("A", core.WithGroup(7)))
	require.Equal(1, s.g.VertexCount())
	v, _ = s.g.Vertex("A")
	require.Equal(group, v.Group, "re-adding must not regroup an existing vertex")

	require.ErrorIs(s.g.AddVertex(""), core.ErrEmptyVertexID)
}

func (s *GraphSuite) TestFreshGroupsAreSequential() {
	require := require.New(s.T())
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(s.g.AddVertex(id))
	}
	for i, id := range []string{"a", "b", "c"} {
		v, err := s.g.Vertex(id)
		require.NoError(err)
		require.Equal(i, v.Group)
	}
	require.Equal(3, s.g.GroupCount())
}

func (s *GraphSuite) TestExplicitGroupsRaiseGroupCount() {
	require := require.New(s.T())
	require.NoError(s.g.AddVertex("corner", core.WithGroup(4)))
	require.NoError(s.g.AddVertex("stop", core.WithGroup(4)))
	require.Equal(5, s.g.GroupCount())

	// A vertex without WithGroup lands after the highest group in use.
	require.NoError(s.g.AddVertex("next"))
	v, _ := s.g.Vertex("next")
	require.Equal(5, v.Group)
	require.Equal(6, s.g.GroupCount())
}

func (s *GraphSuite) TestWithGroupPanicsOnNegative() {
	s.Require().Panics(func() { core.WithGroup(-1) })
}

func (s *GraphSuite) TestVertexLookup() {
	require := require.New(s.T())
	require.NoError(s.g.AddVertex("A", core.WithCoord(45.5, -73.6)))

	v, err := s.g.Vertex("A")
	require.NoError(err)
	require.True(v.HasCoord)
	require.Equal(45.5, v.Lat)
	require.Equal(-73.6, v.Lon)
	require.False(v.Temporary())

	_, err = s.g.Vertex("missing")
	require.ErrorIs(err, core.ErrVertexNotFound)
	_, err = s.g.Vertex("")
	require.ErrorIs(err, core.ErrEmptyVertexID)
}

func (s *GraphSuite) TestAddEdgeValidation() {
	require := require.New(s.T())

	_, err := s.g.AddEdge("", "B", 1)
	require.ErrorIs(err, core.ErrEmptyVertexID)
	_, err = s.g.AddEdge("A", "B", -1)
	require.ErrorIs(err, core.ErrBadWeight)
	_, err = s.g.AddEdge("A", "B", math.NaN())
	require.ErrorIs(err, core.ErrBadWeight)
	_, err = s.g.AddEdge("A", "A", 1)
	require.ErrorIs(err, core.ErrLoopNotAllowed)

	// +Inf is a legal, impassable weight.
	_, err = s.g.AddEdge("A", "B", math.Inf(1))
	require.NoError(err)

	looped := core.NewGraph(core.WithLoops())
	require.True(looped.Looped())
	_, err = looped.AddEdge("A", "A", 0)
	require.NoError(err)
}

func (s *GraphSuite) TestAddEdgeAutoAddsEndpoints() {
	require := require.New(s.T())
	id, err := s.g.AddEdge("A", "B", 5, core.WithModes(core.Walk), core.WithName("Main St"))
	require.NoError(err)
	require.Equal("e1", id)
	require.True(s.g.HasVertex("A"))
	require.True(s.g.HasVertex("B"))

	e, err := s.g.GetEdge(id)
	require.NoError(err)
	require.Equal("A", e.From)
	require.Equal("B", e.To)
	require.Equal(5.0, e.Weight)
	require.Equal(core.Walk, e.Modes)
	require.Equal("Main St", e.Name)

	_, err = s.g.GetEdge("e99")
	require.ErrorIs(err, core.ErrEdgeNotFound)
}

func (s *GraphSuite) TestEdgesDefaultToAllModes() {
	id, err := s.g.AddEdge("A", "B", 1)
	s.Require().NoError(err)
	e, _ := s.g.GetEdge(id)
	s.Require().Equal(core.AllModes, e.Modes)
}

func (s *GraphSuite) TestOutgoingIncoming() {
	require := require.New(s.T())
	_, _ = s.g.AddEdge("A", "B", 1)
	_, _ = s.g.AddEdge("A", "C", 2)
	_, _ = s.g.AddEdge("C", "A", 3)

	out, err := s.g.Outgoing("A")
	require.NoError(err)
	require.Len(out, 2)
	require.Equal("B", out[0].To)
	require.Equal("C", out[1].To)

	in, err := s.g.Incoming("A")
	require.NoError(err)
	require.Len(in, 1)
	require.Equal("C", in[0].From)

	intoC, err := s.g.Incoming("C")
	require.NoError(err)
	require.Len(intoC, 1)

	_, err = s.g.Outgoing("Z")
	require.ErrorIs(err, core.ErrVertexNotFound)
	_, err = s.g.Incoming("")
	require.ErrorIs(err, core.ErrEmptyVertexID)
}

func (s *GraphSuite) TestEdgesInsertionOrder() {
	require := require.New(s.T())
	for i := 0; i < 12; i++ {
		_, err := s.g.AddEdge("A", "B", float64(i))
		require.NoError(err)
	}
	edges := s.g.Edges()
	require.Len(edges, 12)
	for i, e := range edges {
		require.Equal(float64(i), e.Weight, "Edges() must follow insertion order, not ID string order")
	}
	require.Equal(12, s.g.EdgeCount())
}

func (s *GraphSuite) TestVerticesSortedAndStats() {
	require := require.New(s.T())
	_, _ = s.g.AddEdge("c", "a", 1)
	require.NoError(s.g.AddVertex("b", core.WithGroup(9)))

	require.Equal([]string{"a", "b", "c"}, s.g.Vertices())
	require.Equal(core.GraphStats{Vertices: 3, Edges: 1, Groups: 10}, s.g.Stats())

	snap := s.g.VerticesMap()
	delete(snap, "a")
	require.True(s.g.HasVertex("a"), "VerticesMap must return a copy")
}

func (s *GraphSuite) TestDistinctIdentity() {
	other := core.NewGraph()
	s.Require().NotEqual(s.g.ID(), other.ID())
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

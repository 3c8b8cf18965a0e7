package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvclique/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	s.g = core.NewGraph()
}

func (s *GraphSuite) TestAddEdgeIsSymmetric() {
	require := require.New(s.T())
	s.g.AddEdge(1, 2)

	require.True(s.g.HasEdge(1, 2))
	require.True(s.g.HasEdge(2, 1), "reverse entry must be inserted")
	require.True(s.g.HasVertex(1))
	require.True(s.g.HasVertex(2))
	require.Equal(1, s.g.EdgeCount())
}

func (s *GraphSuite) TestDuplicateEdgesAreIdempotent() {
	require := require.New(s.T())
	s.g.AddEdge(1, 2)
	s.g.AddEdge(2, 1)
	s.g.AddEdge(1, 2)

	require.Equal(1, s.g.EdgeCount())
	require.Equal(1, s.g.Degree(1))
	require.Equal(1, s.g.Degree(2))
}

func (s *GraphSuite) TestMissingVertexBehavesAsEmpty() {
	require := require.New(s.T())
	require.False(s.g.HasVertex(42))
	require.Equal(0, s.g.Degree(42))
	require.Empty(s.g.Neighbors(42))
	require.False(s.g.HasEdge(42, 1))
}

func (s *GraphSuite) TestSelfLoop() {
	require := require.New(s.T())
	s.g.AddEdge(7, 7)
	s.g.AddEdge(7, 7)
	s.g.AddEdge(7, 8)

	require.True(s.g.HasEdge(7, 7))
	require.Equal(1, s.g.Degree(7), "a loop is not a neighbor")
	require.False(s.g.Neighbors(7).Has(7))
	require.Equal(2, s.g.EdgeCount())
	require.Equal([]core.Edge{{U: 7, V: 7}, {U: 7, V: 8}}, s.g.Edges())
}

func (s *GraphSuite) TestVerticesAndEdgesAreSorted() {
	require := require.New(s.T())
	s.g.AddEdge(9, 3)
	s.g.AddEdge(5, 1)
	s.g.AddEdge(3, 1)

	require.Equal([]core.VertexID{1, 3, 5, 9}, s.g.Vertices())
	require.Equal([]core.Edge{{U: 1, V: 3}, {U: 1, V: 5}, {U: 3, V: 9}}, s.g.Edges())
	require.Equal(4, s.g.VertexCount())
}

func (s *GraphSuite) TestNeighborsReturnsCopy() {
	require := require.New(s.T())
	s.g.AddEdge(1, 2)

	n := s.g.Neighbors(1)
	n.Add(99)
	require.False(s.g.HasEdge(1, 99), "mutating the returned set must not reach the graph")
}

func (s *GraphSuite) TestCloneAndEqual() {
	require := require.New(s.T())
	s.g.AddEdge(1, 2)
	s.g.AddEdge(2, 3)
	s.g.AddEdge(4, 4)

	c := s.g.Clone()
	require.True(s.g.Equal(c))
	require.True(c.Equal(s.g))

	c.AddEdge(3, 1)
	require.False(s.g.Equal(c))
	require.False(s.g.HasEdge(3, 1))
	require.False(s.g.Equal(nil))
}

func (s *GraphSuite) TestFromEdges() {
	require := require.New(s.T())
	g := core.FromEdges([]core.Edge{{U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 1}})

	require.Equal(3, g.EdgeCount())
	require.Equal(core.NewVertexSet(2, 3), g.Neighbors(1))
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

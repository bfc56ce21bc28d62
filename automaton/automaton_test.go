package automaton_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/ngorogiannis/cyclist/automaton"
	"github.com/ngorogiannis/cyclist/closure"
	"github.com/ngorogiannis/cyclist/hgraph"
)

type AutomatonSuite struct {
	suite.Suite
}

func TestAutomatonSuite(t *testing.T) {
	suite.Run(t, new(AutomatonSuite))
}

func buildGraph(t *testing.T, edges func(*hgraph.HeightedGraph)) *hgraph.HeightedGraph {
	g := hgraph.New(4)
	edges(g)
	return g
}

func (s *AutomatonSuite) agree(build func(*hgraph.HeightedGraph), wantSound bool) {
	ccl, err := closure.NewEngine(buildGraph(s.T(), build)).RelationalCheck(0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), wantSound, ccl)

	sla, err := automaton.NewChecker(buildGraph(s.T(), build), automaton.NewReferenceBackend()).SLACheck()
	require.NoError(s.T(), err)
	require.Equal(s.T(), ccl, sla)
}

func (s *AutomatonSuite) TestSingleDownwardSelfLoop() {
	s.agree(func(g *hgraph.HeightedGraph) {
		require.NoError(s.T(), g.AddDecrease(0, 0, 0, 0))
	}, true)
}

func (s *AutomatonSuite) TestSingleStaySelfLoop() {
	s.agree(func(g *hgraph.HeightedGraph) {
		require.NoError(s.T(), g.AddStay(0, 0, 0, 0))
	}, false)
}

func (s *AutomatonSuite) TestAlternatingTwoNodeCycle() {
	s.agree(func(g *hgraph.HeightedGraph) {
		require.NoError(s.T(), g.AddDecrease(0, 0, 1, 0))
		require.NoError(s.T(), g.AddStay(1, 0, 0, 0))
	}, true)
}

func (s *AutomatonSuite) TestNonWellFoundedWitness() {
	s.agree(func(g *hgraph.HeightedGraph) {
		require.NoError(s.T(), g.AddStay(0, 0, 1, 0))
		require.NoError(s.T(), g.AddStay(1, 0, 0, 0))
	}, false)
}

func (s *AutomatonSuite) TestThreeNodeMixedCycle() {
	s.agree(func(g *hgraph.HeightedGraph) {
		require.NoError(s.T(), g.AddStay(0, 0, 1, 0))
		require.NoError(s.T(), g.AddStay(1, 0, 2, 0))
		require.NoError(s.T(), g.AddDecrease(2, 0, 0, 0))
	}, true)
}

func (s *AutomatonSuite) TestDisjointSoundAndUnsoundComponents() {
	s.agree(func(g *hgraph.HeightedGraph) {
		require.NoError(s.T(), g.AddDecrease(0, 0, 0, 0))
		require.NoError(s.T(), g.AddStay(1, 0, 1, 0))
	}, false)
}

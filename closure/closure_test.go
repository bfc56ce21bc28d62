package closure_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/ngorogiannis/cyclist/closure"
	"github.com/ngorogiannis/cyclist/hgraph"
)

type ClosureSuite struct {
	suite.Suite
}

func TestClosureSuite(t *testing.T) {
	suite.Run(t, new(ClosureSuite))
}

// singleDownwardSelfLoop builds a one-node graph with a direct Downward
// self-edge: trivially sound.
func singleDownwardSelfLoop(t *testing.T) *hgraph.HeightedGraph {
	g := hgraph.New(1)
	require.NoError(t, g.AddDecrease(0, 0, 0, 0))
	return g
}

// singleStaySelfLoop builds a one-node graph with only a Stay self-edge:
// the trace never strictly decreases, so this is unsound.
func singleStaySelfLoop(t *testing.T) *hgraph.HeightedGraph {
	g := hgraph.New(1)
	require.NoError(t, g.AddStay(0, 0, 0, 0))
	return g
}

// alternatingTwoNodeCycle builds a 0->1->0 cycle where the only way around
// involves a Downward step, so the composed self-loop at each node is sound.
func alternatingTwoNodeCycle(t *testing.T) *hgraph.HeightedGraph {
	g := hgraph.New(2)
	require.NoError(t, g.AddDecrease(0, 0, 1, 0))
	require.NoError(t, g.AddStay(1, 0, 0, 0))
	return g
}

// nonWellFoundedWitness builds a 0->1->0 cycle that never decreases: an
// unsound witness distinct from the trivial single-node case.
func nonWellFoundedWitness(t *testing.T) *hgraph.HeightedGraph {
	g := hgraph.New(2)
	require.NoError(t, g.AddStay(0, 0, 1, 0))
	require.NoError(t, g.AddStay(1, 0, 0, 0))
	return g
}

func (s *ClosureSuite) TestSingleDownwardSelfLoopSound() {
	g := singleDownwardSelfLoop(s.T())
	ok, err := closure.NewEngine(g).RelationalCheck(0)
	require.NoError(s.T(), err)
	require.True(s.T(), ok)
}

func (s *ClosureSuite) TestSingleStaySelfLoopUnsound() {
	g := singleStaySelfLoop(s.T())
	ok, err := closure.NewEngine(g).RelationalCheck(0)
	require.NoError(s.T(), err)
	require.False(s.T(), ok)
}

func (s *ClosureSuite) TestAlternatingTwoNodeCycleSound() {
	g := alternatingTwoNodeCycle(s.T())
	ok, err := closure.NewEngine(g).RelationalCheck(0)
	require.NoError(s.T(), err)
	require.True(s.T(), ok)
}

func (s *ClosureSuite) TestNonWellFoundedWitnessUnsound() {
	g := nonWellFoundedWitness(s.T())
	ok, err := closure.NewEngine(g).RelationalCheck(0)
	require.NoError(s.T(), err)
	require.False(s.T(), ok)
}

// TestIdempotenceModeIdempotentStayLoopUnsound: a single Stay self-loop R
// satisfies R∘R == R, so UseIdempotence does not let it pass trivially (that
// shortcut covers only non-idempotent relations); R has no Downward
// self-loop, so the check reports unsound.
func (s *ClosureSuite) TestIdempotenceModeIdempotentStayLoopUnsound() {
	g := hgraph.New(1)
	require.NoError(s.T(), g.AddStay(0, 0, 0, 0))
	ok, err := closure.NewEngine(g).RelationalCheck(closure.UseIdempotence)
	require.NoError(s.T(), err)
	require.False(s.T(), ok)
}

func (s *ClosureSuite) TestInvalidFlagCombinationRejected() {
	g := singleDownwardSelfLoop(s.T())
	_, err := closure.NewEngine(g).RelationalCheck(closure.UseIdempotence | closure.UseMinimality)
	require.ErrorIs(s.T(), err, closure.ErrInvalidFlags)
}

func (s *ClosureSuite) TestMinimalityPreservesVerdict() {
	for _, tc := range []struct {
		name    string
		build   func(*testing.T) *hgraph.HeightedGraph
		sound   bool
	}{
		{"downwardSelfLoop", singleDownwardSelfLoop, true},
		{"staySelfLoop", singleStaySelfLoop, false},
		{"alternating", alternatingTwoNodeCycle, true},
		{"nonWellFounded", nonWellFoundedWitness, false},
	} {
		s.Run(tc.name, func() {
			plain, err := closure.NewEngine(tc.build(s.T())).RelationalCheck(0)
			require.NoError(s.T(), err)
			withMin, err := closure.NewEngine(tc.build(s.T())).RelationalCheck(closure.UseMinimality)
			require.NoError(s.T(), err)
			require.Equal(s.T(), tc.sound, plain)
			require.Equal(s.T(), plain, withMin)
		})
	}
}

// TestStrategyAgreement checks that all three strategies reach the same
// verdict on every scenario above, across a sample of flag combinations.
func (s *ClosureSuite) TestStrategyAgreement() {
	scenarios := []struct {
		name  string
		build func(*testing.T) *hgraph.HeightedGraph
	}{
		{"downwardSelfLoop", singleDownwardSelfLoop},
		{"staySelfLoop", singleStaySelfLoop},
		{"alternating", alternatingTwoNodeCycle},
		{"nonWellFounded", nonWellFoundedWitness},
	}
	flagSets := []closure.Flags{0, closure.FailFast, closure.UseSCCCheck, closure.UseMinimality}

	for _, sc := range scenarios {
		for _, fl := range flagSets {
			s.Run(sc.name, func() {
				iterative, err := closure.NewEngine(sc.build(s.T())).RelationalCheck(fl)
				require.NoError(s.T(), err)
				orderReduced, err := closure.NewEngine(sc.build(s.T())).OrderReducedCheck(fl)
				require.NoError(s.T(), err)
				fwk, err := closure.NewEngine(sc.build(s.T())).FWKCheck(fl)
				require.NoError(s.T(), err)

				require.Equal(s.T(), iterative, orderReduced, "order-reduced disagreed with iterative")
				require.Equal(s.T(), iterative, fwk, "fwk disagreed with iterative")
			})
		}
	}
}

func (s *ClosureSuite) TestDeterminism() {
	build := alternatingTwoNodeCycle
	first, err := closure.NewEngine(build(s.T())).RelationalCheck(0)
	require.NoError(s.T(), err)
	for i := 0; i < 5; i++ {
		again, err := closure.NewEngine(build(s.T())).RelationalCheck(0)
		require.NoError(s.T(), err)
		require.Equal(s.T(), first, again)
	}
}

func (s *ClosureSuite) TestQuickRejectAgreesWithRelationalCheck() {
	g := nonWellFoundedWitness(s.T())
	plain, err := closure.NewEngine(g).RelationalCheck(0)
	require.NoError(s.T(), err)
	viaQuickReject, err := closure.NewEngine(nonWellFoundedWitness(s.T())).QuickReject(closure.UseSD)
	require.NoError(s.T(), err)
	require.Equal(s.T(), plain, viaQuickReject)
}

func (s *ClosureSuite) TestParseFlagsRoundTrip() {
	f := closure.ParseFlags("fsDXOKA")
	require.NotZero(s.T(), f&closure.FailFast)
	require.NotZero(s.T(), f&closure.UseSCCCheck)
	require.NotZero(s.T(), f&closure.UseSLA)
	require.Zero(s.T(), f&closure.UseMinimality)
}

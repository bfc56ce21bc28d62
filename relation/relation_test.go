package relation_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/ngorogiannis/cyclist/relation"
)

type RelationSuite struct {
	suite.Suite
}

func TestRelationSuite(t *testing.T) {
	suite.Run(t, new(RelationSuite))
}

func (s *RelationSuite) TestAddIsMonotoneJoin() {
	r := relation.New(2, 2)
	r.Add(0, 0, relation.Downward)
	r.Add(0, 0, relation.Stay) // must not weaken Downward back to Stay
	require.Equal(s.T(), relation.Downward, r.Get(0, 0))
}

func (s *RelationSuite) TestGetOutOfRangeIsUndefined() {
	r := relation.New(2, 2)
	require.Equal(s.T(), relation.Undefined, r.Get(5, 5))
	require.Equal(s.T(), relation.Undefined, r.Get(-1, 0))
}

func (s *RelationSuite) TestComposeDimensionMismatch() {
	r := relation.New(2, 3)
	q := relation.New(4, 2)
	_, err := r.Compose(q)
	require.ErrorIs(s.T(), err, relation.ErrDimensionMismatch)
}

func (s *RelationSuite) TestComposeDownwardDominates() {
	// R: 0 -Downward-> 0. S: 0 -Stay-> 0.
	r := relation.New(1, 1)
	r.Add(0, 0, relation.Downward)
	q := relation.New(1, 1)
	q.Add(0, 0, relation.Stay)

	out, err := r.Compose(q)
	require.NoError(s.T(), err)
	require.Equal(s.T(), relation.Downward, out.Get(0, 0))
}

func (s *RelationSuite) TestComposeStayOnlyWhenNoDownward() {
	r := relation.New(1, 1)
	r.Add(0, 0, relation.Stay)
	q := relation.New(1, 1)
	q.Add(0, 0, relation.Stay)

	out, err := r.Compose(q)
	require.NoError(s.T(), err)
	require.Equal(s.T(), relation.Stay, out.Get(0, 0))
}

func (s *RelationSuite) TestComposeUndefinedWhenNoPath() {
	r := relation.New(2, 2)
	r.Add(0, 0, relation.Stay)
	q := relation.New(2, 2)
	q.Add(1, 1, relation.Stay)

	out, err := r.Compose(q)
	require.NoError(s.T(), err)
	require.Equal(s.T(), relation.Undefined, out.Get(0, 1))
}

// TestComposeAssociativity checks (R∘S)∘T == R∘(S∘T) extensionally on a
// small but non-trivial random-ish instance.
func (s *RelationSuite) TestComposeAssociativity() {
	r := relation.New(2, 2)
	r.Add(0, 0, relation.Stay)
	r.Add(0, 1, relation.Downward)
	r.Add(1, 0, relation.Stay)

	q := relation.New(2, 2)
	q.Add(0, 1, relation.Stay)
	q.Add(1, 0, relation.Downward)
	q.Add(1, 1, relation.Stay)

	t := relation.New(2, 2)
	t.Add(0, 0, relation.Downward)
	t.Add(1, 1, relation.Stay)

	rq, err := r.Compose(q)
	require.NoError(s.T(), err)
	rqT, err := rq.Compose(t)
	require.NoError(s.T(), err)

	qt, err := q.Compose(t)
	require.NoError(s.T(), err)
	rQt, err := r.Compose(qt)
	require.NoError(s.T(), err)

	require.True(s.T(), rqT.Equals(rQt))
}

func (s *RelationSuite) TestEqualsExtensional() {
	a := relation.New(2, 2)
	a.Add(0, 1, relation.Stay)
	b := relation.New(2, 2)
	b.Add(0, 1, relation.Stay)
	require.True(s.T(), a.Equals(b))
	require.Equal(s.T(), a.Hash(), b.Hash())
}

func (s *RelationSuite) TestCompareOrder() {
	// a has fewer demands than b (dom(b) subset dom(a), a as-downward-as b)
	a := relation.New(1, 1)
	a.Add(0, 0, relation.Downward)
	b := relation.New(1, 1)
	b.Add(0, 0, relation.Downward)

	require.Equal(s.T(), relation.EQ, a.Compare(b))

	c := relation.New(1, 1) // empty: dom(c) is a subset of everything, so a <= c
	require.Equal(s.T(), relation.LT, a.Compare(c))
	require.Equal(s.T(), relation.GT, c.Compare(a))
}

func (s *RelationSuite) TestCompareIncomparable() {
	a := relation.New(2, 2)
	a.Add(0, 0, relation.Stay)
	b := relation.New(2, 2)
	b.Add(1, 1, relation.Stay)
	require.Equal(s.T(), relation.Incomparable, a.Compare(b))
}

func (s *RelationSuite) TestTransitiveClosureRequiresSquare() {
	r := relation.New(2, 3)
	_, err := r.TransitiveClosure()
	require.ErrorIs(s.T(), err, relation.ErrNotSquare)
}

func (s *RelationSuite) TestTransitiveClosureIdempotent() {
	r := relation.New(2, 2)
	r.Add(0, 1, relation.Stay)
	r.Add(1, 0, relation.Downward)

	once, err := r.TransitiveClosure()
	require.NoError(s.T(), err)
	twice, err := once.TransitiveClosure()
	require.NoError(s.T(), err)
	require.True(s.T(), once.Equals(twice))
}

func (s *RelationSuite) TestTransitiveClosureProducesSelfLoop() {
	// 0 -Downward-> 1 -Stay-> 0 : closure must have (0,0) = Downward.
	r := relation.New(2, 2)
	r.Add(0, 1, relation.Downward)
	r.Add(1, 0, relation.Stay)

	tc, err := r.TransitiveClosure()
	require.NoError(s.T(), err)
	require.True(s.T(), tc.HasSelfLoop())
}

func (s *RelationSuite) TestHasSelfLoopFalseWithoutDownwardDiagonal() {
	r := relation.New(2, 2)
	r.Add(0, 0, relation.Stay)
	require.False(s.T(), r.HasSelfLoop())
}

func (s *RelationSuite) TestHasDownwardSCCMatchesTransitiveClosure() {
	cases := []*relation.SlopedRelation{
		func() *relation.SlopedRelation {
			r := relation.New(2, 2)
			r.Add(0, 1, relation.Downward)
			r.Add(1, 0, relation.Stay)
			return r
		}(),
		func() *relation.SlopedRelation {
			r := relation.New(2, 2)
			r.Add(0, 1, relation.Stay)
			r.Add(1, 0, relation.Stay)
			return r
		}(),
		func() *relation.SlopedRelation {
			r := relation.New(3, 3)
			r.Add(0, 1, relation.Stay)
			r.Add(1, 2, relation.Stay)
			r.Add(2, 0, relation.Downward)
			return r
		}(),
	}
	for _, r := range cases {
		tc, err := r.TransitiveClosure()
		require.NoError(s.T(), err)
		require.Equal(s.T(), tc.HasSelfLoop(), r.HasDownwardSCC())
	}
}

func (s *RelationSuite) TestNewIdentity() {
	id := relation.NewIdentity(3)
	for i := 0; i < 3; i++ {
		require.Equal(s.T(), relation.Stay, id.Get(i, i))
	}
	require.Equal(s.T(), 3, id.Size())
}

func (s *RelationSuite) TestAddOutOfRangePanics() {
	r := relation.New(1, 1)
	require.Panics(s.T(), func() {
		r.Add(5, 5, relation.Stay)
	})
}

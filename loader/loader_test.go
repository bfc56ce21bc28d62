package loader_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/ngorogiannis/cyclist/closure"
	"github.com/ngorogiannis/cyclist/loader"
	"github.com/ngorogiannis/cyclist/relation"
)

type LoaderSuite struct {
	suite.Suite
}

func TestLoaderSuite(t *testing.T) {
	suite.Run(t, new(LoaderSuite))
}

const sampleJSON = `{
  "Node": [[0, [0]], [1, [0]]],
  "Edge": [[[0,1], [[0,0,1]]], [[1,0], [[0,0,2]]]]
}`

func (s *LoaderSuite) TestDecodeGraphBasicShape() {
	g, err := loader.DecodeGraph(strings.NewReader(sampleJSON))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, g.NumNodes())
	require.Equal(s.T(), 2, g.NumEdges())

	sl, err := g.GetSlope(0, 0, 1, 0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), relation.Stay, sl)

	sl, err = g.GetSlope(1, 0, 0, 0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), relation.Downward, sl)
}

func (s *LoaderSuite) TestDecodeGraphRejectsMalformedJSON() {
	_, err := loader.DecodeGraph(strings.NewReader(`{not json`))
	require.ErrorIs(s.T(), err, loader.ErrMalformedJSON)
}

func (s *LoaderSuite) TestDecodeGraphRejectsBadSlope() {
	_, err := loader.DecodeGraph(strings.NewReader(`{
		"Node": [[0, [0]]],
		"Edge": [[[0,0], [[0,0,9]]]]
	}`))
	require.ErrorIs(s.T(), err, loader.ErrMalformedJSON)
}

func (s *LoaderSuite) TestRoundTripThroughEncodeGraph() {
	g, err := loader.DecodeGraph(strings.NewReader(sampleJSON))
	require.NoError(s.T(), err)

	encoded, err := loader.EncodeGraph(g)
	require.NoError(s.T(), err)

	g2, err := loader.DecodeGraph(strings.NewReader(string(encoded)))
	require.NoError(s.T(), err)

	require.Equal(s.T(), g.NumNodes(), g2.NumNodes())
	require.Equal(s.T(), g.NumEdges(), g2.NumEdges())
	sl, err := g2.GetSlope(0, 0, 1, 0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), relation.Stay, sl)
}

func (s *LoaderSuite) TestParseFlagsRejectsUnknownLetter() {
	_, err := loader.ParseFlags("fz")
	require.ErrorIs(s.T(), err, loader.ErrUnknownFlagLetter)
}

func (s *LoaderSuite) TestParseFlagsAcceptsKnownLetters() {
	f, err := loader.ParseFlags("fs")
	require.NoError(s.T(), err)
	require.Equal(s.T(), closure.FailFast|closure.UseSCCCheck, f)
}

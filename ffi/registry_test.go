package ffi_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/ngorogiannis/cyclist/closure"
	"github.com/ngorogiannis/cyclist/ffi"
)

type RegistrySuite struct {
	suite.Suite
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistrySuite))
}

func (s *RegistrySuite) TestCreateAddCheckDestroy() {
	reg := ffi.NewRegistry()
	h := reg.CreateGraph(1)
	require.NoError(s.T(), reg.AddDecrease(h, 0, 0, 0, 0))

	ok, err := reg.Check(h, ffi.Relational, 0)
	require.NoError(s.T(), err)
	require.True(s.T(), ok)

	require.NoError(s.T(), reg.Destroy(h))
	_, err = reg.Check(h, ffi.Relational, 0)
	require.ErrorIs(s.T(), err, ffi.ErrUnknownHandle)
}

func (s *RegistrySuite) TestIndependentHandlesDoNotInterfere() {
	reg := ffi.NewRegistry()
	sound := reg.CreateGraph(1)
	unsound := reg.CreateGraph(1)

	require.NoError(s.T(), reg.AddDecrease(sound, 0, 0, 0, 0))
	require.NoError(s.T(), reg.AddStay(unsound, 0, 0, 0, 0))

	soundOK, err := reg.Check(sound, ffi.Relational, 0)
	require.NoError(s.T(), err)
	require.True(s.T(), soundOK)

	unsoundOK, err := reg.Check(unsound, ffi.Relational, 0)
	require.NoError(s.T(), err)
	require.False(s.T(), unsoundOK)
}

func (s *RegistrySuite) TestCheckModesAgree() {
	reg := ffi.NewRegistry()
	h := reg.CreateGraph(2)
	require.NoError(s.T(), reg.AddDecrease(h, 0, 0, 1, 0))
	require.NoError(s.T(), reg.AddStay(h, 1, 0, 0, 0))

	relational, err := reg.Check(h, ffi.Relational, 0)
	require.NoError(s.T(), err)

	h2 := reg.CreateGraph(2)
	require.NoError(s.T(), reg.AddDecrease(h2, 0, 0, 1, 0))
	require.NoError(s.T(), reg.AddStay(h2, 1, 0, 0, 0))
	sla, err := reg.Check(h2, ffi.SLA, 0)
	require.NoError(s.T(), err)

	require.Equal(s.T(), relational, sla)
}

func (s *RegistrySuite) TestUnknownHandleRejected() {
	reg := ffi.NewRegistry()
	require.ErrorIs(s.T(), reg.AddNode(ffi.Handle{}, 0), ffi.ErrUnknownHandle)
}

func (s *RegistrySuite) TestInvalidFlagsPropagate() {
	reg := ffi.NewRegistry()
	h := reg.CreateGraph(1)
	require.NoError(s.T(), reg.AddDecrease(h, 0, 0, 0, 0))
	_, err := reg.Check(h, ffi.Relational, closure.UseIdempotence|closure.UseMinimality)
	require.ErrorIs(s.T(), err, closure.ErrInvalidFlags)
}

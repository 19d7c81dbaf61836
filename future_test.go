package riptide

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type FutureSuite struct {
	suite.Suite
}

func TestFutureSuite(t *testing.T) {
	suite.Run(t, new(FutureSuite))
}

func (s *FutureSuite) TestResolved_WaitReturnsValue() {
	v, err := Resolved(42).Wait(context.Background())
	s.Require().NoError(err)
	s.Equal(42, v)
}

func (s *FutureSuite) TestFailed_WaitReturnsError() {
	cause := errors.New("boom")
	_, err := Failed[int](cause).Wait(context.Background())
	s.Equal(cause, err)
}

func (s *FutureSuite) TestNewFuture_ResolveOnlyAppliesOnce() {
	f, resolve := NewFuture[int](nil)
	resolve(1, nil)
	resolve(2, nil)

	v, err := f.Wait(context.Background())
	s.Require().NoError(err)
	s.Equal(1, v)
}

func (s *FutureSuite) TestWait_UnblocksOnContextCancellation() {
	f, _ := NewFuture[int](nil)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := f.Wait(ctx)
	s.ErrorIs(err, context.DeadlineExceeded)
}

func (s *FutureSuite) TestCancel_InvokesRegisteredCancelFunc() {
	var cancelled bool
	f, _ := NewFuture[int](func() { cancelled = true })
	f.Cancel()
	s.True(cancelled)
}

func (s *FutureSuite) TestThen_ChainsOnSuccess() {
	f := Resolved(10)
	out := Then(f, func(ctx context.Context, v int) *Future[string] {
		return Resolved("value is 10")
	})

	v, err := out.Wait(context.Background())
	s.Require().NoError(err)
	s.Equal("value is 10", v)
}

func (s *FutureSuite) TestThen_PropagatesFailureWithoutRunningContinuation() {
	cause := errors.New("boom")
	var ran bool
	out := Then(Failed[int](cause), func(ctx context.Context, v int) *Future[string] {
		ran = true
		return Resolved("")
	})

	_, err := out.Wait(context.Background())
	s.Equal(cause, err)
	s.False(ran)
}

func (s *FutureSuite) TestCatch_RunsOnlyOnFailure() {
	var ran bool
	out := Catch(Resolved(5), func(ctx context.Context, err error) (int, error) {
		ran = true
		return 0, err
	})

	v, err := out.Wait(context.Background())
	s.Require().NoError(err)
	s.Equal(5, v)
	s.False(ran)
}

func (s *FutureSuite) TestCatch_TransformsFailure() {
	cause := errors.New("boom")
	out := Catch(Failed[int](cause), func(ctx context.Context, err error) (int, error) {
		return -1, &RouteFailure{Cause: err}
	})

	_, err := out.Wait(context.Background())
	var rf *RouteFailure
	s.Require().ErrorAs(err, &rf)
	s.Equal(cause, rf.Cause)
}

package riptide

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
)

type DispatcherSuite struct {
	suite.Suite
}

func TestDispatcherSuite(t *testing.T) {
	suite.Run(t, new(DispatcherSuite))
}

func (s *DispatcherSuite) TestDispatch_RoutesToConcreteBinding() {
	var called bool
	route, err := Dispatch(StatusCode(),
		On(200).Call(Call(func(ctx context.Context, resp *Response) error {
			called = true
			return nil
		})),
	)
	s.Require().NoError(err)

	_, err = route(context.Background(), &Response{StatusCode: 200}).Wait(context.Background())
	s.Require().NoError(err)
	s.True(called)
}

func (s *DispatcherSuite) TestDispatch_FallsBackToWildcard() {
	route, err := Dispatch(StatusCode(),
		On(200).Call(Pass()),
		AnyStatus().Call(Capture()),
	)
	s.Require().NoError(err)

	result, err := route(context.Background(), &Response{StatusCode: 500}).Wait(context.Background())
	s.Require().NoError(err)
	s.IsType(&Response{}, result)
}

func (s *DispatcherSuite) TestDispatch_NoRouteMatched() {
	route, err := Dispatch(StatusCode(), On(200).Call(Pass()))
	s.Require().NoError(err)

	_, err = route(context.Background(), &Response{StatusCode: 500}).Wait(context.Background())
	s.Require().Error(err)

	var notMatched *NoRouteMatched
	s.ErrorAs(err, &notMatched)
}

func (s *DispatcherSuite) TestDispatch_ConstructionErrorPropagatesSynchronously() {
	_, err := Dispatch(StatusCode(), On(200).Call(Pass()), On(200).Call(Pass()))
	s.Require().Error(err)

	var dup *DuplicateAttributeValue
	s.ErrorAs(err, &dup)
}

func (s *DispatcherSuite) TestMustDispatch_PanicsOnConstructionError() {
	s.Panics(func() {
		MustDispatch(StatusCode(), On(200).Call(Pass()), On(200).Call(Pass()))
	})
}

func (s *DispatcherSuite) TestMustDispatch_ReturnsWorkingRoute() {
	route := MustDispatch(StatusCode(), AnyStatus().Call(Pass()))
	_, err := route(context.Background(), &Response{StatusCode: 200}).Wait(context.Background())
	s.NoError(err)
}

package riptide

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

type RouteSuite struct {
	suite.Suite
}

func TestRouteSuite(t *testing.T) {
	suite.Run(t, new(RouteSuite))
}

func (s *RouteSuite) TestPass_ResolvesWithNil() {
	v, err := Pass()(context.Background(), &Response{}).Wait(context.Background())
	s.Require().NoError(err)
	s.Nil(v)
}

func (s *RouteSuite) TestCall_RunsSideEffectAndResolvesWithNil() {
	var seen *Response
	resp := &Response{StatusCode: 201}
	v, err := Call(func(ctx context.Context, r *Response) error {
		seen = r
		return nil
	})(context.Background(), resp).Wait(context.Background())

	s.Require().NoError(err)
	s.Nil(v)
	s.Same(resp, seen)
}

func (s *RouteSuite) TestCall_FailureBecomesRouteFailure() {
	cause := errors.New("boom")
	_, err := Call(func(ctx context.Context, r *Response) error {
		return cause
	})(context.Background(), &Response{}).Wait(context.Background())

	s.Require().Error(err)
	var rf *RouteFailure
	s.Require().ErrorAs(err, &rf)
	s.Equal(cause, rf.Cause)
}

func (s *RouteSuite) TestCapture_YieldsRawResponse() {
	resp := &Response{StatusCode: 200, Body: []byte("hi")}
	v, err := Capture()(context.Background(), resp).Wait(context.Background())
	s.Require().NoError(err)
	s.Same(resp, v)
}

type accountPayload struct {
	Name string `json:"name"`
}

func (s *RouteSuite) TestMapRoute_DecodesAndTransforms() {
	resp := &Response{Body: []byte(`{"name":"ada"}`)}
	route := MapRoute(JSONConverter(), func(ctx context.Context, body accountPayload) (any, error) {
		return "hello " + body.Name, nil
	})

	v, err := route(context.Background(), resp).Wait(context.Background())
	s.Require().NoError(err)
	s.Equal("hello ada", v)
}

func (s *RouteSuite) TestMapRoute_ConverterFailureBecomesRouteFailure() {
	resp := &Response{Body: []byte("not json")}
	route := MapRoute(JSONConverter(), func(ctx context.Context, body accountPayload) (any, error) {
		return nil, nil
	})

	_, err := route(context.Background(), resp).Wait(context.Background())
	s.Require().Error(err)
	var rf *RouteFailure
	s.ErrorAs(err, &rf)
}

func (s *RouteSuite) TestConsumeRoute_RunsSideEffectAndYieldsNil() {
	resp := &Response{Body: []byte(`{"name":"grace"}`)}
	var captured string
	route := ConsumeRoute(JSONConverter(), func(ctx context.Context, body accountPayload) error {
		captured = body.Name
		return nil
	})

	v, err := route(context.Background(), resp).Wait(context.Background())
	s.Require().NoError(err)
	s.Nil(v)
	s.Equal("grace", captured)
}

// fakeConverter lets a test simulate a non-JSON wire format without pulling
// in encoding/json's own quirks.
type fakeConverter struct {
	raw []byte
	err error
}

func (c fakeConverter) Convert(resp *Response, out any) error {
	if c.err != nil {
		return c.err
	}
	return json.Unmarshal(c.raw, out)
}

func (s *RouteSuite) TestMapRoute_UsesInjectedConverter() {
	route := MapRoute(fakeConverter{raw: []byte(`{"name":"injected"}`)}, func(ctx context.Context, body accountPayload) (any, error) {
		return body.Name, nil
	})

	v, err := route(context.Background(), &Response{}).Wait(context.Background())
	s.Require().NoError(err)
	s.Equal("injected", v)
}

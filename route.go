package riptide

import (
	"context"
	"fmt"
)

// Route is a terminal response handler: "apply this handler to this
// response". It must not be invoked more than once per dispatch and must
// never panic or error out of
// band -- any failure is captured into the returned Future, mirroring how
// the teacher's Register captures unmarshal/validation failures into a
// returned error instead of letting them escape.
type Route func(ctx context.Context, resp *Response) *Future[any]

// Pass returns a Route that does nothing and succeeds with nil.
func Pass() Route {
	return func(ctx context.Context, resp *Response) *Future[any] {
		return Resolved[any](nil)
	}
}

// Call returns a Route that runs fn for its side effects and succeeds with
// nil, unless fn returns an error or panics, in which case the Future fails
// with a *RouteFailure.
func Call(fn func(ctx context.Context, resp *Response) error) Route {
	return func(ctx context.Context, resp *Response) (out *Future[any]) {
		defer func() {
			if r := recover(); r != nil {
				out = Failed[any](&RouteFailure{Cause: fmt.Errorf("panic: %v", r)})
			}
		}()
		if err := fn(ctx, resp); err != nil {
			return Failed[any](&RouteFailure{Cause: err})
		}
		return Resolved[any](nil)
	}
}

// Capture returns a Route that yields the raw Response wrapper, letting
// the caller decode or inspect it however it likes.
func Capture() Route {
	return func(ctx context.Context, resp *Response) *Future[any] {
		return Resolved[any](resp)
	}
}

// MessageConverter decodes a Response body into a typed value. It is the
// spec's "body decoder" external collaborator: Riptide never hardwires a
// specific serialization format, so Map and Consume take a MessageConverter
// explicitly.
type MessageConverter interface {
	// Convert decodes resp's body into a new value of the type that out
	// points to (out is always a non-nil pointer).
	Convert(resp *Response, out any) error
}

// MapRoute decodes the response body via conv into a T, runs fn, and
// yields fn's result as the route's output. A decode error, an error from
// fn, or a panic in fn fails the Future with a *RouteFailure. It is a
// package-level function rather than a method for the same reason the
// teacher's Register is: Go methods cannot carry type parameters
// independent of their receiver.
func MapRoute[T any](conv MessageConverter, fn func(ctx context.Context, body T) (any, error)) Route {
	return func(ctx context.Context, resp *Response) (result *Future[any]) {
		defer func() {
			if r := recover(); r != nil {
				result = Failed[any](&RouteFailure{Cause: fmt.Errorf("panic: %v", r)})
			}
		}()
		var body T
		if err := conv.Convert(resp, &body); err != nil {
			return Failed[any](&RouteFailure{Cause: err})
		}
		out, err := fn(ctx, body)
		if err != nil {
			return Failed[any](&RouteFailure{Cause: err})
		}
		return Resolved(out)
	}
}

// ConsumeRoute decodes the response body via conv into a T, invokes fn,
// and yields unit (nil).
func ConsumeRoute[T any](conv MessageConverter, fn func(ctx context.Context, body T) error) Route {
	return MapRoute[T](conv, func(ctx context.Context, body T) (any, error) {
		return nil, fn(ctx, body)
	})
}

package riptide

import "context"

// Dispatch builds a RoutingTree from bindings and returns a Route that,
// when invoked on a response, navigates to the matching binding's Route
// and runs it. This is the glue component: it never inspects what the
// matched Route resolves with, the same way the teacher's Process never
// looks past a handler's returned error.
//
// Construction errors (duplicate keys, multiple wildcards) are returned
// synchronously here, before any response is ever seen, per the spec's
// propagation policy that construction-time errors are fatal to the
// dispatch call itself.
func Dispatch[A comparable](nav Navigator[A], bindings ...Binding[A]) (Route, error) {
	tree, err := NewRoutingTree(bindings...)
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context, resp *Response) *Future[any] {
		route, ok := nav.Select(resp, tree)
		if !ok {
			a, _ := nav.Extract(resp)
			return Failed[any](&NoRouteMatched{Attribute: a})
		}
		return route(ctx, resp)
	}, nil
}

// MustDispatch is like Dispatch but panics on a construction error. It is
// meant for package-level route tables built once at init time, where a
// duplicate binding is a programmer error that should fail loudly and
// immediately rather than be threaded through as a returned error.
func MustDispatch[A comparable](nav Navigator[A], bindings ...Binding[A]) Route {
	route, err := Dispatch(nav, bindings...)
	if err != nil {
		panic(err)
	}
	return route
}

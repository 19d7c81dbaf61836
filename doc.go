// Package riptide routes HTTP responses to typed handlers by dispatching on
// a response attribute — status code, status series, content type, or any
// caller-supplied function of the response — rather than the URL a server
// would use to route an incoming request.
//
// A client issues a request and gets back a status code and a body. What
// that means depends on both: a 200 with one content type calls for one
// payload shape, a 200 with another calls for a different one, and a 4xx
// calls for an error type entirely. Riptide turns that decision into
// declarative bindings instead of nested status/content-type conditionals.
//
// # Quick Start
//
// Build a Route by dispatching on an attribute and binding each value:
//
//	route, err := riptide.Dispatch(
//	    riptide.StatusCode(),
//	    riptide.On(200).Call(riptide.MapRoute(riptide.JSONConverter(), func(ctx context.Context, a Account) (any, error) {
//	        return a, nil
//	    })),
//	    riptide.On(404).Call(riptide.ConsumeRoute(riptide.JSONConverter(), func(ctx context.Context, p Problem) error {
//	        return fmt.Errorf("account not found: %s", p.Detail)
//	    })),
//	    riptide.AnyStatus().Call(riptide.Pass()),
//	)
//
// Wire it through a Rest instance and send a request:
//
//	rest := riptide.NewRest("https://api.example.com", myFactory,
//	    riptide.WithPlugin(riptide.TemporaryExceptionPlugin(riptide.DefaultClassifier())),
//	)
//
//	result, err := riptide.Send(
//	    rest.Get("/accounts/{id}").PathVar("id", "42"),
//	    riptide.StatusCode(),
//	    riptide.On(200).Call(riptide.MapRoute(riptide.JSONConverter(), func(ctx context.Context, a Account) (any, error) { return a, nil })),
//	    riptide.AnyStatus().Call(riptide.Pass()),
//	).Wait(ctx)
//
// # Design Philosophy
//
// The package separates concerns into four layers:
//
//   - Navigators: extract a comparable attribute from a *Response
//   - Bindings: pair an attribute value (or wildcard) with a Route
//   - Routes: terminal handlers — Pass, Call, Capture, MapRoute, ConsumeRoute
//   - Plugins: wrap the transport Supplier, composing around Dispatch
//
// This separation allows:
//   - Routing on any attribute of a response, not just status code
//   - Transport-agnostic route code — a Route never sees a RequestFactory
//   - Cross-cutting concerns (metrics, tracing, retry classification) as
//     composable Plugins instead of scattered call-site boilerplate
//   - Easy testing with a RequestFactoryFunc test double
//
// # Navigator Pattern
//
// A Navigator has two responsibilities:
//
//  1. Extract: pull a comparable attribute value out of a *Response
//  2. Select: given a RoutingTree, pick the Route for that value
//
// Most Navigators share one Select behavior — exact match, falling back to
// the tree's wildcard if present — via DefaultSelect:
//
//	func (statusCodeNavigator) Extract(r *Response) (int, bool) {
//	    return r.StatusCode, true
//	}
//
//	func (n statusCodeNavigator) Select(r *Response, t *RoutingTree[int]) (Route, bool) {
//	    a, ok := n.Extract(r)
//	    return DefaultSelect(t, a, ok)
//	}
//
// Built-in Navigators: StatusCode, Status, SeriesNavigator, ContentType,
// ContentTypeKind, ReasonPhrase, and JSONField(path) for dispatching on a
// field inside the response body.
//
// # Bindings
//
// A Binding pairs one attribute value with a Route; AnyOf marks the
// catch-all wildcard binding for a tree:
//
//	riptide.On(200).Call(route)
//	riptide.AnyOf[int]().Call(fallbackRoute)
//
// AnyStatus, AnySeries, and AnyContentType are typed convenience wrappers
// over AnyOf for the built-in attribute types.
//
// Because a Go method cannot introduce a type parameter the receiver
// doesn't have, the type-decoding Route constructors are package-level
// generic functions rather than methods on Binding or Builder:
//
//	riptide.MapRoute(conv, func(ctx context.Context, a Account) (any, error) { ... })
//	riptide.ConsumeRoute(conv, func(ctx context.Context, p Problem) error { ... })
//
// # Plugins
//
// A Plugin decorates a Supplier of responses and is composed outer-to-inner
// in caller-supplied order; there is no implicit priority:
//
//	rest := riptide.NewRest(baseURL, factory,
//	    riptide.WithPlugin(riptide.TracingPlugin(nil)),
//	    riptide.WithPlugin(riptide.MetricsPlugin(prometheus.DefaultRegisterer)),
//	    riptide.WithPlugin(riptide.TemporaryExceptionPlugin(riptide.DefaultClassifier())),
//	)
//
// TemporaryExceptionPlugin classifies transport failures (timeout,
// connection reset, DNS failure, unexpected EOF by default) and re-wraps a
// matching cause as *TemporaryException, exactly once, so callers can tell
// "try again" apart from "this will never succeed" without Riptide itself
// implementing retries — that policy belongs to the caller or to
// RequestFactory.
//
// # Asynchrony
//
// Every Route and every call to Send returns a *Future[T] rather than
// blocking. Futures resolve exactly once, compose via Then and Catch, and
// propagate Cancel to whatever produced them. The transport call itself
// only happens once the outermost Supplier in the plugin chain is invoked,
// and nothing blocks until the caller calls Wait.
package riptide

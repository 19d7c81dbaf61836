package riptide

import (
	"context"
	"net/url"
	"strings"
)

// RequestFactory is the external collaborator that actually performs an
// HTTP round trip. Riptide never opens a socket itself; it only builds
// RequestArguments and hands them to whatever RequestFactory the caller
// configured (a connection-pooled client, a test double, …).
type RequestFactory interface {
	Do(ctx context.Context, args RequestArguments) *Future[*Response]
}

// RequestFactoryFunc adapts a plain function to RequestFactory.
type RequestFactoryFunc func(ctx context.Context, args RequestArguments) *Future[*Response]

func (f RequestFactoryFunc) Do(ctx context.Context, args RequestArguments) *Future[*Response] {
	return f(ctx, args)
}

// restConfig holds a Rest instance's immutable configuration, assembled
// from Options at NewRest time and never touched again -- the same
// freeze-at-construction shape as the teacher's hooks struct.
type restConfig struct {
	baseURL    string
	factory    RequestFactory
	plugins    Chain
	converters []MessageConverter
}

// Option configures a Rest instance at construction time.
type Option func(*restConfig)

// WithPlugin appends a Plugin to the pipeline, in the order supplied.
func WithPlugin(p Plugin) Option {
	return func(c *restConfig) {
		c.plugins = append(c.plugins, p)
	}
}

// WithConverter stores a MessageConverter in the Rest configuration. No
// route reads it: MapRoute, ConsumeRoute, Map and Consume always decode
// with the converter passed to them.
func WithConverter(conv MessageConverter) Option {
	return func(c *restConfig) {
		c.converters = append(c.converters, conv)
	}
}

// Rest is the request pipeline: base URL, request factory, ordered plugin
// list, and default converters, all frozen at construction.
type Rest struct {
	config restConfig
}

// NewRest builds a Rest instance. baseURL is prefixed to every
// RequestBuilder's path; factory performs the actual transport call.
func NewRest(baseURL string, factory RequestFactory, opts ...Option) *Rest {
	cfg := restConfig{baseURL: strings.TrimRight(baseURL, "/"), factory: factory}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Rest{config: cfg}
}

// Get starts a GET RequestBuilder for path.
func (r *Rest) Get(path string) *RequestBuilder { return r.request("GET", path) }

// Post starts a POST RequestBuilder for path.
func (r *Rest) Post(path string) *RequestBuilder { return r.request("POST", path) }

// Put starts a PUT RequestBuilder for path.
func (r *Rest) Put(path string) *RequestBuilder { return r.request("PUT", path) }

// Delete starts a DELETE RequestBuilder for path.
func (r *Rest) Delete(path string) *RequestBuilder { return r.request("DELETE", path) }

// Request starts a RequestBuilder for an arbitrary HTTP method.
func (r *Rest) Request(method, path string) *RequestBuilder { return r.request(method, path) }

func (r *Rest) request(method, path string) *RequestBuilder {
	return &RequestBuilder{
		rest:    r,
		method:  method,
		path:    path,
		headers: map[string][]string{},
		query:   map[string][]string{},
	}
}

// RequestBuilder accumulates method, path, path variables, query
// parameters, headers, and body before Send freezes it into
// RequestArguments and sends it through the pipeline.
type RequestBuilder struct {
	rest      *Rest
	method    string
	path      string
	pathVars  map[string]string
	headers   map[string][]string
	query     map[string][]string
	body      any
}

// PathVar substitutes "{name}" in the path template with value.
func (b *RequestBuilder) PathVar(name, value string) *RequestBuilder {
	if b.pathVars == nil {
		b.pathVars = map[string]string{}
	}
	b.pathVars[name] = value
	return b
}

// Query adds a query parameter. Repeated calls with the same key append
// additional values.
func (b *RequestBuilder) Query(key, value string) *RequestBuilder {
	b.query[key] = append(b.query[key], value)
	return b
}

// Header adds a header. Repeated calls with the same key append
// additional values.
func (b *RequestBuilder) Header(key, value string) *RequestBuilder {
	b.headers[key] = append(b.headers[key], value)
	return b
}

// Accept is shorthand for Header("Accept", mediaType).
func (b *RequestBuilder) Accept(mediaType string) *RequestBuilder {
	return b.Header("Accept", mediaType)
}

// AcceptAny sets "Accept: */*", for a caller that routes on status code or
// body content rather than negotiating a specific response format.
func (b *RequestBuilder) AcceptAny() *RequestBuilder {
	return b.Accept(Wildcard.String())
}

// Body sets the request body, passed through to the RequestFactory
// untouched -- encoding it is the factory's concern, same as the spec's
// "fluent builder" being an external collaborator.
func (b *RequestBuilder) Body(v any) *RequestBuilder {
	b.body = v
	return b
}

func (b *RequestBuilder) resolvedURL() string {
	path := b.path
	for name, value := range b.pathVars {
		path = strings.ReplaceAll(path, "{"+name+"}", url.PathEscape(value))
	}
	full := b.rest.config.baseURL + path
	if len(b.query) == 0 {
		return full
	}
	values := url.Values{}
	for k, vs := range b.query {
		for _, v := range vs {
			values.Add(k, v)
		}
	}
	return full + "?" + values.Encode()
}

// Send is a package-level function -- not a (*RequestBuilder) method,
// again because a method cannot carry a type parameter the receiver
// doesn't have -- that freezes b into RequestArguments, wraps the
// transport Supplier in the configured plugin chain outer-to-inner,
// invokes it, and chains a continuation that feeds the resolved response
// into a Dispatch-built Route from nav and bindings. The outermost Supplier
// is invoked inside Send, so the RequestFactory's Do is called before Send
// returns; Send itself never waits for the response, and nothing blocks
// until the returned Future is awaited.
func Send[A comparable](b *RequestBuilder, nav Navigator[A], bindings ...Binding[A]) *Future[any] {
	route, err := Dispatch(nav, bindings...)
	if err != nil {
		return Failed[any](err)
	}

	args := RequestArguments{
		Method:  b.method,
		URL:     b.resolvedURL(),
		Headers: b.headers,
		Query:   b.query,
		Body:    b.body,
	}

	seed := transportSupplier(b.rest.config.factory, args)
	supplier := b.rest.config.plugins.Wrap(args, seed)

	respFuture := supplier(context.Background())
	return Then(respFuture, func(ctx context.Context, resp *Response) *Future[any] {
		return route(ctx, resp)
	})
}

package riptide

import "context"

// RequestArguments is the frozen description of an outbound request: the
// accumulated state of a RequestBuilder at the moment Send is called.
// Plugins receive it read-only; nothing after Send mutates it.
type RequestArguments struct {
	Method  string
	URL     string
	Headers map[string][]string
	Query   map[string][]string
	Body    any
}

// Plugin wraps a Supplier of responses, observing or transforming the
// eventual Future it produces. Composition is right-to-left: the plugin
// nearest the transport is called first when building the chain, so its
// Supplier is what every outer plugin's "next" parameter receives.
//
// Plugins may:
//   - short-circuit by returning a Supplier that never calls next
//   - observe completion by attaching a continuation via Then/Catch to
//     next's Future
//   - substitute a response or transform the failure
type Plugin func(args RequestArguments, next Supplier[*Response]) Supplier[*Response]

// Identity returns a Plugin that passes its Supplier through unchanged.
func Identity() Plugin {
	return func(args RequestArguments, next Supplier[*Response]) Supplier[*Response] {
		return next
	}
}

// Chain is an ordered list of Plugins. There is no implicit priority or
// reordering: Wrap folds the chain exactly in caller order.
type Chain []Plugin

// Wrap right-folds the chain over seed, so that seed sees requests last
// and chain[0] sees requests first -- chain[0] is the outermost decorator,
// exactly mirroring the spec's "plugin N's returned supplier is passed to
// plugin N-1" composition order.
func (c Chain) Wrap(args RequestArguments, seed Supplier[*Response]) Supplier[*Response] {
	wrapped := seed
	for i := len(c) - 1; i >= 0; i-- {
		wrapped = c[i](args, wrapped)
	}
	return wrapped
}

// transportSupplier adapts a RequestFactory into the innermost Supplier of
// a plugin chain -- the point where an actual network call happens.
func transportSupplier(factory RequestFactory, args RequestArguments) Supplier[*Response] {
	return func(ctx context.Context) *Future[*Response] {
		return factory.Do(ctx, args)
	}
}

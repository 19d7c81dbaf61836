package riptide

import "context"

// Binding pairs an attribute key (or the wildcard marker) with a Route.
// Bindings are the units NewRoutingTree is built from.
type Binding[A comparable] struct {
	key      A
	wildcard bool
	route    Route
}

// On starts a binding for a concrete attribute value. Finish it with
// Call, or with the package-level Map/Consume helpers below.
func On[A comparable](key A) Builder[A] {
	return Builder[A]{key: key}
}

// AnyOf starts a wildcard binding, matched when no concrete binding
// applies. AnyStatus/AnySeries/AnyContentType are thin aliases over this
// for the navigators' own attribute types.
func AnyOf[A comparable]() Builder[A] {
	return Builder[A]{wildcard: true}
}

// AnyStatus is a wildcard binding for the StatusCode navigator.
func AnyStatus() Builder[int] { return AnyOf[int]() }

// AnySeries is a wildcard binding for the Series navigator.
func AnySeries() Builder[Series] { return AnyOf[Series]() }

// AnyContentType is a wildcard binding for the ContentType/ContentTypeKind
// navigators.
func AnyContentType() Builder[MediaType] { return AnyOf[MediaType]() }

// Builder accumulates a key (or wildcard marker) before being finished
// into a Binding.
type Builder[A comparable] struct {
	key      A
	wildcard bool
}

// Call finishes the binding with a ready-made Route.
func (b Builder[A]) Call(route Route) Binding[A] {
	return Binding[A]{key: b.key, wildcard: b.wildcard, route: route}
}

// Map finishes a binding by decoding the response body via conv into a T,
// running fn, and yielding fn's result. It is a package-level function
// (not a method on Builder) because methods cannot introduce a type
// parameter the receiver doesn't already have -- the same limitation the
// teacher's router.go documents for Register[T].
func Map[A comparable, T any](b Builder[A], conv MessageConverter, fn func(ctx context.Context, body T) (any, error)) Binding[A] {
	return b.Call(MapRoute[T](conv, fn))
}

// Consume finishes a binding by decoding the response body via conv into a
// T and running fn for its side effects.
func Consume[A comparable, T any](b Builder[A], conv MessageConverter, fn func(ctx context.Context, body T) error) Binding[A] {
	return b.Call(ConsumeRoute[T](conv, fn))
}

package riptide

import (
	"fmt"
	"sort"
)

// DuplicateAttributeValue is returned by NewRoutingTree when two or more
// concrete bindings share the same attribute key. The message enumerates
// every offending key, not just the first one found.
type DuplicateAttributeValue struct {
	Keys []string
}

func (e *DuplicateAttributeValue) Error() string {
	keys := append([]string(nil), e.Keys...)
	sort.Strings(keys)
	return fmt.Sprintf("riptide: duplicate attribute value(s): %v", keys)
}

// MultipleWildcards is returned by NewRoutingTree when more than one
// wildcard binding is supplied.
type MultipleWildcards struct{}

func (e *MultipleWildcards) Error() string {
	return "riptide: at most one wildcard binding is allowed"
}

// NoRouteMatched is the failure value of a Dispatch-built Route's Future
// when neither a concrete binding nor a wildcard matches the response's
// attribute.
type NoRouteMatched struct {
	Attribute any
}

func (e *NoRouteMatched) Error() string {
	return fmt.Sprintf("riptide: no route matched attribute %v", e.Attribute)
}

// TransportFailure wraps any network, I/O, or protocol error a
// RequestFactory implementation surfaces. It is the core's own
// "generic asynchronous completion wrapper" that TemporaryExceptionPlugin
// unwraps exactly one level of before running the classifier.
type TransportFailure struct {
	Cause error
}

func (e *TransportFailure) Error() string {
	return fmt.Sprintf("riptide: transport failure: %v", e.Cause)
}

func (e *TransportFailure) Unwrap() error {
	return e.Cause
}

// RouteFailure wraps an error (or recovered panic) raised inside a Route
// handler, so it can be told apart from a NoRouteMatched or TransportFailure
// further up the Future chain.
type RouteFailure struct {
	Cause error
}

func (e *RouteFailure) Error() string {
	return fmt.Sprintf("riptide: route failed: %v", e.Cause)
}

func (e *RouteFailure) Unwrap() error {
	return e.Cause
}

// TemporaryException signals a transient, retryable failure. Callers may
// use errors.As to detect it and decide to retry; Riptide itself never
// retries.
type TemporaryException struct {
	Cause error
}

func (e *TemporaryException) Error() string {
	return fmt.Sprintf("riptide: temporary: %v", e.Cause)
}

func (e *TemporaryException) Unwrap() error {
	return e.Cause
}

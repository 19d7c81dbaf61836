package riptide

import "fmt"

// RoutingTree is an immutable attribute-to-Route map with one optional
// wildcard, built once from a non-empty set of Bindings and read-only
// thereafter -- safe for concurrent Lookup calls without locking, the same
// guarantee the teacher's router.go gets from never mutating r.handlers
// after Register.
type RoutingTree[A comparable] struct {
	routes   map[A]Route
	wildcard Route
	hasWild  bool
}

// NewRoutingTree builds a RoutingTree from bindings, enforcing the spec's
// two construction invariants: no two concrete bindings share a key, and
// at most one wildcard binding is present. bindings must be non-empty.
func NewRoutingTree[A comparable](bindings ...Binding[A]) (*RoutingTree[A], error) {
	if len(bindings) == 0 {
		return nil, fmt.Errorf("riptide: NewRoutingTree requires at least one binding")
	}

	routes := make(map[A]Route, len(bindings))
	seen := make(map[A]int, len(bindings))
	var dupKeys []string
	var wildcard Route
	wildcardCount := 0

	for _, b := range bindings {
		if b.wildcard {
			wildcardCount++
			wildcard = b.route
			continue
		}
		seen[b.key]++
		if seen[b.key] == 2 {
			dupKeys = append(dupKeys, fmt.Sprint(b.key))
		}
		routes[b.key] = b.route
	}

	if len(dupKeys) > 0 {
		return nil, &DuplicateAttributeValue{Keys: dupKeys}
	}
	if wildcardCount > 1 {
		return nil, &MultipleWildcards{}
	}

	return &RoutingTree[A]{
		routes:   routes,
		wildcard: wildcard,
		hasWild:  wildcardCount == 1,
	}, nil
}

// Lookup returns the Route bound to a, or the wildcard Route if a has no
// concrete binding, or ok == false if neither is present.
func (t *RoutingTree[A]) Lookup(a A) (Route, bool) {
	if route, ok := t.routes[a]; ok {
		return route, true
	}
	if t.hasWild {
		return t.wildcard, true
	}
	return nil, false
}

// HasWildcard reports whether the tree has a wildcard binding.
func (t *RoutingTree[A]) HasWildcard() bool {
	return t.hasWild
}

package riptide

import "github.com/tidwall/gjson"

// BodyPredicate tests a response body's raw JSON bytes. It is a plain
// function type, composed with And/Or, the same way Plugin and Option
// compose Riptide's other pipeline stages -- MatchesNavigator is the
// licensed "user-supplied function of the response" a caller can route on
// without writing out a JSONField binding per field it cares about.
type BodyPredicate func(raw []byte) bool

// HasFields returns a BodyPredicate that matches when every path is
// present in the body.
func HasFields(paths ...string) BodyPredicate {
	return func(raw []byte) bool {
		for _, path := range paths {
			if !gjson.GetBytes(raw, path).Exists() {
				return false
			}
		}
		return true
	}
}

// FieldEquals returns a BodyPredicate that matches when path is present,
// a JSON string, and equal to value.
func FieldEquals(path, value string) BodyPredicate {
	return func(raw []byte) bool {
		r := gjson.GetBytes(raw, path)
		return r.Exists() && r.Type == gjson.String && r.String() == value
	}
}

// And returns a BodyPredicate that matches only when every predicate in ps
// matches.
func And(ps ...BodyPredicate) BodyPredicate {
	return func(raw []byte) bool {
		for _, p := range ps {
			if !p(raw) {
				return false
			}
		}
		return true
	}
}

// Or returns a BodyPredicate that matches when any predicate in ps
// matches.
func Or(ps ...BodyPredicate) BodyPredicate {
	return func(raw []byte) bool {
		for _, p := range ps {
			if p(raw) {
				return true
			}
		}
		return false
	}
}

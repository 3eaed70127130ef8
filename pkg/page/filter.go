package page

import "strings"

// ContainsFold reports whether sub occurs in s, ignoring case.
func ContainsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// MatchAny is the text search of every page: an empty term matches, otherwise
// any field containing the term does.
func MatchAny(term string, fields ...string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return true
	}
	for _, f := range fields {
		if ContainsFold(f, term) {
			return true
		}
	}
	return false
}

// Is builds an equality filter; the zero value of want matches everything.
func Is[T any, V comparable](want V, get func(T) V) func(T) bool {
	var zero V
	if want == zero {
		return func(T) bool { return true }
	}
	return func(v T) bool { return get(v) == want }
}

// Filter keeps the items satisfying every predicate. Predicates are
// independent, so their order does not matter. The result is never nil.
func Filter[T any](items []T, preds ...func(T) bool) []T {
	out := make([]T, 0, len(items))
next:
	for _, v := range items {
		for _, p := range preds {
			if !p(v) {
				continue next
			}
		}
		out = append(out, v)
	}
	return out
}

// Package join provides a hash-based inner equi-join over slices.
package join

// Lookup indexes a sequence by key. Elements sharing a key keep their
// original relative order.
type Lookup[R any, K comparable] struct {
	groups map[K][]R
}

// ToLookup builds a lookup over right keyed by key
func ToLookup[R any, K comparable](right []R, key func(R) K) Lookup[R, K] {
	groups := make(map[K][]R, len(right))
	for _, r := range right {
		k := key(r)
		groups[k] = append(groups[k], r)
	}
	return Lookup[R, K]{groups: groups}
}

// Get returns the elements stored under k
func (l Lookup[R, K]) Get(k K) []R {
	return l.groups[k]
}

// Inner joins left and right on equal keys. Output follows the order of
// left; a left element with several matches yields one result per match
// in the order of right. Left elements without a match are dropped.
func Inner[L, R any, K comparable, O any](
	left []L,
	right []R,
	leftKey func(L) K,
	rightKey func(R) K,
	combine func(L, R) O,
) []O {
	return InnerLookup(left, ToLookup(right, rightKey), leftKey, combine)
}

// InnerLookup is Inner against a prebuilt lookup
func InnerLookup[L, R any, K comparable, O any](
	left []L,
	right Lookup[R, K],
	leftKey func(L) K,
	combine func(L, R) O,
) []O {
	out := make([]O, 0, len(left))
	for _, l := range left {
		for _, r := range right.Get(leftKey(l)) {
			out = append(out, combine(l, r))
		}
	}
	return out
}

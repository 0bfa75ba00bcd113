// Package iterate implements small iteration protocols as free functions.
//
// Instead of adding methods to built-in types, each helper takes the value it
// iterates over. Times and All return range-over-func iterators:
//
//	for i := range iterate.Times(3) {
//		fmt.Println(i)
//	}
package iterate

import "iter"

// Yield runs before, then body, then after. It is the shape of a method that
// hands control to a caller-supplied block and resumes when the block returns.
func Yield(before, body, after func()) {
	if before != nil {
		before()
	}
	if body != nil {
		body()
	}
	if after != nil {
		after()
	}
}

// Times yields 0..n-1. A non-positive n yields nothing.
func Times(n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < n; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// All yields each index and element of s.
func All[E any](s []E) iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i := 0; i < len(s); i++ {
			if !yield(i, s[i]) {
				return
			}
		}
	}
}

// Each calls fn for every element and returns s unchanged, so calls can be chained.
func Each[S ~[]E, E any](s S, fn func(E)) S {
	for _, e := range All([]E(s)) {
		fn(e)
	}
	return s
}

// Map returns a new slice holding fn applied to every element of s.
func Map[E, R any](s []E, fn func(E) R) []R {
	out := make([]R, 0, len(s))
	for _, e := range All(s) {
		out = append(out, fn(e))
	}
	return out
}

// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package bow

import "cmp"

// Equal reports whether a and b enclose equal values. Whether either is
// owned or borrowed does not matter.
func Equal[T comparable](a, b Bow[T]) bool {
	return a.Get() == b.Get()
}

// EqualFunc is like [Equal] but uses eq to compare the enclosed values.
func EqualFunc[T any](a, b Bow[T], eq func(T, T) bool) bool {
	return eq(a.Get(), b.Get())
}

// Compare returns
//
//	-1 if a's value is less than b's value,
//	 0 if a's value equals b's value,
//	+1 if a's value is greater than b's value.
//
// The ordering is that of [cmp.Compare] and ignores the variant.
func Compare[T cmp.Ordered](a, b Bow[T]) int {
	return cmp.Compare(a.Get(), b.Get())
}

// CompareFunc is like [Compare] but uses f to order the enclosed values.
func CompareFunc[T any](a, b Bow[T], f func(T, T) int) int {
	return f(a.Get(), b.Get())
}

// Less reports whether a's value is less than b's value.
func Less[T cmp.Ordered](a, b Bow[T]) bool {
	return cmp.Less(a.Get(), b.Get())
}

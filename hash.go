// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package bow

import "hash/maphash"

// Hash returns the hash of the value enclosed by b. Bows which are [Equal]
// hash identically for the same seed, regardless of their variants.
func Hash[T comparable](seed maphash.Seed, b Bow[T]) uint64 {
	return maphash.Comparable(seed, b.Get())
}

// WriteHash adds the value enclosed by b to h.
func WriteHash[T comparable](h *maphash.Hash, b Bow[T]) {
	maphash.WriteComparable(h, b.Get())
}

// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package bow

import (
	"hash/maphash"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHash(t *testing.T) {
	t.Run("will be the same for equal values", func(t *testing.T) {
		seed := maphash.MakeSeed()
		for _, v := range []string{"", "a", "hello world"} {
			w := v
			owned := Owned(v)
			borrowed := Borrowed(&w)
			if !assert.True(t, Equal(owned, borrowed)) {
				return
			}
			if !assert.Equal(t, Hash(seed, owned), Hash(seed, borrowed)) {
				return
			}
		}
	})

	t.Run("will match hashing the enclosed value directly", func(t *testing.T) {
		seed := maphash.MakeSeed()
		if !assert.Equal(t, maphash.Comparable(seed, 42), Hash(seed, Owned(42))) {
			return
		}
	})
}

func TestWriteHash(t *testing.T) {
	t.Run("will write the same bytes for equal values", func(t *testing.T) {
		seed := maphash.MakeSeed()
		v := 5

		var a maphash.Hash
		a.SetSeed(seed)
		WriteHash(&a, Owned(5))

		var b maphash.Hash
		b.SetSeed(seed)
		WriteHash(&b, Borrowed(&v))

		if !assert.Equal(t, a.Sum64(), b.Sum64()) {
			return
		}
	})
}

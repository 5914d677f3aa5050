// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"io"

	"github.com/z5labs/bow/internal/try"
)

// applyEncoded reads all of r, decodes it as a map using unmarshal and
// applies the result to store. r is closed if it implements io.Closer.
func applyEncoded(r io.Reader, store Store, unmarshal func([]byte, any) error, invalid func(error) error) (err error) {
	defer try.Close(&err, r)

	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	m := make(map[string]any)
	err = unmarshal(b, &m)
	if err != nil {
		return invalid(err)
	}
	return Map(m).Apply(store)
}

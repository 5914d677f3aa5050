// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package bow

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// DecodeError occurs when the encoded form of a value could not
// be decoded into a Bow.
type DecodeError struct {
	Format string
	Cause  error
}

// Error implements the error interface.
func (e DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s value: %s", e.Format, e.Cause)
}

// Unwrap implements the implicit interface for usage with errors.Is and errors.As.
func (e DecodeError) Unwrap() error {
	return e.Cause
}

// UnmarshalWith replaces b with an owned value which is decoded by
// unmarshal. unmarshal is given a pointer to a copy of the current
// value, so anything the encoded form leaves out keeps its prior value.
//
// The value b previously borrowed, if any, is never written to.
func (b *Bow[T]) UnmarshalWith(unmarshal func(v any) error) error {
	v := detach(b.Get())
	err := unmarshal(&v)
	if err != nil {
		return err
	}
	*b = Owned(v)
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
func (b Bow[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.AsRef())
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// The result is an owned Bow unless data is null, in which
// case b is left untouched.
func (b *Bow[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	err := b.UnmarshalWith(func(v any) error {
		return json.Unmarshal(data, v)
	})
	if err != nil {
		return DecodeError{Format: "json", Cause: err}
	}
	return nil
}

// MarshalYAML implements the [yaml.Marshaler] interface.
func (b Bow[T]) MarshalYAML() (any, error) {
	return b.AsRef(), nil
}

// UnmarshalYAML implements the [yaml.Unmarshaler] interface.
// The result is always an owned Bow. yaml.v3 never calls it for
// null nodes, so those leave b untouched.
func (b *Bow[T]) UnmarshalYAML(node *yaml.Node) error {
	err := b.UnmarshalWith(node.Decode)
	if err != nil {
		return DecodeError{Format: "yaml", Cause: err}
	}
	return nil
}

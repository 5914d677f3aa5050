// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package bow

import (
	"fmt"
	"log/slog"
)

// Format implements the [fmt.Formatter] interface. All verbs and flags are
// applied to the enclosed value, so an owned and a borrowed Bow print identically.
//
// Formatting methods T declares with a pointer receiver are used as well.
func (b Bow[T]) Format(f fmt.State, verb rune) {
	fmt.Fprintf(f, fmt.FormatString(f, verb), delegate(b.AsRef(), formats))
}

// String implements the [fmt.Stringer] interface.
func (b Bow[T]) String() string {
	return fmt.Sprint(delegate(b.AsRef(), formats))
}

// LogValue implements the [slog.LogValuer] interface.
func (b Bow[T]) LogValue() slog.Value {
	return slog.AnyValue(delegate(b.AsRef(), logs))
}

// delegate returns the value p points to, unless only *T implements the
// methods check looks for. A *T would print as &{...} for struct types,
// hence the value is preferred.
func delegate[T any](p *T, check func(any) bool) any {
	if check(*p) || !check(p) {
		return *p
	}
	return p
}

func formats(v any) bool {
	switch v.(type) {
	case fmt.Formatter, fmt.Stringer, fmt.GoStringer, error:
		return true
	default:
		return false
	}
}

func logs(v any) bool {
	_, ok := v.(slog.LogValuer)
	return ok
}

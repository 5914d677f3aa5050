// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package bow

// Bow is a Borrowed-Or-oWned value.
//
// A Bow either owns its value, see [Owned], or refers to a value owned
// somewhere else, see [Borrowed]. Both cases are read the same way via
// [Bow.Get]. Mutation is only ever available for owned values via
// [Bow.BorrowMut].
//
// [Bow.Get] is the only read-only view of a borrowed value. [Bow.AsRef]
// hands out the borrowed pointer itself, and nothing stops a caller from
// writing through it, so treat it as read-only by convention.
//
// The zero value is an owned zero T, identical to [Default].
//
// Copying a Bow is always shallow: copying a borrowed Bow copies the
// reference and copying an owned Bow copies the T value itself. No method
// requires T to know how to clone itself.
//
// Bow[T] is comparable whenever T is, but == also compares the variant and
// the referenced address. Use [Equal] to compare enclosed values.
type Bow[T any] struct {
	// ref is non-nil iff the value is borrowed.
	ref   *T
	owned T
}

// Owned returns a Bow which owns v.
func Owned[T any](v T) Bow[T] {
	return Bow[T]{owned: v}
}

// Borrowed returns a Bow which refers to the value v points to. The Bow
// never writes through v.
//
// A nil v borrows a fresh zero value of T.
func Borrowed[T any](v *T) Bow[T] {
	if v == nil {
		v = new(T)
	}
	return Bow[T]{ref: v}
}

// Default returns an owned Bow of the zero value of T. There is never a
// borrowed default since there's nothing sensible to refer to.
func Default[T any]() Bow[T] {
	return Bow[T]{}
}

// IsOwned reports whether b owns its value.
func (b Bow[T]) IsOwned() bool {
	return b.ref == nil
}

// IsBorrowed reports whether b refers to a value owned elsewhere.
func (b Bow[T]) IsBorrowed() bool {
	return b.ref != nil
}

// Get returns the enclosed value regardless of whether it's owned or borrowed.
func (b Bow[T]) Get() T {
	if b.ref != nil {
		return *b.ref
	}
	return b.owned
}

// AsRef returns a reference to the enclosed value. It is the same value
// [Bow.Get] reads.
//
// The returned pointer must only be read from. Use [Bow.BorrowMut] to
// mutate an owned value.
func (b *Bow[T]) AsRef() *T {
	if b.ref != nil {
		return b.ref
	}
	return &b.owned
}

// BorrowMut returns a mutable reference to the enclosed value but only if
// the value is owned. A borrowed Bow always returns false.
func (b *Bow[T]) BorrowMut() (*T, bool) {
	if b.ref != nil {
		return nil, false
	}
	return &b.owned, true
}

// Borrow returns a borrowed Bow referring to the value enclosed by b.
// Mutations made through b.BorrowMut are visible via the returned Bow.
func (b *Bow[T]) Borrow() Bow[T] {
	return Bow[T]{ref: b.AsRef()}
}

// Extract returns the enclosed value and true if it is owned. A borrowed
// Bow returns the zero value of T and false, leaving the referenced value
// untouched.
//
// Ownership of the value moves to the caller, b should not be used afterwards.
func (b Bow[T]) Extract() (T, bool) {
	if b.ref != nil {
		var zero T
		return zero, false
	}
	return b.owned, true
}

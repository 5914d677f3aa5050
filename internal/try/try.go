// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package try provides helpers for folding deferred cleanup errors
// into a function's named error return.
package try

import (
	"errors"
	"fmt"
	"io"
)

// CloseError wraps an error returned by io.Closer.Close.
type CloseError struct {
	Cause error
}

// Error implements the error interface.
func (e CloseError) Error() string {
	return fmt.Sprintf("failed to close: %s", e.Cause)
}

// Unwrap implements the implicit interface for usage with errors.Is and errors.As.
func (e CloseError) Unwrap() error {
	return e.Cause
}

// Close closes v if it implements io.Closer. Any error from closing is
// wrapped in a CloseError and joined with the error err points to.
func Close(err *error, v any) {
	c, ok := v.(io.Closer)
	if !ok {
		return
	}

	cerr := c.Close()
	if cerr == nil {
		return
	}

	*err = errors.Join(*err, CloseError{Cause: cerr})
}

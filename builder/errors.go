// SPDX-License-Identifier: MIT
package builder

import (
	"errors"
	"fmt"
)

// ErrNoInput indicates Build was called with no points and no segments.
var ErrNoInput = errors.New("builder: no input sites")

// ErrNilSink indicates Build was called with a nil diagram.Sink.
var ErrNilSink = errors.New("builder: nil sink")

// wrapf prefixes err with the given method context, preserving it for
// errors.Is (mirrors the teacher's builderErrorf wrapping policy).
func wrapf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}

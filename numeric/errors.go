// SPDX-License-Identifier: MIT
// Package numeric: sentinel error set.
// Parsers return these sentinels wrapped with the offending text; callers
// match them via errors.Is.

package numeric

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is returned when a token is not a well-formed number for the backend.
	ErrParse = errors.New("numeric: malformed number")

	// ErrNonFinite is returned when a token parses to NaN or ±Inf.
	// Coefficients must be finite for the exact-zero pivot policy to be meaningful.
	ErrNonFinite = errors.New("numeric: NaN or Inf not allowed")
)

// parseErrorf wraps a sentinel with the backend name and the rejected text.
func parseErrorf(backend, text string, err error) error {
	return fmt.Errorf("%s.Parse(%q): %w", backend, text, err)
}

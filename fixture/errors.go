// SPDX-License-Identifier: MIT

package fixture

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidID is returned for empty ids or ids with characters outside
	// [A-Za-z0-9_-]; path separators and dots are never accepted.
	ErrInvalidID = errors.New("fixture: invalid id")

	// ErrNotFound indicates that no fixture file exists for the id.
	ErrNotFound = errors.New("fixture: not found")

	// ErrNoDir indicates a Store built with an empty directory.
	ErrNoDir = errors.New("fixture: directory not set")
)

const (
	opPath = "Store.Path"
	opList = "Store.List"
)

func fixtureErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

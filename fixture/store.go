// SPDX-License-Identifier: MIT

package fixture

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// Ext is the file extension of every fixture.
const Ext = ".txt"

var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Store maps fixture ids to files "<Dir>/<id>.txt".
// A Store holds no state besides the directory and is safe for concurrent use.
type Store struct {
	dir string
}

// NewStore returns a Store rooted at dir.
func NewStore(dir string) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, ErrNoDir
	}

	return &Store{dir: filepath.Clean(dir)}, nil
}

// Dir returns the root directory.
func (s *Store) Dir() string { return s.dir }

// ValidateID reports whether id can name a fixture.
func ValidateID(id string) error {
	if !idPattern.MatchString(id) {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	return nil
}

// Path resolves id to an existing regular file.
//
// Errors:
//   - ErrInvalidID for ids outside [A-Za-z0-9_-]+;
//   - ErrNotFound when the file does not exist or is a directory;
//   - any other Stat error, wrapped.
func (s *Store) Path(id string) (string, error) {
	if err := ValidateID(id); err != nil {
		return "", fixtureErrorf(opPath, err)
	}

	p := filepath.Join(s.dir, id+Ext)
	info, err := os.Stat(p)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", fixtureErrorf(opPath, fmt.Errorf("%w: %s", ErrNotFound, id))
	case err != nil:
		return "", fixtureErrorf(opPath, err)
	case info.IsDir():
		return "", fixtureErrorf(opPath, fmt.Errorf("%w: %s is a directory", ErrNotFound, id))
	}

	return p, nil
}

// List returns the ids of all fixtures in the directory, sorted.
// Files whose stem is not a valid id are skipped.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fixtureErrorf(opList, err)
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || filepath.Ext(name) != Ext {
			continue
		}
		id := strings.TrimSuffix(name, Ext)
		if ValidateID(id) == nil {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	return ids, nil
}

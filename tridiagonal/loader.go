// SPDX-License-Identifier: MIT

package tridiagonal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/tridiag/numeric"
)

// TokensPerLine is the number of numeric tokens read from every fixture line.
// Tokens past the fourth are ignored.
const TokensPerLine = 4

// maxLineBytes bounds a single fixture line; arbitrary-precision literals can be long.
const maxLineBytes = 1 << 20

// Load reads a fixture file and builds an immutable System.
//
// Format:
//
//	kappa1 kappa2 mu1 mu2      <- line 1, boundary
//	a b c d                    <- one line per interior point, in index order
//
// Every token is parsed by f.Parse, so a Decimal or BigFloat field keeps the
// literal's full precision.
//
// Errors (all wrap ErrLoad):
//   - the file cannot be opened (os.ErrNotExist etc. stays matchable);
//   - see Read for content errors.
func Load[T numeric.Number[T]](path string, f numeric.Field[T]) (*System[T], error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, tridiagonalErrorf(opLoad, fmt.Errorf("%w: %w", ErrLoad, err))
	}
	defer file.Close()

	s, err := Read(file, f)
	if err != nil {
		return nil, tridiagonalErrorf(opLoad, fmt.Errorf("%s: %w", path, err))
	}

	return s, nil
}

// Read parses a fixture from r. See Load for the format.
//
// Errors (all wrap ErrLoad):
//   - ErrNilField wrapped when f is nil;
//   - empty input (no boundary line);
//   - a line with fewer than TokensPerLine tokens, blank lines included;
//   - a token rejected by f.Parse (numeric.ErrParse / numeric.ErrNonFinite);
//   - an I/O error from r.
func Read[T numeric.Number[T]](r io.Reader, f numeric.Field[T]) (*System[T], error) {
	if f == nil {
		return nil, tridiagonalErrorf(opRead, fmt.Errorf("%w: %w", ErrLoad, ErrNilField))
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		line  int
		bound Boundary[T]
		right RightBound[T]
		rows  []Row[T]
	)
	for sc.Scan() {
		line++
		vals, err := parseLine(sc.Text(), line, f)
		if err != nil {
			return nil, tridiagonalErrorf(opRead, err)
		}
		if line == 1 {
			bound = Boundary[T]{Kappa1: vals[0], Kappa2: vals[1]}
			right = RightBound[T]{Mu1: vals[2], Mu2: vals[3]}
			continue
		}
		rows = append(rows, Row[T]{A: vals[0], B: vals[1], C: vals[2], D: vals[3]})
	}
	if err := sc.Err(); err != nil {
		return nil, tridiagonalErrorf(opRead, fmt.Errorf("%w: line %d: %w", ErrLoad, line+1, err))
	}
	if line == 0 {
		return nil, tridiagonalErrorf(opRead, fmt.Errorf("%w: missing boundary line", ErrLoad))
	}

	s, err := New(f, bound, right, rows)
	if err != nil {
		return nil, tridiagonalErrorf(opRead, fmt.Errorf("%w: %w", ErrLoad, err))
	}

	return s, nil
}

// parseLine splits text on whitespace and parses the first TokensPerLine tokens.
func parseLine[T numeric.Number[T]](text string, line int, f numeric.Field[T]) ([TokensPerLine]T, error) {
	var vals [TokensPerLine]T

	fields := strings.Fields(text)
	if len(fields) < TokensPerLine {
		return vals, fmt.Errorf("%w: line %d: want %d tokens, got %d", ErrLoad, line, TokensPerLine, len(fields))
	}
	for i := 0; i < TokensPerLine; i++ {
		v, err := f.Parse(fields[i])
		if err != nil {
			return vals, fmt.Errorf("%w: line %d token %d: %w", ErrLoad, line, i+1, err)
		}
		vals[i] = v
	}

	return vals, nil
}

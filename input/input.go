// Package input holds the small parsing helpers every puzzle reader needs:
// line splitting and integer fields.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// ErrSyntax indicates a field that is not a decimal integer.
var ErrSyntax = errors.New("input: invalid integer")

// maxLine caps a single input line; puzzle inputs stay far below it.
const maxLine = 1 << 20

// Lines reads r and returns its lines without line terminators.
// A trailing '\r' is dropped so CRLF files behave like LF files.
func Lines(r io.Reader) ([]string, error) {
	var out []string
	err := ForLines(r, func(_ int, line string) error {
		out = append(out, line)
		return nil
	})
	return out, err
}

// ForLines calls fn with every line of r and its 1-based line number.
// The first error from fn stops the scan and is returned unchanged.
func ForLines(r io.Reader, fn func(n int, line string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	for n := 1; sc.Scan(); n++ {
		if err := fn(n, strings.TrimSuffix(sc.Text(), "\r")); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("input: read: %w", err)
	}
	return nil
}

// Ints parses every whitespace-separated field of s as a decimal int.
func Ints(s string) ([]int, error) {
	return parseFields(strings.Fields(s), strconv.Atoi)
}

// Int64s parses every whitespace-separated field of s as a decimal int64.
func Int64s(s string) ([]int64, error) {
	return parseFields(strings.Fields(s), func(f string) (int64, error) {
		return strconv.ParseInt(f, 10, 64)
	})
}

// SplitInts splits s on sep and parses each trimmed part as a decimal int.
func SplitInts(s, sep string) ([]int, error) {
	parts := strings.Split(s, sep)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parseFields(parts, strconv.Atoi)
}

func parseFields[T any](fields []string, parse func(string) (T, error)) ([]T, error) {
	out := make([]T, 0, len(fields))
	for _, f := range fields {
		v, err := parse(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrSyntax, f)
		}
		out = append(out, v)
	}
	return out, nil
}

// AbsDiff returns |x - y|.
func AbsDiff[T constraints.Signed](x, y T) T {
	if x > y {
		return x - y
	}
	return y - x
}

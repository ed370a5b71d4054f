// SPDX-License-Identifier: MIT
// Package: stepsearch/builder
//
// id_fn.go - node naming for index-based constructors (RandomSparse).
//
// Classroom, Grid and Chain name their nodes themselves; only constructors
// that number nodes 0..n-1 consult the IDFn.

package builder

import "strconv"

// IDFn names the node at a zero-based index. Equal indexes give equal IDs
// and distinct indexes give distinct IDs.
type IDFn func(idx int) string

// DefaultIDFn names nodes "0", "1", "2", ...
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// LetterIDFn names nodes like the classroom graph, "A".."Z", and keeps going
// with "AA", "AB", ... so any n stays unique. Negative indexes map to "".
func LetterIDFn(idx int) string {
	if idx < 0 {
		return ""
	}
	buf := make([]byte, 0, 8)
	for n := idx + 1; n > 0; n = (n - 1) / 26 {
		buf = append(buf, byte('A'+(n-1)%26))
	}
	for l, r := 0, len(buf)-1; l < r; l, r = l+1, r-1 {
		buf[l], buf[r] = buf[r], buf[l]
	}

	return string(buf)
}

// PrefixIDFn names nodes prefix+index, e.g. PrefixIDFn("v") gives "v0", "v1".
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// WithLetterIDs names index-based nodes with LetterIDFn.
func WithLetterIDs() BuilderOption {
	return WithIDScheme(LetterIDFn)
}

// WithPrefixIDs names index-based nodes with PrefixIDFn(prefix).
func WithPrefixIDs(prefix string) BuilderOption {
	return WithIDScheme(PrefixIDFn(prefix))
}

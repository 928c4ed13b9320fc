// File: view/core.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package view

import (
	"slices"

	"github.com/momentics/hioload-slice/api"
)

// IntoSlice returns s[start:start+length].
//
// Operands are widened to uint before the addition. Bounds are checked against
// len(s), not cap(s), and the result capacity ends at its last element.
func IntoSlice[T any, I api.Index](s []T, start, length I) []T {
	lo := uint(start)
	hi := lo + uint(length)
	// A wrapped hi is below lo and fails the native check below.
	return slices.Clip(s)[lo:hi:hi]
}

// IntoSliceFrom returns s[start:].
func IntoSliceFrom[T any, I api.Index](s []T, start I) []T {
	return slices.Clip(s)[uint(start):]
}

// IntoSliceTo returns s[:end].
func IntoSliceTo[T any, I api.Index](s []T, end I) []T {
	hi := uint(end)
	return slices.Clip(s)[:hi:hi]
}

// Truncate shortens *s to length elements, dropping the capacity beyond them.
// Does nothing if length >= len(*s).
func Truncate[T any, I api.Index](s *[]T, length I) {
	n := uint(length)
	if n < uint(len(*s)) {
		*s = (*s)[:n:n]
	}
}

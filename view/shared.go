// File: view/shared.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package view

import (
	"fmt"
	"iter"
	"slices"

	"github.com/momentics/hioload-slice/api"
)

// Shared is a read-only view over elements of T indexed by I.
// Copies are cheap and may be sliced from any goroutine.
type Shared[T any, I api.Index] struct {
	s []T
}

// NewShared wraps s. The caller must not mutate s while views over it are live.
func NewShared[I api.Index, T any](s []T) Shared[T, I] {
	return Shared[T, I]{s: slices.Clip(s)}
}

// Len reports the number of visible elements.
func (v Shared[T, I]) Len() int { return len(v.s) }

// IsEmpty reports whether the view has no elements.
func (v Shared[T, I]) IsEmpty() bool { return len(v.s) == 0 }

// At returns the i-th element.
func (v Shared[T, I]) At(i int) T { return v.s[i] }

// All iterates over index/element pairs.
func (v Shared[T, I]) All() iter.Seq2[int, T] { return slices.All(v.s) }

// CopyTo copies the elements into dst and returns the number copied.
func (v Shared[T, I]) CopyTo(dst []T) int { return copy(dst, v.s) }

// AppendTo appends the elements to dst.
func (v Shared[T, I]) AppendTo(dst []T) []T { return append(dst, v.s...) }

// Clone returns the elements as a new slice.
func (v Shared[T, I]) Clone() []T { return slices.Clone(v.s) }

// Format implements fmt.Formatter, printing the view like a slice.
func (v Shared[T, I]) Format(state fmt.State, verb rune) {
	fmt.Fprintf(state, fmt.FormatString(state, verb), v.s)
}

// IntoSlice returns the elements [start, start+length).
func (v Shared[T, I]) IntoSlice(start, length I) Shared[T, I] {
	return Shared[T, I]{s: IntoSlice(v.s, start, length)}
}

// IntoSliceFrom returns the elements [start, len).
func (v Shared[T, I]) IntoSliceFrom(start I) Shared[T, I] {
	return Shared[T, I]{s: IntoSliceFrom(v.s, start)}
}

// IntoSliceTo returns the elements [0, end).
func (v Shared[T, I]) IntoSliceTo(end I) Shared[T, I] {
	return Shared[T, I]{s: IntoSliceTo(v.s, end)}
}

// Truncate keeps the first length elements.
func (v *Shared[T, I]) Truncate(length I) {
	Truncate(&v.s, length)
}

var (
	_ api.View[byte, uint8, Shared[byte, uint8]] = Shared[byte, uint8]{}
	_ api.Truncater[uint]                         = (*Shared[int, uint])(nil)
)

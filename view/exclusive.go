// File: view/exclusive.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package view

import (
	"iter"
	"slices"
	"sync/atomic"

	"github.com/momentics/hioload-slice/api"
)

// cell is the single owner of an exclusive window.
// All copies of one Exclusive value share it.
type cell[T any] struct {
	s        []T
	consumed atomic.Bool
}

// Exclusive is a mutable view with one live handle at a time.
//
// IntoSlice, IntoSliceFrom, IntoSliceTo and Freeze consume the handle: any
// further use of it, or of copies taken before the call, panics with
// api.ErrConsumed. Truncate narrows the handle in place. An Exclusive is not
// safe for concurrent use, except that at most one of several racing
// consuming calls succeeds. The zero value is an empty view.
type Exclusive[T any, I api.Index] struct {
	c *cell[T]
}

// NewExclusive takes over s. The caller must not use s afterwards.
func NewExclusive[I api.Index, T any](s []T) Exclusive[T, I] {
	return Exclusive[T, I]{c: &cell[T]{s: slices.Clip(s)}}
}

// live returns the window, panicking if the handle was consumed.
func (e Exclusive[T, I]) live() []T {
	if e.c == nil {
		return nil
	}
	if e.c.consumed.Load() {
		panic(api.ErrConsumed)
	}
	return e.c.s
}

// claim marks the handle consumed. Exactly one caller wins.
func (e Exclusive[T, I]) claim() {
	if e.c == nil {
		return
	}
	if !e.c.consumed.CompareAndSwap(false, true) {
		panic(api.ErrConsumed)
	}
}

// Len reports the number of visible elements.
func (e Exclusive[T, I]) Len() int { return len(e.live()) }

// IsEmpty reports whether the view has no elements.
func (e Exclusive[T, I]) IsEmpty() bool { return len(e.live()) == 0 }

// At returns the i-th element.
func (e Exclusive[T, I]) At(i int) T { return e.live()[i] }

// Set stores x at i.
func (e Exclusive[T, I]) Set(i int, x T) { e.live()[i] = x }

// Swap exchanges the elements at i and j.
func (e Exclusive[T, I]) Swap(i, j int) {
	s := e.live()
	s[i], s[j] = s[j], s[i]
}

// Fill stores x in every element.
func (e Exclusive[T, I]) Fill(x T) {
	s := e.live()
	for i := range s {
		s[i] = x
	}
}

// CopyFrom copies src into the view and returns the number copied.
func (e Exclusive[T, I]) CopyFrom(src []T) int { return copy(e.live(), src) }

// CopyTo copies the elements into dst and returns the number copied.
func (e Exclusive[T, I]) CopyTo(dst []T) int { return copy(dst, e.live()) }

// All iterates over index/element pairs.
func (e Exclusive[T, I]) All() iter.Seq2[int, T] { return slices.All(e.live()) }

// Borrow calls fn with the window. The slice has no spare capacity and must
// not be retained after fn returns.
func (e Exclusive[T, I]) Borrow(fn func([]T)) { fn(e.live()) }

// Freeze consumes the handle and returns a shared view of the same window.
func (e Exclusive[T, I]) Freeze() Shared[T, I] {
	s := e.live()
	e.claim()
	return Shared[T, I]{s: s}
}

// IntoSlice consumes the handle and returns the elements [start, start+length).
// On a bounds panic the handle stays live.
func (e Exclusive[T, I]) IntoSlice(start, length I) Exclusive[T, I] {
	s := IntoSlice(e.live(), start, length)
	e.claim()
	return NewExclusive[I](s)
}

// IntoSliceFrom consumes the handle and returns the elements [start, len).
func (e Exclusive[T, I]) IntoSliceFrom(start I) Exclusive[T, I] {
	s := IntoSliceFrom(e.live(), start)
	e.claim()
	return NewExclusive[I](s)
}

// IntoSliceTo consumes the handle and returns the elements [0, end).
func (e Exclusive[T, I]) IntoSliceTo(end I) Exclusive[T, I] {
	s := IntoSliceTo(e.live(), end)
	e.claim()
	return NewExclusive[I](s)
}

// Truncate keeps the first length elements. The dropped elements are no
// longer reachable through this handle.
func (e *Exclusive[T, I]) Truncate(length I) {
	if e.c == nil {
		return
	}
	s := e.live()
	Truncate(&s, length)
	e.c.s = s
}

var (
	_ api.View[int, uint16, Exclusive[int, uint16]] = Exclusive[int, uint16]{}
	_ api.Truncater[uint32]                         = (*Exclusive[byte, uint32])(nil)
)

// File: api/slice.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Capability interfaces for by-value slicing and in-place truncation.
// Results are expressed as type parameters bound to the same capability set,
// so a sliced view can be sliced again without losing anything.

package api

// Contiguous is a run of elements of T addressed by position.
type Contiguous[T any] interface {
	// Len reports the number of visible elements.
	Len() int

	// At returns the element at i. Panics if i is out of range.
	At(i int) T
}

// RangeSlicer is v[start:start+length] by value.
type RangeSlicer[I Index, S any] interface {
	// IntoSlice consumes the view and returns the elements [start, start+length).
	// Panics if start+length exceeds the view length.
	IntoSlice(start, length I) S
}

// FromSlicer is v[start:] by value.
type FromSlicer[I Index, S any] interface {
	// IntoSliceFrom consumes the view and returns the elements [start, len).
	// Panics if start exceeds the view length.
	IntoSliceFrom(start I) S
}

// ToSlicer is v[:end] by value.
type ToSlicer[I Index, S any] interface {
	// IntoSliceTo consumes the view and returns the elements [0, end).
	// Panics if end exceeds the view length.
	IntoSliceTo(end I) S
}

// Truncater shortens a view in place.
type Truncater[I Index] interface {
	// Truncate keeps the first length elements.
	// No-op when length is not less than the current length; never panics.
	Truncate(length I)
}

// View is the capability set every slicing result must satisfy again.
// V is the result type of all three slicers and is itself a View.
type View[T any, I Index, V any] interface {
	Contiguous[T]
	RangeSlicer[I, V]
	FromSlicer[I, V]
	ToSlicer[I, V]
}

// Truncatable binds the pointer type of V, which carries Truncate.
//
// Results of IntoSlice and IntoSliceTo are required to be Truncatable.
// Results of IntoSliceFrom are not: a suffix gains nothing from truncation
// that IntoSliceTo does not already give it.
type Truncatable[I Index, V any] interface {
	*V
	Truncater[I]
}

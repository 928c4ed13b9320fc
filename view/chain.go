// File: view/chain.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Generic helpers written only against the api capability set.

package view

import "github.com/momentics/hioload-slice/api"

// Prefix returns v[:end] truncated to keep elements.
func Prefix[T any, I api.Index, V api.View[T, I, V], PV api.Truncatable[I, V]](v V, end, keep I) V {
	p := v.IntoSliceTo(end)
	PV(&p).Truncate(keep)
	return p
}

// Window returns v[start:start+length] truncated to keep elements.
func Window[T any, I api.Index, V api.View[T, I, V], PV api.Truncatable[I, V]](v V, start, length, keep I) V {
	w := v.IntoSlice(start, length)
	PV(&w).Truncate(keep)
	return w
}

// Suffix returns v[start:][:end]. Only the slicers are required of the suffix.
func Suffix[T any, I api.Index, V api.View[T, I, V]](v V, start, end I) V {
	return v.IntoSliceFrom(start).IntoSliceTo(end)
}

// Equal reports whether a and b hold the same elements in the same order.
func Equal[T comparable, A api.Contiguous[T], B api.Contiguous[T]](a A, b B) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if a.At(i) != b.At(i) {
			return false
		}
	}
	return true
}

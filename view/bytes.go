// File: view/bytes.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Interop between shared byte views, strings and go4.org/mem.

package view

import (
	"unsafe"

	"go4.org/mem"

	"github.com/momentics/hioload-slice/api"
)

// SharedString returns a shared view over the bytes of s without copying.
func SharedString[I api.Index](s string) Shared[byte, I] {
	return Shared[byte, I]{s: unsafe.Slice(unsafe.StringData(s), len(s))}
}

// RO returns v as a mem.RO without copying.
func RO[I api.Index](v Shared[byte, I]) mem.RO {
	return mem.B(v.s)
}

// FromRO copies m into a new shared view.
func FromRO[I api.Index](m mem.RO) Shared[byte, I] {
	return Shared[byte, I]{s: mem.Append(nil, m)}
}

// String returns the bytes of v as a string.
func String[I api.Index](v Shared[byte, I]) string {
	return string(v.s)
}

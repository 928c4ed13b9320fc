// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Index kinds and by-value slicing capabilities shared by all view realizations.

package api

// Index is the closed set of integer types accepted as positions and lengths.
//
// Members convert losslessly into uint on every Go port. The union lists exact
// types, so it can bound a type parameter but cannot be extended from outside
// this package: named types such as `type Off uint16` are rejected too.
type Index interface {
	uint8 | uint16 | uint32 | uint
}

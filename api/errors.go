// Package api
// Author: momentics <momentics@gmail.com>
//
// Error values raised by view realizations.

package api

import "fmt"

// ErrConsumed is the panic value raised when an exclusive view is used after
// a slicing call or Freeze has consumed it.
var ErrConsumed = fmt.Errorf("exclusive view already consumed")

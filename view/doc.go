// Package view
// Author: momentics <momentics@gmail.com>
//
// By-value slicing over contiguous views.
// Shared is a read-only view any number of holders may slice concurrently.
// Exclusive is a single-owner mutable view; slicing consumes the handle and
// returns the only live handle to the narrowed window.
// Neither kind allocates or owns the storage it observes.
// See core.go for the native-slice forms both realizations forward to.
package view

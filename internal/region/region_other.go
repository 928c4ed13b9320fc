// File: internal/region/region_other.go
//go:build !linux

//
// Heap allocation for platforms without the mmap path.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package region

// New allocates a region of size bytes on the Go heap.
func New(size int) *Region {
	if size < 0 {
		size = 0
	}
	return &Region{data: make([]byte, size)}
}

func release([]byte) error { return nil }

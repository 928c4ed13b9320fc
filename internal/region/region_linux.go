// File: internal/region/region_linux.go
//go:build linux

//
// Linux allocation: anonymous mmap, hugepages first.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package region

import "golang.org/x/sys/unix"

const hugeSize = 2 << 20

// New maps a region of exactly size bytes.
func New(size int) *Region {
	if size <= 0 {
		return &Region{data: []byte{}}
	}
	// Round to hugepage (2 MiB) boundary
	length := ((size + hugeSize - 1) / hugeSize) * hugeSize
	data, err := unix.Mmap(-1, 0, length,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANONYMOUS|unix.MAP_PRIVATE|unix.MAP_HUGETLB)
	if err != nil {
		data, err = unix.Mmap(-1, 0, size,
			unix.PROT_READ|unix.PROT_WRITE,
			unix.MAP_ANONYMOUS|unix.MAP_PRIVATE)
	}
	if err != nil {
		return &Region{data: make([]byte, size)}
	}
	return &Region{data: data[:size], mapped: true}
}

// release unmaps the whole mapping behind data.
func release(data []byte) error {
	return unix.Munmap(data[:cap(data)])
}

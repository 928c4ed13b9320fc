// Package region
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Page-backed byte storage for views to be laid over.
// On Linux a region is mmap'ed, preferring 2 MiB hugepages;
// elsewhere, or when mapping fails, it falls back to the Go heap.

package region

// Region is a fixed-size run of bytes allocated outside any view.
type Region struct {
	data   []byte
	mapped bool
}

// Bytes returns the region contents. Nil after Close.
func (r *Region) Bytes() []byte { return r.data }

// Len reports the usable size in bytes.
func (r *Region) Len() int { return len(r.data) }

// Mapped reports whether the region is backed by an OS mapping.
func (r *Region) Mapped() bool { return r.mapped }

// Close releases the region. Views over it must not be used afterwards.
func (r *Region) Close() error {
	if r.data == nil {
		return nil
	}
	var err error
	if r.mapped {
		err = release(r.data)
	}
	r.data = nil
	r.mapped = false
	return err
}

package view_test

import (
	"math"
	"runtime"
	"slices"
	"testing"

	"github.com/momentics/hioload-slice/view"
)

// expectBoundsPanic fails the test unless fn panics with a runtime error.
func expectBoundsPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected out-of-bounds panic")
		}
		if _, ok := r.(runtime.Error); !ok {
			t.Fatalf("panic value %T (%v) is not a runtime.Error", r, r)
		}
	}()
	fn()
}

func TestCoreSlicing(t *testing.T) {
	s := []int{10, 20, 30, 40, 50}
	if got := view.IntoSlice(s, uint8(1), uint8(3)); !slices.Equal(got, []int{20, 30, 40}) {
		t.Errorf("IntoSlice = %v", got)
	}
	if got := view.IntoSliceTo(s, uint16(2)); !slices.Equal(got, []int{10, 20}) {
		t.Errorf("IntoSliceTo = %v", got)
	}
	if got := view.IntoSliceFrom(s, uint32(3)); !slices.Equal(got, []int{40, 50}) {
		t.Errorf("IntoSliceFrom = %v", got)
	}
	if got := view.IntoSliceFrom(s, uint(5)); len(got) != 0 {
		t.Errorf("IntoSliceFrom(len) = %v, want empty", got)
	}
}

func TestCoreResultCapacityEndsAtWindow(t *testing.T) {
	s := []int{1, 2, 3, 4, 5}
	w := view.IntoSlice(s, uint(1), uint(2))
	if cap(w) != 2 {
		t.Fatalf("cap = %d, want 2", cap(w))
	}
	w = append(w, 99)
	if s[3] != 4 {
		t.Error("append through a window overwrote the parent")
	}
	p := view.IntoSliceTo(s, uint(2))
	if cap(p) != 2 {
		t.Errorf("prefix cap = %d, want 2", cap(p))
	}
}

func TestCoreBoundsUseLengthNotCapacity(t *testing.T) {
	s := make([]int, 3, 10)
	expectBoundsPanic(t, func() { view.IntoSliceTo(s, uint(4)) })
	expectBoundsPanic(t, func() { view.IntoSliceFrom(s, uint(4)) })
	expectBoundsPanic(t, func() { view.IntoSlice(s, uint(2), uint(2)) })
}

func TestCoreNarrowIndexDoesNotWrap(t *testing.T) {
	s := make([]byte, 300)
	got := view.IntoSlice(s, uint8(200), uint8(100))
	if len(got) != 100 {
		t.Fatalf("len = %d, want 100", len(got))
	}
	expectBoundsPanic(t, func() { view.IntoSlice(make([]byte, 5), uint8(200), uint8(100)) })
}

func TestCoreRangeOverflowPanics(t *testing.T) {
	s := []int{1, 2, 3}
	expectBoundsPanic(t, func() { view.IntoSlice(s, uint(math.MaxUint), uint(2)) })
	expectBoundsPanic(t, func() { view.IntoSlice(s, uint(1), uint(math.MaxUint)) })
}

func TestCoreTruncate(t *testing.T) {
	s := []int{10, 20, 30, 40, 50}
	view.Truncate(&s, uint8(10))
	if !slices.Equal(s, []int{10, 20, 30, 40, 50}) {
		t.Errorf("over-long truncate changed slice: %v", s)
	}
	view.Truncate(&s, uint8(5))
	if len(s) != 5 {
		t.Errorf("truncate to len changed length: %d", len(s))
	}
	view.Truncate(&s, uint8(2))
	if !slices.Equal(s, []int{10, 20}) || cap(s) != 2 {
		t.Errorf("truncate(2) = %v cap %d", s, cap(s))
	}
	view.Truncate(&s, uint8(0))
	if len(s) != 0 {
		t.Errorf("truncate(0) = %v", s)
	}

	var empty []int
	view.Truncate(&empty, uint(3))
	if empty != nil {
		t.Error("truncate on nil slice allocated")
	}
}

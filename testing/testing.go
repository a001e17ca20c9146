// Package testing provides utilities for testing register level code on a
// development host, where register blocks live in ordinary memory.
package testing

import (
	"fmt"
	"runtime"
	"testing"
	"unsafe"

	"github.com/clktmr/artinchip/hal"
)

// Block allocates a zeroed register block of type B and returns its base
// address, suitable for a peripheral's New function. The memory is kept alive
// until the test finishes.
func Block[B any](tb testing.TB) uintptr {
	b := new(B)
	tb.Cleanup(func() { runtime.KeepAlive(b) })
	return uintptr(unsafe.Pointer(b))
}

// Layout returns the register map of block type B and fails the test if its
// struct tags are invalid or its size differs from size.
func Layout[B any](tb testing.TB, size uintptr) *hal.Layout {
	tb.Helper()
	l, err := hal.LayoutOf[B]()
	if err != nil {
		tb.Fatal(err)
	}
	if l.Size != size {
		tb.Fatalf("register block is %#x bytes, want %#x", l.Size, size)
	}
	return l
}

// Offsets fails the test for every register in want whose offset in l
// differs.
func Offsets(tb testing.TB, l *hal.Layout, want map[string]uintptr) {
	tb.Helper()
	for name, off := range want {
		r, ok := l.Lookup(name)
		if !ok {
			tb.Errorf("register %s missing", name)
			continue
		}
		if r.Offset != off {
			tb.Errorf("register %s at %#x, want %#x", name, r.Offset, off)
		}
	}
}

// ExpectPanic fails the test unless f panics with message msg.
func ExpectPanic(tb testing.TB, msg string, f func()) {
	tb.Helper()
	defer func() {
		r := recover()
		if r == nil {
			tb.Errorf("expected panic %q", msg)
			return
		}
		if got := fmt.Sprint(r); got != msg {
			tb.Errorf("expected panic %q, got %q", msg, got)
		}
	}()
	f()
}

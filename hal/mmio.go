package hal

import (
	"unsafe"

	"github.com/clktmr/artinchip/debug"
)

// RO32 is a read-only 32-bit hardware register. Writes to it are ignored by
// the hardware, so Store is not provided.
type RO32[T ~uint32] struct {
	r R32[T]
}

func (r *RO32[T]) Load() T           { return r.r.Load() }
func (r *RO32[T]) LoadBits(mask T) T { return r.r.LoadBits(mask) }
func (r *RO32[T]) Addr() uintptr     { return r.r.Addr() }

// register is implemented by *R32[T].
type register[T ~uint32] interface {
	Load() T
	Store(T)
}

// Modify loads the value of r, passes it to f and stores the result. It is
// not atomic with respect to other writers of r.
func Modify[T ~uint32, R register[T]](r R, f func(T) T) {
	r.Store(f(r.Load()))
}

// Map returns the register block of type B located at addr.
//
// Only the SoC instantiation layer and tests should call Map. Mapping the same
// address twice yields two views of the same hardware.
func Map[B any](addr uintptr) *B {
	debug.Assert(addr&3 == 0, "hal: unaligned register block")
	return (*B)(unsafe.Pointer(addr))
}

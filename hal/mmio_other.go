//go:build !noos

package hal

import (
	"sync/atomic"
	"unsafe"
)

// R32 is a 32-bit read/write hardware register holding a value of type T.
//
// This is the host variant. The register is plain memory and accesses are
// atomic, so tests can share a register block between goroutines.
type R32[T ~uint32] struct {
	r atomic.Uint32
}

func (r *R32[T]) Load() T                { return T(r.r.Load()) }
func (r *R32[T]) Store(v T)              { r.r.Store(uint32(v)) }
func (r *R32[T]) LoadBits(mask T) T      { return T(r.r.Load()) & mask }
func (r *R32[T]) StoreBits(mask, bits T) { r.r.Store(r.r.Load()&^uint32(mask) | uint32(bits&mask)) }
func (r *R32[T]) SetBits(mask T)         { r.r.Or(uint32(mask)) }
func (r *R32[T]) ClearBits(mask T)       { r.r.And(^uint32(mask)) }
func (r *R32[T]) Addr() uintptr          { return uintptr(unsafe.Pointer(r)) }

// U32 is a 32-bit read/write hardware register without a value type.
type U32 struct {
	r atomic.Uint32
}

func (r *U32) Load() uint32   { return r.r.Load() }
func (r *U32) Store(v uint32) { r.r.Store(v) }
func (r *U32) Addr() uintptr  { return uintptr(unsafe.Pointer(r)) }

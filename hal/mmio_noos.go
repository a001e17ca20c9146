//go:build noos

package hal

import "embedded/mmio"

// R32 is a 32-bit read/write hardware register holding a value of type T.
type R32[T ~uint32] struct {
	r mmio.R32[T]
}

func (r *R32[T]) Load() T                { return r.r.Load() }
func (r *R32[T]) Store(v T)              { r.r.Store(v) }
func (r *R32[T]) LoadBits(mask T) T      { return r.r.LoadBits(mask) }
func (r *R32[T]) StoreBits(mask, bits T) { r.r.StoreBits(mask, bits) }
func (r *R32[T]) SetBits(mask T)         { r.r.SetBits(mask) }
func (r *R32[T]) ClearBits(mask T)       { r.r.ClearBits(mask) }
func (r *R32[T]) Addr() uintptr          { return r.r.Addr() }

// U32 is a 32-bit read/write hardware register without a value type.
type U32 struct {
	r mmio.U32
}

func (r *U32) Load() uint32   { return r.r.Load() }
func (r *U32) Store(v uint32) { r.r.Store(v) }
func (r *U32) Addr() uintptr  { return r.r.Addr() }

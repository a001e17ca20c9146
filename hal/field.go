package hal

import (
	"fmt"
	"math/bits"

	"golang.org/x/exp/constraints"
)

func shift(mask uint32) uint { return uint(bits.TrailingZeros32(mask)) }

// Field returns the bits of r selected by mask, shifted down to bit 0.
func Field[T ~uint32](r, mask T) uint32 {
	return uint32(r&mask) >> shift(uint32(mask))
}

// SetField returns r with the bits selected by mask replaced by v. Bits of v
// that don't fit into mask are discarded, all other bits of r are preserved.
func SetField[T ~uint32](r, mask T, v uint32) T {
	return r&^mask | T(v<<shift(uint32(mask)))&mask
}

// SetFlag returns r with all bits of mask set or cleared.
func SetFlag[T ~uint32](r, mask T, set bool) T {
	if set {
		return r | mask
	}
	return r &^ mask
}

// CheckRange panics with msg unless v < limit. Unlike debug assertions the
// check is part of every build.
func CheckRange[V constraints.Unsigned](v, limit V, msg string) {
	if v >= limit {
		panic(msg)
	}
}

// EnumString returns the name of enum value v, or "typ(v)" if names doesn't
// define one. Reserved encodings of a field end up here instead of panicking.
func EnumString[V constraints.Unsigned](typ string, names []string, v V) string {
	if uint64(v) < uint64(len(names)) && names[v] != "" {
		return names[v]
	}
	return fmt.Sprintf("%s(%d)", typ, uint64(v))
}

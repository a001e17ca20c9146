package regdump

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/marcinbor85/gohex"

	"github.com/clktmr/artinchip/hal"
)

// block is the raw content of a register block, little endian like the
// SoC.
type block []byte

// readDump loads the register block of p at base from the Intel HEX file at
// path. Bytes missing from the dump read as zero.
func readDump(path string, base uintptr, p *peripheral) (block, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	mem := gohex.NewMemory()
	if err := mem.ParseIntelHex(f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	start, end := uint32(base), uint32(base+p.Layout.Size)
	covered := false
	for _, seg := range mem.GetDataSegments() {
		segEnd := seg.Address + uint32(len(seg.Data))
		if seg.Address < end && segEnd > start {
			covered = true
			break
		}
	}
	if !covered {
		return nil, fmt.Errorf("%s: no data for %s at %#x", path, p.Name, base)
	}
	return block(mem.ToBinary(start, uint32(p.Layout.Size), 0)), nil
}

func (b block) word(off uintptr) uint32 {
	if int(off)+4 > len(b) {
		return 0
	}
	return binary.LittleEndian.Uint32(b[off:])
}

// RegisterValue is a decoded register.
type RegisterValue struct {
	Name   string           `json:"name"`
	Offset string           `json:"offset"`
	Value  uint32           `json:"value"`
	Fields []hal.FieldValue `json:"fields,omitempty"`
}

func decode(l *hal.Layout, b block) []RegisterValue {
	regs := make([]RegisterValue, len(l.Registers))
	for i, r := range l.Registers {
		raw := b.word(r.Offset)
		regs[i] = RegisterValue{
			Name:   r.Name,
			Offset: fmt.Sprintf("%#03x", r.Offset),
			Value:  raw,
		}
		if len(r.Fields) > 0 {
			regs[i].Fields = r.Decode(raw)
		}
	}
	return regs
}

package regdump

import (
	"fmt"
	"io"
)

// Change is a register or field that differs between two snapshots.
type Change struct {
	Register string `json:"register"`
	Field    string `json:"field,omitempty"`
	Old      uint32 `json:"old"`
	New      uint32 `json:"new"`
}

func diffBlocks(p *peripheral, a, b block) (changes []Change) {
	for _, r := range p.Layout.Registers {
		ra, rb := a.word(r.Offset), b.word(r.Offset)
		if ra == rb {
			continue
		}
		if len(r.Fields) == 0 {
			changes = append(changes, Change{Register: r.Name, Old: ra, New: rb})
			continue
		}
		for _, f := range r.Fields {
			if fa, fb := f.Value(ra), f.Value(rb); fa != fb {
				changes = append(changes, Change{r.Name, f.Name, fa, fb})
			}
		}
	}
	return
}

func writeDiff(w io.Writer, format string, changes []Change) error {
	if format == "yaml" {
		return writeYAML(w, changes)
	}
	for _, c := range changes {
		name := c.Register
		if c.Field != "" {
			name += "." + c.Field
		}
		fmt.Fprintf(w, "%-40s %#x -> %#x\n", name, c.Old, c.New)
	}
	return nil
}

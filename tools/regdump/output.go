package regdump

import (
	"fmt"
	"io"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/clktmr/artinchip/hal"
)

func writeYAML(w io.Writer, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// RegisterInfo describes a register of a layout.
type RegisterInfo struct {
	Name     string   `json:"name"`
	Offset   string   `json:"offset"`
	ReadOnly bool     `json:"readOnly,omitempty"`
	Fields   []string `json:"fields,omitempty"`
}

func layoutInfo(l *hal.Layout) []RegisterInfo {
	info := make([]RegisterInfo, len(l.Registers))
	for i, r := range l.Registers {
		info[i] = RegisterInfo{Name: r.Name, Offset: fmt.Sprintf("%#03x", r.Offset), ReadOnly: r.ReadOnly}
		for _, f := range r.Fields {
			info[i].Fields = append(info[i].Fields, f.String())
		}
	}
	return info
}

func writeLayout(w io.Writer, format string, p *peripheral) error {
	info := layoutInfo(p.Layout)
	if format == "yaml" {
		return writeYAML(w, info)
	}
	fmt.Fprintf(w, "%s @ %#x, %#x bytes\n", p.Name, p.Base, p.Layout.Size)
	for _, r := range info {
		ro := ""
		if r.ReadOnly {
			ro = " RO"
		}
		fmt.Fprintf(w, "%-6s %-24s%s\n", r.Offset, r.Name, ro)
		if len(r.Fields) > 0 {
			fmt.Fprintf(w, "       %s\n", strings.Join(r.Fields, " "))
		}
	}
	return nil
}

func writeValues(w io.Writer, format string, regs []RegisterValue) error {
	if format == "yaml" {
		return writeYAML(w, regs)
	}
	for _, r := range regs {
		fmt.Fprintf(w, "%-6s %-24s %#010x\n", r.Offset, r.Name, r.Value)
		for _, f := range r.Fields {
			fmt.Fprintf(w, "       %-24s %#x\n", f.Name, f.Value)
		}
	}
	return nil
}

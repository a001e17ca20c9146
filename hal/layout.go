package hal

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// A register block struct documents its hardware layout with struct tags on
// each register field:
//
//	Ctrl R32[Control] `reg:"RTC_CTL" bits:"RTC_IO_IE:6,RTC_IO_SEL:5-4,TCNT_EN:0"`
//
// The reg tag holds the datasheet name. Array fields are expanded to NAME0,
// NAME1, ... The optional bits tag lists the named bit ranges, most
// significant first by convention. Fields named _ are reserved space.

var ErrLayout = errors.New("invalid register layout")

// BitField is a named, inclusive bit range Hi..Lo of a register.
type BitField struct {
	Name   string
	Hi, Lo uint
}

func (f BitField) Mask() uint32 {
	return uint32((uint64(1)<<(f.Hi-f.Lo+1) - 1) << f.Lo)
}

// Value extracts the field from raw register contents.
func (f BitField) Value(raw uint32) uint32 {
	return raw & f.Mask() >> f.Lo
}

func (f BitField) String() string {
	if f.Hi == f.Lo {
		return fmt.Sprintf("%s[%d]", f.Name, f.Lo)
	}
	return fmt.Sprintf("%s[%d:%d]", f.Name, f.Hi, f.Lo)
}

// FieldValue is a decoded bit field.
type FieldValue struct {
	Name  string `json:"name"`
	Value uint32 `json:"value"`
}

// Register describes one register at a fixed offset of its block.
type Register struct {
	Name     string
	Offset   uintptr
	ReadOnly bool
	Fields   []BitField
}

// Decode splits raw into the register's fields. A register without fields
// decodes to a single value named like the register.
func (r Register) Decode(raw uint32) []FieldValue {
	if len(r.Fields) == 0 {
		return []FieldValue{{r.Name, raw}}
	}
	fv := make([]FieldValue, len(r.Fields))
	for i, f := range r.Fields {
		fv[i] = FieldValue{f.Name, f.Value(raw)}
	}
	return fv
}

// Layout is the register map of a register block, ordered by offset.
type Layout struct {
	Size      uintptr
	Registers []Register
}

// Lookup returns the register with the given datasheet name.
func (l *Layout) Lookup(name string) (Register, bool) {
	for _, r := range l.Registers {
		if r.Name == name {
			return r, true
		}
	}
	return Register{}, false
}

// LayoutOf builds the Layout of register block type B from its struct tags.
func LayoutOf[B any]() (*Layout, error) {
	t := reflect.TypeFor[B]()
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %v is not a struct", ErrLayout, t)
	}

	l := &Layout{Size: t.Size()}
	for i := range t.NumField() {
		sf := t.Field(i)
		if sf.Name == "_" {
			continue
		}
		name, ok := sf.Tag.Lookup("reg")
		if !ok {
			return nil, fmt.Errorf("%w: %v.%s has no reg tag", ErrLayout, t, sf.Name)
		}
		fields, err := parseBits(sf.Tag.Get("bits"))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLayout, name, err)
		}

		typ, n := sf.Type, 0
		if typ.Kind() == reflect.Array {
			typ, n = typ.Elem(), typ.Len()
		}
		if typ.Size() != 4 {
			return nil, fmt.Errorf("%w: %s is not a 32-bit register", ErrLayout, name)
		}
		ro := strings.HasPrefix(typ.Name(), "RO32[")

		if n == 0 {
			l.Registers = append(l.Registers, Register{name, sf.Offset, ro, fields})
			continue
		}
		for j := range n {
			l.Registers = append(l.Registers, Register{
				Name:     name + strconv.Itoa(j),
				Offset:   sf.Offset + uintptr(j)*4,
				ReadOnly: ro,
				Fields:   fields,
			})
		}
	}
	return l, nil
}

func parseBits(tag string) (fields []BitField, err error) {
	if tag == "" {
		return nil, nil
	}
	var used uint32
	for _, s := range strings.Split(tag, ",") {
		name, rng, ok := strings.Cut(s, ":")
		if !ok || name == "" {
			return nil, fmt.Errorf("malformed field %q", s)
		}
		f := BitField{Name: name}
		hi, lo, isRange := strings.Cut(rng, "-")
		if f.Hi, err = parseBit(hi); err != nil {
			return nil, err
		}
		f.Lo = f.Hi
		if isRange {
			if f.Lo, err = parseBit(lo); err != nil {
				return nil, err
			}
		}
		if f.Lo > f.Hi {
			return nil, fmt.Errorf("field %s: bit range reversed", name)
		}
		if used&f.Mask() != 0 {
			return nil, fmt.Errorf("field %s overlaps another field", name)
		}
		used |= f.Mask()
		fields = append(fields, f)
	}
	return fields, nil
}

func parseBit(s string) (uint, error) {
	b, err := strconv.ParseUint(s, 10, 8)
	if err != nil || b > 31 {
		return 0, fmt.Errorf("invalid bit %q", s)
	}
	return uint(b), nil
}

package regdump

import (
	"errors"
	"slices"
	"testing"
)

func TestParseScript(t *testing.T) {
	lines, err := parseScript(`
# comment
  layout rtc
regdump decode --base 0x8000 xspi "a b.hex"

snapshot diff xspi 'x y' z
`)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]string{
		{"layout", "rtc"},
		{"decode", "--base", "0x8000", "xspi", "a b.hex"},
		{"snapshot", "diff", "xspi", "x y", "z"},
	}
	if !slices.EqualFunc(lines, want, slices.Equal[[]string]) {
		t.Errorf("got %q, want %q", lines, want)
	}

	if _, err := parseScript("layout rtc\nregdump batch x\n"); !errors.Is(err, errNestedBatch) {
		t.Errorf("got %v, want errNestedBatch", err)
	}
	if _, err := parseScript(`decode "unterminated`); err == nil {
		t.Error("unterminated quote accepted")
	}
}

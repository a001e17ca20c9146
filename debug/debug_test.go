package debug_test

import (
	"errors"
	"testing"

	"github.com/clktmr/artinchip/debug"
	d13xtesting "github.com/clktmr/artinchip/testing"
)

func TestAssert(t *testing.T) {
	debug.Assert(true, "unreachable")
	debug.AssertErrNil(nil)

	if !debug.Enabled {
		debug.Assert(false, "compiled out")
		debug.AssertErrNil(errors.New("compiled out"))
		return
	}
	d13xtesting.ExpectPanic(t, "assertion failed: unaligned", func() { debug.Assert(false, "unaligned") })
	d13xtesting.ExpectPanic(t, "assertion failed: bad config", func() { debug.AssertErrNil(errors.New("bad config")) })
}

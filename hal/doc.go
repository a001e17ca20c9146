// Package hal contains the primitives shared by all D13x peripheral packages:
// typed 32-bit registers, bit-field arithmetic on register values and the
// mapping of register blocks onto their base address.
//
// A register value is a named uint32 type. Its accessors are pure: a setter
// returns a modified copy and never touches hardware. Hardware is only read or
// written through the Load and Store methods of the register that holds the
// value, usually in a read-modify-write sequence:
//
//	hal.Modify(&regs.Ctrl, func(c rtc.Control) rtc.Control {
//		return c.EnableAlarm().EnableTimeCount()
//	})
//
// Built with GOOS=noos the registers are backed by embedded/mmio. On any other
// target they are ordinary memory, which allows register blocks to be
// allocated and inspected on a development host.
package hal

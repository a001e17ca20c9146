package regdump

import (
	"strconv"

	"github.com/spf13/cobra"
)

func newLayoutCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "layout <peripheral>",
		Short: "Print the register map of a peripheral",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := lookup(args[0])
			if err != nil {
				return err
			}
			return writeLayout(cmd.OutOrStdout(), cfg.Output, p)
		},
	}
}

// baseFlag is the --base address of a register block, defaulting to the
// peripheral's address in the SoC memory map.
type baseFlag struct {
	s string
}

func (f *baseFlag) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.s, "base", "", "block address in the dump (default from the memory map)")
}

func (f *baseFlag) get(p *peripheral) (uintptr, error) {
	if f.s == "" {
		return p.Base, nil
	}
	base, err := strconv.ParseUint(f.s, 0, 32)
	if err != nil {
		return 0, err
	}
	return uintptr(base), nil
}

func newDecodeCommand(cfg *Config) *cobra.Command {
	var base baseFlag
	cmd := &cobra.Command{
		Use:   "decode <peripheral> <dump.hex>",
		Short: "Decode the registers of a peripheral in an Intel HEX memory dump",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := lookup(args[0])
			if err != nil {
				return err
			}
			addr, err := base.get(p)
			if err != nil {
				return err
			}
			b, err := readDump(args[1], addr, p)
			if err != nil {
				return err
			}
			return writeValues(cmd.OutOrStdout(), cfg.Output, decode(p.Layout, b))
		},
	}
	base.register(cmd)
	return cmd
}

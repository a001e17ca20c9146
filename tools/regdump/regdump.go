// Package regdump implements the regdump command, which inspects D13x
// register blocks on a development host.
//
// Register values come from Intel HEX memory dumps, as written by a debugger
// or by the boot ROM's upgrade mode. regdump decodes them with the register
// layouts of the d13x packages and keeps named snapshots for later
// comparison.
package regdump

import (
	"errors"
	"fmt"
	"io"
	"log"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clktmr/artinchip/d13x"
	"github.com/clktmr/artinchip/d13x/rtc"
	"github.com/clktmr/artinchip/d13x/sid"
	"github.com/clktmr/artinchip/d13x/spienc"
	"github.com/clktmr/artinchip/d13x/syscfg"
	"github.com/clktmr/artinchip/d13x/xspi"
	"github.com/clktmr/artinchip/hal"
)

var ErrUnknownPeripheral = errors.New("unknown peripheral")

var layouts = map[string]func() (*hal.Layout, error){
	"RTC":     hal.LayoutOf[rtc.Registers],
	"SID":     hal.LayoutOf[sid.Registers],
	"SPI_ENC": hal.LayoutOf[spienc.Registers],
	"SYSCFG":  hal.LayoutOf[syscfg.Registers],
	"XSPI":    hal.LayoutOf[xspi.Registers],
}

// Peripherals returns the names of the peripherals regdump knows the layout
// of.
func Peripherals() []string {
	names := make([]string, 0, len(layouts))
	for name := range layouts {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

type peripheral struct {
	Name   string
	Base   uintptr
	Layout *hal.Layout
}

func lookup(name string) (*peripheral, error) {
	name = strings.ToUpper(name)
	layoutOf, ok := layouts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (known: %s)", ErrUnknownPeripheral, name, strings.Join(Peripherals(), ", "))
	}
	l, err := layoutOf()
	if err != nil {
		return nil, err
	}
	base, _ := d13x.Instance(name)
	return &peripheral{name, base, l}, nil
}

// NewCommand returns the root command of regdump writing its results to out.
func NewCommand(out io.Writer) *cobra.Command {
	var (
		cfgPath string
		verbose bool
		cfg     = DefaultConfig()
	)
	cmd := &cobra.Command{
		Use:           "regdump",
		Short:         "Inspect D13x register blocks in memory dumps",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.SetOutput(io.Discard)
			if verbose {
				log.SetOutput(cmd.ErrOrStderr())
			}
			fileCfg, err := LoadConfig(cfgPath)
			if err != nil {
				return err
			}
			// flags given on the command line win over the file
			flags := cmd.Flags()
			if !flags.Changed("db") {
				cfg.DB = fileCfg.DB
			}
			if !flags.Changed("output") {
				cfg.Output = fileCfg.Output
			}
			log.Printf("config %s, db %s", cfgPath, cfg.DB)
			return cfg.validate()
		},
	}
	cmd.SetOut(out)

	pf := cmd.PersistentFlags()
	pf.StringVar(&cfgPath, "config", DefaultConfigPath(), "configuration file")
	pf.StringVar(&cfg.DB, "db", cfg.DB, "snapshot database")
	pf.StringVarP(&cfg.Output, "output", "o", cfg.Output, "output format: text | yaml")
	pf.BoolVarP(&verbose, "verbose", "v", false, "log to stderr")

	cmd.AddCommand(newLayoutCommand(cfg))
	cmd.AddCommand(newDecodeCommand(cfg))
	cmd.AddCommand(newSnapshotCommand(cfg))
	cmd.AddCommand(newBatchCommand())
	return cmd
}

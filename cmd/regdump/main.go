// Command regdump decodes, stores and compares D13x register blocks from
// Intel HEX memory dumps.
//
// Usage:
//
//	regdump layout <peripheral>
//	regdump decode [--base addr] <peripheral> <dump.hex>
//	regdump snapshot save <peripheral> <dump.hex> <name>
//	regdump snapshot list <peripheral>
//	regdump snapshot diff <peripheral> <a> <b>
//	regdump batch <script>
//
// Settings are read from regdump.yaml in the user's configuration directory.
package main

import (
	"log"
	"os"

	"github.com/clktmr/artinchip/tools/regdump"
)

func main() {
	log.Default().SetFlags(0)
	log.SetPrefix("regdump: ")
	if err := regdump.NewCommand(os.Stdout).Execute(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}

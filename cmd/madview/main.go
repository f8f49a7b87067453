// Madview inspects the configuration of the beam-optics viewer: the bundled
// defaults merged with the per-user override file.
//
// Usage:
//
//	madview show              # print the effective merged document
//	madview validate          # check units against the physical-unit registry
//	madview path              # print the user override location
//	madview units             # list engine vs. display units per quantity
//	madview knobs envx        # list adjustable parameters for a quantity
package main

import (
	"os"

	"github.com/accphys/madview/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}

package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dgrzelec/fulleren/brenner"
	"github.com/dgrzelec/fulleren/cluster"
	"github.com/dgrzelec/fulleren/datafile"
)

// runEnergy loads a stored configuration and reports its energy diagnostics
// without annealing anything.
func runEnergy(cmd *cobra.Command, args []string) error {
	coords, err := datafile.LoadPositions(args[0])
	if err != nil {
		return err
	}
	c, err := cluster.FromCartesian(coords)
	if err != nil {
		return err
	}
	slog.Debug("configuration loaded", "path", args[0], "atoms", c.Len())

	pot := brenner.DefaultParams()
	total := c.RecomputeEnergy(pot)

	var b strings.Builder
	b.WriteString(headerStyle.Render("stored configuration") + "\n")
	row(&b, "atoms", "%d", c.Len())
	row(&b, "total energy", "%.5f", total)
	row(&b, "energy per atom", "%.5f", total/float64(c.Len()))
	row(&b, "mean radius", "%.5f", c.MeanRadius())
	fmt.Fprint(cmd.OutOrStdout(), b.String())

	if perAtom {
		pts := c.Points()
		for i := range pts {
			fmt.Fprintf(cmd.OutOrStdout(), "v[%d] = %.5f\n", i, pot.AtomEnergy(pts, i))
		}
	}
	return nil
}

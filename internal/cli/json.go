package cli

import (
	"io"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"

	"github.com/netarsenal/vlsm/planner"
)

// renderJSON streams the plan to out. Without stats the output is the plain
// allocation array; with stats it is an object that also carries the primary
// network and aggregate figures.
func renderJSON(out io.Writer, plan *planner.AllocationPlan, withStats bool) error {
	writer := jwriter.NewWriter()

	if withStats {
		plan.PrintDetailedPlan(&writer)
	} else {
		plan.PrintAllocations(&writer)
	}

	if err := writer.Error(); err != nil {
		return err
	}

	_, err := out.Write(append(writer.Bytes(), '\n'))
	return err
}

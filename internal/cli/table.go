package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"

	"github.com/netarsenal/vlsm/iputils"
	"github.com/netarsenal/vlsm/planner"
)

func init() {
	// Disable styling if we are not in a standard terminal, as control sequences would not work.
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		pterm.DisableStyling()
	}
}

func allocationTableData(plan *planner.AllocationPlan) pterm.TableData {
	td := pterm.TableData{
		{"Network", "CIDR", "Mask", "Wildcard", "Total", "Usable", "Req", "First", "Last", "Broadcast", "Wasted"},
	}

	for _, alloc := range plan.Allocations() {
		network := alloc.Network()
		td = append(td, []string{
			network.Addr().String(),
			fmt.Sprintf("/%d", network.Bits()),
			network.Netmask().String(),
			network.Wildcard().String(),
			strconv.FormatUint(alloc.TotalAddresses(), 10),
			strconv.FormatUint(alloc.UsableHosts(), 10),
			strconv.Itoa(alloc.RequestedHosts()),
			alloc.FirstUsable().String(),
			alloc.LastUsable().String(),
			alloc.Broadcast().String(),
			strconv.FormatUint(alloc.WastedAddresses(), 10),
		})
	}

	return td
}

func renderTable(out io.Writer, plan *planner.AllocationPlan, withStats bool) error {
	err := pterm.DefaultTable.
		WithHasHeader().
		WithWriter(out).
		WithData(allocationTableData(plan)).
		Render()
	if err != nil {
		return err
	}

	if withStats {
		renderStatsFooter(out, plan)
	}

	return nil
}

func renderStatsFooter(out io.Writer, plan *planner.AllocationPlan) {
	var stats iputils.DetailedStatistics
	stats.Clear()
	plan.AddDetailedStatistics(&stats)

	fmt.Fprintf(out, "\nPrimary %s: %d addresses\n", plan.Primary(), plan.Primary().AddressCount())
	fmt.Fprintf(out, "Subnets: %d, requested hosts: %d, allocated: %d, wasted: %d\n",
		stats.SubnetCount, stats.RequestedHosts, stats.AllocatedAddresses, stats.WastedAddresses)

	if stats.SubnetCount > 0 {
		fmt.Fprintf(out, "Subnet sizes: %d-%d addresses\n", stats.SubnetSizeMin, stats.SubnetSizeMax)
	}
	if stats.UnusedRangeCount > 0 {
		fmt.Fprintf(out, "Unused ranges: %d, sizes: %d-%d addresses\n",
			stats.UnusedRangeCount, stats.UnusedRangeSizeMin, stats.UnusedRangeSizeMax)
	}
}

package planner

import (
	"encoding/json"
	"testing"

	"github.com/dolthub/swiss"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/stretchr/testify/require"

	"github.com/netarsenal/vlsm/iputils"
	"github.com/netarsenal/vlsm/iputils/subnet"
)

func buildPlan(t *testing.T, primary string, allocs ...*SubnetAllocation) *AllocationPlan {
	t.Helper()

	plan := newPlan(subnet.MustParse(primary), len(allocs))
	for _, alloc := range allocs {
		plan.add(alloc)
	}
	return plan
}

func TestValidateDetectsOverlap(t *testing.T) {
	plan := buildPlan(t, "192.168.0.0/24",
		&SubnetAllocation{network: subnet.MustParse("192.168.0.0/26"), requestedHosts: 50, inputIndex: 0},
		&SubnetAllocation{network: subnet.MustParse("192.168.0.32/27"), requestedHosts: 20, inputIndex: 1})

	err := plan.Validate()
	require.Error(t, err)
	require.ErrorIs(t, err, OverlapError)
	require.ErrorContains(t, err, "192.168.0.0/26")
	require.ErrorContains(t, err, "192.168.0.32/27")

	require.ErrorIs(t, plan.checkOverlap(), OverlapError)
}

func TestValidateDetectsOutOfBounds(t *testing.T) {
	plan := buildPlan(t, "192.168.0.0/24",
		&SubnetAllocation{network: subnet.MustParse("192.168.1.0/26"), requestedHosts: 50, inputIndex: 0})

	err := plan.Validate()
	require.Error(t, err)
	require.ErrorIs(t, err, OutOfBoundsError)
}

func TestValidateDetectsLookupMismatch(t *testing.T) {
	alloc := &SubnetAllocation{network: subnet.MustParse("192.168.0.0/26"), requestedHosts: 50, inputIndex: 0}

	plan := &AllocationPlan{
		primary:     subnet.MustParse("192.168.0.0/24"),
		allocations: []*SubnetAllocation{alloc},
		byInput:     swiss.NewMap[int, *SubnetAllocation](1),
	}

	err := plan.Validate()
	require.Error(t, err)
	require.ErrorContains(t, err, "requirement lookup")

	// A lookup pointing at the wrong allocation is also caught.
	other := &SubnetAllocation{network: subnet.MustParse("192.168.0.64/26"), requestedHosts: 50, inputIndex: 0}
	plan.byInput.Put(0, other)
	err = plan.Validate()
	require.Error(t, err)
	require.ErrorContains(t, err, "requirement lookup")
}

func TestValidateAcceptsDisjointPlan(t *testing.T) {
	plan := buildPlan(t, "192.168.0.0/24",
		&SubnetAllocation{network: subnet.MustParse("192.168.0.0/26"), requestedHosts: 50, inputIndex: 0},
		&SubnetAllocation{network: subnet.MustParse("192.168.0.64/27"), requestedHosts: 20, inputIndex: 1})

	require.NoError(t, plan.Validate())
}

func TestDetailedStatisticsCountGaps(t *testing.T) {
	// Hand-placed subnets with a hole between them: the gap and the free
	// tail both register as unused ranges.
	plan := buildPlan(t, "192.168.0.0/24",
		&SubnetAllocation{network: subnet.MustParse("192.168.0.0/26"), requestedHosts: 50, inputIndex: 0},
		&SubnetAllocation{network: subnet.MustParse("192.168.0.128/26"), requestedHosts: 40, inputIndex: 1})

	var stats iputils.DetailedStatistics
	stats.Clear()
	plan.AddDetailedStatistics(&stats)

	require.Equal(t, 2, stats.SubnetCount)
	require.Equal(t, 90, stats.RequestedHosts)
	require.Equal(t, uint64(128), stats.AllocatedAddresses)
	require.Equal(t, uint64(38), stats.WastedAddresses)
	require.Equal(t, 2, stats.UnusedRangeCount)
	require.Equal(t, uint64(64), stats.UnusedRangeSizeMin)
	require.Equal(t, uint64(64), stats.UnusedRangeSizeMax)
}

func TestAddStatisticsFromPlan(t *testing.T) {
	plan := buildPlan(t, "192.168.0.0/24",
		&SubnetAllocation{network: subnet.MustParse("192.168.0.0/26"), requestedHosts: 50, inputIndex: 0},
		&SubnetAllocation{network: subnet.MustParse("192.168.0.64/27"), requestedHosts: 20, inputIndex: 1})

	var stats iputils.Statistics
	plan.AddStatistics(&stats)

	require.Equal(t, iputils.Statistics{
		SubnetCount:        2,
		RequestedHosts:     70,
		AllocatedAddresses: 96,
		WastedAddresses:    26,
	}, stats)
}

func TestPrintAllocationsFieldNames(t *testing.T) {
	plan := buildPlan(t, "192.168.0.0/24",
		&SubnetAllocation{network: subnet.MustParse("192.168.0.0/26"), requestedHosts: 50, inputIndex: 0})

	writer := jwriter.NewWriter()
	plan.PrintAllocations(&writer)
	require.NoError(t, writer.Error())

	var allocs []map[string]any
	require.NoError(t, json.Unmarshal(writer.Bytes(), &allocs))
	require.Len(t, allocs, 1)

	require.Equal(t, map[string]any{
		"network":          "192.168.0.0",
		"prefix":           float64(26),
		"cidr":             "192.168.0.0/26",
		"subnet_mask":      "255.255.255.192",
		"wildcard_mask":    "0.0.0.63",
		"total_addresses":  float64(64),
		"usable_hosts":     float64(62),
		"requested_hosts":  float64(50),
		"first_usable":     "192.168.0.1",
		"last_usable":      "192.168.0.62",
		"broadcast":        "192.168.0.63",
		"wasted_addresses": float64(14),
	}, allocs[0])
}

func TestBuildStatsString(t *testing.T) {
	plan := buildPlan(t, "192.168.0.0/24",
		&SubnetAllocation{network: subnet.MustParse("192.168.0.0/26"), requestedHosts: 50, inputIndex: 0},
		&SubnetAllocation{network: subnet.MustParse("192.168.0.64/27"), requestedHosts: 20, inputIndex: 1})

	var summary map[string]any
	require.NoError(t, json.Unmarshal([]byte(plan.BuildStatsString(false)), &summary))
	require.Equal(t, "192.168.0.0/24", summary["primary"])
	require.Equal(t, float64(256), summary["total_addresses"])
	require.NotContains(t, summary, "allocations")

	stats, ok := summary["statistics"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, float64(2), stats["subnet_count"])
	require.Equal(t, float64(70), stats["requested_hosts"])
	require.Equal(t, float64(96), stats["allocated_addresses"])
	require.Equal(t, float64(26), stats["wasted_addresses"])
	require.Equal(t, float64(1), stats["unused_range_count"])
	require.Equal(t, float64(32), stats["subnet_size_min"])
	require.Equal(t, float64(64), stats["subnet_size_max"])
	require.Equal(t, float64(160), stats["unused_range_size_min"])

	var detailed map[string]any
	require.NoError(t, json.Unmarshal([]byte(plan.BuildStatsString(true)), &detailed))
	require.Len(t, detailed["allocations"], 2)
}

func TestEmptyPlanStatistics(t *testing.T) {
	plan := buildPlan(t, "192.168.0.0/24")

	var summary map[string]any
	require.NoError(t, json.Unmarshal([]byte(plan.BuildStatsString(false)), &summary))

	stats, ok := summary["statistics"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, float64(0), stats["subnet_count"])
	require.NotContains(t, stats, "subnet_size_min")

	// The whole primary is one unused range.
	require.Equal(t, float64(1), stats["unused_range_count"])
	require.Equal(t, float64(256), stats["unused_range_size_min"])
}

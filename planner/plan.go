package planner

import (
	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/netarsenal/vlsm/iputils"
	"github.com/netarsenal/vlsm/iputils/subnet"
)

// AllocationPlan is the complete result of a successful Allocate call: every
// requirement placed, or no plan at all. Allocations are held in placement
// order, which is block size descending; AllocationForRequirement recovers
// the subnet for a position in the original request list.
type AllocationPlan struct {
	primary     subnet.Network
	allocations []*SubnetAllocation
	byInput     *swiss.Map[int, *SubnetAllocation]
}

var _ iputils.Validatable = &AllocationPlan{}

func newPlan(primary subnet.Network, capacity int) *AllocationPlan {
	return &AllocationPlan{
		primary:     primary,
		allocations: make([]*SubnetAllocation, 0, capacity),
		byInput:     swiss.NewMap[int, *SubnetAllocation](uint32(capacity)),
	}
}

func (p *AllocationPlan) add(alloc *SubnetAllocation) {
	p.allocations = append(p.allocations, alloc)
	p.byInput.Put(alloc.inputIndex, alloc)
}

// Primary returns the network the plan partitions.
func (p *AllocationPlan) Primary() subnet.Network { return p.primary }

// Allocations returns the plan's subnets in placement order.
func (p *AllocationPlan) Allocations() []*SubnetAllocation { return p.allocations }

// AllocationCount returns the number of subnets in the plan, which always
// equals the number of requirements Allocate was called with.
func (p *AllocationPlan) AllocationCount() int { return len(p.allocations) }

// AllocationForRequirement returns the subnet placed for the requirement at
// the given position in the host count list originally passed to Allocate.
func (p *AllocationPlan) AllocationForRequirement(inputIndex int) (*SubnetAllocation, bool) {
	return p.byInput.Get(inputIndex)
}

// AddStatistics sums the plan's allocation figures into the statistics
// currently present in stats.
func (p *AllocationPlan) AddStatistics(stats *iputils.Statistics) {
	for _, alloc := range p.allocations {
		stats.SubnetCount++
		stats.RequestedHosts += alloc.requestedHosts
		stats.AllocatedAddresses += alloc.TotalAddresses()
		stats.WastedAddresses += alloc.WastedAddresses()
	}
}

// AddDetailedStatistics sums the plan's allocation figures and unused ranges
// into the statistics currently present in stats. Unused ranges are the
// alignment gaps between placed subnets plus the free tail of the primary
// network.
func (p *AllocationPlan) AddDetailedStatistics(stats *iputils.DetailedStatistics) {
	cursor := uint64(p.primary.Addr())

	for _, alloc := range p.allocations {
		base := uint64(alloc.network.Addr())
		if base > cursor {
			stats.AddUnusedRange(base - cursor)
		}
		stats.AddSubnet(alloc.TotalAddresses(), alloc.requestedHosts)
		cursor = base + alloc.TotalAddresses()
	}

	end := uint64(p.primary.Broadcast()) + 1
	if end > cursor {
		stats.AddUnusedRange(end - cursor)
	}
}

// Validate performs consistency checks over the whole plan: every subnet must
// be valid, contained in the primary network, aligned to its own block size,
// and disjoint from every other subnet, and the requirement lookup must agree
// with the allocation list. When the planner is functioning correctly it is
// not possible for this method to return an error.
func (p *AllocationPlan) Validate() error {
	if err := p.primary.Validate(); err != nil {
		return err
	}

	for _, alloc := range p.allocations {
		network := alloc.network
		if err := network.Validate(); err != nil {
			return err
		}
		if !p.primary.Contains(network) {
			return errors.Wrapf(OutOfBoundsError, "%s is not contained in %s", network, p.primary)
		}
		if uint64(network.Addr())%network.AddressCount() != 0 {
			return errors.Newf("%s is not aligned to its block size %d", network, network.AddressCount())
		}
	}

	if err := p.checkOverlap(); err != nil {
		return err
	}

	if p.byInput.Count() != len(p.allocations) {
		return errors.Newf("the plan holds %d allocations but the requirement lookup holds %d", len(p.allocations), p.byInput.Count())
	}
	for _, alloc := range p.allocations {
		found, ok := p.byInput.Get(alloc.inputIndex)
		if !ok || found != alloc {
			return errors.Newf("the requirement lookup does not map input index %d to its allocation %s", alloc.inputIndex, alloc.network)
		}
	}

	return nil
}

func (p *AllocationPlan) checkOverlap() error {
	for i := 0; i < len(p.allocations); i++ {
		for j := i + 1; j < len(p.allocations); j++ {
			first := p.allocations[i].network
			second := p.allocations[j].network
			if first.Overlaps(second) {
				return errors.Wrapf(OverlapError, "%s and %s", first, second)
			}
		}
	}

	return nil
}

// PrintAllocations writes the plan's subnets to the provided writer as a JSON
// array of allocation objects, in placement order.
func (p *AllocationPlan) PrintAllocations(writer *jwriter.Writer) {
	arrayState := writer.Array()
	defer arrayState.End()

	for _, alloc := range p.allocations {
		obj := arrayState.Object()
		alloc.printParameters(&obj)
		obj.End()
	}
}

// PrintDetailedPlan writes the full plan to the provided writer as a JSON
// object holding the primary network, the allocation list, and the aggregate
// statistics.
func (p *AllocationPlan) PrintDetailedPlan(writer *jwriter.Writer) {
	objState := writer.Object()
	defer objState.End()

	objState.Name("primary").String(p.primary.String())
	objState.Name("total_addresses").Int(int(p.primary.AddressCount()))

	arrayState := objState.Name("allocations").Array()
	for _, alloc := range p.allocations {
		obj := arrayState.Object()
		alloc.printParameters(&obj)
		obj.End()
	}
	arrayState.End()

	p.printStatistics(&objState)
}

func (p *AllocationPlan) printStatistics(json *jwriter.ObjectState) {
	var stats iputils.DetailedStatistics
	stats.Clear()
	p.AddDetailedStatistics(&stats)

	obj := json.Name("statistics").Object()
	defer obj.End()

	obj.Name("subnet_count").Int(stats.SubnetCount)
	obj.Name("requested_hosts").Int(stats.RequestedHosts)
	obj.Name("allocated_addresses").Int(int(stats.AllocatedAddresses))
	obj.Name("wasted_addresses").Int(int(stats.WastedAddresses))
	obj.Name("unused_range_count").Int(stats.UnusedRangeCount)

	hasSubnets := stats.SubnetCount > 0
	obj.Maybe("subnet_size_min", hasSubnets).Int(int(stats.SubnetSizeMin))
	obj.Maybe("subnet_size_max", hasSubnets).Int(int(stats.SubnetSizeMax))

	hasGaps := stats.UnusedRangeCount > 0
	obj.Maybe("unused_range_size_min", hasGaps).Int(int(stats.UnusedRangeSizeMin))
	obj.Maybe("unused_range_size_max", hasGaps).Int(int(stats.UnusedRangeSizeMax))
}

// BuildStatsString returns a JSON description of the plan. When detailed is
// true the output includes the full allocation list in addition to the
// aggregate statistics.
func (p *AllocationPlan) BuildStatsString(detailed bool) string {
	writer := jwriter.NewWriter()

	if detailed {
		p.PrintDetailedPlan(&writer)
	} else {
		objState := writer.Object()
		objState.Name("primary").String(p.primary.String())
		objState.Name("total_addresses").Int(int(p.primary.AddressCount()))
		p.printStatistics(&objState)
		objState.End()
	}

	return string(writer.Bytes())
}

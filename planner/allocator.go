package planner

import (
	"log/slog"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/netarsenal/vlsm/iputils"
	"github.com/netarsenal/vlsm/iputils/subnet"
)

// Allocator computes VLSM allocation plans: it partitions a primary IPv4
// network into the smallest aligned subnets that satisfy a list of host
// count requirements, placing larger subnets first. Allocators hold no state
// between calls, so a single Allocator may serve any number of goroutines.
type Allocator struct {
	logger *slog.Logger
}

// New creates a new Allocator that traces its work to the provided logger at
// debug level. A nil logger disables tracing.
func New(logger *slog.Logger) *Allocator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Allocator{logger: logger}
}

// Allocate computes a plan with a default Allocator. See Allocator.Allocate.
func Allocate(primary subnet.Network, hosts []int) (*AllocationPlan, error) {
	return New(nil).Allocate(primary, hosts)
}

type sizedRequirement struct {
	requestedHosts int
	bits           int
	blockSize      uint64
	inputIndex     int
}

// Allocate places one subnet inside primary for each entry of hosts and
// returns them as an AllocationPlan. Requirements are sized to the smallest
// prefix that can serve them and placed in block size order, largest first;
// requirements with equal block sizes keep their input order. Every subnet
// base address is aligned to the subnet's own size.
//
// Allocation is all or nothing: when any requirement cannot be sized or
// placed, no plan is returned. A requirement list that does not fit returns
// an error wrapping CapacityError. An empty requirement list yields an empty
// plan.
func (a *Allocator) Allocate(primary subnet.Network, hosts []int) (*AllocationPlan, error) {
	a.logger.Debug("Allocator::Allocate",
		slog.String("primary", primary.String()),
		slog.Int("requirementCount", len(hosts)))

	sized, err := a.sizeRequirements(hosts)
	if err != nil {
		return nil, err
	}

	// Largest first; stability keeps equal block sizes in input order
	sort.SliceStable(sized, func(i, j int) bool {
		return sized[i].blockSize > sized[j].blockSize
	})

	var needed uint64
	for _, requirement := range sized {
		needed += requirement.blockSize
	}
	if needed > primary.AddressCount() {
		return nil, errors.Wrapf(CapacityError,
			"need %d addresses but %s has %d", needed, primary, primary.AddressCount())
	}

	plan := newPlan(primary, len(sized))
	cursor := uint64(primary.Addr())
	end := uint64(primary.Broadcast())

	for _, requirement := range sized {
		iputils.DebugCheckPow2(requirement.blockSize, "block size")

		alignedStart := iputils.AlignUp(cursor, requirement.blockSize)
		if alignedStart+requirement.blockSize-1 > end {
			return nil, errors.Wrapf(CapacityError,
				"cannot allocate a subnet for %d hosts (/%d, %d addresses): not enough space in %s after alignment",
				requirement.requestedHosts, requirement.bits, requirement.blockSize, primary)
		}

		network, err := subnet.New(iputils.Address(alignedStart), requirement.bits)
		if err != nil {
			return nil, errors.Wrapf(err, "could not carve a /%d at %s", requirement.bits, iputils.Address(alignedStart))
		}
		if !primary.Contains(network) {
			return nil, errors.Wrapf(OutOfBoundsError, "%s escapes %s", network, primary)
		}

		plan.add(&SubnetAllocation{
			network:        network,
			requestedHosts: requirement.requestedHosts,
			inputIndex:     requirement.inputIndex,
		})

		a.logger.Debug("Allocator::Allocate placed a subnet",
			slog.String("network", network.String()),
			slog.Int("requestedHosts", requirement.requestedHosts),
			slog.Int("inputIndex", requirement.inputIndex))

		cursor = alignedStart + requirement.blockSize
	}

	if err := plan.checkOverlap(); err != nil {
		return nil, err
	}
	iputils.DebugValidate(plan)

	return plan, nil
}

func (a *Allocator) sizeRequirements(hosts []int) ([]sizedRequirement, error) {
	sized := make([]sizedRequirement, len(hosts))

	for i, requestedHosts := range hosts {
		bits, err := subnet.MinimalPrefix(requestedHosts)
		if err != nil {
			return nil, errors.Wrapf(err, "requirement at index %d", i)
		}

		sized[i] = sizedRequirement{
			requestedHosts: requestedHosts,
			bits:           bits,
			blockSize:      uint64(1) << uint(32-bits),
			inputIndex:     i,
		}
	}

	return sized, nil
}

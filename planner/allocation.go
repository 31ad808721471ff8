package planner

import (
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/netarsenal/vlsm/iputils"
	"github.com/netarsenal/vlsm/iputils/subnet"
)

// SubnetAllocation is a single placed subnet within an AllocationPlan. It
// pairs the network that was carved out with the requirement it satisfies;
// every other value is derived from those two.
type SubnetAllocation struct {
	network        subnet.Network
	requestedHosts int
	inputIndex     int
}

// Network returns the subnet placed for this requirement.
func (a *SubnetAllocation) Network() subnet.Network { return a.network }

// RequestedHosts returns the host count this subnet was allocated for.
func (a *SubnetAllocation) RequestedHosts() int { return a.requestedHosts }

// InputIndex returns the position of this requirement in the host count list
// originally passed to Allocate. Allocations are stored in placement order,
// which is largest-first rather than input order.
func (a *SubnetAllocation) InputIndex() int { return a.inputIndex }

// TotalAddresses returns the subnet's full address count, including its base
// and broadcast addresses.
func (a *SubnetAllocation) TotalAddresses() uint64 { return a.network.AddressCount() }

// UsableHosts returns the number of host addresses the subnet serves. This is
// always at least RequestedHosts.
func (a *SubnetAllocation) UsableHosts() uint64 { return a.network.UsableHosts() }

// FirstUsable returns the subnet's first usable host address.
func (a *SubnetAllocation) FirstUsable() iputils.Address { return a.network.FirstHost() }

// LastUsable returns the subnet's last usable host address.
func (a *SubnetAllocation) LastUsable() iputils.Address { return a.network.LastHost() }

// Broadcast returns the subnet's broadcast address.
func (a *SubnetAllocation) Broadcast() iputils.Address { return a.network.Broadcast() }

// WastedAddresses returns the number of addresses in the subnet beyond the
// requested host count.
func (a *SubnetAllocation) WastedAddresses() uint64 {
	return a.network.AddressCount() - uint64(a.requestedHosts)
}

func (a *SubnetAllocation) printParameters(json *jwriter.ObjectState) {
	json.Name("network").String(a.network.Addr().String())
	json.Name("prefix").Int(a.network.Bits())
	json.Name("cidr").String(a.network.String())
	json.Name("subnet_mask").String(a.network.Netmask().String())
	json.Name("wildcard_mask").String(a.network.Wildcard().String())
	json.Name("total_addresses").Int(int(a.TotalAddresses()))
	json.Name("usable_hosts").Int(int(a.UsableHosts()))
	json.Name("requested_hosts").Int(a.requestedHosts)
	json.Name("first_usable").String(a.FirstUsable().String())
	json.Name("last_usable").String(a.LastUsable().String())
	json.Name("broadcast").String(a.Broadcast().String())
	json.Name("wasted_addresses").Int(int(a.WastedAddresses()))
}

package subnet

import (
	"fmt"
	"net/netip"

	"github.com/netarsenal/vlsm/iputils"
	"github.com/pkg/errors"
)

// Network is an immutable IPv4 network: a base address plus a prefix length.
// Values built through New, Parse, or MustParse always have their host bits
// zeroed, so two Network values describe the same network exactly when they
// compare equal with ==. The zero value is 0.0.0.0/0.
type Network struct {
	addr iputils.Address
	bits int
}

var _ iputils.Validatable = Network{}

func mask(bits int) uint32 {
	return uint32(0xFFFFFFFF) << uint(32-bits)
}

// New builds a Network from a base address and prefix length. It returns an
// error when bits lies outside [0, 32] or when addr has bits set below the
// prefix boundary.
func New(addr iputils.Address, bits int) (Network, error) {
	if bits < 0 || bits > 32 {
		return Network{}, errors.Errorf("prefix length /%d is outside [0, 32]", bits)
	}
	if uint32(addr)&^mask(bits) != 0 {
		base := iputils.Address(uint32(addr) & mask(bits))
		return Network{}, errors.Errorf("%s/%d has host bits set: the base address is %s", addr, bits, base)
	}
	return Network{addr: addr, bits: bits}, nil
}

// Parse builds a Network from CIDR notation, for example "192.168.0.0/24".
// The address must be IPv4 and must be the network's base address: a literal
// with host bits set, such as "192.168.0.1/24", is rejected rather than
// silently masked.
func Parse(cidr string) (Network, error) {
	prefix, err := netip.ParsePrefix(cidr)
	if err != nil {
		return Network{}, errors.Wrapf(err, "invalid network %q", cidr)
	}
	if !prefix.Addr().Is4() {
		return Network{}, errors.Errorf("network %q is not IPv4", cidr)
	}
	addr, _ := iputils.AddressFromNetip(prefix.Addr())
	return New(addr, prefix.Bits())
}

// MustParse is Parse for tests and fixtures, panicking on error.
func MustParse(cidr string) Network {
	network, err := Parse(cidr)
	if err != nil {
		panic(err)
	}
	return network
}

// Addr returns the network's base address.
func (n Network) Addr() iputils.Address { return n.addr }

// Bits returns the network's prefix length.
func (n Network) Bits() int { return n.bits }

// AddressCount returns the total number of addresses in the network,
// including the base and broadcast addresses. A /0 holds 2^32 addresses,
// which is why the count is 64-bit.
func (n Network) AddressCount() uint64 {
	return uint64(1) << uint(32-n.bits)
}

// Broadcast returns the network's final address. For a /32 this is the base
// address itself.
func (n Network) Broadcast() iputils.Address {
	return n.addr | iputils.Address(^mask(n.bits))
}

// Netmask returns the network's subnet mask, for example 255.255.255.192
// for a /26.
func (n Network) Netmask() iputils.Address {
	return iputils.Address(mask(n.bits))
}

// Wildcard returns the network's wildcard mask, the bitwise complement of
// the netmask, for example 0.0.0.63 for a /26.
func (n Network) Wildcard() iputils.Address {
	return iputils.Address(^mask(n.bits))
}

// UsableHosts returns the number of host addresses the network can serve.
// See the package-level UsableHosts for the /31 and /32 cases.
func (n Network) UsableHosts() uint64 {
	return UsableHosts(n.bits)
}

// FirstHost returns the first usable host address. For a /32 that is the
// base address itself; for a /31 it is the base address, following the
// RFC 3021 point-to-point convention even though UsableHosts reports zero.
func (n Network) FirstHost() iputils.Address {
	if n.bits >= 31 {
		return n.addr
	}
	return n.addr + 1
}

// LastHost returns the last usable host address. For a /32 that is the base
// address; for a /31 it is the broadcast address, following RFC 3021.
func (n Network) LastHost() iputils.Address {
	switch {
	case n.bits == 32:
		return n.addr
	case n.bits == 31:
		return n.Broadcast()
	default:
		return n.Broadcast() - 1
	}
}

// Contains reports whether other lies entirely within this network.
// A network contains itself.
func (n Network) Contains(other Network) bool {
	return other.bits >= n.bits && n.ContainsAddr(other.addr)
}

// ContainsAddr reports whether addr lies within this network.
func (n Network) ContainsAddr(addr iputils.Address) bool {
	return uint32(addr)&mask(n.bits) == uint32(n.addr)
}

// Overlaps reports whether this network and other share any address. For two
// aligned networks this is exactly the case where one contains the other's
// base address.
func (n Network) Overlaps(other Network) bool {
	return n.ContainsAddr(other.addr) || other.ContainsAddr(n.addr)
}

func (n Network) String() string {
	return fmt.Sprintf("%s/%d", n.addr, n.bits)
}

// Validate performs the same consistency checks as New on an
// already-constructed value.
func (n Network) Validate() error {
	_, err := New(n.addr, n.bits)
	return err
}

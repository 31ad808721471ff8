package iputils

import (
	"encoding/binary"
	"net/netip"
)

// Address is an IPv4 address held as its 32-bit big-endian integer value so
// that alignment and offset math can be carried out directly on it.
type Address uint32

// AddressFromNetip converts an IPv4 netip.Addr into an Address. ok is false
// when addr is not an IPv4 address. IPv4-mapped IPv6 addresses are unmapped
// before conversion.
func AddressFromNetip(addr netip.Addr) (a Address, ok bool) {
	addr = addr.Unmap()
	if !addr.Is4() {
		return 0, false
	}
	raw := addr.As4()
	return Address(binary.BigEndian.Uint32(raw[:])), true
}

// Netip converts the Address back into a netip.Addr.
func (a Address) Netip() netip.Addr {
	var raw [4]byte
	binary.BigEndian.PutUint32(raw[:], uint32(a))
	return netip.AddrFrom4(raw)
}

func (a Address) String() string {
	return a.Netip().String()
}

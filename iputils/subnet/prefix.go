package subnet

import "github.com/pkg/errors"

// UsableHosts returns the number of host addresses a network with the given
// prefix length can serve. A /32 serves exactly one address. A /31 serves
// zero: RFC 3021 assigns both of its addresses to point-to-point endpoints,
// so it never satisfies a host requirement. Every other prefix serves its
// address count minus the base and broadcast addresses.
//
// bits must lie in [0, 32].
func UsableHosts(bits int) uint64 {
	total := uint64(1) << uint(32-bits)
	switch bits {
	case 32:
		return 1
	case 31:
		return 0
	default:
		return total - 2
	}
}

// MinimalPrefix returns the largest prefix length, which is to say the
// smallest network, whose usable host capacity is at least hosts. A host
// count of zero maps to /32, and because a /31 serves zero usable hosts it
// is never selected for any positive count: one host selects /32, two
// hosts select /30.
//
// A negative count returns InvalidRequirementError. A count beyond the
// capacity of a /0 returns NoFeasiblePrefixError.
func MinimalPrefix(hosts int) (int, error) {
	if hosts < 0 {
		return 0, errors.Wrapf(InvalidRequirementError, "host count is %d", hosts)
	}
	if hosts == 0 {
		return 32, nil
	}

	for bits := 32; bits >= 0; bits-- {
		if UsableHosts(bits) >= uint64(hosts) {
			return bits, nil
		}
	}

	return 0, errors.Wrapf(NoFeasiblePrefixError, "host count is %d", hosts)
}

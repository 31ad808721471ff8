package planner

import "github.com/cockroachdb/errors"

// CapacityError is the error returned from Allocate when the host requirements
// cannot all be placed inside the primary network, either because their combined
// block sizes exceed it or because alignment pushes a block past its end
var CapacityError error = errors.New("requirements do not fit in the primary network")

// OutOfBoundsError is the error returned when a placed subnet escapes the
// primary network. Correct operation never produces it: the capacity checks
// reject such placements first
var OutOfBoundsError error = errors.New("allocated subnet falls outside the primary network")

// OverlapError is the error returned when two placed subnets share addresses.
// Correct operation never produces it: the cursor only moves forward
var OverlapError error = errors.New("allocated subnets overlap")

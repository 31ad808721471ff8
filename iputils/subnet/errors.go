package subnet

import "github.com/pkg/errors"

// InvalidRequirementError is the error returned from MinimalPrefix when the
// requested host count is negative
var InvalidRequirementError error = errors.New("host count must be non-negative")

// NoFeasiblePrefixError is the error returned from MinimalPrefix when no IPv4
// prefix length can serve the requested host count
var NoFeasiblePrefixError error = errors.New("no prefix can hold the requested host count")

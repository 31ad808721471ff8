package cli

import (
	"github.com/cockroachdb/errors"
	"github.com/netarsenal/vlsm/iputils/subnet"
	"github.com/netarsenal/vlsm/planner"
)

// InvalidInputError marks errors caused by malformed command input: a bad
// CIDR literal, a non-integer or non-positive host count, or an unreadable
// requirements file. Errors carrying this mark exit with ExitInvalidInput
var InvalidInputError error = errors.New("invalid input")

// Process exit statuses for the vlsm command.
const (
	ExitSuccess          = 0
	ExitGeneralError     = 1
	ExitInvalidInput     = 2
	ExitAllocationFailed = 3
)

// GetExitCode maps an error returned from the root command to the process
// exit status: input problems the user can fix exit with ExitInvalidInput,
// allocation failures with ExitAllocationFailed, anything else with
// ExitGeneralError.
func GetExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, InvalidInputError):
		return ExitInvalidInput
	case errors.IsAny(err,
		planner.CapacityError,
		planner.OutOfBoundsError,
		planner.OverlapError,
		subnet.InvalidRequirementError,
		subnet.NoFeasiblePrefixError):
		return ExitAllocationFailed
	default:
		return ExitGeneralError
	}
}

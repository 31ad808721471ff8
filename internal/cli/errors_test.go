package cli

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/netarsenal/vlsm/iputils/subnet"
	"github.com/netarsenal/vlsm/planner"
)

func TestGetExitCode(t *testing.T) {
	require.Equal(t, ExitSuccess, GetExitCode(nil))

	require.Equal(t, ExitInvalidInput, GetExitCode(InvalidInputError))
	require.Equal(t, ExitInvalidInput,
		GetExitCode(errors.Mark(errors.New("bad network"), InvalidInputError)))

	require.Equal(t, ExitAllocationFailed, GetExitCode(planner.CapacityError))
	require.Equal(t, ExitAllocationFailed,
		GetExitCode(errors.Wrap(planner.CapacityError, "while placing")))
	require.Equal(t, ExitAllocationFailed, GetExitCode(planner.OutOfBoundsError))
	require.Equal(t, ExitAllocationFailed, GetExitCode(planner.OverlapError))
	require.Equal(t, ExitAllocationFailed, GetExitCode(subnet.InvalidRequirementError))
	require.Equal(t, ExitAllocationFailed, GetExitCode(subnet.NoFeasiblePrefixError))

	require.Equal(t, ExitGeneralError, GetExitCode(errors.New("something else")))
}

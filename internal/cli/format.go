package cli

import "github.com/cockroachdb/errors"

// OutputFormat selects how an allocation plan is rendered.
type OutputFormat string

const (
	// FormatTable renders the plan as an aligned table, one row per subnet.
	FormatTable OutputFormat = "table"
	// FormatJSON renders the plan as a JSON array of allocation objects.
	FormatJSON OutputFormat = "json"
)

func (f *OutputFormat) String() string {
	return string(*f)
}

// Set implements pflag.Value, rejecting anything but the two known formats.
func (f *OutputFormat) Set(value string) error {
	switch OutputFormat(value) {
	case FormatTable, FormatJSON:
		*f = OutputFormat(value)
		return nil
	default:
		return errors.Mark(
			errors.Newf("unknown format %q: must be %q or %q", value, FormatTable, FormatJSON),
			InvalidInputError)
	}
}

func (f *OutputFormat) Type() string {
	return "table|json"
}

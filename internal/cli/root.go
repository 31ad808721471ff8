// Package cli wires the VLSM planner to the command line: argument and flag
// parsing, table and JSON rendering, and the mapping from error kinds to
// process exit statuses.
package cli

import (
	"io"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/netarsenal/vlsm/internal/logging"
	"github.com/netarsenal/vlsm/iputils/subnet"
	"github.com/netarsenal/vlsm/planner"
)

type options struct {
	format  OutputFormat
	file    string
	verbose bool
	logJSON bool
	stats   bool

	out io.Writer
}

// NewRootCommand builds the vlsm command.
func NewRootCommand() *cobra.Command {
	opts := &options{format: FormatTable}

	cmd := &cobra.Command{
		Use:   "vlsm [primary-cidr] [hosts...]",
		Short: "VLSM IPv4 subnet calculator",
		Long: `vlsm partitions a primary IPv4 network into the smallest set of aligned,
non-overlapping subnets that satisfy a list of host count requirements,
placing larger subnets first to minimize wasted address space.

The primary network must be given as its base address: a literal with host
bits set, such as 192.168.0.1/24, is rejected.`,
		Example: `  vlsm 192.168.0.0/24 50 20 10
  vlsm 10.0.0.0/16 1000 2000 50 --format json
  vlsm --file plan.toml --stats`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logging.Setup(opts.verbose, opts.logJSON, cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.out = cmd.OutOrStdout()
			return opts.run(args)
		},
	}

	addPlanFlags(cmd.Flags(), opts)
	cmd.CompletionOptions.DisableDefaultCmd = true

	// pflag reformats flag errors with %v, losing the chain, so mark them
	// here to keep them in the invalid-input exit class.
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Mark(err, InvalidInputError)
	})

	return cmd
}

func addPlanFlags(flags *pflag.FlagSet, opts *options) {
	flags.VarP(&opts.format, "format", "f", "output format")
	flags.StringVarP(&opts.file, "file", "F", "", "read the primary network and host requirements from a TOML file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVar(&opts.logJSON, "log-json", false, "write log records as JSON")
	flags.BoolVar(&opts.stats, "stats", false, "append aggregate plan statistics to the output")
}

func (o *options) run(args []string) error {
	primaryArg, hosts, err := o.gatherInput(args)
	if err != nil {
		return err
	}

	primary, err := subnet.Parse(primaryArg)
	if err != nil {
		return errors.Mark(err, InvalidInputError)
	}

	plan, err := planner.New(logging.Logger).Allocate(primary, hosts)
	if err != nil {
		return err
	}

	if o.format == FormatJSON {
		return renderJSON(o.out, plan, o.stats)
	}
	return renderTable(o.out, plan, o.stats)
}

func (o *options) gatherInput(args []string) (string, []int, error) {
	if o.file != "" {
		if len(args) != 0 {
			return "", nil, errors.Mark(
				errors.New("positional arguments cannot be combined with --file"),
				InvalidInputError)
		}

		primary, hosts, err := loadPlanFile(o.file)
		if err != nil {
			return "", nil, err
		}
		return primary, hosts, checkHostCounts(hosts)
	}

	if len(args) < 2 {
		return "", nil, errors.Mark(
			errors.New("expected a primary network in CIDR notation and at least one host count"),
			InvalidInputError)
	}

	hosts := make([]int, 0, len(args)-1)
	for _, arg := range args[1:] {
		count, err := strconv.Atoi(arg)
		if err != nil {
			return "", nil, errors.Mark(
				errors.Newf("host requirements must be integers, got %q", arg),
				InvalidInputError)
		}
		hosts = append(hosts, count)
	}

	return args[0], hosts, checkHostCounts(hosts)
}

func checkHostCounts(hosts []int) error {
	for _, count := range hosts {
		if count <= 0 {
			return errors.Mark(
				errors.Newf("all requested host counts must be positive integers, got %d", count),
				InvalidInputError)
		}
	}
	return nil
}

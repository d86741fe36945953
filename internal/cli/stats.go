package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/dashview/internal/aggregate"
	"github.com/roach88/dashview/internal/seed"
)

// StatsOptions holds flags for the stats command.
type StatsOptions struct {
	*RootOptions
	Scope string
	Query string
}

// StatsResult is an aggregate snapshot and what it was computed over.
type StatsResult struct {
	Source   string             `json:"source"`
	Scope    aggregate.Scope    `json:"scope"`
	Query    string             `json:"query,omitempty"`
	Owner    *seed.Owner        `json:"owner,omitempty"`
	Initials string             `json:"initials,omitempty"`
	Snapshot aggregate.Snapshot `json:"snapshot"`
}

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &StatsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print dashboard aggregates",
		Long: `Print the account owner, totals, averages, the top seller and per-city counts.

With --scope all (the default) the query is ignored for the numbers. With
--scope filtered only records matching --query are counted.

Examples:
  dashview stats
  dashview stats --scope filtered --query giza
  dashview stats --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Scope, "scope", "all", "aggregate scope (all|filtered)")
	cmd.Flags().StringVarP(&opts.Query, "query", "q", "", "filter by name or city (case-insensitive)")

	return cmd
}

func runStats(opts *StatsOptions, cmd *cobra.Command) error {
	out := opts.formatter(cmd)

	scope, err := aggregate.ParseScope(opts.Scope)
	if err != nil {
		return out.Fail(ExitCommandError, CodeCommand, "invalid scope", err)
	}

	sess, coll, err := opts.newSession(cmd.Context())
	if err != nil {
		return out.Fail(ExitCommandError, CodeCommand, "failed to load collection", err)
	}
	if cmd.Flags().Changed("query") {
		sess.SetQuery(opts.Query)
	}

	result := StatsResult{
		Source:   coll.Source,
		Scope:    scope,
		Query:    sess.Query(),
		Owner:    coll.Owner,
		Snapshot: sess.Aggregates(scope),
	}
	if coll.Owner != nil {
		result.Initials = coll.Owner.Initials()
	}
	if out.IsJSON() {
		return out.Success(result)
	}
	return renderStats(cmd.OutOrStdout(), result)
}

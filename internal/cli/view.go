package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/dashview/internal/model"
	"github.com/roach88/dashview/internal/pipeline"
)

// ViewOptions holds flags for the view command.
type ViewOptions struct {
	*RootOptions
	Query string
	Sorts []string // each entry toggles like a header click
	Page  int
}

// ViewResult is the visible page and the inputs that produced it.
type ViewResult struct {
	Source string             `json:"source"`
	Query  string             `json:"query"`
	Sort   *pipeline.SortSpec `json:"sort,omitempty"`
	Page   pipeline.Page      `json:"page"`
}

// NewViewCommand creates the view command.
func NewViewCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ViewOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Print one page of the pharmacy table",
		Long: `Print one page of the pharmacy table after filtering and sorting.

Each --sort toggles like a click on a column header: the first request for a
column sorts ascending, a second request for the same column sorts descending.

Examples:
  dashview view --query cairo
  dashview view --sort number_sells --sort number_sells --page 2
  dashview view --seed ./pharmacies.yaml --page-size 3 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Query, "query", "q", "", "filter by name or city (case-insensitive, overrides the seed's search_term)")
	cmd.Flags().StringArrayVarP(&opts.Sorts, "sort", "s", nil, "sort column, repeat to toggle direction")
	cmd.Flags().IntVarP(&opts.Page, "page", "p", 1, "page number (1-based)")

	return cmd
}

func runView(opts *ViewOptions, cmd *cobra.Command) error {
	out := opts.formatter(cmd)

	sess, coll, err := opts.newSession(cmd.Context())
	if err != nil {
		return out.Fail(ExitCommandError, CodeCommand, "failed to load collection", err)
	}

	if cmd.Flags().Changed("query") {
		sess.SetQuery(opts.Query)
	}
	for _, key := range opts.Sorts {
		if _, err := sess.RequestSort(model.Field(key)); err != nil {
			return out.Fail(ExitCommandError, CodeCommand, "invalid sort", err)
		}
	}
	if err := sess.GoToPage(opts.Page); err != nil {
		return out.Fail(ExitCommandError, CodeCommand, "invalid page", err)
	}

	view, err := sess.View()
	if err != nil {
		return out.Fail(ExitCommandError, CodeCommand, "failed to derive page", err)
	}

	result := ViewResult{
		Source: coll.Source,
		Query:  view.Query,
		Sort:   view.Sort,
		Page:   view.Page,
	}
	if out.IsJSON() {
		return out.Success(result)
	}
	return renderView(cmd.OutOrStdout(), result)
}

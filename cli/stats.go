package cli

import (
	"github.com/spf13/cobra"

	"github.com/fulldump/studentdb/query"
	"github.com/fulldump/studentdb/render"
)

func newStatsCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show student count and score aggregates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := opts.load()
			if err != nil {
				return err
			}
			return render.RenderSummary(cmd.OutOrStdout(), opts.Output, query.Summarize(records))
		},
	}
}

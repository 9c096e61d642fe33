package cli

import (
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/spf13/cobra"

	"github.com/fulldump/studentdb/query"
	"github.com/fulldump/studentdb/render"
)

func newMatchCommand(opts *Options) *cobra.Command {
	var skip, limit int64

	cmd := &cobra.Command{
		Use:   "match <filter>",
		Short: "Find students with a JSON filter",
		Long: `Find students whose JSON form matches a mongo style filter.

Operators: $eq, $ne, $gt, $ge, $lt, $le, $in, $nin, $contains, $and, $or.`,
		Example: `  stuctl match '{"sex":"F"}'
  stuctl match '{"age":{"$ge":20}}' --limit 10`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := map[string]interface{}{}
			if err := json.Unmarshal([]byte(args[0]), &filter); err != nil {
				return fmt.Errorf("bad filter: %w", err)
			}

			records, err := opts.load()
			if err != nil {
				return err
			}

			found, err := query.Match(records, query.MatchOptions{
				Filter: filter,
				Skip:   skip,
				Limit:  limit,
			})
			if err != nil {
				return err
			}

			if len(found) == 0 && opts.Output != "json" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), noMatches)
				return nil
			}

			return render.Render(cmd.OutOrStdout(), opts.Output, found)
		},
	}

	cmd.Flags().Int64Var(&skip, "skip", 0, "matches to skip")
	cmd.Flags().Int64Var(&limit, "limit", 0, "maximum matches, 0 for all")

	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fulldump/studentdb/query"
	"github.com/fulldump/studentdb/record"
	"github.com/fulldump/studentdb/render"
)

const noMatches = "No students matched the query."

func newFindCommand(opts *Options) *cobra.Command {
	var fieldName string
	var from, to float64

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find students by a score range",
		Long: `Find the students whose field lies between --min and --max, both included.

Fields: id, age, math, chinese, english.`,
		Example: `  stuctl find --min 60 --max 100
  stuctl find --field english --min 90 --max 100 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			field, err := record.ParseField(fieldName)
			if err != nil {
				return err
			}

			records, err := opts.load()
			if err != nil {
				return err
			}

			found := query.FilterByRange(records, field, from, to)
			if len(found) == 0 && opts.Output != "json" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), noMatches)
				return nil
			}

			return render.Render(cmd.OutOrStdout(), opts.Output, found)
		},
	}

	cmd.Flags().StringVar(&fieldName, "field", record.FieldMath.String(), "numeric field to filter")
	cmd.Flags().Float64Var(&from, "min", 0, "lowest value, included")
	cmd.Flags().Float64Var(&to, "max", 0, "highest value, included")
	_ = cmd.MarkFlagRequired("min")
	_ = cmd.MarkFlagRequired("max")
	registerFieldCompletion(cmd, "field")

	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fulldump/studentdb/query"
	"github.com/fulldump/studentdb/record"
	"github.com/fulldump/studentdb/render"
)

const noStudents = "No student information to show."

func newListCommand(opts *Options) *cobra.Command {
	var sortBy string
	var reverse bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show all students",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := opts.load()
			if err != nil {
				return err
			}

			if sortBy != "" {
				field, err := record.ParseField(sortBy)
				if err != nil {
					return err
				}
				records = query.SortBy(records, field, reverse)
			}

			if len(records) == 0 && opts.Output != "json" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), noStudents)
				return nil
			}

			return render.Render(cmd.OutOrStdout(), opts.Output, records)
		},
	}

	cmd.Flags().StringVar(&sortBy, "sort", "", "sort by a numeric field")
	cmd.Flags().BoolVar(&reverse, "reverse", false, "descending order")
	registerFieldCompletion(cmd, "sort")

	return cmd
}

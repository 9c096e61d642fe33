// Package cli provides the stuctl command line: one-shot commands over the
// student data file plus an interactive menu.
package cli

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fulldump/studentdb/record"
	"github.com/fulldump/studentdb/render"
	"github.com/fulldump/studentdb/store"
)

var DefaultFile = filepath.Join("data", "stu.csv")

// Options are the persistent flags shared by every command.
type Options struct {
	File    string
	Policy  string
	Output  string
	Verbose bool

	loader *store.Loader
}

// NewRootCmd creates the stuctl command tree.
func NewRootCmd(version string) *cobra.Command {

	opts := &Options{}

	rootCmd := &cobra.Command{
		Use:     "stuctl",
		Short:   "stuctl - student records manager",
		Long:    `stuctl lists and queries the student records kept in a comma separated file.`,
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			policy, err := store.ParsePolicy(opts.Policy)
			if err != nil {
				return err
			}
			if err := render.Validate(opts.Output); err != nil {
				return err
			}

			level := slog.LevelWarn
			if opts.Verbose {
				level = slog.LevelDebug
			}
			opts.loader = &store.Loader{
				Policy: policy,
				Logger: slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})),
			}
			opts.loader.Logger.Debug("using student data file", "file", opts.File, "policy", policy)

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.File, "file", "f", DefaultFile, "student data file")
	rootCmd.PersistentFlags().StringVar(&opts.Policy, "policy", string(store.PolicyStrict), "non numeric values: strict (abort) | lenient (skip line)")
	rootCmd.PersistentFlags().StringVarP(&opts.Output, "output", "o", render.DefaultFormat, "output format (table|tsv|csv|json|markdown)")
	rootCmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return render.Formats(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("policy", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{string(store.PolicyStrict), string(store.PolicyLenient)}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newVersionCommand(version))
	rootCmd.AddCommand(newInitCommand(opts))
	rootCmd.AddCommand(newListCommand(opts))
	rootCmd.AddCommand(newFindCommand(opts))
	rootCmd.AddCommand(newMatchCommand(opts))
	rootCmd.AddCommand(newStatsCommand(opts))
	rootCmd.AddCommand(newMenuCommand(opts))

	return rootCmd
}

func (o *Options) load() ([]record.Record, error) {
	records, err := o.loader.LoadAll(o.File)
	if err != nil {
		return nil, fmt.Errorf("read student data: %w", err)
	}
	return records, nil
}

func registerFieldCompletion(cmd *cobra.Command, flag string) {
	_ = cmd.RegisterFlagCompletionFunc(flag, func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return record.FieldNames(), cobra.ShellCompDirectiveNoFileComp
	})
}

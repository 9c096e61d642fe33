package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fulldump/studentdb/store"
)

func newInitCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the student data file with its header",
		Long:  `Create the data directory and the student data file. An existing file is left untouched.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return initialize(cmd, opts)
		},
	}
}

func initialize(cmd *cobra.Command, opts *Options) error {
	created, err := store.Initialize(opts.File)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if created {
		_, _ = fmt.Fprintf(out, "Created new student data file: %s\n", opts.File)
	} else {
		_, _ = fmt.Fprintf(out, "Using student data file: %s\n", opts.File)
	}

	info, err := store.Stat(opts.File)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "File size: %d bytes\n", info.Size)

	return nil
}

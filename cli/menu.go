package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/fulldump/studentdb/query"
	"github.com/fulldump/studentdb/record"
	"github.com/fulldump/studentdb/render"
)

const (
	menuPrompt  = "choice> "
	pausePrompt = "Press Enter to continue..."
)

var errQuit = errors.New("quit")

// lineReader is the part of *readline.Instance the menu needs.
type lineReader interface {
	Readline() (string, error)
	SetPrompt(string)
}

func newMenuCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Interactive menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rl, err := readline.NewEx(&readline.Config{
				Prompt:          menuPrompt,
				InterruptPrompt: "^C",
				EOFPrompt:       "0",
				Stdout:          cmd.OutOrStdout(),
				Stderr:          cmd.ErrOrStderr(),
			})
			if err != nil {
				return fmt.Errorf("failed to initialize menu: %w", err)
			}
			defer func() { _ = rl.Close() }()

			return runMenu(cmd, opts, rl)
		},
	}
}

func runMenu(cmd *cobra.Command, opts *Options, rl lineReader) error {

	if err := initialize(cmd, opts); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for {
		printMenu(out)

		rl.SetPrompt(menuPrompt)
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		err = menuAction(cmd, opts, rl, strings.TrimSpace(line))
		if errors.Is(err, errQuit) {
			_, _ = fmt.Fprintln(out, "Bye")
			return nil
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}

		if err := pause(rl); err != nil {
			return nil
		}
	}
}

func printMenu(w io.Writer) {
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Student records")
	_, _ = fmt.Fprintln(w, "  1. Show all students")
	_, _ = fmt.Fprintln(w, "  2. Find students by score range")
	_, _ = fmt.Fprintln(w, "  3. Statistics")
	_, _ = fmt.Fprintln(w, "  0. Quit")
}

func menuAction(cmd *cobra.Command, opts *Options, rl lineReader, choice string) error {

	out := cmd.OutOrStdout()

	switch choice {
	case "0", "q", "quit", "exit":
		return errQuit

	case "1":
		records, err := opts.load()
		if err != nil {
			return err
		}
		if len(records) == 0 {
			_, _ = fmt.Fprintln(out, noStudents)
			return nil
		}
		return render.Render(out, opts.Output, records)

	case "2":
		return menuFind(cmd, opts, rl)

	case "3":
		records, err := opts.load()
		if err != nil {
			return err
		}
		return render.RenderSummary(out, opts.Output, query.Summarize(records))
	}

	_, _ = fmt.Fprintf(out, "Unknown option '%s'\n", choice)
	return nil
}

func menuFind(cmd *cobra.Command, opts *Options, rl lineReader) error {

	out := cmd.OutOrStdout()

	answer, err := ask(rl, fmt.Sprintf("field [%s] (default math): ", strings.Join(record.FieldNames(), "|")))
	if err != nil {
		return err
	}
	field := record.FieldMath
	if answer != "" {
		field, err = record.ParseField(answer)
		if err != nil {
			return err
		}
	}

	from, err := askNumber(rl, "min: ")
	if err != nil {
		return err
	}
	to, err := askNumber(rl, "max: ")
	if err != nil {
		return err
	}

	records, err := opts.load()
	if err != nil {
		return err
	}

	found := query.FilterByRange(records, field, from, to)
	if len(found) == 0 {
		_, _ = fmt.Fprintln(out, noMatches)
		return nil
	}
	return render.Render(out, opts.Output, found)
}

func ask(rl lineReader, prompt string) (string, error) {
	rl.SetPrompt(prompt)
	line, err := rl.Readline()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func askNumber(rl lineReader, prompt string) (float64, error) {
	answer, err := ask(rl, prompt)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(answer, 64)
	if err != nil {
		return 0, fmt.Errorf("'%s' is not a number", answer)
	}
	return v, nil
}

func pause(rl lineReader) error {
	rl.SetPrompt(pausePrompt)
	_, err := rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return nil
	}
	return err
}

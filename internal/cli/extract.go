// Package cli implements the extract command: it resolves task due dates
// from pt-BR text given as arguments or, with --bulk, read line by line
// from stdin.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"task-nlp/internal/task"
	"task-nlp/internal/task/usecase"
	"task-nlp/pkg/log"
)

const outputLayout = "2006-01-02 15:04 (Mon)"

var (
	labelColor = color.New(color.FgCyan, color.Bold).SprintFunc()
	dueColor   = color.New(color.FgGreen, color.Bold).SprintFunc()
	ruleColor  = color.New(color.FgYellow).SprintFunc()
)

// Options are the flag values of the extract command.
type Options struct {
	Now      string
	Timezone string
	Explain  bool
	Bulk     bool
}

// NewRootCmd builds the extract command. Output goes to out; --bulk reads in.
func NewRootCmd(out io.Writer, in io.Reader) *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:   "extract [text...]",
		Short: "Resolve the due date of a pt-BR task description",
		Long: `Resolves expressions like "amanhã às 15h", "próxima sexta" or "15/03 10:30"
to an absolute date and time. Without a time the task is due at 09:00.`,
		Example: `  extract amanhã às 15h
  extract --now 2024-06-10T10:00:00-03:00 --explain "segunda-feira"
  printf "hoje 18h\nem 3 dias\n" | extract --bulk`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), out, in, opts, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Now, "now", "", "Reference instant (RFC3339); defaults to the current time")
	flags.StringVar(&opts.Timezone, "tz", "", "IANA timezone for the current time when --now is not set (default: local)")
	flags.BoolVarP(&opts.Explain, "explain", "e", false, "Show which expressions were recognized")
	flags.BoolVar(&opts.Bulk, "bulk", false, "Read one task per line from stdin")

	return cmd
}

func run(ctx context.Context, out io.Writer, in io.Reader, opts *Options, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	loc, err := resolveLocation(opts.Timezone)
	if err != nil {
		return err
	}

	now, err := parseNow(opts.Now)
	if err != nil {
		return err
	}

	uc := usecase.New(log.NewNop(), loc)

	if opts.Bulk {
		raw, err := io.ReadAll(in)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		output, err := uc.ExtractBulk(ctx, task.ExtractBulkInput{RawText: string(raw), Now: now})
		if err != nil {
			return err
		}
		for i, t := range output.Tasks {
			if i > 0 {
				fmt.Fprintln(out)
			}
			printTask(out, t, opts.Explain)
		}
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("no text given; pass it as arguments or use --bulk")
	}

	output, err := uc.Extract(ctx, task.ExtractInput{Text: strings.Join(args, " "), Now: now})
	if err != nil {
		return err
	}
	printTask(out, output.Task, opts.Explain)
	return nil
}

func printTask(out io.Writer, t task.ExtractedTask, explain bool) {
	fmt.Fprintf(out, "%s %s\n", labelColor("Title:"), t.Title)
	fmt.Fprintf(out, "%s   %s\n", labelColor("Due:"), dueColor(t.DueDate.Format(outputLayout)))

	if !explain {
		return
	}

	res := t.Resolution
	fmt.Fprintf(out, "%s  %s", labelColor("Rule:"), ruleColor(res.Kind))
	if res.DateClause != "" {
		fmt.Fprintf(out, " (%q)", res.DateClause)
	}
	fmt.Fprintln(out)

	if res.DefaultTime {
		fmt.Fprintf(out, "%s  default 09:00\n", labelColor("Time:"))
	} else {
		fmt.Fprintf(out, "%s  %q\n", labelColor("Time:"), res.TimeClause)
	}
}

func resolveLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", name, err)
	}
	return loc, nil
}

// parseNow returns the zero time for an empty value, which makes the use
// case fall back to its own clock.
func parseNow(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	now, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --now %q: %w", value, task.ErrInvalidNow)
	}
	return now, nil
}

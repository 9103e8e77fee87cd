package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/twiced-technology-gmbh/ttd/internal/clierr"
	"github.com/twiced-technology-gmbh/ttd/internal/output"
	"github.com/twiced-technology-gmbh/ttd/internal/task"
)

// selectorFlags are the variant selectors shared by add and its per-line
// parser in multiple mode.
type selectorFlags struct {
	weekday  string
	day      int
	date     string
	progress string
}

func (s *selectorFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&s.weekday, "weekday", "w", "", "repeat weekly on this weekday (Mon or Monday)")
	fs.IntVarP(&s.day, "day", "d", 0, "repeat monthly on this day of month (1-31)")
	fs.StringVar(&s.date, "date", "", "happen once on this date (YYYYMMDD)")
	fs.StringVarP(&s.progress, "progress", "p", "", "bookmark progress (e.g. p.50)")
	fs.SetNormalizeFunc(normalizeSelectorFlag)
}

// spec builds a task.Spec from the flags that were set on fs.
func (s *selectorFlags) spec(fs *pflag.FlagSet, text string) task.Spec {
	sp := task.Spec{Text: text, Weekday: s.weekday, Date: s.date, Progress: s.progress}
	if fs.Changed("day") {
		day := s.day
		sp.Day = &day
	}
	return sp
}

func normalizeSelectorFlag(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	switch name {
	case "wd", "every":
		name = "weekday"
	case "monthday", "month-day":
		name = "day"
	case "on":
		name = "date"
	case "at", "bookmark":
		name = "progress"
	case "repeat":
		name = "multiple"
	}
	return pflag.NormalizedName(name)
}

type addResult struct {
	Task    task.Record `json:"task"`
	Warning string      `json:"warning,omitempty"`
}

func newAddCmd(a *app) *cobra.Command {
	var (
		sel      selectorFlags
		text     string
		multiple bool
	)

	cmd := &cobra.Command{
		Use:   "add [TEXT...]",
		Short: "Add a task",
		Long: `Adds a task. Pick at most one of --weekday, --day, --date and --progress.

With --multiple, tasks are read one per line from standard input until an
empty line or end of input. Each line is TEXT followed by optional selector
flags; the flags given on the command line apply to lines that set none, and
lines without any selector become progress bookmarks.`,
		Example: `  ttd add gym --weekday mon
  ttd add pay rent --day 3
  ttd add dentist --date 20261104
  ttd add reading Dune --progress p.50
  printf 'gym -w sat\nrent -d 1\n' | ttd add --multiple`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if multiple {
				if len(args) > 0 {
					return clierr.New(clierr.InvalidInput, "--multiple reads tasks from standard input; drop the TEXT arguments")
				}
				return a.runAddMultiple(cmd, &sel)
			}
			if cmd.Flags().Changed("text") && len(args) > 0 {
				return clierr.New(clierr.InvalidInput, "give the task text either with --text or as arguments, not both")
			}
			if text == "" {
				text = strings.Join(args, " ")
			}
			return a.runAdd(cmd, sel.spec(cmd.Flags(), text))
		},
	}

	sel.register(cmd.Flags())
	cmd.Flags().StringVar(&text, "text", "", "task text (alternative to positional arguments)")
	cmd.Flags().BoolVarP(&multiple, "multiple", "m", false, "read several tasks from standard input")
	cmd.MarkFlagsMutuallyExclusive("weekday", "day", "date", "progress")
	cmd.MarkFlagsMutuallyExclusive("text", "multiple")
	return cmd
}

func (a *app) runAdd(cmd *cobra.Command, spec task.Spec) error {
	v, err := task.Build(spec, a.calendar())
	if err != nil {
		return err
	}

	var added *task.Task
	err = a.locked(func() error {
		added, err = a.store().Append(v)
		return err
	})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	warning := task.ExpiryWarning(v)
	if a.outputFormat() == output.FormatJSON {
		return output.JSON(w, addResult{Task: task.Describe(added), Warning: warning})
	}
	if warning != "" {
		output.Warning(w, warning)
	}
	output.Added(w, task.Describe(added))
	return nil
}

// runAddMultiple reads one task per line. Malformed lines are reported and
// skipped; they do not stop the loop.
func (a *app) runAddMultiple(cmd *cobra.Command, defaults *selectorFlags) error {
	in := cmd.InOrStdin()
	w := cmd.OutOrStdout()
	jsonOut := a.outputFormat() == output.FormatJSON
	interactive := isTerminal(in)
	if interactive {
		fmt.Fprintln(cmd.ErrOrStderr(), "Enter one task per line, an empty line to finish:")
	}

	defaultSpec := defaults.spec(cmd.Flags(), "")
	var results []output.LineResult

	scanner := bufio.NewScanner(in)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}

		added, warning, err := a.addLine(line, defaultSpec)
		if err != nil {
			results = append(results, lineFailure(n, err))
			if !jsonOut {
				fmt.Fprintf(w, "Error: line %d: %s\n", n, err.Error())
			}
			continue
		}

		results = append(results, output.LineResult{Line: n, OK: true, ID: added.ID})
		if !jsonOut {
			if warning != "" {
				output.Warning(w, warning)
			}
			output.Added(w, task.Describe(added))
		}
	}
	if err := scanner.Err(); err != nil {
		return clierr.Wrap(clierr.IOError, err, "reading input")
	}

	if jsonOut {
		if results == nil {
			results = []output.LineResult{}
		}
		return output.JSON(w, results)
	}
	if len(results) == 0 {
		output.Messagef(w, "No tasks added.")
	}
	return nil
}

// addLine parses "TEXT [selector flags]" and appends the task.
func (a *app) addLine(line string, defaults task.Spec) (*task.Task, string, error) {
	spec, err := parseLine(line, defaults)
	if err != nil {
		return nil, "", err
	}
	v, err := task.Build(spec, a.calendar())
	if err != nil {
		return nil, "", err
	}

	var added *task.Task
	err = a.locked(func() error {
		added, err = a.store().Append(v)
		return err
	})
	if err != nil {
		return nil, "", err
	}
	return added, task.ExpiryWarning(v), nil
}

// parseLine splits one input line into text and selectors. Selectors from
// defaults apply when the line sets none.
func parseLine(line string, defaults task.Spec) (task.Spec, error) {
	var sel selectorFlags
	fs := pflag.NewFlagSet("line", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	sel.register(fs)

	if err := fs.Parse(strings.Fields(line)); err != nil {
		return task.Spec{}, clierr.Wrap(clierr.InvalidInput, err, "invalid line")
	}

	spec := sel.spec(fs, strings.Join(fs.Args(), " "))
	spec.Multiple = true
	if !spec.HasSelector() {
		text := spec.Text
		spec = defaults
		spec.Text = text
		spec.Multiple = true
	}
	return spec, nil
}

func lineFailure(n int, err error) output.LineResult {
	return output.LineResult{Line: n, Error: err.Error(), Code: clierr.CodeOf(err)}
}

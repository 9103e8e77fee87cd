package cmd

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/ttd/internal/filter"
	"github.com/twiced-technology-gmbh/ttd/internal/output"
	"github.com/twiced-technology-gmbh/ttd/internal/task"
)

func newListCmd(a *app) *cobra.Command {
	var (
		filterName string
		summary    bool
		watch      bool
		selectors  map[filter.Selector]*bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Long: `Lists tasks, optionally narrowed by one selector. Statuses are recomputed
from today's date every time the list is read. An unknown --filter name lists
every task.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sel := a.resolveSelector(selectors, filterName, cmd.Flags().Changed("filter"))
			render := func(w io.Writer) error {
				return a.renderList(w, sel, summary)
			}
			if watch {
				return a.watch(cmd, render)
			}
			return render(cmd.OutOrStdout())
		},
	}

	selectors = registerSelectors(cmd, "show only")
	names := make([]string, 0, len(filter.Selectors()))
	for _, s := range filter.Selectors() {
		names = append(names, string(s))
	}
	cmd.Flags().StringVarP(&filterName, "filter", "f", "", "selector by name ("+strings.Join(names, ", ")+")")
	cmd.Flags().BoolVar(&summary, "summary", false, "show counts per kind and status instead of tasks")
	cmd.Flags().BoolVar(&watch, "watch", false, "re-render whenever the task file changes")
	cmd.MarkFlagsMutuallyExclusive("expired", "once", "month", "week", "progress", "filter")
	return cmd
}

// resolveSelector picks the selector from flags, then --filter, then the
// configured default.
func (a *app) resolveSelector(flags map[filter.Selector]*bool, name string, named bool) filter.Selector {
	if sel, ok := chosenSelector(flags); ok {
		return sel
	}
	if !named {
		name = a.cfg.DefaultFilter
	}
	sel, ok := filter.LookupSelector(name)
	if !ok {
		a.log.Debug("unknown filter, listing all tasks", "filter", name)
	}
	return sel
}

func (a *app) renderList(w io.Writer, sel filter.Selector, summary bool) error {
	tasks, err := a.store().Load()
	if err != nil {
		return err
	}
	selected := filter.Select(tasks, sel)

	format := a.outputFormat()
	if summary {
		o := filter.Summarize(selected)
		switch format {
		case output.FormatJSON:
			return output.JSON(w, o)
		case output.FormatCompact:
			output.OverviewCompact(w, o)
		default:
			output.OverviewTable(w, o)
		}
		return nil
	}

	empty := output.NoMatches
	if sel == filter.All {
		empty = output.EmptyList
	}
	return a.renderRecords(w, task.DescribeAll(selected), empty)
}

func (a *app) renderRecords(w io.Writer, records []task.Record, empty string) error {
	switch a.outputFormat() {
	case output.FormatJSON:
		return output.JSON(w, records)
	case output.FormatCompact:
		output.TaskCompact(w, records, empty)
	default:
		output.TaskTable(w, records, empty)
	}
	return nil
}

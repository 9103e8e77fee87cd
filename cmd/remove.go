package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/ttd/internal/clierr"
	"github.com/twiced-technology-gmbh/ttd/internal/filter"
	"github.com/twiced-technology-gmbh/ttd/internal/output"
	"github.com/twiced-technology-gmbh/ttd/internal/task"
)

// bulkSelectors are the selector flags accepted by remove and list, in
// display order.
var bulkSelectors = []filter.Selector{filter.Expired, filter.Once, filter.Month, filter.Week, filter.Progress}

func selectorUsage(s filter.Selector) string {
	switch s {
	case filter.Expired:
		return "one-time tasks whose date has passed"
	case filter.Progress:
		return "progress bookmarks"
	default:
		return string(s) + " tasks"
	}
}

// registerSelectors adds one bool flag per bulk selector.
func registerSelectors(cmd *cobra.Command, verb string) map[filter.Selector]*bool {
	flags := make(map[filter.Selector]*bool, len(bulkSelectors))
	for _, s := range bulkSelectors {
		flags[s] = cmd.Flags().Bool(string(s), false, verb+" "+selectorUsage(s))
	}
	return flags
}

// chosenSelector returns the selector flag that is set, if any.
func chosenSelector(flags map[filter.Selector]*bool) (filter.Selector, bool) {
	for _, s := range bulkSelectors {
		if *flags[s] {
			return s, true
		}
	}
	return "", false
}

type removeResult struct {
	Status  string          `json:"status"`
	Removed []task.Record   `json:"removed"`
	Count   int             `json:"count"`
	Filter  filter.Selector `json:"filter,omitempty"`
}

func newRemoveCmd(a *app) *cobra.Command {
	var last, all, yes bool
	var selectors map[filter.Selector]*bool

	cmd := &cobra.Command{
		Use:     "remove [ID]",
		Aliases: []string{"done", "rm"},
		Short:   "Remove tasks",
		Long: `Removes one task by ID, the last task, every task, or every task matching a
selector. Remaining tasks are renumbered from 1.`,
		Example: `  ttd remove 2
  ttd remove --last
  ttd remove --expired
  ttd remove --all --yes`,
		Args: maximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, bySelector := chosenSelector(selectors)
			modes := 0
			for _, set := range []bool{len(args) == 1, last, all, bySelector} {
				if set {
					modes++
				}
			}
			switch {
			case modes == 0:
				return clierr.New(clierr.InvalidInput,
					"specify a task ID, --last, --all or a selector (--expired, --once, --month, --week, --progress)")
			case modes > 1:
				return clierr.New(clierr.InvalidInput, "a task ID cannot be combined with --last, --all or a selector")
			case len(args) == 1:
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				return a.runRemoveOne(cmd, func() (*task.Task, error) { return a.store().RemoveByID(id) })
			case last:
				return a.runRemoveOne(cmd, a.store().RemoveLast)
			case all:
				return a.runClear(cmd, yes)
			default:
				return a.runRemoveFiltered(cmd, sel)
			}
		},
	}

	cmd.Flags().BoolVar(&last, "last", false, "remove the last task")
	cmd.Flags().BoolVar(&all, "all", false, "remove every task")
	selectors = registerSelectors(cmd, "remove")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip confirmation prompt")
	cmd.MarkFlagsMutuallyExclusive("last", "all", "expired", "once", "month", "week", "progress")
	return cmd
}

func (a *app) runRemoveOne(cmd *cobra.Command, remove func() (*task.Task, error)) error {
	var removed *task.Task
	err := a.locked(func() error {
		var err error
		removed, err = remove()
		return err
	})
	if err != nil {
		return err
	}
	return a.reportRemoved(cmd, []*task.Task{removed}, "")
}

func (a *app) runRemoveFiltered(cmd *cobra.Command, sel filter.Selector) error {
	var removed []*task.Task
	err := a.locked(func() error {
		var err error
		_, removed, err = a.store().ReplaceWithFiltered(sel.Predicate())
		return err
	})
	if err != nil {
		return err
	}
	return a.reportRemoved(cmd, removed, sel)
}

func (a *app) runClear(cmd *cobra.Command, yes bool) error {
	var count int
	canceled := false
	// The prompt runs under the lock so the count it shows is the count cleared.
	err := a.locked(func() error {
		if !yes {
			tasks, err := a.store().Load()
			if err != nil {
				return err
			}
			if len(tasks) > 0 {
				ok, err := confirm(cmd, fmt.Sprintf("Remove all %d tasks? [y/N] ", len(tasks)))
				if err != nil {
					return err
				}
				if !ok {
					canceled = true
					return nil
				}
			}
		}
		var err error
		count, err = a.store().Clear()
		return err
	})
	if err != nil {
		return err
	}
	if canceled {
		output.Messagef(cmd.OutOrStdout(), "Canceled.")
		return nil
	}

	w := cmd.OutOrStdout()
	if a.outputFormat() == output.FormatJSON {
		return output.JSON(w, removeResult{Status: "cleared", Removed: []task.Record{}, Count: count, Filter: filter.All})
	}
	output.Messagef(w, "Removed %d tasks.", count)
	return nil
}

func (a *app) reportRemoved(cmd *cobra.Command, removed []*task.Task, sel filter.Selector) error {
	w := cmd.OutOrStdout()
	if a.outputFormat() == output.FormatJSON {
		return output.JSON(w, removeResult{
			Status:  "removed",
			Removed: task.DescribeAll(removed),
			Count:   len(removed),
			Filter:  sel,
		})
	}
	if len(removed) == 0 {
		fmt.Fprintln(w, output.NoMatches)
		return nil
	}
	output.Removed(w, task.DescribeAll(removed))
	return nil
}

// confirm asks a yes/no question on an interactive terminal. Without a
// terminal it fails, since the answer cannot be read reliably.
func confirm(cmd *cobra.Command, question string) (bool, error) {
	in := cmd.InOrStdin()
	if !isTerminal(in) {
		return false, clierr.New(clierr.ConfirmationReq,
			"cannot prompt for confirmation (not a terminal); use --yes")
	}
	fmt.Fprint(cmd.ErrOrStderr(), question)
	answer, _ := bufio.NewReader(in).ReadString('\n')
	answer = strings.TrimSpace(strings.ToLower(answer))
	return answer == "y" || answer == "yes", nil
}

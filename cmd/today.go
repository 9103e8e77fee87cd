package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/ttd/internal/calendar"
	"github.com/twiced-technology-gmbh/ttd/internal/filter"
	"github.com/twiced-technology-gmbh/ttd/internal/output"
	"github.com/twiced-technology-gmbh/ttd/internal/task"
)

const nothingToday = "Nothing on the list for today."

type todayResult struct {
	Greeting string        `json:"greeting,omitempty"`
	Date     string        `json:"date"`
	Weekday  string        `json:"weekday"`
	Tasks    []task.Record `json:"tasks"`
}

func newTodayCmd(a *app) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show what is due today",
		Long: `Greets you with today's date and weekday and lists the tasks that are
ongoing today: weekly tasks on their weekday, monthly tasks on their day and
one-time tasks on their date.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if watch {
				return a.watch(cmd, a.renderToday)
			}
			return a.renderToday(cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "re-render whenever the task file changes")
	return cmd
}

func (a *app) renderToday(w io.Writer) error {
	tasks, err := a.store().Load()
	if err != nil {
		return err
	}
	ongoing := task.DescribeAll(filter.Select(tasks, filter.Ongoing))

	t := now()
	res := todayResult{
		Date:    calendar.Of(t).String(),
		Weekday: calendar.WeekdayName(t.Weekday()),
		Tasks:   ongoing,
	}
	if a.cfg.ShowGreeting() {
		res.Greeting = calendar.Greeting(t)
	}

	if a.outputFormat() == output.FormatJSON {
		return output.JSON(w, res)
	}
	output.Banner(w, res.Greeting, res.Date, res.Weekday)
	return a.renderRecords(w, ongoing, nothingToday)
}

package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/twiced-technology-gmbh/ttd/internal/filter"
	"github.com/twiced-technology-gmbh/ttd/internal/task"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("244"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	titleStyle   = lipgloss.NewStyle().Bold(true)
	bannerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))

	// Kind colors aligned with TUI column-header palette.
	kindStyles = map[string]lipgloss.Style{
		"week":     lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		"month":    lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
		"once":     lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		"progress": lipgloss.NewStyle().Foreground(lipgloss.Color("110")),
	}

	stateStyles = map[string]lipgloss.Style{
		task.StateOngoing:  lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
		task.StateUpcoming: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		task.StateExpired:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
)

// DisableColor strips all styling from output.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
	headerStyle = lipgloss.NewStyle()
	dimStyle = lipgloss.NewStyle()
	titleStyle = lipgloss.NewStyle()
	bannerStyle = lipgloss.NewStyle()
	successStyle = lipgloss.NewStyle()
	removedStyle = lipgloss.NewStyle()
	warnStyle = lipgloss.NewStyle()
	kindStyles = map[string]lipgloss.Style{}
	stateStyles = map[string]lipgloss.Style{}
}

// TaskTable renders records as a formatted table. empty is printed when
// there is nothing to show.
func TaskTable(w io.Writer, records []task.Record, empty string) {
	if len(records) == 0 {
		fmt.Fprintln(w, empty)
		return
	}

	// Calculate column widths.
	const pad = 2
	idW, kindW, textW, schedW := 4, 6, 6, 10
	for _, r := range records {
		idW = max(idW, len(strconv.Itoa(r.ID))+pad)
		kindW = max(kindW, len(r.Kind)+pad)
		textW = max(textW, min(lipgloss.Width(r.Text)+pad, 50)) //nolint:mnd // max text column width
		schedW = max(schedW, lipgloss.Width(r.Schedule)+pad)
	}

	header := fmt.Sprintf("%-*s %-*s %-*s %-*s %s",
		idW, "ID", kindW, "KIND", textW, "TEXT", schedW, "SCHEDULE", "STATE")
	fmt.Fprintln(w, headerStyle.Render(header))

	for _, r := range records {
		text := truncate(r.Text, textW-pad)
		state := r.State
		if state == task.StateIdle {
			state = dimStyle.Render("--")
		} else {
			state = styledValue(state, stateStyles)
		}

		row := fmt.Sprintf("%-*d %s %s %s %s",
			idW, r.ID,
			padRight(styledValue(r.Kind, kindStyles), kindW),
			padRight(text, textW),
			padRight(r.Schedule, schedW),
			state)
		fmt.Fprintln(w, strings.TrimRight(row, " "))
	}
}

// TaskDetail renders a single record with full detail.
func TaskDetail(w io.Writer, r task.Record) {
	titleLine := fmt.Sprintf("Task #%d: %s", r.ID, r.Text)
	fmt.Fprintln(w, titleStyle.Render(titleLine))
	fmt.Fprintln(w, strings.Repeat("─", lipgloss.Width(titleLine)))

	printField(w, "Kind", styledValue(r.Kind, kindStyles))
	printField(w, "Schedule", r.Schedule)
	if r.State != task.StateIdle {
		printField(w, "State", styledValue(r.State, stateStyles))
	} else {
		printField(w, "State", dimStyle.Render("--"))
	}
	printField(w, "Created", r.CreatedAt)
}

// OverviewTable renders a summary as a small dashboard.
func OverviewTable(w io.Writer, o filter.Overview) {
	fmt.Fprintf(w, "Total: %d tasks\n\n", o.Total)

	header := fmt.Sprintf("%-12s %6s %8s", "KIND", "COUNT", "ONGOING")
	fmt.Fprintln(w, headerStyle.Render(header))

	const kindColW = 12
	for _, kc := range o.Kinds {
		fmt.Fprintf(w, "%s %6d %8d\n",
			padRight(styledValue(kc.Kind, kindStyles), kindColW), kc.Count, kc.Ongoing)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %d  %s %d  %s %d\n",
		styledValue(task.StateOngoing, stateStyles), o.Ongoing,
		styledValue(task.StateUpcoming, stateStyles), o.Upcoming,
		styledValue(task.StateExpired, stateStyles), o.Expired)
}

// Banner prints the daily greeting header.
func Banner(w io.Writer, greeting, date, weekday string) {
	line := fmt.Sprintf("Today is %s %s.", date, weekday)
	if greeting != "" {
		line = greeting + " " + line
	}
	fmt.Fprintln(w, bannerStyle.Render(line))
	fmt.Fprintln(w, bannerStyle.Render("Here is today's to-do list, have a nice day!"))
}

// Added prints the confirmation for a new task.
func Added(w io.Writer, r task.Record) {
	fmt.Fprintln(w, successStyle.Render("Task added:")+" "+r.Line())
}

// Updated prints the confirmation for a changed task.
func Updated(w io.Writer, r task.Record) {
	fmt.Fprintln(w, successStyle.Render("Task updated:")+" "+r.Line())
}

// Removed prints the confirmation for removed tasks.
func Removed(w io.Writer, records []task.Record) {
	for _, r := range records {
		fmt.Fprintln(w, removedStyle.Render("Task removed:")+" "+r.Line())
	}
}

// Warning prints a highlighted warning line.
func Warning(w io.Writer, msg string) {
	fmt.Fprintln(w, warnStyle.Render("Warning: "+msg))
}

// Path prints the resolved task file location.
func Path(w io.Writer, path string) {
	fmt.Fprintln(w, successStyle.Render("The path of the task file is:")+" "+path)
}

// Messagef prints a simple formatted message line.
func Messagef(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format+"\n", args...)
}

func printField(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %-12s %s\n", label+":", value)
}

// padRight pads s with spaces to the given visible width, accounting for ANSI
// escape codes that are invisible but consume bytes.
func padRight(s string, width int) string {
	visible := lipgloss.Width(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n || n <= 3 {
		return s
	}
	return string(r[:n-3]) + "..."
}

// styledValue renders s using a matching style from the map, or returns s unchanged.
func styledValue(s string, styles map[string]lipgloss.Style) string {
	if st, ok := styles[s]; ok {
		return st.Render(s)
	}
	return s
}

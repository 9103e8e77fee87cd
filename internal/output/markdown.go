package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/twiced-technology-gmbh/ttd/internal/task"
)

// Markdown builds the markdown document shown by the show command.
func Markdown(r task.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Task %d\n\n", r.ID)
	fmt.Fprintf(&b, "%s\n\n", r.Text)
	fmt.Fprintf(&b, "| Field | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Kind | %s |\n", r.Kind)
	fmt.Fprintf(&b, "| Schedule | %s |\n", r.Schedule)
	state := r.State
	if state == task.StateIdle {
		state = "--"
	}
	fmt.Fprintf(&b, "| State | %s |\n", state)
	fmt.Fprintf(&b, "| Created | %s |\n", r.CreatedAt)
	return b.String()
}

// RenderMarkdown writes md through glamour. With color disabled the
// notty style is used so no escape codes are emitted. If rendering fails
// the raw markdown is written instead.
func RenderMarkdown(w io.Writer, md string, color bool) error {
	style := glamour.WithAutoStyle()
	if !color {
		style = glamour.WithStandardStyle("notty")
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(80)) //nolint:mnd // terminal width
	if err == nil {
		if rendered, rerr := r.Render(md); rerr == nil {
			md = rendered
		}
	}
	if _, err := io.WriteString(w, md); err != nil {
		return fmt.Errorf("writing detail: %w", err)
	}
	return nil
}

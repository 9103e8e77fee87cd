package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/twiced-technology-gmbh/ttd/internal/filter"
	"github.com/twiced-technology-gmbh/ttd/internal/task"
)

// TaskCompact renders records in one-line-per-record compact format.
func TaskCompact(w io.Writer, records []task.Record, empty string) {
	if len(records) == 0 {
		fmt.Fprintln(w, empty)
		return
	}

	for _, r := range records {
		fmt.Fprintln(w, r.Line())
	}
}

// TaskDetailCompact renders a single record with its creation time.
func TaskDetailCompact(w io.Writer, r task.Record) {
	fmt.Fprintln(w, r.Line())
	fmt.Fprintln(w, "  created:"+r.CreatedAt)
}

// OverviewCompact renders a summary in compact format.
func OverviewCompact(w io.Writer, o filter.Overview) {
	fmt.Fprintf(w, "%d tasks\n", o.Total)

	parts := make([]string, 0, len(o.Kinds))
	for _, kc := range o.Kinds {
		parts = append(parts, kc.Kind+"="+strconv.Itoa(kc.Count))
	}
	fmt.Fprintln(w, "  "+strings.Join(parts, " "))

	var annotations []string
	if o.Ongoing > 0 {
		annotations = append(annotations, strconv.Itoa(o.Ongoing)+" ongoing")
	}
	if o.Upcoming > 0 {
		annotations = append(annotations, strconv.Itoa(o.Upcoming)+" upcoming")
	}
	if o.Expired > 0 {
		annotations = append(annotations, strconv.Itoa(o.Expired)+" expired")
	}
	if len(annotations) > 0 {
		fmt.Fprintln(w, "  "+strings.Join(annotations, ", "))
	}
}

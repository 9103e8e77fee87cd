package output

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twiced-technology-gmbh/ttd/internal/filter"
	"github.com/twiced-technology-gmbh/ttd/internal/task"
)

func TestMain(m *testing.M) {
	DisableColor()
	os.Exit(m.Run())
}

var records = []task.Record{
	{ID: 1, CreatedAt: "2026-10-17 09:00:00", Kind: "week", Text: "gym", Schedule: "every Sat", State: task.StateOngoing},
	{ID: 2, CreatedAt: "2026-10-17 09:01:00", Kind: "progress", Text: "Dune", Schedule: "at p.50"},
}

func TestDetect(t *testing.T) {
	assert.Equal(t, FormatJSON, Detect(true, true, "table"))
	assert.Equal(t, FormatCompact, Detect(false, true, "json"))
	assert.Equal(t, FormatJSON, Detect(false, false, "json"))
	assert.Equal(t, FormatCompact, Detect(false, false, "compact"))
	assert.Equal(t, FormatTable, Detect(false, false, "oneline"))
	assert.Equal(t, FormatTable, Detect(false, false, ""))
}

func TestTaskTable(t *testing.T) {
	var buf bytes.Buffer
	TaskTable(&buf, records, NoMatches)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[1], "gym")
	assert.Contains(t, lines[1], "every Sat")
	assert.True(t, strings.HasSuffix(lines[1], "ongoing"))
	assert.True(t, strings.HasSuffix(lines[2], "--"))
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestEmptyListMessages(t *testing.T) {
	var buf bytes.Buffer
	TaskTable(&buf, nil, NoMatches)
	assert.Equal(t, "no matching tasks\n", buf.String())

	buf.Reset()
	TaskCompact(&buf, []task.Record{}, EmptyList)
	assert.Equal(t, "Task list is empty!\n", buf.String())
}

func TestTaskCompact(t *testing.T) {
	var buf bytes.Buffer
	TaskCompact(&buf, records, NoMatches)
	assert.Equal(t,
		"1: [week] gym (every Sat) ongoing\n2: [progress] Dune (at p.50)\n",
		buf.String())
}

func TestOverviewCompact(t *testing.T) {
	o := filter.Overview{
		Total:   3,
		Kinds:   []filter.KindCount{{Kind: "week", Count: 2, Ongoing: 1}, {Kind: "once", Count: 1}},
		Ongoing: 1,
		Expired: 1,
	}
	var buf bytes.Buffer
	OverviewCompact(&buf, o)
	assert.Equal(t, "3 tasks\n  week=2 once=1\n  1 ongoing, 1 expired\n", buf.String())
}

func TestBanner(t *testing.T) {
	var buf bytes.Buffer
	Banner(&buf, "Good morning!", "20261017", "Sat")
	assert.Contains(t, buf.String(), "Good morning! Today is 20261017 Sat.")

	buf.Reset()
	Banner(&buf, "", "20261017", "Sat")
	assert.True(t, strings.HasPrefix(buf.String(), "Today is 20261017 Sat."))
}

func TestJSONError(t *testing.T) {
	var buf bytes.Buffer
	JSONError(&buf, "EMPTY_LIST", "task list is empty", nil)
	assert.JSONEq(t, `{"error":"task list is empty","code":"EMPTY_LIST"}`, buf.String())
}

func TestMarkdownDetail(t *testing.T) {
	md := Markdown(records[1])
	assert.Contains(t, md, "# Task 2")
	assert.Contains(t, md, "| Schedule | at p.50 |")
	assert.Contains(t, md, "| State | -- |")

	var buf bytes.Buffer
	require.NoError(t, RenderMarkdown(&buf, md, false))
	assert.Contains(t, buf.String(), "Dune")
}

func TestTaskDetail(t *testing.T) {
	var buf bytes.Buffer
	TaskDetail(&buf, records[1])

	out := buf.String()
	assert.Contains(t, out, "Task #2: Dune")
	assert.Contains(t, out, "Schedule:    at p.50")
	assert.Contains(t, out, "State:       --")
}

package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twiced-technology-gmbh/ttd/internal/calendar"
	"github.com/twiced-technology-gmbh/ttd/internal/task"
)

func sample(t *testing.T) []*task.Task {
	t.Helper()
	past, err := calendar.Parse("20260101")
	require.NoError(t, err)
	future, err := calendar.Parse("20270101")
	require.NoError(t, err)
	today, err := calendar.Parse("20261017")
	require.NoError(t, err)

	return []*task.Task{
		{ID: 1, Content: &task.WeekTask{Text: "gym", Weekday: "Sat", Ongoing: true}},
		{ID: 2, Content: &task.OnceTask{Text: "old", Date: past, Status: task.Expired}},
		{ID: 3, Content: &task.MonthTask{Text: "rent", Day: 1}},
		{ID: 4, Content: &task.OnceTask{Text: "trip", Date: future, Status: task.Upcoming}},
		{ID: 5, Content: &task.ProgressTask{Text: "Dune", Progress: "p.50"}},
		{ID: 6, Content: &task.OnceTask{Text: "call", Date: today, Status: task.Ongoing}},
		{ID: 7, Content: &task.WeekTask{Text: "swim", Weekday: "Mon"}},
	}
}

func ids(tasks []*task.Task) []int {
	out := make([]int, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestSelectors(t *testing.T) {
	tasks := sample(t)
	cases := map[Selector][]int{
		All:      {1, 2, 3, 4, 5, 6, 7},
		Expired:  {2},
		Once:     {2, 4, 6},
		Month:    {3},
		Week:     {1, 7},
		Progress: {5},
		Ongoing:  {1, 6},
	}
	for sel, want := range cases {
		assert.Equal(t, want, ids(Select(tasks, sel)), string(sel))
	}
}

func TestPartitionIsCompleteAndDisjoint(t *testing.T) {
	tasks := sample(t)
	for _, sel := range Selectors() {
		selected, other := Partition(tasks, sel.Predicate())

		assert.Len(t, tasks, len(selected)+len(other), string(sel))
		seen := make(map[int]bool, len(tasks))
		for _, tk := range append(append([]*task.Task{}, selected...), other...) {
			assert.False(t, seen[tk.ID], "task %d in both halves for %s", tk.ID, sel)
			seen[tk.ID] = true
		}
		assert.IsIncreasing(t, ids(selected), string(sel))
		assert.IsIncreasing(t, ids(other), string(sel))
	}
}

func TestPartitionEmptyInput(t *testing.T) {
	selected, other := Partition(nil, Month.Predicate())
	assert.Empty(t, selected)
	assert.Empty(t, other)
	assert.NotNil(t, selected)
}

func TestParseSelectorFallsBackToAll(t *testing.T) {
	assert.Equal(t, Month, ParseSelector("month"))
	assert.Equal(t, Expired, ParseSelector(" EXPIRED "))
	assert.Equal(t, All, ParseSelector("yearly"))
	assert.Equal(t, All, ParseSelector(""))
}

func TestLookupSelectorLongNames(t *testing.T) {
	sel, ok := LookupSelector("all-month")
	assert.True(t, ok)
	assert.Equal(t, Month, sel)

	sel, ok = LookupSelector("Expired-Once-Only")
	assert.True(t, ok)
	assert.Equal(t, Expired, sel)

	sel, ok = LookupSelector("no-filter")
	assert.True(t, ok)
	assert.Equal(t, All, sel)

	sel, ok = LookupSelector("weekly")
	assert.False(t, ok)
	assert.Equal(t, All, sel)
	assert.False(t, Selector("yearly").Valid())
}

func TestResequence(t *testing.T) {
	tasks := sample(t)
	_, other := Partition(tasks, Once.Predicate())
	Resequence(other)
	assert.Equal(t, []int{1, 2, 3, 4}, ids(other))
	assert.Equal(t, "rent", task.TextOf(other[1].Content))
}

func TestSummarize(t *testing.T) {
	o := Summarize(sample(t))

	assert.Equal(t, 7, o.Total)
	assert.Equal(t, 2, o.Ongoing)
	assert.Equal(t, 1, o.Expired)
	assert.Equal(t, 1, o.Upcoming)
	assert.Equal(t, []KindCount{
		{Kind: "week", Count: 2, Ongoing: 1},
		{Kind: "month", Count: 1},
		{Kind: "once", Count: 3, Ongoing: 1},
		{Kind: "progress", Count: 1},
	}, o.Kinds)
}

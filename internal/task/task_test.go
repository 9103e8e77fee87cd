package task

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twiced-technology-gmbh/ttd/internal/calendar"
	"github.com/twiced-technology-gmbh/ttd/internal/clierr"
)

// 2026-10-17 is a Saturday.
var saturday = calendar.Fixed(time.Date(2026, time.October, 17, 9, 30, 0, 0, time.UTC))

func intPtr(v int) *int { return &v }

func TestBuildWeekTaskCanonicalizesWeekday(t *testing.T) {
	v, err := Build(Spec{Text: "water plants", Weekday: "saturday"}, saturday)
	require.NoError(t, err)

	w, ok := v.(*WeekTask)
	require.True(t, ok)
	assert.Equal(t, "Sat", w.Weekday)
	assert.True(t, w.Ongoing, "weekday equal to today is ongoing right away")
}

func TestBuildMonthTask(t *testing.T) {
	v, err := Build(Spec{Text: "pay rent", Day: intPtr(17)}, saturday)
	require.NoError(t, err)
	assert.Equal(t, &MonthTask{Text: "pay rent", Day: 17, Ongoing: true}, v)

	v, err = Build(Spec{Text: "pay rent", Day: intPtr(31)}, saturday)
	require.NoError(t, err)
	assert.False(t, v.(*MonthTask).Ongoing)
}

func TestBuildOnceTaskInPastIsExpired(t *testing.T) {
	v, err := Build(Spec{Text: "renew passport", Date: "20260101"}, saturday)
	require.NoError(t, err)

	o := v.(*OnceTask)
	assert.Equal(t, Expired, o.Status)
	assert.Equal(t, "20260101", o.Date.String())
	assert.Contains(t, ExpiryWarning(v), "20260101")
}

func TestBuildProgressTask(t *testing.T) {
	v, err := Build(Spec{Text: "Dune", Progress: "p.50"}, saturday)
	require.NoError(t, err)
	assert.Equal(t, &ProgressTask{Text: "Dune", Progress: "p.50"}, v)
	assert.Empty(t, ExpiryWarning(v))
}

func TestBuildValidation(t *testing.T) {
	cases := []struct {
		name string
		spec Spec
		code string
	}{
		{"day zero", Spec{Text: "x", Day: intPtr(0)}, clierr.InvalidDay},
		{"day too large", Spec{Text: "x", Day: intPtr(32)}, clierr.InvalidDay},
		{"bad weekday", Spec{Text: "x", Weekday: "funday"}, clierr.InvalidWeekday},
		{"bad date", Spec{Text: "x", Date: "2026-10-17"}, clierr.InvalidDate},
		{"no selector", Spec{Text: "x"}, clierr.MissingVariant},
		{"empty text", Spec{Text: "  ", Weekday: "mon"}, clierr.InvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := Build(tc.spec, saturday)
			assert.Nil(t, v)
			assert.True(t, clierr.HasCode(err, tc.code), "got %v", err)
		})
	}
}

func TestBuildMultipleWithoutSelectorIsBookmark(t *testing.T) {
	v, err := Build(Spec{Text: "call mom", Multiple: true}, saturday)
	require.NoError(t, err)
	assert.Equal(t, &ProgressTask{Text: "call mom"}, v)
}

func TestBuildSelectorPrecedence(t *testing.T) {
	all := Spec{Text: "x", Weekday: "mon", Day: intPtr(3), Date: "20261020", Progress: "p.1"}
	v, err := Build(all, saturday)
	require.NoError(t, err)
	assert.Equal(t, KindWeek, v.Kind())

	all.Weekday = ""
	v, err = Build(all, saturday)
	require.NoError(t, err)
	assert.Equal(t, KindMonth, v.Kind())

	all.Day = nil
	v, err = Build(all, saturday)
	require.NoError(t, err)
	assert.Equal(t, KindOnce, v.Kind())

	all.Date = ""
	v, err = Build(all, saturday)
	require.NoError(t, err)
	assert.Equal(t, KindProgress, v.Kind())
}

func TestRefreshOnceTask(t *testing.T) {
	today := calendar.Today(saturday)
	cases := map[string]Status{
		"20261016": Expired,
		"20261017": Ongoing,
		"20261018": Upcoming,
	}
	for date, want := range cases {
		d, err := calendar.Parse(date)
		require.NoError(t, err)
		o := &OnceTask{Text: "x", Date: d, Status: Upcoming}
		o.Refresh(today)
		assert.Equal(t, want, o.Status, date)
	}
}

func TestRefreshIsIdempotentAndOverridesStaleFlags(t *testing.T) {
	tasks := []*Task{
		{ID: 1, Content: &WeekTask{Text: "a", Weekday: "Mon", Ongoing: true}},
		{ID: 2, Content: &MonthTask{Text: "b", Day: 17, Ongoing: false}},
		{ID: 3, Content: &ProgressTask{Text: "c", Progress: "ch. 2"}},
	}

	RefreshAll(tasks, saturday)
	first := DescribeAll(tasks)
	RefreshAll(tasks, saturday)

	assert.Equal(t, first, DescribeAll(tasks))
	assert.False(t, tasks[0].Content.(*WeekTask).Ongoing)
	assert.True(t, tasks[1].Content.(*MonthTask).Ongoing)
	assert.Equal(t, &ProgressTask{Text: "c", Progress: "ch. 2"}, tasks[2].Content)
}

func TestIsOngoingAndExpired(t *testing.T) {
	assert.True(t, IsOngoing(&WeekTask{Ongoing: true}))
	assert.True(t, IsOngoing(&OnceTask{Status: Ongoing}))
	assert.False(t, IsOngoing(&ProgressTask{}))
	assert.True(t, IsExpired(&OnceTask{Status: Expired}))
	assert.False(t, IsExpired(&WeekTask{}))
}

func TestJSONShape(t *testing.T) {
	tk := &Task{ID: 1, CreatedAt: "2026-10-17 09:30:00", Content: &WeekTask{Text: "gym", Weekday: "Mon"}}
	data, err := json.Marshal(tk)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"id":1,"created_at":"2026-10-17 09:30:00","content":{"WeekTask":{"text":"gym","weekday":"Mon","ongoing":false}}}`,
		string(data))
}

func TestJSONRoundTripKeepsContent(t *testing.T) {
	d, err := calendar.Parse("20261101")
	require.NoError(t, err)
	in := []*Task{
		{ID: 1, CreatedAt: "a", Content: &WeekTask{Text: "gym", Weekday: "Tue"}},
		{ID: 2, CreatedAt: "b", Content: &MonthTask{Text: "rent", Day: 1}},
		{ID: 3, CreatedAt: "c", Content: &OnceTask{Text: "dentist", Date: d, Status: Upcoming}},
		{ID: 4, CreatedAt: "d", Content: &ProgressTask{Text: "Dune", Progress: "p.50"}},
	}
	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out []*Task
	require.NoError(t, json.Unmarshal(data, &out))
	require.Len(t, out, len(in))
	for i := range in {
		assert.Equal(t, in[i].ID, out[i].ID)
		assert.Equal(t, in[i].Kind(), out[i].Kind())
		assert.Equal(t, TextOf(in[i].Content), TextOf(out[i].Content))
	}
	assert.Equal(t, d, out[2].Content.(*OnceTask).Date)
	assert.Empty(t, out[2].Content.(*OnceTask).Status, "persisted status is not trusted")
}

func TestUnmarshalRejectsMalformedContent(t *testing.T) {
	bad := []string{
		`{"id":1,"created_at":"x","content":{}}`,
		`{"id":1,"created_at":"x","content":{"DailyTask":{"text":"a"}}}`,
		`{"id":1,"created_at":"x","content":{"WeekTask":{"text":"a","weekday":"Mon"},"MonthTask":{"text":"a","day":1}}}`,
		`{"id":1,"created_at":"x","content":{"WeekTask":{"text":"a","weekday":"Someday"}}}`,
		`{"id":1,"created_at":"x","content":{"MonthTask":{"text":"a","day":40}}}`,
		`{"id":1,"created_at":"x","content":{"OnceTask":{"text":"a","date":"2026-10-17"}}}`,
		`{"id":1,"created_at":"x","content":{"OnceTask":{"text":"a"}}}`,
	}
	for _, in := range bad {
		var tk Task
		assert.Error(t, json.Unmarshal([]byte(in), &tk), in)
	}
}

func TestUnmarshalCanonicalizesWeekday(t *testing.T) {
	var tk Task
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"created_at":"x","content":{"WeekTask":{"text":"a","weekday":"monday"}}}`), &tk))
	assert.Equal(t, "Mon", tk.Content.(*WeekTask).Weekday)
}

func TestDescribe(t *testing.T) {
	d, err := calendar.Parse("20261016")
	require.NoError(t, err)
	tasks := []*Task{
		{ID: 1, Content: &WeekTask{Text: "gym", Weekday: "Sat", Ongoing: true}},
		{ID: 2, Content: &MonthTask{Text: "rent", Day: 3}},
		{ID: 3, Content: &OnceTask{Text: "dentist", Date: d, Status: Expired}},
		{ID: 4, Content: &ProgressTask{Text: "Dune", Progress: "p.50"}},
		{ID: 5, Content: &ProgressTask{Text: "call mom"}},
	}
	lines := make([]string, 0, len(tasks))
	for _, r := range DescribeAll(tasks) {
		lines = append(lines, r.Line())
	}
	assert.Equal(t, []string{
		"1: [week] gym (every Sat) ongoing",
		"2: [month] rent (monthly on day 3)",
		"3: [once] dentist (on 20261016) expired",
		"4: [progress] Dune (at p.50)",
		"5: [progress] call mom (no progress yet)",
	}, lines)
}

func TestNewStampsCreatedAt(t *testing.T) {
	tk := New(&ProgressTask{Text: "x"}, time.Date(2026, 10, 17, 8, 5, 9, 0, time.UTC))
	assert.Equal(t, "2026-10-17 08:05:09", tk.CreatedAt)
	assert.Zero(t, tk.ID)
}

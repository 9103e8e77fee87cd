package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twiced-technology-gmbh/ttd/internal/calendar"
	"github.com/twiced-technology-gmbh/ttd/internal/store"
	"github.com/twiced-technology-gmbh/ttd/internal/task"
)

var now = time.Date(2026, time.October, 17, 9, 30, 0, 0, time.Local)

func newBoard(t *testing.T, variants ...task.Variant) (*Board, *store.Store) {
	t.Helper()
	s := store.New(store.FixedPath(filepath.Join(t.TempDir(), "tasks.json")), calendar.Fixed(now))
	for _, v := range variants {
		_, err := s.Append(v)
		require.NoError(t, err)
	}
	b := NewBoard(s, WithClock(func() time.Time { return now.Add(49 * time.Hour) }))
	b.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return b, s
}

func press(b *Board, keys ...string) {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		b.Update(msg)
	}
}

func load(t *testing.T, s *store.Store) []*task.Task {
	t.Helper()
	tasks, err := s.Load()
	require.NoError(t, err)
	return tasks
}

func TestColumnsFollowVariantKinds(t *testing.T) {
	b, _ := newBoard(t,
		&task.WeekTask{Text: "gym", Weekday: "Sat"},
		&task.ProgressTask{Text: "Dune", Progress: "p.50"},
		&task.WeekTask{Text: "choir", Weekday: "Thu"},
	)

	require.Len(t, b.columns, 4)
	assert.Equal(t, task.KindWeek, b.columns[0].kind)
	assert.Len(t, b.columns[0].tasks, 2)
	assert.Empty(t, b.columns[1].tasks)
	assert.Len(t, b.columns[3].tasks, 1)

	view := b.View()
	assert.Contains(t, view, "week (2)")
	assert.Contains(t, view, "#1 gym")
	assert.Contains(t, view, "ongoing")
	assert.Contains(t, view, "2d")
}

func TestDeleteConfirmed(t *testing.T) {
	b, s := newBoard(t,
		&task.WeekTask{Text: "gym", Weekday: "Sat"},
		&task.WeekTask{Text: "choir", Weekday: "Thu"},
	)

	press(b, "j", "d")
	assert.Equal(t, viewConfirmDelete, b.view)
	assert.Contains(t, b.View(), "#2: choir")

	press(b, "y")
	assert.Equal(t, viewBoard, b.view)
	require.NoError(t, b.err)

	tasks := load(t, s)
	require.Len(t, tasks, 1)
	assert.Equal(t, "gym", task.TextOf(tasks[0].Content))
}

func TestDeleteCanceled(t *testing.T) {
	b, s := newBoard(t, &task.WeekTask{Text: "gym", Weekday: "Sat"})

	press(b, "d", "n")
	assert.Equal(t, viewBoard, b.view)
	assert.Len(t, load(t, s), 1)
}

func TestDeleteRefusesStaleSelection(t *testing.T) {
	b, s := newBoard(t,
		&task.WeekTask{Text: "gym", Weekday: "Sat"},
		&task.WeekTask{Text: "choir", Weekday: "Thu"},
	)

	press(b, "d")
	_, err := s.RemoveByID(1)
	require.NoError(t, err)
	press(b, "y")

	require.ErrorIs(t, b.err, errStale)
	assert.Len(t, load(t, s), 1, "the other task must survive")
}

func TestUpdateProgress(t *testing.T) {
	b, s := newBoard(t, &task.ProgressTask{Text: "Dune", Progress: "p.50"})

	press(b, "l", "l", "l", "u")
	require.Equal(t, viewEditProgress, b.view)
	assert.Equal(t, "p.50", b.input.Value())

	b.input.SetValue("")
	press(b, "p.99", "enter")
	assert.Equal(t, viewBoard, b.view)
	require.NoError(t, b.err)

	tasks := load(t, s)
	assert.Equal(t, "p.99", tasks[0].Content.(*task.ProgressTask).Progress)
}

func TestUpdateProgressRejectsOtherKinds(t *testing.T) {
	b, _ := newBoard(t, &task.MonthTask{Text: "rent", Day: 3})

	press(b, "l", "u")
	assert.Equal(t, viewBoard, b.view)
	require.Error(t, b.err)
	assert.Contains(t, b.View(), "only progress tasks")
}

func TestClearAll(t *testing.T) {
	b, s := newBoard(t,
		&task.MonthTask{Text: "rent", Day: 3},
		&task.ProgressTask{Text: "Dune"},
	)

	press(b, "C")
	assert.Equal(t, viewConfirmClearAll, b.view)
	assert.Contains(t, b.View(), "2 tasks will be removed")

	press(b, "y")
	assert.Empty(t, load(t, s))
	assert.Empty(t, b.tasks)
}

func TestGuardWrapsMutations(t *testing.T) {
	s := store.New(store.FixedPath(filepath.Join(t.TempDir(), "tasks.json")), calendar.Fixed(now))
	_, err := s.Append(&task.ProgressTask{Text: "Dune"})
	require.NoError(t, err)

	calls := 0
	b := NewBoard(s, WithGuard(func(fn func() error) error {
		calls++
		return fn()
	}))
	b.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	press(b, "C", "y")
	assert.Equal(t, 1, calls)
}

func TestHumanDuration(t *testing.T) {
	assert.Equal(t, "<1m", humanDuration(30*time.Second))
	assert.Equal(t, "5m", humanDuration(5*time.Minute))
	assert.Equal(t, "2d", humanDuration(49*time.Hour))
	assert.Equal(t, "2w", humanDuration(15*24*time.Hour))
}

// Package store persists the task list as a single JSON array and applies
// the status recomputation on every load. Every mutation rewrites the whole
// file in place; there is no locking and no atomic replace.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/twiced-technology-gmbh/ttd/internal/calendar"
	"github.com/twiced-technology-gmbh/ttd/internal/clierr"
	"github.com/twiced-technology-gmbh/ttd/internal/filter"
	"github.com/twiced-technology-gmbh/ttd/internal/task"
)

const (
	fileMode = 0o600
	dirMode  = 0o750
)

// PathProvider resolves the location of the task file.
type PathProvider interface {
	Path() (string, error)
}

// FixedPath is a PathProvider that always returns itself.
type FixedPath string

// Path implements PathProvider.
func (p FixedPath) Path() (string, error) { return string(p), nil }

// Store reads and writes the task file.
type Store struct {
	paths PathProvider
	cal   calendar.Calendar
	now   func() time.Time
	log   *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for debug diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithClock overrides the source of created_at timestamps. By default the
// calendar's Now is used.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates a Store. cal supplies "today" for status recomputation.
func New(paths PathProvider, cal calendar.Calendar, opts ...Option) *Store {
	s := &Store{
		paths: paths,
		cal:   cal,
		now:   cal.Now,
		log:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the resolved task file location.
func (s *Store) Path() (string, error) {
	path, err := s.paths.Path()
	if err != nil {
		return "", clierr.Wrap(clierr.IOError, err, "resolving task file")
	}
	return path, nil
}

// Load reads all tasks and recomputes their derived status. A missing or
// empty file is an empty list.
func (s *Store) Load() ([]*task.Task, error) {
	path, err := s.Path()
	if err != nil {
		return nil, err
	}
	return s.load(path)
}

func (s *Store) load(path string) ([]*task.Task, error) {
	data, err := os.ReadFile(path) //nolint:gosec // task path from trusted provider
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.log.Debug("task file absent", "path", path)
			return []*task.Task{}, nil
		}
		return nil, clierr.Wrap(clierr.IOError, err, "reading task file").
			WithDetails(map[string]any{"path": path})
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []*task.Task{}, nil
	}

	var tasks []*task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, clierr.Wrap(clierr.DecodeError, err, "parsing "+path).
			WithDetails(map[string]any{"path": path})
	}
	for i, t := range tasks {
		if t == nil || t.Content == nil {
			return nil, clierr.Newf(clierr.DecodeError, "parsing %s: entry %d is empty", path, i+1).
				WithDetails(map[string]any{"path": path})
		}
		if t.ID != i+1 {
			s.log.Debug("renumbering out-of-sequence task", "stored_id", t.ID, "position", i+1)
		}
	}
	if tasks == nil {
		tasks = []*task.Task{}
	}

	filter.Resequence(tasks)
	task.RefreshAll(tasks, s.cal)
	s.log.Debug("loaded tasks", "path", path, "count", len(tasks))
	return tasks, nil
}

// persist truncates the file and writes the full encoded list.
func (s *Store) persist(path string, tasks []*task.Task) error {
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return clierr.Wrap(clierr.InternalError, err, "encoding tasks")
	}
	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return clierr.Wrap(clierr.IOError, err, "creating task directory")
	}
	if err := os.WriteFile(path, append(data, '\n'), fileMode); err != nil {
		return clierr.Wrap(clierr.IOError, err, "writing task file").
			WithDetails(map[string]any{"path": path})
	}
	s.log.Debug("persisted tasks", "path", path, "count", len(tasks))
	return nil
}

// Append numbers v as the next task, stamps it and persists the list.
func (s *Store) Append(v task.Variant) (*task.Task, error) {
	path, tasks, err := s.open()
	if err != nil {
		return nil, err
	}

	t := task.New(v, s.now())
	t.ID = len(tasks) + 1
	tasks = append(tasks, t)

	if err := s.persist(path, tasks); err != nil {
		return nil, err
	}
	return t, nil
}

// Get returns the task with the given id.
func (s *Store) Get(id int) (*task.Task, error) {
	tasks, err := s.Load()
	if err != nil {
		return nil, err
	}
	if err := checkIndex(id, len(tasks)); err != nil {
		return nil, err
	}
	return tasks[id-1], nil
}

// RemoveByID removes the task with the given id and renumbers the rest.
func (s *Store) RemoveByID(id int) (*task.Task, error) {
	path, tasks, err := s.open()
	if err != nil {
		return nil, err
	}
	if err := checkIndex(id, len(tasks)); err != nil {
		return nil, err
	}
	return s.removeAt(path, tasks, id-1)
}

// RemoveLast removes the final task.
func (s *Store) RemoveLast() (*task.Task, error) {
	path, tasks, err := s.open()
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, clierr.New(clierr.EmptyList, "task list is empty")
	}
	return s.removeAt(path, tasks, len(tasks)-1)
}

func (s *Store) removeAt(path string, tasks []*task.Task, idx int) (*task.Task, error) {
	removed := tasks[idx]
	rest := make([]*task.Task, 0, len(tasks)-1)
	rest = append(rest, tasks[:idx]...)
	rest = append(rest, tasks[idx+1:]...)
	filter.Resequence(rest)

	if err := s.persist(path, rest); err != nil {
		return nil, err
	}
	return removed, nil
}

// Clear empties the task file and returns how many tasks it held.
func (s *Store) Clear() (int, error) {
	path, tasks, err := s.open()
	if err != nil {
		return 0, err
	}
	if _, statErr := os.Stat(path); errors.Is(statErr, fs.ErrNotExist) {
		return 0, nil
	}
	if err := os.WriteFile(path, nil, fileMode); err != nil {
		return 0, clierr.Wrap(clierr.IOError, err, "truncating task file")
	}
	s.log.Debug("cleared tasks", "path", path, "count", len(tasks))
	return len(tasks), nil
}

// ReplaceWithFiltered removes every task matching pred, persists the rest
// renumbered, and returns both halves. removed keeps the ids the tasks had
// before removal.
func (s *Store) ReplaceWithFiltered(pred filter.Predicate) (retained, removed []*task.Task, err error) {
	path, tasks, err := s.open()
	if err != nil {
		return nil, nil, err
	}

	removed, retained = filter.Partition(tasks, pred)
	if len(removed) == 0 {
		return retained, removed, nil
	}
	filter.Resequence(retained)

	if err := s.persist(path, retained); err != nil {
		return nil, nil, err
	}
	return retained, removed, nil
}

// UpdateProgress replaces the progress text of a ProgressTask.
func (s *Store) UpdateProgress(id int, progress string) (*task.Task, error) {
	path, tasks, err := s.open()
	if err != nil {
		return nil, err
	}
	if err := checkIndex(id, len(tasks)); err != nil {
		return nil, err
	}

	t := tasks[id-1]
	p, ok := t.Content.(*task.ProgressTask)
	if !ok {
		return nil, clierr.Newf(clierr.WrongVariant,
			"task #%d is a %s task; only progress tasks can be updated", id, t.Kind().Short()).
			WithDetails(map[string]any{"id": id, "kind": t.Kind().Short()})
	}
	p.Progress = progress

	if err := s.persist(path, tasks); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Store) open() (string, []*task.Task, error) {
	path, err := s.Path()
	if err != nil {
		return "", nil, err
	}
	tasks, err := s.load(path)
	if err != nil {
		return "", nil, err
	}
	return path, tasks, nil
}

func checkIndex(id, n int) error {
	if id >= 1 && id <= n {
		return nil
	}
	msg := fmt.Sprintf("invalid task id %d", id)
	if n == 0 {
		msg += ": task list is empty"
	} else {
		msg += fmt.Sprintf(": expected 1..%d", n)
	}
	return clierr.New(clierr.IndexOutOfRange, msg).
		WithDetails(map[string]any{"id": id, "count": n})
}

// Package tui implements an interactive terminal browser for the task list.
package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/twiced-technology-gmbh/ttd/internal/task"
)

// view represents the current screen state.
type view int

const (
	viewBoard view = iota
	viewConfirmDelete
	viewConfirmClearAll
	viewEditProgress
)

// Key and layout constants.
const (
	keyEsc = "esc"

	boardChrome  = 2           // blank line + status bar below the column area
	errorChrome  = 1           // extra line when error toast is displayed
	tickInterval = time.Minute // how often statuses are recomputed
	maxTextLines = 2           // wrapped task text lines per card
	progressMax  = 120         // character limit of the progress input
)

var errStale = errors.New("task list changed on disk; reloaded")

// Store is the part of the task store the board works with.
type Store interface {
	Load() ([]*task.Task, error)
	RemoveByID(id int) (*task.Task, error)
	UpdateProgress(id int, progress string) (*task.Task, error)
	Clear() (int, error)
}

// Guard runs a mutation, typically while holding the task file lock.
type Guard func(fn func() error) error

// Option configures a Board.
type Option func(*Board)

// WithGuard wraps every mutation in g.
func WithGuard(g Guard) Option {
	return func(b *Board) { b.guard = g }
}

// WithClock overrides the clock used for task age display.
func WithClock(now func() time.Time) Option {
	return func(b *Board) { b.now = now }
}

// Board is the top-level bubbletea model.
type Board struct {
	store     Store
	guard     Guard
	tasks     []*task.Task
	columns   []column
	activeCol int
	activeRow int
	view      view
	width     int
	height    int
	err       error
	now       func() time.Time
	keys      keyMap

	// Delete confirmation.
	deleteID   int
	deleteText string

	// Clear all confirmation.
	clearAllCount int

	// Progress editing.
	editID int
	input  textinput.Model
}

// column groups tasks of a single variant kind.
type column struct {
	kind      task.Kind
	tasks     []*task.Task
	scrollOff int // first visible row index
}

type keyMap struct {
	Quit     key.Binding
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	Delete   key.Binding
	Progress key.Binding
	ClearAll key.Binding
	Reload   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:     key.NewBinding(key.WithKeys("q", keyEsc), key.WithHelp("q", "quit")),
		Left:     key.NewBinding(key.WithKeys("h", "left")),
		Right:    key.NewBinding(key.WithKeys("l", "right")),
		Up:       key.NewBinding(key.WithKeys("k", "up")),
		Down:     key.NewBinding(key.WithKeys("j", "down")),
		Delete:   key.NewBinding(key.WithKeys("d", "D"), key.WithHelp("d", "del")),
		Progress: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "progress")),
		ClearAll: key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear-all")),
		Reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	}
}

// help lists the bindings shown in the status bar.
func (k keyMap) help() []key.Binding {
	return []key.Binding{k.Delete, k.Progress, k.ClearAll, k.Reload, k.Quit}
}

// NewBoard creates a new Board model over the given store.
func NewBoard(s Store, opts ...Option) *Board {
	ti := textinput.New()
	ti.Placeholder = "e.g. p.120"
	ti.CharLimit = progressMax
	ti.Prompt = "> "

	b := &Board{
		store: s,
		guard: func(fn func() error) error { return fn() },
		now:   time.Now,
		keys:  defaultKeyMap(),
		input: ti,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.loadTasks()
	return b
}

// Init implements tea.Model.
func (b *Board) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (b *Board) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return b.handleKey(msg)
	case tea.MouseMsg:
		return b.handleMouse(msg)
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		b.input.Width = max(msg.Width/2, 10) //nolint:mnd // dialog input width
		return b, nil
	case ReloadMsg:
		b.loadTasks()
		return b, nil
	case TickMsg:
		// Statuses are derived from the date, so a reload keeps them current
		// across midnight.
		b.loadTasks()
		return b, tickCmd()
	}
	return b, nil
}

// View implements tea.Model.
func (b *Board) View() string {
	if b.width == 0 {
		return "Loading..."
	}

	switch b.view {
	case viewConfirmDelete:
		return b.viewDeleteConfirm()
	case viewConfirmClearAll:
		return b.viewClearAllConfirm()
	case viewEditProgress:
		return b.viewEditProgress()
	default:
		return b.viewBoard()
	}
}

func (b *Board) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys.
	if key.Matches(msg, key.NewBinding(key.WithKeys("ctrl+c"))) {
		return b, tea.Quit
	}

	switch b.view {
	case viewBoard:
		return b.handleBoardKey(msg)
	case viewConfirmDelete:
		return b.handleDeleteKey(msg)
	case viewConfirmClearAll:
		return b.handleClearAllKey(msg)
	case viewEditProgress:
		return b.handleEditKey(msg)
	}

	return b, nil
}

func (b *Board) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, b.keys.Quit):
		return b, tea.Quit
	case key.Matches(msg, b.keys.Left):
		if b.activeCol > 0 {
			b.activeCol--
			b.clampRow()
		}
	case key.Matches(msg, b.keys.Right):
		if b.activeCol < len(b.columns)-1 {
			b.activeCol++
			b.clampRow()
		}
	case key.Matches(msg, b.keys.Down):
		col := b.currentColumn()
		if col != nil && b.activeRow < len(col.tasks)-1 {
			b.activeRow++
			b.ensureVisible()
		}
	case key.Matches(msg, b.keys.Up):
		if b.activeRow > 0 {
			b.activeRow--
			b.ensureVisible()
		}
	case key.Matches(msg, b.keys.ClearAll):
		b.handleClearAllStart()
	case key.Matches(msg, b.keys.Delete):
		b.handleDeleteStart()
	case key.Matches(msg, b.keys.Progress):
		return b, b.handleEditStart()
	case key.Matches(msg, b.keys.Reload):
		b.loadTasks()
	}
	return b, nil
}

func (b *Board) handleDeleteStart() {
	if t := b.selectedTask(); t != nil {
		b.deleteID = t.ID
		b.deleteText = task.TextOf(t.Content)
		b.view = viewConfirmDelete
	}
}

func (b *Board) handleClearAllStart() {
	b.clearAllCount = len(b.tasks)
	if b.clearAllCount > 0 {
		b.view = viewConfirmClearAll
	}
}

func (b *Board) handleEditStart() tea.Cmd {
	t := b.selectedTask()
	if t == nil {
		return nil
	}
	p, ok := t.Content.(*task.ProgressTask)
	if !ok {
		b.err = fmt.Errorf("task #%d is a %s task; only progress tasks can be updated", t.ID, t.Kind().Short())
		return nil
	}
	b.err = nil
	b.editID = t.ID
	b.input.SetValue(p.Progress)
	b.input.CursorEnd()
	b.view = viewEditProgress
	return b.input.Focus()
}

func (b *Board) handleDeleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return b.executeDelete()
	case "n", "N", keyEsc, "q":
		b.view = viewBoard
	}
	return b, nil
}

func (b *Board) handleClearAllKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return b.executeClearAll()
	case "n", "N", keyEsc, "q":
		b.view = viewBoard
	}
	return b, nil
}

func (b *Board) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return b.executeUpdate()
	case tea.KeyEsc:
		b.input.Blur()
		b.view = viewBoard
		return b, nil
	}
	var cmd tea.Cmd
	b.input, cmd = b.input.Update(msg)
	return b, cmd
}

func (b *Board) executeDelete() (tea.Model, tea.Cmd) {
	err := b.guard(func() error {
		if err := b.checkUnchanged(b.deleteID, b.deleteText); err != nil {
			return err
		}
		_, err := b.store.RemoveByID(b.deleteID)
		return err
	})
	if err != nil {
		b.err = fmt.Errorf("removing task #%d: %w", b.deleteID, err)
	}

	b.view = viewBoard
	b.loadTasksKeepError(err)
	return b, nil
}

func (b *Board) executeClearAll() (tea.Model, tea.Cmd) {
	err := b.guard(func() error {
		_, err := b.store.Clear()
		return err
	})
	if err != nil {
		b.err = fmt.Errorf("clearing tasks: %w", err)
	}
	b.view = viewBoard
	b.loadTasksKeepError(err)
	return b, nil
}

func (b *Board) executeUpdate() (tea.Model, tea.Cmd) {
	progress := strings.TrimSpace(b.input.Value())
	err := b.guard(func() error {
		_, err := b.store.UpdateProgress(b.editID, progress)
		return err
	})
	if err != nil {
		b.err = fmt.Errorf("updating task #%d: %w", b.editID, err)
	}
	b.input.Blur()
	b.view = viewBoard
	b.loadTasksKeepError(err)
	return b, nil
}

// checkUnchanged fails when the task at id no longer has the text the user
// confirmed, i.e. the file was edited since the board last loaded.
func (b *Board) checkUnchanged(id int, text string) error {
	tasks, err := b.store.Load()
	if err != nil {
		return err
	}
	if id < 1 || id > len(tasks) || task.TextOf(tasks[id-1].Content) != text {
		return errStale
	}
	return nil
}

// handleMouse handles mouse click events for card selection.
func (b *Board) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return b, nil
	}
	if b.view != viewBoard {
		return b, nil
	}

	colWidth := b.columnWidth()
	clickedCol := msg.X / colWidth
	if clickedCol >= len(b.columns) {
		return b, nil
	}

	col := &b.columns[clickedCol]
	b.activeCol = clickedCol
	lineY := msg.Y - 1
	if lineY < 0 {
		b.clampRow()
		return b, nil
	}

	cardLine := 0
	for rowIdx := col.scrollOff; rowIdx < len(col.tasks); rowIdx++ {
		cardH := b.cardHeight(col.tasks[rowIdx], colWidth)
		if lineY < cardLine+cardH {
			b.activeRow = rowIdx
			b.ensureVisible()
			return b, nil
		}
		cardLine += cardH
	}

	b.clampRow()
	return b, nil
}

// loadTasks reads all tasks and organizes them into one column per kind.
func (b *Board) loadTasks() {
	b.loadTasksKeepError(nil)
}

// loadTasksKeepError reloads the board. A non-nil prior error stays on
// screen unless the reload itself fails.
func (b *Board) loadTasksKeepError(prior error) {
	tasks, err := b.store.Load()
	if err != nil {
		b.err = err
		return
	}
	if prior == nil {
		b.err = nil
	}
	b.tasks = tasks

	kinds := task.Kinds()
	b.columns = make([]column, len(kinds))
	for i, k := range kinds {
		b.columns[i] = column{kind: k}
	}
	for _, t := range tasks {
		for i := range b.columns {
			if b.columns[i].kind == t.Kind() {
				b.columns[i].tasks = append(b.columns[i].tasks, t)
				break
			}
		}
	}

	b.clampRow()
}

func (b *Board) currentColumn() *column {
	if b.activeCol >= 0 && b.activeCol < len(b.columns) {
		return &b.columns[b.activeCol]
	}
	return nil
}

func (b *Board) selectedTask() *task.Task {
	col := b.currentColumn()
	if col == nil || len(col.tasks) == 0 {
		return nil
	}
	if b.activeRow >= 0 && b.activeRow < len(col.tasks) {
		return col.tasks[b.activeRow]
	}
	return nil
}

func (b *Board) clampRow() {
	col := b.currentColumn()
	if col == nil || len(col.tasks) == 0 {
		b.activeRow = 0
		return
	}
	if b.activeRow >= len(col.tasks) {
		b.activeRow = len(col.tasks) - 1
	}
	b.ensureVisible()
}

// chromeHeight returns the number of lines consumed by non-card elements below
// the column area: blank line + status bar (+ error line when an error is shown).
func (b *Board) chromeHeight() int {
	h := boardChrome
	if b.err != nil {
		h += errorChrome
	}
	return h
}

// visibleCardsForColumn returns the number of cards that fit in the column,
// accounting for scroll indicator lines that consume vertical space.
func (b *Board) visibleCardsForColumn(col *column, width int) int {
	budget := b.height - b.chromeHeight()
	if budget < 1 {
		return 1
	}

	// Always need 1 line for column header.
	avail := budget - 1
	if col.scrollOff > 0 {
		avail--
	}

	n := b.fitCardsInHeight(col, avail, width)
	if col.scrollOff+n < len(col.tasks) {
		n = max(b.fitCardsInHeight(col, avail-1, width), 1)
	}
	return n
}

// ensureVisible adjusts the active column's scroll offset so the
// selected row is within the visible window.
func (b *Board) ensureVisible() {
	col := b.currentColumn()
	if col == nil {
		return
	}
	w := b.columnWidth()

	for range len(col.tasks) + 1 {
		maxVis := b.visibleCardsForColumn(col, w)

		switch {
		case b.activeRow >= col.scrollOff+maxVis:
			col.scrollOff = b.activeRow - maxVis + 1
		case b.activeRow < col.scrollOff:
			col.scrollOff = b.activeRow
		default:
			return
		}
	}
}

func (b *Board) fitCardsInHeight(col *column, avail, width int) int {
	if len(col.tasks) == 0 || avail < 1 {
		return 1
	}

	used := 0
	count := 0
	for i := col.scrollOff; i < len(col.tasks); i++ {
		cardLines := b.cardHeight(col.tasks[i], width)
		if count > 0 && used+cardLines > avail {
			break
		}
		count++
		used += cardLines
		if used >= avail {
			break
		}
	}
	return max(count, 1)
}

// --- Messages ---

// ReloadMsg is sent by the file watcher to trigger a board refresh.
type ReloadMsg struct{}

// TickMsg is sent periodically to recompute statuses.
type TickMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg { return TickMsg{} })
}

// --- Styles ---

var (
	columnHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("252")).
				Background(lipgloss.Color("236")).
				Padding(0, 1)

	activeColumnHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("230")).
				Background(lipgloss.Color("62")).
				Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	activeCardStyle = cardStyle.BorderForeground(lipgloss.Color("226"))

	// Border colors by derived state.
	stateBorders = map[string]lipgloss.Color{
		task.StateOngoing: lipgloss.Color("34"),
		task.StateExpired: lipgloss.Color("196"),
	}

	stateStyles = map[string]lipgloss.Style{
		task.StateOngoing:  lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
		task.StateUpcoming: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		task.StateExpired:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}

	statusBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	dialogPadY = 1
	dialogPadX = 2

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(dialogPadY, dialogPadX)
)

// --- View rendering ---

func (b *Board) viewBoard() string {
	colWidth := b.columnWidth()

	renderedCols := make([]string, len(b.columns))
	for i, col := range b.columns {
		renderedCols[i] = b.renderColumn(i, col, colWidth)
	}

	boardView := lipgloss.JoinHorizontal(lipgloss.Top, renderedCols...)

	// Clamp from the bottom (keeping headers at the top) and pad if needed.
	targetHeight := b.height - b.chromeHeight()
	if targetHeight > 0 {
		actual := strings.Count(boardView, "\n") + 1
		if actual > targetHeight {
			viewLines := strings.SplitN(boardView, "\n", targetHeight+1)
			boardView = strings.Join(viewLines[:targetHeight], "\n")
		} else if actual < targetHeight {
			boardView += strings.Repeat("\n", targetHeight-actual)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, boardView, "", b.renderStatusBar())
}

func (b *Board) columnWidth() int {
	if b.width == 0 || len(b.columns) == 0 {
		return 30 //nolint:mnd // default column width
	}
	w := b.width / len(b.columns)
	const maxColWidth = 60
	return min(w, maxColWidth)
}

func (b *Board) renderColumn(colIdx int, col column, width int) string {
	const headerPad = 2
	headerText := truncate(fmt.Sprintf("%s (%d)", col.kind.Short(), len(col.tasks)), width-headerPad)

	header := columnHeaderStyle.Width(width).Render(headerText)
	if colIdx == b.activeCol {
		header = activeColumnHeaderStyle.Width(width).Render(headerText)
	}

	maxVis := b.visibleCardsForColumn(&col, width)
	start := min(col.scrollOff, len(col.tasks))
	end := min(start+maxVis, len(col.tasks))

	parts := []string{header}
	if start > 0 {
		parts = append(parts, dimStyle.Width(width).Render(truncate(fmt.Sprintf("  ↑ %d more", start), width)))
	}

	if len(col.tasks) == 0 {
		parts = append(parts, dimStyle.Width(width).Render("  (empty)"))
	} else {
		for rowIdx := start; rowIdx < end; rowIdx++ {
			active := colIdx == b.activeCol && rowIdx == b.activeRow
			parts = append(parts, b.renderCard(col.tasks[rowIdx], active, width))
		}
	}

	if end < len(col.tasks) {
		indicator := fmt.Sprintf("  ↓ %d more", len(col.tasks)-end)
		parts = append(parts, dimStyle.Width(width).Render(truncate(indicator, width)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (b *Board) renderCard(t *task.Task, active bool, width int) string {
	content := strings.Join(b.cardContentLines(t, width), "\n")

	style := cardStyle
	if c, ok := stateBorders[task.Describe(t).State]; ok {
		style = cardStyle.BorderForeground(c)
	}
	if active {
		style = activeCardStyle
	}

	return style.Width(width - 2).Render(content) //nolint:mnd // border width
}

func (b *Board) cardHeight(t *task.Task, width int) int {
	return len(b.cardContentLines(t, width)) + 2 //nolint:mnd // top and bottom borders
}

func (b *Board) cardContentLines(t *task.Task, width int) []string {
	const cardChrome = 4 // border (2) + padding (2)
	cardWidth := max(width-cardChrome, 1)

	r := task.Describe(t)
	lines := wrapText(fmt.Sprintf("#%d %s", r.ID, r.Text), cardWidth, maxTextLines)

	meta := dimStyle.Render(truncate(r.Schedule, cardWidth))
	if r.State != task.StateIdle {
		meta += " " + stateStyles[r.State].Render(r.State)
	}
	if age, ok := b.age(r.CreatedAt); ok {
		meta += dimStyle.Render(" · " + age)
	}
	return append(lines, meta)
}

// age returns how long ago a task was created.
func (b *Board) age(createdAt string) (string, bool) {
	created, err := time.ParseInLocation(task.CreatedAtLayout, createdAt, time.Local)
	if err != nil {
		return "", false
	}
	return humanDuration(b.now().Sub(created)), true
}

func (b *Board) renderStatusBar() string {
	helps := make([]string, 0, len(b.keys.help()))
	for _, kb := range b.keys.help() {
		h := kb.Help()
		helps = append(helps, h.Key+":"+h.Desc)
	}
	status := fmt.Sprintf(" %d tasks | %s", len(b.tasks), strings.Join(helps, " "))
	status = truncate(status, b.width)

	if b.err != nil {
		errStr := errorStyle.Render(truncate("Error: "+b.err.Error(), b.width))
		return errStr + "\n" + statusBarStyle.Render(status)
	}
	return statusBarStyle.Render(status)
}

func (b *Board) viewDeleteConfirm() string {
	content := errorStyle.Render("Remove task?") + "\n\n" +
		fmt.Sprintf("  #%d: %s", b.deleteID, b.deleteText) + "\n\n" +
		dimStyle.Render("y:yes  n:no")

	return dialogStyle.Render(content)
}

func (b *Board) viewClearAllConfirm() string {
	content := errorStyle.Render("Remove ALL tasks?") + "\n\n" +
		fmt.Sprintf("  %d tasks will be removed.", b.clearAllCount) + "\n\n" +
		dimStyle.Render("y:yes  n:no")

	return dialogStyle.Render(content)
}

func (b *Board) viewEditProgress() string {
	content := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("Progress of task #%d", b.editID)) + "\n\n" +
		b.input.View() + "\n\n" +
		dimStyle.Render("enter:save  esc:cancel")

	return dialogStyle.Render(content)
}

// wrapText splits text across maxLines lines, word-wrapping at word
// boundaries. Each line is at most maxWidth characters.
func wrapText(text string, maxWidth, maxLines int) []string {
	if maxLines < 1 {
		maxLines = 1
	}
	if lipgloss.Width(text) <= maxWidth || maxLines == 1 {
		return []string{truncate(text, maxWidth)}
	}

	words := strings.Fields(text)
	lines := make([]string, 0, maxLines)
	var current strings.Builder

	for i, word := range words {
		if current.Len() == 0 {
			current.WriteString(word)
			continue
		}
		if lipgloss.Width(current.String())+1+lipgloss.Width(word) <= maxWidth {
			current.WriteByte(' ')
			current.WriteString(word)
		} else {
			lines = append(lines, truncate(current.String(), maxWidth))
			current.Reset()
			current.WriteString(word)
			if len(lines) == maxLines-1 {
				// Last line: append all remaining words.
				for _, w := range words[i+1:] {
					current.WriteByte(' ')
					current.WriteString(w)
				}
				break
			}
		}
	}
	if current.Len() > 0 {
		lines = append(lines, truncate(current.String(), maxWidth))
	}
	return lines
}

func truncate(s string, maxLen int) string {
	if maxLen < 4 { //nolint:mnd // minimum length for truncation
		maxLen = 4
	}
	if lipgloss.Width(s) <= maxLen {
		return s
	}
	// Slice by runes to avoid breaking multi-byte UTF-8 characters.
	runes := []rune(s)
	target := min(maxLen-3, len(runes)) //nolint:mnd // room for "..."
	for target > 0 && lipgloss.Width(string(runes[:target])) > maxLen-3 {
		target--
	}
	return string(runes[:target]) + "..."
}

// humanDuration formats a duration as a compact human-readable string.
// Examples: "<1m", "5m", "2h", "3d", "2w", "3mo", "1y".
func humanDuration(d time.Duration) string {
	const (
		day   = 24 * time.Hour
		week  = 7 * day
		month = 30 * day
		year  = 365 * day
	)

	switch {
	case d < time.Minute:
		return "<1m"
	case d < time.Hour:
		return strconv.Itoa(int(d.Minutes())) + "m"
	case d < day:
		return strconv.Itoa(int(d.Hours())) + "h"
	case d < week:
		return strconv.Itoa(int(d/day)) + "d"
	case d < month:
		return strconv.Itoa(int(d/week)) + "w"
	case d < year:
		return strconv.Itoa(int(d/month)) + "mo"
	default:
		return strconv.Itoa(int(d/year)) + "y"
	}
}

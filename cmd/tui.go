package cmd

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/ttd/internal/tui"
	"github.com/twiced-technology-gmbh/ttd/internal/watcher"
)

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "tui",
		Aliases: []string{"board"},
		Short:   "Browse tasks in an interactive board",
		Long: `Opens a full-screen board with one column per task kind. The board
reloads when the task file changes and recomputes statuses every minute.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			model := tui.NewBoard(a.store(), tui.WithGuard(a.locked), tui.WithClock(now))
			p := tea.NewProgram(model,
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			go a.watchBoard(ctx, p)

			_, err := p.Run()
			return err
		},
	}
}

func (a *app) watchBoard(ctx context.Context, p *tea.Program) {
	path, err := a.dataPath()
	if err != nil {
		return
	}
	w, err := watcher.New(path, func() {
		p.Send(tui.ReloadMsg{})
	})
	if err != nil {
		a.log.Debug("board runs without live reload", "err", err)
		return
	}
	defer w.Close()
	w.Run(ctx, func(err error) { a.log.Debug("watching task file", "err", err) })
}

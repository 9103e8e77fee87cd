package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/twiced-technology-gmbh/ttd/internal/clierr"
	"github.com/twiced-technology-gmbh/ttd/internal/watcher"
)

// redrawInterval re-renders even without file changes, so statuses follow
// the date.
const redrawInterval = time.Minute

// watch renders once, then again whenever the task file changes, until the
// command's context is canceled.
func (a *app) watch(cmd *cobra.Command, render func(io.Writer) error) error {
	path, err := a.dataPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil { //nolint:mnd // directory mode
		return clierr.Wrap(clierr.IOError, err, "creating task directory")
	}

	changes := make(chan struct{}, 1)
	fw, err := watcher.New(path, func() {
		select {
		case changes <- struct{}{}:
		default:
		}
	})
	if err != nil {
		return clierr.Wrap(clierr.IOError, err, "watching task file")
	}
	defer fw.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	go fw.Run(ctx, func(err error) { a.log.Warn("watching task file", "err", err) })

	w := cmd.OutOrStdout()
	redraw := func() {
		if isTerminalWriter(w) {
			termenv.NewOutput(w).ClearScreen()
		}
		if err := render(w); err != nil {
			fmt.Fprintln(w, "Error: "+err.Error())
		}
	}

	redraw()
	ticker := time.NewTicker(redrawInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changes:
			redraw()
		case <-ticker.C:
			redraw()
		}
	}
}

// isTerminalWriter reports whether w is an interactive terminal.
func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

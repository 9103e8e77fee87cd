// Package cmd implements the ttd CLI commands.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/twiced-technology-gmbh/ttd/internal/calendar"
	"github.com/twiced-technology-gmbh/ttd/internal/clierr"
	"github.com/twiced-technology-gmbh/ttd/internal/config"
	"github.com/twiced-technology-gmbh/ttd/internal/filelock"
	"github.com/twiced-technology-gmbh/ttd/internal/output"
	"github.com/twiced-technology-gmbh/ttd/internal/store"
)

// version is set at build time via ldflags.
var version = "dev"

// now is the wall clock behind every status computation and timestamp.
var now = time.Now

// envDebug enables debug logging when set to a true value.
const envDebug = "TTD_DEBUG"

// Global flags.
type globalFlags struct {
	json    bool
	compact bool
	noColor bool
	verbose bool
	path    bool
}

// app carries the state shared by the commands of one invocation.
type app struct {
	flags globalFlags
	cfg   *config.Config
	log   *slog.Logger
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{log: slog.New(slog.DiscardHandler)}

	root := &cobra.Command{
		Use:   "ttd",
		Short: "Things to do: a small personal reminder list",
		Long: `ttd keeps short reminders in a single JSON file in your home directory.
Tasks repeat weekly (--weekday) or monthly (--day), happen once (--date), or
bookmark progress through something long (--progress).`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          noArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.flags.path {
				return nil
			}
			return cmd.Help()
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVar(&a.flags.json, "json", false, "output as JSON")
	pf.BoolVar(&a.flags.compact, "compact", false, "compact one-line-per-record output")
	pf.BoolVar(&a.flags.compact, "oneline", false, "alias for --compact")
	pf.BoolVar(&a.flags.noColor, "no-color", false, "disable color output")
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "log diagnostics to stderr")
	pf.BoolVar(&a.flags.path, "path", false, "print the location of the task file")

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return clierr.Wrap(clierr.InvalidInput, err, "invalid flags")
	})

	root.AddCommand(
		newAddCmd(a),
		newRemoveCmd(a),
		newListCmd(a),
		newTodayCmd(a),
		newUpdateCmd(a),
		newShowCmd(a),
		newConfigCmd(a),
		newTUICmd(a),
	)
	return root, a
}

// setup configures logging, color and settings before any command runs.
func (a *app) setup(cmd *cobra.Command) error {
	level := slog.LevelWarn
	if debug, _ := strconv.ParseBool(os.Getenv(envDebug)); debug || a.flags.verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if a.colorDisabled() {
		output.DisableColor()
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.ApplyEnv()
	a.cfg = cfg
	a.log.Debug("loaded settings", "path", cfg.ConfigPath(), "output", cfg.Output)

	if err := validateFlags(cmd); err != nil {
		return err
	}

	if a.flags.path {
		path, err := a.dataPath()
		if err != nil {
			return err
		}
		output.Path(cmd.OutOrStdout(), path)
	}
	return nil
}

// Execute runs the root command and exits the process.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code. Failures are
// reported on stdout and, unless strict_exit is configured, still exit 0.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root, a := newRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	_, err := root.ExecuteContextC(ctx)
	if err == nil {
		return 0
	}
	return a.report(stdout, err)
}

// report renders err once and returns the exit code for it.
func (a *app) report(w io.Writer, err error) int {
	var cliErr *clierr.Error
	if !errors.As(err, &cliErr) {
		cliErr = clierr.Wrap(clierr.InternalError, err, "unexpected failure")
	}
	a.log.Debug("command failed", "code", cliErr.Code, "err", err)

	if a.jsonMode() {
		output.JSONError(w, cliErr.Code, cliErr.Message, cliErr.Details)
	} else {
		fmt.Fprintln(w, "Error: "+cliErr.Message)
	}

	if a.cfg == nil || !a.cfg.StrictExit {
		return 0
	}
	return cliErr.ExitCode()
}

// loadConfig loads the settings file from its default location.
func loadConfig() (*config.Config, error) {
	dir, err := config.DefaultDir()
	if err != nil {
		return nil, clierr.Wrap(clierr.IOError, err, "locating settings")
	}
	cfg, err := config.Load(dir)
	if err != nil {
		if errors.Is(err, config.ErrInvalid) {
			return nil, clierr.Wrap(clierr.InvalidConfig, err, "loading settings").
				WithDetails(map[string]any{"dir": dir})
		}
		return nil, clierr.Wrap(clierr.IOError, err, "loading settings")
	}
	return cfg, nil
}

func (a *app) jsonMode() bool {
	if a.flags.json {
		return true
	}
	return a.cfg != nil && a.cfg.Output == "json"
}

// outputFormat returns the detected output format from flags and settings.
func (a *app) outputFormat() output.Format {
	configured := ""
	if a.cfg != nil {
		configured = a.cfg.Output
	}
	return output.Detect(a.flags.json, a.flags.compact, configured)
}

func (a *app) colorDisabled() bool {
	return a.flags.noColor || os.Getenv("NO_COLOR") != ""
}

func (a *app) calendar() calendar.Calendar {
	return calendar.Clock(func() time.Time { return now() })
}

func (a *app) dataPath() (string, error) {
	return a.store().Path()
}

func (a *app) store() *store.Store {
	return store.New(config.DataPathOf(a.cfg), a.calendar(), store.WithLogger(a.log))
}

// locked runs fn while holding the task file lock so that concurrent ttd
// processes do not interleave their read-modify-write cycles.
func (a *app) locked(fn func() error) error {
	path, err := a.dataPath()
	if err != nil {
		return err
	}
	unlock, err := filelock.LockData(path)
	if err != nil {
		return clierr.Wrap(clierr.IOError, err, "acquiring lock")
	}
	defer unlock() //nolint:errcheck // best-effort unlock on exit

	a.log.Debug("acquired lock", "path", filelock.PathFor(path))
	return fn()
}

// validateFlags runs cobra's required-flag and flag-group checks ahead of
// cobra itself so their failures are reported as invalid input.
func validateFlags(cmd *cobra.Command) error {
	if err := cmd.ValidateRequiredFlags(); err != nil {
		return clierr.Wrap(clierr.InvalidInput, err, "invalid flags")
	}
	if err := cmd.ValidateFlagGroups(); err != nil {
		return clierr.Wrap(clierr.InvalidInput, err, "invalid flags")
	}
	return nil
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return clierr.Wrap(clierr.InvalidInput, err, "invalid arguments")
	}
	return nil
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return clierr.Wrap(clierr.InvalidInput, err, "invalid arguments")
		}
		return nil
	}
}

func maximumNArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.MaximumNArgs(n)(cmd, args); err != nil {
			return clierr.Wrap(clierr.InvalidInput, err, "invalid arguments")
		}
		return nil
	}
}

// parseID converts a task id argument.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, clierr.Newf(clierr.InvalidInput, "invalid task id %q: must be a number", arg).
			WithDetails(map[string]any{"input": arg})
	}
	return id, nil
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/ttd/internal/output"
	"github.com/twiced-technology-gmbh/ttd/internal/task"
)

func newShowCmd(a *app) *cobra.Command {
	var markdown bool

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show task details",
		Long: `Displays every detail of a single task. On a terminal the details are
rendered as markdown; use --markdown to force that when piping.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			t, err := a.store().Get(id)
			if err != nil {
				return err
			}

			rec := task.Describe(t)
			w := cmd.OutOrStdout()
			switch a.outputFormat() {
			case output.FormatJSON:
				return output.JSON(w, rec)
			case output.FormatCompact:
				output.TaskDetailCompact(w, rec)
				return nil
			}

			tty := isTerminalWriter(w)
			if !markdown && !tty {
				output.TaskDetail(w, rec)
				return nil
			}
			return output.RenderMarkdown(w, output.Markdown(rec), tty && !a.colorDisabled())
		},
	}

	cmd.Flags().BoolVar(&markdown, "markdown", false, "render as markdown even when not on a terminal")
	return cmd
}

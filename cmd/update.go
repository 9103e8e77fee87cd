package cmd

import (
	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/ttd/internal/output"
	"github.com/twiced-technology-gmbh/ttd/internal/task"
)

func newUpdateCmd(a *app) *cobra.Command {
	var progress string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Move the bookmark of a progress task",
		Long: `Replaces the progress marker of a progress task, for example the page or
episode you reached. Only progress tasks can be updated.`,
		Example: `  ttd update 3 --progress "chapter 12"`,
		Args:    exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var updated *task.Task
			err = a.locked(func() error {
				var err error
				updated, err = a.store().UpdateProgress(id, progress)
				return err
			})
			if err != nil {
				return err
			}

			rec := task.Describe(updated)
			w := cmd.OutOrStdout()
			if a.outputFormat() == output.FormatJSON {
				return output.JSON(w, rec)
			}
			output.Updated(w, rec)
			return nil
		},
	}

	cmd.Flags().StringVarP(&progress, "progress", "p", "", "new progress marker")
	_ = cmd.MarkFlagRequired("progress")
	return cmd
}

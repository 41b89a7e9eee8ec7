package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/daylist/pkg/app"
	"tableflip.dev/daylist/pkg/commands/options"
	"tableflip.dev/daylist/pkg/runner/complete"
)

func addDone(topLevel *cobra.Command) {
	addCompletion(topLevel, &cobra.Command{
		Use:     "done <id>",
		Aliases: []string{"complete", "completed"},
		Short:   "Mark an item done",
		Example: `
daylist done 3
`,
	}, complete.Complete{})
}

func addUndo(topLevel *cobra.Command) {
	addCompletion(topLevel, &cobra.Command{
		Use:   "undo <id>",
		Short: "Mark an item pending again",
		Example: `
daylist undo 3
`,
	}, complete.Complete{Undo: true})
}

func addToggle(topLevel *cobra.Command) {
	addCompletion(topLevel, &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip an item between done and pending",
	}, complete.Complete{Toggle: true})
}

func addCompletion(topLevel *cobra.Command, cmd *cobra.Command, mode complete.Complete) {
	io := &options.IDOptions{}

	cmd.Args = func(_ *cobra.Command, args []string) error {
		return io.ParseID(args)
	}
	cmd.ValidArgsFunction = itemCompletions
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		err := withContainer(cmd.Context(), func(ctx context.Context, c *app.Container) error {
			s := mode
			s.ID = io.ID
			s.Container = c
			return s.Do(ctx)
		})
		return output.HandleError(err)
	}

	topLevel.AddCommand(cmd)
}

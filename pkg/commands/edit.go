package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/daylist/pkg/app"
	"tableflip.dev/daylist/pkg/commands/options"
	"tableflip.dev/daylist/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	eo := &options.EditOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change an item's title, note or recurrence",
		Example: `
daylist edit 2 --title "buy oat milk"
daylist edit 4 --daily=false
`,
		Args: func(_ *cobra.Command, args []string) error {
			return io.ParseID(args)
		},
		ValidArgsFunction: itemCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			changes := eo.Changes(cmd)
			err := withContainer(cmd.Context(), func(ctx context.Context, c *app.Container) error {
				s := edit.Edit{
					ID:        io.ID,
					Changes:   changes,
					Container: c,
				}
				return s.Do(ctx)
			})
			return output.HandleError(err)
		},
	}

	options.AddEditArgs(cmd, eo)

	topLevel.AddCommand(cmd)
}

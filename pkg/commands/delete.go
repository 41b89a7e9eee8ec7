package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/daylist/pkg/app"
	"tableflip.dev/daylist/pkg/commands/options"
	"tableflip.dev/daylist/pkg/runner/remove"
)

func addDelete(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an item",
		Example: `
daylist delete 3
`,
		Args: func(_ *cobra.Command, args []string) error {
			return io.ParseID(args)
		},
		ValidArgsFunction: itemCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := withContainer(cmd.Context(), func(ctx context.Context, c *app.Container) error {
				s := remove.Remove{
					ID:        io.ID,
					Container: c,
				}
				return s.Do(ctx)
			})
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

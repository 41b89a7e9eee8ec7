package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/daylist/pkg/app"
	"tableflip.dev/daylist/pkg/commands/options"
	"tableflip.dev/daylist/pkg/runner/get"
)

func addList(topLevel *cobra.Command) {
	lo := &options.ListOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "get"},
		Short:   "List today's items",
		Example: `
daylist list
daylist list --pending --show-id
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := lo.Filter()
			if err != nil {
				return output.HandleError(err)
			}
			err = withContainer(cmd.Context(), func(ctx context.Context, c *app.Container) error {
				s := get.Get{
					ShowID:    io.ShowID,
					Filter:    filter,
					Stored:    lo.Stored,
					JSON:      output.JSON,
					Container: c,
				}
				return s.Do(ctx)
			})
			return output.HandleError(err)
		},
	}

	options.AddListArgs(cmd, lo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

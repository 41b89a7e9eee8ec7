package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/daylist/pkg/app"
	"tableflip.dev/daylist/pkg/commands/options"
	"tableflip.dev/daylist/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	ao := &options.AddOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add an item",
		Example: `
daylist add buy milk
daylist add --daily --note "ten minutes at least" stretch
`,
		Args: func(_ *cobra.Command, args []string) error {
			ao.Title = strings.TrimSpace(strings.Join(args, " "))
			if ao.Title == "" {
				return errors.New("requires a title")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := withContainer(cmd.Context(), func(ctx context.Context, c *app.Container) error {
				s := add.Add{
					Title:     ao.Title,
					Note:      ao.Note,
					IsDaily:   ao.Daily,
					ShowID:    io.ShowID,
					Container: c,
				}
				return s.Do(ctx)
			})
			return output.HandleError(err)
		},
	}

	options.AddAddArgs(cmd, ao)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/daylist/pkg/app"
	"tableflip.dev/daylist/pkg/commands/options"
	"tableflip.dev/daylist/pkg/runner/theme"
	palette "tableflip.dev/daylist/pkg/theme"
)

func addTheme(topLevel *cobra.Command) {
	var file string

	cmd := &cobra.Command{
		Use:   "theme [name]",
		Short: "List or switch color themes",
		Long: options.Wrap80(`Without arguments, list the available themes. With a name, switch to
that built-in theme. With --file, load a custom palette from a TOML file.`),
		Example: `
daylist theme
daylist theme dark
daylist theme --file ~/solarized.toml
`,
		ValidArgs: palette.Names(),
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("accepts at most one theme name")
			}
			if len(args) == 1 && file != "" {
				return errors.New("give a theme name or --file, not both")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s := theme.Theme{File: file}
			if len(args) == 1 {
				s.Name = args[0]
			}
			err := withContainer(cmd.Context(), func(ctx context.Context, c *app.Container) error {
				s.Container = c
				return s.Do(ctx)
			})
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "TOML palette file to load.")

	topLevel.AddCommand(cmd)
}

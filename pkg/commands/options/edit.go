package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daylist/pkg/app"
)

// EditOptions
type EditOptions struct {
	Title string
	Note  string
	Daily bool
}

func AddEditArgs(cmd *cobra.Command, o *EditOptions) {
	cmd.Flags().StringVarP(&o.Title, "title", "t", "",
		"New title.")
	cmd.Flags().StringVarP(&o.Note, "note", "n", "",
		"New note, an empty value clears it.")
	cmd.Flags().BoolVarP(&o.Daily, "daily", "d", false,
		"Whether the item repeats every day, for example --daily=false.")
}

// Changes returns only the fields whose flags were set.
func (o *EditOptions) Changes(cmd *cobra.Command) app.Edit {
	var e app.Edit
	if cmd.Flags().Changed("title") {
		e.Title = &o.Title
	}
	if cmd.Flags().Changed("note") {
		e.Note = &o.Note
	}
	if cmd.Flags().Changed("daily") {
		e.IsDaily = &o.Daily
	}
	return e
}

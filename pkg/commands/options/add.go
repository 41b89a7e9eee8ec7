package options

import (
	"github.com/spf13/cobra"
)

// AddOptions
type AddOptions struct {
	Title string
	Note  string
	Daily bool
}

func AddAddArgs(cmd *cobra.Command, o *AddOptions) {
	cmd.Flags().StringVarP(&o.Note, "note", "n", "",
		"Attach a longer note to the item.")
	cmd.Flags().BoolVarP(&o.Daily, "daily", "d", false,
		Wrap80("Repeat the item every day: once done, it goes back to pending the next day."))
}

package options

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/daylist/pkg/runner/get"
)

// ListOptions
type ListOptions struct {
	Pending bool
	Done    bool
	Daily   bool
	Stored  bool
}

func AddListArgs(cmd *cobra.Command, o *ListOptions) {
	cmd.Flags().BoolVar(&o.Pending, "pending", false,
		"Only list items that are not done.")
	cmd.Flags().BoolVar(&o.Done, "done", false,
		"Only list items that are done.")
	cmd.Flags().BoolVar(&o.Daily, "daily", false,
		"Only list daily items.")
	cmd.Flags().BoolVar(&o.Stored, "stored", false,
		"Keep the order items were added in instead of pending first.")
}

// Filter resolves the flags to a single filter.
func (o *ListOptions) Filter() (get.Filter, error) {
	set := 0
	f := get.All
	if o.Pending {
		set++
		f = get.Pending
	}
	if o.Done {
		set++
		f = get.Done
	}
	if o.Daily {
		set++
		f = get.Daily
	}
	if set > 1 {
		return get.All, errors.New("--pending, --done and --daily are exclusive")
	}
	return f, nil
}

package options

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// IDOptions
type IDOptions struct {
	ShowID bool
	ID     int
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the ID of each item.")
}

// ParseID reads the single positional item id.
func (o *IDOptions) ParseID(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("requires exactly one item id, got %d args", len(args))
	}
	id, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil || id < 0 {
		return fmt.Errorf("invalid item id %q", args[0])
	}
	o.ID = id
	return nil
}

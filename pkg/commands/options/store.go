package options

import (
	"github.com/spf13/cobra"
)

// StoreOptions select where state is kept.
type StoreOptions struct {
	ConfigPath string
	Ephemeral  bool
}

func AddStoreArgs(cmd *cobra.Command, o *StoreOptions) {
	cmd.PersistentFlags().StringVar(&o.ConfigPath, "config", "",
		"Directory holding .daylist.yaml, overrides DAYLIST_CONFIG_PATH.")
	cmd.PersistentFlags().BoolVar(&o.Ephemeral, "ephemeral", false,
		"Keep state in memory only, nothing is read or written.")
}

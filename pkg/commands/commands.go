package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/daylist/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
	where  = &options.StoreOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "daylist",
		Short: base.Wrap80("A todo list for today, with items that come back every day."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddOutputArg(cmd, output)
	options.AddStoreArgs(cmd, where)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addKey(topLevel)
	addAdd(topLevel)
	addList(topLevel)
	addDone(topLevel)
	addUndo(topLevel)
	addToggle(topLevel)
	addEdit(topLevel)
	addDelete(topLevel)
	addTheme(topLevel)
	addWatch(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

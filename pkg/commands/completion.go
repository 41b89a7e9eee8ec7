package commands

import (
	"context"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/daylist/pkg/logging"
	"tableflip.dev/daylist/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(daylist completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(daylist completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

// itemCompletions offers the stored item ids, described by their titles.
// It only reads; no container is opened so nothing is swept or saved.
func itemCompletions(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	s, err := openSession()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	st := store.LoadOrDefault(context.Background(), readOnly{s.persistence}, logging.Discard())
	ids := make([]string, 0, len(st.List))
	for _, it := range st.List {
		ids = append(ids, strconv.Itoa(it.ID)+"\t"+it.Title)
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}

// readOnly hides recovery hooks so completion never moves a snapshot aside.
type readOnly struct {
	store.Persistence
}

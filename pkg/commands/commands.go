package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "chairside",
		Short: base.Wrap80("Practice notes for the dental operatory."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addGet(topLevel)
	addUsers(topLevel)
	addTags(topLevel)
	addVisits(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

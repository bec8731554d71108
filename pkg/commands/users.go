package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/chairside/pkg/printers"
	"tableflip.dev/chairside/pkg/store"
)

func addUsers(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "list the practice roster",
		Example: `
chairside users
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pp := printers.PrettyPrint{}
			pp.NewLine()
			pp.Users(store.Seeded().Users())
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}

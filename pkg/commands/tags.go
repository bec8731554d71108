package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/chairside/pkg/commands/options"
	"tableflip.dev/chairside/pkg/printers"
	"tableflip.dev/chairside/pkg/session"
	"tableflip.dev/chairside/pkg/store"
)

func addTags(topLevel *cobra.Command) {
	uo := &options.UserOptions{}
	counts := false

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "list the tag registry",
		Example: `
chairside tags
chairside tags --counts --user u3
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pp := printers.PrettyPrint{}
			pp.NewLine()
			if !counts {
				pp.Tags(store.Seeded().DefaultTags())
				return nil
			}

			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			user := firstNonEmpty(uo.User, cfg.User(), "u1")
			sess := session.New(store.Seeded())
			if !sess.SelectUser(user) {
				return fmt.Errorf("unknown profile %q, try: chairside users", user)
			}
			sess.CompleteLoad()
			pp.Counts(sess.Counts(),
				[]string{"all", "pinned", "recent", "archived", "trash"},
				sess.Tags())
			return nil
		},
	}

	cmd.Flags().BoolVar(&counts, "counts", false,
		"Include per-view and per-tag note counts for a profile.")
	options.AddUserArgs(cmd, uo)
	topLevel.AddCommand(cmd)
}

package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/chairside/pkg/commands/options"
	"tableflip.dev/chairside/pkg/session"
	"tableflip.dev/chairside/pkg/store"
	teaui "tableflip.dev/chairside/pkg/tui/app"
)

func addUI(topLevel *cobra.Command) {
	uo := &options.UserOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
chairside ui
chairside ui --user u2
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			sess := session.New(store.Seeded())
			if user := firstNonEmpty(uo.User, cfg.User()); user != "" {
				if sess.SelectUser(user) {
					sess.CompleteLoad()
				}
			}
			return teaui.Run(sess, cfg.Delay())
		},
	}

	options.AddUserArgs(cmd, uo)
	topLevel.AddCommand(cmd)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/chairside/pkg/commands/options"
	"tableflip.dev/chairside/pkg/printers"
	"tableflip.dev/chairside/pkg/session"
	"tableflip.dev/chairside/pkg/store"
)

func addVisits(topLevel *cobra.Command) {
	uo := &options.UserOptions{}
	month := ""

	cmd := &cobra.Command{
		Use:   "visits",
		Short: "show the month's patient visits from clinical notes",
		Example: `
chairside visits
chairside visits --user u2 --month 2026-02
`,
		RunE: func(cmd *cobra.Command, args []string) error {
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

			on := time.Now()
			if month != "" {
				on, err = time.Parse("2006-01", month)
				if err != nil {
					return fmt.Errorf("bad month %q, want YYYY-MM", month)
				}
			}

			notes := sess.Notes()
			pp := printers.PrettyPrint{}
			pp.NewLine()
			pp.Calendar(on, notes...)
			pp.Agenda(on, notes...)
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Month to show, YYYY-MM. Defaults to the current month.")
	options.AddUserArgs(cmd, uo)
	topLevel.AddCommand(cmd)
}

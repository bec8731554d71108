package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/chairside/pkg/commands/options"
	"tableflip.dev/chairside/pkg/note"
	"tableflip.dev/chairside/pkg/note/viewmodel"
	"tableflip.dev/chairside/pkg/printers"
	"tableflip.dev/chairside/pkg/session"
	"tableflip.dev/chairside/pkg/store"
	"tableflip.dev/chairside/pkg/timeutil"
)

func addGet(topLevel *cobra.Command) {
	uo := &options.UserOptions{}
	fo := &options.FilterOptions{}

	long := strings.Builder{}
	long.WriteString("Get the notes a view shows for one profile.\n\n")
	long.WriteString("Views:\n")
	long.WriteString("  all, pinned, recent, archived, trash\n")
	long.WriteString("  or any tag label, e.g. \"Patient Care\"\n")

	cmd := &cobra.Command{
		Use:   "get [view]",
		Short: "get the notes a view shows",
		Long:  long.String(),
		Example: `
chairside get
chairside get pinned --user u2
chairside get "Patient Care" --query crown --body
chairside get all --since 2d
`,
		ValidArgs: []string{"all", "pinned", "recent", "archived", "trash"},
		Args:      cobra.MaximumNArgs(1),
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

			view := "all"
			if len(args) == 1 {
				view = args[0]
			}
			key, title, err := resolveView(view, sess.Tags())
			if err != nil {
				return err
			}
			sess.SetNavigation(key)
			sess.SetSearch(fo.Query)

			notes := sess.VisibleNotes()
			if fo.Since != "" {
				window, _, err := timeutil.ParseWindow(fo.Since)
				if err != nil {
					return err
				}
				notes = updatedWithin(notes, window, time.Now())
			}

			pp := printers.PrettyPrint{ShowBody: fo.Body}
			pp.NewLine()
			pp.TitleWithCount(title, len(notes))
			pp.Notes(notes...)
			return nil
		},
	}

	options.AddUserArgs(cmd, uo)
	options.AddFilterArgs(cmd, fo)
	topLevel.AddCommand(cmd)
}

// resolveView maps a view argument to a navigation key. Built-in view
// names win; anything else matches a tag by label (case-insensitive) or
// by id.
func resolveView(arg string, tags []note.Tag) (viewmodel.NavKey, string, error) {
	switch strings.ToLower(arg) {
	case "all":
		return viewmodel.NavAll, "All Notes", nil
	case "pinned":
		return viewmodel.NavPinned, "Pinned", nil
	case "recent":
		return viewmodel.NavRecent, "Recent", nil
	case "archived":
		return viewmodel.NavArchived, "Archived", nil
	case "trash":
		return viewmodel.NavTrash, "Trash", nil
	}
	for _, t := range tags {
		if strings.EqualFold(t.Label, arg) || t.ID == arg {
			return viewmodel.NavKey(t.ID), t.Label, nil
		}
	}
	return viewmodel.NavAll, "", fmt.Errorf("unknown view %q, try: chairside tags", arg)
}

func updatedWithin(notes []note.Note, window time.Duration, now time.Time) []note.Note {
	cutoff := now.Add(-window)
	kept := make([]note.Note, 0, len(notes))
	for _, n := range notes {
		if !n.UpdatedAt.Before(cutoff) {
			kept = append(kept, n)
		}
	}
	return kept
}

package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/chairside/pkg/note"
	"tableflip.dev/chairside/pkg/profile"
	"tableflip.dev/chairside/pkg/timeutil"
)

// PrettyPrint renders notes and reference tables for the CLI.
type PrettyPrint struct {
	ShowBody bool
	Width    int
	Now      time.Time
}

func (pp *PrettyPrint) now() time.Time {
	if pp.Now.IsZero() {
		return time.Now()
	}
	return pp.Now
}

func (pp *PrettyPrint) width() int {
	if pp.Width <= 0 {
		return 76
	}
	return pp.Width
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" note")
	default:
		_, _ = c.Println(" notes")
	}
}

// Notes prints a note listing, one row per note, with lifecycle markers,
// tag labels, and a relative edit time. With ShowBody set, the wrapped
// content follows each row.
func (pp *PrettyPrint) Notes(notes ...note.Note) {
	if len(notes) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 40

	for _, n := range notes {
		tbl.AddRow(markers(n), n.Title, tagLabels(n.Tags), timeutil.Relative(n.UpdatedAt, pp.now()))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)

	if !pp.ShowBody {
		return
	}
	body := color.New(color.Faint)
	for _, n := range notes {
		pp.NewLine()
		pp.Title(n.Title)
		if n.PersonName != "" {
			_, _ = body.Printf("Patient: %s\n", n.PersonName)
		}
		if n.EventDate != nil {
			_, _ = body.Printf("Visit: %s\n", n.EventDate.Format("January 2, 2006 3:04 PM"))
		}
		fmt.Println(wordwrap.String(n.Content, pp.width()))
	}
}

// Counts prints the per-view badge numbers in sidebar order, then one row
// per registered tag.
func (pp *PrettyPrint) Counts(counts map[string]int, views []string, tags []note.Tag) {
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, v := range views {
		tbl.AddRow(v, counts[v])
	}
	for _, t := range tags {
		tbl.AddRow(t.Label, counts[t.ID])
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Users prints the practice roster.
func (pp *PrettyPrint) Users(users []profile.UserProfile) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("ID", "NAME", "ROLE", "SPECIALTY")
	for _, u := range users {
		tbl.AddRow(u.ID, u.Name, u.Role, u.Specialty)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Tags prints the tag registry in display order.
func (pp *PrettyPrint) Tags(tags []note.Tag) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("ID", "LABEL", "COLOR")
	for _, t := range tags {
		tbl.AddRow(t.ID, t.Label, t.Color)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func markers(n note.Note) string {
	var b strings.Builder
	if n.Pinned {
		b.WriteString("★")
	}
	if n.Archived {
		b.WriteString("▣")
	}
	if n.Trashed {
		b.WriteString("✗")
	}
	if b.Len() == 0 {
		return "·"
	}
	return b.String()
}

func tagLabels(tags []note.Tag) string {
	labels := make([]string, 0, len(tags))
	for _, t := range tags {
		labels = append(labels, t.Label)
	}
	return strings.Join(labels, ", ")
}

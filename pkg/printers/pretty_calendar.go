package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/chairside/pkg/note"
)

// Calendar prints a month grid for the month containing on, bolding days
// that have a scheduled visit.
func (pp *PrettyPrint) Calendar(on time.Time, notes ...note.Note) {
	then := time.Date(on.Year(), on.Month(), 1, 1, 0, 0, 0, time.Local)
	days := daysIn(then)

	count := make([]int, days)
	for _, n := range notes {
		if n.EventDate == nil {
			continue
		}
		d := n.EventDate.Local()
		if d.Year() == then.Year() && d.Month() == then.Month() {
			count[d.Day()-1]++
		}
	}

	pp.printMonthCount(then, count)
}

const gridWidth = len("11 12 13 14 15 16 17") // an example week

func (pp *PrettyPrint) printMonthCount(then time.Time, count []int) {
	d := startDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (gridWidth - len(m)) / 2
	_, _ = tf.Printf("%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", gridWidth-mid-len(m)))

	days := daysIn(then)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		fmt.Print("   ")
	}

	quiet := color.New(color.Faint, color.FgWhite)
	busy := color.New(color.Bold, color.FgHiWhite)

	for i := 0; i < days; i++ {
		if i < len(count) && count[i] > 0 {
			_, _ = busy.Printf("%2d ", i+1)
		} else {
			_, _ = quiet.Printf("%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			fmt.Print("\n")
		}
	}
	fmt.Print("\n\n")
}

// Agenda prints the visits of the month containing on, one line per
// scheduled note, ordered by day. Notes without a visit date are listed
// under Unscheduled.
func (pp *PrettyPrint) Agenda(on time.Time, notes ...note.Note) {
	p := color.New()
	day := color.New(color.Bold)
	open := color.New(color.Italic)

	then := time.Date(on.Year(), on.Month(), 1, 1, 0, 0, 0, time.Local)
	printed := false
	for i := 1; i <= daysIn(then); i++ {
		for _, n := range notes {
			if n.EventDate == nil {
				continue
			}
			d := n.EventDate.Local()
			if d.Year() != then.Year() || d.Month() != then.Month() || d.Day() != i {
				continue
			}
			_, _ = day.Printf("%2d %s ", i, d.Format("3:04 PM"))
			if n.PersonName != "" {
				_, _ = p.Printf("%s — %s\n", n.PersonName, n.Title)
			} else {
				_, _ = p.Printf("%s\n", n.Title)
			}
			printed = true
		}
	}
	if !printed {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no visits this month\n")
	}

	unscheduled := make([]note.Note, 0, len(notes))
	for _, n := range notes {
		if n.EventDate == nil && n.PersonName != "" {
			unscheduled = append(unscheduled, n)
		}
	}
	if len(unscheduled) > 0 {
		_, _ = open.Printf("\nUnscheduled\n")
		for _, n := range unscheduled {
			_, _ = p.Printf("%s — %s\n", n.PersonName, n.Title)
		}
	}
}

func daysIn(then time.Time) int {
	return time.Date(then.UTC().Year(), then.UTC().Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func startDay(then time.Time) time.Weekday {
	return time.Date(then.UTC().Year(), then.UTC().Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}

// Package editor renders the detail pane for the selected note and hosts
// the inline title and append inputs.
package editor

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/chairside/pkg/note"
	"tableflip.dev/chairside/pkg/timeutil"
	"tableflip.dev/chairside/pkg/tui/events"
	"tableflip.dev/chairside/pkg/tui/theme"
)

type editField int

const (
	editNone editField = iota
	editTitle
	editAppend
)

// Model is the note detail pane.
type Model struct {
	theme theme.EditorTheme

	note  *note.Note
	field editField
	input textinput.Model

	now    time.Time
	width  int
	height int
}

// NewModel constructs an empty detail pane.
func NewModel(th theme.EditorTheme) *Model {
	input := textinput.New()
	return &Model{theme: th, input: input, now: time.Now()}
}

// SetNote replaces the rendered note. A nil note clears the pane and
// cancels any edit in progress.
func (m *Model) SetNote(n *note.Note) {
	m.note = n
	if n == nil {
		m.Cancel()
	}
}

// SetNow fixes the reference time for relative timestamps.
func (m *Model) SetNow(now time.Time) { m.now = now }

// SetSize updates the pane dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.SetWidth(width - 4)
}

// StartTitleEdit opens the title input seeded with the current title.
func (m *Model) StartTitleEdit() tea.Cmd {
	if m.note == nil || m.note.Trashed {
		return nil
	}
	m.field = editTitle
	m.input.Prompt = "title: "
	m.input.Placeholder = ""
	m.input.SetValue(m.note.Title)
	m.input.CursorEnd()
	return tea.Batch(m.input.Focus(), textinput.Blink)
}

// StartAppend opens an input whose text is appended to the note body as a
// new line on commit.
func (m *Model) StartAppend() tea.Cmd {
	if m.note == nil || m.note.Trashed {
		return nil
	}
	m.field = editAppend
	m.input.Prompt = "+ "
	m.input.Placeholder = "Add a line…"
	m.input.SetValue("")
	return tea.Batch(m.input.Focus(), textinput.Blink)
}

// Editing reports whether an input owns the keyboard.
func (m *Model) Editing() bool { return m.field != editNone }

// Commit closes the active input and emits the resulting draft.
func (m *Model) Commit() tea.Cmd {
	if m.note == nil || m.field == editNone {
		return nil
	}
	draft := events.DraftSavedMsg{
		ID:         m.note.ID,
		Title:      m.note.Title,
		Content:    m.note.Content,
		PersonName: m.note.PersonName,
	}
	switch m.field {
	case editTitle:
		draft.Title = m.input.Value()
	case editAppend:
		line := m.input.Value()
		if strings.TrimSpace(line) == "" {
			m.Cancel()
			return nil
		}
		if draft.Content == "" {
			draft.Content = line
		} else {
			draft.Content += "\n" + line
		}
	}
	m.Cancel()
	return func() tea.Msg { return draft }
}

// Cancel closes the active input without saving.
func (m *Model) Cancel() {
	m.field = editNone
	m.input.Blur()
	m.input.SetValue("")
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update forwards messages to the active input.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.field == editNone {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the pane.
func (m *Model) View() string {
	if m.note == nil {
		empty := m.theme.Meta.Render("Select a note to read it here.")
		return m.theme.Frame.Width(m.width).Render(empty)
	}
	n := m.note

	var b strings.Builder
	titleStyle := m.theme.Title
	if n.Trashed {
		titleStyle = m.theme.Trashed
	}
	b.WriteString(titleStyle.Render(n.Title) + "\n")
	b.WriteString(m.theme.Meta.Render(m.metaLine(n)) + "\n")

	if pills := m.tagPills(n.Tags); pills != "" {
		b.WriteString(pills + "\n")
	}
	b.WriteString("\n")

	body := wordwrap.String(n.Content, max(m.width-4, 20))
	if n.Trashed {
		b.WriteString(m.theme.Trashed.Render(body) + "\n")
		b.WriteString("\n" + m.theme.Meta.Render("In trash. Restore to edit, delete again to remove for good.") + "\n")
	} else {
		b.WriteString(m.theme.Body.Render(body) + "\n")
	}

	if m.field != editNone {
		b.WriteString("\n" + m.input.View() + "\n")
	}
	return m.theme.Frame.Width(m.width).Render(strings.TrimRight(b.String(), "\n"))
}

func (m *Model) metaLine(n *note.Note) string {
	parts := []string{"Updated " + timeutil.Relative(n.UpdatedAt, m.now)}
	if n.PersonName != "" {
		parts = append(parts, "Patient: "+n.PersonName)
	}
	if n.EventDate != nil {
		parts = append(parts, "Visit: "+n.EventDate.Format("Jan 2, 2006"))
	}
	if n.Pinned {
		parts = append(parts, "Pinned")
	}
	if n.Archived {
		parts = append(parts, "Archived")
	}
	return strings.Join(parts, " · ")
}

func (m *Model) tagPills(tags []note.Tag) string {
	pills := make([]string, 0, len(tags))
	for _, t := range tags {
		pill := m.theme.TagPill.
			Background(lipgloss.Color(t.Color)).
			Foreground(theme.Readable(t.Color)).
			Render(t.Label)
		pills = append(pills, pill)
	}
	return strings.Join(pills, " ")
}

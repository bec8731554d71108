// Package noteslist renders the middle pane: the visible notes for the
// active view, with an inline search input narrowing within it.
package noteslist

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/chairside/pkg/note"
	"tableflip.dev/chairside/pkg/timeutil"
	"tableflip.dev/chairside/pkg/tui/events"
	"tableflip.dev/chairside/pkg/tui/theme"
)

// Model is the note list pane.
type Model struct {
	theme theme.ListTheme

	title      string
	notes      []note.Note
	selectedID string
	cursor     int

	searching bool
	search    textinput.Model

	now    time.Time
	width  int
	height int
}

// NewModel constructs an empty list pane.
func NewModel(th theme.ListTheme) *Model {
	search := textinput.New()
	search.Placeholder = "Search notes…"
	search.Prompt = "/ "
	return &Model{theme: th, search: search, now: time.Now()}
}

// SetNotes replaces the rendered subset. When the selected note is in the
// subset the cursor follows it; otherwise the cursor clamps into range.
func (m *Model) SetNotes(notes []note.Note, selectedID string) {
	m.notes = notes
	m.selectedID = selectedID
	if selectedID != "" {
		for i, n := range notes {
			if n.ID == selectedID {
				m.cursor = i
				return
			}
		}
	}
	if m.cursor >= len(notes) {
		m.cursor = len(notes) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// SetTitle sets the pane heading (the active view's label).
func (m *Model) SetTitle(title string) { m.title = title }

// SetNow fixes the reference time for relative timestamps.
func (m *Model) SetNow(now time.Time) { m.now = now }

// SetSize updates the pane dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.search.SetWidth(width - 4)
}

// MoveCursor moves the highlight, clamped to the subset.
func (m *Model) MoveCursor(delta int) {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.notes) {
		m.cursor = len(m.notes) - 1
	}
}

// CursorID returns the highlighted note id, or false for an empty subset.
func (m *Model) CursorID() (string, bool) {
	if m.cursor < 0 || m.cursor >= len(m.notes) {
		return "", false
	}
	return m.notes[m.cursor].ID, true
}

// Activate returns a command selecting the highlighted note.
func (m *Model) Activate() tea.Cmd {
	id, ok := m.CursorID()
	if !ok {
		return nil
	}
	return events.NoteSelectedCmd(id)
}

// StartSearch focuses the search input.
func (m *Model) StartSearch() tea.Cmd {
	m.searching = true
	return tea.Batch(m.search.Focus(), textinput.Blink)
}

// EndSearch blurs the input. With clear set the query is dropped too.
func (m *Model) EndSearch(clear bool) tea.Cmd {
	m.searching = false
	m.search.Blur()
	if clear {
		m.search.SetValue("")
		return searchChangedCmd("")
	}
	return nil
}

// Searching reports whether the search input owns the keyboard.
func (m *Model) Searching() bool { return m.searching }

// Query returns the current search text.
func (m *Model) Query() string { return m.search.Value() }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update forwards messages to the search input while it is focused and
// reports query changes upward.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.searching {
		return m, nil
	}
	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if after := m.search.Value(); after != before {
		return m, tea.Batch(cmd, searchChangedCmd(after))
	}
	return m, cmd
}

// View renders the pane.
func (m *Model) View() string {
	var b strings.Builder

	heading := m.theme.TitleActive.Render(m.title)
	count := m.theme.Meta.Render(fmt.Sprintf(" · %d", len(m.notes)))
	b.WriteString(heading + count + "\n")

	if m.searching || m.search.Value() != "" {
		b.WriteString(m.theme.SearchPrompt.Render(m.search.View()) + "\n")
	}
	b.WriteString("\n")

	if len(m.notes) == 0 {
		b.WriteString(m.theme.Empty.Render("No notes here yet.") + "\n")
		return m.theme.Frame.Width(m.width).Render(strings.TrimRight(b.String(), "\n"))
	}

	for i, n := range m.notes {
		b.WriteString(m.renderNote(i, n) + "\n")
	}
	return m.theme.Frame.Width(m.width).Render(strings.TrimRight(b.String(), "\n"))
}

func (m *Model) renderNote(i int, n note.Note) string {
	prefix := "  "
	if i == m.cursor {
		prefix = "> "
	}
	titleStyle := m.theme.Title
	if n.ID == m.selectedID {
		titleStyle = m.theme.TitleActive
	}

	var markers []string
	if n.Pinned {
		markers = append(markers, m.theme.Marker.Render("★"))
	}
	if n.Archived {
		markers = append(markers, m.theme.Marker.Render("▣"))
	}
	if n.Trashed {
		markers = append(markers, m.theme.Marker.Render("✗"))
	}

	line := prefix + titleStyle.Render(n.Title)
	if len(markers) > 0 {
		line += " " + strings.Join(markers, "")
	}

	meta := timeutil.Relative(n.UpdatedAt, m.now)
	if labels := tagLabels(n.Tags); labels != "" {
		meta += " · " + labels
	}
	return line + "\n    " + m.theme.Meta.Render(meta)
}

func tagLabels(tags []note.Tag) string {
	labels := make([]string, 0, len(tags))
	for _, t := range tags {
		labels = append(labels, t.Label)
	}
	return strings.Join(labels, ", ")
}

func searchChangedCmd(query string) tea.Cmd {
	return func() tea.Msg {
		return events.SearchChangedMsg{Query: query}
	}
}

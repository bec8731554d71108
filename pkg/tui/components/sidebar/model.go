// Package sidebar renders the navigation pane: the active profile, the
// built-in views with their counts, and the tag registry in display
// order.
package sidebar

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/chairside/pkg/note"
	"tableflip.dev/chairside/pkg/note/viewmodel"
	"tableflip.dev/chairside/pkg/profile"
	"tableflip.dev/chairside/pkg/tui/events"
	"tableflip.dev/chairside/pkg/tui/theme"
)

var viewLabels = map[viewmodel.NavKey]string{
	viewmodel.NavAll:      "All Notes",
	viewmodel.NavPinned:   "Pinned",
	viewmodel.NavRecent:   "Recent",
	viewmodel.NavArchived: "Archived",
	viewmodel.NavTrash:    "Trash",
}

type rowKind int

const (
	rowView rowKind = iota
	rowTag
)

type row struct {
	kind  rowKind
	key   viewmodel.NavKey
	label string
	color string
	count int
}

// Model is the sidebar pane.
type Model struct {
	theme  theme.SidebarTheme
	user   profile.UserProfile
	rows   []row
	cursor int
	active viewmodel.NavKey

	width  int
	height int
}

// NewModel constructs an empty sidebar.
func NewModel(th theme.SidebarTheme) *Model {
	return &Model{theme: th, active: viewmodel.NavAll}
}

// SetUser sets the profile rendered in the header.
func (m *Model) SetUser(u profile.UserProfile) {
	m.user = u
}

// SetData replaces the rendered rows from a fresh derivation. The cursor
// stays on the same row index when possible.
func (m *Model) SetData(tags []note.Tag, counts map[string]int, active viewmodel.NavKey) {
	rows := make([]row, 0, len(viewLabels)+len(tags))
	for _, key := range viewmodel.BuiltinKeys() {
		rows = append(rows, row{
			kind:  rowView,
			key:   key,
			label: viewLabels[key],
			count: counts[string(key)],
		})
	}
	for _, t := range tags {
		rows = append(rows, row{
			kind:  rowTag,
			key:   viewmodel.NavKey(t.ID),
			label: t.Label,
			color: t.Color,
			count: counts[t.ID],
		})
	}
	m.rows = rows
	m.active = active
	if m.cursor >= len(rows) {
		m.cursor = len(rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// SetSize updates the pane dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// MoveCursor moves the highlight up or down, clamped to the row range.
func (m *Model) MoveCursor(delta int) {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
}

// Activate returns a command switching navigation to the highlighted row.
func (m *Model) Activate() tea.Cmd {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}
	return events.NavChangedCmd(m.rows[m.cursor].key)
}

// CursorTagID returns the highlighted tag id, or false when the cursor is
// on a built-in view.
func (m *Model) CursorTagID() (string, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return "", false
	}
	r := m.rows[m.cursor]
	if r.kind != rowTag {
		return "", false
	}
	return string(r.key), true
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model; the root model drives the sidebar through
// the explicit methods instead.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the pane.
func (m *Model) View() string {
	var b strings.Builder

	badgeBg := theme.Blend(m.user.Gradient[0], m.user.Gradient[1])
	badge := m.theme.AvatarBadge.
		Background(badgeBg).
		Foreground(theme.Readable(m.user.Gradient[0])).
		Render(m.user.Initials)
	b.WriteString(badge + " " + m.theme.UserName.Render(m.user.Name) + "\n")
	b.WriteString(m.theme.UserRole.Render(m.user.Role) + "\n\n")

	b.WriteString(m.theme.Heading.Render("VIEWS") + "\n")
	for i, r := range m.rows {
		if r.kind == rowTag && (i == 0 || m.rows[i-1].kind == rowView) {
			b.WriteString("\n" + m.theme.Heading.Render("TAGS") + "\n")
		}
		b.WriteString(m.renderRow(i, r) + "\n")
	}

	return m.theme.Frame.Width(m.width).Render(strings.TrimRight(b.String(), "\n"))
}

func (m *Model) renderRow(i int, r row) string {
	style := m.theme.Item
	prefix := "  "
	if r.key == m.active {
		style = m.theme.ItemActive
	}
	if i == m.cursor {
		prefix = "> "
	}
	label := r.label
	if r.kind == rowTag {
		label = theme.Swatch(r.color).Render("●") + " " + label
	}
	count := m.theme.Count.Render(fmt.Sprintf("%d", r.count))
	return prefix + style.Render(label) + " " + count
}

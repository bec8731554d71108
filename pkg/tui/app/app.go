// Package teaui hosts the Bubble Tea program for the chairside TUI.
package teaui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/chairside/pkg/note"
	"tableflip.dev/chairside/pkg/note/viewmodel"
	"tableflip.dev/chairside/pkg/session"
	"tableflip.dev/chairside/pkg/tui/components/editor"
	"tableflip.dev/chairside/pkg/tui/components/noteslist"
	"tableflip.dev/chairside/pkg/tui/components/sidebar"
	"tableflip.dev/chairside/pkg/tui/components/userselect"
	"tableflip.dev/chairside/pkg/tui/events"
	"tableflip.dev/chairside/pkg/tui/theme"
)

const (
	focusSidebar = iota
	focusList
)

var navTitles = map[viewmodel.NavKey]string{
	viewmodel.NavAll:      "All Notes",
	viewmodel.NavPinned:   "Pinned",
	viewmodel.NavRecent:   "Recent",
	viewmodel.NavArchived: "Archived",
	viewmodel.NavTrash:    "Trash",
}

// Model contains UI state. All note state lives in the session; the
// model only mirrors it into the panes after each operation.
type Model struct {
	sess  *session.Session
	delay time.Duration
	theme theme.Theme

	picker  *userselect.Model
	sidebar *sidebar.Model
	list    *noteslist.Model
	editor  *editor.Model

	focus  int
	status string

	termWidth  int
	termHeight int
}

// New creates a UI model over the given session. The delay is how long a
// profile selection pretends to load before the workspace appears.
func New(sess *session.Session, delay time.Duration) *Model {
	th := theme.Default()
	m := &Model{
		sess:    sess,
		delay:   delay,
		theme:   th,
		picker:  userselect.NewModel(sess.Users()),
		sidebar: sidebar.NewModel(th.Sidebar),
		list:    noteslist.NewModel(th.List),
		editor:  editor.NewModel(th.Editor),
		focus:   focusList,
	}
	// The session may arrive preloaded (config names a startup profile).
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

func loadUserCmd(userID string, delay time.Duration) tea.Cmd {
	return func() tea.Msg {
		if delay > 0 {
			time.Sleep(delay)
		}
		return events.UserLoadedMsg{UserID: userID}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
	case events.UserPickedMsg:
		if m.sess.SelectUser(msg.UserID) {
			cmds = append(cmds, loadUserCmd(msg.UserID, m.delay))
		}
	case events.UserLoadedMsg:
		m.sess.CompleteLoad()
		m.focus = focusList
		m.refresh()
	case events.NavChangedMsg:
		m.sess.SetNavigation(msg.Key)
		m.refresh()
	case events.NoteSelectedMsg:
		m.sess.SelectNote(msg.ID)
		m.refresh()
	case events.SearchChangedMsg:
		m.sess.SetSearch(msg.Query)
		m.refresh()
	case events.DraftSavedMsg:
		m.applyDraft(msg)
		m.refresh()
	case tea.KeyPressMsg:
		handled := m.handleKeyPress(msg, &cmds)
		if !handled && m.sess.State() == session.StateNoUser {
			var cmd tea.Cmd
			_, cmd = m.picker.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKeyPress(msg tea.KeyPressMsg, cmds *[]tea.Cmd) bool {
	switch m.sess.State() {
	case session.StateNoUser:
		return m.handlePickerKey(msg, cmds)
	case session.StateLoading:
		return m.handleLoadingKey(msg, cmds)
	case session.StateActive:
		return m.handleActiveKey(msg, cmds)
	default:
		return true
	}
}

func (m *Model) handlePickerKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) bool {
	switch msg.String() {
	case "enter":
		if id := m.picker.SelectedID(); id != "" {
			*cmds = append(*cmds, events.UserPickedCmd(id))
		}
		return true
	case "q", "ctrl+c":
		*cmds = append(*cmds, tea.Quit)
		return true
	default:
		return false
	}
}

func (m *Model) handleLoadingKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) bool {
	// Picking another profile mid-load is allowed; the later pick wins.
	switch msg.String() {
	case "ctrl+c":
		*cmds = append(*cmds, tea.Quit)
		return true
	default:
		return true
	}
}

func (m *Model) handleActiveKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) bool {
	if m.list.Searching() {
		return m.handleSearchKey(msg, cmds)
	}
	if m.editor.Editing() {
		return m.handleEditKey(msg, cmds)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		*cmds = append(*cmds, tea.Quit)
		return true
	case "tab", "h", "l", "left", "right":
		if m.focus == focusSidebar {
			m.focus = focusList
		} else {
			m.focus = focusSidebar
		}
		return true
	case "j", "down":
		if m.focus == focusSidebar {
			m.sidebar.MoveCursor(1)
		} else {
			m.list.MoveCursor(1)
		}
		return true
	case "k", "up":
		if m.focus == focusSidebar {
			m.sidebar.MoveCursor(-1)
		} else {
			m.list.MoveCursor(-1)
		}
		return true
	case "enter":
		if m.focus == focusSidebar {
			*cmds = append(*cmds, m.sidebar.Activate())
		} else {
			*cmds = append(*cmds, m.list.Activate())
		}
		return true
	case "/":
		m.focus = focusList
		*cmds = append(*cmds, m.list.StartSearch())
		return true
	case "n":
		if n, ok := m.sess.NewNote(); ok {
			m.setStatus("Created " + n.Title)
			m.refresh()
		}
		return true
	case "p":
		if n, ok := m.sess.SelectedNote(); ok {
			m.sess.TogglePin(n.ID)
			m.refresh()
		}
		return true
	case "a":
		if n, ok := m.sess.SelectedNote(); ok {
			m.sess.ToggleArchive(n.ID)
			m.refresh()
		}
		return true
	case "d":
		if n, ok := m.sess.SelectedNote(); ok {
			if n.Trashed {
				m.setStatus("Deleted " + n.Title)
			} else {
				m.setStatus("Moved to trash: " + n.Title)
			}
			m.sess.DeleteNote(n.ID)
			m.refresh()
		}
		return true
	case "r":
		if n, ok := m.sess.SelectedNote(); ok && n.Trashed {
			m.sess.RestoreNote(n.ID)
			m.setStatus("Restored " + n.Title)
			m.refresh()
		}
		return true
	case "e":
		*cmds = append(*cmds, m.editor.StartTitleEdit())
		return true
	case "o":
		*cmds = append(*cmds, m.editor.StartAppend())
		return true
	case "x":
		if id, ok := m.sidebar.CursorTagID(); ok && m.focus == focusSidebar {
			m.sess.DeleteTag(id)
			m.setStatus("Tag removed from all notes")
			m.refresh()
		}
		return true
	case "J":
		m.moveTag(1)
		return true
	case "K":
		m.moveTag(-1)
		return true
	case "u":
		m.sess.SwitchUser()
		m.picker.SetUsers(m.sess.Users())
		m.setStatus("")
		return true
	default:
		return false
	}
}

func (m *Model) handleSearchKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) bool {
	switch msg.String() {
	case "esc":
		*cmds = append(*cmds, m.list.EndSearch(true))
		return true
	case "enter":
		*cmds = append(*cmds, m.list.EndSearch(false))
		return true
	default:
		var cmd tea.Cmd
		_, cmd = m.list.Update(msg)
		*cmds = append(*cmds, cmd)
		return false
	}
}

func (m *Model) handleEditKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) bool {
	switch msg.String() {
	case "esc":
		m.editor.Cancel()
		return true
	case "enter":
		*cmds = append(*cmds, m.editor.Commit())
		return true
	default:
		var cmd tea.Cmd
		_, cmd = m.editor.Update(msg)
		*cmds = append(*cmds, cmd)
		return false
	}
}

// moveTag shifts the tag under the sidebar cursor one slot and keeps the
// cursor on it.
func (m *Model) moveTag(delta int) {
	if m.focus != focusSidebar {
		return
	}
	id, ok := m.sidebar.CursorTagID()
	if !ok {
		return
	}
	tags := m.sess.Tags()
	idx := -1
	for i, t := range tags {
		if t.ID == id {
			idx = i
			break
		}
	}
	target := idx + delta
	if idx < 0 || target < 0 || target >= len(tags) {
		return
	}
	tags[idx], tags[target] = tags[target], tags[idx]
	m.sess.ReorderTags(tags)
	m.sidebar.MoveCursor(delta)
	m.refresh()
}

func (m *Model) applyDraft(msg events.DraftSavedMsg) {
	var current note.Note
	found := false
	for _, n := range m.sess.Notes() {
		if n.ID == msg.ID {
			current = n
			found = true
			break
		}
	}
	if !found {
		return
	}
	m.sess.UpdateNote(msg.ID, session.Draft{
		Title:      msg.Title,
		Content:    msg.Content,
		PersonName: msg.PersonName,
		EventDate:  current.EventDate,
		Tags:       current.Tags,
	})
}

// refresh mirrors the session into the panes. Everything shown is
// re-derived; the panes hold no note state of their own.
func (m *Model) refresh() {
	if m.sess.State() != session.StateActive {
		return
	}
	if u, ok := m.sess.ActiveUser(); ok {
		m.sidebar.SetUser(u)
	}
	tags := m.sess.Tags()
	m.sidebar.SetData(tags, m.sess.Counts(), m.sess.Navigation())

	m.list.SetTitle(m.navTitle(m.sess.Navigation(), tags))
	selID := ""
	if n, ok := m.sess.SelectedNote(); ok {
		selID = n.ID
	}
	m.list.SetNotes(m.sess.VisibleNotes(), selID)

	if n, ok := m.sess.SelectedNote(); ok {
		m.editor.SetNote(&n)
	} else {
		m.editor.SetNote(nil)
	}
}

func (m *Model) navTitle(key viewmodel.NavKey, tags []note.Tag) string {
	if title, ok := navTitles[key]; ok {
		return title
	}
	for _, t := range tags {
		if t.ID == string(key) {
			return t.Label
		}
	}
	return navTitles[viewmodel.NavAll]
}

func (m *Model) setStatus(s string) { m.status = s }

func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	m.picker.SetSize(m.termWidth, m.termHeight-4)
	side := m.termWidth / 4
	if side < 22 {
		side = 22
	}
	rest := m.termWidth - side
	listW := rest / 2
	body := m.termHeight - 3
	m.sidebar.SetSize(side, body)
	m.list.SetSize(listW, body)
	m.editor.SetSize(rest-listW, body)
}

// View implements tea.Model.
func (m *Model) View() string {
	switch m.sess.State() {
	case session.StateNoUser:
		title := m.theme.Picker.Title.Render("Chairside")
		sub := m.theme.Picker.Subtitle.Render("Who is at the chair today?")
		return title + "\n" + sub + "\n\n" + m.picker.View()
	case session.StateLoading:
		name := "profile"
		if u, ok := m.sess.PendingUser(); ok {
			name = u.Name
		}
		return m.theme.Picker.Loading.Render("Loading notes for " + name + "…")
	default:
		body := lipgloss.JoinHorizontal(lipgloss.Top,
			m.sidebar.View(), m.list.View(), m.editor.View())
		return body + "\n\n" + m.footer()
	}
}

func (m *Model) footer() string {
	help := "j/k move · enter open · n new · p pin · a archive · d delete · r restore · / search · u switch · q quit"
	line := m.theme.Footer.Help.Render(help)
	if m.status != "" {
		line += "  " + m.theme.Footer.Status.Render(m.status)
	}
	return line
}

// Run launches the interactive TUI program.
func Run(sess *session.Session, delay time.Duration) error {
	p := tea.NewProgram(New(sess, delay), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

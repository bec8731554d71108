// Package userselect renders the profile picker shown before a sitting
// starts.
package userselect

import (
	"github.com/charmbracelet/bubbles/v2/list"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/chairside/pkg/profile"
)

// Model wraps a bubbles list over the practice roster.
type Model struct {
	list list.Model
}

// NewModel constructs the picker with the provided roster.
func NewModel(users []profile.UserProfile) *Model {
	delegate := list.NewDefaultDelegate()
	l := list.New(itemsFromUsers(users), delegate, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	return &Model{list: l}
}

// SetUsers replaces the rendered roster.
func (m *Model) SetUsers(users []profile.UserProfile) {
	m.list.SetItems(itemsFromUsers(users))
}

// SetSize updates the list dimensions.
func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// SelectedID returns the highlighted profile id, or "" when the roster is
// empty.
func (m *Model) SelectedID() string {
	sel := m.list.SelectedItem()
	if sel == nil {
		return ""
	}
	if item, ok := sel.(profileItem); ok {
		return item.user.ID
	}
	return ""
}

// Select moves the highlight to the profile with the given id.
func (m *Model) Select(userID string) {
	for i, it := range m.list.Items() {
		if item, ok := it.(profileItem); ok && item.user.ID == userID {
			m.list.Select(i)
			return
		}
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update forwards Bubble Tea messages to the list.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the list.
func (m *Model) View() string {
	return m.list.View()
}

func itemsFromUsers(users []profile.UserProfile) []list.Item {
	items := make([]list.Item, 0, len(users))
	for _, u := range users {
		items = append(items, profileItem{user: u})
	}
	return items
}

type profileItem struct {
	user profile.UserProfile
}

func (p profileItem) Title() string {
	return p.user.Initials + "  " + p.user.Name
}

func (p profileItem) Description() string {
	return p.user.Role + " · " + p.user.Specialty
}

func (p profileItem) FilterValue() string { return p.user.Name }

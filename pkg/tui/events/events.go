// Package events defines the typed Bubble Tea messages components use to
// talk to the root model without importing it.
package events

import (
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/chairside/pkg/note/viewmodel"
)

// UserPickedMsg is emitted when a profile is chosen on the picker screen.
type UserPickedMsg struct {
	UserID string
}

// UserLoadedMsg is emitted once the simulated load delay for a selected
// profile has elapsed.
type UserLoadedMsg struct {
	UserID string
}

// NavChangedMsg is emitted when the sidebar activates a navigation key.
type NavChangedMsg struct {
	Key viewmodel.NavKey
}

// NoteSelectedMsg is emitted when the list highlights a note.
type NoteSelectedMsg struct {
	ID string
}

// SearchChangedMsg carries the live search query from the list pane.
type SearchChangedMsg struct {
	Query string
}

// TagDeletedMsg asks the session to delete a tag from the registry.
type TagDeletedMsg struct {
	ID string
}

// TagsReorderedMsg carries a wholesale replacement of registry order.
type TagsReorderedMsg struct {
	IDs []string
}

// DraftSavedMsg carries edited note fields from the editor pane.
type DraftSavedMsg struct {
	ID         string
	Title      string
	Content    string
	PersonName string
}

// UserPickedCmd wraps a UserPickedMsg in a command.
func UserPickedCmd(userID string) tea.Cmd {
	return func() tea.Msg {
		return UserPickedMsg{UserID: userID}
	}
}

// NavChangedCmd wraps a NavChangedMsg in a command.
func NavChangedCmd(key viewmodel.NavKey) tea.Cmd {
	return func() tea.Msg {
		return NavChangedMsg{Key: key}
	}
}

// NoteSelectedCmd wraps a NoteSelectedMsg in a command.
func NoteSelectedCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return NoteSelectedMsg{ID: id}
	}
}

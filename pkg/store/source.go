// Package store defines the seed-data contract the session consumes and
// the file/env configuration for the UI. There is no durable persistence:
// a Source hands out starting state, and every session keeps its working
// set in memory only.
package store

import (
	"tableflip.dev/chairside/pkg/note"
	"tableflip.dev/chairside/pkg/profile"
)

// Source supplies the read-only reference data a session loads from:
// the user roster, the default tag registry, and per-user starting notes.
// Implementations must return fresh copies on every call.
type Source interface {
	Users() []profile.UserProfile
	DefaultTags() []note.Tag
	NotesFor(userID string) []note.Note
}

package store

import (
	"tableflip.dev/chairside/pkg/note"
	"tableflip.dev/chairside/pkg/profile"
	"tableflip.dev/chairside/pkg/seed"
)

// Seeded returns the built-in reference Source.
func Seeded() Source {
	return seeded{}
}

type seeded struct{}

func (seeded) Users() []profile.UserProfile       { return seed.Users() }
func (seeded) DefaultTags() []note.Tag            { return seed.Tags() }
func (seeded) NotesFor(userID string) []note.Note { return seed.NotesFor(userID) }

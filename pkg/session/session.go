// Package session owns all mutable state for one sitting: the active
// profile, the loaded note collection, the tag registry, navigation,
// selection, and the search query. UIs and CLIs hold a *Session and render
// from its derived views; they never keep filtered state of their own.
//
// Every operation is total. Unknown note or tag ids are no-ops, never
// errors, and every mutation replaces the collection slice wholesale so a
// caller can never observe a half-applied change.
package session

import (
	"fmt"
	"time"

	"tableflip.dev/chairside/pkg/note"
	"tableflip.dev/chairside/pkg/note/viewmodel"
	"tableflip.dev/chairside/pkg/profile"
	"tableflip.dev/chairside/pkg/store"
)

// State is the coarse lifecycle of a sitting.
type State int

const (
	// StateNoUser means no profile has been selected yet.
	StateNoUser State = iota
	// StateLoading means a profile was selected and its notes are being
	// fetched (simulated latency; the data itself is local).
	StateLoading
	// StateActive means a profile is loaded and note operations are live.
	StateActive
)

// Draft carries the editable fields of a note for UpdateNote. Lifecycle
// flags are excluded on purpose; those move only through the toggles.
type Draft struct {
	Title      string
	Content    string
	PersonName string
	EventDate  *time.Time
	Tags       []note.Tag
}

// Option customises Session construction.
type Option func(*Session)

// WithClock overrides the time source. Tests use this to get stable
// UpdatedAt ordering.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// Session is the single owner of a sitting's mutable state.
type Session struct {
	source store.Source
	now    func() time.Time

	state    State
	user     *profile.UserProfile
	pending  *profile.UserProfile
	notes    []note.Note
	tags     []note.Tag
	nav      viewmodel.NavKey
	selected string
	query    string

	// nextID is scoped to the session, not the package, so ids stay
	// unique across user switches within one sitting.
	nextID int
}

// New builds an idle session backed by the given source.
func New(src store.Source, opts ...Option) *Session {
	s := &Session{
		source: src,
		now:    time.Now,
		state:  StateNoUser,
		nav:    viewmodel.NavAll,
		nextID: 100,
	}
	if src != nil {
		s.tags = src.DefaultTags()
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State reports the current lifecycle state.
func (s *Session) State() State { return s.state }

// ActiveUser returns the loaded profile, or false when no user is active.
func (s *Session) ActiveUser() (profile.UserProfile, bool) {
	if s.user == nil {
		return profile.UserProfile{}, false
	}
	return *s.user, true
}

// PendingUser returns the profile a load is in flight for.
func (s *Session) PendingUser() (profile.UserProfile, bool) {
	if s.pending == nil {
		return profile.UserProfile{}, false
	}
	return *s.pending, true
}

// Users returns the selectable roster.
func (s *Session) Users() []profile.UserProfile {
	if s.source == nil {
		return nil
	}
	return s.source.Users()
}

// SelectUser begins loading the profile with the given id and moves the
// session to StateLoading. Selecting again while a load is in flight
// simply replaces the pending profile: last write wins, matching the
// un-debounced behaviour of the reference UI. Unknown ids are a no-op.
func (s *Session) SelectUser(userID string) bool {
	if s.state == StateActive {
		return false
	}
	for _, u := range s.Users() {
		if u.ID == userID {
			u := u
			s.pending = &u
			s.state = StateLoading
			return true
		}
	}
	return false
}

// CompleteLoad finishes a pending selection: the user's seed notes replace
// the collection, the first pinned active note (else the first note, else
// none) is selected, and navigation resets to the all view. Call it after
// the simulated delay elapses, or immediately for a zero-delay variant.
func (s *Session) CompleteLoad() {
	if s.state != StateLoading || s.pending == nil {
		return
	}
	s.user = s.pending
	s.pending = nil
	s.state = StateActive
	s.notes = s.source.NotesFor(s.user.ID)
	s.nav = viewmodel.NavAll
	s.query = ""
	s.selected = ""
	for _, n := range s.notes {
		if n.Pinned && !n.Archived && !n.Trashed {
			s.selected = n.ID
			break
		}
	}
	if s.selected == "" && len(s.notes) > 0 {
		s.selected = s.notes[0].ID
	}
}

// SwitchUser discards the sitting: notes are dropped, the tag registry
// resets to its seed, and the session returns to the profile picker.
func (s *Session) SwitchUser() {
	s.state = StateNoUser
	s.user = nil
	s.pending = nil
	s.notes = nil
	s.selected = ""
	s.query = ""
	s.nav = viewmodel.NavAll
	if s.source != nil {
		s.tags = s.source.DefaultTags()
	}
}

// NewNote inserts an untitled note at the front of the collection, tagged
// with the first registry tag when one exists, selects it, and switches
// navigation to the all view so the new note is visible.
func (s *Session) NewNote() (note.Note, bool) {
	if s.state != StateActive {
		return note.Note{}, false
	}
	s.nextID++
	n := note.New(fmt.Sprintf("n%d", s.nextID), s.now())
	if len(s.tags) > 0 {
		n.Tags = []note.Tag{s.tags[0]}
	}
	next := make([]note.Note, 0, len(s.notes)+1)
	next = append(next, n)
	next = append(next, s.notes...)
	s.notes = next
	s.selected = n.ID
	s.nav = viewmodel.NavAll
	return n.Clone(), true
}

// UpdateNote replaces the editable fields of the matching note and
// refreshes UpdatedAt. Unknown ids are a no-op.
func (s *Session) UpdateNote(id string, d Draft) {
	s.mutate(id, stamp, func(n *note.Note) {
		n.Title = d.Title
		n.Content = d.Content
		n.PersonName = d.PersonName
		if d.EventDate != nil {
			ed := *d.EventDate
			n.EventDate = &ed
		} else {
			n.EventDate = nil
		}
		n.Tags = append([]note.Tag(nil), d.Tags...)
	})
}

// TogglePin flips the pinned flag.
func (s *Session) TogglePin(id string) {
	s.mutate(id, stamp, func(n *note.Note) {
		n.Pinned = !n.Pinned
	})
}

// ToggleArchive flips the archived flag.
func (s *Session) ToggleArchive(id string) {
	s.mutate(id, stamp, func(n *note.Note) {
		n.Archived = !n.Archived
	})
}

// DeleteNote is two-stage: an untrashed note is soft-deleted (trashed and
// unpinned), a trashed note is removed for good. Both stages clear the
// selection so the UI re-derives a visible note instead of guessing a
// neighbour.
func (s *Session) DeleteNote(id string) {
	if s.state != StateActive {
		return
	}
	idx := s.indexOf(id)
	if idx < 0 {
		return
	}
	if s.notes[idx].Trashed {
		next := make([]note.Note, 0, len(s.notes)-1)
		next = append(next, s.notes[:idx]...)
		next = append(next, s.notes[idx+1:]...)
		s.notes = next
	} else {
		// Trashing does not count as an edit, so UpdatedAt keeps its
		// pre-trash value and a later restore keeps the note's place in
		// the recent ordering.
		s.mutate(id, keepStamp, func(n *note.Note) {
			n.Trashed = true
			n.Pinned = false
		})
	}
	s.selected = ""
}

// RestoreNote clears the trashed flag. The note stays unpinned; a pin
// cleared by trashing is not resurrected. Selection is untouched.
func (s *Session) RestoreNote(id string) {
	s.mutate(id, keepStamp, func(n *note.Note) {
		n.Trashed = false
	})
}

// SetNavigation switches the active view and clears the selection.
func (s *Session) SetNavigation(key viewmodel.NavKey) {
	s.nav = key
	s.selected = ""
}

// Navigation returns the active navigation key.
func (s *Session) Navigation() viewmodel.NavKey { return s.nav }

// SelectNote marks the note with the given id as selected. Unknown ids
// are a no-op.
func (s *Session) SelectNote(id string) {
	if s.indexOf(id) >= 0 {
		s.selected = id
	}
}

// SelectedNote returns the selected note, or false when nothing is
// selected.
func (s *Session) SelectedNote() (note.Note, bool) {
	idx := s.indexOf(s.selected)
	if idx < 0 {
		return note.Note{}, false
	}
	return s.notes[idx].Clone(), true
}

// SetSearch stores the free-text query narrowing the visible view.
func (s *Session) SetSearch(query string) { s.query = query }

// SearchQuery returns the current query.
func (s *Session) SearchQuery() string { return s.query }

// Notes returns a snapshot of the full collection.
func (s *Session) Notes() []note.Note { return note.CloneAll(s.notes) }

// Tags returns a snapshot of the registry in display order.
func (s *Session) Tags() []note.Tag { return append([]note.Tag(nil), s.tags...) }

// DeleteTag removes the tag from the registry and cascades across the
// whole collection, visible or not. Deleting the tag that is the active
// navigation key resets navigation to the all view.
func (s *Session) DeleteTag(tagID string) {
	if s.state != StateActive {
		return
	}
	found := false
	kept := make([]note.Tag, 0, len(s.tags))
	for _, t := range s.tags {
		if t.ID == tagID {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return
	}
	s.tags = kept
	next := make([]note.Note, 0, len(s.notes))
	for _, n := range s.notes {
		next = append(next, n.WithoutTag(tagID))
	}
	s.notes = next
	if s.nav == viewmodel.NavKey(tagID) {
		s.nav = viewmodel.NavAll
	}
}

// ReorderTags replaces the registry order wholesale. The caller is
// trusted to pass a permutation of the current set; the registry accepts
// whatever list it is given, matching the reference behaviour.
func (s *Session) ReorderTags(tags []note.Tag) {
	if s.state != StateActive {
		return
	}
	s.tags = append([]note.Tag(nil), tags...)
}

// VisibleNotes derives the notes the active view shows, after applying
// the search query. Recomputed on every call.
func (s *Session) VisibleNotes() []note.Note {
	visible := viewmodel.Visible(s.notes, s.nav, note.TagIDSet(s.tags))
	visible = viewmodel.Search(visible, s.query)
	return note.CloneAll(visible)
}

// Counts derives the sidebar badge numbers. Recomputed on every call.
func (s *Session) Counts() map[string]int {
	return viewmodel.Counts(s.notes, s.tags)
}

const (
	stamp     = true
	keepStamp = false
)

// mutate clones the collection, applies fn to the matching note, and
// swaps the new slice in. Edits and lifecycle toggles refresh UpdatedAt;
// trash and restore pass keepStamp. Unknown ids leave the collection
// untouched.
func (s *Session) mutate(id string, refresh bool, fn func(*note.Note)) {
	if s.state != StateActive {
		return
	}
	idx := s.indexOf(id)
	if idx < 0 {
		return
	}
	next := note.CloneAll(s.notes)
	fn(&next[idx])
	if refresh {
		next[idx].UpdatedAt = s.now()
	}
	s.notes = next
}

func (s *Session) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, n := range s.notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}

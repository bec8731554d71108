package session

import (
	"testing"
	"time"

	"tableflip.dev/chairside/pkg/note"
	"tableflip.dev/chairside/pkg/note/viewmodel"
	"tableflip.dev/chairside/pkg/profile"
)

// fakeSource is a hand-rolled seed source so tests control the data.
type fakeSource struct {
	users []profile.UserProfile
	tags  []note.Tag
	notes map[string][]note.Note
}

func (f *fakeSource) Users() []profile.UserProfile {
	return append([]profile.UserProfile(nil), f.users...)
}

func (f *fakeSource) DefaultTags() []note.Tag {
	return append([]note.Tag(nil), f.tags...)
}

func (f *fakeSource) NotesFor(userID string) []note.Note {
	return note.CloneAll(f.notes[userID])
}

type clock struct {
	at time.Time
}

func (c *clock) now() time.Time {
	c.at = c.at.Add(time.Minute)
	return c.at
}

var t0 = time.Date(2026, time.February, 26, 9, 0, 0, 0, time.UTC)

func testSource() *fakeSource {
	return &fakeSource{
		users: []profile.UserProfile{
			{ID: "u1", Name: "Dr. Sarah Chen"},
			{ID: "u2", Name: "Maria Rodriguez"},
			{ID: "u3", Name: "Empty User"},
		},
		tags: []note.Tag{
			{ID: "t1", Label: "Patient Care"},
			{ID: "t2", Label: "Research"},
		},
		notes: map[string][]note.Note{
			"u1": {
				{ID: "u1-n1", Title: "Protocol", Tags: []note.Tag{{ID: "t1", Label: "Patient Care"}},
					CreatedAt: t0, UpdatedAt: t0.Add(time.Hour)},
				{ID: "u1-n2", Title: "Plan", Pinned: true, Tags: []note.Tag{{ID: "t1", Label: "Patient Care"}},
					CreatedAt: t0, UpdatedAt: t0},
				{ID: "u1-n3", Title: "Old Form", Archived: true, CreatedAt: t0, UpdatedAt: t0},
			},
			"u2": {
				{ID: "u2-n1", Title: "Checklist", CreatedAt: t0, UpdatedAt: t0},
			},
		},
	}
}

func activeSession(t *testing.T, userID string) *Session {
	t.Helper()
	c := &clock{at: t0.Add(2 * time.Hour)}
	s := New(testSource(), WithClock(c.now))
	if !s.SelectUser(userID) {
		t.Fatalf("SelectUser(%s) refused", userID)
	}
	s.CompleteLoad()
	if s.State() != StateActive {
		t.Fatalf("expected StateActive, got %v", s.State())
	}
	return s
}

func TestSelectUserLoadsSeedAndAutoselects(t *testing.T) {
	s := activeSession(t, "u1")

	u, ok := s.ActiveUser()
	if !ok || u.ID != "u1" {
		t.Fatalf("expected active user u1, got %+v ok=%v", u, ok)
	}
	if got := len(s.Notes()); got != 3 {
		t.Fatalf("expected 3 notes, got %d", got)
	}
	// First pinned-and-active note wins even when it is not first in
	// collection order.
	sel, ok := s.SelectedNote()
	if !ok || sel.ID != "u1-n2" {
		t.Fatalf("expected selection u1-n2, got %+v ok=%v", sel.ID, ok)
	}
	if s.Navigation() != viewmodel.NavAll {
		t.Fatalf("expected nav all, got %s", s.Navigation())
	}
}

func TestAutoselectFallsBackToFirstNote(t *testing.T) {
	s := activeSession(t, "u2")
	sel, ok := s.SelectedNote()
	if !ok || sel.ID != "u2-n1" {
		t.Fatalf("expected selection u2-n1, got %q ok=%v", sel.ID, ok)
	}
}

func TestAutoselectNoneForEmptyCollection(t *testing.T) {
	s := activeSession(t, "u3")
	if _, ok := s.SelectedNote(); ok {
		t.Fatalf("expected no selection for empty collection")
	}
}

func TestSelectUserUnknownIDIsNoop(t *testing.T) {
	s := New(testSource())
	if s.SelectUser("nope") {
		t.Fatalf("expected unknown user to be refused")
	}
	if s.State() != StateNoUser {
		t.Fatalf("expected StateNoUser, got %v", s.State())
	}
}

func TestDoubleSelectionLastWriteWins(t *testing.T) {
	s := New(testSource())
	s.SelectUser("u1")
	s.SelectUser("u2")
	s.CompleteLoad()

	u, ok := s.ActiveUser()
	if !ok || u.ID != "u2" {
		t.Fatalf("expected second selection to win, got %+v", u)
	}
}

func TestSwitchUserDiscardsStateAndResetsTags(t *testing.T) {
	s := activeSession(t, "u1")
	s.NewNote()
	s.DeleteTag("t1")

	s.SwitchUser()
	if s.State() != StateNoUser {
		t.Fatalf("expected StateNoUser after switch")
	}
	if got := len(s.Notes()); got != 0 {
		t.Fatalf("expected empty collection after switch, got %d", got)
	}
	tags := s.Tags()
	if len(tags) != 2 || tags[0].ID != "t1" {
		t.Fatalf("expected tag registry reset to seed, got %+v", tags)
	}
}

func TestNewNoteInsertsAtFrontAndSelects(t *testing.T) {
	s := activeSession(t, "u1")
	s.SetNavigation(viewmodel.NavArchived)

	n, ok := s.NewNote()
	if !ok {
		t.Fatalf("NewNote refused in active state")
	}
	if n.Title != "Untitled Note" {
		t.Fatalf("expected Untitled Note, got %q", n.Title)
	}
	if len(n.Tags) != 1 || n.Tags[0].ID != "t1" {
		t.Fatalf("expected first registry tag, got %+v", n.Tags)
	}
	notes := s.Notes()
	if notes[0].ID != n.ID {
		t.Fatalf("expected new note first in collection, got %s", notes[0].ID)
	}
	sel, _ := s.SelectedNote()
	if sel.ID != n.ID {
		t.Fatalf("expected new note selected, got %s", sel.ID)
	}
	if s.Navigation() != viewmodel.NavAll {
		t.Fatalf("expected nav reset to all, got %s", s.Navigation())
	}
	if !n.UpdatedAt.Equal(n.CreatedAt) {
		t.Fatalf("expected createdAt == updatedAt on a fresh note")
	}
}

func TestNewNoteIDsUniqueAcrossUserSwitches(t *testing.T) {
	s := activeSession(t, "u1")
	first, _ := s.NewNote()

	s.SwitchUser()
	s.SelectUser("u2")
	s.CompleteLoad()
	second, _ := s.NewNote()

	if first.ID == second.ID {
		t.Fatalf("expected session-unique ids, both %q", first.ID)
	}
}

func TestUpdateNoteReplacesFieldsAndStamps(t *testing.T) {
	s := activeSession(t, "u1")
	before, _ := s.SelectedNote()

	visit := t0.Add(30 * time.Hour)
	s.UpdateNote("u1-n2", Draft{
		Title:      "Revised Plan",
		Content:    "new body",
		PersonName: "M. Lawson",
		EventDate:  &visit,
		Tags:       []note.Tag{{ID: "t2", Label: "Research"}},
	})

	got, _ := s.SelectedNote()
	if got.Title != "Revised Plan" || got.Content != "new body" || got.PersonName != "M. Lawson" {
		t.Fatalf("fields not replaced: %+v", got)
	}
	if got.EventDate == nil || !got.EventDate.Equal(visit) {
		t.Fatalf("event date not replaced: %v", got.EventDate)
	}
	if len(got.Tags) != 1 || got.Tags[0].ID != "t2" {
		t.Fatalf("tags not replaced: %+v", got.Tags)
	}
	if !got.UpdatedAt.After(before.UpdatedAt) {
		t.Fatalf("expected UpdatedAt refresh")
	}
	if !got.CreatedAt.Equal(before.CreatedAt) {
		t.Fatalf("CreatedAt must not move")
	}
}

func TestUpdateUnknownIDIsNoop(t *testing.T) {
	s := activeSession(t, "u1")
	before := s.Notes()
	s.UpdateNote("missing", Draft{Title: "x"})
	after := s.Notes()
	if len(before) != len(after) {
		t.Fatalf("collection changed on unknown id")
	}
	for i := range before {
		if before[i].Title != after[i].Title {
			t.Fatalf("note %s changed on unknown id", before[i].ID)
		}
	}
}

func TestTogglePinRefreshesUpdatedAt(t *testing.T) {
	s := activeSession(t, "u1")
	before := findNote(t, s, "u1-n1")
	s.TogglePin("u1-n1")
	after := findNote(t, s, "u1-n1")
	if !after.Pinned {
		t.Fatalf("expected pinned")
	}
	if !after.UpdatedAt.After(before.UpdatedAt) {
		t.Fatalf("expected UpdatedAt refresh on pin toggle")
	}
	s.TogglePin("u1-n1")
	if findNote(t, s, "u1-n1").Pinned {
		t.Fatalf("expected unpinned after second toggle")
	}
}

func TestDeleteIsTwoStage(t *testing.T) {
	s := activeSession(t, "u1")

	// Stage one: soft delete trashes and unpins.
	s.DeleteNote("u1-n2")
	n := findNote(t, s, "u1-n2")
	if !n.Trashed {
		t.Fatalf("expected trashed after first delete")
	}
	if n.Pinned {
		t.Fatalf("trashing must clear the pinned flag")
	}
	if _, ok := s.SelectedNote(); ok {
		t.Fatalf("expected selection cleared after delete")
	}

	// Stage two: deleting a trashed note removes it permanently.
	s.DeleteNote("u1-n2")
	for _, got := range s.Notes() {
		if got.ID == "u1-n2" {
			t.Fatalf("expected permanent removal")
		}
	}
}

func TestRestoreKeepsNoteUnpinned(t *testing.T) {
	s := activeSession(t, "u1")
	s.DeleteNote("u1-n2")
	s.RestoreNote("u1-n2")

	n := findNote(t, s, "u1-n2")
	if n.Trashed {
		t.Fatalf("expected untrashed after restore")
	}
	if n.Pinned {
		t.Fatalf("restore must not resurrect the pin")
	}
}

func TestDeleteUnknownIDIsNoop(t *testing.T) {
	s := activeSession(t, "u1")
	s.SelectNote("u1-n1")
	s.DeleteNote("missing")
	if len(s.Notes()) != 3 {
		t.Fatalf("collection changed on unknown id")
	}
	// Unknown ids do not even clear the selection; nothing happened.
	if _, ok := s.SelectedNote(); !ok {
		t.Fatalf("selection lost on unknown id")
	}
}

func TestDeleteTagCascadesAcrossFullCollection(t *testing.T) {
	s := activeSession(t, "u1")
	// Narrow the view so u1-n1 is invisible, then delete its tag.
	s.SetNavigation(viewmodel.NavArchived)
	s.DeleteTag("t1")

	for _, n := range s.Notes() {
		if n.HasTag("t1") {
			t.Fatalf("tag survived cascade on note %s", n.ID)
		}
	}
	for _, tg := range s.Tags() {
		if tg.ID == "t1" {
			t.Fatalf("tag survived in registry")
		}
	}
	if _, ok := s.Counts()["t1"]; ok {
		t.Fatalf("expected no count entry for deleted tag")
	}
}

func TestDeleteActiveTagResetsNavigation(t *testing.T) {
	s := activeSession(t, "u1")
	s.SetNavigation(viewmodel.NavKey("t1"))
	s.DeleteTag("t1")
	if s.Navigation() != viewmodel.NavAll {
		t.Fatalf("expected nav reset to all, got %s", s.Navigation())
	}
}

func TestDeleteOtherTagKeepsNavigation(t *testing.T) {
	s := activeSession(t, "u1")
	s.SetNavigation(viewmodel.NavKey("t1"))
	s.DeleteTag("t2")
	if s.Navigation() != viewmodel.NavKey("t1") {
		t.Fatalf("expected nav unchanged, got %s", s.Navigation())
	}
}

func TestDeleteUnknownTagIsNoop(t *testing.T) {
	s := activeSession(t, "u1")
	s.DeleteTag("t9")
	if len(s.Tags()) != 2 {
		t.Fatalf("registry changed on unknown tag id")
	}
}

func TestReorderTagsReplacesWholesale(t *testing.T) {
	s := activeSession(t, "u1")
	s.ReorderTags([]note.Tag{
		{ID: "t2", Label: "Research"},
		{ID: "t1", Label: "Patient Care"},
	})
	tags := s.Tags()
	if tags[0].ID != "t2" || tags[1].ID != "t1" {
		t.Fatalf("expected reordered registry, got %+v", tags)
	}
}

func TestSetNavigationClearsSelection(t *testing.T) {
	s := activeSession(t, "u1")
	if _, ok := s.SelectedNote(); !ok {
		t.Fatalf("expected initial selection")
	}
	s.SetNavigation(viewmodel.NavPinned)
	if _, ok := s.SelectedNote(); ok {
		t.Fatalf("expected selection cleared on nav change")
	}
}

func TestVisibleNotesAppliesSearchWithinView(t *testing.T) {
	s := activeSession(t, "u1")
	s.SetSearch("protocol")
	got := s.VisibleNotes()
	if len(got) != 1 || got[0].ID != "u1-n1" {
		t.Fatalf("expected search to narrow the all view, got %+v", ids(got))
	}

	// The archived match stays hidden: search narrows the active view, it
	// does not replace it.
	s.SetSearch("old form")
	if got := s.VisibleNotes(); len(got) != 0 {
		t.Fatalf("expected archived note filtered out, got %+v", ids(got))
	}
}

func TestNoteOpsBeforeActiveAreNoops(t *testing.T) {
	s := New(testSource())
	if _, ok := s.NewNote(); ok {
		t.Fatalf("NewNote must refuse before a user is active")
	}
	s.DeleteTag("t1")
	if len(s.Tags()) != 2 {
		t.Fatalf("tag registry must be untouchable before a user is active")
	}
}

func TestNotesReturnsDefensiveCopy(t *testing.T) {
	s := activeSession(t, "u1")
	snapshot := s.Notes()
	snapshot[0].Title = "mutated"
	snapshot[0].Tags = nil

	fresh := findNote(t, s, snapshot[0].ID)
	if fresh.Title == "mutated" {
		t.Fatalf("snapshot mutation leaked into session state")
	}
}

func findNote(t *testing.T, s *Session, id string) note.Note {
	t.Helper()
	for _, n := range s.Notes() {
		if n.ID == id {
			return n
		}
	}
	t.Fatalf("note %s not found", id)
	return note.Note{}
}

func ids(notes []note.Note) []string {
	out := make([]string, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.ID)
	}
	return out
}

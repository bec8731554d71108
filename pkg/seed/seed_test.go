package seed

import (
	"testing"
)

func TestTagsAreUniqueAndOrdered(t *testing.T) {
	tags := Tags()
	if len(tags) == 0 {
		t.Fatalf("expected seeded tags")
	}
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		if tag.ID == "" || tag.Label == "" || tag.Color == "" {
			t.Fatalf("incomplete tag %+v", tag)
		}
		if seen[tag.ID] {
			t.Fatalf("duplicate tag id %s", tag.ID)
		}
		seen[tag.ID] = true
	}
	if tags[0].ID != "t1" {
		t.Fatalf("expected t1 first in display order, got %s", tags[0].ID)
	}
}

func TestEveryUserHasNotes(t *testing.T) {
	for _, u := range Users() {
		notes := NotesFor(u.ID)
		if len(notes) == 0 {
			t.Fatalf("user %s has no seed notes", u.ID)
		}
	}
}

func TestNoteTagsExistInRegistry(t *testing.T) {
	registry := make(map[string]bool)
	for _, tag := range Tags() {
		registry[tag.ID] = true
	}
	for _, u := range Users() {
		for _, n := range NotesFor(u.ID) {
			for _, tag := range n.Tags {
				if !registry[tag.ID] {
					t.Errorf("note %s references unknown tag %s", n.ID, tag.ID)
				}
			}
		}
	}
}

func TestNoteIDsUniquePerUser(t *testing.T) {
	for _, u := range Users() {
		seen := make(map[string]bool)
		for _, n := range NotesFor(u.ID) {
			if seen[n.ID] {
				t.Errorf("duplicate note id %s for user %s", n.ID, u.ID)
			}
			seen[n.ID] = true
		}
	}
}

func TestTimestampsAreOrdered(t *testing.T) {
	for _, u := range Users() {
		for _, n := range NotesFor(u.ID) {
			if n.UpdatedAt.Before(n.CreatedAt) {
				t.Errorf("note %s updated before created", n.ID)
			}
		}
	}
}

func TestEveryUserAutoselectTargetExists(t *testing.T) {
	// Every seeded collection should open on a pinned, active note.
	for _, u := range Users() {
		found := false
		for _, n := range NotesFor(u.ID) {
			if n.Pinned && !n.Archived && !n.Trashed {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("user %s has no pinned active note to open on", u.ID)
		}
	}
}

func TestUnknownUserGetsEmptyCollection(t *testing.T) {
	if got := NotesFor("nobody"); len(got) != 0 {
		t.Fatalf("expected empty collection, got %d notes", len(got))
	}
}

func TestNotesForReturnsFreshCopies(t *testing.T) {
	first := NotesFor("u1")
	first[0].Title = "mutated"
	first[0].Tags[0].Label = "mutated"

	second := NotesFor("u1")
	if second[0].Title == "mutated" {
		t.Fatalf("seed notes shared between calls")
	}
	if second[0].Tags[0].Label == "mutated" {
		t.Fatalf("seed tags shared between calls")
	}
}

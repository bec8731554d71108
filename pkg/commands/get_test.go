package commands

import (
	"testing"
	"time"

	"tableflip.dev/chairside/pkg/note"
	"tableflip.dev/chairside/pkg/note/viewmodel"
	"tableflip.dev/chairside/pkg/store"
)

func TestResolveViewBuiltins(t *testing.T) {
	tags := store.Seeded().DefaultTags()
	cases := map[string]viewmodel.NavKey{
		"all":      viewmodel.NavAll,
		"Pinned":   viewmodel.NavPinned,
		"recent":   viewmodel.NavRecent,
		"archived": viewmodel.NavArchived,
		"TRASH":    viewmodel.NavTrash,
	}
	for arg, want := range cases {
		key, _, err := resolveView(arg, tags)
		if err != nil {
			t.Fatalf("resolveView(%q) returned error: %v", arg, err)
		}
		if key != want {
			t.Errorf("resolveView(%q) = %v, want %v", arg, key, want)
		}
	}
}

func TestResolveViewMatchesTagLabelAndID(t *testing.T) {
	tags := store.Seeded().DefaultTags()

	key, title, err := resolveView("patient care", tags)
	if err != nil {
		t.Fatalf("resolveView by label returned error: %v", err)
	}
	if key != viewmodel.NavKey("t1") || title != "Patient Care" {
		t.Errorf("resolveView by label = (%v, %q), want (t1, Patient Care)", key, title)
	}

	key, _, err = resolveView("t2", tags)
	if err != nil {
		t.Fatalf("resolveView by id returned error: %v", err)
	}
	if key != viewmodel.NavKey("t2") {
		t.Errorf("resolveView by id = %v, want t2", key)
	}
}

func TestResolveViewUnknownErrors(t *testing.T) {
	if _, _, err := resolveView("bogus", nil); err == nil {
		t.Fatal("expected an error for an unknown view")
	}
}

func TestUpdatedWithinKeepsRecentEdits(t *testing.T) {
	now := time.Date(2026, time.February, 27, 12, 0, 0, 0, time.UTC)
	notes := []note.Note{
		{ID: "a", UpdatedAt: now.Add(-time.Hour)},
		{ID: "b", UpdatedAt: now.Add(-72 * time.Hour)},
		{ID: "c", UpdatedAt: now.Add(-48 * time.Hour)},
	}

	kept := updatedWithin(notes, 48*time.Hour, now)
	if len(kept) != 2 {
		t.Fatalf("expected 2 notes within the window, got %d", len(kept))
	}
	if kept[0].ID != "a" || kept[1].ID != "c" {
		t.Errorf("expected notes a and c, got %s and %s", kept[0].ID, kept[1].ID)
	}
}

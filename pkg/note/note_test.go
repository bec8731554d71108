package note

import (
	"testing"
	"time"
)

func TestNewDefaults(t *testing.T) {
	now := time.Date(2026, time.February, 27, 9, 0, 0, 0, time.UTC)
	n := New("n101", now)

	if n.ID != "n101" {
		t.Errorf("ID = %q, want n101", n.ID)
	}
	if n.Title != "Untitled Note" {
		t.Errorf("Title = %q, want Untitled Note", n.Title)
	}
	if !n.CreatedAt.Equal(now) || !n.UpdatedAt.Equal(now) {
		t.Errorf("timestamps = %v/%v, want both %v", n.CreatedAt, n.UpdatedAt, now)
	}
	if n.Pinned || n.Archived || n.Trashed {
		t.Errorf("expected a fresh note to carry no lifecycle flags")
	}
}

func TestMatchesSearchesTitleContentAndPatient(t *testing.T) {
	n := Note{
		Title:      "Treatment Plan",
		Content:    "Crown prep on #14.",
		PersonName: "M. Lawson",
	}

	cases := []struct {
		query string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"treatment", true},
		{"CROWN", true},
		{"lawson", true},
		{"root canal", false},
	}
	for _, tc := range cases {
		if got := n.Matches(tc.query); got != tc.want {
			t.Errorf("Matches(%q) = %v, want %v", tc.query, got, tc.want)
		}
	}
}

func TestWithoutTagLeavesOriginalAlone(t *testing.T) {
	n := Note{
		ID:   "n1",
		Tags: []Tag{{ID: "t1"}, {ID: "t2"}},
	}

	got := n.WithoutTag("t1")
	if got.HasTag("t1") {
		t.Errorf("expected t1 to be removed")
	}
	if !got.HasTag("t2") {
		t.Errorf("expected t2 to survive")
	}
	if !n.HasTag("t1") {
		t.Errorf("expected the original note to keep its tags")
	}
}

func TestWithoutTagUnknownIsIdentity(t *testing.T) {
	n := Note{Tags: []Tag{{ID: "t1"}}}
	got := n.WithoutTag("t9")
	if len(got.Tags) != 1 || got.Tags[0].ID != "t1" {
		t.Errorf("expected tags untouched, got %v", got.Tags)
	}
}

func TestCloneIsDeep(t *testing.T) {
	when := time.Date(2026, time.February, 26, 9, 0, 0, 0, time.UTC)
	n := Note{
		ID:        "n1",
		Tags:      []Tag{{ID: "t1", Label: "Patient Care"}},
		EventDate: &when,
	}

	c := n.Clone()
	c.Tags[0].Label = "changed"
	*c.EventDate = c.EventDate.Add(time.Hour)

	if n.Tags[0].Label != "Patient Care" {
		t.Errorf("clone shares tag storage with the original")
	}
	if !n.EventDate.Equal(when) {
		t.Errorf("clone shares the event date pointer with the original")
	}
}

func TestTagIDSet(t *testing.T) {
	set := TagIDSet([]Tag{{ID: "t1"}, {ID: "t2"}})
	if !set["t1"] || !set["t2"] || set["t3"] {
		t.Errorf("unexpected set contents: %v", set)
	}
}

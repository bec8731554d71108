package note

import (
	"strings"
	"time"
)

// Tag is a labeled, colored category assignable to notes. Tags live in an
// ordered registry owned by the session; notes carry value copies.
type Tag struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// Note is a single free-text record with lifecycle flags.
type Note struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Content    string     `json:"content,omitempty"`
	Tags       []Tag      `json:"tags,omitempty"`
	PersonName string     `json:"personName,omitempty"`
	EventDate  *time.Time `json:"eventDate,omitempty"`
	Pinned     bool       `json:"isPinned"`
	Archived   bool       `json:"isArchived"`
	Trashed    bool       `json:"isTrashed"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	Color      string     `json:"color,omitempty"`
}

// New returns an untitled note stamped with now.
func New(id string, now time.Time) Note {
	return Note{
		ID:        id,
		Title:     "Untitled Note",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Clone returns a deep copy so callers can hand out snapshots without
// sharing tag slices.
func (n Note) Clone() Note {
	cp := n
	if n.Tags != nil {
		cp.Tags = append([]Tag(nil), n.Tags...)
	}
	if n.EventDate != nil {
		d := *n.EventDate
		cp.EventDate = &d
	}
	return cp
}

// CloneAll deep-copies a collection snapshot.
func CloneAll(notes []Note) []Note {
	if notes == nil {
		return nil
	}
	out := make([]Note, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.Clone())
	}
	return out
}

// HasTag reports whether the note carries the tag id.
func (n Note) HasTag(tagID string) bool {
	for _, t := range n.Tags {
		if t.ID == tagID {
			return true
		}
	}
	return false
}

// WithoutTag returns a copy of the note with every entry matching the tag
// id removed. The copy shares nothing with the receiver.
func (n Note) WithoutTag(tagID string) Note {
	cp := n.Clone()
	if len(cp.Tags) == 0 {
		return cp
	}
	kept := cp.Tags[:0]
	for _, t := range cp.Tags {
		if t.ID != tagID {
			kept = append(kept, t)
		}
	}
	cp.Tags = kept
	return cp
}

// Matches reports whether the note matches a free-text query. Matching is a
// case-insensitive substring test against title, content, and person name.
// An empty or whitespace-only query matches everything.
func (n Note) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(n.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(n.Content), q) {
		return true
	}
	return n.PersonName != "" && strings.Contains(strings.ToLower(n.PersonName), q)
}

// TagIDs collects the ids of a tag list in order.
func TagIDs(tags []Tag) []string {
	ids := make([]string, 0, len(tags))
	for _, t := range tags {
		ids = append(ids, t.ID)
	}
	return ids
}

// TagIDSet builds a membership set for navigation-key lookups.
func TagIDSet(tags []Tag) map[string]bool {
	set := make(map[string]bool, len(tags))
	for _, t := range tags {
		set[t.ID] = true
	}
	return set
}

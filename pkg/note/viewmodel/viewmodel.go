// Package viewmodel derives the visible note subset and per-view counts
// from a notes snapshot so UI layers never keep filtered state of their
// own. Everything here is a pure function: recompute on read, no caches.
package viewmodel

import (
	"sort"
	"strings"

	"tableflip.dev/chairside/pkg/note"
)

// NavKey selects which subset of notes is visible. A key is either one of
// the built-in views below or a tag id from the current registry.
type NavKey string

const (
	NavAll      NavKey = "all"
	NavPinned   NavKey = "pinned"
	NavRecent   NavKey = "recent"
	NavArchived NavKey = "archived"
	NavTrash    NavKey = "trash"
)

// RecentLimit caps the recent view to the newest edits.
const RecentLimit = 5

// BuiltinKeys returns the fixed views in sidebar order.
func BuiltinKeys() []NavKey {
	return []NavKey{NavAll, NavPinned, NavRecent, NavArchived, NavTrash}
}

// Visible filters a notes snapshot by navigation key. tagIDs is the
// membership set of the current registry; keys that are neither built-in
// views nor registered tag ids fall back to the all view. The recent view
// is sorted by UpdatedAt descending (stable, so collection order breaks
// ties) and capped to RecentLimit.
func Visible(notes []note.Note, key NavKey, tagIDs map[string]bool) []note.Note {
	switch key {
	case NavPinned:
		return filter(notes, func(n note.Note) bool {
			return n.Pinned && !n.Archived && !n.Trashed
		})
	case NavRecent:
		recent := filter(notes, active)
		sort.SliceStable(recent, func(i, j int) bool {
			return recent[i].UpdatedAt.After(recent[j].UpdatedAt)
		})
		if len(recent) > RecentLimit {
			recent = recent[:RecentLimit]
		}
		return recent
	case NavArchived:
		return filter(notes, func(n note.Note) bool {
			return n.Archived && !n.Trashed
		})
	case NavTrash:
		return filter(notes, func(n note.Note) bool {
			return n.Trashed
		})
	default:
		if tagIDs[string(key)] {
			id := string(key)
			return filter(notes, func(n note.Note) bool {
				return active(n) && n.HasTag(id)
			})
		}
		return filter(notes, active)
	}
}

// Counts computes the badge numbers for every built-in view and every tag
// in registry order. Counts always cover the full collection, never the
// capped recent slice, except that the recent badge itself is min(all, 5).
func Counts(notes []note.Note, tags []note.Tag) map[string]int {
	counts := map[string]int{
		string(NavAll):      0,
		string(NavPinned):   0,
		string(NavArchived): 0,
		string(NavTrash):    0,
	}
	for _, t := range tags {
		counts[t.ID] = 0
	}
	for _, n := range notes {
		if n.Trashed {
			counts[string(NavTrash)]++
			continue
		}
		if n.Archived {
			counts[string(NavArchived)]++
			continue
		}
		counts[string(NavAll)]++
		if n.Pinned {
			counts[string(NavPinned)]++
		}
		for _, t := range tags {
			if n.HasTag(t.ID) {
				counts[t.ID]++
			}
		}
	}
	recent := counts[string(NavAll)]
	if recent > RecentLimit {
		recent = RecentLimit
	}
	counts[string(NavRecent)] = recent
	return counts
}

// Search narrows a subset by free-text query. A whitespace-only query is
// the identity: the input comes back unchanged, order preserved. Search is
// applied after Visible so it narrows within the active view.
func Search(notes []note.Note, query string) []note.Note {
	if strings.TrimSpace(query) == "" {
		return notes
	}
	return filter(notes, func(n note.Note) bool {
		return n.Matches(query)
	})
}

// active is the shared not-archived-not-trashed predicate.
func active(n note.Note) bool {
	return !n.Archived && !n.Trashed
}

func filter(notes []note.Note, keep func(note.Note) bool) []note.Note {
	out := make([]note.Note, 0, len(notes))
	for _, n := range notes {
		if keep(n) {
			out = append(out, n)
		}
	}
	return out
}

// Package theme centralizes Lip Gloss styles for the Bubble Tea UI. The
// palette follows the practice branding: deep teals on a pale aqua wash.
package theme

import (
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	// ColorPrimary is the brand teal used for focus and selection.
	ColorPrimary = "#0F7F8E"
	// ColorAccent is the lighter teal used for secondary highlights.
	ColorAccent = "#47B7C2"
	// ColorMuted is the desaturated teal for help text and counts.
	ColorMuted = "#3E6770"
)

// Theme groups the styles used across the UI.
type Theme struct {
	Picker  PickerTheme
	Sidebar SidebarTheme
	List    ListTheme
	Editor  EditorTheme
	Footer  FooterTheme
}

// PickerTheme styles the profile selection screen.
type PickerTheme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Loading  lipgloss.Style
}

// SidebarTheme styles the navigation pane.
type SidebarTheme struct {
	Frame       lipgloss.Style
	Heading     lipgloss.Style
	Item        lipgloss.Style
	ItemActive  lipgloss.Style
	Count       lipgloss.Style
	UserName    lipgloss.Style
	UserRole    lipgloss.Style
	AvatarBadge lipgloss.Style
}

// ListTheme styles the note list pane.
type ListTheme struct {
	Frame        lipgloss.Style
	Title        lipgloss.Style
	TitleActive  lipgloss.Style
	Meta         lipgloss.Style
	Marker       lipgloss.Style
	SearchPrompt lipgloss.Style
	Empty        lipgloss.Style
}

// EditorTheme styles the note detail pane.
type EditorTheme struct {
	Frame   lipgloss.Style
	Title   lipgloss.Style
	Meta    lipgloss.Style
	Body    lipgloss.Style
	TagPill lipgloss.Style
	Trashed lipgloss.Style
}

// FooterTheme styles the bottom help/status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	primary := lipgloss.Color(ColorPrimary)
	accent := lipgloss.Color(ColorAccent)
	muted := lipgloss.Color(ColorMuted)

	item := lipgloss.NewStyle()
	return Theme{
		Picker: PickerTheme{
			Title:    lipgloss.NewStyle().Bold(true).Foreground(primary),
			Subtitle: lipgloss.NewStyle().Foreground(muted),
			Loading:  lipgloss.NewStyle().Foreground(accent).Italic(true),
		},
		Sidebar: SidebarTheme{
			Frame:       lipgloss.NewStyle().Padding(0, 1),
			Heading:     lipgloss.NewStyle().Bold(true).Foreground(muted),
			Item:        item,
			ItemActive:  item.Foreground(primary).Bold(true),
			Count:       lipgloss.NewStyle().Foreground(muted),
			UserName:    lipgloss.NewStyle().Bold(true),
			UserRole:    lipgloss.NewStyle().Foreground(muted),
			AvatarBadge: lipgloss.NewStyle().Bold(true).Padding(0, 1),
		},
		List: ListTheme{
			Frame:        lipgloss.NewStyle().Padding(0, 1),
			Title:        lipgloss.NewStyle(),
			TitleActive:  lipgloss.NewStyle().Foreground(primary).Bold(true),
			Meta:         lipgloss.NewStyle().Foreground(muted),
			Marker:       lipgloss.NewStyle().Foreground(accent),
			SearchPrompt: lipgloss.NewStyle().Foreground(primary),
			Empty:        lipgloss.NewStyle().Foreground(muted).Italic(true),
		},
		Editor: EditorTheme{
			Frame:   lipgloss.NewStyle().Padding(0, 1),
			Title:   lipgloss.NewStyle().Bold(true).Foreground(primary),
			Meta:    lipgloss.NewStyle().Foreground(muted),
			Body:    lipgloss.NewStyle(),
			TagPill: lipgloss.NewStyle().Padding(0, 1),
			Trashed: lipgloss.NewStyle().Foreground(muted).Strikethrough(true),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
	}
}

// Blend returns the midpoint of a two-stop gradient, used to color a
// profile's avatar badge from its gradient pair.
func Blend(from, to string) color.Color {
	a, errA := colorful.Hex(from)
	b, errB := colorful.Hex(to)
	if errA != nil || errB != nil {
		return lipgloss.Color(ColorPrimary)
	}
	return lipgloss.Color(a.BlendLuv(b, 0.5).Hex())
}

// Readable picks a foreground that stays legible on the given background.
func Readable(background string) color.Color {
	c, err := colorful.Hex(background)
	if err != nil {
		return lipgloss.Color("15")
	}
	if _, _, l := c.Hsl(); l > 0.6 {
		return lipgloss.Color("0")
	}
	return lipgloss.Color("15")
}

// Swatch colors a tag marker with the tag's own color.
func Swatch(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}

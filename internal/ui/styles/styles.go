// Package styles provides shared lipgloss styles for gitref's terminal UI.
//
// Colors come from the active Theme (see Init). The static tables, the
// select prompt and the browser all read the package-level styles so a
// theme switch applies everywhere at once.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Colors of the active theme
var (
	Primary color.Color = DefaultTheme.Primary
	Accent  color.Color = DefaultTheme.Accent
	Success color.Color = DefaultTheme.Success
	Error   color.Color = DefaultTheme.Error
	Muted   color.Color = DefaultTheme.Muted
	Normal  color.Color = DefaultTheme.Normal
	Info    color.Color = DefaultTheme.Info
	Warning color.Color = DefaultTheme.Warning
)

// Common styles
var (
	Bold   = lipgloss.NewStyle().Bold(true)
	Italic = lipgloss.NewStyle().Italic(true)

	PrimaryStyle lipgloss.Style
	AccentStyle  lipgloss.Style
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	MutedStyle   lipgloss.Style
	NormalStyle  lipgloss.Style
	InfoStyle    lipgloss.Style
	WarningStyle lipgloss.Style

	// RoundedBorder frames the help overlay
	RoundedBorder lipgloss.Style

	// HighlightStyle for matched characters in the select prompt
	HighlightStyle lipgloss.Style
)

// Reference page styles
var (
	// TitleStyle renders the page title
	TitleStyle lipgloss.Style

	// SectionTitleStyle renders "N. Title" section headers
	SectionTitleStyle lipgloss.Style

	// CommandStyle renders command text on cards and tables
	CommandStyle lipgloss.Style

	// NavItemStyle and NavActiveStyle render category tabs
	NavItemStyle   lipgloss.Style
	NavActiveStyle lipgloss.Style

	// CardStyle frames a command card; FocusedCardStyle marks the cursor
	CardStyle        lipgloss.Style
	FocusedCardStyle lipgloss.Style

	// ExampleStyle renders the example block of an expanded card
	ExampleStyle lipgloss.Style

	// ToastStyle renders the transient copy confirmation
	ToastStyle lipgloss.Style
)

func init() {
	applyTheme(DefaultTheme)
}

// Package styles centralizes the color palette shared by interactive
// prompts so they stay visually consistent.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette colors.
var (
	// Primary is the main accent color (cyan/teal).
	Primary color.Color = lipgloss.Color("62")

	// Accent highlights selected or active items (pink).
	Accent color.Color = lipgloss.Color("212")

	// Success marks positive outcomes (green).
	Success color.Color = lipgloss.Color("82")

	// Error marks failures (red).
	Error color.Color = lipgloss.Color("196")

	// Muted is for secondary or inactive text (gray).
	Muted color.Color = lipgloss.Color("240")

	// Normal is the standard text color (light gray).
	Normal color.Color = lipgloss.Color("252")
)

// Shared styles.
var (
	// AccentStyle renders selected items.
	AccentStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	// MutedStyle renders secondary text.
	MutedStyle = lipgloss.NewStyle().Foreground(Muted)

	// ErrorStyle renders validation errors.
	ErrorStyle = lipgloss.NewStyle().Foreground(Error)
)

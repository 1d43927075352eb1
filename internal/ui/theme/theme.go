package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette is one color scheme. The app ships a light and a dark one;
// the active palette is swapped with Apply.
type Palette struct {
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	Bg        color.Color
	BgCard    color.Color
	Border    color.Color
	Locked    color.Color
}

// Dark is the slate-and-blue scheme.
var Dark = Palette{
	Primary:   lipgloss.Color("#3B82F6"), // Blue
	Secondary: lipgloss.Color("#14B8A6"), // Teal
	Accent:    lipgloss.Color("#EAB308"), // Yellow
	Success:   lipgloss.Color("#22C55E"), // Green
	Error:     lipgloss.Color("#F43F5E"), // Rose
	Text:      lipgloss.Color("#F8FAFC"), // White
	TextDim:   lipgloss.Color("#94A3B8"), // Slate
	Bg:        lipgloss.Color("#0F172A"), // Deep Navy
	BgCard:    lipgloss.Color("#1E293B"), // Dark Slate
	Border:    lipgloss.Color("#334155"), // Slate
	Locked:    lipgloss.Color("#EAB308"), // Yellow
}

// Light is the default scheme.
var Light = Palette{
	Primary:   lipgloss.Color("#2563EB"), // Blue
	Secondary: lipgloss.Color("#0D9488"), // Teal
	Accent:    lipgloss.Color("#CA8A04"), // Yellow
	Success:   lipgloss.Color("#16A34A"), // Green
	Error:     lipgloss.Color("#E11D48"), // Rose
	Text:      lipgloss.Color("#1E293B"), // Dark Slate
	TextDim:   lipgloss.Color("#64748B"), // Slate
	Bg:        lipgloss.Color("#F8FAFC"), // White
	BgCard:    lipgloss.Color("#E2E8F0"), // Light Slate
	Border:    lipgloss.Color("#CBD5E1"), // Slate
	Locked:    lipgloss.Color("#CA8A04"), // Yellow
}

var active = Light

// Apply switches the active palette. Unknown names fall back to light.
func Apply(name string) {
	if name == "dark" {
		active = Dark
		return
	}
	active = Light
}

// Active returns the palette currently in effect.
func Active() Palette {
	return active
}

// Convenience accessors for the active palette.
func Primary() color.Color   { return active.Primary }
func Secondary() color.Color { return active.Secondary }
func Accent() color.Color    { return active.Accent }
func Success() color.Color   { return active.Success }
func Error() color.Color     { return active.Error }
func Text() color.Color      { return active.Text }
func TextDim() color.Color   { return active.TextDim }
func Bg() color.Color        { return active.Bg }
func BgCard() color.Color    { return active.BgCard }
func Border() color.Color    { return active.Border }
func Locked() color.Color    { return active.Locked }

// Typography. Built per call so a theme toggle takes effect
// immediately.

func Title() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(active.Primary).
		Align(lipgloss.Center)
}

func Subtitle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(active.TextDim).
		Align(lipgloss.Center)
}

func Body() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(active.Text)
}

func Hint() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(active.TextDim).
		Italic(true)
}

func Card() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(active.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(active.Border).
		Padding(1, 2)
}

// States.

func Selected() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(active.Primary).
		Bold(true)
}

func Unselected() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(active.Text)
}

func Correct() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(active.Success).
		Bold(true)
}

func Incorrect() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(active.Error).
		Bold(true)
}

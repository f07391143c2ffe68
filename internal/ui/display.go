package ui

import "strings"

// TextDisplay is a stepper display for non-interactive output. It keeps the
// last state written to it and renders it as a single line.
type TextDisplay struct {
	Title           string
	Entry           string
	NextVisible     bool
	PreviousVisible bool
}

// NewTextDisplay creates a display for the setting titled title.
func NewTextDisplay(title string) *TextDisplay {
	return &TextDisplay{Title: title}
}

func (d *TextDisplay) SetEntry(label string)           { d.Entry = label }
func (d *TextDisplay) SetNextVisible(visible bool)     { d.NextVisible = visible }
func (d *TextDisplay) SetPreviousVisible(visible bool) { d.PreviousVisible = visible }

// Render returns "title  [-] label [+]" with hidden buttons blanked.
func (d *TextDisplay) Render() string {
	next, previous := "   ", "   "
	if d.NextVisible {
		next = ButtonStyle.Render("[+]")
	}
	if d.PreviousVisible {
		previous = ButtonStyle.Render("[-]")
	}
	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(SettingTitleStyle.Render(d.Title))
	b.WriteString(previous)
	b.WriteString(" ")
	b.WriteString(SettingValueStyle.Render(d.Entry))
	b.WriteString(" ")
	b.WriteString(next)
	return b.String()
}

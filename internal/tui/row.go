package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/camset/internal/preference"
	"github.com/muurk/camset/internal/stepper"
)

// Row is one inline setting picker in the popup. It is the stepper's
// display: the stepper writes the label and button visibility into it and
// the popup renders it.
type Row struct {
	Pref    *preference.ListPreference
	Stepper *stepper.Stepper

	entry           string
	nextVisible     bool
	previousVisible bool
	entryWidth      int

	// Listeners notified when the row's override changes.
	observers []stepper.Listener
}

func newRow(pref *preference.ListPreference) *Row {
	width := 0
	for _, e := range pref.Entries {
		if w := lipgloss.Width(e); w > width {
			width = w
		}
	}
	return &Row{Pref: pref, entryWidth: width + 2}
}

// SetEntry implements stepper.Display.
func (r *Row) SetEntry(label string) { r.entry = label }

// SetNextVisible implements stepper.Display.
func (r *Row) SetNextVisible(visible bool) { r.nextVisible = visible }

// SetPreviousVisible implements stepper.Display.
func (r *Row) SetPreviousVisible(visible bool) { r.previousVisible = visible }

// Entry returns the label currently displayed.
func (r *Row) Entry() string { return r.entry }

// NextVisible reports whether the Next button is shown.
func (r *Row) NextVisible() bool { return r.nextVisible }

// PreviousVisible reports whether the Previous button is shown.
func (r *Row) PreviousVisible() bool { return r.previousVisible }

// Overridden reports whether a scene mode has frozen the row.
func (r *Row) Overridden() bool {
	_, ok := r.Stepper.Override()
	return ok
}

// Column ranges [start, end) of the two buttons.
func (r *Row) previousColumns() (int, int) {
	start := cursorWidth + titleWidth
	return start, start + buttonWidth
}

func (r *Row) nextColumns() (int, int) {
	_, prevEnd := r.previousColumns()
	start := prevEnd + 1 + r.entryWidth + 1
	return start, start + buttonWidth
}

// HitTest maps a terminal column to the button under it.
func (r *Row) HitTest(x int) (stepper.Direction, bool) {
	if start, end := r.previousColumns(); x >= start && x < end && r.previousVisible {
		return stepper.Previous, true
	}
	if start, end := r.nextColumns(); x >= start && x < end && r.nextVisible {
		return stepper.Next, true
	}
	return 0, false
}

// View renders "> Title   [-]  label  [+]". Hidden buttons are blanked so
// the label does not move.
func (r *Row) View(focused bool, held *stepper.Direction) string {
	var b strings.Builder
	if focused {
		b.WriteString(CursorStyle.Render("> "))
		b.WriteString(FocusedRowTitleStyle.Render(r.Pref.Title))
	} else {
		b.WriteString("  ")
		b.WriteString(RowTitleStyle.Render(r.Pref.Title))
	}

	b.WriteString(renderButton("[-]", r.previousVisible, held != nil && *held == stepper.Previous))
	b.WriteString(" ")
	if r.Overridden() {
		b.WriteString(OverriddenEntryStyle.Width(r.entryWidth).Render(r.entry))
	} else {
		b.WriteString(EntryStyle.Width(r.entryWidth).Render(r.entry))
	}
	b.WriteString(" ")
	b.WriteString(renderButton("[+]", r.nextVisible, held != nil && *held == stepper.Next))

	if r.Overridden() {
		b.WriteString(SubtitleStyle.Render("  set by scene"))
	}
	return b.String()
}

func renderButton(label string, visible, pressed bool) string {
	if !visible {
		return strings.Repeat(" ", buttonWidth)
	}
	if pressed {
		return PressedButtonStyle.Render(label)
	}
	return ButtonStyle.Render(label)
}

package tui

import (
	"strings"
	"testing"

	"github.com/muurk/camset/internal/preference"
	"github.com/muurk/camset/internal/scheduler"
	"github.com/muurk/camset/internal/stepper"
)

func newBoundRow(t *testing.T, pref *preference.ListPreference) *Row {
	t.Helper()
	row := newRow(pref)
	row.Stepper = stepper.New(row, scheduler.NewManual())
	row.Stepper.Bind(pref)
	return row
}

func exposurePref() *preference.ListPreference {
	return preference.NewListPreference(preference.KeyExposure, "Exposure",
		[]string{"+2", "+1", "0", "-1", "-2"},
		[]string{"2", "1", "0", "-1", "-2"},
		"0")
}

func TestRowHitTest(t *testing.T) {
	row := newBoundRow(t, exposurePref())

	// Previous button starts after the cursor and title columns; the entry
	// column is the widest label plus padding.
	prevStart := cursorWidth + titleWidth
	nextStart := prevStart + buttonWidth + 1 + row.entryWidth + 1

	tests := []struct {
		name    string
		x       int
		wantDir stepper.Direction
		wantHit bool
	}{
		{"title column", 5, 0, false},
		{"previous first column", prevStart, stepper.Previous, true},
		{"previous last column", prevStart + buttonWidth - 1, stepper.Previous, true},
		{"entry column", prevStart + buttonWidth + 2, 0, false},
		{"next first column", nextStart, stepper.Next, true},
		{"next last column", nextStart + buttonWidth - 1, stepper.Next, true},
		{"past next", nextStart + buttonWidth, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, ok := row.HitTest(tt.x)
			if ok != tt.wantHit {
				t.Fatalf("HitTest(%d) hit = %v, want %v", tt.x, ok, tt.wantHit)
			}
			if ok && dir != tt.wantDir {
				t.Errorf("HitTest(%d) = %v, want %v", tt.x, dir, tt.wantDir)
			}
		})
	}
}

func TestRowHitTestIgnoresHiddenButtons(t *testing.T) {
	row := newBoundRow(t, exposurePref())
	row.Stepper.StepTo(0)

	nextStart, _ := row.nextColumns()
	if _, ok := row.HitTest(nextStart); ok {
		t.Error("HitTest() hit the hidden Next button at index 0")
	}
	prevStart, _ := row.previousColumns()
	if dir, ok := row.HitTest(prevStart); !ok || dir != stepper.Previous {
		t.Errorf("HitTest() = %v, %v, want previous, true", dir, ok)
	}
}

func TestRowView(t *testing.T) {
	row := newBoundRow(t, exposurePref())

	view := row.View(true, nil)
	for _, want := range []string{"> ", "Exposure", "[-]", "0", "[+]"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() = %q, should contain %q", view, want)
		}
	}

	row.Stepper.StepTo(4)
	view = row.View(false, nil)
	if strings.Contains(view, "[-]") {
		t.Errorf("View() at last index = %q, should hide [-]", view)
	}
	if !strings.Contains(view, "-2") {
		t.Errorf("View() = %q, should show label -2", view)
	}
}

func TestRowViewOverridden(t *testing.T) {
	pref := preference.NewListPreference(preference.KeyFlashMode, "Flash mode",
		[]string{"Auto", "On", "Off"},
		[]string{"auto", "on", "off"},
		"auto")
	row := newBoundRow(t, pref)
	row.Stepper.SetOverride("off")

	if !row.Overridden() {
		t.Fatal("Overridden() = false, want true")
	}
	view := row.View(false, nil)
	if !strings.Contains(view, "Off") || !strings.Contains(view, "set by scene") {
		t.Errorf("View() = %q, want forced label and scene note", view)
	}
	if strings.Contains(view, "[+]") || strings.Contains(view, "[-]") {
		t.Errorf("View() = %q, buttons should be hidden", view)
	}
}

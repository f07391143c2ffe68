package tui

import (
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/camset/internal/config"
	"github.com/muurk/camset/internal/preference"
	"github.com/muurk/camset/internal/scheduler"
	"github.com/muurk/camset/internal/stepper"
)

func newTestPopup(t *testing.T, opts ...PopupOption) (*PopupModel, *scheduler.Loop) {
	t.Helper()
	loop := scheduler.NewLoop(4)
	t.Cleanup(loop.Close)
	return NewPopupModel(preference.DefaultGroup(), loop, opts...), loop
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func focusKey(t *testing.T, m *PopupModel, key string) *Row {
	t.Helper()
	for i, r := range m.Rows() {
		if r.Pref.Key == key {
			m.focus = i
			return r
		}
	}
	t.Fatalf("no row for %q", key)
	return nil
}

// waitFire reads the next expired timer from loop.
func waitFire(t *testing.T, loop *scheduler.Loop) fireMsg {
	t.Helper()
	select {
	case f := <-loop.Fires():
		return fireMsg(f)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a scheduler fire")
		return fireMsg{}
	}
}

func TestNewPopupModelBindsEveryRow(t *testing.T) {
	m, _ := newTestPopup(t)

	if len(m.Rows()) != len(preference.DefaultGroup().Preferences) {
		t.Fatalf("Rows() = %d, want one per preference", len(m.Rows()))
	}
	for _, r := range m.Rows() {
		if !r.Stepper.Bound() {
			t.Errorf("row %s is not bound", r.Pref.Key)
		}
		if r.Entry() != r.Pref.Entry() {
			t.Errorf("row %s shows %q, want %q", r.Pref.Key, r.Entry(), r.Pref.Entry())
		}
		if r.Overridden() {
			t.Errorf("row %s overridden with the auto scene", r.Pref.Key)
		}
	}
	if m.Dirty() {
		t.Error("Dirty() = true before any change")
	}
}

func TestPopupFocusMovement(t *testing.T) {
	m, _ := newTestPopup(t)

	m.Update(keyMsg("up"))
	if m.Focus() != 0 {
		t.Errorf("Focus() = %d after up at top, want 0", m.Focus())
	}
	m.Update(keyMsg("down"))
	m.Update(keyMsg("j"))
	if m.Focus() != 2 {
		t.Errorf("Focus() = %d, want 2", m.Focus())
	}
	for i := 0; i < 20; i++ {
		m.Update(keyMsg("down"))
	}
	if m.Focus() != len(m.Rows())-1 {
		t.Errorf("Focus() = %d, want last row", m.Focus())
	}
}

func TestPopupKeyStepping(t *testing.T) {
	m, loop := newTestPopup(t)
	row := focusKey(t, m, preference.KeyPictureSize)
	start := row.Stepper.Index()

	m.Update(keyMsg("right"))
	if row.Stepper.Index() != start-1 {
		t.Errorf("Index() after next = %d, want %d", row.Stepper.Index(), start-1)
	}
	if row.Stepper.State() != stepper.Idle {
		t.Error("a key press should release immediately")
	}
	if loop.Pending() != 0 {
		t.Errorf("Pending() = %d after a key tap, want 0", loop.Pending())
	}
	if !m.Dirty() {
		t.Error("Dirty() = false after a step")
	}

	m.Update(keyMsg("-"))
	m.Update(keyMsg("-"))
	if row.Stepper.Index() != start+1 {
		t.Errorf("Index() after two previous = %d, want %d", row.Stepper.Index(), start+1)
	}
	if row.Pref.Value() != row.Pref.EntryValues[start+1] {
		t.Errorf("stored value = %q, want %q", row.Pref.Value(), row.Pref.EntryValues[start+1])
	}
}

func TestPopupKeyStepAtBoundary(t *testing.T) {
	m, _ := newTestPopup(t)
	row := focusKey(t, m, preference.KeyJPEGQuality)

	m.Update(keyMsg("+"))
	if row.Stepper.Index() != 0 {
		t.Fatalf("Index() = %d, want 0", row.Stepper.Index())
	}
	if !strings.Contains(m.errMsg, "first value") {
		t.Errorf("errMsg = %q, want boundary message", m.errMsg)
	}
	if m.Dirty() {
		t.Error("Dirty() = true, nothing changed")
	}
}

func TestPopupSceneOverrides(t *testing.T) {
	m, _ := newTestPopup(t)
	flash := m.Row(preference.KeyFlashMode)
	focus := m.Row(preference.KeyFocusMode)
	focusKey(t, m, preference.KeySceneMode)

	// auto -> action
	m.Update(keyMsg("left"))
	if !flash.Overridden() || flash.Entry() != "Off" {
		t.Errorf("flash row = %q overridden=%v, want Off forced", flash.Entry(), flash.Overridden())
	}
	if flash.NextVisible() || flash.PreviousVisible() {
		t.Error("forced row should hide both buttons")
	}
	if flash.Pref.Value() != "auto" {
		t.Errorf("forced row changed the stored value to %q", flash.Pref.Value())
	}

	// action -> landscape changes the forced focus value.
	m.Update(keyMsg("left"))
	m.Update(keyMsg("left"))
	if focus.Entry() != "Infinity" {
		t.Errorf("focus row = %q, want Infinity", focus.Entry())
	}

	focusKey(t, m, preference.KeyFlashMode)
	m.Update(keyMsg("right"))
	if !strings.Contains(m.errMsg, "scene mode") {
		t.Errorf("errMsg = %q, want scene mode message", m.errMsg)
	}

	// Back to auto releases the rows at their stored values.
	focusKey(t, m, preference.KeySceneMode)
	for i := 0; i < 3; i++ {
		m.Update(keyMsg("right"))
	}
	if flash.Overridden() || flash.Entry() != "Auto" {
		t.Errorf("flash row = %q overridden=%v, want Auto released", flash.Entry(), flash.Overridden())
	}
	if !flash.PreviousVisible() || flash.NextVisible() {
		t.Error("released row at index 0 should show only the previous button")
	}
}

func TestPopupMouseHold(t *testing.T) {
	m, loop := newTestPopup(t, WithRepeat(5*time.Millisecond, 5*time.Millisecond))
	row := m.Row(preference.KeyExposure)
	var idx int
	for i, r := range m.Rows() {
		if r == row {
			idx = i
		}
	}
	nextStart, _ := row.nextColumns()

	m.Update(tea.MouseMsg{
		X:      nextStart,
		Y:      idx + headerLines,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	if m.Focus() != idx {
		t.Errorf("Focus() = %d, want %d", m.Focus(), idx)
	}
	if row.Stepper.Index() != 1 || row.Stepper.State() != stepper.Stepping {
		t.Fatalf("after press Index() = %d State() = %v, want 1 stepping", row.Stepper.Index(), row.Stepper.State())
	}
	if !strings.Contains(m.View(), "Exposure") {
		t.Error("View() should render the rows")
	}

	m.Update(waitFire(t, loop))
	if row.Stepper.Index() != 0 {
		t.Errorf("Index() after first repeat = %d, want 0", row.Stepper.Index())
	}

	// The next repeat hits the boundary and ends the hold.
	m.Update(waitFire(t, loop))
	if row.Stepper.State() != stepper.Idle || m.held != nil {
		t.Errorf("hold should end at the boundary, state = %v", row.Stepper.State())
	}

	m.Update(tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if row.Stepper.Index() != 0 {
		t.Errorf("Index() = %d after release, want 0", row.Stepper.Index())
	}
}

func TestPopupMouseRelease(t *testing.T) {
	m, loop := newTestPopup(t)
	row := m.Rows()[0]
	prevStart, _ := row.previousColumns()

	m.Update(tea.MouseMsg{X: prevStart, Y: headerLines, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if row.Stepper.State() != stepper.Stepping {
		t.Fatal("press on [-] should start stepping")
	}
	m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if row.Stepper.State() != stepper.Idle {
		t.Error("release anywhere should end the hold")
	}
	if loop.Pending() != 0 {
		t.Errorf("Pending() = %d after release, want 0", loop.Pending())
	}
}

func TestPopupReset(t *testing.T) {
	m, _ := newTestPopup(t)
	row := focusKey(t, m, preference.KeyColorEffect)

	m.Update(keyMsg("-"))
	m.Update(keyMsg("-"))
	m.Update(keyMsg("r"))
	if row.Pref.Value() != row.Pref.DefaultValue {
		t.Errorf("value after reset = %q, want %q", row.Pref.Value(), row.Pref.DefaultValue)
	}
}

func TestPopupSave(t *testing.T) {
	t.Setenv(config.ConfigDirEnvVar, t.TempDir())

	m, _ := newTestPopup(t, WithRegistry(config.NewRegistry()))
	focusKey(t, m, preference.KeyPictureSize)
	m.Update(keyMsg("-"))
	m.Update(keyMsg("s"))

	if m.Dirty() {
		t.Error("Dirty() = true after save")
	}
	path, _ := config.GetConfigPath()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	loaded, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Values[preference.KeyPictureSize] != "2048x1536" {
		t.Errorf("saved picture size = %q, want 2048x1536", loaded.Values[preference.KeyPictureSize])
	}
}

func TestPopupSaveWithoutRegistry(t *testing.T) {
	m, _ := newTestPopup(t)
	m.Update(keyMsg("s"))
	if m.errMsg == "" {
		t.Error("save without a registry should report an error")
	}
}

func TestPopupListenerFactory(t *testing.T) {
	calls := map[string]int{}
	factory := func(pref *preference.ListPreference, _ *stepper.Stepper) stepper.Listener {
		return stepper.ListenerFunc(func() { calls[pref.Key]++ })
	}
	m, _ := newTestPopup(t, WithListenerFactory(factory))

	focusKey(t, m, preference.KeySceneMode)
	m.Update(keyMsg("-"))

	if calls[preference.KeySceneMode] != 1 {
		t.Errorf("scene listener calls = %d, want 1", calls[preference.KeySceneMode])
	}
	for _, key := range preference.OverriddenKeys {
		if calls[key] != 1 {
			t.Errorf("%s listener calls = %d, want 1 for the override", key, calls[key])
		}
	}
}

func TestPopupQuitUnbinds(t *testing.T) {
	m, loop := newTestPopup(t)
	row := m.Rows()[0]
	prevStart, _ := row.previousColumns()
	m.Update(tea.MouseMsg{X: prevStart, Y: headerLines, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	for _, r := range m.Rows() {
		if r.Stepper.Bound() {
			t.Errorf("row %s still bound after quit", r.Pref.Key)
		}
	}
	if loop.Pending() != 0 {
		t.Errorf("Pending() = %d after quit, want 0", loop.Pending())
	}
}

func TestWaitForFireReturnsAfterClose(t *testing.T) {
	loop := scheduler.NewLoop(1)
	cmd := waitForFire(loop)

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	loop.Close()

	select {
	case msg := <-done:
		if msg != nil {
			t.Errorf("waitForFire() after Close = %v, want nil", msg)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("waitForFire() still blocked after Close")
	}
}

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/muurk/camset/internal/config"
	"github.com/muurk/camset/internal/logging"
	"github.com/muurk/camset/internal/preference"
	"github.com/muurk/camset/internal/scheduler"
	"github.com/muurk/camset/internal/stepper"
)

// headerLines is the number of lines above the first row.
const headerLines = 2

// fireMsg carries an expired scheduler timer back into the update loop.
type fireMsg scheduler.Fire

// waitForFire blocks on the scheduler and returns its next expired timer,
// or nil once the scheduler is closed.
func waitForFire(loop *scheduler.Loop) tea.Cmd {
	return func() tea.Msg {
		select {
		case f := <-loop.Fires():
			return fireMsg(f)
		case <-loop.Done():
			return nil
		}
	}
}

// ListenerFactory builds an extra change listener for one row.
type ListenerFactory func(pref *preference.ListPreference, st *stepper.Stepper) stepper.Listener

// PopupOption configures a PopupModel.
type PopupOption func(*PopupModel)

// WithRegistry enables saving to registry.
func WithRegistry(registry *config.Registry) PopupOption {
	return func(m *PopupModel) { m.registry = registry }
}

// WithListenerFactory attaches extra listeners to every row, such as the
// websocket mirror.
func WithListenerFactory(f ListenerFactory) PopupOption {
	return func(m *PopupModel) { m.factories = append(m.factories, f) }
}

// WithRepeat sets the auto-repeat timing for mouse presses.
func WithRepeat(delay, interval time.Duration) PopupOption {
	return func(m *PopupModel) {
		m.repeatDelay = delay
		m.repeatInterval = interval
	}
}

// heldButton is the mouse press in progress.
type heldButton struct {
	row int
	dir stepper.Direction
}

// PopupModel is the settings popup: one Row per preference in a group.
// Methods use a pointer receiver because each row's stepper calls back
// into the model.
type PopupModel struct {
	group    *preference.Group
	rows     []*Row
	focus    int
	loop     *scheduler.Loop
	registry *config.Registry

	factories      []ListenerFactory
	repeatDelay    time.Duration
	repeatInterval time.Duration

	held   *heldButton
	dirty  bool
	status string
	errMsg string

	keys popupKeyMap
	help help.Model

	Width  int
	Height int
}

// NewPopupModel builds a popup for group. Every row gets a stepper bound to
// its preference, timed by loop.
func NewPopupModel(group *preference.Group, loop *scheduler.Loop, opts ...PopupOption) *PopupModel {
	m := &PopupModel{
		group:          group,
		loop:           loop,
		repeatDelay:    stepper.DefaultRepeatDelay,
		repeatInterval: stepper.DefaultRepeatInterval,
		keys:           newPopupKeyMap(),
		help:           help.New(),
	}
	for _, opt := range opts {
		opt(m)
	}

	log := logging.Named("stepper")
	for _, pref := range group.Preferences {
		row := newRow(pref)
		st := stepper.New(row, loop,
			stepper.WithLogger(log.With(zap.String("key", pref.Key))),
			stepper.WithRepeat(m.repeatDelay, m.repeatInterval),
		)
		row.Stepper = st
		for _, f := range m.factories {
			row.observers = append(row.observers, f(pref, st))
		}
		st.SetListener(m.changeListener(row))
		st.Bind(pref)
		m.rows = append(m.rows, row)
	}
	m.applySceneOverrides()
	return m
}

// changeListener is the per-row listener: it records the change, updates
// scene overrides and fans out to the extra listeners.
func (m *PopupModel) changeListener(row *Row) stepper.Listener {
	return stepper.ListenerFunc(func() {
		m.dirty = true
		m.errMsg = ""
		m.status = fmt.Sprintf("%s: %s", row.Pref.Title, row.Pref.Entry())
		logging.LogSettingChanged(row.Pref.Key, row.Pref.Value(), row.Pref.Entry(), row.Stepper.Index())
		if row.Pref.Key == preference.KeySceneMode {
			m.applySceneOverrides()
		}
		for _, o := range row.observers {
			o.OnSettingChanged()
		}
	})
}

// applySceneOverrides freezes the rows the current scene forces and
// releases the others.
func (m *PopupModel) applySceneOverrides() {
	scene, err := m.group.Find(preference.KeySceneMode)
	if err != nil {
		return
	}
	forced := preference.SceneOverrides(scene.Value())
	for _, key := range preference.OverriddenKeys {
		row := m.Row(key)
		if row == nil {
			continue
		}
		value, ok := forced[key]
		current, was := row.Stepper.Override()
		switch {
		case ok && (!was || current != value):
			row.Stepper.SetOverride(value)
		case !ok && was:
			row.Stepper.ClearOverride()
		default:
			continue
		}
		if m.held != nil && m.rows[m.held.row] == row {
			m.held = nil
		}
		for _, o := range row.observers {
			o.OnSettingChanged()
		}
	}
}

// Row returns the row editing key, or nil.
func (m *PopupModel) Row(key string) *Row {
	for _, r := range m.rows {
		if r.Pref.Key == key {
			return r
		}
	}
	return nil
}

// Rows returns the rows in display order.
func (m *PopupModel) Rows() []*Row {
	return m.rows
}

// Focus returns the focused row index.
func (m *PopupModel) Focus() int {
	return m.focus
}

// Dirty reports whether settings changed since the last save.
func (m *PopupModel) Dirty() bool {
	return m.dirty
}

// Init starts listening for scheduler fires.
func (m *PopupModel) Init() tea.Cmd {
	return waitForFire(m.loop)
}

// Update handles key, mouse and timer messages.
func (m *PopupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case fireMsg:
		m.loop.Dispatch(scheduler.Fire(msg))
		if m.held != nil && m.rows[m.held.row].Stepper.State() == stepper.Idle {
			m.held = nil
		}
		return m, waitForFire(m.loop)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *PopupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.focus > 0 {
			m.focus--
		}

	case key.Matches(msg, m.keys.Down):
		if m.focus < len(m.rows)-1 {
			m.focus++
		}

	case key.Matches(msg, m.keys.Next):
		m.tap(stepper.Next)

	case key.Matches(msg, m.keys.Previous):
		m.tap(stepper.Previous)

	case key.Matches(msg, m.keys.Reset):
		m.reset()

	case key.Matches(msg, m.keys.Save):
		m.save()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// tap is a key press: the terminal has no key-up event, so a press is
// released immediately and the terminal's own key repeat supplies holding.
func (m *PopupModel) tap(dir stepper.Direction) {
	if len(m.rows) == 0 {
		return
	}
	row := m.rows[m.focus]
	if row.Overridden() {
		m.errMsg = fmt.Sprintf("%s is set by the scene mode", row.Pref.Title)
		return
	}
	if !row.Stepper.CanStep(dir) {
		m.errMsg = fmt.Sprintf("%s is already at its %s value", row.Pref.Title, limitName(dir))
		return
	}
	row.Stepper.PressStart(dir)
	row.Stepper.PressEnd(dir)
}

func limitName(dir stepper.Direction) string {
	if dir == stepper.Next {
		return "first"
	}
	return "last"
}

// handleMouse maps left-button press and release to the button under the
// pointer. Release ends the press wherever the pointer is.
func (m *PopupModel) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		idx := msg.Y - headerLines
		if idx < 0 || idx >= len(m.rows) {
			return
		}
		m.focus = idx
		dir, ok := m.rows[idx].HitTest(msg.X)
		if !ok {
			return
		}
		m.releaseHeld()
		st := m.rows[idx].Stepper
		st.PressStart(dir)
		if st.State() == stepper.Stepping {
			m.held = &heldButton{row: idx, dir: dir}
		}

	case tea.MouseActionRelease:
		m.releaseHeld()
	}
}

func (m *PopupModel) releaseHeld() {
	if m.held == nil {
		return
	}
	m.rows[m.held.row].Stepper.PressEnd(m.held.dir)
	m.held = nil
}

func (m *PopupModel) reset() {
	if len(m.rows) == 0 {
		return
	}
	row := m.rows[m.focus]
	if row.Overridden() {
		m.errMsg = fmt.Sprintf("%s is set by the scene mode", row.Pref.Title)
		return
	}
	idx := row.Pref.FindIndexOfValue(row.Pref.DefaultValue)
	if idx == row.Stepper.Index() {
		return
	}
	row.Stepper.StepTo(idx)
}

func (m *PopupModel) save() {
	if m.registry == nil {
		m.errMsg = "no configuration to save to"
		return
	}
	m.registry.CaptureFrom(m.group)
	if err := m.registry.Save(); err != nil {
		logging.Error("Failed to save settings", zap.Error(err))
		m.errMsg = err.Error()
		return
	}
	m.dirty = false
	m.errMsg = ""
	m.status = "Settings saved"
}

// Close releases any held press and unbinds every stepper so no pending
// repeat can fire afterwards.
func (m *PopupModel) Close() {
	m.held = nil
	for _, r := range m.rows {
		r.Stepper.Unbind()
	}
}

// View renders the popup.
func (m *PopupModel) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(AppName))
	b.WriteString(" ")
	b.WriteString(SubtitleStyle.Render(m.group.Title + " · " + AppVersion()))
	b.WriteString("\n\n")

	for i, row := range m.rows {
		var held *stepper.Direction
		if m.held != nil && m.held.row == i {
			held = &m.held.dir
		}
		b.WriteString(row.View(i == m.focus, held))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.errMsg != "":
		b.WriteString(StatusErrorStyle.Render(m.errMsg))
	case m.status != "":
		status := m.status
		if m.dirty {
			status += " (unsaved)"
		}
		b.WriteString(StatusStyle.Render(status))
	}
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

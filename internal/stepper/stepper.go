package stepper

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/muurk/camset/internal/scheduler"
)

const (
	// DefaultRepeatDelay is the wait before the first auto-repeat. It is
	// longer than the interval so a short press changes only one step.
	DefaultRepeatDelay = 300 * time.Millisecond

	// DefaultRepeatInterval is the wait between later auto-repeats.
	DefaultRepeatInterval = 100 * time.Millisecond
)

// Direction selects which button is pressed.
type Direction int

const (
	// Next moves towards index 0.
	Next Direction = iota
	// Previous moves towards the end of the value list.
	Previous
)

func (d Direction) String() string {
	switch d {
	case Next:
		return "next"
	case Previous:
		return "previous"
	default:
		return "unknown"
	}
}

// delta is the index change for one step in this direction.
func (d Direction) delta() int {
	if d == Next {
		return -1
	}
	return 1
}

// State is the press-and-hold state of the control.
type State int

const (
	// Idle means no button is held.
	Idle State = iota
	// Stepping means a button is held and auto-repeat is armed.
	Stepping
)

func (s State) String() string {
	if s == Stepping {
		return "stepping"
	}
	return "idle"
}

// Store is the preference the control edits.
type Store interface {
	zapcore.ObjectMarshaler

	// Len returns the number of selectable values.
	Len() int
	// Value returns the currently stored value.
	Value() string
	// FindIndexOfValue returns the index of value, or -1.
	FindIndexOfValue(value string) int
	// SetValueIndex stores the value at index.
	SetValueIndex(index int)
	// Entry returns the label of the stored value.
	Entry() string
	// EntryAt returns the label at index.
	EntryAt(index int) string
}

// Display receives the visible state of the control.
type Display interface {
	SetEntry(label string)
	SetNextVisible(visible bool)
	SetPreviousVisible(visible bool)
}

// Listener is notified after every successful step.
type Listener interface {
	OnSettingChanged()
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func()

// OnSettingChanged calls f.
func (f ListenerFunc) OnSettingChanged() { f() }

// Option configures a Stepper.
type Option func(*Stepper)

// WithLogger sets the diagnostic sink. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Stepper) {
		if logger != nil {
			s.log = logger
		}
	}
}

// WithRepeat overrides the auto-repeat timings.
func WithRepeat(delay, interval time.Duration) Option {
	return func(s *Stepper) {
		if delay > 0 {
			s.repeatDelay = delay
		}
		if interval > 0 {
			s.repeatInterval = interval
		}
	}
}

// WithListener sets the change listener.
func WithListener(l Listener) Option {
	return func(s *Stepper) {
		s.listener = l
	}
}

// Stepper is a single inline setting picker.
type Stepper struct {
	display  Display
	sched    scheduler.Scheduler
	log      *zap.Logger
	listener Listener

	repeatDelay    time.Duration
	repeatInterval time.Duration

	store    Store
	index    int
	override string
	hasOver  bool

	state     State
	direction Direction
	timer     scheduler.Timer
}

// New creates an unbound Stepper writing to display and timing repeats with
// sched.
func New(display Display, sched scheduler.Scheduler, opts ...Option) *Stepper {
	s := &Stepper{
		display:        display,
		sched:          sched,
		log:            zap.NewNop(),
		repeatDelay:    DefaultRepeatDelay,
		repeatInterval: DefaultRepeatInterval,
		index:          -1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetListener replaces the change listener. nil disables notifications.
func (s *Stepper) SetListener(l Listener) {
	s.listener = l
}

// Bind attaches the control to store and selects the store's current value.
// If that value is not among the store's values the index stays invalid
// (-1) and an error is logged.
func (s *Stepper) Bind(store Store) {
	s.cancelRepeat()
	s.store = store
	s.index = store.FindIndexOfValue(store.Value())
	if s.index < 0 {
		s.log.Error("Initial value not found in preference",
			zap.String("value", store.Value()),
			zap.Object("preference", store),
		)
	}
	s.updateView()
}

// Unbind detaches the store, cancels any repeat in progress and drops the
// override. The control ignores input until bound again.
func (s *Stepper) Unbind() {
	s.cancelRepeat()
	s.store = nil
	s.index = -1
	s.override = ""
	s.hasOver = false
}

// Bound reports whether a store is attached.
func (s *Stepper) Bound() bool {
	return s.store != nil
}

// Index returns the current index, -1 when unbound or unresolved.
func (s *Stepper) Index() int {
	return s.index
}

// State returns the press-and-hold state.
func (s *Stepper) State() State {
	return s.state
}

// Direction returns the held direction. Only meaningful while Stepping.
func (s *Stepper) Direction() Direction {
	return s.direction
}

// Override returns the override value and whether one is set.
func (s *Stepper) Override() (string, bool) {
	return s.override, s.hasOver
}

// CanStep reports whether a step in d would currently be accepted.
func (s *Stepper) CanStep(d Direction) bool {
	if s.store == nil || s.hasOver {
		return false
	}
	return s.inRange(s.index + d.delta())
}

// SetOverride freezes the control on value. The display shows value's label
// and both buttons are hidden. A value the store does not know is logged
// and the display keeps its previous label. An empty value clears the
// override.
func (s *Stepper) SetOverride(value string) {
	if value == "" {
		s.ClearOverride()
		return
	}
	s.cancelRepeat()
	s.override = value
	s.hasOver = true
	s.updateView()
}

// ClearOverride returns to normal stepping from the stored index.
func (s *Stepper) ClearOverride() {
	s.override = ""
	s.hasOver = false
	s.updateView()
}

// StepTo selects index. It returns false without any change when index is
// outside the value list.
func (s *Stepper) StepTo(index int) bool {
	if s.store == nil || !s.inRange(index) {
		return false
	}
	s.index = index
	s.store.SetValueIndex(index)
	if s.listener != nil {
		s.listener.OnSettingChanged()
	}
	s.updateView()
	return true
}

// PressStart handles a button going down. It steps once and, if that
// worked, starts auto-repeat in d. Presses while overridden or while
// another press is held are ignored.
func (s *Stepper) PressStart(d Direction) {
	if s.store == nil || s.hasOver || s.state == Stepping {
		return
	}
	if !s.StepTo(s.index + d.delta()) {
		return
	}
	s.state = Stepping
	s.direction = d
	s.timer = s.sched.AfterFunc(s.repeatDelay, s.repeat)
}

// PressEnd handles a button being released or the press being cancelled.
func (s *Stepper) PressEnd(d Direction) {
	if s.state != Stepping || s.direction != d {
		return
	}
	s.cancelRepeat()
}

func (s *Stepper) repeat() {
	s.timer = nil
	if s.state != Stepping {
		return
	}
	if !s.StepTo(s.index + s.direction.delta()) {
		s.state = Idle
		return
	}
	s.timer = s.sched.AfterFunc(s.repeatInterval, s.repeat)
}

func (s *Stepper) cancelRepeat() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.state = Idle
}

func (s *Stepper) inRange(index int) bool {
	return index >= 0 && index < s.store.Len()
}

func (s *Stepper) updateView() {
	if s.store == nil || s.display == nil {
		return
	}
	if !s.hasOver {
		s.display.SetEntry(s.store.Entry())
		s.display.SetNextVisible(s.index != 0)
		s.display.SetPreviousVisible(s.index != s.store.Len()-1)
		return
	}

	if i := s.store.FindIndexOfValue(s.override); i != -1 {
		s.display.SetEntry(s.store.EntryAt(i))
	} else {
		s.log.Error("Failed to find override value",
			zap.String("value", s.override),
			zap.Object("preference", s.store),
		)
	}
	s.display.SetNextVisible(false)
	s.display.SetPreviousVisible(false)
}

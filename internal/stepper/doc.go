// Package stepper implements the inline setting picker control: a row that
// shows a setting's current value with two buttons that step through an
// ordered list of values.
//
// # Directions
//
// The button names follow the camera settings popup they come from. Value
// lists are ordered from the "largest" choice down, so the Next button
// moves towards index 0 and the Previous button moves towards the end of
// the list:
//
//	Next      index - 1   hidden at index 0
//	Previous  index + 1   hidden at index n-1
//
// # Press and hold
//
// PressStart steps once immediately. If that step succeeded the control
// enters the Stepping state and arms a repeat timer: the first repeat fires
// after the initial delay (300ms) and later ones every repeat interval
// (100ms). A repeat that hits either end of the list, or PressEnd for the
// held direction, returns the control to Idle and cancels the timer.
//
//	Idle --PressStart(d), step ok--> Stepping(d)
//	Stepping(d) --timer, step ok--> Stepping(d)
//	Stepping(d) --timer, step fails--> Idle
//	Stepping(d) --PressEnd(d)--> Idle
//
// # Override
//
// Scene modes can force a setting to a fixed value. While an override is
// set the control shows the override's label, hides both buttons and
// ignores presses. Clearing the override restores the previous index.
//
// # Collaborators
//
// Everything the control touches is injected: the value Store, the Display
// it writes to, the Scheduler for repeat timers, the Listener notified on
// every successful step and the zap logger that receives diagnostics. All
// methods must be called from one goroutine, the same one the Scheduler
// delivers callbacks on.
package stepper

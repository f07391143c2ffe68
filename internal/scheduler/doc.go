// Package scheduler provides cancellable delayed callbacks for event-driven
// UI components.
//
// Components such as the settings stepper never start goroutines or call
// time.AfterFunc directly. They receive a Scheduler and ask it to run a
// callback later. Two implementations are provided:
//
//   - Manual: a virtual clock advanced explicitly with Advance. Callbacks run
//     synchronously inside Advance, so tests and headless commands can drive
//     press-and-hold behaviour deterministically.
//   - Loop: real timers whose callbacks are handed back to the owning event
//     loop as Fire values. The loop calls Dispatch from its own goroutine,
//     which keeps every state change on a single logical thread.
//
// # Cancellation
//
// Timer.Stop guarantees the callback will not run afterwards, even when the
// underlying timer has already expired and its Fire is still queued. This
// lets a component cancel pending work on release or teardown without
// worrying about a stray callback mutating a destroyed object.
package scheduler

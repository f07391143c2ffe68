// Package tui implements the interactive camera settings popup.
//
// The popup is a Bubble Tea program showing one inline picker row per
// setting. Each Row is the display of a stepper.Stepper bound to a
// preference.ListPreference; the row renders the title, the current label
// and the two step buttons, blanking a button when the stepper hides it.
//
// # Input
//
//   - Keyboard: up/down move the focus, left/- and right/+ step the focused
//     row. Terminals do not report key releases, so every key event is a
//     press immediately followed by a release. Holding a key relies on the
//     terminal's own autorepeat.
//   - Mouse: pressing a row's button starts the stepper's press-and-hold
//     auto-repeat; releasing the button anywhere ends it.
//
// # Timers
//
// Repeat timers come from a scheduler.Loop. Expired timers arrive as
// messages through waitForFire and are dispatched inside Update, so every
// stepper callback runs on the Bubble Tea goroutine.
//
// # Scene modes
//
// When the scene mode row changes, rows for flash, white balance and focus
// are put into override mode with the values the scene forces, and released
// again when the scene returns to auto.
//
// # Usage Example
//
//	loop := scheduler.NewLoop(16)
//	defer loop.Close()
//	popup := tui.NewPopupModel(group, loop, tui.WithRegistry(registry))
//	program := tea.NewProgram(popup, tea.WithAltScreen(), tea.WithMouseCellMotion())
//	if _, err := program.Run(); err != nil {
//	    return err
//	}
package tui

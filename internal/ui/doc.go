// Package ui renders the non-interactive output of camset commands.
//
// Commands such as show, set and step print a header, the affected settings
// and a success or failure line using Lipgloss styles. TextDisplay is a
// stepper display for these commands: the stepper writes its label and
// button visibility into it and the command prints the resulting row.
//
// The interactive picker lives in package tui and has its own styles.
//
// # Logging Integration
//
// Output from this package goes to stdout. zap logging stays silent unless
// CAMSET_LOG_LEVEL is set, so the styled output is not interleaved with log
// lines.
package ui

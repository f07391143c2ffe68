// Camset is an interactive camera settings picker.
//
// Each setting is shown as an inline row with its current value and two
// buttons that step through the allowed values. Holding a button with the
// mouse repeats the step. Settings are saved to a YAML file and can be
// mirrored live to other terminals.
//
// Usage:
//
//	camset [command] [flags]
//
// Running without arguments opens the picker.
// See 'camset --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/camset/internal/logging"
	"github.com/muurk/camset/internal/version"
)

var logLevel string

func main() {
	defer logging.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "camset",
	Short: "Camera settings picker",
	Long: `An interactive picker for camera settings.

Each setting is a row showing its current value between two step buttons.
Use the arrow keys or click and hold the buttons to change values. Scene
modes lock flash, white balance and focus while they are active.

If no command is specified, the picker opens automatically.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPicker,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Initialize(logLevel)
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Log level (debug, info, warn, error); defaults to $"+logging.LogLevelEnvVar)

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("camset %s\n", version.Full())
	},
}

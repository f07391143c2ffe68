package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/camset/internal/config"
	"github.com/muurk/camset/internal/logging"
	"github.com/muurk/camset/internal/mirror"
	"github.com/muurk/camset/internal/preference"
	"github.com/muurk/camset/internal/scheduler"
	"github.com/muurk/camset/internal/tui"
	"github.com/muurk/camset/internal/ui"
)

var (
	mirrorEnabled bool
	mirrorPort    int
	noAdvertise   bool
)

func init() {
	for _, cmd := range []*cobra.Command{rootCmd, pickerCmd} {
		cmd.Flags().BoolVar(&mirrorEnabled, "mirror", false, "Serve live changes to 'camset watch' clients")
		cmd.Flags().IntVar(&mirrorPort, "mirror-port", 0, "Mirror TCP port (default from config)")
		cmd.Flags().BoolVar(&noAdvertise, "no-advertise", false, "Do not announce the mirror over mDNS")
	}
	rootCmd.AddCommand(pickerCmd)
}

var pickerCmd = &cobra.Command{
	Use:   "picker",
	Short: "Open the interactive settings picker",
	Long: `Open the interactive settings picker.

Keys: up/down select a setting, left/- and right/+ step it, r resets it to
its default, s saves, q quits. With mouse support, click and hold a [-] or
[+] button to step repeatedly.`,
	Example: `  # Open the picker (also the default command)
  camset picker

  # Mirror changes to other terminals
  camset picker --mirror`,
	RunE: runPicker,
}

func runPicker(cmd *cobra.Command, args []string) error {
	registry, err := config.LoadRegistry()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// The picker owns the terminal, so logs go to a file.
	if logLevel != "" || os.Getenv(logging.LogLevelEnvVar) != "" {
		logPath, err := registry.LogFilePath()
		if err != nil {
			return err
		}
		if err := logging.InitializeWithOutput(logLevel, logPath); err != nil {
			return err
		}
	}

	group := preference.DefaultGroup()
	registry.ApplyTo(group)

	loop := scheduler.NewLoop(16)
	defer loop.Close()

	prefs := registry.Preferences
	opts := []tui.PopupOption{
		tui.WithRegistry(registry),
		tui.WithRepeat(prefs.RepeatDelay(), prefs.RepeatInterval()),
	}

	var server *mirror.Server
	if mirrorEnabled || prefs.Mirror.Enabled {
		port := prefs.Mirror.Port
		if mirrorPort != 0 {
			port = mirrorPort
		}
		hub := mirror.NewHub()
		server = mirror.NewServer(hub, mirror.Config{
			Port:      port,
			Advertise: prefs.Mirror.Advertise && !noAdvertise,
		})
		if err := server.Start(); err != nil {
			return err
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				logging.Error("Mirror shutdown failed", zap.Error(err))
			}
		}()
		opts = append(opts, tui.WithListenerFactory(hub.Listener))
	}

	popup := tui.NewPopupModel(group, loop, opts...)
	program := tea.NewProgram(popup, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("picker failed: %w", err)
	}

	printer := ui.NewPrinter(os.Stdout)
	if server != nil {
		if err := mirrorFailure(server.Errors()); err != nil {
			printer.PrintError("Mirror stopped during the session", err,
				"Clients following 'camset watch' lost their connection",
				"Try another port with --mirror-port")
		} else {
			printer.Println(ui.HintStyle.Render("Mirror served on " + server.Addr()))
		}
	}
	if popup.Dirty() {
		printer.Println(ui.HintStyle.Render("Unsaved changes were discarded (press s in the picker to save)."))
	}
	return nil
}

// mirrorFailure returns the error the mirror stopped with, if it has
// already stopped. It does not wait.
func mirrorFailure(errs <-chan error) error {
	select {
	case err := <-errs:
		return err
	default:
		return nil
	}
}

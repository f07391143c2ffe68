package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/muurk/camset/internal/mirror"
	"github.com/muurk/camset/internal/ui"
)

var (
	watchAddr     string
	browseTimeout int
)

func init() {
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(discoverCmd)

	watchCmd.Flags().StringVar(&watchAddr, "addr", "", "Mirror address host:port (skips discovery)")
	watchCmd.Flags().IntVar(&browseTimeout, "timeout", 3, "Discovery timeout in seconds")
	discoverCmd.Flags().IntVar(&browseTimeout, "timeout", 3, "Discovery timeout in seconds")
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow a running picker's changes",
	Long: `Connect to a picker started with --mirror and print every setting
change as it happens. Without --addr the first mirror found over mDNS is
used.`,
	Example: `  camset watch
  camset watch --addr 192.168.1.20:8765`,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := watchAddr
	if addr == "" {
		endpoints, err := mirror.Browse(ctx, time.Duration(browseTimeout)*time.Second)
		if err != nil {
			return err
		}
		if len(endpoints) == 0 {
			return fmt.Errorf("no mirror found; start one with 'camset --mirror' or pass --addr")
		}
		addr = endpoints[0].Addr()
	}

	printer := ui.NewPrinter(os.Stdout)
	printer.PrintHeader("Watching settings", addr)
	timeStyle := lipgloss.NewStyle().Foreground(ui.MutedColor)
	forcedStyle := lipgloss.NewStyle().Foreground(ui.WarningColor)

	return mirror.Watch(ctx, addr, func(ev mirror.Event) {
		label := ui.SettingValueStyle.Render(ev.Shown())
		if ev.Overridden {
			label = forcedStyle.Render(ev.Shown() + " (scene)")
		}
		printer.Println(timeStyle.Render(ev.Time.Local().Format("15:04:05")) + "  " +
			ui.SettingTitleStyle.Render(ev.Title) + label)
	})
}

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "List pickers mirroring on the network",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("Looking for mirrors (timeout: %ds)...\n\n", browseTimeout)
		endpoints, err := mirror.Browse(cmd.Context(), time.Duration(browseTimeout)*time.Second)
		if err != nil {
			return fmt.Errorf("discovery failed: %w", err)
		}
		if len(endpoints) == 0 {
			fmt.Println("No mirrors found.")
			return nil
		}
		for i, ep := range endpoints {
			fmt.Printf("%d. %s\n", i+1, ep)
			if v := ep.Metadata["version"]; v != "" {
				fmt.Printf("   Version: %s\n", v)
			}
		}
		return nil
	},
}

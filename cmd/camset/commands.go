package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/muurk/camset/internal/config"
	"github.com/muurk/camset/internal/logging"
	"github.com/muurk/camset/internal/preference"
	"github.com/muurk/camset/internal/scheduler"
	"github.com/muurk/camset/internal/stepper"
	"github.com/muurk/camset/internal/ui"
)

var (
	outputFormat string
	holdFor      time.Duration
)

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(stepCmd)
	rootCmd.AddCommand(configCmd)

	showCmd.Flags().StringVar(&outputFormat, "format", "table", "Output format (table, json, yaml)")
	stepCmd.Flags().DurationVar(&holdFor, "hold", 0, "Keep the button held for this long (auto-repeat)")

	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
}

// loadGroup returns the camera settings with saved values applied.
func loadGroup() (*config.Registry, *preference.Group, error) {
	registry, err := config.LoadRegistry()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	group := preference.DefaultGroup()
	registry.ApplyTo(group)
	return registry, group, nil
}

// currentOverrides returns the values the saved scene mode forces.
func currentOverrides(group *preference.Group) map[string]string {
	scene, err := group.Find(preference.KeySceneMode)
	if err != nil {
		return nil
	}
	return preference.SceneOverrides(scene.Value())
}

// settingView is one setting in json/yaml output.
type settingView struct {
	Key     string   `json:"key" yaml:"key"`
	Title   string   `json:"title" yaml:"title"`
	Value   string   `json:"value" yaml:"value"`
	Label   string   `json:"label" yaml:"label"`
	Forced  string   `json:"forced,omitempty" yaml:"forced,omitempty"`
	Choices []string `json:"choices" yaml:"choices"`
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current camera settings",
	Example: `  # Styled table
  camset show

  # JSON for scripting
  camset show --format json`,
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	_, group, err := loadGroup()
	if err != nil {
		return err
	}
	overrides := currentOverrides(group)

	switch outputFormat {
	case "json", "yaml":
		views := make([]settingView, 0, len(group.Preferences))
		for _, p := range group.Preferences {
			views = append(views, settingView{
				Key:     p.Key,
				Title:   p.Title,
				Value:   p.Value(),
				Label:   p.Entry(),
				Forced:  overrides[p.Key],
				Choices: p.EntryValues,
			})
		}
		var data []byte
		if outputFormat == "json" {
			data, err = json.MarshalIndent(views, "", "  ")
		} else {
			data, err = yaml.Marshal(views)
		}
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", outputFormat, err)
		}
		fmt.Println(strings.TrimRight(string(data), "\n"))
	case "table":
		printer := ui.NewPrinter(os.Stdout)
		printer.PrintHeader(group.Title, "camset show")
		printer.PrintGroup(group, overrides)
	default:
		return fmt.Errorf("unknown format %q (want table, json or yaml)", outputFormat)
	}
	return nil
}

var setCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Select a setting value and save it",
	Long: `Select a setting value and save it.

The value may be given as the stored value (e.g. 2592x1944) or as its label
(e.g. 5MP). Run 'camset show --format json' to list keys and choices.`,
	Example: `  camset set picture-size 5MP
  camset set scene-mode night`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

func runSet(cmd *cobra.Command, args []string) error {
	registry, group, err := loadGroup()
	if err != nil {
		return err
	}
	pref, err := group.Find(args[0])
	if err != nil {
		return fmt.Errorf("%w (known: %s)", err, strings.Join(group.Keys(), ", "))
	}
	value := resolveValue(pref, args[1])
	if err := pref.SetValue(value); err != nil {
		return fmt.Errorf("%w (choices: %s)", err, strings.Join(pref.EntryValues, ", "))
	}
	if forced, ok := currentOverrides(group)[pref.Key]; ok {
		logging.Warn("Setting saved but currently forced by scene mode")
		defer ui.NewPrinter(os.Stdout).Println(ui.HintStyle.Render(
			fmt.Sprintf("   Note: the scene mode currently forces %s to %s", pref.Title, forced)))
	}

	registry.CaptureFrom(group)
	if err := registry.Save(); err != nil {
		return err
	}
	ui.NewPrinter(os.Stdout).PrintSuccess(fmt.Sprintf("%s set to %s", pref.Title, pref.Entry()))
	return nil
}

// resolveValue accepts either a stored value or a label (case-insensitive).
func resolveValue(pref *preference.ListPreference, arg string) string {
	if pref.FindIndexOfValue(arg) >= 0 {
		return arg
	}
	for i, label := range pref.Entries {
		if strings.EqualFold(label, arg) && i < len(pref.EntryValues) {
			return pref.EntryValues[i]
		}
	}
	return arg
}

var stepCmd = &cobra.Command{
	Use:   "step <key> next|previous",
	Short: "Press a setting's step button",
	Long: `Press a setting's step button without opening the picker.

"next" moves towards the first choice, "previous" towards the last one,
exactly like the [+] and [-] buttons. With --hold the button stays down
for the given time and auto-repeats (first repeat after the configured
delay, then at the configured interval).`,
	Example: `  # One step towards a larger picture size
  camset step picture-size next

  # Hold the button for one second
  camset step exposure previous --hold 1s`,
	Args: cobra.ExactArgs(2),
	RunE: runStep,
}

func parseDirection(arg string) (stepper.Direction, error) {
	switch strings.ToLower(arg) {
	case "next", "+", "increment":
		return stepper.Next, nil
	case "previous", "prev", "-", "decrement":
		return stepper.Previous, nil
	}
	return 0, fmt.Errorf("unknown direction %q (want next or previous)", arg)
}

var errNoChange = errors.New("setting did not change")

func runStep(cmd *cobra.Command, args []string) error {
	registry, group, err := loadGroup()
	if err != nil {
		return err
	}
	pref, err := group.Find(args[0])
	if err != nil {
		return err
	}
	dir, err := parseDirection(args[1])
	if err != nil {
		return err
	}

	before := pref.Entry()
	steps := 0
	display := ui.NewTextDisplay(pref.Title)
	clock := scheduler.NewManual()
	st := stepper.New(display, clock,
		stepper.WithLogger(logging.Named("stepper")),
		stepper.WithRepeat(registry.Preferences.RepeatDelay(), registry.Preferences.RepeatInterval()),
		stepper.WithListener(stepper.ListenerFunc(func() {
			steps++
			logging.LogSettingChanged(pref.Key, pref.Value(), pref.Entry(), pref.FindIndexOfValue(pref.Value()))
		})),
	)
	st.Bind(pref)
	defer st.Unbind()
	if forced, ok := currentOverrides(group)[pref.Key]; ok {
		st.SetOverride(forced)
	}

	printer := ui.NewPrinter(os.Stdout)
	if _, ok := st.Override(); ok {
		printer.PrintRow(display)
		return fmt.Errorf("%w: %s is set by the scene mode", errNoChange, pref.Title)
	}

	st.PressStart(dir)
	clock.Advance(holdFor)
	st.PressEnd(dir)

	printer.PrintRow(display)
	if steps == 0 {
		limit := "last"
		if dir == stepper.Next {
			limit = "first"
		}
		return fmt.Errorf("%w: %s is already at its %s value", errNoChange, pref.Title, limit)
	}

	registry.CaptureFrom(group)
	if err := registry.Save(); err != nil {
		return err
	}
	printer.PrintSuccess(fmt.Sprintf("%s: %s → %s", pref.Title, before, pref.Entry()),
		fmt.Sprintf("%d step(s) in %s", steps, clock.Now()))
	return nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with default settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("configuration already exists at %s", path)
		}
		if err := config.CreateDefaultConfig(); err != nil {
			return err
		}
		ui.NewPrinter(os.Stdout).PrintSuccess("Configuration created", path)
		return nil
	},
}

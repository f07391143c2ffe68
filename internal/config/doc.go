// Package config provides user configuration management for camset.
//
// The configuration is a YAML file holding the last selected value of every
// camera setting plus picker preferences (auto-repeat timing, log file and
// the websocket mirror).
//
// # Configuration File Location
//
//   - CAMSET_CONFIG_DIR, when set
//   - Linux: $XDG_CONFIG_HOME/camset/config.yaml or $HOME/.config/camset/config.yaml
//   - macOS: $HOME/.config/camset/config.yaml
//   - Windows: %LOCALAPPDATA%\camset\config.yaml
//
// # Usage Example
//
//	registry, err := config.LoadRegistry()
//	if err != nil {
//	    return err
//	}
//	group := preference.DefaultGroup()
//	registry.ApplyTo(group)
//
//	// ... edit settings ...
//
//	registry.CaptureFrom(group)
//	if err := registry.Save(); err != nil {
//	    return err
//	}
//
// # Thread Safety
//
// The shared registry is loaded through sync.Once. Saves are serialised by a
// mutex and written atomically via rename.
package config

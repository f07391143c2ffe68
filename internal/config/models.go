package config

import "time"

// Registry represents the entire user configuration file.
type Registry struct {
	Version     int               `yaml:"version"`
	Values      map[string]string `yaml:"values,omitempty"` // Selected value per setting key
	Preferences *Preferences      `yaml:"preferences,omitempty"`
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	RepeatDelayMs    int          `yaml:"repeat_delay_ms"`    // Hold time before the first auto-repeat
	RepeatIntervalMs int          `yaml:"repeat_interval_ms"` // Time between later auto-repeats
	LogFile          string       `yaml:"log_file,omitempty"` // Picker log file (default: camset.log in the config dir)
	Mirror           *MirrorPrefs `yaml:"mirror,omitempty"`
}

// MirrorPrefs controls the live websocket mirror of the picker.
type MirrorPrefs struct {
	Enabled   bool `yaml:"enabled"`   // Serve the mirror whenever the picker runs
	Port      int  `yaml:"port"`      // TCP port for the mirror HTTP server
	Advertise bool `yaml:"advertise"` // Announce the mirror over mDNS
}

// Defaults for a new configuration.
const (
	DefaultRepeatDelayMs    = 300
	DefaultRepeatIntervalMs = 100
	DefaultMirrorPort       = 8765
)

func defaultPreferences() *Preferences {
	return &Preferences{
		RepeatDelayMs:    DefaultRepeatDelayMs,
		RepeatIntervalMs: DefaultRepeatIntervalMs,
		Mirror: &MirrorPrefs{
			Port:      DefaultMirrorPort,
			Advertise: true,
		},
	}
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version:     1,
		Values:      make(map[string]string),
		Preferences: defaultPreferences(),
	}
}

// RepeatDelay returns the configured initial auto-repeat delay.
func (p *Preferences) RepeatDelay() time.Duration {
	if p == nil || p.RepeatDelayMs <= 0 {
		return DefaultRepeatDelayMs * time.Millisecond
	}
	return time.Duration(p.RepeatDelayMs) * time.Millisecond
}

// RepeatInterval returns the configured auto-repeat interval.
func (p *Preferences) RepeatInterval() time.Duration {
	if p == nil || p.RepeatIntervalMs <= 0 {
		return DefaultRepeatIntervalMs * time.Millisecond
	}
	return time.Duration(p.RepeatIntervalMs) * time.Millisecond
}

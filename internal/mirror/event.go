package mirror

import (
	"time"

	"github.com/muurk/camset/internal/preference"
	"github.com/muurk/camset/internal/stepper"
)

// Event is one setting's state as published to mirror clients.
type Event struct {
	Key        string    `json:"key"`
	Title      string    `json:"title"`
	Value      string    `json:"value"`
	Label      string    `json:"label"`
	Index      int       `json:"index"`
	Overridden bool      `json:"overridden"`
	Forced     string    `json:"forced,omitempty"` // Value forced by the scene mode
	Time       time.Time `json:"time"`
}

// NewEvent captures pref's current state. st may be nil.
func NewEvent(pref *preference.ListPreference, st *stepper.Stepper) Event {
	ev := Event{
		Key:   pref.Key,
		Title: pref.Title,
		Value: pref.Value(),
		Label: pref.Entry(),
		Index: pref.FindIndexOfValue(pref.Value()),
		Time:  time.Now(),
	}
	if st != nil {
		if forced, ok := st.Override(); ok {
			ev.Overridden = true
			ev.Forced = forced
			if label := pref.EntryAt(pref.FindIndexOfValue(forced)); label != "" {
				ev.Label = label
			}
		}
	}
	return ev
}

// Shown returns the label a viewer should display.
func (e Event) Shown() string {
	if e.Label != "" {
		return e.Label
	}
	if e.Overridden {
		return e.Forced
	}
	return e.Value
}

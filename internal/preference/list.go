package preference

import (
	"errors"
	"fmt"

	"go.uber.org/zap/zapcore"
)

var (
	// ErrUnknownKey is returned when a group has no preference with a key.
	ErrUnknownKey = errors.New("unknown setting")
	// ErrUnknownValue is returned when a value is not one of a preference's
	// entry values.
	ErrUnknownValue = errors.New("unknown value")
)

// ListPreference is a setting with a fixed, ordered list of choices. Each
// choice has a stored value and a display label (its entry).
type ListPreference struct {
	Key          string
	Title        string
	Entries      []string
	EntryValues  []string
	DefaultValue string

	value string
}

// NewListPreference creates a preference from parallel entry and value
// slices. The current value starts at def.
func NewListPreference(key, title string, entries, values []string, def string) *ListPreference {
	return &ListPreference{
		Key:          key,
		Title:        title,
		Entries:      entries,
		EntryValues:  values,
		DefaultValue: def,
		value:        def,
	}
}

// Len returns the number of choices.
func (p *ListPreference) Len() int {
	return len(p.EntryValues)
}

// Value returns the current value.
func (p *ListPreference) Value() string {
	return p.value
}

// SetValue selects value. It fails with ErrUnknownValue when value is not
// an entry value.
func (p *ListPreference) SetValue(value string) error {
	if p.FindIndexOfValue(value) < 0 {
		return fmt.Errorf("%w %q for %s", ErrUnknownValue, value, p.Key)
	}
	p.value = value
	return nil
}

// SetValueIndex selects the value at index. Out-of-range indexes are
// ignored.
func (p *ListPreference) SetValueIndex(index int) {
	if index < 0 || index >= len(p.EntryValues) {
		return
	}
	p.value = p.EntryValues[index]
}

// FindIndexOfValue returns the index of value, or -1.
func (p *ListPreference) FindIndexOfValue(value string) int {
	for i, v := range p.EntryValues {
		if v == value {
			return i
		}
	}
	return -1
}

// Entry returns the label of the current value, or "" if the value is not
// in the list.
func (p *ListPreference) Entry() string {
	return p.EntryAt(p.FindIndexOfValue(p.value))
}

// EntryAt returns the label at index, or "" when index is out of range.
func (p *ListPreference) EntryAt(index int) string {
	if index < 0 || index >= len(p.Entries) {
		return ""
	}
	return p.Entries[index]
}

// Reset restores the default value.
func (p *ListPreference) Reset() {
	p.value = p.DefaultValue
}

// MarshalLogObject dumps the preference for diagnostics.
func (p *ListPreference) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("key", p.Key)
	enc.AddString("value", p.value)
	enc.AddString("default", p.DefaultValue)
	return enc.AddArray("entries", zapcore.ArrayMarshalerFunc(func(arr zapcore.ArrayEncoder) error {
		for i, v := range p.EntryValues {
			arr.AppendString(fmt.Sprintf("%d %s=%s", i, v, p.EntryAt(i)))
		}
		return nil
	}))
}

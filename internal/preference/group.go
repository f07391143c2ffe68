package preference

import "fmt"

// Group is the ordered set of preferences shown in one settings popup.
type Group struct {
	Title       string
	Preferences []*ListPreference
}

// Find returns the preference with key.
func (g *Group) Find(key string) (*ListPreference, error) {
	for _, p := range g.Preferences {
		if p.Key == key {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownKey, key)
}

// Keys returns the preference keys in display order.
func (g *Group) Keys() []string {
	keys := make([]string, 0, len(g.Preferences))
	for _, p := range g.Preferences {
		keys = append(keys, p.Key)
	}
	return keys
}

// Values returns the current value of every preference keyed by its key.
func (g *Group) Values() map[string]string {
	values := make(map[string]string, len(g.Preferences))
	for _, p := range g.Preferences {
		values[p.Key] = p.Value()
	}
	return values
}

package preference

import (
	"errors"
	"testing"
)

func TestDefaultGroupIsConsistent(t *testing.T) {
	g := DefaultGroup()
	seen := make(map[string]bool)

	for _, p := range g.Preferences {
		if seen[p.Key] {
			t.Errorf("duplicate key %s", p.Key)
		}
		seen[p.Key] = true

		if len(p.Entries) != len(p.EntryValues) {
			t.Errorf("%s: %d entries for %d values", p.Key, len(p.Entries), len(p.EntryValues))
		}
		if p.FindIndexOfValue(p.DefaultValue) < 0 {
			t.Errorf("%s: default %q is not a choice", p.Key, p.DefaultValue)
		}
	}

	for _, key := range []string{KeyPictureSize, KeySceneMode, KeyFlashMode, KeyWhiteBalance, KeyFocusMode} {
		if !seen[key] {
			t.Errorf("DefaultGroup() missing %s", key)
		}
	}
}

func TestGroupFind(t *testing.T) {
	g := DefaultGroup()

	p, err := g.Find(KeyExposure)
	if err != nil {
		t.Fatalf("Find(%s) error = %v", KeyExposure, err)
	}
	if p.Title != "Exposure" {
		t.Errorf("Title = %q, want Exposure", p.Title)
	}

	if _, err := g.Find("iso"); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("Find(iso) error = %v, want ErrUnknownKey", err)
	}
}

func TestGroupValues(t *testing.T) {
	g := DefaultGroup()
	values := g.Values()

	if len(values) != len(g.Preferences) {
		t.Errorf("Values() has %d keys, want %d", len(values), len(g.Preferences))
	}
	if values[KeyPictureSize] != "2592x1944" {
		t.Errorf("picture size = %q, want 2592x1944", values[KeyPictureSize])
	}
	if keys := g.Keys(); keys[0] != KeyPictureSize {
		t.Errorf("Keys()[0] = %q, want %s", keys[0], KeyPictureSize)
	}
}

func TestSceneOverrides(t *testing.T) {
	g := DefaultGroup()

	if SceneOverrides(SceneAuto) != nil {
		t.Error("auto scene forces values")
	}
	if SceneOverrides("underwater") != nil {
		t.Error("unknown scene forces values")
	}

	scene, _ := g.Find(KeySceneMode)
	for _, value := range scene.EntryValues {
		forced := SceneOverrides(value)
		for key, v := range forced {
			p, err := g.Find(key)
			if err != nil {
				t.Errorf("scene %s forces unknown key %s", value, key)
				continue
			}
			if p.FindIndexOfValue(v) < 0 {
				t.Errorf("scene %s forces %s=%q, which is not a choice", value, key, v)
			}
		}
	}

	night := SceneOverrides("night")
	night[KeyFlashMode] = "on"
	if SceneOverrides("night")[KeyFlashMode] != "off" {
		t.Error("SceneOverrides() returned a shared map")
	}
}

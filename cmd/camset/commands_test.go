package main

import (
	"testing"

	"github.com/muurk/camset/internal/preference"
	"github.com/muurk/camset/internal/stepper"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		arg     string
		want    stepper.Direction
		wantErr bool
	}{
		{"next", stepper.Next, false},
		{"NEXT", stepper.Next, false},
		{"+", stepper.Next, false},
		{"previous", stepper.Previous, false},
		{"prev", stepper.Previous, false},
		{"-", stepper.Previous, false},
		{"sideways", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := parseDirection(tt.arg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseDirection(%q) error = %v, wantErr %v", tt.arg, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseDirection(%q) = %v, want %v", tt.arg, got, tt.want)
			}
		})
	}
}

func TestResolveValue(t *testing.T) {
	group := preference.DefaultGroup()
	pref, err := group.Find(preference.KeyPictureSize)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		arg  string
		want string
	}{
		{"1280x960", "1280x960"},
		{"5MP", "2592x1944"},
		{"vga", "640x480"},
		{"huge", "huge"},
	}
	for _, tt := range tests {
		if got := resolveValue(pref, tt.arg); got != tt.want {
			t.Errorf("resolveValue(%q) = %q, want %q", tt.arg, got, tt.want)
		}
	}
}

func TestCurrentOverrides(t *testing.T) {
	group := preference.DefaultGroup()
	if got := currentOverrides(group); got != nil {
		t.Errorf("currentOverrides() with auto scene = %v, want nil", got)
	}

	scene, _ := group.Find(preference.KeySceneMode)
	if err := scene.SetValue("night"); err != nil {
		t.Fatal(err)
	}
	got := currentOverrides(group)
	if got[preference.KeyFocusMode] != "infinity" {
		t.Errorf("currentOverrides()[focus-mode] = %q, want infinity", got[preference.KeyFocusMode])
	}
}

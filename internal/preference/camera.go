package preference

// Setting keys used by the camera group.
const (
	KeyPictureSize  = "picture-size"
	KeyJPEGQuality  = "jpeg-quality"
	KeySceneMode    = "scene-mode"
	KeyFlashMode    = "flash-mode"
	KeyWhiteBalance = "white-balance"
	KeyFocusMode    = "focus-mode"
	KeyExposure     = "exposure"
	KeyColorEffect  = "color-effect"
)

// SceneAuto is the scene mode that leaves every other setting editable.
const SceneAuto = "auto"

// DefaultGroup returns the camera settings popup with default values.
// Lists run from the largest choice down, matching the stepper's Next
// button moving towards index 0.
func DefaultGroup() *Group {
	return &Group{
		Title: "Camera settings",
		Preferences: []*ListPreference{
			NewListPreference(KeyPictureSize, "Picture size",
				[]string{"8MP", "5MP", "3MP", "2MP", "1MP", "VGA", "QVGA"},
				[]string{"3264x2448", "2592x1944", "2048x1536", "1600x1200", "1280x960", "640x480", "320x240"},
				"2592x1944"),
			NewListPreference(KeyJPEGQuality, "Picture quality",
				[]string{"Super fine", "Fine", "Normal"},
				[]string{"superfine", "fine", "normal"},
				"superfine"),
			NewListPreference(KeySceneMode, "Scene mode",
				[]string{"Auto", "Action", "Portrait", "Landscape", "Night", "Sunset", "Party"},
				[]string{"auto", "action", "portrait", "landscape", "night", "sunset", "party"},
				SceneAuto),
			NewListPreference(KeyFlashMode, "Flash mode",
				[]string{"Auto", "On", "Off"},
				[]string{"auto", "on", "off"},
				"auto"),
			NewListPreference(KeyWhiteBalance, "White balance",
				[]string{"Auto", "Incandescent", "Daylight", "Fluorescent", "Cloudy"},
				[]string{"auto", "incandescent", "daylight", "fluorescent", "cloudy-daylight"},
				"auto"),
			NewListPreference(KeyFocusMode, "Focus mode",
				[]string{"Auto", "Infinity", "Macro"},
				[]string{"auto", "infinity", "macro"},
				"auto"),
			NewListPreference(KeyExposure, "Exposure",
				[]string{"+2", "+1", "0", "-1", "-2"},
				[]string{"2", "1", "0", "-1", "-2"},
				"0"),
			NewListPreference(KeyColorEffect, "Color effect",
				[]string{"None", "Mono", "Sepia", "Negative", "Solarize"},
				[]string{"none", "mono", "sepia", "negative", "solarize"},
				"none"),
		},
	}
}

// sceneOverrides lists the values a scene mode forces on other settings.
var sceneOverrides = map[string]map[string]string{
	"action":    {KeyFlashMode: "off", KeyWhiteBalance: "auto", KeyFocusMode: "auto"},
	"portrait":  {KeyFlashMode: "auto", KeyWhiteBalance: "auto", KeyFocusMode: "auto"},
	"landscape": {KeyFlashMode: "off", KeyWhiteBalance: "daylight", KeyFocusMode: "infinity"},
	"night":     {KeyFlashMode: "off", KeyWhiteBalance: "auto", KeyFocusMode: "infinity"},
	"sunset":    {KeyFlashMode: "off", KeyWhiteBalance: "daylight", KeyFocusMode: "infinity"},
	"party":     {KeyFlashMode: "on", KeyWhiteBalance: "incandescent", KeyFocusMode: "auto"},
}

// OverriddenKeys are the settings a scene mode can force.
var OverriddenKeys = []string{KeyFlashMode, KeyWhiteBalance, KeyFocusMode}

// SceneOverrides returns the values scene forces, keyed by setting key.
// Auto and unknown scenes force nothing and return nil.
func SceneOverrides(scene string) map[string]string {
	forced, ok := sceneOverrides[scene]
	if !ok {
		return nil
	}
	out := make(map[string]string, len(forced))
	for k, v := range forced {
		out[k] = v
	}
	return out
}

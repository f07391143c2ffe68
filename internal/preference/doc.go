// Package preference holds the camera settings edited by camset.
//
// A ListPreference is one setting with an ordered list of choices, each a
// stored value plus a display label. It satisfies stepper.Store and dumps
// itself through zap when a stepper needs to report bad data. A Group is
// the ordered list of preferences shown in one popup; DefaultGroup returns
// the camera popup.
//
// Scene modes other than auto force flash, white balance and focus to fixed
// values. SceneOverrides returns those values so the popup can put the
// affected rows into override mode.
package preference

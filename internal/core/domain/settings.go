package domain

import (
	"runtime"
	"time"
)

// SettingsFileName is the name of the optional settings file.
const SettingsFileName = ".slicer.yaml"

const (
	// DefaultDebounce is the default window for coalescing file change events.
	DefaultDebounce = 50 * time.Millisecond
	// DefaultDepth is how deep the linear renderer expands the slice.
	DefaultDepth = 3
)

// Settings configure a slice session. Preview and AutoScroll are view state;
// the core only exposes hooks they are toggled against.
type Settings struct {
	Preview    bool
	AutoScroll bool
	Workers    int
	Debounce   time.Duration
	Depth      int
}

// DefaultSettings returns the settings used when no settings file exists.
func DefaultSettings() Settings {
	return Settings{
		Preview:  true,
		Workers:  runtime.NumCPU(),
		Debounce: DefaultDebounce,
		Depth:    DefaultDepth,
	}
}

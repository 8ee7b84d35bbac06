package config

// SettingsFile is the structure of the .slicer.yaml settings file.
// Pointer fields distinguish an absent key from a zero value.
type SettingsFile struct {
	Preview    *bool  `yaml:"preview"`
	AutoScroll *bool  `yaml:"autoScroll"`
	Workers    *int   `yaml:"workers"`
	Debounce   string `yaml:"debounce"`
	Depth      *int   `yaml:"depth"`
}

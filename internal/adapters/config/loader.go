// Package config loads session settings from .slicer.yaml.
package config

import (
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/slicer/internal/core/domain"
	"go.trai.ch/slicer/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.SettingsLoader = (*Loader)(nil)

// Loader implements ports.SettingsLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds the nearest settings file at or above cwd and merges it over
// the defaults. Without a settings file the defaults are returned.
func (l *Loader) Load(cwd string) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	path, ok := findSettings(cwd)
	if !ok {
		l.Logger.Debug("no settings file found", "cwd", cwd)
		return settings, nil
	}

	var file SettingsFile
	if err := readAndUnmarshalYAML(path, &file); err != nil {
		return domain.Settings{}, zerr.With(err, "path", path)
	}

	if err := apply(&settings, &file); err != nil {
		return domain.Settings{}, zerr.With(err, "path", path)
	}

	l.Logger.Debug("loaded settings", "path", path)
	return settings, nil
}

func findSettings(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.SettingsFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

func apply(s *domain.Settings, f *SettingsFile) error {
	if f.Preview != nil {
		s.Preview = *f.Preview
	}
	if f.AutoScroll != nil {
		s.AutoScroll = *f.AutoScroll
	}
	if f.Workers != nil {
		if *f.Workers < 1 {
			return zerr.With(domain.ErrInvalidSettings, "workers", *f.Workers)
		}
		s.Workers = *f.Workers
	}
	if f.Depth != nil {
		if *f.Depth < 0 {
			return zerr.With(domain.ErrInvalidSettings, "depth", *f.Depth)
		}
		s.Depth = *f.Depth
	}
	if f.Debounce != "" {
		d, err := time.ParseDuration(f.Debounce)
		if err != nil || d < 0 {
			return zerr.With(domain.ErrInvalidSettings, "debounce", f.Debounce)
		}
		s.Debounce = d
	}
	return nil
}

func readAndUnmarshalYAML[T any](path string, target *T) error {
	// #nosec G304 -- path is discovered by walking up from cwd
	data, err := os.ReadFile(path)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(data, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}

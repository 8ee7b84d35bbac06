package ports

import "go.trai.ch/slicer/internal/core/domain"

// SettingsLoader defines the interface for loading session settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type SettingsLoader interface {
	// Load finds the settings file starting at cwd and walking up.
	// Defaults are returned when no file exists.
	Load(cwd string) (domain.Settings, error)
}

// ProgramLoader opens the analyzed program described by a file.
type ProgramLoader interface {
	Open(path string) (Program, error)
}

// Program is the analyzed system as seen by a slice session.
type Program interface {
	Analyzer
	RevisionSource
	EntityValidator
	// Start returns the usage a slice begins from.
	Start(entityID string) (domain.Usage, error)
	// Reload re-reads the program and advances the revision.
	Reload() error
	// Path is the file the program was read from.
	Path() string
	// SetNavigator routes entity navigation.
	SetNavigator(n Navigator)
}

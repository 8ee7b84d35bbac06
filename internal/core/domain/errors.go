package domain

import "go.trai.ch/zerr"

var (
	// ErrStaleEntity is used when a usage's entity was invalidated mid-operation.
	// It is absorbed locally and only ever logged.
	ErrStaleEntity = zerr.New("entity is no longer valid")

	// ErrSupersededOperation is used when a build, expand or select request was
	// made obsolete by a newer one or by disposal. It is absorbed locally.
	ErrSupersededOperation = zerr.New("operation superseded")

	// ErrNodeNotInTree is returned when an operation targets a node that is not
	// attached to the tree.
	ErrNodeNotInTree = zerr.New("node is not attached to the tree")

	// ErrChildrenUnavailable is returned when the analysis could not produce children.
	ErrChildrenUnavailable = zerr.New("failed to produce children")

	// ErrConfigReadFailed is returned when the settings file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the settings file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidSettings is returned when a settings value is out of range.
	ErrInvalidSettings = zerr.New("invalid settings")

	// ErrProgramReadFailed is returned when the program file cannot be read.
	ErrProgramReadFailed = zerr.New("failed to read program file")

	// ErrProgramParseFailed is returned when the program file cannot be parsed.
	ErrProgramParseFailed = zerr.New("failed to parse program file")

	// ErrDuplicateEntityID is returned when two entities in a program share an id.
	ErrDuplicateEntityID = zerr.New("duplicate entity id")

	// ErrUnknownEntity is returned when a flow or slice start names an entity
	// that the program does not define.
	ErrUnknownEntity = zerr.New("unknown entity")

	// ErrNavigationFailed is returned when a navigable cannot reach its source.
	ErrNavigationFailed = zerr.New("failed to navigate to source")

	// ErrWatcherFailed is returned when the file watcher cannot be started.
	ErrWatcherFailed = zerr.New("failed to watch program file")

	// ErrInvalidOutputMode is returned when --output-mode names an unknown mode.
	ErrInvalidOutputMode = zerr.New("invalid output mode")

	// ErrViewFailed is returned when the view terminates abnormally.
	ErrViewFailed = zerr.New("view terminated with an error")
)

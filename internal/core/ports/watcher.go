package ports

import (
	"context"
	"iter"
)

// WatchOp represents the type of file system operation.
type WatchOp uint8

const (
	// OpCreate indicates a file was created.
	OpCreate WatchOp = iota
	// OpWrite indicates a file was modified.
	OpWrite
	// OpRemove indicates a file was removed.
	OpRemove
	// OpRename indicates a file was renamed.
	OpRename
)

// WatchEvent represents a change to a watched file.
type WatchEvent struct {
	Path      string
	Operation WatchOp
}

// Watcher reports changes to a set of files.
type Watcher interface {
	// Start begins watching the given files. Their directories are watched so
	// that editors which replace files on save are still observed.
	Start(ctx context.Context, paths ...string) error
	// Stop stops the watcher and releases all resources.
	Stop() error
	// Events returns an iterator of events for the watched files.
	Events() iter.Seq[WatchEvent]
}

// WatcherFactory creates a watcher when a session asks for one.
type WatcherFactory func() (Watcher, error)

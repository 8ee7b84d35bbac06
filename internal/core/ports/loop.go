package ports

// Loop is the single-threaded presentation loop. Tree mutation, cache
// rebuilds and selection handling all run on it.
type Loop interface {
	// Post schedules fn to run on the loop. It is safe to call from any goroutine.
	Post(fn func())
	// Defer schedules fn for the next idle turn, after everything already
	// posted has run.
	Defer(fn func())
}

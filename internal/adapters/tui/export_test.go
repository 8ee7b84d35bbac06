package tui

// WorkMsg exposes the drain message for testing.
type WorkMsg = workMsg

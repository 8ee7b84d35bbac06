package coordinator

// State is the phase of the update sequence the coordinator is in.
type State int

const (
	// StateIdle means no pass is running.
	StateIdle State = iota
	// StateBuilding means children of the requested subtrees are being recomputed.
	StateBuilding
	// StateExpanding means requested nodes are being materialized and expanded.
	StateExpanding
	// StateSelecting means the initial selection is being applied.
	StateSelecting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateBuilding:
		return "Building"
	case StateExpanding:
		return "Expanding"
	case StateSelecting:
		return "Selecting"
	default:
		return "Unknown"
	}
}

package engine

// Outcome reports what a single engine call did to the board.
type Outcome uint8

const (
	// OutcomeNone means the call changed nothing, e.g. a tick that did not
	// reach the fall interval.
	OutcomeNone Outcome = iota
	// OutcomeApplied means the command moved, rotated or spawned the piece.
	OutcomeApplied
	// OutcomeRejected means the command was invalid and nothing changed.
	OutcomeRejected
	// OutcomeLanded means a downward move was blocked: the piece was
	// committed to the grid, full rows were cleared and a new piece spawned.
	OutcomeLanded
	// OutcomeGameOver means the game has ended, either during this call or
	// before it. The board no longer changes.
	OutcomeGameOver
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "None"
	case OutcomeApplied:
		return "Applied"
	case OutcomeRejected:
		return "Rejected"
	case OutcomeLanded:
		return "Landed"
	case OutcomeGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Changed reports whether the board or active piece changed.
func (o Outcome) Changed() bool {
	return o == OutcomeApplied || o == OutcomeLanded
}

// Direction is a single-cell translation command.
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
	DirDown
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// Delta returns the one-cell offset for the direction.
func (d Direction) Delta() Point {
	switch d {
	case DirLeft:
		return Point{X: -1}
	case DirRight:
		return Point{X: 1}
	case DirDown:
		return Point{Y: -1}
	default:
		return Point{}
	}
}

// Valid reports whether d is a known direction.
func (d Direction) Valid() bool {
	return d <= DirDown
}

package sheet

// State is the presentation state of a sheet.
type State int

const (
	// Hidden is the initial and terminal state; nothing is rendered.
	Hidden State = iota
	// Presenting means the open animation is running.
	Presenting
	// Visible is the steady state awaiting input.
	Visible
	// Dismissing means the close animation is running.
	Dismissing
)

func (s State) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Presenting:
		return "presenting"
	case Visible:
		return "visible"
	case Dismissing:
		return "dismissing"
	default:
		return "unknown"
	}
}

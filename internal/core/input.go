package core

// Input is a logical input identifier, abstracted from physical key presses.
// The simulation only ever sees these, never terminal key names.
type Input int

const (
	InputNone   Input = iota
	InputP1Up         // W - left paddle up
	InputP1Down       // S - left paddle down
	InputP2Up         // Up arrow - right paddle up
	InputP2Down       // Down arrow - right paddle down
	InputServe        // Space - put the ball in play
	InputPause        // P - pause/unpause
	InputQuit         // Q, Esc, Ctrl+C - leave the match
)

// String returns a human-readable name for the input.
func (i Input) String() string {
	switch i {
	case InputNone:
		return "None"
	case InputP1Up:
		return "P1Up"
	case InputP1Down:
		return "P1Down"
	case InputP2Up:
		return "P2Up"
	case InputP2Down:
		return "P2Down"
	case InputServe:
		return "Serve"
	case InputPause:
		return "Pause"
	case InputQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PlayerID identifies one side of the table.
type PlayerID int

const (
	Player1 PlayerID = 1 // Left paddle
	Player2 PlayerID = 2 // Right paddle
)

// String returns "P1" or "P2".
func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "P1"
	case Player2:
		return "P2"
	default:
		return "P?"
	}
}

// Controls is the pair of inputs bound to a paddle at construction.
type Controls struct {
	Up   Input
	Down Input
}

// ControlsFor returns the default bindings for a side.
func ControlsFor(id PlayerID) Controls {
	if id == Player2 {
		return Controls{Up: InputP2Up, Down: InputP2Down}
	}
	return Controls{Up: InputP1Up, Down: InputP1Down}
}

// InputSet holds the inputs active during one simulation tick.
// The zero value is an empty set ready to use.
type InputSet struct {
	active map[Input]bool
}

// NewInputSet creates a set containing the given inputs.
func NewInputSet(inputs ...Input) InputSet {
	s := InputSet{active: make(map[Input]bool, len(inputs))}
	for _, in := range inputs {
		s.Set(in)
	}
	return s
}

// Set marks an input as active.
func (s *InputSet) Set(in Input) {
	if in == InputNone {
		return
	}
	if s.active == nil {
		s.active = make(map[Input]bool)
	}
	s.active[in] = true
}

// Has returns true if the input is active.
func (s InputSet) Has(in Input) bool {
	return s.active[in]
}

// Len returns the number of active inputs.
func (s InputSet) Len() int {
	return len(s.active)
}

// Clear removes every input so the set can be reused for the next tick.
func (s *InputSet) Clear() {
	clear(s.active)
}

// Clone returns an independent copy of the set.
func (s InputSet) Clone() InputSet {
	c := InputSet{active: make(map[Input]bool, len(s.active))}
	for k, v := range s.active {
		c.active[k] = v
	}
	return c
}

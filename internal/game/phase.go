package game

import "fmt"

// Phase is a step of a player's turn.
type Phase int

const (
	PhaseAction Phase = iota
	PhaseBuy
	PhaseCleanUp
)

var phaseNames = map[Phase]string{
	PhaseAction:  "ACTION",
	PhaseBuy:     "BUY",
	PhaseCleanUp: "CLEAN_UP",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("PHASE_%d", int(p))
}

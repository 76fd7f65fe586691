package interfaces

type SimState string

// simulation states, a run moves from INITIALIZING to RUNNING and ends in one of the others
const (
	INITIALIZING   = SimState("Initializing")
	RUNNING        = SimState("Running")
	ABSORBED_ALL_A = SimState("AbsorbedAllA")
	ABSORBED_ALL_B = SimState("AbsorbedAllB")
	COMPLETED      = SimState("Completed")
)

// Terminal reports whether no further rounds will be executed in this state.
func (s SimState) Terminal() bool {
	return s == ABSORBED_ALL_A || s == ABSORBED_ALL_B || s == COMPLETED
}

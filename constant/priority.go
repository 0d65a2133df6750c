package constant

// System Execution Priorities (lower runs first)
// The tick order is fixed: generator feeds activations, activation
// decay runs before signals advance, effects retire after both, and
// health aggregates last so it sees the completed tick.
const (
	PriorityGenerator  = 10
	PriorityActivation = 20
	PrioritySignal     = 30
	PriorityEffect     = 40
	PriorityHealth     = 50
)

package interfaces

// ISnapshot is the frozen state of one round that every update rule decides against.
type ISnapshot interface {
	Network() INetwork
	Partition() IPartition
	Point() GamePoint
	Payoff(node int64) float64
	// MaxPayoff is the largest payoff of the whole population in this round.
	MaxPayoff() float64
	// Best is the first node in enumeration order holding MaxPayoff.
	Best() int64
	// Undefined reports a probability the rule could not use, the decision falls back to NO_CHANGE.
	Undefined(rule RuleKind, node int64, probability float64)
}

type IUpdateRule interface {
	Kind() RuleKind
	// Decide must only read the snapshot, all nodes of a round see the same one.
	Decide(node int64, snapshot ISnapshot, rng IRandom) Decision
}

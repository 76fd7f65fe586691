package rule

import (
	"evogamesim/interfaces"
)

// MultipleReplicator runs the replicator trial against every better neighbor in order,
// the first success decides.
type MultipleReplicator struct {
	Replicator
}

func NewMultipleReplicator() interfaces.IUpdateRule {
	return &MultipleReplicator{}
}

func (r *MultipleReplicator) Kind() interfaces.RuleKind {
	return interfaces.RULE_MULTIPLE_REPLICATOR
}

func (r *MultipleReplicator) Decide(node int64, snapshot interfaces.ISnapshot, rng interfaces.IRandom) interfaces.Decision {
	own := snapshot.Payoff(node)
	for _, j := range snapshot.Network().Neighbors(node) {
		if snapshot.Payoff(j) <= own {
			continue
		}
		success, defined := trial(r.Kind(), node, r.probability(node, j, snapshot), snapshot, rng)
		if !defined {
			return interfaces.NO_CHANGE
		}
		if success {
			return imitate(j, snapshot)
		}
	}
	return interfaces.NO_CHANGE
}

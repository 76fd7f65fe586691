package rule

import (
	"evogamesim/interfaces"
)

const generosity = 0.8

// GenerousTitForTat copies a better random neighbor with probability 0.8 and cooperates otherwise.
type GenerousTitForTat struct{}

func NewGenerousTitForTat() interfaces.IUpdateRule {
	return &GenerousTitForTat{}
}

func (r *GenerousTitForTat) Kind() interfaces.RuleKind {
	return interfaces.RULE_GENEROUS_TIT_FOR_TAT
}

func (r *GenerousTitForTat) Decide(node int64, snapshot interfaces.ISnapshot, rng interfaces.IRandom) interfaces.Decision {
	j, ok := randomNeighbor(node, snapshot.Network(), rng)
	if !ok {
		return interfaces.NO_CHANGE
	}
	if snapshot.Payoff(j) > snapshot.Payoff(node) && rng.Uniform() < generosity {
		return imitate(j, snapshot)
	}
	return interfaces.ADOPT_A
}

package rule

import (
	"evogamesim/interfaces"
	"math"
)

// Beta is the selection intensity of the Fermi rule.
const Beta = 0.1

// Fermi copies a random neighbor j with probability 1 / (1 + exp(-Beta * (payoff[j] - payoff[node]))).
type Fermi struct{}

func NewFermi() interfaces.IUpdateRule {
	return &Fermi{}
}

func (r *Fermi) Kind() interfaces.RuleKind {
	return interfaces.RULE_FERMI
}

func (r *Fermi) Decide(node int64, snapshot interfaces.ISnapshot, rng interfaces.IRandom) interfaces.Decision {
	j, ok := randomNeighbor(node, snapshot.Network(), rng)
	if !ok {
		return interfaces.NO_CHANGE
	}
	p := 1 / (1 + math.Exp(-Beta*(snapshot.Payoff(j)-snapshot.Payoff(node))))
	if success, _ := trial(r.Kind(), node, p, snapshot, rng); success {
		return imitate(j, snapshot)
	}
	return interfaces.NO_CHANGE
}

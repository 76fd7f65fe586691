package rule

import (
	"evogamesim/interfaces"
	"math"
)

// Moran copies a random neighbor j with probability (payoff[j] - psi) / sum over the
// neighborhood and the node itself of (payoff[k] - psi), psi = max neighbor degree * min(0,S).
type Moran struct{}

func NewMoran() interfaces.IUpdateRule {
	return &Moran{}
}

func (r *Moran) Kind() interfaces.RuleKind {
	return interfaces.RULE_MORAN
}

func (r *Moran) Decide(node int64, snapshot interfaces.ISnapshot, rng interfaces.IRandom) interfaces.Decision {
	network := snapshot.Network()
	neighbors := network.Neighbors(node)
	if len(neighbors) == 0 {
		return interfaces.NO_CHANGE
	}
	j := neighbors[rng.Intn(len(neighbors))]

	maxDegree := 0
	for _, k := range neighbors {
		if d := network.Degree(k); d > maxDegree {
			maxDegree = d
		}
	}
	psi := float64(maxDegree) * math.Min(0, snapshot.Point().S)

	total := snapshot.Payoff(node) - psi
	for _, k := range neighbors {
		total += snapshot.Payoff(k) - psi
	}
	if success, _ := trial(r.Kind(), node, (snapshot.Payoff(j)-psi)/total, snapshot, rng); success {
		return imitate(j, snapshot)
	}
	return interfaces.NO_CHANGE
}

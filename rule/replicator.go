package rule

import (
	"evogamesim/interfaces"
	"math"
)

// Replicator copies one better random neighbor j with probability (payoff[j] - payoff[node]) / phi,
// phi = max(deg(node), deg(j)) * (max(1,T) - min(0,S)).
type Replicator struct{}

func NewReplicator() interfaces.IUpdateRule {
	return &Replicator{}
}

func (r *Replicator) Kind() interfaces.RuleKind {
	return interfaces.RULE_REPLICATOR
}

func (r *Replicator) Decide(node int64, snapshot interfaces.ISnapshot, rng interfaces.IRandom) interfaces.Decision {
	j, ok := randomNeighbor(node, snapshot.Network(), rng)
	if !ok || snapshot.Payoff(j) <= snapshot.Payoff(node) {
		return interfaces.NO_CHANGE
	}
	if success, _ := trial(r.Kind(), node, r.probability(node, j, snapshot), snapshot, rng); success {
		return imitate(j, snapshot)
	}
	return interfaces.NO_CHANGE
}

func (r *Replicator) probability(node int64, j int64, snapshot interfaces.ISnapshot) float64 {
	network, point := snapshot.Network(), snapshot.Point()
	degree := math.Max(float64(network.Degree(node)), float64(network.Degree(j)))
	phi := degree * (math.Max(1, point.T) - math.Min(0, point.S))
	return (snapshot.Payoff(j) - snapshot.Payoff(node)) / phi
}

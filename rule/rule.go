package rule

import (
	"evogamesim/interfaces"
	"fmt"
	"math"
)

// All lists every update rule in a fixed order.
func All() []interfaces.RuleKind {
	return []interfaces.RuleKind{
		interfaces.RULE_RANDOM,
		interfaces.RULE_STOCHASTIC_BEST_RESPONSE,
		interfaces.RULE_GENEROUS_TIT_FOR_TAT,
		interfaces.RULE_REPLICATOR,
		interfaces.RULE_MULTIPLE_REPLICATOR,
		interfaces.RULE_UNCONDITIONAL_IMITATION,
		interfaces.RULE_MORAN,
		interfaces.RULE_FERMI,
	}
}

func NewRule(kind interfaces.RuleKind) (interfaces.IUpdateRule, error) {
	switch kind {
	case interfaces.RULE_RANDOM:
		return NewRandom(), nil
	case interfaces.RULE_STOCHASTIC_BEST_RESPONSE:
		return NewStochasticBestResponse(), nil
	case interfaces.RULE_GENEROUS_TIT_FOR_TAT:
		return NewGenerousTitForTat(), nil
	case interfaces.RULE_REPLICATOR:
		return NewReplicator(), nil
	case interfaces.RULE_MULTIPLE_REPLICATOR:
		return NewMultipleReplicator(), nil
	case interfaces.RULE_UNCONDITIONAL_IMITATION:
		return NewUnconditionalImitation(), nil
	case interfaces.RULE_MORAN:
		return NewMoran(), nil
	case interfaces.RULE_FERMI:
		return NewFermi(), nil
	}
	return nil, fmt.Errorf("%w: %q", interfaces.ErrUnknownRule, kind)
}

// Defined reports whether p can be used as a probability.
func Defined(p float64) bool {
	return !math.IsNaN(p) && !math.IsInf(p, 0) && p >= 0 && p <= 1
}

// trial runs one Bernoulli trial. An unusable probability is reported to the snapshot and fails,
// defined is false in that case so the caller abstains.
func trial(kind interfaces.RuleKind, node int64, p float64, snapshot interfaces.ISnapshot, rng interfaces.IRandom) (success bool, defined bool) {
	if !Defined(p) {
		snapshot.Undefined(kind, node, p)
		return false, false
	}
	return rng.Uniform() < p, true
}

// randomNeighbor picks one neighbor uniformly, ok is false for isolated nodes
func randomNeighbor(node int64, network interfaces.INetwork, rng interfaces.IRandom) (neighbor int64, ok bool) {
	neighbors := network.Neighbors(node)
	if len(neighbors) == 0 {
		return 0, false
	}
	return neighbors[rng.Intn(len(neighbors))], true
}

// imitate adopts the label of model
func imitate(model int64, snapshot interfaces.ISnapshot) interfaces.Decision {
	return interfaces.Adopt(snapshot.Partition().Label(model))
}

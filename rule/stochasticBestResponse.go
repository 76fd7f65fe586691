package rule

import (
	"evogamesim/interfaces"
)

// StochasticBestResponse moves towards the best neighbor with probability
// (payoff[best] - payoff[node]) / max payoff of the round.
type StochasticBestResponse struct{}

func NewStochasticBestResponse() interfaces.IUpdateRule {
	return &StochasticBestResponse{}
}

func (r *StochasticBestResponse) Kind() interfaces.RuleKind {
	return interfaces.RULE_STOCHASTIC_BEST_RESPONSE
}

func (r *StochasticBestResponse) Decide(node int64, snapshot interfaces.ISnapshot, rng interfaces.IRandom) interfaces.Decision {
	neighbors := snapshot.Network().Neighbors(node)
	if len(neighbors) == 0 {
		return interfaces.NO_CHANGE
	}
	best := neighbors[0]
	for _, neighbor := range neighbors[1:] {
		// strict comparison keeps the first of equal neighbors
		if snapshot.Payoff(neighbor) > snapshot.Payoff(best) {
			best = neighbor
		}
	}
	if snapshot.Payoff(best) <= snapshot.Payoff(node) {
		return interfaces.NO_CHANGE
	}
	p := (snapshot.Payoff(best) - snapshot.Payoff(node)) / snapshot.MaxPayoff()
	if ok, _ := trial(r.Kind(), node, p, snapshot, rng); ok {
		return imitate(best, snapshot)
	}
	return interfaces.NO_CHANGE
}

package rule

import (
	"evogamesim/interfaces"
)

// UnconditionalImitation copies the best node of the whole population when it earns more.
type UnconditionalImitation struct{}

func NewUnconditionalImitation() interfaces.IUpdateRule {
	return &UnconditionalImitation{}
}

func (r *UnconditionalImitation) Kind() interfaces.RuleKind {
	return interfaces.RULE_UNCONDITIONAL_IMITATION
}

func (r *UnconditionalImitation) Decide(node int64, snapshot interfaces.ISnapshot, rng interfaces.IRandom) interfaces.Decision {
	if snapshot.MaxPayoff() > snapshot.Payoff(node) {
		return imitate(snapshot.Best(), snapshot)
	}
	return interfaces.NO_CHANGE
}

package rule

import (
	"evogamesim/interfaces"
)

// Random picks either label with equal probability and never abstains.
type Random struct{}

func NewRandom() interfaces.IUpdateRule {
	return &Random{}
}

func (r *Random) Kind() interfaces.RuleKind {
	return interfaces.RULE_RANDOM
}

func (r *Random) Decide(node int64, snapshot interfaces.ISnapshot, rng interfaces.IRandom) interfaces.Decision {
	if rng.Uniform() < 0.5 {
		return interfaces.ADOPT_A
	}
	return interfaces.ADOPT_B
}

package game

import (
	"evogamesim/interfaces"

	"gonum.org/v1/gonum/floats"
)

// UndefinedHandler receives probabilities a rule had to discard.
type UndefinedHandler func(rule interfaces.RuleKind, node int64, probability float64)

// Snapshot freezes the payoffs of one round, every decision of the round reads the same one.
type Snapshot struct {
	network     interfaces.INetwork
	partition   interfaces.IPartition
	point       interfaces.GamePoint
	payoffs     PayoffVector
	max         float64
	best        int64
	onUndefined UndefinedHandler
}

func NewSnapshot(network interfaces.INetwork, partition interfaces.IPartition, point interfaces.GamePoint, payoffs PayoffVector, onUndefined UndefinedHandler) *Snapshot {
	s := &Snapshot{
		network:     network,
		partition:   partition,
		point:       point,
		payoffs:     payoffs,
		onUndefined: onUndefined,
	}
	if len(payoffs) > 0 {
		// floats.MaxIdx returns the lowest index among equal maxima
		i := floats.MaxIdx(payoffs)
		s.max = payoffs[i]
		s.best = partition.Node(i)
	}
	return s
}

func (s *Snapshot) Network() interfaces.INetwork {
	return s.network
}

func (s *Snapshot) Partition() interfaces.IPartition {
	return s.partition
}

func (s *Snapshot) Point() interfaces.GamePoint {
	return s.point
}

func (s *Snapshot) Payoff(node int64) float64 {
	return s.payoffs[s.partition.Index(node)]
}

func (s *Snapshot) MaxPayoff() float64 {
	return s.max
}

func (s *Snapshot) Best() int64 {
	return s.best
}

func (s *Snapshot) Undefined(rule interfaces.RuleKind, node int64, probability float64) {
	if s.onUndefined != nil {
		s.onUndefined(rule, node, probability)
	}
}

package game

import (
	"evogamesim/interfaces"
	"fmt"
)

// PayoffVector holds one payoff per node, indexed by the partition's enumeration position.
type PayoffVector []float64

// PrisonersDilemma pays a cooperator 1 per cooperating neighbor and S per defecting one,
// a defector T per cooperating neighbor.
type PrisonersDilemma struct{}

func (PrisonersDilemma) Kind() interfaces.PayoffKind {
	return interfaces.PAYOFF_PRISONERS_DILEMMA
}

func (PrisonersDilemma) Payoff(node int64, network interfaces.INetwork, partition interfaces.IPartition, point interfaces.GamePoint) float64 {
	a, b := countNeighbors(node, network, partition)
	if partition.Label(node) == interfaces.LABEL_A {
		return float64(a) + point.S*float64(b)
	}
	return point.T * float64(a)
}

// HawkDove reads the point as (R, C). Every node earns R/2, a hawk meeting a hawk
// additionally gets R/2 - C/2, a dove meeting a hawk gets R.
type HawkDove struct{}

func (HawkDove) Kind() interfaces.PayoffKind {
	return interfaces.PAYOFF_HAWK_DOVE
}

func (HawkDove) Payoff(node int64, network interfaces.INetwork, partition interfaces.IPartition, point interfaces.GamePoint) float64 {
	r, c := point.T, point.S
	payoff := r / 2
	hawks, _ := countNeighbors(node, network, partition)
	if hawks == 0 {
		return payoff
	}
	if partition.Label(node) == interfaces.LABEL_A {
		return payoff - c/2 + r/2
	}
	return payoff + r
}

func NewPayoff(kind interfaces.PayoffKind) (interfaces.IPayoff, error) {
	switch kind {
	case interfaces.PAYOFF_PRISONERS_DILEMMA:
		return PrisonersDilemma{}, nil
	case interfaces.PAYOFF_HAWK_DOVE:
		return HawkDove{}, nil
	}
	return nil, fmt.Errorf("%w: %q", interfaces.ErrUnknownPayoff, kind)
}

// ComputePayoffs evaluates every node against the same partition.
func ComputePayoffs(evaluator interfaces.IPayoff, network interfaces.INetwork, partition interfaces.IPartition, point interfaces.GamePoint) PayoffVector {
	payoffs := make(PayoffVector, partition.Size())
	for i := range payoffs {
		node := partition.Node(i)
		payoffs[i] = evaluator.Payoff(node, network, partition, point)
	}
	return payoffs
}

func countNeighbors(node int64, network interfaces.INetwork, partition interfaces.IPartition) (a int, b int) {
	for _, neighbor := range network.Neighbors(node) {
		if partition.Label(neighbor) == interfaces.LABEL_A {
			a++
		} else {
			b++
		}
	}
	return
}

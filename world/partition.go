package world

import (
	"evogamesim/interfaces"
)

// Partition keeps exactly one label per node, stored by enumeration position.
type Partition struct {
	nodes  []int64
	index  map[int64]int
	labels []interfaces.Label
	countA int
}

// NewPartition starts with every node labelled A.
func NewPartition(nodes []int64) *Partition {
	p := &Partition{
		nodes:  nodes,
		index:  make(map[int64]int, len(nodes)),
		labels: make([]interfaces.Label, len(nodes)),
		countA: len(nodes),
	}
	for i, node := range nodes {
		p.index[node] = i
		p.labels[i] = interfaces.LABEL_A
	}
	return p
}

func (p *Partition) Label(node int64) interfaces.Label {
	return p.labels[p.index[node]]
}

func (p *Partition) Index(node int64) int {
	return p.index[node]
}

func (p *Partition) Node(index int) int64 {
	return p.nodes[index]
}

func (p *Partition) Size() int {
	return len(p.nodes)
}

func (p *Partition) Count(label interfaces.Label) int {
	if label == interfaces.LABEL_A {
		return p.countA
	}
	return len(p.nodes) - p.countA
}

// Members lists the nodes holding label in enumeration order.
func (p *Partition) Members(label interfaces.Label) []int64 {
	members := make([]int64, 0, p.Count(label))
	for i, l := range p.labels {
		if l == label {
			members = append(members, p.nodes[i])
		}
	}
	return members
}

// Fraction is the share of nodes labelled A.
func (p *Partition) Fraction() float64 {
	if len(p.nodes) == 0 {
		return 0
	}
	return float64(p.countA) / float64(len(p.nodes))
}

func (p *Partition) set(i int, label interfaces.Label) bool {
	if p.labels[i] == label {
		return false
	}
	p.labels[i] = label
	if label == interfaces.LABEL_A {
		p.countA++
	} else {
		p.countA--
	}
	return true
}

// Apply takes the buffered decisions of a whole round at once, indexed like the nodes.
// Adopt decisions set the label, abstainers keep theirs. It returns the number of actual switches.
func (p *Partition) Apply(decisions []interfaces.Decision) (toA int, toB int, unchanged int) {
	for i, decision := range decisions {
		switch decision {
		case interfaces.ADOPT_A:
			if p.set(i, interfaces.LABEL_A) {
				toA++
				continue
			}
		case interfaces.ADOPT_B:
			if p.set(i, interfaces.LABEL_B) {
				toB++
				continue
			}
		}
		unchanged++
	}
	return
}

// Absorbed returns the absorbing state the partition is in, if any.
func (p *Partition) Absorbed() (interfaces.SimState, bool) {
	switch p.countA {
	case 0:
		return interfaces.ABSORBED_ALL_B, true
	case len(p.nodes):
		return interfaces.ABSORBED_ALL_A, true
	}
	return interfaces.RUNNING, false
}

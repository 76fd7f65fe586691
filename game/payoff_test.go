package game

import (
	"errors"
	"evogamesim/interfaces"
	"evogamesim/network"
	"testing"
)

// testPartition is a fixed labelling over nodes 0..n-1
type testPartition []interfaces.Label

func (p testPartition) Label(node int64) interfaces.Label { return p[node] }
func (p testPartition) Index(node int64) int              { return int(node) }
func (p testPartition) Node(index int) int64              { return int64(index) }
func (p testPartition) Size() int                         { return len(p) }
func (p testPartition) Count(label interfaces.Label) int {
	c := 0
	for _, l := range p {
		if l == label {
			c++
		}
	}
	return c
}

const (
	A = interfaces.LABEL_A
	B = interfaces.LABEL_B
)

// star: node 0 in the center, nodes 1..4 around it, node 5 isolated
func star(t *testing.T) *network.Graph {
	t.Helper()
	g, err := network.FromEdges([]int64{0, 1, 2, 3, 4, 5}, [][2]int64{{0, 1}, {0, 2}, {0, 3}, {0, 4}})
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestPrisonersDilemma(t *testing.T) {
	g := star(t)
	partition := testPartition{A, A, A, B, B, A}
	point := interfaces.GamePoint{T: 1.5, S: -0.5}

	tests := []struct {
		name string
		node int64
		want float64
	}{
		{"cooperator with two cooperators and two defectors", 0, 2 + 2*-0.5},
		{"cooperator next to cooperator", 1, 1},
		{"defector next to cooperator", 3, 1.5},
		{"isolated cooperator", 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PrisonersDilemma{}.Payoff(tt.node, g, partition, point)
			if got != tt.want {
				t.Errorf("Payoff(%v) = %v, want %v", tt.node, got, tt.want)
			}
		})
	}

	allB := testPartition{B, B, B, B, B, B}
	if got := (PrisonersDilemma{}).Payoff(0, g, allB, point); got != 0 {
		t.Errorf("defector among defectors earned %v, want 0", got)
	}
}

func TestHawkDove(t *testing.T) {
	g := star(t)
	point := interfaces.GamePoint{T: 2, S: 1} // R = 2, C = 1

	tests := []struct {
		name      string
		partition testPartition
		node      int64
		want      float64
	}{
		{"hawk meeting a hawk", testPartition{A, A, B, B, B, B}, 0, 1 - 0.5 + 1},
		{"hawk among doves", testPartition{A, B, B, B, B, B}, 0, 1},
		{"dove meeting a hawk", testPartition{B, A, B, B, B, B}, 0, 1 + 2},
		{"dove among doves", testPartition{B, B, B, B, B, B}, 0, 1},
		{"isolated hawk", testPartition{A, A, A, A, A, A}, 5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HawkDove{}.Payoff(tt.node, g, tt.partition, point)
			if got != tt.want {
				t.Errorf("Payoff(%v) = %v, want %v", tt.node, got, tt.want)
			}
		})
	}
}

func TestNewPayoff(t *testing.T) {
	for _, kind := range []interfaces.PayoffKind{interfaces.PAYOFF_PRISONERS_DILEMMA, interfaces.PAYOFF_HAWK_DOVE} {
		p, err := NewPayoff(kind)
		if err != nil {
			t.Fatalf("NewPayoff(%v) error = %v", kind, err)
		}
		if p.Kind() != kind {
			t.Errorf("Kind() = %v, want %v", p.Kind(), kind)
		}
	}
	if _, err := NewPayoff("snowdrift"); !errors.Is(err, interfaces.ErrUnknownPayoff) {
		t.Errorf("error = %v, want ErrUnknownPayoff", err)
	}
}

func TestComputePayoffs_Deterministic(t *testing.T) {
	g := star(t)
	partition := testPartition{B, A, B, A, A, B}
	point := interfaces.GamePoint{T: 1.3, S: 0.2}

	first := ComputePayoffs(PrisonersDilemma{}, g, partition, point)
	second := ComputePayoffs(PrisonersDilemma{}, g, partition, point)
	if len(first) != partition.Size() {
		t.Fatalf("len = %v, want %v", len(first), partition.Size())
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("payoff %d differs between evaluations: %v vs %v", i, first[i], second[i])
		}
	}
	// center has three A neighbors
	if want := point.T * 3; first[0] != want {
		t.Errorf("center payoff = %v, want %v", first[0], want)
	}
}

func TestSnapshot(t *testing.T) {
	g := star(t)
	partition := testPartition{A, B, B, A, A, A}
	payoffs := PayoffVector{1, 4, 2, 4, 0, 0}

	var reported []int64
	s := NewSnapshot(g, partition, interfaces.GamePoint{T: 1, S: 0}, payoffs, func(rule interfaces.RuleKind, node int64, p float64) {
		reported = append(reported, node)
	})

	if s.MaxPayoff() != 4 {
		t.Errorf("MaxPayoff() = %v, want 4", s.MaxPayoff())
	}
	if s.Best() != 1 {
		t.Errorf("Best() = %v, want the first maximum 1", s.Best())
	}
	if s.Payoff(2) != 2 {
		t.Errorf("Payoff(2) = %v, want 2", s.Payoff(2))
	}
	s.Undefined(interfaces.RULE_MORAN, 3, -1)
	if len(reported) != 1 || reported[0] != 3 {
		t.Errorf("undefined handler got %v", reported)
	}

	quiet := NewSnapshot(g, partition, interfaces.GamePoint{}, payoffs, nil)
	quiet.Undefined(interfaces.RULE_MORAN, 3, -1)
}

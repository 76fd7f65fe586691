package world

import (
	"evogamesim/interfaces"
	"testing"
)

func TestPartition_Apply(t *testing.T) {
	p := NewPartition([]int64{10, 20, 30, 40})
	if p.Count(interfaces.LABEL_A) != 4 || p.Fraction() != 1 {
		t.Fatalf("new partition should be all A")
	}

	toA, toB, unchanged := p.Apply([]interfaces.Decision{interfaces.ADOPT_B, interfaces.ADOPT_B, interfaces.NO_CHANGE, interfaces.ADOPT_A})
	if toA != 0 || toB != 2 || unchanged != 2 {
		t.Errorf("Apply() = %d, %d, %d, want 0, 2, 2", toA, toB, unchanged)
	}
	if got := p.Members(interfaces.LABEL_B); len(got) != 2 || got[0] != 10 || got[1] != 20 {
		t.Errorf("Members(B) = %v", got)
	}

	toA, toB, unchanged = p.Apply([]interfaces.Decision{interfaces.ADOPT_A, interfaces.NO_CHANGE, interfaces.ADOPT_B, interfaces.NO_CHANGE})
	if toA != 1 || toB != 1 || unchanged != 2 {
		t.Errorf("Apply() = %d, %d, %d, want 1, 1, 2", toA, toB, unchanged)
	}
	if p.Label(10) != interfaces.LABEL_A || p.Label(20) != interfaces.LABEL_B || p.Label(30) != interfaces.LABEL_B {
		t.Errorf("labels after second round are wrong")
	}
	if p.Count(interfaces.LABEL_A)+p.Count(interfaces.LABEL_B) != p.Size() {
		t.Errorf("counts do not cover the population")
	}
	if p.Index(30) != 2 || p.Node(2) != 30 {
		t.Errorf("enumeration order changed")
	}
}

func TestPartition_Absorbed(t *testing.T) {
	p := NewPartition([]int64{1, 2})
	if state, ok := p.Absorbed(); !ok || state != interfaces.ABSORBED_ALL_A {
		t.Errorf("all A: Absorbed() = %v, %v", state, ok)
	}
	p.Apply([]interfaces.Decision{interfaces.ADOPT_B, interfaces.NO_CHANGE})
	if _, ok := p.Absorbed(); ok {
		t.Errorf("mixed partition reported as absorbed")
	}
	p.Apply([]interfaces.Decision{interfaces.NO_CHANGE, interfaces.ADOPT_B})
	if state, ok := p.Absorbed(); !ok || state != interfaces.ABSORBED_ALL_B {
		t.Errorf("all B: Absorbed() = %v, %v", state, ok)
	}
}

package interfaces

// Label is one of the two mutually exclusive strategies a node can hold.
type Label string

const (
	LABEL_A = Label("A") // cooperator, hawk
	LABEL_B = Label("B") // defector, dove
)

func (l Label) Other() Label {
	if l == LABEL_A {
		return LABEL_B
	}
	return LABEL_A
}

// Decision is the outcome of an update rule for one node in one round.
type Decision string

const (
	ADOPT_A   = Decision("AdoptA")
	ADOPT_B   = Decision("AdoptB")
	NO_CHANGE = Decision("NoChange")
)

// Adopt returns the decision that switches a node to label l.
func Adopt(l Label) Decision {
	if l == LABEL_A {
		return ADOPT_A
	}
	return ADOPT_B
}

// GamePoint is one point of the (T,S) parameter plane.
// The hawk-dove payoff reads it as (R,C).
type GamePoint struct {
	T float64 `json:"t" yaml:"t"`
	S float64 `json:"s" yaml:"s"`
}

// IPartition assigns every node of a network to exactly one label.
type IPartition interface {
	Label(node int64) Label
	// Index returns the fixed enumeration position of node, payoff vectors are indexed by it.
	Index(node int64) int
	Node(index int) int64
	Size() int
	Count(label Label) int
}

type IPayoff interface {
	Kind() PayoffKind
	Payoff(node int64, network INetwork, partition IPartition, point GamePoint) float64
}

type PayoffKind string

// add payoff kinds here
const (
	PAYOFF_PRISONERS_DILEMMA = PayoffKind("prisonersDilemma")
	PAYOFF_HAWK_DOVE         = PayoffKind("hawkDove")
)

type RuleKind string

// add update rules here
const (
	RULE_RANDOM                   = RuleKind("random")
	RULE_STOCHASTIC_BEST_RESPONSE = RuleKind("stochasticBestResponse")
	RULE_GENEROUS_TIT_FOR_TAT     = RuleKind("generousTitForTat")
	RULE_REPLICATOR               = RuleKind("replicator")
	RULE_MULTIPLE_REPLICATOR      = RuleKind("multipleReplicator")
	RULE_UNCONDITIONAL_IMITATION  = RuleKind("unconditionalImitation")
	RULE_MORAN                    = RuleKind("moran")
	RULE_FERMI                    = RuleKind("fermi")
)

type FamilyKind string

// add game families here
const (
	FAMILY_WEAK_PRISONERS_DILEMMA = FamilyKind("weakPrisonersDilemma")
	FAMILY_HAWK_DOVE              = FamilyKind("hawkDove")
	FAMILY_STAG_HUNT              = FamilyKind("stagHunt")
	FAMILY_SNOWDRIFT              = FamilyKind("snowdrift")
)

package world

import (
	"evogamesim/game"
	"evogamesim/interfaces"
	"evogamesim/util/logger"
	"evogamesim/util/metrics"
	"evogamesim/util/validation"
	"fmt"
	"log/slog"
	"math"
	"time"
)

// Parameters are the immutable dynamics settings of one run.
type Parameters struct {
	InitialDefectorFraction float64
	MaxRounds               int
	TransientRounds         int
}

func ParametersFromConfig(config interfaces.IConfig) Parameters {
	return Parameters{
		InitialDefectorFraction: config.InitialDefectorFraction(),
		MaxRounds:               config.MaxRounds(),
		TransientRounds:         config.TransientRounds(),
	}
}

// Options wire a run to the ambient stack, every field may be left empty.
type Options struct {
	RunId            string
	Logger           *slog.Logger
	Metrics          *metrics.Recorder
	Audit            *logger.AuditLogger
	RecordTrajectory bool
	// OnRound is called after every applied round with the new partition.
	OnRound func(round int, partition interfaces.IPartition)
}

type Result struct {
	Value  float64             `json:"value"`
	State  interfaces.SimState `json:"state"`
	Rounds int                 `json:"rounds"`
	// fraction of A at the start and after every round
	Trajectory []float64 `json:"trajectory,omitempty"`
}

// World runs one trajectory of the game on a network.
type World struct {
	network    interfaces.INetwork
	parameters Parameters
	payoff     interfaces.IPayoff
	rule       interfaces.IUpdateRule
	point      interfaces.GamePoint
	rng        interfaces.IRandom
	options    Options
	log        *slog.Logger
	partition  *Partition
	state      interfaces.SimState
	result     *Result
}

func NewWorld(network interfaces.INetwork, parameters Parameters, payoff interfaces.IPayoff, rule interfaces.IUpdateRule, point interfaces.GamePoint, rng interfaces.IRandom, options Options) (*World, error) {
	if err := validation.ValidateSimulation(parameters.InitialDefectorFraction, parameters.MaxRounds, parameters.TransientRounds); err != nil {
		return nil, err
	}
	if network == nil || len(network.Nodes()) == 0 {
		return nil, interfaces.ErrEmptyNetwork
	}
	if payoff == nil || rule == nil || rng == nil {
		return nil, fmt.Errorf("%w: payoff, update rule and random source are required", interfaces.ErrInvalidConfig)
	}
	log := options.Logger
	if log == nil {
		log = logger.Discard()
	}
	return &World{
		network:    network,
		parameters: parameters,
		payoff:     payoff,
		rule:       rule,
		point:      point,
		rng:        rng,
		options:    options,
		log:        log.With("run", options.RunId),
		state:      interfaces.INITIALIZING,
	}, nil
}

func (world *World) State() interfaces.SimState {
	return world.state
}

func (world *World) Partition() interfaces.IPartition {
	return world.partition
}

// Run executes the trajectory once, later calls return the stored result.
func (world *World) Run() *Result {
	if world.result != nil {
		return world.result
	}
	startTime := time.Now()
	world.options.Metrics.Counter(interfaces.METRIC_RUN_STARTED.String(), 1)
	world.initialize()

	trajectory := make([]float64, 0)
	if world.options.RecordTrajectory {
		trajectory = append(trajectory, world.partition.Fraction())
	}

	n := world.partition.Size()
	rounds := 0
	accumulated := 0
	value := 0.0
	state, absorbed := world.partition.Absorbed()
	for t := 0; t < world.parameters.MaxRounds && !absorbed; t++ {
		world.step(t)
		rounds++
		if world.options.RecordTrajectory {
			trajectory = append(trajectory, world.partition.Fraction())
		}
		state, absorbed = world.partition.Absorbed()
		if !absorbed && t >= world.parameters.TransientRounds {
			accumulated += world.partition.Count(interfaces.LABEL_A)
		}
	}

	switch state {
	case interfaces.ABSORBED_ALL_A:
		value = 1
		world.options.Metrics.Counter(interfaces.METRIC_RUN_ABSORBED_A.String(), 1)
	case interfaces.ABSORBED_ALL_B:
		value = 0
		world.options.Metrics.Counter(interfaces.METRIC_RUN_ABSORBED_B.String(), 1)
	default:
		state = interfaces.COMPLETED
		value = float64(accumulated) / float64(n*(world.parameters.MaxRounds-world.parameters.TransientRounds))
		world.options.Metrics.Counter(interfaces.METRIC_RUN_COMPLETED.String(), 1)
	}
	world.state = state
	world.result = &Result{Value: value, State: state, Rounds: rounds}
	if world.options.RecordTrajectory {
		world.result.Trajectory = trajectory
	}

	world.options.Metrics.Timer(interfaces.METRIC_RUN_REAL_TIME.String(), time.Since(startTime))
	world.options.Metrics.Histogram(interfaces.METRIC_ROUND.String(), int64(rounds))
	world.log.Debug("run finished", "rule", world.rule.Kind(), "t", world.point.T, "s", world.point.S, "state", state, "rounds", rounds, "value", value)
	return world.result
}

// initialize moves round-half-to-even(d0 * N) uniformly chosen nodes to B
func (world *World) initialize() {
	nodes := world.network.Nodes()
	world.partition = NewPartition(nodes)
	n := len(nodes)
	k := int(math.RoundToEven(world.parameters.InitialDefectorFraction * float64(n)))

	// partial Fisher-Yates, the first k positions are a uniform sample without replacement
	positions := make([]int, n)
	for i := range positions {
		positions[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + world.rng.Intn(n-i)
		positions[i], positions[j] = positions[j], positions[i]
		world.partition.set(positions[i], interfaces.LABEL_B)
	}
	world.state = interfaces.RUNNING
	world.log.Debug("partition initialized", "nodes", n, "defectors", k)
}

// step is one synchronous round: freeze payoffs, buffer every decision, then apply them together
func (world *World) step(t int) {
	payoffs := game.ComputePayoffs(world.payoff, world.network, world.partition, world.point)
	snapshot := game.NewSnapshot(world.network, world.partition, world.point, payoffs, world.undefined)

	decisions := make([]interfaces.Decision, world.partition.Size())
	adoptA, adoptB := 0, 0
	for i := range decisions {
		decisions[i] = world.rule.Decide(world.partition.Node(i), snapshot, world.rng)
		switch decisions[i] {
		case interfaces.ADOPT_A:
			adoptA++
		case interfaces.ADOPT_B:
			adoptB++
		}
	}
	toA, toB, unchanged := world.partition.Apply(decisions)

	world.options.Metrics.Counter(interfaces.METRIC_DECISION_ADOPT_A.String(), int64(adoptA))
	world.options.Metrics.Counter(interfaces.METRIC_DECISION_ADOPT_B.String(), int64(adoptB))
	world.options.Metrics.Counter(interfaces.METRIC_DECISION_NO_CHANGE.String(), int64(len(decisions)-adoptA-adoptB))
	world.options.Audit.AuditRound(world.options.RunId, t, world.partition.Count(interfaces.LABEL_A), world.partition.Count(interfaces.LABEL_B), toA, toB, unchanged)
	if world.options.OnRound != nil {
		world.options.OnRound(t, world.partition)
	}
}

func (world *World) undefined(rule interfaces.RuleKind, node int64, probability float64) {
	world.options.Metrics.Counter(interfaces.METRIC_UNDEFINED_PROBABILITY.String(), 1)
	world.log.Debug("undefined probability, node keeps its label", "rule", rule, "node", node, "probability", probability)
}

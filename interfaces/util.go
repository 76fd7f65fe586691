package interfaces

import (
	"errors"
)

type IConfig interface {
	Seed() uint64
	UseMetrics() bool
	OutPath() string
	PrintLogToConsole() bool
	LogLevel() string
	AuditRounds() bool
	RecordTrajectory() bool
	InitialDefectorFraction() float64
	MaxRounds() int
	TransientRounds() int
	Repetitions() int
	Workers() int
	Payoff() PayoffKind
	Rules() []RuleKind
	Families() []FamilyKind
	Points() int
	Network() INetworkConfig
}

type INetworkConfig interface {
	Type() INetworkType
	Nodes() int
	Degree() int
	Edges() int
	Rewiring() float64
	Communities() int
	PIn() float64
	POut() float64
}

// IRandom is the per-run random source handed to rules and generators.
type IRandom interface {
	// Uniform returns a value in [0,1).
	Uniform() float64
	// Intn returns a value in [0,n), n must be positive.
	Intn(n int) int
}

type metricName string

type IMetricName interface {
	getMetricName() metricName
	String() string
}

// this is just for preventing simple string from being used as IMetricName
func (mName metricName) getMetricName() metricName {
	return mName
}

func (mName metricName) String() string {
	return string(mName)
}

// add metric names here
const (
	METRIC_RUN_STARTED           = metricName("RunStarted")
	METRIC_RUN_ABSORBED_A        = metricName("RunAbsorbedA")
	METRIC_RUN_ABSORBED_B        = metricName("RunAbsorbedB")
	METRIC_RUN_COMPLETED         = metricName("RunCompleted")
	METRIC_RUN_REAL_TIME         = metricName("RunRealTime")
	METRIC_ROUND                 = metricName("Round")
	METRIC_DECISION_ADOPT_A      = metricName("DecisionAdoptA")
	METRIC_DECISION_ADOPT_B      = metricName("DecisionAdoptB")
	METRIC_DECISION_NO_CHANGE    = metricName("DecisionNoChange")
	METRIC_UNDEFINED_PROBABILITY = metricName("UndefinedProbability")
	METRIC_COOPERATION           = metricName("Cooperation")
	METRIC_POINT_REAL_TIME       = metricName("PointRealTime")
	METRIC_NETWORK_NODES         = metricName("NetworkNodes")
	METRIC_NETWORK_EDGES         = metricName("NetworkEdges")
)

var (
	ErrInvalidConfig     = errors.New("invalid configuration")
	ErrEmptyNetwork      = errors.New("empty network")
	ErrUnknownRule       = errors.New("unknown update rule")
	ErrUnknownPayoff     = errors.New("unknown payoff")
	ErrUnknownFamily     = errors.New("unknown game family")
	ErrUnknownNetwork    = errors.New("unknown network type")
	ErrInvalidParameters = errors.New("invalid generator parameters")
)

package montecarlo

import (
	"context"
	"evogamesim/interfaces"
	"evogamesim/util/random"
	"evogamesim/world"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the repetitions of one rule at one game point.
type Summary struct {
	Point        interfaces.GamePoint `json:"point"`
	Rule         interfaces.RuleKind  `json:"rule"`
	Repetitions  int                  `json:"repetitions"`
	Mean         float64              `json:"mean"`
	StdDev       float64              `json:"stdDev"`
	Values       []float64            `json:"values"`
	AbsorbedA    int                  `json:"absorbedA"`
	AbsorbedB    int                  `json:"absorbedB"`
	Completed    int                  `json:"completed"`
	Trajectories [][]float64          `json:"trajectories,omitempty"`
}

// Averager repeats independent runs and averages their results.
type Averager struct {
	parameters  world.Parameters
	repetitions int
	workers     int
	options     world.Options
}

func NewAverager(parameters world.Parameters, repetitions int, workers int, options world.Options) (*Averager, error) {
	if repetitions < 1 || workers < 1 {
		return nil, fmt.Errorf("%w: repetitions (%v) and workers (%v) should be at least 1", interfaces.ErrInvalidConfig, repetitions, workers)
	}
	return &Averager{parameters: parameters, repetitions: repetitions, workers: workers, options: options}, nil
}

// Average returns the mean result over all repetitions.
func (a *Averager) Average(ctx context.Context, network interfaces.INetwork, payoff interfaces.IPayoff, rule interfaces.IUpdateRule, point interfaces.GamePoint, baseSeed uint64) (float64, error) {
	summary, err := a.Run(ctx, network, payoff, rule, point, baseSeed)
	if err != nil {
		return 0, err
	}
	return summary.Mean, nil
}

// Run executes the repetitions on at most workers goroutines. Repetition r is seeded with
// random.SeedFor(baseSeed, r) and stored at index r, so scheduling never changes the outcome.
func (a *Averager) Run(ctx context.Context, network interfaces.INetwork, payoff interfaces.IPayoff, rule interfaces.IUpdateRule, point interfaces.GamePoint, baseSeed uint64) (*Summary, error) {
	startTime := time.Now()
	values := make([]float64, a.repetitions)
	states := make([]interfaces.SimState, a.repetitions)
	var trajectories [][]float64
	if a.options.RecordTrajectory {
		trajectories = make([][]float64, a.repetitions)
	}

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)
	for r := 0; r < a.repetitions; r++ {
		if groupCtx.Err() != nil {
			break
		}
		r := r
		g.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			options := a.options
			options.RunId = fmt.Sprintf("%v/%v", a.options.RunId, r)
			w, err := world.NewWorld(network, a.parameters, payoff, rule, point, random.New(random.SeedFor(baseSeed, r)), options)
			if err != nil {
				return err
			}
			result := w.Run()
			values[r] = result.Value
			states[r] = result.State
			if trajectories != nil {
				trajectories[r] = result.Trajectory
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	summary := &Summary{
		Point:        point,
		Rule:         rule.Kind(),
		Repetitions:  a.repetitions,
		Mean:         stat.Mean(values, nil),
		Values:       values,
		Trajectories: trajectories,
	}
	if len(values) > 1 {
		summary.StdDev = stat.StdDev(values, nil)
	}
	for _, state := range states {
		switch state {
		case interfaces.ABSORBED_ALL_A:
			summary.AbsorbedA++
		case interfaces.ABSORBED_ALL_B:
			summary.AbsorbedB++
		default:
			summary.Completed++
		}
	}
	a.options.Metrics.Timer(interfaces.METRIC_POINT_REAL_TIME.String(), time.Since(startTime))
	return summary, nil
}

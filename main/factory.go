package main

import (
	"context"
	"evogamesim/game"
	"evogamesim/interfaces"
	"evogamesim/montecarlo"
	"evogamesim/network"
	"evogamesim/rule"
	"evogamesim/sweep"
	"evogamesim/util/logger"
	"evogamesim/util/metrics"
	"evogamesim/util/random"
	"evogamesim/util/stats"
	"evogamesim/world"
	"fmt"
	"log/slog"
	"time"
)

// experiment bundles what every run of one seed shares.
type experiment struct {
	config  interfaces.IConfig
	log     *slog.Logger
	metrics *metrics.Recorder
	audit   *logger.AuditLogger
}

// createNetwork draws the graph of a seed from its own stream, so the dynamics never shift it.
func (e *experiment) createNetwork() (*network.Graph, error) {
	rng := random.New(random.SeedFor(e.config.Seed()))
	graph, err := network.FromConfig(e.config.Network(), rng)
	if err != nil {
		return nil, fmt.Errorf("creating network: %w", err)
	}
	e.log.Debug("network generator draws", "counts", rng.Counts())
	e.metrics.Gauge(interfaces.METRIC_NETWORK_NODES.String(), int64(len(graph.Nodes())))
	e.metrics.Gauge(interfaces.METRIC_NETWORK_EDGES.String(), int64(graph.EdgeCount()))
	return graph, nil
}

// run sweeps every configured family with every configured rule.
func (e *experiment) run(ctx context.Context) (*stats.Overview, error) {
	graph, err := e.createNetwork()
	if err != nil {
		return nil, err
	}
	summary := graph.Summary(e.config.Network().Type())
	e.log.Info("network created", "type", summary.Type, "nodes", summary.Nodes, "edges", summary.Edges, "meanDegree", summary.MeanDegree, "isolated", summary.Isolated, "components", summary.Components)

	payoff, err := game.NewPayoff(e.config.Payoff())
	if err != nil {
		return nil, err
	}
	parameters := world.ParametersFromConfig(e.config)
	overview := stats.NewOverview(e.config, summary)

	for famIdx, familyKind := range e.config.Families() {
		family, err := sweep.Generate(familyKind, e.config.Points())
		if err != nil {
			return nil, err
		}
		for ruleIdx, ruleKind := range e.config.Rules() {
			updateRule, err := rule.NewRule(ruleKind)
			if err != nil {
				return nil, err
			}
			startTime := time.Now()
			summaries := make([]*montecarlo.Summary, 0, family.Len())
			for i, point := range family.Points() {
				averager, err := montecarlo.NewAverager(parameters, e.config.Repetitions(), e.config.Workers(), world.Options{
					RunId:            fmt.Sprintf("%v/%v/%v", familyKind, ruleKind, i),
					Logger:           e.log,
					Metrics:          e.metrics,
					Audit:            e.audit,
					RecordTrajectory: e.config.RecordTrajectory(),
				})
				if err != nil {
					return nil, err
				}
				s, err := averager.Run(ctx, graph, payoff, updateRule, point, random.SeedFor(e.config.Seed(), famIdx, ruleIdx, i))
				if err != nil {
					return nil, fmt.Errorf("%v %v at %v: %w", familyKind, ruleKind, sweep.Label(point), err)
				}
				summaries = append(summaries, s)
			}
			curve := overview.AddCurve(familyKind, ruleKind, summaries)
			e.metrics.FloatGauge(metrics.NameFormat(interfaces.METRIC_COOPERATION, fmt.Sprintf("%v_%v", familyKind, ruleKind)), curve.Mean)
			e.log.Info("curve finished", "family", familyKind, "rule", ruleKind, "points", len(summaries), "mean", curve.Mean, "took", time.Since(startTime))
		}
	}
	return overview, nil
}

// simulate runs a single recorded trajectory of one rule at one game point.
func (e *experiment) simulate(ruleKind interfaces.RuleKind, point interfaces.GamePoint) (*stats.Trajectory, error) {
	graph, err := e.createNetwork()
	if err != nil {
		return nil, err
	}
	payoff, err := game.NewPayoff(e.config.Payoff())
	if err != nil {
		return nil, err
	}
	updateRule, err := rule.NewRule(ruleKind)
	if err != nil {
		return nil, err
	}
	seed := random.SeedFor(e.config.Seed(), 0)
	rng := random.New(seed)
	w, err := world.NewWorld(graph, world.ParametersFromConfig(e.config), payoff, updateRule, point, rng, world.Options{
		RunId:            fmt.Sprintf("%v/%v", ruleKind, sweep.Label(point)),
		Logger:           e.log,
		Metrics:          e.metrics,
		Audit:            e.audit,
		RecordTrajectory: true,
	})
	if err != nil {
		return nil, err
	}
	result := w.Run()
	e.log.Info("trajectory finished", "rule", ruleKind, "state", result.State, "rounds", result.Rounds, "value", result.Value)
	e.log.Debug("dynamics draws", "counts", rng.Counts())

	return &stats.Trajectory{
		Rule:    ruleKind,
		Payoff:  e.config.Payoff(),
		Point:   point,
		Seed:    seed,
		Network: graph.Summary(e.config.Network().Type()),
		Result:  result,
	}, nil
}

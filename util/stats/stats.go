package stats

import (
	"encoding/json"
	"evogamesim/interfaces"
	"evogamesim/montecarlo"
	"evogamesim/network"
	"evogamesim/sweep"
	"evogamesim/world"
	"fmt"
	"io"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"
)

// Overview is everything an experiment hands to the plotting layer.
type Overview struct {
	ExperimentId            string                `json:"experimentId"`
	Seed                    uint64                `json:"seed"`
	Payoff                  interfaces.PayoffKind `json:"payoff"`
	InitialDefectorFraction float64               `json:"initialDefectorFraction"`
	MaxRounds               int                   `json:"maxRounds"`
	TransientRounds         int                   `json:"transientRounds"`
	Repetitions             int                   `json:"repetitions"`
	Network                 network.Summary       `json:"network"`
	Curves                  []*Curve              `json:"curves"`
}

// Curve is the cooperation of one rule along one game family.
type Curve struct {
	Family    interfaces.FamilyKind `json:"family"`
	Rule      interfaces.RuleKind   `json:"rule"`
	Labels    []string              `json:"labels"`
	Mean      float64               `json:"mean"`
	Summaries []*montecarlo.Summary `json:"summaries"`
}

func NewOverview(config interfaces.IConfig, networkSummary network.Summary) *Overview {
	return &Overview{
		ExperimentId:            uuid.NewString(),
		Seed:                    config.Seed(),
		Payoff:                  config.Payoff(),
		InitialDefectorFraction: config.InitialDefectorFraction(),
		MaxRounds:               config.MaxRounds(),
		TransientRounds:         config.TransientRounds(),
		Repetitions:             config.Repetitions(),
		Network:                 networkSummary,
		Curves:                  make([]*Curve, 0),
	}
}

func (o *Overview) AddCurve(family interfaces.FamilyKind, rule interfaces.RuleKind, summaries []*montecarlo.Summary) *Curve {
	curve := &Curve{Family: family, Rule: rule, Labels: make([]string, 0, len(summaries)), Summaries: summaries}
	means := make([]float64, 0, len(summaries))
	for _, s := range summaries {
		curve.Labels = append(curve.Labels, sweep.Label(s.Point))
		means = append(means, s.Mean)
	}
	if len(means) > 0 {
		curve.Mean = stat.Mean(means, nil)
	}
	o.Curves = append(o.Curves, curve)
	return curve
}

func PrintOverview(overview *Overview, writer io.Writer) error {
	out, err := json.MarshalIndent(overview, "", "  ")
	if err != nil {
		return err
	}
	_, err = writer.Write(out)
	return err
}

// PrintCsv writes one " ; " separated line per curve point.
func PrintCsv(overview *Overview, writer io.Writer) error {
	if _, err := fmt.Fprintf(writer, "%v ; %v ; %v ; %v ; %v ; %v ; %v ; %v ; %v ; %v\n", "family", "rule", "index", "t", "s", "mean", "stdDev", "absorbedA", "absorbedB", "completed"); err != nil {
		return err
	}
	for _, curve := range overview.Curves {
		for i, s := range curve.Summaries {
			if _, err := fmt.Fprintf(writer, "%v ; %v ; %v ; %v ; %v ; %v ; %v ; %v ; %v ; %v\n", curve.Family, curve.Rule, i, s.Point.T, s.Point.S, s.Mean, s.StdDev, s.AbsorbedA, s.AbsorbedB, s.Completed); err != nil {
				return err
			}
		}
	}
	return nil
}

// Trajectory is the output of a single simulated run.
type Trajectory struct {
	Rule    interfaces.RuleKind   `json:"rule"`
	Payoff  interfaces.PayoffKind `json:"payoff"`
	Point   interfaces.GamePoint  `json:"point"`
	Seed    uint64                `json:"seed"`
	Network network.Summary       `json:"network"`
	Result  *world.Result         `json:"result"`
}

func PrintTrajectory(trajectory *Trajectory, writer io.Writer) error {
	out, err := json.MarshalIndent(trajectory, "", "  ")
	if err != nil {
		return err
	}
	_, err = writer.Write(out)
	return err
}

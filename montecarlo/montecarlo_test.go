package montecarlo

import (
	"context"
	"errors"
	"evogamesim/game"
	"evogamesim/interfaces"
	"evogamesim/network"
	"evogamesim/rule"
	"evogamesim/util/metrics"
	"evogamesim/util/random"
	"evogamesim/world"
	"testing"
)

func TestAverage_CompleteGraphWithoutDefectors(t *testing.T) {
	g, err := network.Complete(4)
	if err != nil {
		t.Fatal(err)
	}
	a, err := NewAverager(world.Parameters{InitialDefectorFraction: 0, MaxRounds: 500, TransientRounds: 400}, 20, 4, world.Options{})
	if err != nil {
		t.Fatal(err)
	}
	summary, err := a.Run(context.Background(), g, game.PrisonersDilemma{}, rule.NewReplicator(), interfaces.GamePoint{T: 1.5, S: 0}, 42)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if summary.Mean != 1.0 {
		t.Errorf("Mean = %v, want exactly 1.0", summary.Mean)
	}
	if summary.AbsorbedA != 20 || summary.StdDev != 0 || len(summary.Values) != 20 {
		t.Errorf("summary = %+v", summary)
	}
}

func TestAverage_SingleRepetitionEqualsSingleRun(t *testing.T) {
	g, _ := network.ErdosRenyi(40, 100, random.New(2))
	parameters := world.Parameters{InitialDefectorFraction: 0.5, MaxRounds: 60, TransientRounds: 40}
	point := interfaces.GamePoint{T: 1.3, S: -0.1}

	for _, kind := range rule.All() {
		t.Run(string(kind), func(t *testing.T) {
			r, _ := rule.NewRule(kind)
			a, _ := NewAverager(parameters, 1, 1, world.Options{})
			got, err := a.Average(context.Background(), g, game.PrisonersDilemma{}, r, point, 1234)
			if err != nil {
				t.Fatal(err)
			}

			w, _ := world.NewWorld(g, parameters, game.PrisonersDilemma{}, r, point, random.New(random.SeedFor(1234, 0)), world.Options{})
			if want := w.Run().Value; got != want {
				t.Errorf("Average() = %v, single run = %v", got, want)
			}
		})
	}
}

func TestRun_IndependentOfWorkers(t *testing.T) {
	g, _ := network.BarabasiAlbert(50, 2, random.New(3))
	parameters := world.Parameters{InitialDefectorFraction: 0.5, MaxRounds: 40, TransientRounds: 30}
	point := interfaces.GamePoint{T: 1.6, S: -0.2}

	serial, _ := NewAverager(parameters, 12, 1, world.Options{})
	parallel, _ := NewAverager(parameters, 12, 8, world.Options{})
	a, err := serial.Run(context.Background(), g, game.PrisonersDilemma{}, rule.NewFermi(), point, 9)
	if err != nil {
		t.Fatal(err)
	}
	b, err := parallel.Run(context.Background(), g, game.PrisonersDilemma{}, rule.NewFermi(), point, 9)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a.Values {
		if a.Values[i] != b.Values[i] {
			t.Fatalf("repetition %d: %v serial vs %v parallel", i, a.Values[i], b.Values[i])
		}
	}
	if a.Mean != b.Mean || a.StdDev != b.StdDev {
		t.Errorf("summaries differ: %+v vs %+v", a, b)
	}
	if a.AbsorbedA+a.AbsorbedB+a.Completed != 12 {
		t.Errorf("states do not cover all repetitions: %+v", a)
	}
}

func TestRun_Errors(t *testing.T) {
	g, _ := network.Complete(5)

	if _, err := NewAverager(world.Parameters{InitialDefectorFraction: 0.5, MaxRounds: 10, TransientRounds: 5}, 0, 1, world.Options{}); !errors.Is(err, interfaces.ErrInvalidConfig) {
		t.Errorf("zero repetitions: error = %v", err)
	}
	if _, err := NewAverager(world.Parameters{InitialDefectorFraction: 0.5, MaxRounds: 10, TransientRounds: 5}, 3, 0, world.Options{}); !errors.Is(err, interfaces.ErrInvalidConfig) {
		t.Errorf("zero workers: error = %v", err)
	}

	invalid, _ := NewAverager(world.Parameters{InitialDefectorFraction: 0.5, MaxRounds: 5, TransientRounds: 5}, 3, 2, world.Options{})
	if _, err := invalid.Run(context.Background(), g, game.PrisonersDilemma{}, rule.NewMoran(), interfaces.GamePoint{}, 1); !errors.Is(err, interfaces.ErrInvalidConfig) {
		t.Errorf("invalid parameters: error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	a, _ := NewAverager(world.Parameters{InitialDefectorFraction: 0.5, MaxRounds: 10, TransientRounds: 5}, 3, 2, world.Options{})
	if _, err := a.Run(ctx, g, game.PrisonersDilemma{}, rule.NewMoran(), interfaces.GamePoint{}, 1); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled context: error = %v", err)
	}
}

func TestRun_Metrics(t *testing.T) {
	g, _ := network.Complete(6)
	recorder := metrics.NewRecorder(true)
	a, _ := NewAverager(world.Parameters{InitialDefectorFraction: 0.5, MaxRounds: 20, TransientRounds: 10}, 5, 3, world.Options{Metrics: recorder})
	if _, err := a.Run(context.Background(), g, game.HawkDove{}, rule.NewRandom(), interfaces.GamePoint{T: 2, S: 1}, 5); err != nil {
		t.Fatal(err)
	}
	if got := recorder.Count(interfaces.METRIC_RUN_STARTED.String()); got != 5 {
		t.Errorf("RunStarted = %v, want 5", got)
	}
}

func TestRun_RecordTrajectory(t *testing.T) {
	g, _ := network.Complete(6)
	parameters := world.Parameters{InitialDefectorFraction: 0.5, MaxRounds: 20, TransientRounds: 10}
	point := interfaces.GamePoint{T: 1.2, S: -0.2}

	a, _ := NewAverager(parameters, 3, 2, world.Options{RecordTrajectory: true})
	summary, err := a.Run(context.Background(), g, game.PrisonersDilemma{}, rule.NewFermi(), point, 9)
	if err != nil {
		t.Fatal(err)
	}
	if len(summary.Trajectories) != 3 {
		t.Fatalf("got %d trajectories, want 3", len(summary.Trajectories))
	}
	for r, trajectory := range summary.Trajectories {
		w, _ := world.NewWorld(g, parameters, game.PrisonersDilemma{}, rule.NewFermi(), point, random.New(random.SeedFor(9, r)), world.Options{RecordTrajectory: true})
		want := w.Run().Trajectory
		if len(trajectory) != len(want) {
			t.Fatalf("repetition %d: %d entries, single run has %d", r, len(trajectory), len(want))
		}
		for i := range want {
			if trajectory[i] != want[i] {
				t.Errorf("repetition %d round %d: %v, single run %v", r, i, trajectory[i], want[i])
			}
		}
	}

	plain, _ := NewAverager(parameters, 3, 2, world.Options{})
	summary, err = plain.Run(context.Background(), g, game.PrisonersDilemma{}, rule.NewFermi(), point, 9)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Trajectories != nil {
		t.Errorf("trajectories recorded without RecordTrajectory: %v", summary.Trajectories)
	}
}

package validation

import (
	"errors"
	"evogamesim/game"
	"evogamesim/interfaces"
	"evogamesim/rule"
	"evogamesim/sweep"
	"fmt"
	"strings"
)

// ValidateConfig checks the whole experiment configuration and reports every problem at once.
func ValidateConfig(config interfaces.IConfig) error {
	// add config validation here
	var err []string = make([]string, 0, 2)
	if config.OutPath() == "" {
		err = append(err, "OutPath should be set")
	}
	if strings.HasSuffix(config.OutPath(), "/") {
		err = append(err, "OutPath should not end with '/'")
	}
	err = append(err, simulationErrors(config.InitialDefectorFraction(), config.MaxRounds(), config.TransientRounds())...)
	if config.Repetitions() < 1 {
		err = append(err, fmt.Sprintf("Repetitions should be at least 1, got %v", config.Repetitions()))
	}
	if config.Workers() < 1 {
		err = append(err, fmt.Sprintf("Workers should be at least 1, got %v", config.Workers()))
	}
	if config.Points() < 1 {
		err = append(err, fmt.Sprintf("Points should be at least 1, got %v", config.Points()))
	}
	if _, e := game.NewPayoff(config.Payoff()); e != nil {
		err = append(err, fmt.Sprintf("Payoff %q is unknown", config.Payoff()))
	}
	if len(config.Rules()) == 0 {
		err = append(err, "At least one update rule should be set")
	}
	for _, kind := range config.Rules() {
		if _, e := rule.NewRule(kind); e != nil {
			err = append(err, fmt.Sprintf("Update rule %q is unknown", kind))
		}
	}
	if len(config.Families()) == 0 {
		err = append(err, "At least one game family should be set")
	}
	for _, kind := range config.Families() {
		if _, ok := sweep.FAMILY_MAP[kind]; !ok {
			err = append(err, fmt.Sprintf("Game family %q is unknown", kind))
		}
	}
	err = append(err, networkErrors(config.Network())...)

	return report(err)
}

// ValidateSimulation checks the parameters of a single run.
func ValidateSimulation(initialDefectorFraction float64, maxRounds int, transientRounds int) error {
	return report(simulationErrors(initialDefectorFraction, maxRounds, transientRounds))
}

func simulationErrors(d0 float64, maxRounds int, transientRounds int) []string {
	err := make([]string, 0)
	if !(d0 >= 0 && d0 <= 1) {
		err = append(err, fmt.Sprintf("InitialDefectorFraction should be in [0,1], got %v", d0))
	}
	if transientRounds < 0 {
		err = append(err, fmt.Sprintf("TransientRounds should not be negative, got %v", transientRounds))
	}
	if maxRounds <= transientRounds {
		err = append(err, fmt.Sprintf("MaxRounds (%v) should be greater than TransientRounds (%v)", maxRounds, transientRounds))
	}
	return err
}

func networkErrors(config interfaces.INetworkConfig) []string {
	err := make([]string, 0)
	if config == nil {
		return append(err, "Network should be set")
	}
	if config.Type() == nil {
		return append(err, "Network type is unknown")
	}
	if config.Nodes() < 1 {
		err = append(err, fmt.Sprintf("Network should have at least one node, got %v", config.Nodes()))
	}
	switch config.Type() {
	case interfaces.COMPLETE_NETWORK:
	case interfaces.ERDOS_RENYI_NETWORK:
		if config.Edges() < 0 || (config.Edges() == 0 && config.Degree() < 1) {
			err = append(err, "Erdos-Renyi network needs edges or a mean degree")
		}
	case interfaces.COMMUNITY_NETWORK:
		if config.Communities() < 1 {
			err = append(err, "Community network needs at least one community")
		}
	default:
		if config.Degree() < 1 {
			err = append(err, fmt.Sprintf("Network type %v needs a positive degree", config.Type()))
		}
	}
	return err
}

func report(err []string) error {
	if len(err) > 0 {
		var errMessage string = "There are configuration errors:\n"
		for _, err := range err {
			errMessage += err + "\n"
		}
		return fmt.Errorf("%w: %v", interfaces.ErrInvalidConfig, errMessage)
	}
	return nil
}

// IsConfigError reports whether err was produced by validation.
func IsConfigError(err error) bool {
	return errors.Is(err, interfaces.ErrInvalidConfig)
}

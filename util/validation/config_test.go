package validation

import (
	"evogamesim/interfaces"
	"evogamesim/util/file"
	"strings"
	"testing"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *file.Config)
		message string
	}{
		{"defaults are valid", func(c *file.Config) {}, ""},
		{"empty outPath", func(c *file.Config) { c.COutPath = "" }, "OutPath should be set"},
		{"outPath with slash", func(c *file.Config) { c.COutPath = "out/" }, "should not end with '/'"},
		{"negative d0", func(c *file.Config) { c.CInitialDefectorFraction = -0.1 }, "InitialDefectorFraction"},
		{"d0 above one", func(c *file.Config) { c.CInitialDefectorFraction = 1.5 }, "InitialDefectorFraction"},
		{"maxRounds equal transient", func(c *file.Config) { c.CMaxRounds = 400 }, "MaxRounds (400) should be greater"},
		{"negative transient", func(c *file.Config) { c.CTransientRounds = -1 }, "TransientRounds should not be negative"},
		{"no repetitions", func(c *file.Config) { c.CRepetitions = 0 }, "Repetitions"},
		{"no workers", func(c *file.Config) { c.CWorkers = 0 }, "Workers"},
		{"no points", func(c *file.Config) { c.CPoints = 0 }, "Points"},
		{"unknown payoff", func(c *file.Config) { c.CPayoff = "chicken" }, "Payoff \"chicken\""},
		{"unknown rule", func(c *file.Config) { c.CRules = []interfaces.RuleKind{"copycat"} }, "Update rule \"copycat\""},
		{"no rules", func(c *file.Config) { c.CRules = nil }, "At least one update rule"},
		{"unknown family", func(c *file.Config) { c.CFamilies = []interfaces.FamilyKind{"chicken"} }, "Game family \"chicken\""},
		{"empty network", func(c *file.Config) { c.CNetwork.NNodes = 0 }, "at least one node"},
		{"unknown network", func(c *file.Config) { c.CNetwork.NType = "lattice" }, "Network type is unknown"},
		{"regular without degree", func(c *file.Config) { c.CNetwork.NType = "randomRegular" }, "needs a positive degree"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := file.DefaultConfig()
			tt.modify(c)
			err := ValidateConfig(c)
			if tt.message == "" {
				if err != nil {
					t.Fatalf("ValidateConfig() error = %v", err)
				}
				return
			}
			if !IsConfigError(err) {
				t.Fatalf("error = %v, want ErrInvalidConfig", err)
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Errorf("error %q does not mention %q", err, tt.message)
			}
		})
	}
}

func TestValidateConfig_CollectsAllErrors(t *testing.T) {
	c := file.DefaultConfig()
	c.COutPath = ""
	c.CRepetitions = 0
	c.CMaxRounds = 10
	err := ValidateConfig(c)
	for _, want := range []string{"OutPath", "Repetitions", "MaxRounds"} {
		if err == nil || !strings.Contains(err.Error(), want) {
			t.Errorf("error %v does not mention %v", err, want)
		}
	}
}

func TestValidateSimulation(t *testing.T) {
	if err := ValidateSimulation(0, 1, 0); err != nil {
		t.Errorf("valid run rejected: %v", err)
	}
	if err := ValidateSimulation(0.5, 5, 5); !IsConfigError(err) {
		t.Errorf("Tmax == Ttrans accepted: %v", err)
	}
}

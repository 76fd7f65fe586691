package file

import (
	"evogamesim/interfaces"
	"evogamesim/rule"
	"evogamesim/sweep"
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v2"
)

type Config struct {
	CSeed                    uint64                  `yaml:"seed"`
	CUseMetrics              bool                    `yaml:"useMetrics"`
	COutPath                 string                  `yaml:"outPath"`
	CPrintLogToConsole       bool                    `yaml:"printLogToConsole"`
	CLogLevel                string                  `yaml:"logLevel"`
	CAuditRounds             bool                    `yaml:"auditRounds"`
	CRecordTrajectory        bool                    `yaml:"recordTrajectory"`
	CInitialDefectorFraction float64                 `yaml:"initialDefectorFraction"`
	CMaxRounds               int                     `yaml:"maxRounds"`
	CTransientRounds         int                     `yaml:"transientRounds"`
	CRepetitions             int                     `yaml:"repetitions"`
	CWorkers                 int                     `yaml:"workers"`
	CPayoff                  interfaces.PayoffKind   `yaml:"payoff"`
	CRules                   []interfaces.RuleKind   `yaml:"rules"`
	CFamilies                []interfaces.FamilyKind `yaml:"families"`
	CPoints                  int                     `yaml:"points"`
	CNetwork                 *NetworkConfig          `yaml:"network"`
}

type NetworkConfig struct {
	NType        string  `yaml:"type"`
	NNodes       int     `yaml:"nodes"`
	NDegree      int     `yaml:"degree"`
	NEdges       int     `yaml:"edges"`
	NRewiring    float64 `yaml:"rewiring"`
	NCommunities int     `yaml:"communities"`
	NPIn         float64 `yaml:"pIn"`
	NPOut        float64 `yaml:"pOut"`
}

// Type returns nil for unknown network types.
func (config *NetworkConfig) Type() interfaces.INetworkType {
	return interfaces.NETWORK_TYPE_MAP[config.NType]
}

func (config *NetworkConfig) Nodes() int {
	return config.NNodes
}

func (config *NetworkConfig) Degree() int {
	return config.NDegree
}

func (config *NetworkConfig) Edges() int {
	return config.NEdges
}

func (config *NetworkConfig) Rewiring() float64 {
	return config.NRewiring
}

func (config *NetworkConfig) Communities() int {
	return config.NCommunities
}

func (config *NetworkConfig) PIn() float64 {
	return config.NPIn
}

func (config *NetworkConfig) POut() float64 {
	return config.NPOut
}

func (config *Config) Seed() uint64 {
	return config.CSeed
}

func (config *Config) UseMetrics() bool {
	return config.CUseMetrics
}

func (config *Config) OutPath() string {
	return config.COutPath
}

func (config *Config) PrintLogToConsole() bool {
	return config.CPrintLogToConsole
}

func (config *Config) LogLevel() string {
	return config.CLogLevel
}

func (config *Config) AuditRounds() bool {
	return config.CAuditRounds
}

func (config *Config) RecordTrajectory() bool {
	return config.CRecordTrajectory
}

func (config *Config) InitialDefectorFraction() float64 {
	return config.CInitialDefectorFraction
}

func (config *Config) MaxRounds() int {
	return config.CMaxRounds
}

func (config *Config) TransientRounds() int {
	return config.CTransientRounds
}

func (config *Config) Repetitions() int {
	return config.CRepetitions
}

func (config *Config) Workers() int {
	return config.CWorkers
}

func (config *Config) Payoff() interfaces.PayoffKind {
	return config.CPayoff
}

func (config *Config) Rules() []interfaces.RuleKind {
	return config.CRules
}

func (config *Config) Families() []interfaces.FamilyKind {
	return config.CFamilies
}

func (config *Config) Points() int {
	return config.CPoints
}

func (config *Config) Network() interfaces.INetworkConfig {
	return config.CNetwork
}

// DefaultConfig is the reference experiment: complete graph of 100 nodes,
// half of them defecting, 500 rounds of which the last 100 are averaged, 20 repetitions.
func DefaultConfig() *Config {
	return &Config{
		CSeed:                    1,
		COutPath:                 "out",
		CLogLevel:                "info",
		CInitialDefectorFraction: 0.5,
		CMaxRounds:               500,
		CTransientRounds:         400,
		CRepetitions:             20,
		CWorkers:                 runtime.NumCPU(),
		CPayoff:                  interfaces.PAYOFF_PRISONERS_DILEMMA,
		CRules:                   rule.All(),
		CFamilies:                sweep.All(),
		CPoints:                  sweep.DEFAULT_POINTS,
		CNetwork: &NetworkConfig{
			NType:  interfaces.COMPLETE_NETWORK.String(),
			NNodes: 100,
		},
	}
}

// LoadConfig reads a yaml file over the defaults, keys missing in the file keep their default.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	yamlFile, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	err = yaml.Unmarshal(yamlFile, config)
	if err != nil {
		return nil, fmt.Errorf("parsing config %v: %w", path, err)
	}
	if config.CNetwork == nil {
		config.CNetwork = DefaultConfig().CNetwork
	}
	return config, nil
}

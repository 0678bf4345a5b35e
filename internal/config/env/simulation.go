package env

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"baccarat_sim/internal/config"
	"baccarat_sim/internal/model"

	"gopkg.in/yaml.v3"
)

// defaultSimulationYAML значения по умолчанию, поверх них читается config.yaml
const defaultSimulationYAML = `
simulation:
  weights:
    banker: 45.8
    player: 44.6
    tie: 9.6
  bonus_probability: 0.12
  bonus_payout_percent: 50
  stake_scale: 10000
  stake_ceiling: 300000
  shoe_length: {min: 30, max: 200, default: 72}
  unit_stake: {min: 1, max: 30, default: 1}
  max_steps: {min: 2, max: 4, default: 3}
  workers: 0
`

type simulationFile struct {
	Simulation simulationYAML `yaml:"simulation"`
}

type simulationYAML struct {
	Weights struct {
		Banker float64 `yaml:"banker"`
		Player float64 `yaml:"player"`
		Tie    float64 `yaml:"tie"`
	} `yaml:"weights"`
	BonusProbability   float64       `yaml:"bonus_probability"`
	BonusPayoutPercent int64         `yaml:"bonus_payout_percent"`
	StakeScale         int64         `yaml:"stake_scale"`
	StakeCeiling       int64         `yaml:"stake_ceiling"`
	ShoeLength         config.Bounds `yaml:"shoe_length"`
	UnitStake          config.Bounds `yaml:"unit_stake"`
	MaxSteps           config.Bounds `yaml:"max_steps"`
	Workers            int           `yaml:"workers"` // 0 - по числу CPU
}

type simulationConfig struct {
	cfg simulationYAML
}

// NewSimulationConfigFromYAML читает настройки симуляции из yaml файла
func NewSimulationConfigFromYAML(path string) (config.SimulationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read simulation config: %w", err)
	}
	return ParseSimulationConfig(data)
}

// DefaultSimulationConfig настройки по умолчанию без файла
func DefaultSimulationConfig() config.SimulationConfig {
	cfg, err := ParseSimulationConfig(nil)
	if err != nil {
		panic("invalid default simulation config: " + err.Error())
	}
	return cfg
}

// ParseSimulationConfig накладывает yaml на значения по умолчанию и проверяет результат
func ParseSimulationConfig(data []byte) (config.SimulationConfig, error) {
	var file simulationFile
	if err := yaml.Unmarshal([]byte(defaultSimulationYAML), &file); err != nil {
		return nil, err
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse simulation config: %w", err)
		}
	}

	if err := validateSimulation(file.Simulation); err != nil {
		return nil, err
	}

	return &simulationConfig{cfg: file.Simulation}, nil
}

func validateSimulation(c simulationYAML) error {
	w := c.Weights
	if w.Banker < 0 || w.Player < 0 || w.Tie < 0 || w.Banker+w.Player+w.Tie <= 0 {
		return errors.New("outcome weights must be non-negative with a positive sum")
	}
	if c.BonusProbability < 0 || c.BonusProbability > 1 {
		return errors.New("bonus probability must be within [0, 1]")
	}
	if c.BonusPayoutPercent < 0 || c.BonusPayoutPercent > 100 {
		return errors.New("bonus payout percent must be within [0, 100]")
	}
	if c.StakeScale <= 0 {
		return errors.New("stake scale must be positive")
	}
	if c.StakeCeiling < c.StakeScale {
		return errors.New("stake ceiling must be at least one stake unit")
	}

	bounds := map[string]config.Bounds{
		"shoe_length": c.ShoeLength,
		"unit_stake":  c.UnitStake,
		"max_steps":   c.MaxSteps,
	}
	for name, b := range bounds {
		if b.Min < 1 || b.Min > b.Max || !b.Contains(b.Default) {
			return fmt.Errorf("invalid %s bounds: %+v", name, b)
		}
	}
	if c.Workers < 0 {
		return errors.New("workers must not be negative")
	}
	return nil
}

func (s *simulationConfig) OutcomeWeights() model.OutcomeWeights {
	return model.OutcomeWeights{
		Banker: s.cfg.Weights.Banker,
		Player: s.cfg.Weights.Player,
		Tie:    s.cfg.Weights.Tie,
	}
}

func (s *simulationConfig) BonusProbability() float64 {
	return s.cfg.BonusProbability
}

func (s *simulationConfig) BonusPayoutPercent() int64 {
	return s.cfg.BonusPayoutPercent
}

func (s *simulationConfig) StakeScale() int64 {
	return s.cfg.StakeScale
}

func (s *simulationConfig) StakeCeiling() int64 {
	return s.cfg.StakeCeiling
}

func (s *simulationConfig) ShoeLength() config.Bounds {
	return s.cfg.ShoeLength
}

func (s *simulationConfig) UnitStake() config.Bounds {
	return s.cfg.UnitStake
}

func (s *simulationConfig) MaxSteps() config.Bounds {
	return s.cfg.MaxSteps
}

func (s *simulationConfig) Workers() int {
	if s.cfg.Workers == 0 {
		return runtime.NumCPU()
	}
	return s.cfg.Workers
}

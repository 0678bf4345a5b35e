package config

import (
	"time"

	"baccarat_sim/internal/model"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// Bounds допустимый диапазон параметра и значение по умолчанию
type Bounds struct {
	Min     int `yaml:"min" json:"min"`
	Max     int `yaml:"max" json:"max"`
	Default int `yaml:"default" json:"default"`
}

// Contains проверяет попадание в диапазон
func (b Bounds) Contains(v int) bool {
	return v >= b.Min && v <= b.Max
}

type SimulationConfig interface {
	OutcomeWeights() model.OutcomeWeights
	BonusProbability() float64
	BonusPayoutPercent() int64
	StakeScale() int64
	StakeCeiling() int64
	ShoeLength() Bounds
	UnitStake() Bounds
	MaxSteps() Bounds
	Workers() int
}

type HTTPConfig interface {
	Address() string
	ReadTimeout() time.Duration
}

type PGConfig interface {
	DSN() string
}

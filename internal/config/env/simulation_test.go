package env

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"baccarat_sim/internal/config"
	"baccarat_sim/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSimulationConfig(t *testing.T) {
	cfg := DefaultSimulationConfig()

	assert.Equal(t, model.OutcomeWeights{Banker: 45.8, Player: 44.6, Tie: 9.6}, cfg.OutcomeWeights())
	assert.Equal(t, 0.12, cfg.BonusProbability())
	assert.Equal(t, int64(50), cfg.BonusPayoutPercent())
	assert.Equal(t, int64(10000), cfg.StakeScale())
	assert.Equal(t, int64(300000), cfg.StakeCeiling())
	assert.Equal(t, config.Bounds{Min: 30, Max: 200, Default: 72}, cfg.ShoeLength())
	assert.Equal(t, config.Bounds{Min: 1, Max: 30, Default: 1}, cfg.UnitStake())
	assert.Equal(t, config.Bounds{Min: 2, Max: 4, Default: 3}, cfg.MaxSteps())
	assert.Equal(t, runtime.NumCPU(), cfg.Workers())
}

func TestParseSimulationConfig_PartialOverride(t *testing.T) {
	cfg, err := ParseSimulationConfig([]byte(`
simulation:
  bonus_payout_percent: 100
  max_steps: {min: 2, max: 6, default: 4}
  workers: 3
`))
	require.NoError(t, err)

	assert.Equal(t, int64(100), cfg.BonusPayoutPercent())
	assert.Equal(t, config.Bounds{Min: 2, Max: 6, Default: 4}, cfg.MaxSteps())
	assert.Equal(t, 3, cfg.Workers())
	// Незаданное остаётся по умолчанию
	assert.Equal(t, 0.12, cfg.BonusProbability())
	assert.Equal(t, config.Bounds{Min: 30, Max: 200, Default: 72}, cfg.ShoeLength())
}

func TestParseSimulationConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "negative weight", yaml: "simulation:\n  weights: {banker: -1, player: 1, tie: 1}"},
		{name: "zero weights", yaml: "simulation:\n  weights: {banker: 0, player: 0, tie: 0}"},
		{name: "bonus probability", yaml: "simulation:\n  bonus_probability: 1.5"},
		{name: "payout percent", yaml: "simulation:\n  bonus_payout_percent: 150"},
		{name: "stake scale", yaml: "simulation:\n  stake_scale: 0"},
		{name: "ceiling below unit", yaml: "simulation:\n  stake_ceiling: 5000"},
		{name: "default out of bounds", yaml: "simulation:\n  shoe_length: {min: 30, max: 200, default: 10}"},
		{name: "min above max", yaml: "simulation:\n  max_steps: {min: 5, max: 4, default: 4}"},
		{name: "negative workers", yaml: "simulation:\n  workers: -2"},
		{name: "broken yaml", yaml: "simulation: [unclosed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseSimulationConfig([]byte(tt.yaml))
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestNewSimulationConfigFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("simulation:\n  stake_scale: 1000\n  stake_ceiling: 64000\n"), 0o600))

	cfg, err := NewSimulationConfigFromYAML(path)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), cfg.StakeScale())
	assert.Equal(t, int64(64000), cfg.StakeCeiling())

	_, err = NewSimulationConfigFromYAML(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestNewHTTPConfig(t *testing.T) {
	t.Setenv("HTTP_HOST", "127.0.0.1")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("HTTP_READ_TIMEOUT", "")

	cfg, err := NewHTTPConfig()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.Address())
	assert.Equal(t, 10*time.Second, cfg.ReadTimeout())

	t.Setenv("HTTP_READ_TIMEOUT", "soon")
	_, err = NewHTTPConfig()
	assert.Error(t, err)
}

func TestNewPGConfig(t *testing.T) {
	t.Setenv("PG_DSN", "")
	_, err := NewPGConfig()
	assert.ErrorIs(t, err, ErrPGNotConfigured)

	t.Setenv("PG_DSN", "postgres://localhost:5432/baccarat")
	cfg, err := NewPGConfig()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost:5432/baccarat", cfg.DSN())
}

package service

import (
	"baccarat_sim/internal/config"
	"baccarat_sim/internal/model"
	"context"
	"io"
)

type SimulationService interface {
	Run(ctx context.Context, req model.RunRequest) (*model.RunResult, error)
	LastRun(ctx context.Context) (*model.RunResult, error)
	Strategy(ctx context.Context, position model.PositionStrategy, rule model.StakeRule) (*model.StrategySummary, error)
	Export(ctx context.Context, w io.Writer) error
	Config() config.SimulationConfig
}

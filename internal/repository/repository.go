package repository

import (
	"baccarat_sim/internal/model"
	"context"
)

// RunRepository хранит последний запуск симуляции. Каждый новый запуск перезаписывает предыдущий
type RunRepository interface {
	SaveRun(ctx context.Context, run *model.RunResult) error
	// LastRun возвращает model.ErrNoRun, если запусков ещё не было
	LastRun(ctx context.Context) (*model.RunResult, error)
}

package run_cache_repo

import (
	"baccarat_sim/internal/model"
	"context"
	"sync"
)

// RunCache хранит последний запуск в памяти процесса
type RunCache struct {
	mtx  sync.RWMutex
	last *model.RunResult
}

// NewRunCacheRepository Конструктор пустого кэша
func NewRunCacheRepository() *RunCache {
	return &RunCache{}
}

// SaveRun перезаписывает последний запуск
func (r *RunCache) SaveRun(_ context.Context, run *model.RunResult) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.last = run
	return nil
}

// LastRun возвращает последний запуск или model.ErrNoRun.
// Результат запуска после сохранения не изменяется, поэтому отдаём указатель без копирования
func (r *RunCache) LastRun(_ context.Context) (*model.RunResult, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	if r.last == nil {
		return nil, model.ErrNoRun
	}
	return r.last, nil
}

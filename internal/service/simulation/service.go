package simulation

import (
	"baccarat_sim/internal/config"
	"baccarat_sim/internal/repository"
	"baccarat_sim/internal/service"
	"math/rand"
	"time"
)

type serv struct {
	cfg  config.SimulationConfig
	repo repository.RunRepository

	// newSource источник случайности по сиду; подменяется в тестах
	newSource func(seed int64) Source
	now       func() time.Time
}

// NewSimulationService Создать сервис симуляции стратегий
func NewSimulationService(cfg config.SimulationConfig, repo repository.RunRepository) service.SimulationService {
	return &serv{
		cfg:  cfg,
		repo: repo,
		newSource: func(seed int64) Source {
			return rand.New(rand.NewSource(seed))
		},
		now: time.Now,
	}
}

func (s *serv) Config() config.SimulationConfig {
	return s.cfg
}

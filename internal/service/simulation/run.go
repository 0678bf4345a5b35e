package simulation

import (
	"baccarat_sim/internal/config"
	"baccarat_sim/internal/model"
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"
)

// Run генерирует шу, прогоняет по нему каталог стратегий и сохраняет результат как последний запуск
func (s *serv) Run(ctx context.Context, req model.RunRequest) (*model.RunResult, error) {
	start := time.Now()

	req = ResolveRequest(s.cfg, req)
	if err := ValidateRequest(s.cfg, req); err != nil {
		runsTotal.WithLabelValues("invalid").Inc()
		return nil, err
	}

	seed := s.now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}

	params := model.EvalParams{
		UnitStake:          int64(req.UnitStake) * s.cfg.StakeScale(),
		MaxSteps:           req.MaxSteps,
		StakeCeiling:       s.cfg.StakeCeiling(),
		BonusPayoutPercent: s.cfg.BonusPayoutPercent(),
	}

	// Одно шу на все стратегии
	shoe := GenerateShoe(s.newSource(seed), req.ShoeLength, s.cfg.OutcomeWeights(), s.cfg.BonusProbability())

	summaries, err := RunAll(ctx, shoe, req.Positions, req.Rules, params, s.cfg.Workers())
	if err != nil {
		runsTotal.WithLabelValues("canceled").Inc()
		return nil, err
	}
	for _, sum := range summaries {
		strategiesEvaluated.WithLabelValues(sum.Rule.String()).Inc()
	}

	res := &model.RunResult{
		ID:        uuid.New(),
		CreatedAt: s.now(),
		Seed:      seed,
		Params:    params,
		Shoe:      shoe,
		Stats:     Stats(shoe),
		Road:      BuildRoad(shoe),
		Summaries: summaries,
		Ranking:   Rank(summaries),
	}

	if err := s.repo.SaveRun(ctx, res); err != nil {
		runsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("save run: %w", err)
	}

	elapsed := time.Since(start)
	runDuration.Observe(elapsed.Seconds())
	runsTotal.WithLabelValues("ok").Inc()
	log.Printf("run %s done: seed=%d games=%d strategies=%d in %s", res.ID, seed, len(shoe), len(summaries), elapsed)

	return res, nil
}

// LastRun последний сохранённый запуск
func (s *serv) LastRun(ctx context.Context) (*model.RunResult, error) {
	return s.repo.LastRun(ctx)
}

// Strategy результат одной стратегии из последнего запуска
func (s *serv) Strategy(ctx context.Context, position model.PositionStrategy, rule model.StakeRule) (*model.StrategySummary, error) {
	run, err := s.repo.LastRun(ctx)
	if err != nil {
		return nil, err
	}
	return run.Strategy(position, rule)
}

// Export CSV рейтинга последнего запуска
func (s *serv) Export(ctx context.Context, w io.Writer) error {
	run, err := s.repo.LastRun(ctx)
	if err != nil {
		return err
	}
	return ExportCSV(w, run.Ranking, s.cfg.StakeScale())
}

// ResolveRequest подставляет значения по умолчанию для незаданных параметров
func ResolveRequest(cfg config.SimulationConfig, req model.RunRequest) model.RunRequest {
	if req.ShoeLength == 0 {
		req.ShoeLength = cfg.ShoeLength().Default
	}
	if req.UnitStake == 0 {
		req.UnitStake = cfg.UnitStake().Default
	}
	if req.MaxSteps == 0 {
		req.MaxSteps = cfg.MaxSteps().Default
	}
	if len(req.Positions) == 0 {
		req.Positions = model.Positions()
	}
	if len(req.Rules) == 0 {
		req.Rules = model.StakeRules()
	}
	return req
}

// ValidateRequest проверяет параметры по границам из конфига.
// Ядро симуляции повторно не проверяет
func ValidateRequest(cfg config.SimulationConfig, req model.RunRequest) error {
	checks := []struct {
		field  string
		value  int
		bounds config.Bounds
	}{
		{"shoe_length", req.ShoeLength, cfg.ShoeLength()},
		{"unit_stake", req.UnitStake, cfg.UnitStake()},
		{"max_steps", req.MaxSteps, cfg.MaxSteps()},
	}
	for _, c := range checks {
		if !c.bounds.Contains(c.value) {
			return &model.ConfigError{
				Field:  c.field,
				Reason: fmt.Sprintf("%d not in [%d, %d]", c.value, c.bounds.Min, c.bounds.Max),
			}
		}
	}

	if err := checkUnique("positions", req.Positions); err != nil {
		return err
	}
	return checkUnique("rules", req.Rules)
}

func checkUnique[T fmt.Stringer](field string, items []T) error {
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		name := it.String()
		if _, ok := seen[name]; ok {
			return &model.ConfigError{Field: field, Reason: "duplicate " + name}
		}
		seen[name] = struct{}{}
	}
	return nil
}

package converter

import (
	dto "baccarat_sim/internal/api/dto/simulation"
	"baccarat_sim/internal/config"
	"baccarat_sim/internal/model"
	"baccarat_sim/pkg/money"
	"time"
)

// ToRunRequest переводит DTO в модель. Неизвестные имена стратегий - ошибка
func ToRunRequest(req dto.RunRequest) (model.RunRequest, error) {
	res := model.RunRequest{
		ShoeLength: req.ShoeLength,
		UnitStake:  req.UnitStake,
		MaxSteps:   req.MaxSteps,
		Seed:       req.Seed,
	}

	for _, name := range req.Positions {
		p, err := model.ParsePositionStrategy(name)
		if err != nil {
			return model.RunRequest{}, err
		}
		res.Positions = append(res.Positions, p)
	}

	for _, name := range req.Rules {
		r, err := model.ParseStakeRule(name)
		if err != nil {
			return model.RunRequest{}, err
		}
		res.Rules = append(res.Rules, r)
	}

	return res, nil
}

func ToRunResponse(run *model.RunResult, scale int64) dto.RunResponse {
	unit := run.Params.UnitStake
	if scale > 0 {
		unit /= scale
	}

	return dto.RunResponse{
		ID:         run.ID.String(),
		CreatedAt:  run.CreatedAt.Format(time.RFC3339),
		Seed:       run.Seed,
		ShoeLength: len(run.Shoe),
		UnitStake:  unit,
		MaxSteps:   run.Params.MaxSteps,
		Shoe:       toShoe(run.Shoe),
		Stats:      toStats(run.Stats),
		Road:       toRoad(run.Road),
		Ranking:    toRanking(run.Ranking, scale),
	}
}

func ToStrategyDetailResponse(s *model.StrategySummary) dto.StrategyDetailResponse {
	ledger := make([]dto.LedgerEntry, len(s.Ledger))
	for i, e := range s.Ledger {
		ledger[i] = dto.LedgerEntry{
			Round:   e.Round,
			Outcome: e.Outcome.String(),
			Bet:     e.Bet.String(),
			Stake:   e.Stake,
			Step:    e.Step,
			Profit:  e.Profit,
			Balance: e.Balance,
			Note:    e.Note,
		}
	}

	return dto.StrategyDetailResponse{
		Name:         s.Name(),
		Position:     s.Position.String(),
		Rule:         s.Rule.String(),
		FinalBalance: s.FinalBalance,
		History:      s.History,
		Ledger:       ledger,
	}
}

func ToConfigResponse(cfg config.SimulationConfig) dto.ConfigResponse {
	res := dto.ConfigResponse{
		ShoeLength:   toBounds(cfg.ShoeLength()),
		UnitStake:    toBounds(cfg.UnitStake()),
		MaxSteps:     toBounds(cfg.MaxSteps()),
		StakeScale:   cfg.StakeScale(),
		StakeCeiling: cfg.StakeCeiling(),
	}
	for _, p := range model.Positions() {
		res.Positions = append(res.Positions, p.String())
	}
	for _, r := range model.StakeRules() {
		res.Rules = append(res.Rules, r.String())
	}
	return res
}

func toBounds(b config.Bounds) dto.Bounds {
	return dto.Bounds{Min: b.Min, Max: b.Max, Default: b.Default}
}

func toShoe(shoe model.Shoe) []string {
	result := make([]string, len(shoe))
	for i, r := range shoe {
		result[i] = r.Outcome.String()
		if r.Bonus {
			result[i] += "*"
		}
	}
	return result
}

func toStats(stats model.ShoeStats) dto.Stats {
	res := dto.Stats{
		Total:      stats.Total,
		Counts:     make(map[string]int, len(stats.Counts)),
		Percent:    make(map[string]float64, len(stats.Percent)),
		BonusCount: stats.BonusCount,
	}
	for o, c := range stats.Counts {
		res.Counts[o.String()] = c
	}
	for o, p := range stats.Percent {
		res.Percent[o.String()] = p
	}
	return res
}

func toRoad(road model.Road) dto.Road {
	cells := make([]dto.RoadCell, len(road.Cells))
	for i, c := range road.Cells {
		cells[i] = dto.RoadCell{
			Column:  c.Column,
			Row:     c.Row,
			Outcome: c.Outcome.String(),
			Ties:    c.Ties,
			Bonus:   c.Bonus,
		}
	}
	return dto.Road{
		Columns:     road.Columns,
		LeadingTies: road.LeadingTies,
		Cells:       cells,
	}
}

func toRanking(ranking []model.StrategySummary, scale int64) []dto.StrategySummary {
	result := make([]dto.StrategySummary, len(ranking))
	for i, s := range ranking {
		result[i] = dto.StrategySummary{
			Rank:         i + 1,
			Name:         s.Name(),
			Position:     s.Position.String(),
			Rule:         s.Rule.String(),
			FinalBalance: s.FinalBalance,
			FinalUnits:   money.Units(s.FinalBalance, scale),
			History:      s.History,
		}
	}
	return result
}

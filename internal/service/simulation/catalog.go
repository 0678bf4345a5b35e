package simulation

import (
	"context"
	"sort"

	"baccarat_sim/internal/model"

	"golang.org/x/sync/errgroup"
)

// RunAll оценивает все пары (позиция, система ставок) на одном шу.
// Внешний цикл - позиции, внутренний - системы ставок; порядок результата не зависит от workers.
// При workers > 1 пары считаются параллельно: шу только читается, у каждой пары своё состояние
func RunAll(
	ctx context.Context,
	shoe model.Shoe,
	positions []model.PositionStrategy,
	rules []model.StakeRule,
	params model.EvalParams,
	workers int,
) ([]model.StrategySummary, error) {
	summaries := make([]model.StrategySummary, len(positions)*len(rules))

	if workers <= 1 {
		for i, pos := range positions {
			for j, rule := range rules {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				summaries[i*len(rules)+j] = Evaluate(shoe, pos, rule, params)
			}
		}
		return summaries, nil
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, pos := range positions {
		for j, rule := range rules {
			idx := i*len(rules) + j
			g.Go(func() error {
				if err := gCtx.Err(); err != nil {
					return err
				}
				summaries[idx] = Evaluate(shoe, pos, rule, params)
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summaries, nil
}

// Rank сортирует копию результатов по убыванию итогового баланса.
// Сортировка стабильная: при равенстве сохраняется порядок каталога
func Rank(summaries []model.StrategySummary) []model.StrategySummary {
	ranked := make([]model.StrategySummary, len(summaries))
	copy(ranked, summaries)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].FinalBalance > ranked[j].FinalBalance
	})
	return ranked
}

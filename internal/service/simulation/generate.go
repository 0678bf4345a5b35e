package simulation

import (
	"baccarat_sim/internal/model"
)

// Source источник случайных чисел в [0, 1). *rand.Rand подходит
type Source interface {
	Float64() float64
}

// GenerateShoe генерирует шу из n раундов.
// Исход тянется по весам, для банкира дополнительно тянется бонусный флаг с вероятностью bonusProb
func GenerateShoe(src Source, n int, weights model.OutcomeWeights, bonusProb float64) model.Shoe {
	shoe := make(model.Shoe, n)
	for i := 0; i < n; i++ {
		outcome := drawOutcome(src, weights)
		shoe[i] = model.Round{Outcome: outcome}
		if outcome == model.OutcomeBanker {
			shoe[i].Bonus = src.Float64() < bonusProb
		}
	}
	return shoe
}

// drawOutcome выбор исхода по кумулятивным весам в фиксированном порядке B, P, T
func drawOutcome(src Source, weights model.OutcomeWeights) model.Outcome {
	num := src.Float64() * weights.Total()
	cumulative := 0.0

	for _, o := range model.Outcomes {
		w := weights.Weight(o)
		if w <= 0 {
			continue
		}
		cumulative += w
		if num < cumulative {
			return o
		}
	}

	// Погрешность float: берём последний исход с ненулевым весом
	for i := len(model.Outcomes) - 1; i >= 0; i-- {
		if weights.Weight(model.Outcomes[i]) > 0 {
			return model.Outcomes[i]
		}
	}
	return model.OutcomeBanker
}

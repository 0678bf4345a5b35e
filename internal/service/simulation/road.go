package simulation

import "baccarat_sim/internal/model"

// roadDepth глубина колонки большой дороги
const roadDepth = 6

// Stats частоты исходов и число бонусных событий
func Stats(shoe model.Shoe) model.ShoeStats {
	stats := model.ShoeStats{
		Total:   len(shoe),
		Counts:  make(map[model.Outcome]int, len(model.Outcomes)),
		Percent: make(map[model.Outcome]float64, len(model.Outcomes)),
	}

	for _, o := range model.Outcomes {
		stats.Counts[o] = 0
	}
	for _, round := range shoe {
		stats.Counts[round.Outcome]++
		if round.Bonus {
			stats.BonusCount++
		}
	}

	for _, o := range model.Outcomes {
		if stats.Total > 0 {
			stats.Percent[o] = float64(stats.Counts[o]) / float64(stats.Total) * 100
		} else {
			stats.Percent[o] = 0
		}
	}
	return stats
}

// BuildRoad раскладывает шу в большую дорогу.
// Одинаковые подряд исходы идут вниз колонки, смена исхода начинает новую колонку.
// Если колонка заполнена, хвост уходит вправо по нижней строке, следующий исход - в колонку за хвостом.
// Тай не занимает ячейку, а увеличивает счётчик на последней ячейке
func BuildRoad(shoe model.Shoe) model.Road {
	road := model.Road{Cells: []model.RoadCell{}}

	col, row := 0, 0
	pendingTies := 0
	var prev *model.RoadCell

	for _, round := range shoe {
		if round.Outcome == model.OutcomeTie {
			if prev != nil {
				prev.Ties++
			} else {
				pendingTies++
			}
			continue
		}

		if prev != nil {
			if round.Outcome != prev.Outcome {
				col++
				row = 0
			} else {
				row++
				if row >= roadDepth {
					row = roadDepth - 1
					col++
				}
			}
		}

		road.Cells = append(road.Cells, model.RoadCell{
			Column:  col,
			Row:     row,
			Outcome: round.Outcome,
			Bonus:   round.Bonus,
		})
		prev = &road.Cells[len(road.Cells)-1]

		// Таи до первого исхода вешаем на первую ячейку
		if len(road.Cells) == 1 && pendingTies > 0 {
			prev.Ties = pendingTies
			pendingTies = 0
		}
	}

	road.LeadingTies = pendingTies
	if prev != nil {
		road.Columns = prev.Column + 1
	}
	return road
}

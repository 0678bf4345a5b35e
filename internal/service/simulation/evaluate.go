package simulation

import "baccarat_sim/internal/model"

// fallbackSide сторона, когда истории недостаточно
const fallbackSide = model.OutcomePlayer

// pickSide выбор стороны по истории без таев
func pickSide(position model.PositionStrategy, history []model.Outcome) model.Outcome {
	n := len(history)

	switch position {
	case model.PositionAlwaysPlayer:
		return model.OutcomePlayer
	case model.PositionAlwaysBanker:
		return model.OutcomeBanker
	case model.PositionFollowPrevious:
		if n >= 1 {
			return history[n-1]
		}
	case model.PositionFollowTwoBack:
		if n >= 2 {
			return history[n-2]
		}
	case model.PositionOpposite:
		if n >= 1 {
			return history[n-1].Opposite()
		}
	}
	return fallbackSide
}

// Evaluate прогоняет одну стратегию по шу.
// Детерминирована: одинаковые шу и параметры дают одинаковый результат
func Evaluate(shoe model.Shoe, position model.PositionStrategy, rule model.StakeRule, params model.EvalParams) model.StrategySummary {
	prog := newProgression(rule, params.MaxSteps)

	history := make([]int64, 0, len(shoe)+1)
	history = append(history, 0)
	ledger := make([]model.LedgerEntry, 0, len(shoe))
	decided := make([]model.Outcome, 0, len(shoe))

	var balance int64
	for i, round := range shoe {
		bet := pickSide(position, decided)
		step := prog.Step()
		stake, capped := prog.stake(params.UnitStake, params.StakeCeiling)

		var profit int64
		var note string
		switch {
		case round.Outcome == model.OutcomeTie:
			// Пуш: деньги и шаг не меняются, в историю стороны тай не попадает
			note = model.NotePush
		case bet == round.Outcome:
			profit = stake
			if bet == model.OutcomeBanker && round.Bonus {
				profit = stake * params.BonusPayoutPercent / 100
				note = model.NoteBonusPayout
			}
			prog.onWin()
		default:
			profit = -stake
			prog.onLoss()
		}

		if capped {
			if note != "" {
				note = model.NoteCeilingReset + "; " + note
			} else {
				note = model.NoteCeilingReset
			}
		}

		if round.Outcome != model.OutcomeTie {
			decided = append(decided, round.Outcome)
		}

		balance += profit
		history = append(history, balance)
		ledger = append(ledger, model.LedgerEntry{
			Round:   i + 1,
			Outcome: round.Outcome,
			Bet:     bet,
			Stake:   stake,
			Step:    step,
			Profit:  profit,
			Balance: balance,
			Note:    note,
		})
	}

	return model.StrategySummary{
		Position:     position,
		Rule:         rule,
		FinalBalance: balance,
		History:      history,
		Ledger:       ledger,
	}
}

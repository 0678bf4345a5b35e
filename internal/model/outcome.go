package model

import "fmt"

// Outcome исход раунда
type Outcome uint8

const (
	OutcomeBanker Outcome = iota
	OutcomePlayer
	OutcomeTie
)

// Outcomes порядок исходов для весов, статистики и вывода
var Outcomes = []Outcome{OutcomeBanker, OutcomePlayer, OutcomeTie}

func (o Outcome) String() string {
	switch o {
	case OutcomeBanker:
		return "B"
	case OutcomePlayer:
		return "P"
	case OutcomeTie:
		return "T"
	}
	return fmt.Sprintf("Outcome(%d)", uint8(o))
}

// Opposite возвращает противоположную сторону. Для тая возвращает тай
func (o Outcome) Opposite() Outcome {
	switch o {
	case OutcomeBanker:
		return OutcomePlayer
	case OutcomePlayer:
		return OutcomeBanker
	}
	return o
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Outcome) UnmarshalText(b []byte) error {
	switch string(b) {
	case "B":
		*o = OutcomeBanker
	case "P":
		*o = OutcomePlayer
	case "T":
		*o = OutcomeTie
	default:
		return fmt.Errorf("unknown outcome %q", string(b))
	}
	return nil
}

// OutcomeWeights относительные веса исходов (не обязаны суммироваться в 1 или 100)
type OutcomeWeights struct {
	Banker float64
	Player float64
	Tie    float64
}

// Weight вес конкретного исхода
func (w OutcomeWeights) Weight(o Outcome) float64 {
	switch o {
	case OutcomeBanker:
		return w.Banker
	case OutcomePlayer:
		return w.Player
	case OutcomeTie:
		return w.Tie
	}
	return 0
}

// Total сумма весов
func (w OutcomeWeights) Total() float64 {
	return w.Banker + w.Player + w.Tie
}

// Round один раунд шу: исход и флаг бонусного события (только для банкира)
type Round struct {
	Outcome Outcome `json:"outcome"`
	Bonus   bool    `json:"bonus,omitempty"`
}

// Shoe сгенерированная последовательность раундов. После генерации не изменяется
type Shoe []Round

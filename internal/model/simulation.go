package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Пометки в журнале раундов
const (
	NotePush         = "push"
	NoteBonusPayout  = "banker 6 pays half"
	NoteCeilingReset = "ceiling reset"
)

// EvalParams параметры оценки одной стратегии. Приходят уже провалидированными
type EvalParams struct {
	UnitStake          int64 // Базовая ставка в деньгах (уже умножена на масштаб)
	MaxSteps           int   // Максимальный шаг прогрессии
	StakeCeiling       int64 // Лимит ставки
	BonusPayoutPercent int64 // Выплата при бонусном событии в процентах от ставки
}

// LedgerEntry строка журнала: один раунд одной стратегии
type LedgerEntry struct {
	Round   int     `json:"round"` // С 1
	Outcome Outcome `json:"outcome"`
	Bet     Outcome `json:"bet"`
	Stake   int64   `json:"stake"`
	Step    int     `json:"step"`
	Profit  int64   `json:"profit"`
	Balance int64   `json:"balance"`
	Note    string  `json:"note,omitempty"`
}

// StrategySummary результат одной пары (позиция, система ставок)
type StrategySummary struct {
	Position     PositionStrategy `json:"position"`
	Rule         StakeRule        `json:"rule"`
	FinalBalance int64            `json:"final_balance"`
	History      []int64          `json:"history"` // len = len(shoe)+1, History[0] = 0
	Ledger       []LedgerEntry    `json:"ledger"`
}

// Name человекочитаемое имя стратегии
func (s StrategySummary) Name() string {
	return fmt.Sprintf("%s + %s", s.Position, s.Rule)
}

// ShoeStats частоты исходов в шу
type ShoeStats struct {
	Total      int                 `json:"total"`
	Counts     map[Outcome]int     `json:"counts"`
	Percent    map[Outcome]float64 `json:"percent"`
	BonusCount int                 `json:"bonus_count"`
}

// RoadCell ячейка большой дороги (big road)
type RoadCell struct {
	Column  int     `json:"column"`
	Row     int     `json:"row"` // 0..5, сверху вниз
	Outcome Outcome `json:"outcome"`
	Ties    int     `json:"ties"`
	Bonus   bool    `json:"bonus,omitempty"`
}

// Road раскладка большой дороги
type Road struct {
	Cells   []RoadCell `json:"cells"`
	Columns int        `json:"columns"`
	// LeadingTies таи до первого не-тай исхода (если шу целиком из таев)
	LeadingTies int `json:"leading_ties"`
}

// RunRequest параметры одного запуска от фронтенда
type RunRequest struct {
	ShoeLength int
	UnitStake  int // В единицах масштаба (1 = 10 000)
	MaxSteps   int
	Seed       *int64
	Positions  []PositionStrategy // Пусто - весь каталог
	Rules      []StakeRule        // Пусто - весь каталог
}

// RunResult результат одного запуска. Владелец - вызывающая сторона
type RunResult struct {
	ID        uuid.UUID         `json:"id"`
	CreatedAt time.Time         `json:"created_at"`
	Seed      int64             `json:"seed"`
	Params    EvalParams        `json:"params"`
	Shoe      Shoe              `json:"shoe"`
	Stats     ShoeStats         `json:"stats"`
	Road      Road              `json:"road"`
	Summaries []StrategySummary `json:"summaries"` // Порядок каталога
	Ranking   []StrategySummary `json:"ranking"`   // По убыванию итогового баланса
}

// Strategy ищет результат стратегии в запуске
func (r *RunResult) Strategy(position PositionStrategy, rule StakeRule) (*StrategySummary, error) {
	for i := range r.Summaries {
		if r.Summaries[i].Position == position && r.Summaries[i].Rule == rule {
			return &r.Summaries[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s + %s not in run", ErrUnknownStrategy, position, rule)
}

// ConfigError параметр запуска вне допустимого диапазона
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

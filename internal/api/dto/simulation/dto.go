package simulation

type RunRequest struct {
	ShoeLength int      `json:"shoe_length" validate:"gte=0"` // Число раундов, 0 - по умолчанию
	UnitStake  int      `json:"unit_stake" validate:"gte=0"`  // Базовая ставка в единицах (1 = 10 000)
	MaxSteps   int      `json:"max_steps" validate:"gte=0"`   // Максимальный шаг мартингейла
	Seed       *int64   `json:"seed"`                         // Сид для воспроизводимости
	Positions  []string `json:"positions" validate:"dive,required"`
	Rules      []string `json:"rules" validate:"dive,required"`
}

type RunResponse struct {
	ID         string            `json:"id"`
	CreatedAt  string            `json:"created_at"`
	Seed       int64             `json:"seed"`
	ShoeLength int               `json:"shoe_length"`
	UnitStake  int64             `json:"unit_stake"`
	MaxSteps   int               `json:"max_steps"`
	Shoe       []string          `json:"shoe"` // "B", "B*" (бонус), "P", "T"
	Stats      Stats             `json:"stats"`
	Road       Road              `json:"road"`
	Ranking    []StrategySummary `json:"ranking"`
}

type Stats struct {
	Total      int                `json:"total"`
	Counts     map[string]int     `json:"counts"`
	Percent    map[string]float64 `json:"percent"`
	BonusCount int                `json:"bonus_count"`
}

type Road struct {
	Columns     int        `json:"columns"`
	LeadingTies int        `json:"leading_ties"`
	Cells       []RoadCell `json:"cells"`
}

type RoadCell struct {
	Column  int    `json:"column"`
	Row     int    `json:"row"`
	Outcome string `json:"outcome"`
	Ties    int    `json:"ties"`
	Bonus   bool   `json:"bonus"`
}

type StrategySummary struct {
	Rank         int     `json:"rank"`
	Name         string  `json:"name"`
	Position     string  `json:"position"`
	Rule         string  `json:"rule"`
	FinalBalance int64   `json:"final_balance"`
	FinalUnits   string  `json:"final_units"` // Итог в единицах масштаба
	History      []int64 `json:"history"`     // Для графика
}

type StrategyDetailResponse struct {
	Name         string        `json:"name"`
	Position     string        `json:"position"`
	Rule         string        `json:"rule"`
	FinalBalance int64         `json:"final_balance"`
	History      []int64       `json:"history"`
	Ledger       []LedgerEntry `json:"ledger"`
}

type LedgerEntry struct {
	Round   int    `json:"round"`
	Outcome string `json:"outcome"`
	Bet     string `json:"bet"`
	Stake   int64  `json:"stake"`
	Step    int    `json:"step"`
	Profit  int64  `json:"profit"`
	Balance int64  `json:"balance"`
	Note    string `json:"note,omitempty"`
}

type Bounds struct {
	Min     int `json:"min"`
	Max     int `json:"max"`
	Default int `json:"default"`
}

// ConfigResponse границы для слайдеров фронтенда
type ConfigResponse struct {
	ShoeLength   Bounds   `json:"shoe_length"`
	UnitStake    Bounds   `json:"unit_stake"`
	MaxSteps     Bounds   `json:"max_steps"`
	StakeScale   int64    `json:"stake_scale"`
	StakeCeiling int64    `json:"stake_ceiling"`
	Positions    []string `json:"positions"`
	Rules        []string `json:"rules"`
}

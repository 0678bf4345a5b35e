package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownStrategy неизвестная позиционная стратегия или система ставок
	ErrUnknownStrategy = errors.New("unknown strategy")
	// ErrNoRun ещё не было ни одного запуска симуляции
	ErrNoRun = errors.New("no simulation run yet")
)

// PositionStrategy правило выбора стороны на каждый раунд
type PositionStrategy uint8

const (
	PositionAlwaysPlayer PositionStrategy = iota
	PositionAlwaysBanker
	PositionFollowPrevious
	PositionFollowTwoBack
	PositionOpposite
)

var positionNames = map[PositionStrategy]string{
	PositionAlwaysPlayer:   "always_player",
	PositionAlwaysBanker:   "always_banker",
	PositionFollowPrevious: "follow_previous",
	PositionFollowTwoBack:  "follow_two_back",
	PositionOpposite:       "opposite",
}

// Positions полный каталог позиционных стратегий в порядке перебора
func Positions() []PositionStrategy {
	return []PositionStrategy{
		PositionAlwaysPlayer,
		PositionAlwaysBanker,
		PositionFollowPrevious,
		PositionFollowTwoBack,
		PositionOpposite,
	}
}

func (p PositionStrategy) String() string {
	if name, ok := positionNames[p]; ok {
		return name
	}
	return fmt.Sprintf("PositionStrategy(%d)", uint8(p))
}

func (p PositionStrategy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *PositionStrategy) UnmarshalText(b []byte) error {
	v, err := ParsePositionStrategy(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// ParsePositionStrategy разбирает имя стратегии
func ParsePositionStrategy(s string) (PositionStrategy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for p, name := range positionNames {
		if name == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: position %q", ErrUnknownStrategy, s)
}

// StakeRule правило размера ставки
type StakeRule uint8

const (
	// StakeFlat постоянная ставка
	StakeFlat StakeRule = iota
	// StakeMartingale удвоение после проигрыша, сброс после выигрыша
	StakeMartingale
	// StakeAntiMartingale удвоение после выигрыша, сброс после проигрыша
	StakeAntiMartingale
)

var ruleNames = map[StakeRule]string{
	StakeFlat:           "flat",
	StakeMartingale:     "martingale",
	StakeAntiMartingale: "anti_martingale",
}

// StakeRules полный каталог систем ставок в порядке перебора
func StakeRules() []StakeRule {
	return []StakeRule{StakeFlat, StakeMartingale, StakeAntiMartingale}
}

func (r StakeRule) String() string {
	if name, ok := ruleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("StakeRule(%d)", uint8(r))
}

// Progressive true для правил с прогрессией ставки
func (r StakeRule) Progressive() bool {
	return r == StakeMartingale || r == StakeAntiMartingale
}

func (r StakeRule) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *StakeRule) UnmarshalText(b []byte) error {
	v, err := ParseStakeRule(string(b))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// ParseStakeRule разбирает имя системы ставок
func ParseStakeRule(s string) (StakeRule, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for r, name := range ruleNames {
		if name == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: rule %q", ErrUnknownStrategy, s)
}

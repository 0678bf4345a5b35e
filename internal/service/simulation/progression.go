package simulation

import "baccarat_sim/internal/model"

// progression шаг прогрессии ставки одной стратегии на одно шу.
// Шаг всегда в [1, maxSteps]: продвижение с maxSteps возвращает к 1 (кольцо)
type progression struct {
	rule     model.StakeRule
	maxSteps int
	step     int
}

func newProgression(rule model.StakeRule, maxSteps int) *progression {
	if maxSteps < 1 {
		maxSteps = 1
	}
	return &progression{rule: rule, maxSteps: maxSteps, step: 1}
}

// Step текущий шаг
func (p *progression) Step() int {
	return p.step
}

// stake ставка на текущем шаге. При превышении лимита возвращается базовая ставка
// и capped = true; шаг при этом не сбрасывается
func (p *progression) stake(unit, ceiling int64) (amount int64, capped bool) {
	if !p.rule.Progressive() {
		return unit, false
	}

	amount = unit << uint(p.step-1)
	if amount > ceiling {
		return unit, true
	}
	return amount, false
}

func (p *progression) onWin() {
	switch p.rule {
	case model.StakeMartingale:
		p.reset()
	case model.StakeAntiMartingale:
		p.advance()
	}
}

func (p *progression) onLoss() {
	switch p.rule {
	case model.StakeMartingale:
		p.advance()
	case model.StakeAntiMartingale:
		p.reset()
	}
}

func (p *progression) reset() {
	p.step = 1
}

func (p *progression) advance() {
	if p.step >= p.maxSteps {
		p.step = 1
		return
	}
	p.step++
}

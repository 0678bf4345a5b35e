package simulation

import (
	"testing"

	"baccarat_sim/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestProgression_Transitions(t *testing.T) {
	type event int
	const (
		win event = iota
		loss
	)

	tests := []struct {
		name     string
		rule     model.StakeRule
		maxSteps int
		events   []event
		want     []int // шаг после каждого события
	}{
		{
			name:     "martingale advances on loss and wraps at max",
			rule:     model.StakeMartingale,
			maxSteps: 3,
			events:   []event{loss, loss, loss, loss},
			want:     []int{2, 3, 1, 2},
		},
		{
			name:     "martingale resets on win",
			rule:     model.StakeMartingale,
			maxSteps: 4,
			events:   []event{loss, loss, win, loss},
			want:     []int{2, 3, 1, 2},
		},
		{
			name:     "anti-martingale advances on win and wraps at max",
			rule:     model.StakeAntiMartingale,
			maxSteps: 2,
			events:   []event{win, win, win},
			want:     []int{2, 1, 2},
		},
		{
			name:     "anti-martingale resets on loss",
			rule:     model.StakeAntiMartingale,
			maxSteps: 4,
			events:   []event{win, win, loss},
			want:     []int{2, 3, 1},
		},
		{
			name:     "flat never moves",
			rule:     model.StakeFlat,
			maxSteps: 3,
			events:   []event{loss, win, loss},
			want:     []int{1, 1, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog := newProgression(tt.rule, tt.maxSteps)
			assert.Equal(t, 1, prog.Step())

			got := make([]int, 0, len(tt.events))
			for _, ev := range tt.events {
				if ev == win {
					prog.onWin()
				} else {
					prog.onLoss()
				}
				got = append(got, prog.Step())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProgression_Stake(t *testing.T) {
	prog := newProgression(model.StakeMartingale, 4)

	amount, capped := prog.stake(10000, 30000)
	assert.Equal(t, int64(10000), amount)
	assert.False(t, capped)

	prog.onLoss()
	prog.onLoss()
	amount, capped = prog.stake(10000, 30000)
	assert.Equal(t, int64(10000), amount, "40000 is over the ceiling")
	assert.True(t, capped)
	assert.Equal(t, 3, prog.Step())

	amount, capped = prog.stake(10000, 40000)
	assert.Equal(t, int64(40000), amount, "stake equal to the ceiling is allowed")
	assert.False(t, capped)

	flat := newProgression(model.StakeFlat, 4)
	amount, capped = flat.stake(10000, 5000)
	assert.Equal(t, int64(10000), amount)
	assert.False(t, capped)
}

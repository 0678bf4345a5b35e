package simulation

import (
	"testing"

	"baccarat_sim/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cell(col, row int, o model.Outcome, ties int) model.RoadCell {
	return model.RoadCell{Column: col, Row: row, Outcome: o, Ties: ties}
}

func TestBuildRoad(t *testing.T) {
	const (
		B = model.OutcomeBanker
		P = model.OutcomePlayer
	)

	tests := []struct {
		name    string
		shoe    model.Shoe
		cells   []model.RoadCell
		columns int
		leading int
	}{
		{
			name:    "streaks and ties",
			shoe:    model.Shoe{b, b, p, tie, tie, p, b},
			cells:   []model.RoadCell{cell(0, 0, B, 0), cell(0, 1, B, 0), cell(1, 0, P, 2), cell(1, 1, P, 0), cell(2, 0, B, 0)},
			columns: 3,
		},
		{
			name: "dragon tail turns right",
			shoe: model.Shoe{b, b, b, b, b, b, b, p},
			cells: []model.RoadCell{
				cell(0, 0, B, 0), cell(0, 1, B, 0), cell(0, 2, B, 0), cell(0, 3, B, 0),
				cell(0, 4, B, 0), cell(0, 5, B, 0), cell(1, 5, B, 0), cell(2, 0, P, 0),
			},
			columns: 3,
		},
		{
			name:    "leading ties attach to first cell",
			shoe:    model.Shoe{tie, tie, b, p},
			cells:   []model.RoadCell{cell(0, 0, B, 2), cell(1, 0, P, 0)},
			columns: 2,
		},
		{
			name:    "only ties",
			shoe:    model.Shoe{tie, tie, tie},
			cells:   []model.RoadCell{},
			columns: 0,
			leading: 3,
		},
		{
			name:    "empty shoe",
			shoe:    model.Shoe{},
			cells:   []model.RoadCell{},
			columns: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildRoad(tt.shoe)
			assert.Equal(t, tt.cells, got.Cells)
			assert.Equal(t, tt.columns, got.Columns)
			assert.Equal(t, tt.leading, got.LeadingTies)
		})
	}
}

func TestBuildRoad_KeepsBonusFlag(t *testing.T) {
	got := BuildRoad(model.Shoe{p, bSix})
	require.Len(t, got.Cells, 2)
	assert.True(t, got.Cells[1].Bonus)
	assert.False(t, got.Cells[0].Bonus)
}

func TestStats(t *testing.T) {
	got := Stats(model.Shoe{b, bSix, p, tie})

	assert.Equal(t, 4, got.Total)
	assert.Equal(t, 2, got.Counts[model.OutcomeBanker])
	assert.Equal(t, 1, got.Counts[model.OutcomePlayer])
	assert.Equal(t, 1, got.Counts[model.OutcomeTie])
	assert.InDelta(t, 50.0, got.Percent[model.OutcomeBanker], 1e-9)
	assert.InDelta(t, 25.0, got.Percent[model.OutcomeTie], 1e-9)
	assert.Equal(t, 1, got.BonusCount)

	empty := Stats(nil)
	assert.Zero(t, empty.Total)
	assert.Len(t, empty.Counts, 3)
	assert.Zero(t, empty.Percent[model.OutcomeBanker])
}

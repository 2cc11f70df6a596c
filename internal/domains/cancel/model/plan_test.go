package model_test

import (
	"testing"

	"lodgehub/internal/domains/booking/model"
	cancelModel "lodgehub/internal/domains/cancel/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanRelease(t *testing.T) {
	held := model.Allocation{
		{RoomName: "Deluxe", RoomType: "AC", RoomNumbers: []string{"101", "102"}},
		{RoomName: "Standard", RoomType: "Non-AC", RoomNumbers: []string{"201"}},
	}
	amounts := model.RoomAmounts{
		{RoomName: "Deluxe", RoomType: "AC", RoomCount: 2, BaseAmountPerRoom: 1499.5, GroupTotalBaseAmount: 2999},
	}

	t.Run("releases one label and keeps the category", func(t *testing.T) {
		plan, err := cancelModel.PlanRelease(held, amounts, []model.RoomGroup{
			{RoomName: "Deluxe", RoomType: "AC", RoomNumbers: []string{"101"}},
		})

		require.NoError(t, err)
		assert.Equal(t, model.Allocation{
			{RoomName: "Deluxe", RoomType: "AC", RoomNumbers: []string{"102"}},
			{RoomName: "Standard", RoomType: "Non-AC", RoomNumbers: []string{"201"}},
		}, plan.Remaining)
		require.Len(t, plan.Releases, 1)
		assert.InDelta(t, 1499.5, plan.Releases[0].PricePerRoom, 0.001)
		assert.InDelta(t, 1499.5, plan.TotalCancelValue, 0.001)
	})

	t.Run("drops an emptied category and values unknown snapshots at zero", func(t *testing.T) {
		plan, err := cancelModel.PlanRelease(held, amounts, []model.RoomGroup{
			{RoomName: "Standard", RoomType: "Non-AC", RoomNumbers: []string{"201"}},
			{RoomName: "Deluxe", RoomType: "AC", RoomNumbers: []string{"102"}},
		})

		require.NoError(t, err)
		assert.Equal(t, model.Allocation{
			{RoomName: "Deluxe", RoomType: "AC", RoomNumbers: []string{"101"}},
		}, plan.Remaining)
		assert.InDelta(t, 0, plan.Releases[0].Value, 0.001)
		assert.InDelta(t, 1499.5, plan.TotalCancelValue, 0.001)
	})

	tests := []struct {
		name       string
		selections []model.RoomGroup
		wantErr    error
	}{
		{
			name:       "empty selection",
			selections: []model.RoomGroup{{RoomName: "Deluxe", RoomType: "AC"}},
			wantErr:    cancelModel.ErrNothingToRelease,
		},
		{
			name: "every label",
			selections: []model.RoomGroup{
				{RoomName: "Deluxe", RoomType: "AC", RoomNumbers: []string{"101", "102"}},
				{RoomName: "Standard", RoomType: "Non-AC", RoomNumbers: []string{"201"}},
			},
			wantErr: cancelModel.ErrReleaseAll,
		},
		{
			name:       "label not held",
			selections: []model.RoomGroup{{RoomName: "Deluxe", RoomType: "AC", RoomNumbers: []string{"103"}}},
		},
		{
			name:       "label held in another category",
			selections: []model.RoomGroup{{RoomName: "Standard", RoomType: "Non-AC", RoomNumbers: []string{"101"}}},
		},
		{
			name:       "duplicate label",
			selections: []model.RoomGroup{{RoomName: "Deluxe", RoomType: "AC", RoomNumbers: []string{"101", "101"}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cancelModel.PlanRelease(held, amounts, tt.selections)

			require.Error(t, err)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

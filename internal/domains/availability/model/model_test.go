package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lodgehub/internal/domains/availability/model"
	bookingModel "lodgehub/internal/domains/booking/model"
	roomModel "lodgehub/internal/domains/room/model"
)

func TestFreeLabels(t *testing.T) {
	category := roomModel.Category{RoomName: "Deluxe", RoomType: "AC", RoomNumbers: []string{"101", "102", "103"}}

	occupied := model.OccupiedLabels([]bookingModel.Booking{
		{BookedRoom: bookingModel.Allocation{{RoomName: "Deluxe", RoomType: "AC", RoomNumbers: []string{"102"}}}},
		{BookedRoom: bookingModel.Allocation{{RoomNumbers: []string{"103", "201"}}}},
	})

	assert.True(t, occupied.Has("201"))
	assert.Equal(t, []string{"101"}, model.FreeLabels(category, occupied))
	assert.Equal(t, []string{"101", "102", "103"}, model.FreeLabels(category, model.LabelSet{}))
}

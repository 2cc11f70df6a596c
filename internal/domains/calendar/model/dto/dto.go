package dto

import (
	bookingModel "lodgehub/internal/domains/booking/model"
	bookingDto "lodgehub/internal/domains/booking/model/dto"
	"lodgehub/internal/domains/calendar/model"
	roomModel "lodgehub/internal/domains/room/model"
	"lodgehub/shared/constant"
	"lodgehub/shared/timezone"
)

type DayCount struct {
	Date             string `json:"date"`
	AvailableCount   int    `json:"available_count"`
	UnavailableCount int    `json:"unavailable_count"`
}

type CategoryDays struct {
	RoomName   string     `json:"room_name"`
	RoomType   string     `json:"room_type"`
	TotalCount int        `json:"total_count"`
	Days       []DayCount `json:"days"`
}

type NextDaysResponse struct {
	LodgeID    int64          `json:"lodge_id"`
	From       string         `json:"from"`
	Categories []CategoryDays `json:"categories"`
}

// FromWindows lays the per-window occupancy out category by category.
func (r *NextDaysResponse) FromWindows(lodgeID int64, windows []model.Window, perWindow [][]model.Occupancy) {
	r.LodgeID = lodgeID
	r.Categories = []CategoryDays{}

	if len(windows) == 0 {
		return
	}

	r.From = timezone.Format(windows[0].Start, constant.DateFormat)

	for c, first := range perWindow[0] {
		category := CategoryDays{
			RoomName:   first.RoomName,
			RoomType:   first.RoomType,
			TotalCount: first.Total,
			Days:       make([]DayCount, len(windows)),
		}

		for d, window := range windows {
			occupancy := perWindow[d][c]

			category.Days[d] = DayCount{
				Date:             timezone.Format(window.Start, constant.DayFormat),
				AvailableCount:   len(occupancy.FreeRooms),
				UnavailableCount: len(occupancy.OccupiedRooms),
			}
		}

		r.Categories = append(r.Categories, category)
	}
}

type CategoryOccupancy struct {
	RoomName      string   `json:"room_name"`
	RoomType      string   `json:"room_type"`
	TotalCount    int      `json:"total_count"`
	OccupiedCount int      `json:"occupied_count"`
	OccupiedRooms []string `json:"occupied_rooms"`
	FreeRooms     []string `json:"free_rooms"`
}

type OccupancyResponse struct {
	LodgeID    int64               `json:"lodge_id"`
	At         string              `json:"at"`
	Categories []CategoryOccupancy `json:"categories"`
}

func (r *OccupancyResponse) FromModels(lodgeID int64, at string, occupancy []model.Occupancy) {
	r.LodgeID = lodgeID
	r.At = at
	r.Categories = make([]CategoryOccupancy, len(occupancy))

	for i, o := range occupancy {
		r.Categories[i] = CategoryOccupancy{
			RoomName:      o.RoomName,
			RoomType:      o.RoomType,
			TotalCount:    o.Total,
			OccupiedCount: len(o.OccupiedRooms),
			OccupiedRooms: o.OccupiedRooms,
			FreeRooms:     o.FreeRooms,
		}
	}
}

type RoomBooking struct {
	RoomNumbers []string `json:"room_numbers"`
	bookingDto.BookingResponse
}

type RoomBookingsResponse struct {
	LodgeID  int64         `json:"lodge_id"`
	RoomName string        `json:"room_name"`
	RoomType string        `json:"room_type"`
	Bookings []RoomBooking `json:"bookings"`
}

func (r *RoomBookingsResponse) FromModels(lodgeID int64, category roomModel.Category, bookings []bookingModel.Booking) {
	r.LodgeID = lodgeID
	r.RoomName = category.RoomName
	r.RoomType = category.RoomType
	r.Bookings = []RoomBooking{}

	for _, booking := range bookings {
		held := model.HeldIn(booking, category)
		if len(held) == 0 {
			continue
		}

		item := RoomBooking{RoomNumbers: held}
		item.FromModel(booking)

		r.Bookings = append(r.Bookings, item)
	}
}

type LodgeStatsResponse struct {
	LodgeID               int64   `json:"lodge_id"`
	LodgeName             string  `json:"lodge_name"`
	TotalBookings         int     `json:"total_bookings"`
	TotalCancelled        int     `json:"total_cancelled"`
	TotalPartialCancelled int     `json:"total_partial_cancelled"`
	TotalIncome           float64 `json:"total_income"`
	TotalExpense          float64 `json:"total_expense"`
	Balance               float64 `json:"balance"`
}

// Package model computes per-category occupancy over time windows.
package model

import (
	"time"

	availabilityModel "lodgehub/internal/domains/availability/model"
	bookingModel "lodgehub/internal/domains/booking/model"
	roomModel "lodgehub/internal/domains/room/model"
	"lodgehub/shared/timezone"
)

// Window is the half-open interval [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// DayWindows splits the next days into buckets. Day 0 starts at now rather than
// midnight so that a booking made earlier today still counts against it.
func DayWindows(now time.Time, days int) []Window {
	if days <= 0 {
		return nil
	}

	midnight := timezone.StartOfDay(now)
	windows := make([]Window, 0, days)
	start := now

	for i := range days {
		end := midnight.AddDate(0, 0, i+1)
		windows = append(windows, Window{Start: start, End: end})
		start = end
	}

	return windows
}

// Span covers every window.
func Span(windows []Window) Window {
	if len(windows) == 0 {
		return Window{}
	}

	return Window{Start: windows[0].Start, End: windows[len(windows)-1].End}
}

// Occupancy is the state of one category during a window.
type Occupancy struct {
	RoomName      string
	RoomType      string
	Total         int
	OccupiedRooms []string
	FreeRooms     []string
}

// Occupy applies the overlap test of the availability engine to one window.
func Occupy(catalog []roomModel.Category, bookings []bookingModel.Booking, window Window) []Occupancy {
	active := make([]bookingModel.Booking, 0, len(bookings))

	for _, booking := range bookings {
		if booking.Blocks() && bookingModel.Overlaps(window.Start, window.End, booking.CheckIn, booking.CheckOut) {
			active = append(active, booking)
		}
	}

	occupied := availabilityModel.OccupiedLabels(active)
	result := make([]Occupancy, len(catalog))

	for i, category := range catalog {
		taken := []string{}

		for _, label := range category.RoomNumbers {
			if occupied.Has(label) {
				taken = append(taken, label)
			}
		}

		result[i] = Occupancy{
			RoomName:      category.RoomName,
			RoomType:      category.RoomType,
			Total:         len(category.RoomNumbers),
			OccupiedRooms: taken,
			FreeRooms:     availabilityModel.FreeLabels(category, occupied),
		}
	}

	return result
}

// HeldIn returns the labels of a category the booking holds, in catalog order.
func HeldIn(booking bookingModel.Booking, category roomModel.Category) []string {
	held := []string{}

	for _, label := range category.RoomNumbers {
		if booking.BookedRoom.Holds(category.RoomName, category.RoomType, label) {
			held = append(held, label)
		}
	}

	return held
}

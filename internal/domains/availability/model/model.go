// Package model holds the set arithmetic behind room availability.
package model

import (
	bookingModel "lodgehub/internal/domains/booking/model"
	roomModel "lodgehub/internal/domains/room/model"
)

// LabelSet is a set of room-number labels.
type LabelSet map[string]struct{}

func (l LabelSet) Has(label string) bool {
	_, ok := l[label]

	return ok
}

// OccupiedLabels flattens the allocations of the given bookings.
func OccupiedLabels(bookings []bookingModel.Booking) LabelSet {
	occupied := LabelSet{}

	for _, booking := range bookings {
		for _, label := range booking.BookedRoom.Labels() {
			occupied[label] = struct{}{}
		}
	}

	return occupied
}

// FreeLabels keeps the catalog order of the category labels not in occupied.
func FreeLabels(category roomModel.Category, occupied LabelSet) []string {
	free := []string{}

	for _, label := range category.RoomNumbers {
		if !occupied.Has(label) {
			free = append(free, label)
		}
	}

	return free
}

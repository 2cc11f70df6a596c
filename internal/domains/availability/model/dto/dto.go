package dto

import "fmt"

type RoomRequest struct {
	RoomName string `json:"room_name" validate:"required"`
	RoomType string `json:"room_type" validate:"required"`
	Count    int    `json:"count"     validate:"gte=0"`
}

type CheckAvailabilityRequest struct {
	LodgeID      int64         `json:"lodge_id"      validate:"required,gt=0"`
	CheckIn      string        `json:"check_in"      validate:"required"`
	CheckOut     string        `json:"check_out"     validate:"required"`
	RoomRequests []RoomRequest `json:"room_requests" validate:"omitempty,dive"`
}

type CategoryAvailability struct {
	RoomName  string   `json:"room_name"`
	RoomType  string   `json:"room_type"`
	Required  int      `json:"required,omitempty"`
	Available int      `json:"available"`
	Total     int      `json:"total"`
	Rooms     []string `json:"rooms"`
	AllRooms  []string `json:"all_rooms,omitempty"`
	Message   string   `json:"message,omitempty"`
}

type CheckAvailabilityResponse struct {
	Success      bool                   `json:"success"`
	AllAvailable bool                   `json:"all_available"`
	Details      []CategoryAvailability `json:"details"`
}

type AvailableRoomsResponse struct {
	LodgeID    int64                  `json:"lodge_id"`
	CheckIn    string                 `json:"check_in"`
	CheckOut   string                 `json:"check_out"`
	Categories []CategoryAvailability `json:"categories"`
}

func NotFoundMessage(roomName, roomType string) string {
	return fmt.Sprintf("room category %s (%s) not found", roomName, roomType)
}

func ShortageMessage(required, available int) string {
	return fmt.Sprintf("only %d of %d rooms available", available, required)
}

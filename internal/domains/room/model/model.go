package model

import "lodgehub/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "id"
	FieldLodgeID    = "lodge_id"
	FieldRoomName   = "room_name"
	FieldRoomType   = "room_type"
	FieldRoomNumber = "room_number"
)

// Room is one inventory row. Several rows may share a category.
type Room struct {
	ID         string       `db:"id"`
	LodgeID    int64        `db:"lodge_id"`
	UserID     string       `db:"user_id"`
	RoomName   string       `db:"room_name"`
	RoomType   string       `db:"room_type"`
	RoomNumber model.Labels `db:"room_number"`
	model.Metadata
}

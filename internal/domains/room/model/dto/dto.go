package dto

import (
	"lodgehub/internal/domains/room/model"
	"lodgehub/shared"
	gDto "lodgehub/shared/dto"
	gModel "lodgehub/shared/model"
	"lodgehub/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	LodgeID    int64         `json:"lodge_id"    validate:"required,gt=0"`
	RoomName   string        `json:"room_name"   validate:"required,max=100"`
	RoomType   string        `json:"room_type"   validate:"required,max=100"`
	RoomNumber gModel.Labels `json:"room_number" validate:"required,min=1,dive,required"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	return model.Room{
		ID:         uuid.NewString(),
		LodgeID:    c.LodgeID,
		UserID:     user,
		RoomName:   c.RoomName,
		RoomType:   c.RoomType,
		RoomNumber: c.RoomNumber,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	RoomName   string        `db:"room_name"   json:"room_name"   validate:"omitempty,max=100"`
	RoomType   string        `db:"room_type"   json:"room_type"   validate:"omitempty,max=100"`
	RoomNumber gModel.Labels `db:"room_number" json:"room_number" validate:"omitempty,min=1,dive,required"`
}

func (u *UpdateRoomRequest) IsEmpty() bool {
	return u.RoomName == "" && u.RoomType == "" && len(u.RoomNumber) == 0
}

type RoomResponse struct {
	ID         string   `json:"id"`
	LodgeID    int64    `json:"lodge_id"`
	UserID     string   `json:"user_id"`
	RoomName   string   `json:"room_name"`
	RoomType   string   `json:"room_type"`
	RoomNumber []string `json:"room_number"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.LodgeID = model.LodgeID
	r.UserID = model.UserID
	r.RoomName = model.RoomName
	r.RoomType = model.RoomType
	r.RoomNumber = model.RoomNumber
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

type CategoryResponse struct {
	RoomName    string   `json:"room_name"`
	RoomType    string   `json:"room_type"`
	RoomNumbers []string `json:"room_numbers"`
	TotalRooms  int      `json:"total_rooms"`
}

func FromCatalog(catalog []model.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(catalog))

	for i, category := range catalog {
		res[i] = CategoryResponse{
			RoomName:    category.RoomName,
			RoomType:    category.RoomType,
			RoomNumbers: category.RoomNumbers,
			TotalRooms:  len(category.RoomNumbers),
		}
	}

	return res
}

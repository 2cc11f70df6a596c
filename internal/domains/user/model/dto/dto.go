package dto

import (
	"time"

	"lodgehub/internal/domains/user/model"
	"lodgehub/shared"
	"lodgehub/shared/constant"
	gDto "lodgehub/shared/dto"
	gModel "lodgehub/shared/model"
	"lodgehub/shared/timezone"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	LodgeID      int64   `json:"lodge_id"                validate:"required_unless=Level superadmin,gte=0"`
	Email        string  `json:"email"                   validate:"required,email"`
	Password     string  `json:"password"                validate:"required,min=8"`
	Level        string  `json:"level"                   validate:"omitempty,oneof=superadmin admin staff"`
	FullName     *string `json:"full_name,omitempty"`
	ProfileImage *string `json:"profile_image,omitempty"`
	IsVerified   *bool   `json:"is_verified,omitempty"`
}

// ToModel defaults the level to staff. Superadmins never belong to a lodge.
func (r *CreateUserRequest) ToModel(createdBy, hashedPassword string) model.User {
	level := r.Level
	if level == "" {
		level = constant.RoleStaff
	}

	lodgeID := r.LodgeID
	if level == constant.RoleSuperAdmin {
		lodgeID = 0
	}

	now := timezone.Now()

	return model.User{
		ID:           uuid.NewString(),
		LodgeID:      lodgeID,
		Email:        model.NormalizeEmail(r.Email),
		Password:     hashedPassword,
		Level:        level,
		FullName:     r.FullName,
		ProfileImage: r.ProfileImage,
		IsVerified:   r.IsVerified != nil && *r.IsVerified,
		Active:       true,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  createdBy,
			ModifiedBy: createdBy,
		},
	}
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID           string     `json:"id"`
	LodgeID      int64      `json:"lodge_id"`
	Email        string     `json:"email"`
	Level        string     `json:"level"`
	FullName     *string    `json:"full_name,omitempty"`
	ProfileImage *string    `json:"profile_image,omitempty"`
	IsVerified   bool       `json:"is_verified"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	Active       bool       `json:"active"`
	gDto.Metadata
}

func NewUserResponse(user model.User) UserResponse {
	res := UserResponse{
		ID:           user.ID,
		LodgeID:      user.LodgeID,
		Email:        user.Email,
		Level:        user.Level,
		FullName:     user.FullName,
		ProfileImage: user.ProfileImage,
		IsVerified:   user.IsVerified,
		LastLogin:    user.LastLogin,
		Active:       user.Active,
	}
	res.Metadata.FromModel(user.Metadata)

	return res
}

type UpdateUserRequest struct {
	Level        *string `db:"level"         json:"level,omitempty"         validate:"omitempty,oneof=admin staff"`
	FullName     *string `db:"full_name"     json:"full_name,omitempty"`
	ProfileImage *string `db:"profile_image" json:"profile_image,omitempty"`
	IsVerified   *bool   `db:"is_verified"   json:"is_verified,omitempty"`
	Active       *bool   `db:"active"        json:"active,omitempty"`
}

// Demotes reports whether applying the request would lock its target out of
// user management: deactivation or a drop to staff.
func (r UpdateUserRequest) Demotes() bool {
	return (r.Active != nil && !*r.Active) || (r.Level != nil && *r.Level == constant.RoleStaff)
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func NewGetUsersResponse(users []model.User, totalData, limit int) GetUsersResponse {
	res := GetUsersResponse{
		Users:     make([]UserResponse, len(users)),
		TotalData: totalData,
		TotalPage: shared.CalculateTotalPage(totalData, limit),
	}

	for i, user := range users {
		res.Users[i] = NewUserResponse(user)
	}

	return res
}

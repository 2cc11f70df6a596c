package dto

import (
	"lodgehub/infras/jwt"
	userModel "lodgehub/internal/domains/user/model"
	"lodgehub/shared/constant"
	gModel "lodgehub/shared/model"
	"lodgehub/shared/timezone"

	"github.com/google/uuid"
)

// RegisterRequest onboards the owner account of an existing lodge.
type RegisterRequest struct {
	LodgeID  int64   `json:"lodge_id"            validate:"required,gt=0"`
	Email    string  `json:"email"               validate:"required,email"`
	Password string  `json:"password"            validate:"required,min=8"`
	FullName *string `json:"full_name,omitempty"`
}

func (r *RegisterRequest) ToUserModel(username string, hashedPassword string) userModel.User {
	now := timezone.Now()

	return userModel.User{
		ID:         uuid.NewString(),
		LodgeID:    r.LodgeID,
		Email:      userModel.NormalizeEmail(r.Email),
		Password:   hashedPassword,
		Level:      constant.RoleAdmin,
		FullName:   r.FullName,
		IsVerified: false,
		Active:     true,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Tokens is the pair handed out on login and refresh. ExpiresIn is in seconds.
type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func TokensFrom(pair *jwt.TokenPair) Tokens {
	return Tokens{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}
}

// LoginResponse also tells the client which lodge and role the session is bound to.
type LoginResponse struct {
	Tokens
	LodgeID int64  `json:"lodge_id"`
	Role    string `json:"role"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	Tokens
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8"`
}

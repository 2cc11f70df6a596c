package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lodgehub/infras/jwt"
	"lodgehub/internal/domains/auth/model/dto"
	"lodgehub/shared/constant"
)

func TestTokensFrom(t *testing.T) {
	tokens := dto.TokensFrom(&jwt.TokenPair{AccessToken: "a", RefreshToken: "r", ExpiresIn: 900})

	assert.Equal(t, dto.Tokens{AccessToken: "a", RefreshToken: "r", ExpiresIn: 900}, tokens)
}

func TestRegisterRequest_ToUserModel(t *testing.T) {
	fullName := "Asha Rao"
	req := dto.RegisterRequest{LodgeID: 6, Email: "owner@lodge.in", Password: "plain-secret", FullName: &fullName}

	user := req.ToUserModel("root@lodgehub.in", "hashed")

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, int64(6), user.LodgeID)
	assert.Equal(t, "hashed", user.Password)
	assert.Equal(t, constant.RoleAdmin, user.Level)
	assert.True(t, user.Active)
	assert.False(t, user.IsVerified)
	assert.Equal(t, "root@lodgehub.in", user.CreatedBy)
	assert.Equal(t, user.CreatedAt, user.ModifiedAt)
}

package jwt_test

import (
	"testing"
	"time"

	"lodgehub/config"
	"lodgehub/infras/jwt"
	"lodgehub/infras/otel/mocks"
	"lodgehub/shared/constant"

	jwtGo "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (jwt.JWT, *config.Config) {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Name = "lodgehub"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60

	return jwt.New(cfg, mocks.NewOtel()), cfg
}

var desk = jwt.Subject{UserID: "u-1", Email: "desk@hilltop.in", Role: constant.RoleStaff, LodgeID: 6}

func TestService_GenerateAndValidate(t *testing.T) {
	svc, _ := newService(t)

	pair, err := svc.GenerateTokenPair(t.Context(), desk)
	require.NoError(t, err)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.Equal(t, int64(900), pair.ExpiresIn)

	claims, err := svc.ValidateToken(t.Context(), pair.AccessToken, jwt.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, int64(6), claims.LodgeID)
	assert.Equal(t, constant.RoleStaff, claims.Role)
	assert.Equal(t, claims.ID, claims.TokenID)
	assert.Equal(t, "lodgehub", claims.Issuer)

	_, err = svc.ValidateToken(t.Context(), pair.RefreshToken, jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken, "refresh token is signed with the refresh secret")
}

func TestService_ValidateToken(t *testing.T) {
	svc, cfg := newService(t)

	forge := func(secret string, method jwtGo.SigningMethod, claims jwt.Claims) string {
		token := jwtGo.NewWithClaims(method, claims)

		var key any = []byte(secret)
		if method == jwtGo.SigningMethodNone {
			key = jwtGo.UnsafeAllowNoneSignatureType
		}

		signed, err := token.SignedString(key)
		require.NoError(t, err)

		return signed
	}

	registered := func(issuer string, expires time.Time) jwtGo.RegisteredClaims {
		return jwtGo.RegisteredClaims{Issuer: issuer, ExpiresAt: jwtGo.NewNumericDate(expires)}
	}

	later := time.Now().Add(time.Hour)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{
			name:    "expired",
			token:   forge(cfg.JWT.AccessSecret, jwtGo.SigningMethodHS256, jwt.Claims{Type: jwt.AccessToken, RegisteredClaims: registered("lodgehub", time.Now().Add(-time.Minute))}),
			wantErr: jwt.ErrExpiredToken,
		},
		{
			name:    "wrong type",
			token:   forge(cfg.JWT.AccessSecret, jwtGo.SigningMethodHS256, jwt.Claims{Type: jwt.RefreshToken, RegisteredClaims: registered("lodgehub", later)}),
			wantErr: jwt.ErrInvalidClaim,
		},
		{
			name:    "foreign issuer",
			token:   forge(cfg.JWT.AccessSecret, jwtGo.SigningMethodHS256, jwt.Claims{Type: jwt.AccessToken, RegisteredClaims: registered("elsewhere", later)}),
			wantErr: jwt.ErrInvalidToken,
		},
		{
			name:    "unsigned",
			token:   forge("", jwtGo.SigningMethodNone, jwt.Claims{Type: jwt.AccessToken, RegisteredClaims: registered("lodgehub", later)}),
			wantErr: jwt.ErrInvalidToken,
		},
		{
			name:    "other algorithm",
			token:   forge(cfg.JWT.AccessSecret, jwtGo.SigningMethodHS512, jwt.Claims{Type: jwt.AccessToken, RegisteredClaims: registered("lodgehub", later)}),
			wantErr: jwt.ErrInvalidToken,
		},
		{
			name:    "garbage",
			token:   "not.a.token",
			wantErr: jwt.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateToken(t.Context(), tt.token, jwt.AccessToken)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_RefreshTokens(t *testing.T) {
	svc, _ := newService(t)

	pair, err := svc.GenerateTokenPair(t.Context(), desk)
	require.NoError(t, err)

	rotated, err := svc.RefreshTokens(t.Context(), pair.RefreshToken)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(t.Context(), rotated.AccessToken, jwt.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, desk.UserID, claims.UserID)
	assert.Equal(t, desk.LodgeID, claims.LodgeID)

	_, err = svc.RefreshTokens(t.Context(), pair.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestService_MissingKey(t *testing.T) {
	svc := jwt.New(&config.Config{}, mocks.NewOtel())

	_, err := svc.GenerateTokenPair(t.Context(), desk)
	assert.ErrorIs(t, err, jwt.ErrMissingKey)
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := jwt.ExtractTokenFromHeader("Bearer abc.def")
	require.NoError(t, err)
	assert.Equal(t, "abc.def", token)

	for _, header := range []string{"", "bearer abc", "Bearer ", "Basic abc"} {
		_, err := jwt.ExtractTokenFromHeader(header)
		assert.Error(t, err, header)
	}
}

package jwt

//go:generate go run go.uber.org/mock/mockgen -source=./jwt.go -destination=./mocks/jwt_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"lodgehub/config"
	"lodgehub/infras/otel"
	"lodgehub/shared/constant"
	"lodgehub/shared/timezone"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidClaim = errors.New("invalid token claim")
	ErrMissingKey   = errors.New("signing key is not configured")
)

const bearerPrefix = "Bearer "

type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

// Claims identify a staff member and the lodge they act for. Superadmin
// tokens carry lodge 0.
type Claims struct {
	UserID  string    `json:"user_id"`
	Email   string    `json:"email"`
	Role    string    `json:"role,omitempty"`
	LodgeID int64     `json:"lodge_id"`
	TokenID string    `json:"token_id"`
	Type    TokenType `json:"type"`
	jwt.RegisteredClaims
}

func (c *Claims) subject() Subject {
	return Subject{UserID: c.UserID, Email: c.Email, Role: c.Role, LodgeID: c.LodgeID}
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

// Subject is the staff member a token is issued for.
type Subject struct {
	UserID  string
	Email   string
	Role    string
	LodgeID int64
}

type JWT interface {
	GenerateTokenPair(ctx context.Context, subject Subject) (*TokenPair, error)
	ValidateToken(ctx context.Context, tokenString string, tokenType TokenType) (*Claims, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type Service struct {
	config *config.Config
	otel   otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) JWT {
	return &Service{
		config: cfg,
		otel:   otel,
	}
}

// GenerateTokenPair signs an access and a refresh token issued at the same instant.
func (s *Service) GenerateTokenPair(ctx context.Context, subject Subject) (pair *TokenPair, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".jwt.GenerateTokenPair")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	now := timezone.Now()

	access, err := s.sign(subject, AccessToken, now)
	if err != nil {
		return nil, err
	}

	refresh, err := s.sign(subject, RefreshToken, now)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    strings.TrimSpace(bearerPrefix),
		ExpiresIn:    int64(s.config.JWT.AccessExpireMin) * 60,
	}, nil
}

func (s *Service) ValidateToken(ctx context.Context, tokenString string, tokenType TokenType) (*Claims, error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".jwt.ValidateToken")
	defer scope.End()

	key, _, err := s.key(tokenType)
	if err != nil {
		scope.TraceError(err)

		return nil, err
	}

	claims := &Claims{}

	_, err = jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.config.App.Name),
		jwt.WithTimeFunc(timezone.Now),
	)

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case err != nil:
		return nil, ErrInvalidToken
	case claims.Type != tokenType:
		return nil, ErrInvalidClaim
	}

	scope.SetAttribute("jwt.token_id", claims.TokenID)

	return claims, nil
}

// RefreshTokens rotates the whole pair for the refresh token's subject.
func (s *Service) RefreshTokens(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.ValidateToken(ctx, refreshToken, RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	return s.GenerateTokenPair(ctx, claims.subject())
}

func (s *Service) sign(subject Subject, tokenType TokenType, issuedAt time.Time) (string, error) {
	key, ttl, err := s.key(tokenType)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID:  subject.UserID,
		Email:   subject.Email,
		Role:    subject.Role,
		LodgeID: subject.LodgeID,
		TokenID: id,
		Type:    tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			Issuer:    s.config.App.Name,
			Subject:   subject.UserID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
	})

	signed, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", tokenType, err)
	}

	return signed, nil
}

// key returns the HMAC secret and lifetime for a token type.
func (s *Service) key(tokenType TokenType) ([]byte, time.Duration, error) {
	var (
		secret string
		minute int
	)

	switch tokenType {
	case AccessToken:
		secret, minute = s.config.JWT.AccessSecret, s.config.JWT.AccessExpireMin
	case RefreshToken:
		secret, minute = s.config.JWT.RefreshSecret, s.config.JWT.RefreshExpireMin
	default:
		return nil, 0, fmt.Errorf("unknown token type: %s", tokenType)
	}

	if secret == constant.Empty {
		return nil, 0, fmt.Errorf("%s: %w", tokenType, ErrMissingKey)
	}

	return []byte(secret), time.Duration(minute) * time.Minute, nil
}

// ExtractTokenFromHeader returns the token of a "Bearer <token>" header.
func ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == constant.Empty {
		return constant.Empty, errors.New("authorization header is required")
	}

	token, ok := strings.CutPrefix(authHeader, bearerPrefix)
	if !ok || strings.TrimSpace(token) == constant.Empty {
		return constant.Empty, errors.New("authorization header must be 'Bearer <token>'")
	}

	return token, nil
}

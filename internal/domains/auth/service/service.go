package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Auth=MockAuthService

import (
	"context"
	"fmt"

	"lodgehub/config"
	"lodgehub/infras/jwt"
	"lodgehub/infras/otel"
	"lodgehub/internal/domains/auth/model/dto"
	lodgeModel "lodgehub/internal/domains/lodge/model"
	lodgeRepo "lodgehub/internal/domains/lodge/repository"
	userModel "lodgehub/internal/domains/user/model"
	userRepo "lodgehub/internal/domains/user/repository"
	"lodgehub/shared"
	"lodgehub/shared/constant"
	"lodgehub/shared/failure"
	"lodgehub/shared/password"
	"lodgehub/shared/timezone"

	"github.com/rs/zerolog/log"
)

const msgBadCredentials = "invalid email or password"

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) error
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, userID string) error
}

type serviceImpl struct {
	userRepo   userRepo.User
	lodgeRepo  lodgeRepo.Lodge
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(userRepo userRepo.User, lodgeRepo lodgeRepo.Lodge, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		lodgeRepo:  lodgeRepo,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
	}
}

// Register creates the admin account of an existing lodge.
func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	lodgeExists, err := s.lodgeRepo.Exist(ctx, shared.FilterByID(req.LodgeID, lodgeModel.FieldLodgeID, lodgeModel.TableName))
	if err != nil {
		return fmt.Errorf("failed to check lodge: %w", err)
	}

	if !lodgeExists {
		return failure.NotFound("lodge not found") // nolint:wrapcheck
	}

	taken, err := s.userRepo.EmailTaken(ctx, req.Email)
	if err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}

	if taken {
		return failure.Conflict("email already registered") // nolint:wrapcheck
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	createdBy, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if createdBy == constant.Empty {
		createdBy = constant.ContextGuest
	}

	user := req.ToUserModel(createdBy, hashed)

	if err = s.userRepo.Insert(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	log.Info().Int64("lodge_id", req.LodgeID).Str("user_id", user.ID).Msg("lodge admin registered")

	return nil
}

// Login answers unknown emails and wrong passwords alike. A failed last-login
// write is logged and does not block the session.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if !user.Found() {
		log.Warn().Str("email", userModel.NormalizeEmail(req.Email)).Msg("login attempt with unknown email")

		return res, failure.Unauthorized(msgBadCredentials) // nolint:wrapcheck
	}

	if err = password.Verify(req.Password, user.Password); err != nil {
		log.Warn().Str("user_id", user.ID).Msg("login attempt with wrong password")

		return res, failure.Unauthorized(msgBadCredentials) // nolint:wrapcheck
	}

	if !user.Active {
		return res, failure.Forbidden("user account is deactivated") // nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(ctx, jwt.Subject{
		UserID:  user.ID,
		Email:   user.Email,
		Role:    user.Level,
		LodgeID: user.LodgeID,
	})
	if err != nil {
		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	if err := s.userRepo.TouchLastLogin(ctx, user.ID, timezone.Now()); err != nil {
		log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to record last login")
	}

	scope.SetAttribute("user.level", user.Level)

	return dto.LoginResponse{
		Tokens:  dto.TokensFrom(tokenPair),
		LodgeID: user.LodgeID,
		Role:    user.Level,
	}, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tokenPair, err := s.jwtService.RefreshTokens(ctx, req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("refresh token rejected")

		return res, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	return dto.RefreshTokenResponse{Tokens: dto.TokensFrom(tokenPair)}, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.NewPassword == req.CurrentPassword {
		return failure.BadRequestFromString("new password must differ from the current one") // nolint:wrapcheck
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}

	if !user.Found() {
		return failure.NotFound("user not found") // nolint:wrapcheck
	}

	if err = password.Verify(req.CurrentPassword, user.Password); err != nil {
		return failure.BadRequestFromString("current password is incorrect") // nolint:wrapcheck
	}

	hashed, err := password.Hash(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	changedBy, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.userRepo.SetPassword(ctx, user.ID, hashed, changedBy, timezone.Now()); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	log.Info().Str("user_id", user.ID).Msg("password changed")

	return nil
}

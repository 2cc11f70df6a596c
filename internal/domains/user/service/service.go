package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=User=MockUserService

import (
	"context"
	"fmt"

	"lodgehub/config"
	"lodgehub/infras/otel"
	"lodgehub/internal/domains/user/model"
	"lodgehub/internal/domains/user/model/dto"
	"lodgehub/internal/domains/user/repository"
	"lodgehub/shared"
	"lodgehub/shared/cache"
	"lodgehub/shared/constant"
	gDto "lodgehub/shared/dto"
	"lodgehub/shared/failure"
	"lodgehub/shared/password"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetUser    = "user:get"
	cacheGetAllUser = "user:gets"
	cacheCountUser  = "user:count"
)

type User interface {
	Create(ctx context.Context, req dto.CreateUserRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetUsersResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.UserResponse, error)
	Update(ctx context.Context, req dto.UpdateUserRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.User
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.User, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) User {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateUserRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = scopeToCaller(ctx, &req); err != nil {
		return err
	}

	taken, err := s.repo.EmailTaken(ctx, req.Email)
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

	user := req.ToModel(caller(ctx), hashed)

	if err = s.repo.Insert(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	log.Info().Str("user_id", user.ID).Int64("lodge_id", user.LodgeID).Str("level", user.Level).Msg("user created")

	go s.forget(context.WithoutCancel(ctx), constant.Empty)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetUsersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllUser, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	users, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		return res, fmt.Errorf("failed to get users: %w", err)
	}

	res = dto.NewGetUsersResponse(users, total, req.Limit)

	go s.remember(context.WithoutCancel(ctx), cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountUser, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	if res, err = s.repo.Count(ctx, filter); err != nil {
		return res, fmt.Errorf("failed to count users: %w", err)
	}

	go s.remember(context.WithoutCancel(ctx), cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetUser, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	user, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res = dto.NewUserResponse(user)

	go s.remember(context.WithoutCancel(ctx), cacheKey, res)

	return res, nil
}

// Update refuses to let callers deactivate or demote themselves.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateUserRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req == (dto.UpdateUserRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	if id == caller(ctx) && req.Demotes() {
		return failure.Forbidden("cannot deactivate or demote your own account") // nolint:wrapcheck
	}

	user, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if user.Level == constant.RoleSuperAdmin && req.Level != nil {
		return failure.Forbidden("superadmin level cannot be changed") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, caller(ctx)), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	go s.forget(context.WithoutCancel(ctx), id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if id == caller(ctx) {
		return failure.Forbidden("cannot delete your own account") // nolint:wrapcheck
	}

	if _, err = s.find(ctx, id); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	log.Info().Str("user_id", id).Str("by", caller(ctx)).Msg("user deleted")

	go s.forget(context.WithoutCancel(ctx), id)

	return nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return user, fmt.Errorf("failed to get user: %w", err)
	}

	if !user.Found() {
		return user, failure.NotFound("user not found") // nolint:wrapcheck
	}

	return user, nil
}

func (s *serviceImpl) remember(ctx context.Context, key string, value any) {
	if err := s.cache.Save(ctx, key, value, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Str("cacheKey", key).Msg("failed to cache users")
	}
}

// forget drops the list caches and, when id is set, the cached user.
func (s *serviceImpl) forget(ctx context.Context, id string) {
	if id != constant.Empty {
		if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetUser, id)); err != nil {
			log.Warn().Err(err).Str("user_id", id).Msg("failed to evict user from cache")
		}
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllUser)
	shared.InvalidateCaches(ctx, s.cache, cacheCountUser)
}

func caller(ctx context.Context) string {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	return user
}

// scopeToCaller keeps lodge admins inside their own lodge. Only a superadmin
// may create accounts for another lodge or other superadmins.
func scopeToCaller(ctx context.Context, req *dto.CreateUserRequest) error {
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	if role == constant.RoleSuperAdmin {
		return nil
	}

	if req.Level == constant.RoleSuperAdmin {
		return failure.Forbidden("only a superadmin can create superadmins") // nolint:wrapcheck
	}

	lodgeID, _ := ctx.Value(constant.ContextKeyLodgeID).(int64)
	if req.LodgeID != 0 && req.LodgeID != lodgeID {
		return failure.Forbidden("cannot create users for another lodge") // nolint:wrapcheck
	}

	req.LodgeID = lodgeID

	return nil
}

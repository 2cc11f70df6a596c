package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=DefaultValue=MockDefaultValueService

import (
	"context"
	"fmt"

	"lodgehub/config"
	"lodgehub/infras/otel"
	"lodgehub/infras/postgres"
	"lodgehub/internal/domains/defaultvalue/model"
	"lodgehub/internal/domains/defaultvalue/model/dto"
	"lodgehub/internal/domains/defaultvalue/repository"
	lodgeModel "lodgehub/internal/domains/lodge/model"
	lodgeRepo "lodgehub/internal/domains/lodge/repository"
	"lodgehub/shared"
	"lodgehub/shared/cache"
	"lodgehub/shared/constant"
	gDto "lodgehub/shared/dto"
	"lodgehub/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllDefaultValue = "default_value:gets"
	cacheCountDefaultValue  = "default_value:count"
	cachePriceTable         = "default_value:table"
)

type DefaultValue interface {
	CreateMultiple(ctx context.Context, req dto.CreateDefaultValuesRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetDefaultValuesResponse, error)
	Get(ctx context.Context, id string) (dto.DefaultValueResponse, error)
	Update(ctx context.Context, req dto.UpdateDefaultValueRequest, id string) error
	Delete(ctx context.Context, id string) error
	Lookup(ctx context.Context, lodgeID int64, reason, typ string) (float64, bool, error)
}

type serviceImpl struct {
	repo       repository.DefaultValue
	lodgeRepo  lodgeRepo.Lodge
	transactor postgres.Transactor
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(
	repo repository.DefaultValue,
	lodgeRepo lodgeRepo.Lodge,
	transactor postgres.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) DefaultValue {
	return &serviceImpl{
		repo:       repo,
		lodgeRepo:  lodgeRepo,
		transactor: transactor,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

func (s *serviceImpl) CreateMultiple(ctx context.Context, req dto.CreateDefaultValuesRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateDefaultValues")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	lodgeExists, err := s.lodgeRepo.Exist(ctx, shared.FilterByID(req.LodgeID, lodgeModel.FieldLodgeID, lodgeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if lodge exists")

		return fmt.Errorf("failed to check if lodge exists: %w", err)
	}

	if !lodgeExists {
		return failure.NotFound("lodge not found") // nolint:wrapcheck
	}

	values := req.ToModels(user)

	err = s.transactor.WithTx(ctx, func(tx *sqlx.Tx) error {
		for _, value := range values {
			if err := s.repo.UpsertTx(ctx, tx, value); err != nil {
				return err //nolint:wrapcheck
			}
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to save default values")

		return fmt.Errorf("failed to save default values: %w", err)
	}

	go func() {
		s.invalidate(context.WithoutCancel(ctx), req.LodgeID)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetDefaultValuesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllDefaultValues")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllDefaultValue, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for default values")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count default values")

		return res, fmt.Errorf("failed to count default values: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get default values")

		return res, fmt.Errorf("failed to get default values: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save default values to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.DefaultValueResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetDefaultValue")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	value, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get default value")

		return res, fmt.Errorf("failed to get default value: %w", err)
	}

	if value.ID == constant.Empty {
		return res, failure.NotFound("default value not found") // nolint:wrapcheck
	}

	res.FromModel(value)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateDefaultValueRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateDefaultValue")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	value, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get default value")

		return fmt.Errorf("failed to get default value: %w", err)
	}

	if value.ID == constant.Empty {
		return failure.NotFound("default value not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update default value")

		return fmt.Errorf("failed to update default value: %w", err)
	}

	go func() {
		s.invalidate(context.WithoutCancel(ctx), value.LodgeID)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteDefaultValue")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	value, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get default value")

		return fmt.Errorf("failed to get default value: %w", err)
	}

	if value.ID == constant.Empty {
		return failure.NotFound("default value not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete default value")

		return fmt.Errorf("failed to delete default value: %w", err)
	}

	go func() {
		s.invalidate(context.WithoutCancel(ctx), value.LodgeID)
	}()

	return nil
}

// Lookup reads one cell of the lodge price table. The whole table is cached per lodge.
func (s *serviceImpl) Lookup(ctx context.Context, lodgeID int64, reason, typ string) (amount float64, found bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".LookupDefaultValue")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	table, err := s.priceTable(ctx, lodgeID)
	if err != nil {
		return 0, false, err
	}

	amount, found = table.Lookup(reason, typ)

	return amount, found, nil
}

func (s *serviceImpl) priceTable(ctx context.Context, lodgeID int64) (model.PriceTable, error) {
	cacheKey := shared.BuildCacheKey(cachePriceTable, lodgeID)

	var table model.PriceTable
	if err := s.cache.Get(ctx, cacheKey, &table); err == nil {
		return table, nil
	}

	values, err := s.repo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByLodge(lodgeID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("lodge_id", lodgeID).Msg("failed to load price table")

		return nil, fmt.Errorf("failed to load price table: %w", err)
	}

	table = model.NewPriceTable(values)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, table, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save price table to cache")
		}
	}()

	return table, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, lodgeID int64) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cachePriceTable, lodgeID)); err != nil {
		log.Error().Err(err).Msg("failed to delete price table from cache")
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllDefaultValue)
	shared.InvalidateCaches(ctx, s.cache, cacheCountDefaultValue)
}

package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=PeakHour=MockPeakHourService

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lodgehub/config"
	"lodgehub/infras/otel"
	lodgeModel "lodgehub/internal/domains/lodge/model"
	lodgeRepo "lodgehub/internal/domains/lodge/repository"
	"lodgehub/internal/domains/peakhour/model"
	"lodgehub/internal/domains/peakhour/model/dto"
	"lodgehub/internal/domains/peakhour/repository"
	"lodgehub/shared"
	"lodgehub/shared/cache"
	"lodgehub/shared/constant"
	gDto "lodgehub/shared/dto"
	"lodgehub/shared/failure"
	"lodgehub/shared/timezone"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetPeakHour    = "peak_hour:get"
	cacheGetAllPeakHour = "peak_hour:gets"
	cacheCountPeakHour  = "peak_hour:count"
)

type PeakHour interface {
	Create(ctx context.Context, req dto.CreatePeakHourRequest) (dto.PeakHourResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPeakHoursResponse, error)
	Get(ctx context.Context, id string) (dto.PeakHourResponse, error)
	Delete(ctx context.Context, id string) error
	HasPeakBetween(ctx context.Context, lodgeID int64, from, to time.Time) (bool, error)
}

type serviceImpl struct {
	repo      repository.PeakHour
	lodgeRepo lodgeRepo.Lodge
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.PeakHour, lodgeRepo lodgeRepo.Lodge, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) PeakHour {
	return &serviceImpl{
		repo:      repo,
		lodgeRepo: lodgeRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePeakHourRequest) (res dto.PeakHourResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreatePeakHour")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	peak, err := req.ToModel(user)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	lodgeExists, err := s.lodgeRepo.Exist(ctx, shared.FilterByID(req.LodgeID, lodgeModel.FieldLodgeID, lodgeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if lodge exists")

		return res, fmt.Errorf("failed to check if lodge exists: %w", err)
	}

	if !lodgeExists {
		return res, failure.NotFound("lodge not found") // nolint:wrapcheck
	}

	duplicate, err := s.repo.Exist(ctx, filterByDate(req.LodgeID, req.Date))
	if err != nil {
		log.Error().Err(err).Msg("failed to check peak hour date")

		return res, fmt.Errorf("failed to check peak hour date: %w", err)
	}

	if duplicate {
		return res, failure.Conflict("peak hour already exists for date " + req.Date) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, peak); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == constant.PqErrorCodeUniqueViolation {
			return res, failure.Conflict("peak hour already exists for date " + req.Date) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create peak hour")

		return res, fmt.Errorf("failed to create peak hour: %w", err)
	}

	res.FromModel(peak)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllPeakHour)
		shared.InvalidateCaches(c, s.cache, cacheCountPeakHour)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPeakHoursResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllPeakHour")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllPeakHour, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for peak hours")

		return res, nil
	}

	total, err := s.count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get peak hours")

		return res, fmt.Errorf("failed to get peak hours: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save peak hours to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountPeakHour, req, filter)

	var total int
	if err := s.cache.Get(ctx, cacheKey, &total); err == nil {
		return total, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count peak hours")

		return 0, fmt.Errorf("failed to count peak hours: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save peak hour count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PeakHourResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPeakHour")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetPeakHour, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	peak, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get peak hour")

		return res, fmt.Errorf("failed to get peak hour: %w", err)
	}

	if peak.ID == constant.Empty {
		return res, failure.NotFound("peak hour not found") // nolint:wrapcheck
	}

	res.FromModel(peak)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save peak hour to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeletePeakHour")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exists, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check peak hour")

		return fmt.Errorf("failed to check peak hour: %w", err)
	}

	if !exists {
		return failure.NotFound("peak hour not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete peak hour")

		return fmt.Errorf("failed to delete peak hour: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetPeakHour, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete peak hour from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllPeakHour)
		shared.InvalidateCaches(c, s.cache, cacheCountPeakHour)
	}()

	return nil
}

// HasPeakBetween reports whether any peak date falls on a calendar day in [from, to].
// Not cached: pricing must see a newly added peak date immediately.
func (s *serviceImpl) HasPeakBetween(ctx context.Context, lodgeID int64, from, to time.Time) (found bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".HasPeakBetween")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldLodgeID, Value: lodgeID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{
				ArgName:  "date_from",
				Field:    model.FieldDate,
				Value:    timezone.Format(from, constant.DayFormat),
				Operator: gDto.FilterOperatorGreaterEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "date_to",
				Field:    model.FieldDate,
				Value:    timezone.Format(to, constant.DayFormat),
				Operator: gDto.FilterOperatorLessEq,
				Table:    model.TableName,
			},
		},
	}

	found, err = s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to look up peak dates")

		return false, fmt.Errorf("failed to look up peak dates: %w", err)
	}

	return found, nil
}

func filterByDate(lodgeID int64, date string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldLodgeID, Value: lodgeID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldDate, Value: date, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}
}

package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Charge=MockChargeService

import (
	"context"
	"fmt"

	"lodgehub/config"
	"lodgehub/infras/otel"
	bookingModel "lodgehub/internal/domains/booking/model"
	bookingRepo "lodgehub/internal/domains/booking/repository"
	"lodgehub/internal/domains/charge/model"
	"lodgehub/internal/domains/charge/model/dto"
	"lodgehub/internal/domains/charge/repository"
	"lodgehub/shared"
	"lodgehub/shared/cache"
	"lodgehub/shared/constant"
	gDto "lodgehub/shared/dto"
	"lodgehub/shared/failure"

	"github.com/rs/zerolog/log"
)

type Charge interface {
	Create(ctx context.Context, req dto.CreateChargeRequest) (dto.ChargeResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateChargeRequest) (dto.ChargeResponse, error)
	GetAll(ctx context.Context, lodgeID int64, params gDto.QueryParams) (dto.GetChargesResponse, error)
	GroupedByBooking(ctx context.Context, lodgeID int64) ([]dto.BookingCharges, error)
	Get(ctx context.Context, id string) (dto.ChargeResponse, error)
	Delete(ctx context.Context, id string) error
	CheckBookingIsBooked(ctx context.Context, lodgeID, bookingID int64) (dto.BookingStatusResponse, error)
}

type serviceImpl struct {
	repo        repository.Charge
	bookingRepo bookingRepo.Booking
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(repo repository.Charge, bookingRepo bookingRepo.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Charge {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// Create records a charge against an existing booking. New charges start INCOMPLETE.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateChargeRequest) (res dto.ChargeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateCharge")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exists, err := s.bookingRepo.Exist(ctx, shared.FilterByBooking(req.BookingID, req.LodgeID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return res, fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exists {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	charge := req.ToModel(user)

	if err = s.repo.Insert(ctx, charge); err != nil {
		log.Error().Err(err).Msg("failed to create charge")

		return res, fmt.Errorf("failed to create charge: %w", err)
	}

	go s.invalidate(context.WithoutCancel(ctx), req.LodgeID, constant.Empty)

	res.FromModel(charge)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateChargeRequest) (res dto.ChargeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateCharge")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get charge")

		return res, fmt.Errorf("failed to get charge: %w", err)
	}

	if current.ID == constant.Empty {
		return res, failure.NotFound("charge not found") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Update(ctx, req.Fields(user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update charge")

		return res, fmt.Errorf("failed to update charge: %w", err)
	}

	updated, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get charge")

		return res, fmt.Errorf("failed to get charge: %w", err)
	}

	go s.invalidate(context.WithoutCancel(ctx), current.LodgeID, id)

	res.FromModel(updated)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, lodgeID int64, params gDto.QueryParams) (res dto.GetChargesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllCharge")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByLodge(lodgeID, model.TableName)

	if params.SortBy == constant.Empty {
		params.SortBy = constant.FieldCreatedAt
		params.SortDir = gDto.SortDirDesc
	}

	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(model.CacheGetCharges, lodgeID), params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for charges")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count charges")

		return res, fmt.Errorf("failed to count charges: %w", err)
	}

	charges, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get charges")

		return res, fmt.Errorf("failed to get charges: %w", err)
	}

	res.FromModels(charges, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save charges to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GroupedByBooking(ctx context.Context, lodgeID int64) (res []dto.BookingCharges, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GroupedByBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := gDto.QueryParams{SortBy: model.FieldBookingID, SortDir: gDto.SortDirAsc}

	charges, err := s.repo.GetAll(ctx, params, shared.FilterByLodge(lodgeID, model.TableName),
		model.FieldBookingID, model.FieldReason, model.FieldAmount)
	if err != nil {
		log.Error().Err(err).Msg("failed to get charges")

		return nil, fmt.Errorf("failed to get charges: %w", err)
	}

	return dto.GroupByBooking(charges), nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ChargeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCharge")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(model.CacheGetCharge, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	charge, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get charge")

		return res, fmt.Errorf("failed to get charge: %w", err)
	}

	if charge.ID == constant.Empty {
		return res, failure.NotFound("charge not found") // nolint:wrapcheck
	}

	res.FromModel(charge)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save charge to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteCharge")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	charge, err := s.repo.Get(ctx, filter, model.FieldID, model.FieldLodgeID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get charge")

		return fmt.Errorf("failed to get charge: %w", err)
	}

	if charge.ID == constant.Empty {
		return failure.NotFound("charge not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete charge")

		return fmt.Errorf("failed to delete charge: %w", err)
	}

	go s.invalidate(context.WithoutCancel(ctx), charge.LodgeID, id)

	return nil
}

// CheckBookingIsBooked tells the front desk whether charges can still be added to a booking.
func (s *serviceImpl) CheckBookingIsBooked(ctx context.Context, lodgeID, bookingID int64) (res dto.BookingStatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckBookingIsBooked")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.bookingRepo.Get(ctx, shared.FilterByBooking(bookingID, lodgeID, bookingModel.TableName),
		bookingModel.FieldBookingID, bookingModel.FieldStatus)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	res = dto.BookingStatusResponse{BookingID: bookingID, LodgeID: lodgeID}

	switch {
	case booking.BookingID == 0:
		res.Message = "Booking not found"
	case booking.Status == bookingModel.StatusBooked:
		res.Exists, res.IsBooked, res.Status = true, true, booking.Status
		res.Message = "Booking is BOOKED"
	default:
		res.Exists, res.Status = true, booking.Status
		res.Message = "Booking is NOT BOOKED"
	}

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, lodgeID int64, id string) {
	if id != constant.Empty {
		if err := s.cache.Delete(ctx, shared.BuildCacheKey(model.CacheGetCharge, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete charge from cache")
		}
	}

	shared.InvalidateCaches(ctx, s.cache, shared.BuildCacheKey(model.CacheGetCharges, lodgeID))
}

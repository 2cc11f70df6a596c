package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Cancel=MockCancelService

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"lodgehub/config"
	"lodgehub/infras/otel"
	"lodgehub/infras/postgres"
	bookingModel "lodgehub/internal/domains/booking/model"
	bookingRepo "lodgehub/internal/domains/booking/repository"
	bookingService "lodgehub/internal/domains/booking/service"
	"lodgehub/internal/domains/cancel/model"
	"lodgehub/internal/domains/cancel/model/dto"
	"lodgehub/internal/domains/cancel/repository"
	defaultValueModel "lodgehub/internal/domains/defaultvalue/model"
	defaultValueService "lodgehub/internal/domains/defaultvalue/service"
	ledgerModel "lodgehub/internal/domains/ledger/model"
	ledgerDto "lodgehub/internal/domains/ledger/model/dto"
	ledgerService "lodgehub/internal/domains/ledger/service"
	peakHourService "lodgehub/internal/domains/peakhour/service"
	"lodgehub/shared"
	"lodgehub/shared/cache"
	"lodgehub/shared/constant"
	gDto "lodgehub/shared/dto"
	"lodgehub/shared/failure"
	"lodgehub/shared/money"
	"lodgehub/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

var cancellableStatuses = []string{bookingModel.StatusPreBooked, bookingModel.StatusBooked}

type Cancel interface {
	CreateCancel(ctx context.Context, req dto.CreateCancelRequest) (dto.CancelResponse, error)
	PartialCancel(ctx context.Context, req dto.PartialCancelRequest) (dto.PartialCancelResponse, error)
	CalculateCancelCharge(ctx context.Context, req dto.CalculateCancelChargeRequest) (dto.CancelChargeResponse, error)
	GetCancelsByLodge(ctx context.Context, lodgeID int64, params gDto.QueryParams) (dto.GetCancelsResponse, error)
	GetPartialCancelsByLodge(ctx context.Context, lodgeID int64, params gDto.QueryParams) (dto.GetPartialCancelsResponse, error)
}

type serviceImpl struct {
	repo         repository.Cancel
	partialRepo  repository.PartialCancel
	bookingRepo  bookingRepo.Booking
	peakHour     peakHourService.PeakHour
	defaultValue defaultValueService.DefaultValue
	ledger       ledgerService.Ledger
	transactor   postgres.Transactor
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Cancel,
	partialRepo repository.PartialCancel,
	bookingRepo bookingRepo.Booking,
	peakHour peakHourService.PeakHour,
	defaultValue defaultValueService.DefaultValue,
	ledger ledgerService.Ledger,
	transactor postgres.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Cancel {
	return &serviceImpl{
		repo:         repo,
		partialRepo:  partialRepo,
		bookingRepo:  bookingRepo,
		peakHour:     peakHour,
		defaultValue: defaultValue,
		ledger:       ledger,
		transactor:   transactor,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// CreateCancel cancels a whole booking. The allocation is kept for the record;
// the CANCEL status alone releases the rooms.
func (s *serviceImpl) CreateCancel(ctx context.Context, req dto.CreateCancelRequest) (res dto.CancelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateCancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = req.Check(); err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByBooking(req.BookingID, req.LodgeID, bookingModel.TableName)

	var cancel model.Cancel

	err = s.transactor.WithTx(ctx, func(tx *sqlx.Tx) error {
		booking, err := s.bookingRepo.GetForUpdateTx(ctx, tx, filter, bookingModel.FieldBookingID, bookingModel.FieldLodgeID, bookingModel.FieldStatus)
		if err != nil {
			return fmt.Errorf("failed to get booking: %w", err)
		}

		if booking.BookingID == 0 {
			return failure.NotFound("booking not found") // nolint:wrapcheck
		}

		if !slices.Contains(cancellableStatuses, booking.Status) {
			return failure.BadRequestFromString(fmt.Sprintf("booking with status %s cannot be cancelled", booking.Status)) // nolint:wrapcheck
		}

		cancel = req.ToModel(user)

		if err := s.repo.InsertTx(ctx, tx, cancel); err != nil {
			return fmt.Errorf("failed to insert cancel: %w", err)
		}

		fields := map[string]any{
			bookingModel.FieldStatus: bookingModel.StatusCancel,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		if err := s.bookingRepo.UpdateTx(ctx, tx, fields, filter); err != nil {
			return fmt.Errorf("failed to update booking status: %w", err)
		}

		return s.postRefund(ctx, tx, req.LodgeID, req.BookingID, user, req.Refund, ledgerModel.TypeCancel)
	})
	if err != nil {
		log.Error().Err(err).Int64("lodge_id", req.LodgeID).Int64("booking_id", req.BookingID).Msg("failed to cancel booking")

		return res, err
	}

	go s.invalidate(context.WithoutCancel(ctx), req.LodgeID, req.BookingID, model.CacheGetCancels)

	res.FromModel(cancel)

	return res, nil
}

// PartialCancel releases some labels of a BOOKED booking. The booking keeps its
// status and the release is appended to its notes.
func (s *serviceImpl) PartialCancel(ctx context.Context, req dto.PartialCancelRequest) (res dto.PartialCancelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PartialCancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = req.Check(); err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByBooking(req.BookingID, req.LodgeID, bookingModel.TableName)

	var (
		partial model.PartialCancel
		plan    model.Plan
	)

	err = s.transactor.WithTx(ctx, func(tx *sqlx.Tx) error {
		booking, err := s.bookingRepo.GetForUpdateTx(ctx, tx, filter)
		if err != nil {
			return fmt.Errorf("failed to get booking: %w", err)
		}

		if booking.BookingID == 0 {
			return failure.NotFound("booking not found") // nolint:wrapcheck
		}

		if booking.Status != bookingModel.StatusBooked {
			return failure.BadRequestFromString(fmt.Sprintf("booking with status %s cannot be partially cancelled", booking.Status)) // nolint:wrapcheck
		}

		plan, err = model.PlanRelease(booking.BookedRoom, booking.RoomAmount, req.RoomNumbers)
		if err != nil {
			return failure.BadRequest(err) // nolint:wrapcheck
		}

		notes := booking.Notes.Append(model.NotesKeyPartialCancel, req.NoteEntry(user, plan))

		fields := map[string]any{
			bookingModel.FieldBookedRoom: plan.Remaining,
			bookingModel.FieldNotes:      notes,
			constant.FieldModifiedAt:     timezone.Now(),
			constant.FieldModifiedBy:     user,
		}

		if err := s.bookingRepo.UpdateTx(ctx, tx, fields, filter); err != nil {
			return fmt.Errorf("failed to update booking allocation: %w", err)
		}

		partial = req.ToModel(user, plan)

		if err := s.partialRepo.InsertTx(ctx, tx, partial); err != nil {
			return fmt.Errorf("failed to insert partial cancel: %w", err)
		}

		return s.postRefund(ctx, tx, req.LodgeID, req.BookingID, user, req.Refund, ledgerModel.TypePartialCancel)
	})
	if err != nil {
		log.Error().Err(err).Int64("lodge_id", req.LodgeID).Int64("booking_id", req.BookingID).Msg("failed to partially cancel booking")

		return res, err
	}

	go s.invalidate(context.WithoutCancel(ctx), req.LodgeID, req.BookingID, model.CacheGetPartialCancels)

	res.FromModel(partial)
	res.BookedRoom = plan.Remaining

	return res, nil
}

// CalculateCancelCharge is advisory: charge = base * pct / 100 where pct is the
// lodge's CANCEL default for a peak or normal check-in date, 0 when unset.
func (s *serviceImpl) CalculateCancelCharge(ctx context.Context, req dto.CalculateCancelChargeRequest) (res dto.CancelChargeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CalculateCancelCharge")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	checkIn, err := s.checkInDate(ctx, req)
	if err != nil {
		return res, err
	}

	isPeak, err := s.peakHour.HasPeakBetween(ctx, req.LodgeID, checkIn, checkIn)
	if err != nil {
		log.Error().Err(err).Msg("failed to check peak hours")

		return res, fmt.Errorf("failed to check peak hours: %w", err)
	}

	typ := defaultValueModel.TypeCancelDefault
	if isPeak {
		typ = defaultValueModel.TypeCancelPeak
	}

	percentage, _, err := s.defaultValue.Lookup(ctx, req.LodgeID, defaultValueModel.ReasonCancel, typ)
	if err != nil {
		log.Error().Err(err).Msg("failed to look up cancel percentage")

		return res, fmt.Errorf("failed to look up cancel percentage: %w", err)
	}

	base := money.FromFloat(req.BaseAmount)
	charge := money.Percent(base, money.FromFloat(percentage))

	res = dto.CancelChargeResponse{
		BookingID:    req.BookingID,
		LodgeID:      req.LodgeID,
		CheckInDate:  timezone.Format(checkIn, constant.DateFormat),
		IsPeak:       isPeak,
		Percentage:   percentage,
		BaseAmount:   money.ToFloat(base),
		CancelCharge: money.ToFloat(charge),
		Refund:       money.ToFloat(base.Sub(charge)),
	}

	return res, nil
}

func (s *serviceImpl) GetCancelsByLodge(ctx context.Context, lodgeID int64, params gDto.QueryParams) (res dto.GetCancelsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCancelsByLodge")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByLodge(lodgeID, model.TableName)
	params = sortNewestFirst(params)
	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(model.CacheGetCancels, lodgeID), params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for cancels")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count cancels")

		return res, fmt.Errorf("failed to count cancels: %w", err)
	}

	cancels, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get cancels")

		return res, fmt.Errorf("failed to get cancels: %w", err)
	}

	res.FromModels(cancels, total, params.Limit)

	go s.save(context.WithoutCancel(ctx), cacheKey, res)

	return res, nil
}

func (s *serviceImpl) GetPartialCancelsByLodge(ctx context.Context, lodgeID int64, params gDto.QueryParams) (res dto.GetPartialCancelsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPartialCancelsByLodge")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByLodge(lodgeID, model.PartialTableName)
	params = sortNewestFirst(params)
	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(model.CacheGetPartialCancels, lodgeID), params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for partial cancels")

		return res, nil
	}

	total, err := s.partialRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count partial cancels")

		return res, fmt.Errorf("failed to count partial cancels: %w", err)
	}

	partials, err := s.partialRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get partial cancels")

		return res, fmt.Errorf("failed to get partial cancels: %w", err)
	}

	res.FromModels(partials, total, params.Limit)

	go s.save(context.WithoutCancel(ctx), cacheKey, res)

	return res, nil
}

// checkInDate uses the date from the request, or the booking's check-in when only a booking is given.
func (s *serviceImpl) checkInDate(ctx context.Context, req dto.CalculateCancelChargeRequest) (time.Time, error) {
	if req.CheckInDate != constant.Empty {
		checkIn, err := timezone.ParseDateTime(req.CheckInDate)
		if err != nil {
			return checkIn, failure.BadRequest(fmt.Errorf("invalid check_in_date: %w", err)) // nolint:wrapcheck
		}

		return checkIn, nil
	}

	if req.BookingID == 0 {
		return time.Time{}, failure.BadRequest(errors.New("check_in_date or booking_id is required")) // nolint:wrapcheck
	}

	booking, err := s.bookingRepo.Get(ctx, shared.FilterByBooking(req.BookingID, req.LodgeID, bookingModel.TableName),
		bookingModel.FieldBookingID, bookingModel.FieldCheckIn)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return time.Time{}, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.BookingID == 0 {
		return time.Time{}, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking.CheckIn, nil
}

func (s *serviceImpl) postRefund(ctx context.Context, tx *sqlx.Tx, lodgeID, bookingID int64, user string, refund float64, entryType string) error {
	if refund <= 0 {
		return nil
	}

	posting := ledgerDto.Posting{
		LodgeID:     lodgeID,
		BookingID:   bookingID,
		UserID:      user,
		Type:        entryType,
		Amount:      refund,
		Description: fmt.Sprintf("Refund for booking #%d", bookingID),
	}

	if err := s.ledger.PostExpenseTx(ctx, tx, posting); err != nil {
		return fmt.Errorf("failed to post refund: %w", err)
	}

	return nil
}

func (s *serviceImpl) save(ctx context.Context, cacheKey string, value any) {
	if err := s.cache.Save(ctx, cacheKey, value, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Str("cacheKey", cacheKey).Msg("failed to save cancels to cache")
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, lodgeID, bookingID int64, listPrefix string) {
	bookingService.InvalidateCaches(ctx, s.cache, lodgeID, bookingID)
	shared.InvalidateCaches(ctx, s.cache, shared.BuildCacheKey(listPrefix, lodgeID))
}

func sortNewestFirst(params gDto.QueryParams) gDto.QueryParams {
	if params.SortBy == constant.Empty {
		params.SortBy = constant.FieldCreatedAt
		params.SortDir = gDto.SortDirDesc
	}

	return params
}

package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"lodgehub/config"
	"lodgehub/infras/otel"
	billingModel "lodgehub/internal/domains/billing/model"
	billingRepo "lodgehub/internal/domains/billing/repository"
	bookingModel "lodgehub/internal/domains/booking/model"
	bookingRepo "lodgehub/internal/domains/booking/repository"
	cancelModel "lodgehub/internal/domains/cancel/model"
	cancelRepo "lodgehub/internal/domains/cancel/repository"
	"lodgehub/internal/domains/history/model/dto"
	"lodgehub/shared"
	"lodgehub/shared/cache"
	"lodgehub/shared/constant"
	gDto "lodgehub/shared/dto"

	"github.com/rs/zerolog/log"
)

// Views share the booking list cache prefix so every booking mutation clears them.
const (
	viewBooked          = "history:booked"
	viewCancelled       = "history:cancelled"
	viewPartialCanceled = "history:partial-cancelled"
	viewPreBooked       = "history:prebooked"
)

// include selects the records attached to each booking of a view.
type include struct {
	billings bool
	cancels  bool
}

// History lists a lodge's bookings by lifecycle stage, oldest first.
type History interface {
	Booked(ctx context.Context, lodgeID int64, params gDto.QueryParams) (dto.GetHistoryResponse, error)
	Cancelled(ctx context.Context, lodgeID int64, params gDto.QueryParams) (dto.GetHistoryResponse, error)
	PartialCancelled(ctx context.Context, lodgeID int64, params gDto.QueryParams) (dto.GetHistoryResponse, error)
	PreBooked(ctx context.Context, lodgeID int64, params gDto.QueryParams) (dto.GetHistoryResponse, error)
}

type serviceImpl struct {
	bookingRepo bookingRepo.Booking
	billingRepo billingRepo.Billing
	cancelRepo  cancelRepo.Cancel
	partialRepo cancelRepo.PartialCancel
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	bookingRepo bookingRepo.Booking,
	billingRepo billingRepo.Billing,
	cancelRepo cancelRepo.Cancel,
	partialRepo cancelRepo.PartialCancel,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) History {
	return &serviceImpl{
		bookingRepo: bookingRepo,
		billingRepo: billingRepo,
		cancelRepo:  cancelRepo,
		partialRepo: partialRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// Booked lists BOOKED and BILLED bookings with their billings and partial cancellations.
func (s *serviceImpl) Booked(ctx context.Context, lodgeID int64, params gDto.QueryParams) (res dto.GetHistoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".HistoryBooked")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.bookingView(ctx, viewBooked, lodgeID, params, include{billings: true}, bookingModel.StatusBooked, bookingModel.StatusBilled)
}

// Cancelled lists CANCEL bookings with their cancellation record.
func (s *serviceImpl) Cancelled(ctx context.Context, lodgeID int64, params gDto.QueryParams) (res dto.GetHistoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".HistoryCancelled")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.bookingView(ctx, viewCancelled, lodgeID, params, include{cancels: true}, bookingModel.StatusCancel)
}

func (s *serviceImpl) PreBooked(ctx context.Context, lodgeID int64, params gDto.QueryParams) (res dto.GetHistoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".HistoryPreBooked")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.bookingView(ctx, viewPreBooked, lodgeID, params, include{}, bookingModel.StatusPreBooked)
}

// PartialCancelled lists partial cancellation records with the booking they trimmed.
func (s *serviceImpl) PartialCancelled(ctx context.Context, lodgeID int64, params gDto.QueryParams) (res dto.GetHistoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".HistoryPartialCancelled")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params = oldestFirst(params)
	filter := shared.FilterByLodge(lodgeID, cancelModel.PartialTableName)
	cacheKey := s.cacheKey(viewPartialCanceled, lodgeID, params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
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

	ids := make([]int64, 0, len(partials))
	for _, partial := range partials {
		ids = append(ids, partial.BookingID)
	}

	bookings := map[int64]bookingModel.Booking{}

	if len(ids) > 0 {
		rows, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, filterByBookings(lodgeID, ids, bookingModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get bookings")

			return res, fmt.Errorf("failed to get bookings: %w", err)
		}

		for _, booking := range rows {
			bookings[booking.BookingID] = booking
		}
	}

	res.FromPartialCancels(partials, bookings, total, params.Limit)

	go s.save(context.WithoutCancel(ctx), cacheKey, res)

	return res, nil
}

func (s *serviceImpl) bookingView(
	ctx context.Context,
	view string,
	lodgeID int64,
	params gDto.QueryParams,
	inc include,
	statuses ...string,
) (res dto.GetHistoryResponse, err error) {
	params = oldestFirst(params)
	filter := bookingRepo.FilterByStatus(lodgeID, statuses...)
	cacheKey := s.cacheKey(view, lodgeID, params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	total, err := s.bookingRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	bookings, err := s.bookingRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	related, err := s.related(ctx, lodgeID, bookings, inc)
	if err != nil {
		return res, err
	}

	res.FromBookings(bookings, related, total, params.Limit)

	go s.save(context.WithoutCancel(ctx), cacheKey, res)

	return res, nil
}

func (s *serviceImpl) related(ctx context.Context, lodgeID int64, bookings []bookingModel.Booking, inc include) (dto.Related, error) {
	related := dto.NewRelated()

	if len(bookings) == 0 {
		return related, nil
	}

	ids := make([]int64, len(bookings))
	for i, booking := range bookings {
		ids[i] = booking.BookingID
	}

	if inc.billings {
		billings, err := s.billingRepo.GetAll(ctx, gDto.QueryParams{}, filterByBookings(lodgeID, ids, billingModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get billings")

			return related, fmt.Errorf("failed to get billings: %w", err)
		}

		for _, billing := range billings {
			related.Billings[billing.BookingID] = append(related.Billings[billing.BookingID], billing)
		}

		partials, err := s.partialRepo.GetAll(ctx, gDto.QueryParams{}, filterByBookings(lodgeID, ids, cancelModel.PartialTableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get partial cancels")

			return related, fmt.Errorf("failed to get partial cancels: %w", err)
		}

		for _, partial := range partials {
			related.PartialCancels[partial.BookingID] = append(related.PartialCancels[partial.BookingID], partial)
		}
	}

	if inc.cancels {
		cancels, err := s.cancelRepo.GetAll(ctx, gDto.QueryParams{}, filterByBookings(lodgeID, ids, cancelModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get cancels")

			return related, fmt.Errorf("failed to get cancels: %w", err)
		}

		for _, cancel := range cancels {
			related.Cancels[cancel.BookingID] = cancel
		}
	}

	return related, nil
}

func (s *serviceImpl) cacheKey(view string, lodgeID int64, params gDto.QueryParams, filter gDto.FilterGroup) string {
	return shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(bookingModel.CacheGetBookings, lodgeID, view), params, filter)
}

func (s *serviceImpl) save(ctx context.Context, cacheKey string, value any) {
	if err := s.cache.Save(ctx, cacheKey, value, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Str("cacheKey", cacheKey).Msg("failed to save history to cache")
	}
}

func oldestFirst(params gDto.QueryParams) gDto.QueryParams {
	if params.SortBy == constant.Empty {
		params.SortBy = constant.FieldCreatedAt
		params.SortDir = gDto.SortDirAsc
	}

	return params
}

func filterByBookings(lodgeID int64, bookingIDs []int64, table string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: constant.FieldLodgeID, Value: lodgeID, Operator: gDto.FilterOperatorEq, Table: table},
			gDto.Filter{Field: constant.FieldBookingID, Value: bookingIDs, Operator: gDto.FilterOperatorIn, Table: table},
		},
	}
}

package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"lodgehub/config"
	"lodgehub/infras/otel"
	bookingModel "lodgehub/internal/domains/booking/model"
	bookingRepo "lodgehub/internal/domains/booking/repository"
	"lodgehub/internal/domains/calendar/model"
	"lodgehub/internal/domains/calendar/model/dto"
	cancelModel "lodgehub/internal/domains/cancel/model"
	cancelRepo "lodgehub/internal/domains/cancel/repository"
	ledgerDto "lodgehub/internal/domains/ledger/model/dto"
	ledgerService "lodgehub/internal/domains/ledger/service"
	lodgeModel "lodgehub/internal/domains/lodge/model"
	lodgeRepo "lodgehub/internal/domains/lodge/repository"
	roomModel "lodgehub/internal/domains/room/model"
	roomService "lodgehub/internal/domains/room/service"
	"lodgehub/shared"
	"lodgehub/shared/constant"
	gDto "lodgehub/shared/dto"
	"lodgehub/shared/failure"
	"lodgehub/shared/timezone"

	"github.com/rs/zerolog/log"
)

// occupancyColumns is all the occupancy views need from a booking row.
var occupancyColumns = []string{
	bookingModel.FieldBookingID,
	bookingModel.FieldBookedRoom,
	bookingModel.FieldCheckIn,
	bookingModel.FieldCheckOut,
	bookingModel.FieldStatus,
}

// Calendar serves the read-only occupancy and report views of a lodge.
type Calendar interface {
	RoomCountsForNextDays(ctx context.Context, lodgeID int64, now string) (dto.NextDaysResponse, error)
	CurrentOccupancy(ctx context.Context, lodgeID int64, now string) (dto.OccupancyResponse, error)
	BookingsByRoom(ctx context.Context, lodgeID int64, roomName, roomType string) (dto.RoomBookingsResponse, error)
	LodgeStats(ctx context.Context, lodgeID int64) (dto.LodgeStatsResponse, error)
	Finance(ctx context.Context, lodgeID int64) (ledgerDto.FinanceSummaryResponse, error)
}

type serviceImpl struct {
	room        roomService.Room
	bookingRepo bookingRepo.Booking
	cancelRepo  cancelRepo.Cancel
	partialRepo cancelRepo.PartialCancel
	lodgeRepo   lodgeRepo.Lodge
	ledger      ledgerService.Ledger
	cfg         *config.Config
	otel        otel.Otel
}

func New(
	room roomService.Room,
	bookingRepo bookingRepo.Booking,
	cancelRepo cancelRepo.Cancel,
	partialRepo cancelRepo.PartialCancel,
	lodgeRepo lodgeRepo.Lodge,
	ledger ledgerService.Ledger,
	cfg *config.Config,
	otel otel.Otel,
) Calendar {
	return &serviceImpl{
		room:        room,
		bookingRepo: bookingRepo,
		cancelRepo:  cancelRepo,
		partialRepo: partialRepo,
		lodgeRepo:   lodgeRepo,
		ledger:      ledger,
		cfg:         cfg,
		otel:        otel,
	}
}

// RoomCountsForNextDays reports free and taken rooms per category for each of
// the configured number of days, starting now.
func (s *serviceImpl) RoomCountsForNextDays(ctx context.Context, lodgeID int64, now string) (res dto.NextDaysResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RoomCountsForNextDays")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	at, err := parseNow(now)
	if err != nil {
		return res, err
	}

	days := s.cfg.Booking.CalendarDays
	if days <= 0 {
		days = 7
	}

	windows := model.DayWindows(at, days)

	catalog, bookings, err := s.snapshot(ctx, lodgeID, model.Span(windows))
	if err != nil {
		return res, err
	}

	perWindow := make([][]model.Occupancy, len(windows))
	for i, window := range windows {
		perWindow[i] = model.Occupy(catalog, bookings, window)
	}

	res.FromWindows(lodgeID, windows, perWindow)

	return res, nil
}

// CurrentOccupancy reports which rooms are held at the given instant.
func (s *serviceImpl) CurrentOccupancy(ctx context.Context, lodgeID int64, now string) (res dto.OccupancyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CurrentOccupancy")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	at, err := parseNow(now)
	if err != nil {
		return res, err
	}

	window := model.Window{Start: at, End: at.Add(time.Second)}

	catalog, bookings, err := s.snapshot(ctx, lodgeID, window)
	if err != nil {
		return res, err
	}

	res.FromModels(lodgeID, timezone.Format(at, constant.DateFormat), model.Occupy(catalog, bookings, window))

	return res, nil
}

// BookingsByRoom lists the upcoming and in-house bookings that hold rooms of
// one category, oldest check-in first.
func (s *serviceImpl) BookingsByRoom(ctx context.Context, lodgeID int64, roomName, roomType string) (res dto.RoomBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BookingsByRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureLodge(ctx, lodgeID); err != nil {
		return res, err
	}

	catalog, err := s.room.Catalog(ctx, lodgeID)
	if err != nil {
		return res, fmt.Errorf("failed to get room catalog: %w", err)
	}

	var category roomModel.Category

	found := false

	for _, c := range catalog {
		if c.RoomName == roomName && c.RoomType == roomType {
			category, found = c, true

			break
		}
	}

	if !found {
		return res, failure.NotFound(fmt.Sprintf("room category %s (%s) not found", roomName, roomType)) // nolint:wrapcheck
	}

	filter := bookingRepo.FilterByStatus(lodgeID, bookingModel.StatusBooked, bookingModel.StatusPreBooked)
	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    bookingModel.FieldCheckOut,
		Value:    timezone.Now(),
		Operator: gDto.FilterOperatorGreater,
		Table:    bookingModel.TableName,
	})

	bookings, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{SortBy: bookingModel.FieldCheckIn, SortDir: gDto.SortDirAsc}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings by room")

		return res, fmt.Errorf("failed to get bookings by room: %w", err)
	}

	res.FromModels(lodgeID, category, bookings)

	return res, nil
}

func (s *serviceImpl) LodgeStats(ctx context.Context, lodgeID int64) (res dto.LodgeStatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".LodgeStats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	lodge, err := s.lodgeRepo.Get(ctx, shared.FilterByID(lodgeID, lodgeModel.FieldLodgeID, lodgeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get lodge")

		return res, fmt.Errorf("failed to get lodge: %w", err)
	}

	if lodge.LodgeID == 0 {
		return res, failure.NotFound("lodge not found") // nolint:wrapcheck
	}

	bookings, err := s.bookingRepo.Count(ctx, bookingRepo.FilterByStatus(lodgeID))
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	cancels, err := s.cancelRepo.Count(ctx, shared.FilterByLodge(lodgeID, cancelModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to count cancels")

		return res, fmt.Errorf("failed to count cancels: %w", err)
	}

	partials, err := s.partialRepo.Count(ctx, shared.FilterByLodge(lodgeID, cancelModel.PartialTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to count partial cancels")

		return res, fmt.Errorf("failed to count partial cancels: %w", err)
	}

	finance, err := s.ledger.FinanceSummary(ctx, lodgeID)
	if err != nil {
		return res, fmt.Errorf("failed to get finance summary: %w", err)
	}

	res = dto.LodgeStatsResponse{
		LodgeID:               lodge.LodgeID,
		LodgeName:             lodge.Name,
		TotalBookings:         bookings,
		TotalCancelled:        cancels,
		TotalPartialCancelled: partials,
		TotalIncome:           finance.TotalIncome,
		TotalExpense:          finance.TotalExpense,
		Balance:               finance.Balance,
	}

	return res, nil
}

func (s *serviceImpl) Finance(ctx context.Context, lodgeID int64) (res ledgerDto.FinanceSummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Finance")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureLodge(ctx, lodgeID); err != nil {
		return res, err
	}

	res, err = s.ledger.FinanceSummary(ctx, lodgeID)
	if err != nil {
		return res, fmt.Errorf("failed to get finance summary: %w", err)
	}

	return res, nil
}

// snapshot loads the catalog and every booking overlapping the window.
func (s *serviceImpl) snapshot(ctx context.Context, lodgeID int64, window model.Window) ([]roomModel.Category, []bookingModel.Booking, error) {
	if err := s.ensureLodge(ctx, lodgeID); err != nil {
		return nil, nil, err
	}

	catalog, err := s.room.Catalog(ctx, lodgeID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get room catalog: %w", err)
	}

	bookings, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, bookingRepo.FilterOverlapping(lodgeID, window.Start, window.End), occupancyColumns...)
	if err != nil {
		log.Error().Err(err).Msg("failed to get overlapping bookings")

		return nil, nil, fmt.Errorf("failed to get overlapping bookings: %w", err)
	}

	return catalog, bookings, nil
}

func (s *serviceImpl) ensureLodge(ctx context.Context, lodgeID int64) error {
	exists, err := s.lodgeRepo.Exist(ctx, shared.FilterByID(lodgeID, lodgeModel.FieldLodgeID, lodgeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check lodge")

		return fmt.Errorf("failed to check lodge: %w", err)
	}

	if !exists {
		return failure.NotFound("lodge not found") // nolint:wrapcheck
	}

	return nil
}

func parseNow(now string) (time.Time, error) {
	if now == constant.Empty {
		return timezone.Now(), nil
	}

	at, err := timezone.ParseDateTime(now)
	if err != nil {
		return at, failure.BadRequest(fmt.Errorf("invalid now: %w", err)) // nolint:wrapcheck
	}

	return at, nil
}

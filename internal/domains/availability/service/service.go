package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"lodgehub/infras/otel"
	"lodgehub/internal/domains/availability/model"
	"lodgehub/internal/domains/availability/model/dto"
	bookingModel "lodgehub/internal/domains/booking/model"
	bookingRepo "lodgehub/internal/domains/booking/repository"
	lodgeModel "lodgehub/internal/domains/lodge/model"
	lodgeRepo "lodgehub/internal/domains/lodge/repository"
	roomModel "lodgehub/internal/domains/room/model"
	roomService "lodgehub/internal/domains/room/service"
	"lodgehub/shared"
	"lodgehub/shared/constant"
	gDto "lodgehub/shared/dto"
	"lodgehub/shared/failure"
	"lodgehub/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Availability answers which labelled rooms are free for a stay. Results are
// never cached so that they always reflect the latest bookings.
type Availability interface {
	CheckAvailability(ctx context.Context, req dto.CheckAvailabilityRequest) (dto.CheckAvailabilityResponse, error)
	GetAvailableRooms(ctx context.Context, lodgeID int64, checkIn, checkOut string) (dto.AvailableRoomsResponse, error)
	VerifyAllocationTx(ctx context.Context, tx *sqlx.Tx, lodgeID int64, checkIn, checkOut time.Time, allocation bookingModel.Allocation, excludeBookingID int64) error
}

type serviceImpl struct {
	room        roomService.Room
	bookingRepo bookingRepo.Booking
	lodgeRepo   lodgeRepo.Lodge
	otel        otel.Otel
}

func New(room roomService.Room, bookingRepo bookingRepo.Booking, lodgeRepo lodgeRepo.Lodge, otel otel.Otel) Availability {
	return &serviceImpl{
		room:        room,
		bookingRepo: bookingRepo,
		lodgeRepo:   lodgeRepo,
		otel:        otel,
	}
}

func (s *serviceImpl) CheckAvailability(ctx context.Context, req dto.CheckAvailabilityRequest) (res dto.CheckAvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAvailability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	catalog, occupied, err := s.snapshot(ctx, req.LodgeID, req.CheckIn, req.CheckOut)
	if err != nil {
		return res, err
	}

	res.Success = true
	res.AllAvailable = true

	if len(req.RoomRequests) == 0 {
		res.Details = categoriesAvailability(catalog, occupied)

		return res, nil
	}

	res.Details = make([]dto.CategoryAvailability, 0, len(req.RoomRequests))

	for _, request := range req.RoomRequests {
		detail := dto.CategoryAvailability{
			RoomName: request.RoomName,
			RoomType: request.RoomType,
			Required: request.Count,
			Rooms:    []string{},
		}

		category, ok := roomModel.FindCategory(catalog, request.RoomName, request.RoomType)
		if !ok {
			detail.Message = dto.NotFoundMessage(request.RoomName, request.RoomType)
			res.AllAvailable = false
			res.Details = append(res.Details, detail)

			continue
		}

		free := model.FreeLabels(category, occupied)

		detail.Available = len(free)
		detail.Total = len(category.RoomNumbers)
		detail.Rooms = free[:min(request.Count, len(free))]

		if request.Count > len(free) {
			detail.Message = dto.ShortageMessage(request.Count, len(free))
			res.AllAvailable = false
		}

		res.Details = append(res.Details, detail)
	}

	return res, nil
}

func (s *serviceImpl) GetAvailableRooms(ctx context.Context, lodgeID int64, checkIn, checkOut string) (res dto.AvailableRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAvailableRooms")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	catalog, occupied, err := s.snapshot(ctx, lodgeID, checkIn, checkOut)
	if err != nil {
		return res, err
	}

	res = dto.AvailableRoomsResponse{
		LodgeID:    lodgeID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Categories: categoriesAvailability(catalog, occupied),
	}

	return res, nil
}

// VerifyAllocationTx rejects an allocation that names labels outside the lodge
// inventory or labels held by another booking overlapping the stay. Callers hold
// the lodge lock so the check and the following write are not interleaved.
func (s *serviceImpl) VerifyAllocationTx(
	ctx context.Context,
	tx *sqlx.Tx,
	lodgeID int64,
	checkIn, checkOut time.Time,
	allocation bookingModel.Allocation,
	excludeBookingID int64,
) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VerifyAllocationTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if allocation.RoomCount() == 0 {
		return failure.BadRequestFromString("booked_room must hold at least one room number") // nolint:wrapcheck
	}

	catalog, err := s.room.Catalog(ctx, lodgeID)
	if err != nil {
		return fmt.Errorf("failed to get room catalog: %w", err)
	}

	filter := bookingRepo.FilterOverlapping(lodgeID, checkIn, checkOut)
	if excludeBookingID > 0 {
		filter.Filters = append(filter.Filters, gDto.Filter{
			ArgName:  "exclude_booking_id",
			Field:    bookingModel.FieldBookingID,
			Value:    excludeBookingID,
			Operator: gDto.FilterOperatorNotEq,
			Table:    bookingModel.TableName,
		})
	}

	overlapping, err := s.bookingRepo.GetAllTx(ctx, tx, gDto.QueryParams{}, filter, bookingModel.FieldBookingID, bookingModel.FieldBookedRoom)
	if err != nil {
		log.Error().Err(err).Msg("failed to get overlapping bookings")

		return fmt.Errorf("failed to get overlapping bookings: %w", err)
	}

	occupied := model.OccupiedLabels(overlapping)
	seen := model.LabelSet{}

	for _, group := range allocation {
		category, ok := roomModel.FindCategory(catalog, group.RoomName, group.RoomType)
		if !ok {
			return failure.BadRequestFromString(dto.NotFoundMessage(group.RoomName, group.RoomType)) // nolint:wrapcheck
		}

		inventory := model.LabelSet{}
		for _, label := range category.RoomNumbers {
			inventory[label] = struct{}{}
		}

		for _, label := range group.RoomNumbers {
			if !inventory.Has(label) {
				return failure.BadRequestFromString(fmt.Sprintf("room number %s does not belong to %s (%s)", label, group.RoomName, group.RoomType)) // nolint:wrapcheck
			}

			if seen.Has(label) {
				return failure.BadRequestFromString(fmt.Sprintf("room number %s is allocated twice", label)) // nolint:wrapcheck
			}

			seen[label] = struct{}{}

			if occupied.Has(label) {
				return failure.Conflict(fmt.Sprintf("room number %s is already booked for the selected dates", label)) // nolint:wrapcheck
			}
		}
	}

	return nil
}

func (s *serviceImpl) snapshot(ctx context.Context, lodgeID int64, checkIn, checkOut string) ([]roomModel.Category, model.LabelSet, error) {
	start, end, err := timezone.ParseWindow(checkIn, checkOut)
	if err != nil {
		return nil, nil, failure.BadRequest(err) // nolint:wrapcheck
	}

	if !end.After(start) {
		return nil, nil, failure.BadRequestFromString("check_out must be after check_in") // nolint:wrapcheck
	}

	lodgeExists, err := s.lodgeRepo.Exist(ctx, shared.FilterByID(lodgeID, lodgeModel.FieldLodgeID, lodgeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if lodge exists")

		return nil, nil, fmt.Errorf("failed to check if lodge exists: %w", err)
	}

	if !lodgeExists {
		return nil, nil, failure.NotFound("lodge not found") // nolint:wrapcheck
	}

	catalog, err := s.room.Catalog(ctx, lodgeID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get room catalog: %w", err)
	}

	overlapping, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, bookingRepo.FilterOverlapping(lodgeID, start, end), bookingModel.FieldBookingID, bookingModel.FieldBookedRoom)
	if err != nil {
		log.Error().Err(err).Msg("failed to get overlapping bookings")

		return nil, nil, fmt.Errorf("failed to get overlapping bookings: %w", err)
	}

	return catalog, model.OccupiedLabels(overlapping), nil
}

func categoriesAvailability(catalog []roomModel.Category, occupied model.LabelSet) []dto.CategoryAvailability {
	details := make([]dto.CategoryAvailability, len(catalog))

	for i, category := range catalog {
		free := model.FreeLabels(category, occupied)

		details[i] = dto.CategoryAvailability{
			RoomName:  category.RoomName,
			RoomType:  category.RoomType,
			Available: len(free),
			Total:     len(category.RoomNumbers),
			Rooms:     free,
			AllRooms:  category.RoomNumbers,
		}
	}

	return details
}

package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"lodgehub/config"
	"lodgehub/infras/otel"
	bookingModel "lodgehub/internal/domains/booking/model"
	dvModel "lodgehub/internal/domains/defaultvalue/model"
	dvService "lodgehub/internal/domains/defaultvalue/service"
	lodgeModel "lodgehub/internal/domains/lodge/model"
	lodgeRepo "lodgehub/internal/domains/lodge/repository"
	peakService "lodgehub/internal/domains/peakhour/service"
	"lodgehub/internal/domains/pricing/model"
	"lodgehub/internal/domains/pricing/model/dto"
	"lodgehub/shared"
	"lodgehub/shared/constant"
	"lodgehub/shared/failure"
	"lodgehub/shared/timezone"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type Pricing interface {
	CalculatePricing(ctx context.Context, req dto.CalculatePricingRequest) (dto.PricingResponse, error)
	CalculateRoomPrice(ctx context.Context, req dto.RoomPriceRequest) (dto.PricingResponse, error)
	UpdatePricing(ctx context.Context, req dto.UpdatePricingRequest) (dto.PricingResponse, error)
}

type serviceImpl struct {
	peakHour     peakService.PeakHour
	defaultValue dvService.DefaultValue
	lodgeRepo    lodgeRepo.Lodge
	cfg          *config.Config
	otel         otel.Otel
}

func New(peakHour peakService.PeakHour, defaultValue dvService.DefaultValue, lodgeRepo lodgeRepo.Lodge, cfg *config.Config, otel otel.Otel) Pricing {
	return &serviceImpl{
		peakHour:     peakHour,
		defaultValue: defaultValue,
		lodgeRepo:    lodgeRepo,
		cfg:          cfg,
		otel:         otel,
	}
}

type quoteInput struct {
	lodgeID     int64
	checkIn     string
	checkOut    string
	groups      []model.GroupRate
	override    *float64
	pricingType string
}

func (s *serviceImpl) CalculatePricing(ctx context.Context, req dto.CalculatePricingRequest) (res dto.PricingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CalculatePricing")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	groups, err := groupsFromAllocation(req.BookedRooms)
	if err != nil {
		return res, err
	}

	return s.quote(ctx, quoteInput{
		lodgeID:  req.LodgeID,
		checkIn:  req.CheckIn,
		checkOut: req.CheckOut,
		groups:   groups,
		override: req.OverrideBaseAmount,
	})
}

func (s *serviceImpl) CalculateRoomPrice(ctx context.Context, req dto.RoomPriceRequest) (res dto.PricingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CalculateRoomPrice")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.quote(ctx, quoteInput{
		lodgeID:  req.LodgeID,
		checkIn:  req.CheckIn,
		checkOut: req.CheckOut,
		groups:   []model.GroupRate{{RoomName: req.RoomName, RoomType: req.RoomType, RoomCount: req.RoomCount}},
		override: req.OverrideBaseAmount,
	})
}

func (s *serviceImpl) UpdatePricing(ctx context.Context, req dto.UpdatePricingRequest) (res dto.PricingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdatePricing")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	groups, err := groupsFromAllocation(req.BookedRooms)
	if err != nil {
		return res, err
	}

	return s.quote(ctx, quoteInput{
		lodgeID:     req.LodgeID,
		checkIn:     req.CheckIn,
		checkOut:    req.CheckOut,
		groups:      groups,
		override:    req.OverrideBaseAmount,
		pricingType: req.PricingType,
	})
}

func (s *serviceImpl) quote(ctx context.Context, in quoteInput) (res dto.PricingResponse, err error) {
	checkIn, checkOut, err := timezone.ParseWindow(in.checkIn, in.checkOut)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	numDays := model.NumDays(checkIn, checkOut)
	if numDays <= 0 {
		return res, failure.BadRequestFromString("check_out must be after check_in") // nolint:wrapcheck
	}

	lodgeExists, err := s.lodgeRepo.Exist(ctx, shared.FilterByID(in.lodgeID, lodgeModel.FieldLodgeID, lodgeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if lodge exists")

		return res, fmt.Errorf("failed to check if lodge exists: %w", err)
	}

	if !lodgeExists {
		return res, failure.NotFound("lodge not found") // nolint:wrapcheck
	}

	pricingType, err := s.pricingType(ctx, in, checkIn, checkOut)
	if err != nil {
		return res, err
	}

	for i := range in.groups {
		rate, err := s.rate(ctx, in.lodgeID, in.groups[i], pricingType, in.override)
		if err != nil {
			return res, err
		}

		in.groups[i].BaseAmountPerRoom = rate
	}

	gstRate, err := s.gstRate(ctx, in.lodgeID)
	if err != nil {
		return res, err
	}

	res.FromQuote(model.Calculate(numDays, pricingType, in.groups, gstRate))

	return res, nil
}

func (s *serviceImpl) pricingType(ctx context.Context, in quoteInput, checkIn, checkOut time.Time) (string, error) {
	if in.override != nil {
		return model.PricingOverride, nil
	}

	if in.pricingType != constant.Empty {
		return in.pricingType, nil
	}

	peak, err := s.peakHour.HasPeakBetween(ctx, in.lodgeID, checkIn, checkOut)
	if err != nil {
		log.Error().Err(err).Msg("failed to check peak dates")

		return constant.Empty, fmt.Errorf("failed to check peak dates: %w", err)
	}

	if peak {
		return model.PricingPeak, nil
	}

	return model.PricingNormal, nil
}

// rate resolves the nightly rent. A missing tariff is a hard stop, never zero.
func (s *serviceImpl) rate(ctx context.Context, lodgeID int64, group model.GroupRate, pricingType string, override *float64) (decimal.Decimal, error) {
	if override != nil {
		return decimal.NewFromFloat(*override), nil
	}

	reason := dvModel.RentReason(group.RoomName, group.RoomType)

	tariff := dvModel.TypeDefault
	if pricingType == model.PricingPeak {
		tariff = dvModel.TypePeakHours
	}

	amount, found, err := s.defaultValue.Lookup(ctx, lodgeID, reason, tariff)
	if err != nil {
		log.Error().Err(err).Str("reason", reason).Msg("failed to look up rent")

		return decimal.Zero, fmt.Errorf("failed to look up rent: %w", err)
	}

	if !found {
		return decimal.Zero, failure.BadRequestFromString(fmt.Sprintf("no default value for reason %q and type %q", reason, tariff)) // nolint:wrapcheck
	}

	return decimal.NewFromFloat(amount), nil
}

func (s *serviceImpl) gstRate(ctx context.Context, lodgeID int64) (decimal.Decimal, error) {
	rate, found, err := s.defaultValue.Lookup(ctx, lodgeID, dvModel.ReasonGST, dvModel.TypeDefault)
	if err != nil {
		log.Error().Err(err).Msg("failed to look up gst rate")

		return decimal.Zero, fmt.Errorf("failed to look up gst rate: %w", err)
	}

	if !found {
		return decimal.NewFromFloat(s.cfg.Booking.DefaultGSTRate), nil
	}

	return decimal.NewFromFloat(rate), nil
}

func groupsFromAllocation(allocation bookingModel.Allocation) ([]model.GroupRate, error) {
	groups := make([]model.GroupRate, 0, len(allocation))

	for _, group := range allocation {
		if group.RoomName == constant.Empty || group.RoomType == constant.Empty {
			return nil, failure.BadRequestFromString("every booked room group needs room_name and room_type") // nolint:wrapcheck
		}

		if len(group.RoomNumbers) == 0 {
			return nil, failure.BadRequestFromString(fmt.Sprintf("room group %s (%s) has no room numbers", group.RoomName, group.RoomType)) // nolint:wrapcheck
		}

		groups = append(groups, model.GroupRate{
			RoomName:    group.RoomName,
			RoomType:    group.RoomType,
			RoomNumbers: group.RoomNumbers,
			RoomCount:   len(group.RoomNumbers),
		})
	}

	return groups, nil
}

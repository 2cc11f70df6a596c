package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"lodgehub/config"
	"lodgehub/infras/otel/mocks"
	bookingModel "lodgehub/internal/domains/booking/model"
	dvMocks "lodgehub/internal/domains/defaultvalue/mocks"
	dvModel "lodgehub/internal/domains/defaultvalue/model"
	lodgeMocks "lodgehub/internal/domains/lodge/mocks"
	peakMocks "lodgehub/internal/domains/peakhour/mocks"
	"lodgehub/internal/domains/pricing/model"
	"lodgehub/internal/domains/pricing/model/dto"
	"lodgehub/internal/domains/pricing/service"
	"lodgehub/shared/failure"
)

type pricingDeps struct {
	peak  *peakMocks.MockPeakHourService
	dv    *dvMocks.MockDefaultValueService
	lodge *lodgeMocks.MockLodge
}

func newPricing(t *testing.T) (pricingDeps, service.Pricing) {
	ctrl := gomock.NewController(t)

	d := pricingDeps{
		peak:  peakMocks.NewMockPeakHourService(ctrl),
		dv:    dvMocks.NewMockDefaultValueService(ctrl),
		lodge: lodgeMocks.NewMockLodge(ctrl),
	}

	cfg := &config.Config{}
	cfg.Booking.DefaultGSTRate = 18

	return d, service.New(d.peak, d.dv, d.lodge, cfg, mocks.NewOtel())
}

func TestPricingService_CalculateRoomPrice(t *testing.T) {
	req := dto.RoomPriceRequest{
		LodgeID:   6,
		RoomName:  "Deluxe",
		RoomType:  "AC",
		RoomCount: 1,
		CheckIn:   "2025-01-01T12:00:00Z",
		CheckOut:  "2025-01-03T12:00:00Z",
	}

	t.Run("normal tariff with fallback gst", func(t *testing.T) {
		d, svc := newPricing(t)

		d.lodge.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		d.peak.EXPECT().HasPeakBetween(gomock.Any(), int64(6), gomock.Any(), gomock.Any()).Return(false, nil)
		d.dv.EXPECT().Lookup(gomock.Any(), int64(6), "Rent (Deluxe (AC))", dvModel.TypeDefault).Return(500.0, true, nil)
		d.dv.EXPECT().Lookup(gomock.Any(), int64(6), dvModel.ReasonGST, dvModel.TypeDefault).Return(0.0, false, nil)

		res, err := svc.CalculateRoomPrice(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, 2, res.NumDays)
		assert.Equal(t, model.PricingNormal, res.PricingType)
		assert.InDelta(t, 1000, res.TotalBaseAmount, 0.001)
		assert.InDelta(t, 18, res.GSTRate, 0.001)
		assert.InDelta(t, 180, res.GSTAmount, 0.001)
		assert.InDelta(t, 1180, res.TotalAmount, 0.001)
	})

	t.Run("peak tariff with configured gst", func(t *testing.T) {
		d, svc := newPricing(t)

		d.lodge.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		d.peak.EXPECT().HasPeakBetween(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		d.dv.EXPECT().Lookup(gomock.Any(), gomock.Any(), "Rent (Deluxe (AC))", dvModel.TypePeakHours).Return(800.0, true, nil)
		d.dv.EXPECT().Lookup(gomock.Any(), gomock.Any(), dvModel.ReasonGST, dvModel.TypeDefault).Return(12.0, true, nil)

		res, err := svc.CalculateRoomPrice(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, model.PricingPeak, res.PricingType)
		assert.InDelta(t, 1600, res.TotalBaseAmount, 0.001)
		assert.InDelta(t, 192, res.GSTAmount, 0.001)
		assert.InDelta(t, 1792, res.TotalAmount, 0.001)
	})

	t.Run("missing tariff is a validation error", func(t *testing.T) {
		d, svc := newPricing(t)

		d.lodge.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		d.peak.EXPECT().HasPeakBetween(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		d.dv.EXPECT().Lookup(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(0.0, false, nil)

		_, err := svc.CalculateRoomPrice(context.Background(), req)

		assert.Equal(t, 400, failure.GetCode(err))
		assert.Contains(t, err.Error(), "Rent (Deluxe (AC))")
	})

	t.Run("check_out before check_in", func(t *testing.T) {
		_, svc := newPricing(t)

		bad := req
		bad.CheckOut = "2024-12-31T12:00:00Z"

		_, err := svc.CalculateRoomPrice(context.Background(), bad)

		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("lookup failure", func(t *testing.T) {
		d, svc := newPricing(t)

		d.lodge.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		d.peak.EXPECT().HasPeakBetween(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("database error"))

		_, err := svc.CalculateRoomPrice(context.Background(), req)

		assert.Equal(t, 500, failure.GetCode(err))
	})
}

func TestPricingService_CalculatePricing(t *testing.T) {
	override := 300.0

	req := dto.CalculatePricingRequest{
		LodgeID:  6,
		CheckIn:  "2025-01-01",
		CheckOut: "2025-01-02",
		BookedRooms: bookingModel.Allocation{
			{RoomName: "Deluxe", RoomType: "AC", RoomNumbers: []string{"101", "102"}},
			{RoomName: "Suite", RoomType: "AC", RoomNumbers: []string{"201"}},
		},
		OverrideBaseAmount: &override,
	}

	t.Run("override skips the calendar", func(t *testing.T) {
		d, svc := newPricing(t)

		d.lodge.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		d.dv.EXPECT().Lookup(gomock.Any(), gomock.Any(), dvModel.ReasonGST, dvModel.TypeDefault).Return(0.0, false, nil)

		res, err := svc.CalculatePricing(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, model.PricingOverride, res.PricingType)
		assert.Len(t, res.Rooms, 2)
		assert.Equal(t, 2, res.Rooms[0].RoomCount)
		assert.InDelta(t, 900, res.TotalBaseAmount, 0.001)
		assert.InDelta(t, 1062, res.TotalAmount, 0.001)
	})

	t.Run("legacy group without category", func(t *testing.T) {
		_, svc := newPricing(t)

		legacy := req
		legacy.BookedRooms = bookingModel.Allocation{{RoomNumbers: []string{"101"}}}

		_, err := svc.CalculatePricing(context.Background(), legacy)

		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestPricingService_UpdatePricing(t *testing.T) {
	d, svc := newPricing(t)

	d.lodge.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	d.dv.EXPECT().Lookup(gomock.Any(), gomock.Any(), "Rent (Deluxe (AC))", dvModel.TypePeakHours).Return(750.0, true, nil)
	d.dv.EXPECT().Lookup(gomock.Any(), gomock.Any(), dvModel.ReasonGST, dvModel.TypeDefault).Return(18.0, true, nil)

	res, err := svc.UpdatePricing(context.Background(), dto.UpdatePricingRequest{
		CalculatePricingRequest: dto.CalculatePricingRequest{
			LodgeID:     6,
			CheckIn:     "2025-01-01",
			CheckOut:    "2025-01-02",
			BookedRooms: bookingModel.Allocation{{RoomName: "Deluxe", RoomType: "AC", RoomNumbers: []string{"101"}}},
		},
		PricingType: model.PricingPeak,
	})

	require.NoError(t, err)
	assert.Equal(t, model.PricingPeak, res.PricingType)
	assert.InDelta(t, 885, res.TotalAmount, 0.001)
}

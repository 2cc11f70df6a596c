package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"lodgehub/config"
	"lodgehub/infras/otel/mocks"
	pgMocks "lodgehub/infras/postgres/mocks"
	bookingMocks "lodgehub/internal/domains/booking/mocks"
	bookingModel "lodgehub/internal/domains/booking/model"
	cancelMocks "lodgehub/internal/domains/cancel/mocks"
	"lodgehub/internal/domains/cancel/model"
	"lodgehub/internal/domains/cancel/model/dto"
	"lodgehub/internal/domains/cancel/service"
	defaultValueMocks "lodgehub/internal/domains/defaultvalue/mocks"
	defaultValueModel "lodgehub/internal/domains/defaultvalue/model"
	ledgerMocks "lodgehub/internal/domains/ledger/mocks"
	ledgerModel "lodgehub/internal/domains/ledger/model"
	ledgerDto "lodgehub/internal/domains/ledger/model/dto"
	peakHourMocks "lodgehub/internal/domains/peakhour/mocks"
	cacheMocks "lodgehub/shared/cache/mocks"
	"lodgehub/shared/constant"
	gDto "lodgehub/shared/dto"
	"lodgehub/shared/failure"
)

type deps struct {
	repo         *cancelMocks.MockCancel
	partial      *cancelMocks.MockPartialCancel
	booking      *bookingMocks.MockBooking
	peakHour     *peakHourMocks.MockPeakHourService
	defaultValue *defaultValueMocks.MockDefaultValueService
	ledger       *ledgerMocks.MockLedger
}

func newService(t *testing.T) (deps, service.Cancel) {
	ctrl := gomock.NewController(t)

	d := deps{
		repo:         cancelMocks.NewMockCancel(ctrl),
		partial:      cancelMocks.NewMockPartialCancel(ctrl),
		booking:      bookingMocks.NewMockBooking(ctrl),
		peakHour:     peakHourMocks.NewMockPeakHourService(ctrl),
		defaultValue: defaultValueMocks.NewMockDefaultValueService(ctrl),
		ledger:       ledgerMocks.NewMockLedger(ctrl),
	}

	tx := pgMocks.NewMockTransactor(ctrl)
	tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fn func(*sqlx.Tx) error) error {
		return fn(nil)
	}).AnyTimes()

	redis := cacheMocks.NewMockRedisCache(ctrl)
	redis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	redis.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	redis.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	redis.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(d.repo, d.partial, d.booking, d.peakHour, d.defaultValue, d.ledger, tx, cfg, redis, mocks.NewOtel())

	return d, svc
}

func bookedDeluxe() bookingModel.Booking {
	return bookingModel.Booking{
		BookingID:  3,
		LodgeID:    6,
		Status:     bookingModel.StatusBooked,
		BookedRoom: bookingModel.Allocation{{RoomName: "Deluxe", RoomType: "AC", RoomNumbers: []string{"101", "102"}}},
		RoomAmount: bookingModel.RoomAmounts{{RoomName: "Deluxe", RoomType: "AC", RoomCount: 2, BaseAmountPerRoom: 1500, GroupTotalBaseAmount: 3000}},
		Notes:      bookingModel.Notes{"source": "walk-in"},
	}
}

func TestCancelService_CreateCancel(t *testing.T) {
	req := dto.CreateCancelRequest{BookingID: 3, LodgeID: 6, Reason: "plans changed", AmountPaid: 1000, CancelCharge: 200, Refund: 800}

	tests := []struct {
		name      string
		req       dto.CreateCancelRequest
		setupMock func(d deps)
		wantCode  int
	}{
		{
			name: "booked booking with refund",
			req:  req,
			setupMock: func(d deps) {
				d.booking.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(bookingModel.Booking{BookingID: 3, LodgeID: 6, Status: bookingModel.StatusBooked}, nil)
				d.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *sqlx.Tx, c model.Cancel) error {
					assert.Equal(t, "staff-1", c.UserID)
					assert.InDelta(t, 800.0, c.Refund, 0.001)

					return nil
				})
				d.booking.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, bookingModel.StatusCancel, fields[bookingModel.FieldStatus])
						assert.NotContains(t, fields, bookingModel.FieldBookedRoom)

						return nil
					})
				d.ledger.EXPECT().PostExpenseTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *sqlx.Tx, p ledgerDto.Posting) error {
					assert.Equal(t, ledgerModel.TypeCancel, p.Type)
					assert.InDelta(t, 800.0, p.Amount, 0.001)

					return nil
				})
			},
		},
		{
			name: "prebooked booking without refund posts nothing",
			req:  dto.CreateCancelRequest{BookingID: 3, LodgeID: 6},
			setupMock: func(d deps) {
				d.booking.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(bookingModel.Booking{BookingID: 3, LodgeID: 6, Status: bookingModel.StatusPreBooked}, nil)
				d.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				d.booking.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:      "refund larger than paid",
			req:       dto.CreateCancelRequest{BookingID: 3, LodgeID: 6, AmountPaid: 100, Refund: 150},
			setupMock: func(deps) {},
			wantCode:  400,
		},
		{
			name: "booking not found",
			req:  req,
			setupMock: func(d deps) {
				d.booking.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(bookingModel.Booking{}, nil)
			},
			wantCode: 404,
		},
		{
			name: "billed booking",
			req:  req,
			setupMock: func(d deps) {
				d.booking.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(bookingModel.Booking{BookingID: 3, Status: bookingModel.StatusBilled}, nil)
			},
			wantCode: 400,
		},
		{
			name: "already cancelled",
			req:  req,
			setupMock: func(d deps) {
				d.booking.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(bookingModel.Booking{BookingID: 3, Status: bookingModel.StatusCancel}, nil)
			},
			wantCode: 400,
		},
		{
			name: "insert failure",
			req:  req,
			setupMock: func(d deps) {
				d.booking.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(bookingModel.Booking{BookingID: 3, Status: bookingModel.StatusBooked}, nil)
				d.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, svc := newService(t)
			tt.setupMock(d)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-1")
			res, err := svc.CreateCancel(ctx, tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, res.ID)
			assert.Equal(t, tt.req.BookingID, res.BookingID)
		})
	}
}

func TestCancelService_PartialCancel(t *testing.T) {
	d, svc := newService(t)

	req := dto.PartialCancelRequest{
		BookingID:   3,
		LodgeID:     6,
		RoomNumbers: []bookingModel.RoomGroup{{RoomName: "Deluxe", RoomType: "AC", RoomNumbers: []string{"101"}}},
		Reason:      "one room not needed",
		AmountPaid:  3000,
		Refund:      1200,
	}

	want := bookingModel.Allocation{{RoomName: "Deluxe", RoomType: "AC", RoomNumbers: []string{"102"}}}

	d.booking.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookedDeluxe(), nil)
	d.booking.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, want, fields[bookingModel.FieldBookedRoom])
			assert.NotContains(t, fields, bookingModel.FieldStatus)

			notes, ok := fields[bookingModel.FieldNotes].(bookingModel.Notes)
			require.True(t, ok)
			assert.Equal(t, "walk-in", notes["source"])
			assert.Len(t, notes[model.NotesKeyPartialCancel], 1)

			return nil
		})
	d.partial.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *sqlx.Tx, p model.PartialCancel) error {
		require.Len(t, p.RoomNumber, 1)
		assert.Equal(t, []string{"101"}, p.RoomNumber[0].RoomNumbers)
		assert.InDelta(t, 1500.0, p.TotalCancelValue, 0.001)

		return nil
	})
	d.ledger.EXPECT().PostExpenseTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *sqlx.Tx, p ledgerDto.Posting) error {
		assert.Equal(t, ledgerModel.TypePartialCancel, p.Type)
		assert.InDelta(t, 1200.0, p.Amount, 0.001)

		return nil
	})

	res, err := svc.PartialCancel(context.Background(), req)

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, want, res.BookedRoom)
	assert.InDelta(t, 1500.0, res.TotalCancelValue, 0.001)
}

func TestCancelService_PartialCancel_Errors(t *testing.T) {
	release := func(labels ...string) []bookingModel.RoomGroup {
		return []bookingModel.RoomGroup{{RoomName: "Deluxe", RoomType: "AC", RoomNumbers: labels}}
	}

	prebooked := bookedDeluxe()
	prebooked.Status = bookingModel.StatusPreBooked

	tests := []struct {
		name     string
		rooms    []bookingModel.RoomGroup
		booking  bookingModel.Booking
		wantCode int
	}{
		{name: "booking not found", rooms: release("101"), booking: bookingModel.Booking{}, wantCode: 404},
		{
			name:     "prebooked booking",
			rooms:    release("101"),
			booking:  prebooked,
			wantCode: 400,
		},
		{name: "label not held", rooms: release("103"), booking: bookedDeluxe(), wantCode: 400},
		{name: "every label", rooms: release("101", "102"), booking: bookedDeluxe(), wantCode: 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, svc := newService(t)

			d.booking.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.booking, nil)

			_, err := svc.PartialCancel(context.Background(), dto.PartialCancelRequest{BookingID: 3, LodgeID: 6, RoomNumbers: tt.rooms})

			assert.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestCancelService_CalculateCancelCharge(t *testing.T) {
	checkIn := "2025-12-24T12:00:00Z"

	tests := []struct {
		name       string
		req        dto.CalculateCancelChargeRequest
		setupMock  func(d deps)
		wantCharge float64
		wantRefund float64
		wantPeak   bool
		wantCode   int
	}{
		{
			name: "peak check-in",
			req:  dto.CalculateCancelChargeRequest{LodgeID: 6, BaseAmount: 3000, CheckInDate: checkIn},
			setupMock: func(d deps) {
				d.peakHour.EXPECT().HasPeakBetween(gomock.Any(), int64(6), gomock.Any(), gomock.Any()).Return(true, nil)
				d.defaultValue.EXPECT().Lookup(gomock.Any(), int64(6), defaultValueModel.ReasonCancel, defaultValueModel.TypeCancelPeak).Return(25.0, true, nil)
			},
			wantCharge: 750,
			wantRefund: 2250,
			wantPeak:   true,
		},
		{
			name: "normal check-in rounds to cents",
			req:  dto.CalculateCancelChargeRequest{LodgeID: 6, BaseAmount: 999.99, CheckInDate: checkIn},
			setupMock: func(d deps) {
				d.peakHour.EXPECT().HasPeakBetween(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
				d.defaultValue.EXPECT().Lookup(gomock.Any(), gomock.Any(), defaultValueModel.ReasonCancel, defaultValueModel.TypeCancelDefault).Return(10.0, true, nil)
			},
			wantCharge: 100,
			wantRefund: 899.99,
		},
		{
			name: "no percentage configured",
			req:  dto.CalculateCancelChargeRequest{LodgeID: 6, BaseAmount: 500, CheckInDate: checkIn},
			setupMock: func(d deps) {
				d.peakHour.EXPECT().HasPeakBetween(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
				d.defaultValue.EXPECT().Lookup(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(0.0, false, nil)
			},
			wantCharge: 0,
			wantRefund: 500,
		},
		{
			name: "check-in taken from the booking",
			req:  dto.CalculateCancelChargeRequest{BookingID: 3, LodgeID: 6, BaseAmount: 1000},
			setupMock: func(d deps) {
				d.booking.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(bookingModel.Booking{BookingID: 3, CheckIn: time.Date(2025, 12, 24, 12, 0, 0, 0, time.UTC)}, nil)
				d.peakHour.EXPECT().HasPeakBetween(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
				d.defaultValue.EXPECT().Lookup(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(20.0, true, nil)
			},
			wantCharge: 200,
			wantRefund: 800,
		},
		{
			name:      "invalid check-in",
			req:       dto.CalculateCancelChargeRequest{LodgeID: 6, BaseAmount: 1000, CheckInDate: "someday"},
			setupMock: func(deps) {},
			wantCode:  400,
		},
		{
			name: "unknown booking",
			req:  dto.CalculateCancelChargeRequest{BookingID: 9, LodgeID: 6, BaseAmount: 1000},
			setupMock: func(d deps) {
				d.booking.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(bookingModel.Booking{}, nil)
			},
			wantCode: 404,
		},
		{
			name: "peak lookup failure",
			req:  dto.CalculateCancelChargeRequest{LodgeID: 6, BaseAmount: 1000, CheckInDate: checkIn},
			setupMock: func(d deps) {
				d.peakHour.EXPECT().HasPeakBetween(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("database error"))
			},
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, svc := newService(t)
			tt.setupMock(d)

			res, err := svc.CalculateCancelCharge(context.Background(), tt.req)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantPeak, res.IsPeak)
			assert.InDelta(t, tt.wantCharge, res.CancelCharge, 0.001)
			assert.InDelta(t, tt.wantRefund, res.Refund, 0.001)
		})
	}
}

func TestCancelService_GetByLodge(t *testing.T) {
	d, svc := newService(t)

	d.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	d.repo.EXPECT().GetAll(gomock.Any(), gomock.Cond(func(p gDto.QueryParams) bool {
		return p.SortBy == constant.FieldCreatedAt && p.SortDir == gDto.SortDirDesc
	}), gomock.Any()).Return([]model.Cancel{{ID: "c-1"}, {ID: "c-2"}}, nil)

	res, err := svc.GetCancelsByLodge(context.Background(), 6, gDto.QueryParams{Page: 1, Limit: 1})

	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalPage)
	assert.Len(t, res.Cancels, 2)

	d.partial.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("database error"))

	_, err = svc.GetPartialCancelsByLodge(context.Background(), 6, gDto.QueryParams{})

	assert.Error(t, err)

	time.Sleep(10 * time.Millisecond)
}

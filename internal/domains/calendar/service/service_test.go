package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"lodgehub/config"
	"lodgehub/infras/otel/mocks"
	bookingMocks "lodgehub/internal/domains/booking/mocks"
	bookingModel "lodgehub/internal/domains/booking/model"
	"lodgehub/internal/domains/calendar/service"
	cancelMocks "lodgehub/internal/domains/cancel/mocks"
	ledgerMocks "lodgehub/internal/domains/ledger/mocks"
	ledgerDto "lodgehub/internal/domains/ledger/model/dto"
	lodgeMocks "lodgehub/internal/domains/lodge/mocks"
	lodgeModel "lodgehub/internal/domains/lodge/model"
	roomMocks "lodgehub/internal/domains/room/mocks"
	roomModel "lodgehub/internal/domains/room/model"
	"lodgehub/shared/failure"
)

type deps struct {
	room    *roomMocks.MockRoomService
	booking *bookingMocks.MockBooking
	cancel  *cancelMocks.MockCancel
	partial *cancelMocks.MockPartialCancel
	lodge   *lodgeMocks.MockLodge
	ledger  *ledgerMocks.MockLedger
}

func newService(t *testing.T) (deps, service.Calendar) {
	ctrl := gomock.NewController(t)

	d := deps{
		room:    roomMocks.NewMockRoomService(ctrl),
		booking: bookingMocks.NewMockBooking(ctrl),
		cancel:  cancelMocks.NewMockCancel(ctrl),
		partial: cancelMocks.NewMockPartialCancel(ctrl),
		lodge:   lodgeMocks.NewMockLodge(ctrl),
		ledger:  ledgerMocks.NewMockLedger(ctrl),
	}

	cfg := &config.Config{}
	cfg.Booking.CalendarDays = 3

	return d, service.New(d.room, d.booking, d.cancel, d.partial, d.lodge, d.ledger, cfg, mocks.NewOtel())
}

var catalog = []roomModel.Category{
	{RoomName: "Deluxe", RoomType: "AC", RoomNumbers: []string{"101", "102"}},
}

func TestCalendarService_RoomCountsForNextDays(t *testing.T) {
	d, svc := newService(t)

	d.lodge.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	d.room.EXPECT().Catalog(gomock.Any(), int64(6)).Return(catalog, nil)
	d.booking.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]bookingModel.Booking{
		{
			BookingID:  1,
			Status:     bookingModel.StatusBooked,
			CheckIn:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
			CheckOut:   time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC),
			BookedRoom: bookingModel.Allocation{{RoomName: "Deluxe", RoomType: "AC", RoomNumbers: []string{"101"}}},
		},
	}, nil)

	res, err := svc.RoomCountsForNextDays(context.Background(), 6, "2025-06-01T15:00:00Z")

	require.NoError(t, err)
	require.Len(t, res.Categories, 1)

	days := res.Categories[0].Days
	require.Len(t, days, 3)
	assert.Equal(t, "2025-06-01", days[0].Date)
	assert.Equal(t, 1, days[0].UnavailableCount)
	assert.Equal(t, 1, days[1].UnavailableCount)
	assert.Equal(t, 2, days[2].AvailableCount)
	assert.Equal(t, 2, res.Categories[0].TotalCount)
}

func TestCalendarService_CurrentOccupancy(t *testing.T) {
	tests := []struct {
		name      string
		now       string
		setupMock func(d deps)
		wantCode  int
		wantFree  []string
	}{
		{
			name: "one room in house",
			now:  "2025-06-01T15:00:00Z",
			setupMock: func(d deps) {
				d.lodge.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				d.room.EXPECT().Catalog(gomock.Any(), int64(6)).Return(catalog, nil)
				d.booking.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]bookingModel.Booking{
					{
						Status:     bookingModel.StatusBilled,
						CheckIn:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
						CheckOut:   time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC),
						BookedRoom: bookingModel.Allocation{{RoomName: "Deluxe", RoomType: "AC", RoomNumbers: []string{"102"}}},
					},
				}, nil)
			},
			wantFree: []string{"101"},
		},
		{
			name:      "invalid now",
			now:       "tomorrow",
			setupMock: func(deps) {},
			wantCode:  400,
		},
		{
			name: "lodge not found",
			setupMock: func(d deps) {
				d.lodge.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, svc := newService(t)
			tt.setupMock(d)

			res, err := svc.CurrentOccupancy(context.Background(), 6, tt.now)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantFree, res.Categories[0].FreeRooms)
			assert.Equal(t, 1, res.Categories[0].OccupiedCount)
		})
	}
}

func TestCalendarService_BookingsByRoom(t *testing.T) {
	t.Run("keeps bookings holding the category", func(t *testing.T) {
		d, svc := newService(t)

		d.lodge.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		d.room.EXPECT().Catalog(gomock.Any(), int64(6)).Return(catalog, nil)
		d.booking.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]bookingModel.Booking{
			{BookingID: 1, BookedRoom: bookingModel.Allocation{{RoomName: "Deluxe", RoomType: "AC", RoomNumbers: []string{"102"}}}},
			{BookingID: 2, BookedRoom: bookingModel.Allocation{{RoomName: "Standard", RoomType: "AC", RoomNumbers: []string{"201"}}}},
		}, nil)

		res, err := svc.BookingsByRoom(context.Background(), 6, "Deluxe", "AC")

		require.NoError(t, err)
		require.Len(t, res.Bookings, 1)
		assert.Equal(t, int64(1), res.Bookings[0].BookingID)
		assert.Equal(t, []string{"102"}, res.Bookings[0].RoomNumbers)
	})

	t.Run("unknown category", func(t *testing.T) {
		d, svc := newService(t)

		d.lodge.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		d.room.EXPECT().Catalog(gomock.Any(), int64(6)).Return(catalog, nil)

		_, err := svc.BookingsByRoom(context.Background(), 6, "Suite", "AC")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestCalendarService_LodgeStats(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		d, svc := newService(t)

		d.lodge.EXPECT().Get(gomock.Any(), gomock.Any()).Return(lodgeModel.Lodge{LodgeID: 6, Name: "Hill View"}, nil)
		d.booking.EXPECT().Count(gomock.Any(), gomock.Any()).Return(12, nil)
		d.cancel.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
		d.partial.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
		d.ledger.EXPECT().FinanceSummary(gomock.Any(), int64(6)).Return(ledgerDto.FinanceSummaryResponse{
			LodgeID: 6, TotalIncome: 5000, TotalExpense: 1200, Balance: 3800,
		}, nil)

		res, err := svc.LodgeStats(context.Background(), 6)

		require.NoError(t, err)
		assert.Equal(t, "Hill View", res.LodgeName)
		assert.Equal(t, 12, res.TotalBookings)
		assert.Equal(t, 2, res.TotalCancelled)
		assert.Equal(t, 1, res.TotalPartialCancelled)
		assert.InDelta(t, 3800.0, res.Balance, 0.001)
	})

	t.Run("lodge not found", func(t *testing.T) {
		d, svc := newService(t)

		d.lodge.EXPECT().Get(gomock.Any(), gomock.Any()).Return(lodgeModel.Lodge{}, nil)

		_, err := svc.LodgeStats(context.Background(), 6)

		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestCalendarService_Finance(t *testing.T) {
	d, svc := newService(t)

	d.lodge.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	d.ledger.EXPECT().FinanceSummary(gomock.Any(), int64(6)).Return(ledgerDto.FinanceSummaryResponse{}, errors.New("database error"))

	_, err := svc.Finance(context.Background(), 6)

	assert.Error(t, err)
	assert.Equal(t, 500, failure.GetCode(err))
}

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
	billingMocks "lodgehub/internal/domains/billing/mocks"
	billingModel "lodgehub/internal/domains/billing/model"
	bookingMocks "lodgehub/internal/domains/booking/mocks"
	bookingModel "lodgehub/internal/domains/booking/model"
	cancelMocks "lodgehub/internal/domains/cancel/mocks"
	cancelModel "lodgehub/internal/domains/cancel/model"
	"lodgehub/internal/domains/history/service"
	cacheMocks "lodgehub/shared/cache/mocks"
	"lodgehub/shared/constant"
	gDto "lodgehub/shared/dto"
)

type deps struct {
	booking *bookingMocks.MockBooking
	billing *billingMocks.MockBilling
	cancel  *cancelMocks.MockCancel
	partial *cancelMocks.MockPartialCancel
}

func newService(t *testing.T) (deps, service.History) {
	ctrl := gomock.NewController(t)

	d := deps{
		booking: bookingMocks.NewMockBooking(ctrl),
		billing: billingMocks.NewMockBilling(ctrl),
		cancel:  cancelMocks.NewMockCancel(ctrl),
		partial: cancelMocks.NewMockPartialCancel(ctrl),
	}

	redis := cacheMocks.NewMockRedisCache(ctrl)
	redis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	redis.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return d, service.New(d.booking, d.billing, d.cancel, d.partial, cfg, redis, mocks.NewOtel())
}

func oldestFirst(p gDto.QueryParams) bool {
	return p.SortBy == constant.FieldCreatedAt && p.SortDir == gDto.SortDirAsc
}

func TestHistoryService_Booked(t *testing.T) {
	d, svc := newService(t)

	bookings := []bookingModel.Booking{
		{BookingID: 1, LodgeID: 6, Status: bookingModel.StatusBilled},
		{BookingID: 2, LodgeID: 6, Status: bookingModel.StatusBooked},
	}

	d.booking.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	d.booking.EXPECT().GetAll(gomock.Any(), gomock.Cond(oldestFirst), gomock.Any()).Return(bookings, nil)
	d.billing.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]billingModel.Billing{{ID: "b-1", BookingID: 1}}, nil)
	d.partial.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]cancelModel.PartialCancel{{ID: "p-1", BookingID: 2}}, nil)

	res, err := svc.Booked(context.Background(), 6, gDto.QueryParams{})

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	require.Len(t, res.Entries, 2)
	assert.Equal(t, "b-1", res.Entries[0].Billings[0].ID)
	assert.Empty(t, res.Entries[0].PartialCancels)
	assert.Empty(t, res.Entries[1].Billings)
	assert.Equal(t, "p-1", res.Entries[1].PartialCancels[0].ID)
	assert.Nil(t, res.Entries[0].Cancel)
}

func TestHistoryService_Cancelled(t *testing.T) {
	d, svc := newService(t)

	d.booking.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	d.booking.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]bookingModel.Booking{{BookingID: 4, LodgeID: 6, Status: bookingModel.StatusCancel}}, nil)
	d.cancel.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]cancelModel.Cancel{{ID: "c-1", BookingID: 4, Refund: 300}}, nil)

	res, err := svc.Cancelled(context.Background(), 6, gDto.QueryParams{})

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	require.Len(t, res.Entries, 1)
	require.NotNil(t, res.Entries[0].Cancel)
	assert.InDelta(t, 300.0, res.Entries[0].Cancel.Refund, 0.001)
}

func TestHistoryService_PreBooked_Empty(t *testing.T) {
	d, svc := newService(t)

	d.booking.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)
	d.booking.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	res, err := svc.PreBooked(context.Background(), 6, gDto.QueryParams{})

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	assert.Empty(t, res.Entries)
	assert.Equal(t, 1, res.TotalPage)
}

func TestHistoryService_PartialCancelled(t *testing.T) {
	d, svc := newService(t)

	d.partial.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	d.partial.EXPECT().GetAll(gomock.Any(), gomock.Cond(oldestFirst), gomock.Any()).Return([]cancelModel.PartialCancel{
		{ID: "p-1", BookingID: 2},
		{ID: "p-2", BookingID: 9},
	}, nil)
	d.booking.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]bookingModel.Booking{{BookingID: 2, LodgeID: 6}}, nil)

	res, err := svc.PartialCancelled(context.Background(), 6, gDto.QueryParams{})

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	require.Len(t, res.Entries, 2)
	require.NotNil(t, res.Entries[0].Booking)
	assert.Equal(t, int64(2), res.Entries[0].Booking.BookingID)
	assert.Nil(t, res.Entries[1].Booking)
	assert.Equal(t, "p-2", res.Entries[1].PartialCancels[0].ID)
}

func TestHistoryService_Errors(t *testing.T) {
	d, svc := newService(t)

	d.booking.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	d.booking.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]bookingModel.Booking{{BookingID: 1}}, nil)
	d.billing.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))

	_, err := svc.Booked(context.Background(), 6, gDto.QueryParams{})

	assert.Error(t, err)
}

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
	chargeMocks "lodgehub/internal/domains/charge/mocks"
	"lodgehub/internal/domains/charge/model"
	"lodgehub/internal/domains/charge/model/dto"
	"lodgehub/internal/domains/charge/service"
	cacheMocks "lodgehub/shared/cache/mocks"
	"lodgehub/shared/constant"
	gDto "lodgehub/shared/dto"
	"lodgehub/shared/failure"
)

func newService(t *testing.T) (*chargeMocks.MockCharge, *bookingMocks.MockBooking, service.Charge) {
	ctrl := gomock.NewController(t)

	repo := chargeMocks.NewMockCharge(ctrl)
	booking := bookingMocks.NewMockBooking(ctrl)

	redis := cacheMocks.NewMockRedisCache(ctrl)
	redis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	redis.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	redis.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	redis.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return repo, booking, service.New(repo, booking, cfg, redis, mocks.NewOtel())
}

func TestChargeService_Create(t *testing.T) {
	req := dto.CreateChargeRequest{BookingID: 3, LodgeID: 6, Reason: "laundry", Amount: 150}

	tests := []struct {
		name      string
		setupMock func(repo *chargeMocks.MockCharge, booking *bookingMocks.MockBooking)
		wantCode  int
	}{
		{
			name: "success",
			setupMock: func(repo *chargeMocks.MockCharge, booking *bookingMocks.MockBooking) {
				booking.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c model.Charge) error {
					assert.Equal(t, model.StatusIncomplete, c.Status)
					assert.Equal(t, "staff-1", c.UserID)

					return nil
				})
			},
		},
		{
			name: "booking not found",
			setupMock: func(_ *chargeMocks.MockCharge, booking *bookingMocks.MockBooking) {
				booking.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: 404,
		},
		{
			name: "insert failure",
			setupMock: func(repo *chargeMocks.MockCharge, booking *bookingMocks.MockBooking) {
				booking.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, booking, svc := newService(t)
			tt.setupMock(repo, booking)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-1")
			res, err := svc.Create(ctx, req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "laundry", res.Reason)
			assert.Equal(t, model.StatusIncomplete, res.Status)
		})
	}
}

func TestChargeService_Update(t *testing.T) {
	repo, _, svc := newService(t)

	status := model.StatusComplete

	gomock.InOrder(
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Charge{ID: "c-1", LodgeID: 6, Status: model.StatusIncomplete}, nil),
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, model.StatusComplete, fields[model.FieldStatus])

			return nil
		}),
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Charge{ID: "c-1", LodgeID: 6, Status: model.StatusComplete}, nil),
	)

	res, err := svc.Update(context.Background(), "c-1", dto.UpdateChargeRequest{Status: &status})

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, model.StatusComplete, res.Status)
}

func TestChargeService_NotFound(t *testing.T) {
	repo, _, svc := newService(t)

	repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Charge{}, nil).Times(3)

	_, err := svc.Update(context.Background(), "missing", dto.UpdateChargeRequest{})
	assert.Equal(t, 404, failure.GetCode(err))

	_, err = svc.Get(context.Background(), "missing")
	assert.Equal(t, 404, failure.GetCode(err))

	err = svc.Delete(context.Background(), "missing")
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestChargeService_Delete(t *testing.T) {
	repo, _, svc := newService(t)

	repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Charge{ID: "c-1", LodgeID: 6}, nil)
	repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

	err := svc.Delete(context.Background(), "c-1")

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
}

func TestChargeService_GetAllAndGrouped(t *testing.T) {
	repo, _, svc := newService(t)

	charges := []model.Charge{
		{ID: "c-1", BookingID: 3, Reason: "minibar", Amount: 80},
		{ID: "c-2", BookingID: 3, Reason: "laundry", Amount: 20},
	}

	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(charges, nil)

	res, err := svc.GetAll(context.Background(), 6, gDto.QueryParams{Page: 1, Limit: 10})

	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)

	repo.EXPECT().GetAll(gomock.Any(), gomock.Cond(func(p gDto.QueryParams) bool {
		return p.SortBy == model.FieldBookingID && p.Limit == 0
	}), gomock.Any(), gomock.Any()).Return(charges, nil)

	grouped, err := svc.GroupedByBooking(context.Background(), 6)

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	require.Len(t, grouped, 1)
	assert.InDelta(t, 100.0, grouped[0].Total, 0.001)
}

func TestChargeService_CheckBookingIsBooked(t *testing.T) {
	tests := []struct {
		name         string
		booking      bookingModel.Booking
		wantExists   bool
		wantIsBooked bool
	}{
		{name: "missing", booking: bookingModel.Booking{}},
		{name: "booked", booking: bookingModel.Booking{BookingID: 3, Status: bookingModel.StatusBooked}, wantExists: true, wantIsBooked: true},
		{name: "billed", booking: bookingModel.Booking{BookingID: 3, Status: bookingModel.StatusBilled}, wantExists: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, booking, svc := newService(t)

			booking.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.booking, nil)

			res, err := svc.CheckBookingIsBooked(context.Background(), 6, 3)

			require.NoError(t, err)
			assert.Equal(t, tt.wantExists, res.Exists)
			assert.Equal(t, tt.wantIsBooked, res.IsBooked)
		})
	}
}

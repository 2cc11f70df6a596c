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
	billingMocks "lodgehub/internal/domains/billing/mocks"
	"lodgehub/internal/domains/billing/model"
	"lodgehub/internal/domains/billing/model/dto"
	"lodgehub/internal/domains/billing/service"
	bookingMocks "lodgehub/internal/domains/booking/mocks"
	bookingModel "lodgehub/internal/domains/booking/model"
	ledgerMocks "lodgehub/internal/domains/ledger/mocks"
	ledgerModel "lodgehub/internal/domains/ledger/model"
	ledgerDto "lodgehub/internal/domains/ledger/model/dto"
	outboxMocks "lodgehub/internal/domains/outbox/mocks"
	outboxModel "lodgehub/internal/domains/outbox/model"
	cacheMocks "lodgehub/shared/cache/mocks"
	"lodgehub/shared/constant"
	gDto "lodgehub/shared/dto"
	"lodgehub/shared/failure"
	"lodgehub/shared/timezone"
)

type deps struct {
	repo    *billingMocks.MockBilling
	booking *bookingMocks.MockBooking
	ledger  *ledgerMocks.MockLedger
	outbox  *outboxMocks.MockOutboxService
}

func newService(t *testing.T) (deps, service.Billing) {
	ctrl := gomock.NewController(t)

	d := deps{
		repo:    billingMocks.NewMockBilling(ctrl),
		booking: bookingMocks.NewMockBooking(ctrl),
		ledger:  ledgerMocks.NewMockLedger(ctrl),
		outbox:  outboxMocks.NewMockOutboxService(ctrl),
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
	cfg.Kafka.Topics.BookingBilled = "booking.billed"

	return d, service.New(d.repo, d.booking, d.ledger, d.outbox, tx, cfg, redis, mocks.NewOtel())
}

func bookedAt(checkOut time.Time) bookingModel.Booking {
	return bookingModel.Booking{
		BookingID: 12,
		LodgeID:   6,
		Status:    bookingModel.StatusBooked,
		CheckIn:   checkOut.Add(-48 * time.Hour),
		CheckOut:  checkOut,
		IDProof:   bookingModel.IDProofs{"https://cdn.example.com/id-proofs/6/a.png"},
	}
}

func TestBillingService_CreateBillingAndUpdateStatus_EarlyCheckout(t *testing.T) {
	d, svc := newService(t)

	scheduled := time.Date(2025, 6, 3, 11, 0, 0, 0, time.UTC)
	req := dto.CreateBillingRequest{
		LodgeID:        6,
		BookingID:      12,
		Reason:         []byte(`{"minibar": 150}`),
		Total:          150,
		BalancePayment: 330,
		PaymentMethod:  "UPI",
		CurrentTime:    "2025-06-02T10:00:00Z",
	}

	now, err := req.Now()
	require.NoError(t, err)

	d.booking.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookedAt(scheduled), nil)
	d.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *sqlx.Tx, b model.Billing) error {
		assert.InDelta(t, 150.0, b.Total, 0.001)
		assert.Equal(t, "UPI", b.PaymentMethod)

		return nil
	})
	d.ledger.EXPECT().PostIncomeTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *sqlx.Tx, p ledgerDto.Posting) error {
		assert.Equal(t, ledgerModel.TypeBilling, p.Type)
		assert.InDelta(t, 330.0, p.Amount, 0.001)

		return nil
	})
	d.booking.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, bookingModel.StatusBilled, fields[bookingModel.FieldStatus])
			assert.Equal(t, scheduled, fields[bookingModel.FieldOldCheckOut])
			assert.Equal(t, now, fields[bookingModel.FieldCheckOut])
			assert.Contains(t, fields, bookingModel.FieldIDProof)
			assert.Nil(t, fields[bookingModel.FieldIDProof])

			return nil
		})
	d.outbox.EXPECT().EnqueueTx(gomock.Any(), gomock.Any(), "booking.billed", "6:12", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *sqlx.Tx, _, _ string, payload any) error {
			event, ok := payload.(outboxModel.BookingBilled)
			require.True(t, ok)
			assert.Equal(t, []string{"https://cdn.example.com/id-proofs/6/a.png"}, event.IDProofs)

			return nil
		})

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-1")
	res, err := svc.CreateBillingAndUpdateStatus(ctx, req)

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	assert.True(t, res.EarlyCheckout)
	require.NotNil(t, res.OldCheckOut)
	assert.Equal(t, timezone.Format(scheduled, constant.DateFormat), *res.OldCheckOut)
	assert.Equal(t, timezone.Format(now, constant.DateFormat), res.NewCheckOut)
	require.NotNil(t, res.Billing)
}

func TestBillingService_CreateBillingAndUpdateStatus_Refund(t *testing.T) {
	d, svc := newService(t)

	scheduled := time.Date(2025, 6, 3, 11, 0, 0, 0, time.UTC)
	req := dto.CreateBillingRequest{
		LodgeID:        6,
		BookingID:      12,
		BalancePayment: -200,
		CurrentTime:    "2025-06-03T12:30:00Z",
	}

	booking := bookedAt(scheduled)
	booking.IDProof = nil

	d.booking.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(booking, nil)
	d.ledger.EXPECT().PostExpenseTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *sqlx.Tx, p ledgerDto.Posting) error {
		assert.Equal(t, ledgerModel.TypeBilling, p.Type)
		assert.InDelta(t, 200.0, p.Amount, 0.001)

		return nil
	})
	d.booking.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
			assert.NotContains(t, fields, bookingModel.FieldOldCheckOut)

			return nil
		})

	res, err := svc.CreateBillingAndUpdateStatus(context.Background(), req)

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	assert.False(t, res.EarlyCheckout)
	assert.Nil(t, res.OldCheckOut)
	assert.Nil(t, res.Billing)
}

func TestBillingService_CreateBillingAndUpdateStatus_Errors(t *testing.T) {
	req := dto.CreateBillingRequest{LodgeID: 6, BookingID: 12}

	tests := []struct {
		name      string
		req       dto.CreateBillingRequest
		setupMock func(d deps)
		wantCode  int
	}{
		{
			name:      "invalid current_time",
			req:       dto.CreateBillingRequest{LodgeID: 6, BookingID: 12, CurrentTime: "yesterday"},
			setupMock: func(deps) {},
			wantCode:  400,
		},
		{
			name: "booking not found",
			req:  req,
			setupMock: func(d deps) {
				d.booking.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookingModel.Booking{}, nil)
			},
			wantCode: 404,
		},
		{
			name: "already billed",
			req:  req,
			setupMock: func(d deps) {
				d.booking.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(bookingModel.Booking{BookingID: 12, Status: bookingModel.StatusBilled}, nil)
			},
			wantCode: 400,
		},
		{
			name: "stay not started",
			req:  dto.CreateBillingRequest{LodgeID: 6, BookingID: 12, CurrentTime: "2025-05-30T10:00:00Z"},
			setupMock: func(d deps) {
				d.booking.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(bookedAt(time.Date(2025, 6, 3, 11, 0, 0, 0, time.UTC)), nil)
			},
			wantCode: 400,
		},
		{
			name: "billed at the check-in instant",
			req:  dto.CreateBillingRequest{LodgeID: 6, BookingID: 12, CurrentTime: "2025-06-01T11:00:00Z"},
			setupMock: func(d deps) {
				d.booking.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(bookedAt(time.Date(2025, 6, 3, 11, 0, 0, 0, time.UTC)), nil)
			},
			wantCode: 400,
		},
		{
			name: "ledger failure rolls back",
			req:  dto.CreateBillingRequest{LodgeID: 6, BookingID: 12, BalancePayment: 10},
			setupMock: func(d deps) {
				d.booking.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(bookedAt(time.Now().Add(-time.Hour)), nil)
				d.ledger.EXPECT().PostIncomeTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, svc := newService(t)
			tt.setupMock(d)

			_, err := svc.CreateBillingAndUpdateStatus(context.Background(), tt.req)

			assert.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestBillingService_GetByLodge(t *testing.T) {
	d, svc := newService(t)

	d.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	d.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Billing{{ID: "b-1", LodgeID: 6, BookingID: 12}}, nil)

	res, err := svc.GetByLodge(context.Background(), 6, gDto.QueryParams{Page: 1, Limit: 10})

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Equal(t, "b-1", res.Billings[0].ID)
}

func TestBillingService_TracesFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	bookings := bookingMocks.NewMockBooking(ctrl)
	bookings.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookingModel.Booking{}, nil)

	tx := pgMocks.NewMockTransactor(ctrl)
	tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fn func(*sqlx.Tx) error) error {
		return fn(nil)
	})

	tracer := &mocks.Otel{}
	svc := service.New(billingMocks.NewMockBilling(ctrl), bookings, ledgerMocks.NewMockLedger(ctrl),
		outboxMocks.NewMockOutboxService(ctrl), tx, &config.Config{}, cacheMocks.NewMockRedisCache(ctrl), tracer)

	_, err := svc.CreateBillingAndUpdateStatus(context.Background(), dto.CreateBillingRequest{LodgeID: 6, BookingID: 12})
	require.Error(t, err)

	scope := tracer.Find(constant.OtelServiceScopeName + ".CreateBillingAndUpdateStatus")
	require.NotNil(t, scope)
	assert.True(t, scope.Ended)
	require.Len(t, scope.Errors, 1)
	assert.Equal(t, 404, failure.GetCode(scope.Errors[0]))
}

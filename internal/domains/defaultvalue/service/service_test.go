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
	dvMocks "lodgehub/internal/domains/defaultvalue/mocks"
	"lodgehub/internal/domains/defaultvalue/model"
	"lodgehub/internal/domains/defaultvalue/model/dto"
	"lodgehub/internal/domains/defaultvalue/service"
	lodgeMocks "lodgehub/internal/domains/lodge/mocks"
	cacheMocks "lodgehub/shared/cache/mocks"
	"lodgehub/shared/constant"
	gDto "lodgehub/shared/dto"
	"lodgehub/shared/failure"
)

type deps struct {
	repo  *dvMocks.MockDefaultValue
	lodge *lodgeMocks.MockLodge
	tx    *pgMocks.MockTransactor
	cache *cacheMocks.MockRedisCache
}

func newService(t *testing.T) (deps, service.DefaultValue) {
	ctrl := gomock.NewController(t)

	d := deps{
		repo:  dvMocks.NewMockDefaultValue(ctrl),
		lodge: lodgeMocks.NewMockLodge(ctrl),
		tx:    pgMocks.NewMockTransactor(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	d.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	d.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	d.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	d.tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fn func(*sqlx.Tx) error) error {
		return fn(nil)
	}).AnyTimes()

	return d, service.New(d.repo, d.lodge, d.tx, cfg, d.cache, mocks.NewOtel())
}

func TestDefaultValueService_CreateMultiple(t *testing.T) {
	req := dto.CreateDefaultValuesRequest{
		LodgeID: 6,
		Type:    model.TypeDefault,
		Values: []dto.ReasonAmount{
			{Reason: model.RentReason("Deluxe", "AC"), Amount: 500},
			{Reason: model.ReasonGST, Amount: 12},
		},
	}

	t.Run("upserts every value", func(t *testing.T) {
		d, svc := newService(t)

		d.lodge.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		d.repo.EXPECT().UpsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		err := svc.CreateMultiple(ctx, req)

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("upsert failure rolls back", func(t *testing.T) {
		d, svc := newService(t)

		d.lodge.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		d.repo.EXPECT().UpsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))

		err := svc.CreateMultiple(context.Background(), req)

		assert.Error(t, err)
	})

	t.Run("lodge not found", func(t *testing.T) {
		d, svc := newService(t)

		d.lodge.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.CreateMultiple(context.Background(), req)

		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestDefaultValueService_Lookup(t *testing.T) {
	d, svc := newService(t)

	d.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	d.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.DefaultValue{
		{LodgeID: 6, Reason: model.RentReason("Deluxe", "AC"), Type: model.TypeDefault, Amount: 500},
		{LodgeID: 6, Reason: model.RentReason("Deluxe", "AC"), Type: model.TypePeakHours, Amount: 800},
	}, nil)

	amount, found, err := svc.Lookup(context.Background(), 6, "Rent (Deluxe (AC))", model.TypePeakHours)

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	assert.True(t, found)
	assert.InDelta(t, 800, amount, 0.001)
}

func TestDefaultValueService_Update(t *testing.T) {
	amount := 650.0

	t.Run("empty request", func(t *testing.T) {
		_, svc := newService(t)

		err := svc.Update(context.Background(), dto.UpdateDefaultValueRequest{}, "dv1")

		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("updates amount", func(t *testing.T) {
		d, svc := newService(t)

		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.DefaultValue{ID: "dv1", LodgeID: 6}, nil)
		d.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, &amount, fields[model.FieldAmount])

			return nil
		})

		err := svc.Update(context.Background(), dto.UpdateDefaultValueRequest{Amount: &amount}, "dv1")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})
}

func TestDefaultValueService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		d, svc := newService(t)

		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.DefaultValue{ID: "dv1", LodgeID: 6, Amount: 500}, nil)

		res, err := svc.Get(context.Background(), "dv1")

		require.NoError(t, err)
		assert.Equal(t, int64(6), res.LodgeID)
		assert.InDelta(t, 500, res.Amount, 0.001)
	})

	t.Run("not found", func(t *testing.T) {
		d, svc := newService(t)

		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.DefaultValue{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestPriceTable(t *testing.T) {
	table := model.NewPriceTable([]model.DefaultValue{
		{Reason: model.ReasonCancel, Type: model.TypeCancelPeak, Amount: 50},
	})

	pct, ok := table.Lookup(model.ReasonCancel, model.TypeCancelPeak)
	assert.True(t, ok)
	assert.InDelta(t, 50, pct, 0.001)

	_, ok = table.Lookup(model.ReasonCancel, model.TypeCancelDefault)
	assert.False(t, ok)
}

package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodgehub/config"
	"lodgehub/infras/otel/mocks"
	lodgeMocks "lodgehub/internal/domains/lodge/mocks"
	peakMocks "lodgehub/internal/domains/peakhour/mocks"
	"lodgehub/internal/domains/peakhour/model"
	"lodgehub/internal/domains/peakhour/model/dto"
	"lodgehub/internal/domains/peakhour/service"
	cacheMocks "lodgehub/shared/cache/mocks"
	"lodgehub/shared/constant"
	gDto "lodgehub/shared/dto"
	"lodgehub/shared/failure"
)

func setup(t *testing.T) (*peakMocks.MockPeakHour, *lodgeMocks.MockLodge, *cacheMocks.MockRedisCache, service.PeakHour) {
	ctrl := gomock.NewController(t)

	mockRepo := peakMocks.NewMockPeakHour(ctrl)
	mockLodge := lodgeMocks.NewMockLodge(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return mockRepo, mockLodge, mockCache, service.New(mockRepo, mockLodge, cfg, mockCache, mocks.NewOtel())
}

func TestPeakHourService_Create(t *testing.T) {
	req := dto.CreatePeakHourRequest{LodgeID: 6, Date: "2025-12-31", Reason: "New year", Rent: 1500}

	tests := []struct {
		name      string
		req       dto.CreatePeakHourRequest
		setupMock func(repo *peakMocks.MockPeakHour, lodge *lodgeMocks.MockLodge)
		wantCode  int
	}{
		{
			name: "successful creation",
			req:  req,
			setupMock: func(repo *peakMocks.MockPeakHour, lodge *lodgeMocks.MockLodge) {
				lodge.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:      "invalid date",
			req:       dto.CreatePeakHourRequest{LodgeID: 6, Date: "31-12-2025"},
			setupMock: func(*peakMocks.MockPeakHour, *lodgeMocks.MockLodge) {},
			wantCode:  400,
		},
		{
			name: "duplicate date",
			req:  req,
			setupMock: func(repo *peakMocks.MockPeakHour, lodge *lodgeMocks.MockLodge) {
				lodge.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: 409,
		},
		{
			name: "unique violation from concurrent insert",
			req:  req,
			setupMock: func(repo *peakMocks.MockPeakHour, lodge *lodgeMocks.MockLodge) {
				lodge.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: constant.PqErrorCodeUniqueViolation})
			},
			wantCode: 409,
		},
		{
			name: "lodge not found",
			req:  req,
			setupMock: func(_ *peakMocks.MockPeakHour, lodge *lodgeMocks.MockLodge) {
				lodge.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: 404,
		},
		{
			name: "insert error",
			req:  req,
			setupMock: func(repo *peakMocks.MockPeakHour, lodge *lodgeMocks.MockLodge) {
				lodge.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, lodge, _, svc := setup(t)
			tt.setupMock(repo, lodge)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.Create(ctx, tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode == 0 {
				assert.NoError(t, err)
				assert.Equal(t, "2025-12-31", res.Date)

				return
			}

			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestPeakHourService_GetAll(t *testing.T) {
	repo, _, cache, svc := setup(t)

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.PeakHour{
		{ID: "p1", LodgeID: 6, Date: time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), Rent: 1500},
	}, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Equal(t, "2025-12-31", res.PeakHours[0].Date)
}

func TestPeakHourService_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		repo, _, _, svc := setup(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Delete(context.Background(), "p1")

		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("deleted", func(t *testing.T) {
		repo, _, _, svc := setup(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Delete(context.Background(), "p1")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})
}

func TestPeakHourService_HasPeakBetween(t *testing.T) {
	repo, _, _, svc := setup(t)

	from := time.Date(2025, 12, 30, 14, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 1, 11, 0, 0, 0, time.UTC)

	repo.EXPECT().Exist(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (bool, error) {
		where, args := filter.GetWhereClause()

		assert.Contains(t, where, "peak_hours.date >= :date_from")
		assert.Contains(t, where, "peak_hours.date <= :date_to")
		assert.Len(t, args, 3)

		return true, nil
	})

	found, err := svc.HasPeakBetween(context.Background(), 6, from, to)

	assert.NoError(t, err)
	assert.True(t, found)
}

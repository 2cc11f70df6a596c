package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodgehub/config"
	"lodgehub/infras/otel/mocks"
	lodgeMocks "lodgehub/internal/domains/lodge/mocks"
	roomMocks "lodgehub/internal/domains/room/mocks"
	"lodgehub/internal/domains/room/model"
	"lodgehub/internal/domains/room/model/dto"
	"lodgehub/internal/domains/room/service"
	cacheMocks "lodgehub/shared/cache/mocks"
	"lodgehub/shared/constant"
	gDto "lodgehub/shared/dto"
	"lodgehub/shared/failure"
)

type fixture struct {
	repo  *roomMocks.MockRoom
	lodge *lodgeMocks.MockLodge
	cache *cacheMocks.MockRedisCache
	svc   service.Room
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f := fixture{
		repo:  roomMocks.NewMockRoom(ctrl),
		lodge: lodgeMocks.NewMockLodge(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}
	f.svc = service.New(f.repo, f.lodge, cfg, f.cache, mocks.NewOtel())

	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func existingRooms() []model.Room {
	return []model.Room{
		{ID: "r1", LodgeID: 6, RoomName: "Deluxe", RoomType: "AC", RoomNumber: []string{"101", "102"}},
		{ID: "r2", LodgeID: 6, RoomName: "Suite", RoomType: "AC", RoomNumber: []string{"201"}},
	}
}

func TestRoomService_Create(t *testing.T) {
	tests := []struct {
		name     string
		req      dto.CreateRoomRequest
		setup    func(f fixture)
		wantErr  bool
		wantCode int
	}{
		{
			name: "successful creation",
			req:  dto.CreateRoomRequest{LodgeID: 6, RoomName: "Deluxe", RoomType: "AC", RoomNumber: []string{"103"}},
			setup: func(f fixture) {
				f.lodge.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().ByLodge(gomock.Any(), gomock.Any()).Return(existingRooms(), nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "lodge not found",
			req:  dto.CreateRoomRequest{LodgeID: 99, RoomName: "Deluxe", RoomType: "AC", RoomNumber: []string{"103"}},
			setup: func(f fixture) {
				f.lodge.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "room number already used",
			req:  dto.CreateRoomRequest{LodgeID: 6, RoomName: "Standard", RoomType: "Non AC", RoomNumber: []string{"201"}},
			setup: func(f fixture) {
				f.lodge.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().ByLodge(gomock.Any(), gomock.Any()).Return(existingRooms(), nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "room number listed twice",
			req:  dto.CreateRoomRequest{LodgeID: 6, RoomName: "Standard", RoomType: "Non AC", RoomNumber: []string{"301", "301"}},
			setup: func(f fixture) {
				f.lodge.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().ByLodge(gomock.Any(), gomock.Any()).Return(existingRooms(), nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "insert error",
			req:  dto.CreateRoomRequest{LodgeID: 6, RoomName: "Deluxe", RoomType: "AC", RoomNumber: []string{"103"}},
			setup: func(f fixture) {
				f.lodge.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().ByLodge(gomock.Any(), gomock.Any()).Return(nil, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := f.svc.Create(ctx, tt.req)

			time.Sleep(10 * time.Millisecond)

			if !tt.wantErr {
				assert.NoError(t, err)
				assert.NotEmpty(t, res.ID)
				assert.Equal(t, tt.req.RoomName, res.RoomName)

				return
			}

			assert.Error(t, err)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			}
		})
	}
}

func TestRoomService_GetAll(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(existingRooms(), nil)

	res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
	assert.Len(t, res.Rooms, 2)
}

func TestRoomService_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)

		_, err := f.svc.Get(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("found", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existingRooms()[0], nil)

		res, err := f.svc.Get(context.Background(), "r1")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, []string{"101", "102"}, res.RoomNumber)
	})
}

func TestRoomService_Update(t *testing.T) {
	tests := []struct {
		name     string
		req      dto.UpdateRoomRequest
		setup    func(f fixture)
		wantCode int
	}{
		{
			name:     "empty request",
			req:      dto.UpdateRoomRequest{},
			setup:    func(fixture) {},
			wantCode: 400,
		},
		{
			name: "own labels can be kept",
			req:  dto.UpdateRoomRequest{RoomNumber: []string{"101", "102", "103"}},
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existingRooms()[0], nil)
				f.repo.EXPECT().ByLodge(gomock.Any(), gomock.Any()).Return(existingRooms(), nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "label owned by another category",
			req:  dto.UpdateRoomRequest{RoomNumber: []string{"101", "201"}},
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existingRooms()[0], nil)
				f.repo.EXPECT().ByLodge(gomock.Any(), gomock.Any()).Return(existingRooms(), nil)
			},
			wantCode: 409,
		},
		{
			name: "room not found",
			req:  dto.UpdateRoomRequest{RoomName: "Royal"},
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)
			},
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			err := f.svc.Update(context.Background(), tt.req, "r1")

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode == 0 {
				assert.NoError(t, err)

				return
			}

			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestRoomService_Delete(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existingRooms()[1], nil)
	f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

	err := f.svc.Delete(context.Background(), "r2")

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
}

func TestRoomService_Catalog(t *testing.T) {
	f := newFixture(t)

	rooms := append(existingRooms(), model.Room{ID: "r3", LodgeID: 6, RoomName: "Deluxe", RoomType: "AC", RoomNumber: []string{"103"}})

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	f.repo.EXPECT().ByLodge(gomock.Any(), gomock.Any()).Return(rooms, nil)

	res, err := f.svc.Catalog(context.Background(), 6)

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Len(t, res, 2)
	assert.Equal(t, []string{"101", "102", "103"}, res[0].RoomNumbers)
}

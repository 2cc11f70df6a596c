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
	userMocks "lodgehub/internal/domains/user/mocks"
	"lodgehub/internal/domains/user/model"
	"lodgehub/internal/domains/user/model/dto"
	"lodgehub/internal/domains/user/service"
	cacheMocks "lodgehub/shared/cache/mocks"
	"lodgehub/shared/constant"
	gDto "lodgehub/shared/dto"
	"lodgehub/shared/failure"
)

type fixture struct {
	repo  *userMocks.MockUser
	cache *cacheMocks.MockRedisCache
	svc   service.User
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	f := fixture{
		repo:  userMocks.NewMockUser(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}
	f.svc = service.New(f.repo, cfg, f.cache, mocks.NewOtel())

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func asAdmin(lodgeID int64) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleAdmin)

	return context.WithValue(ctx, constant.ContextKeyLodgeID, lodgeID)
}

func asSuperAdmin() context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "root")

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleSuperAdmin)
}

func ptr[T any](v T) *T {
	return &v
}

func TestUserService_Create(t *testing.T) {
	tests := []struct {
		name     string
		ctx      context.Context
		req      dto.CreateUserRequest
		setup    func(f fixture)
		wantCode int
	}{
		{
			name: "admin adds staff to own lodge",
			ctx:  asAdmin(6),
			req:  dto.CreateUserRequest{Email: "Night@Hilltop.in", Password: "password123"},
			setup: func(f fixture) {
				f.repo.EXPECT().EmailTaken(gomock.Any(), "Night@Hilltop.in").Return(false, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Cond(func(u model.User) bool {
					return u.LodgeID == 6 && u.Level == constant.RoleStaff && u.Email == "night@hilltop.in" && u.CreatedBy == "admin-1"
				})).Return(nil)
			},
		},
		{
			name:     "admin cannot reach another lodge",
			ctx:      asAdmin(6),
			req:      dto.CreateUserRequest{LodgeID: 7, Email: "x@y.in", Password: "password123"},
			setup:    func(fixture) {},
			wantCode: 403,
		},
		{
			name:     "admin cannot mint superadmins",
			ctx:      asAdmin(6),
			req:      dto.CreateUserRequest{Email: "x@y.in", Password: "password123", Level: constant.RoleSuperAdmin},
			setup:    func(fixture) {},
			wantCode: 403,
		},
		{
			name: "superadmin accounts are detached from lodges",
			ctx:  asSuperAdmin(),
			req:  dto.CreateUserRequest{LodgeID: 9, Email: "ops@lodgehub.in", Password: "password123", Level: constant.RoleSuperAdmin},
			setup: func(f fixture) {
				f.repo.EXPECT().EmailTaken(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Cond(func(u model.User) bool {
					return u.LodgeID == 0 && u.Level == constant.RoleSuperAdmin
				})).Return(nil)
			},
		},
		{
			name: "email taken",
			ctx:  asAdmin(6),
			req:  dto.CreateUserRequest{Email: "desk@hilltop.in", Password: "password123"},
			setup: func(f fixture) {
				f.repo.EXPECT().EmailTaken(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: 409,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			err := f.svc.Create(tt.ctx, tt.req)

			if tt.wantCode == 0 {
				assert.NoError(t, err)

				return
			}

			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestUserService_Get(t *testing.T) {
	t.Run("maps the row without the hash", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "u-1").Return(model.User{ID: "u-1", LodgeID: 6, Password: "hash", Level: constant.RoleStaff, Active: true}, nil)

		res, err := f.svc.Get(context.Background(), "u-1")

		require.NoError(t, err)
		assert.Equal(t, "u-1", res.ID)
		assert.Equal(t, int64(6), res.LodgeID)
		assert.True(t, res.Active)
	})

	t.Run("missing user", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "u-9").Return(model.User{}, nil)

		_, err := f.svc.Get(context.Background(), "u-9")

		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestUserService_GetAll(t *testing.T) {
	f := newFixture(t)
	params := gDto.QueryParams{Page: 1, Limit: 2}

	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.User{{ID: "a"}, {ID: "b"}}, nil)

	res, err := f.svc.GetAll(context.Background(), params, gDto.FilterGroup{})

	require.NoError(t, err)
	assert.Len(t, res.Users, 2)
	assert.Equal(t, 3, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
}

func TestUserService_Update(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		req      dto.UpdateUserRequest
		setup    func(f fixture)
		wantCode int
	}{
		{
			name: "promotes staff",
			id:   "u-1",
			req:  dto.UpdateUserRequest{Level: ptr(constant.RoleAdmin)},
			setup: func(f fixture) {
				f.repo.EXPECT().GetByID(gomock.Any(), "u-1").Return(model.User{ID: "u-1", Level: constant.RoleStaff}, nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Cond(func(fields map[string]any) bool {
					level, ok := fields[model.FieldLevel].(*string)

					return ok && *level == constant.RoleAdmin
				}), gomock.Any()).Return(nil)
			},
		},
		{
			name:     "empty request",
			id:       "u-1",
			setup:    func(fixture) {},
			wantCode: 400,
		},
		{
			name:     "cannot deactivate self",
			id:       "admin-1",
			req:      dto.UpdateUserRequest{Active: ptr(false)},
			setup:    func(fixture) {},
			wantCode: 403,
		},
		{
			name: "may rename self",
			id:   "admin-1",
			req:  dto.UpdateUserRequest{FullName: ptr("Meera")},
			setup: func(f fixture) {
				f.repo.EXPECT().GetByID(gomock.Any(), "admin-1").Return(model.User{ID: "admin-1", Level: constant.RoleAdmin}, nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "superadmin level is fixed",
			id:   "root",
			req:  dto.UpdateUserRequest{Level: ptr(constant.RoleAdmin)},
			setup: func(f fixture) {
				f.repo.EXPECT().GetByID(gomock.Any(), "root").Return(model.User{ID: "root", Level: constant.RoleSuperAdmin}, nil)
			},
			wantCode: 403,
		},
		{
			name: "missing user",
			id:   "u-9",
			req:  dto.UpdateUserRequest{FullName: ptr("x")},
			setup: func(f fixture) {
				f.repo.EXPECT().GetByID(gomock.Any(), "u-9").Return(model.User{}, nil)
			},
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			err := f.svc.Update(asAdmin(6), tt.req, tt.id)

			if tt.wantCode == 0 {
				assert.NoError(t, err)

				return
			}

			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestUserService_Delete(t *testing.T) {
	t.Run("deletes another account", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "u-1").Return(model.User{ID: "u-1"}, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, f.svc.Delete(asAdmin(6), "u-1"))
	})

	t.Run("refuses to delete self", func(t *testing.T) {
		f := newFixture(t)

		assert.Equal(t, 403, failure.GetCode(f.svc.Delete(asAdmin(6), "admin-1")))
	})

	t.Run("repository failure", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "u-1").Return(model.User{ID: "u-1"}, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(errors.New("fk violation"))

		assert.Equal(t, 500, failure.GetCode(f.svc.Delete(asAdmin(6), "u-1")))
	})
}

func TestUpdateUserRequest_Demotes(t *testing.T) {
	assert.True(t, dto.UpdateUserRequest{Active: ptr(false)}.Demotes())
	assert.True(t, dto.UpdateUserRequest{Level: ptr(constant.RoleStaff)}.Demotes())
	assert.False(t, dto.UpdateUserRequest{Level: ptr(constant.RoleAdmin), Active: ptr(true)}.Demotes())
}

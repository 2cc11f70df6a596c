package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"lodgehub/config"
	"lodgehub/infras/jwt"
	jwtMocks "lodgehub/infras/jwt/mocks"
	"lodgehub/infras/otel/mocks"
	"lodgehub/permissions"
	"lodgehub/shared/constant"
	"lodgehub/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var testPermissions = &permissions.PermissionData{
	Endpoints: []permissions.Permission{
		{Path: "/v1/auth/login", Method: http.MethodPost, Skip: true},
		{
			Path:        "/v1/booking/{lodgeId}/{bookingId}",
			Method:      http.MethodGet,
			Permissions: []string{constant.RoleSuperAdmin, constant.RoleAdmin, constant.RoleStaff},
		},
		{
			Path:        "/v1/rooms",
			Method:      http.MethodPost,
			Permissions: []string{constant.RoleSuperAdmin, constant.RoleAdmin},
		},
	},
}

func ok(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func newRouter(authRole middleware.AuthRole, role string, lodgeID int64) http.Handler {
	router := chi.NewRouter()

	router.Group(func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				ctx := context.WithValue(req.Context(), constant.ContextKeyUserRole, role)
				ctx = context.WithValue(ctx, constant.ContextKeyLodgeID, lodgeID)

				next.ServeHTTP(w, req.WithContext(ctx))
			})
		})
		r.Use(authRole.RBAC)

		r.Route("/v1", func(r chi.Router) {
			r.Post("/auth/login", ok)
			r.Get("/booking/{lodgeId}/{bookingId}", ok)
			r.Get("/booking/{lodgeId}", ok)
			r.Route("/rooms", func(r chi.Router) {
				r.Post("/", ok)
			})
		})
	})

	return router
}

func TestAuthRole_RBAC(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		lodgeID  int64
		method   string
		path     string
		wantCode int
	}{
		{
			name:     "staff reads booking of own lodge",
			role:     constant.RoleStaff,
			lodgeID:  6,
			method:   http.MethodGet,
			path:     "/v1/booking/6/12",
			wantCode: http.StatusOK,
		},
		{
			name:     "staff reads booking of another lodge",
			role:     constant.RoleStaff,
			lodgeID:  6,
			method:   http.MethodGet,
			path:     "/v1/booking/7/12",
			wantCode: http.StatusForbidden,
		},
		{
			name:     "superadmin reads any lodge",
			role:     constant.RoleSuperAdmin,
			method:   http.MethodGet,
			path:     "/v1/booking/7/12",
			wantCode: http.StatusOK,
		},
		{
			name:     "malformed lodge id",
			role:     constant.RoleStaff,
			lodgeID:  6,
			method:   http.MethodGet,
			path:     "/v1/booking/abc/12",
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "staff cannot create rooms",
			role:     constant.RoleStaff,
			lodgeID:  6,
			method:   http.MethodPost,
			path:     "/v1/rooms",
			wantCode: http.StatusForbidden,
		},
		{
			name:     "admin creates rooms",
			role:     constant.RoleAdmin,
			lodgeID:  6,
			method:   http.MethodPost,
			path:     "/v1/rooms",
			wantCode: http.StatusOK,
		},
		{
			name:     "route without permission entry",
			role:     constant.RoleSuperAdmin,
			method:   http.MethodGet,
			path:     "/v1/booking/6",
			wantCode: http.StatusForbidden,
		},
		{
			name:     "unknown path",
			role:     constant.RoleSuperAdmin,
			method:   http.MethodGet,
			path:     "/v1/nowhere",
			wantCode: http.StatusNotFound,
		},
		{
			name:     "skipped endpoint",
			method:   http.MethodPost,
			path:     "/v1/auth/login",
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			authRole := middleware.NewAuthRoleMiddleware(jwtMocks.NewMockJWT(ctrl), mocks.NewOtel(), testPermissions, &config.Config{})

			rec := httptest.NewRecorder()
			newRouter(authRole, tt.role, tt.lodgeID).ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestAuthRole_Auth(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		header    string
		setupMock func(m *jwtMocks.MockJWT)
		wantCode  int
		wantLodge int64
	}{
		{
			name:      "skipped endpoint needs no token",
			path:      "/v1/auth/login",
			setupMock: func(*jwtMocks.MockJWT) {},
			wantCode:  http.StatusOK,
		},
		{
			name:      "missing header",
			path:      "/v1/booking/6/12",
			setupMock: func(*jwtMocks.MockJWT) {},
			wantCode:  http.StatusUnauthorized,
		},
		{
			name:   "expired token",
			path:   "/v1/booking/6/12",
			header: "Bearer expired",
			setupMock: func(m *jwtMocks.MockJWT) {
				m.EXPECT().ValidateToken(gomock.Any(), "expired", jwt.AccessToken).Return(nil, jwt.ErrExpiredToken)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:   "staff token without lodge",
			path:   "/v1/booking/6/12",
			header: "Bearer token",
			setupMock: func(m *jwtMocks.MockJWT) {
				m.EXPECT().ValidateToken(gomock.Any(), "token", jwt.AccessToken).
					Return(&jwt.Claims{UserID: "u-1", Email: "desk@lodge.test", Role: constant.RoleStaff}, nil)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:   "valid token carries lodge",
			path:   "/v1/booking/6/12",
			header: "Bearer token",
			setupMock: func(m *jwtMocks.MockJWT) {
				m.EXPECT().ValidateToken(gomock.Any(), "token", jwt.AccessToken).
					Return(&jwt.Claims{UserID: "u-1", Email: "desk@lodge.test", Role: constant.RoleStaff, LodgeID: 6}, nil)
			},
			wantCode:  http.StatusOK,
			wantLodge: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			jwtMock := jwtMocks.NewMockJWT(ctrl)
			tt.setupMock(jwtMock)

			authRole := middleware.NewAuthRoleMiddleware(jwtMock, mocks.NewOtel(), testPermissions, &config.Config{})

			var gotLodge int64

			router := chi.NewRouter()
			router.Group(func(r chi.Router) {
				r.Use(authRole.Auth)
				r.Post("/v1/auth/login", ok)
				r.Get("/v1/booking/{lodgeId}/{bookingId}", func(w http.ResponseWriter, req *http.Request) {
					gotLodge, _ = req.Context().Value(constant.ContextKeyLodgeID).(int64)
					w.WriteHeader(http.StatusOK)
				})
			})

			method := http.MethodGet
			if tt.path == "/v1/auth/login" {
				method = http.MethodPost
			}

			req := httptest.NewRequest(method, tt.path, nil)
			if tt.header != "" {
				req.Header.Set(constant.RequestHeaderAuthorization, tt.header)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantLodge, gotLodge)
		})
	}
}

func TestAuthRole_APIKey(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		header     string
		wantCode   int
		wantSkip   bool
	}{
		{name: "client without key", configured: "k-1", wantCode: http.StatusOK},
		{name: "internal caller", configured: "k-1", header: "k-1", wantCode: http.StatusOK, wantSkip: true},
		{name: "wrong key", configured: "k-1", header: "k-2", wantCode: http.StatusForbidden},
		{name: "no key configured", header: "anything", wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.App.APIKey = tt.configured

			authRole := middleware.NewAuthRoleMiddleware(jwtMocks.NewMockJWT(gomock.NewController(t)), mocks.NewOtel(), testPermissions, cfg)

			var gotSkip bool

			handler := authRole.APIKey(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				gotSkip, _ = req.Context().Value(middleware.SkipAuthKey("skip")).(bool)
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/v1/booking/6/12", nil)
			if tt.header != "" {
				req.Header.Set(constant.RequestHeaderAPIKey, tt.header)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantSkip, gotSkip)
		})
	}
}

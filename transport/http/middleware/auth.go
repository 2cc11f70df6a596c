package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"lodgehub/config"
	"lodgehub/infras/jwt"
	"lodgehub/infras/otel"
	"lodgehub/permissions"
	"lodgehub/shared"
	"lodgehub/shared/constant"
	"lodgehub/shared/failure"
	"lodgehub/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type SkipAuthKey string
type PermissionsKey string

// Auth defines the interface for authentication middleware
type Auth interface {
	Auth(http.Handler) http.Handler
	APIKey(http.Handler) http.Handler
}

// Role defines the interface for role-based access control middleware
type Role interface {
	RBAC(http.Handler) http.Handler
}

// AuthRole combines all middleware interfaces
type AuthRole interface {
	Auth
	Role
}

// authRoleImpl implements the AuthRole interface
type authRoleImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	permission *permissions.PermissionData
	cfg        *config.Config
}

// NewAuthRoleMiddleware creates a new middleware instance
func NewAuthRoleMiddleware(jwtService jwt.JWT, otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) AuthRole {
	return &authRoleImpl{
		jwtService: jwtService,
		otel:       otel,
		permission: permissions,
		cfg:        cfg,
	}
}

// routePattern resolves the chi pattern the request will be served by, or "" when none matches.
func routePattern(request *http.Request) (string, *chi.Context) {
	found := chi.NewRouteContext()

	rctx := chi.RouteContext(request.Context())
	if rctx == nil {
		return "", found
	}

	return rctx.Routes.Find(found, request.Method, request.URL.Path), found
}

func skipped(request *http.Request) bool {
	skip, _ := request.Context().Value(SkipAuthKey("skip")).(bool)

	return skip
}

// deny ends the scope with err and writes it as the response.
func deny(writer http.ResponseWriter, scope otel.Scope, err error, attributes map[string]any) {
	scope.TraceError(err)

	if len(attributes) > 0 {
		scope.SetAttributes(attributes)
	}

	scope.End()
	response.WithError(writer, err)
}

func tokenFailure(err error) error {
	switch {
	case errors.Is(err, jwt.ErrExpiredToken):
		return failure.Unauthorized("Token has expired")
	case errors.Is(err, jwt.ErrInvalidToken):
		return failure.Unauthorized("Invalid token")
	case errors.Is(err, jwt.ErrInvalidClaim):
		return failure.Unauthorized("Invalid token claims")
	default:
		return failure.Unauthorized("Token validation failed")
	}
}

// validClaims rejects tokens without an identity, and non-superadmin tokens without a lodge.
func validClaims(claims *jwt.Claims) bool {
	if claims.UserID == "" || claims.Email == "" {
		return false
	}

	return claims.Role == constant.RoleSuperAdmin || claims.LodgeID != 0
}

func withClaims(ctx context.Context, claims *jwt.Claims) context.Context {
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
	ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)
	ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

	return context.WithValue(ctx, constant.ContextKeyLodgeID, claims.LodgeID)
}

// Auth puts the bearer token's identity on the request context. Routes marked
// skip in permissions.json and API-key callers pass through.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")

		path, _ := routePattern(request)

		if skipped(request) || (m.permission != nil && m.permission.FindPermissions(path, request.Method).Skip) {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       path,
			"http.method":     request.Method,
		})

		header := request.Header.Get(constant.RequestHeaderAuthorization)
		if header == "" {
			deny(writer, scope, failure.Unauthorized("Missing authorization header"), nil)

			return
		}

		token, err := jwt.ExtractTokenFromHeader(header)
		if err != nil {
			deny(writer, scope, failure.Unauthorized("Invalid authorization header format"), nil)

			return
		}

		claims, err := m.jwtService.ValidateToken(ctx, token, jwt.AccessToken)
		if err != nil {
			deny(writer, scope, tokenFailure(err), nil)

			return
		}

		if !validClaims(claims) {
			log.Warn().Str("token_id", claims.TokenID).Str("user_id", claims.UserID).Msg("token carries incomplete claims")
			deny(writer, scope, failure.Unauthorized("Invalid token claims"), nil)

			return
		}

		scope.End()
		next.ServeHTTP(writer, request.WithContext(withClaims(request.Context(), claims)))
	})
}

// RBAC admits a role listed for the matched route and then keeps lodge-bound
// roles on their own {lodgeId}. Requires Auth first.
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "rbac.middleware")

		if skipped(request) {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		if m.permission == nil {
			deny(writer, scope, failure.ForbiddenError, map[string]any{"reason": "no_permissions"})

			return
		}

		if m.permission.Skip {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		path, routeCtx := routePattern(request)
		permission, listed := m.permission.Lookup(path, request.Method)

		// unmatched paths fall through to chi's 404
		if !listed && path != "" {
			deny(writer, scope, failure.ForbiddenError, map[string]any{"http.path": path, "reason": "route_not_listed"})

			return
		}

		if permission.Skip {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

		if len(permission.Permissions) > 0 && !permission.Allows(role) {
			deny(writer, scope, failure.ForbiddenError, map[string]any{
				"user_role":     role,
				"allowed_roles": permission.Permissions,
				"reason":        "role_not_allowed",
			})

			return
		}

		if err := checkLodgeScope(ctx, routeCtx.URLParam(constant.RequestParamLodgeID)); err != nil {
			deny(writer, scope, err, map[string]any{"user_role": role, "reason": "lodge_not_allowed"})

			return
		}

		scope.End()
		next.ServeHTTP(writer, request)
	})
}

// checkLodgeScope keeps lodge staff on routes of their own lodge.
func checkLodgeScope(ctx context.Context, lodgeParam string) error {
	if lodgeParam == "" {
		return nil
	}

	lodgeID, err := shared.ConvertStringToInt64(lodgeParam)
	if err != nil {
		return failure.BadRequestFromString("invalid lodge id") // nolint:wrapcheck
	}

	return shared.CheckLodgeAccess(ctx, lodgeID) // nolint:wrapcheck
}

// APIKey lets internal callers skip Auth and RBAC. Requests without the
// header continue as ordinary clients; a wrong key is refused.
func (m *authRoleImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "api_key.middleware")

		key := request.Header.Get(constant.RequestHeaderAPIKey)
		if key == "" {
			scope.SetAttribute("http.source", "client")
			scope.End()
			next.ServeHTTP(writer, request.WithContext(context.WithValue(request.Context(), SkipAuthKey("skip"), false)))

			return
		}

		scope.SetAttribute("http.source", "internal")

		expected := m.cfg.App.APIKey
		if expected == "" || subtle.ConstantTimeCompare([]byte(key), []byte(expected)) != 1 {
			deny(writer, scope, failure.ForbiddenError, map[string]any{"reason": "bad_api_key"})

			return
		}

		scope.End()
		next.ServeHTTP(writer, request.WithContext(context.WithValue(request.Context(), SkipAuthKey("skip"), true)))
	})
}

package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission lists the roles allowed on one route pattern. Skip marks public routes.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

func (p Permission) Allows(role string) bool {
	return slices.Contains(p.Permissions, role)
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`

	once  sync.Once
	index map[string]Permission
}

// routeKey ignores a trailing slash, so "/v1/rooms/" and "/v1/rooms" share an entry.
func routeKey(method, path string) string {
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}

	return strings.ToUpper(method) + " " + path
}

// Lookup finds the entry for a chi route pattern.
func (r *PermissionData) Lookup(path, method string) (Permission, bool) {
	r.once.Do(func() {
		r.index = make(map[string]Permission, len(r.Endpoints))

		for _, endpoint := range r.Endpoints {
			key := routeKey(endpoint.Method, endpoint.Path)
			if _, dup := r.index[key]; dup {
				log.Warn().Str("route", key).Msg("Duplicate permission entry, keeping the first")

				continue
			}

			r.index[key] = endpoint
		}
	})

	permission, ok := r.index[routeKey(method, path)]

	return permission, ok
}

func (r *PermissionData) FindPermissions(path, method string) Permission {
	permission, _ := r.Lookup(path, method)

	return permission
}

func Get() *PermissionData {
	permissions := &PermissionData{}

	if err := json.Unmarshal(permissionsData, permissions); err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return permissions
}

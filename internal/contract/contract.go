// Package contract is the single source of truth for the HTTP surface.
// Each operation names its method and path template once; route
// registration and the typed client both derive from these definitions so
// the two sides cannot drift apart. Request and response shapes live in
// the models package and are shared the same way.
package contract

import (
	"strings"
)

// Operation describes one logical API operation. Path templates use
// :param placeholders, matching the wire-level documentation.
type Operation struct {
	Method string
	Path   string
}

var (
	AuthLogin  = Operation{Method: "POST", Path: "/api/auth/login"}
	AuthUser   = Operation{Method: "GET", Path: "/api/auth/user"}
	AuthLogout = Operation{Method: "GET", Path: "/api/logout"}

	AdminsMe     = Operation{Method: "GET", Path: "/api/admins/me"}
	AdminsList   = Operation{Method: "GET", Path: "/api/admins"}
	AdminsCreate = Operation{Method: "POST", Path: "/api/admins"}
	AdminsUpdate = Operation{Method: "PATCH", Path: "/api/admins/:id"}

	HomeFeatured = Operation{Method: "GET", Path: "/api/home/featured"}

	ProjectsList              = Operation{Method: "GET", Path: "/api/projects"}
	ProjectsGet               = Operation{Method: "GET", Path: "/api/projects/:id"}
	ProjectsCreate            = Operation{Method: "POST", Path: "/api/projects"}
	ProjectsUpdate            = Operation{Method: "PATCH", Path: "/api/projects/:id"}
	ProjectsUpsertTranslation = Operation{Method: "PUT", Path: "/api/projects/:id/translations/:lang"}

	EventsList              = Operation{Method: "GET", Path: "/api/events"}
	EventsGet               = Operation{Method: "GET", Path: "/api/events/:id"}
	EventsCreate            = Operation{Method: "POST", Path: "/api/events"}
	EventsUpdate            = Operation{Method: "PATCH", Path: "/api/events/:id"}
	EventsUpsertTranslation = Operation{Method: "PUT", Path: "/api/events/:id/translations/:lang"}

	UploadsRequestURL = Operation{Method: "POST", Path: "/api/uploads/request-url"}
	Translate         = Operation{Method: "POST", Path: "/api/translate"}
)

// All lists every operation, mostly for tests that sweep the table.
var All = []Operation{
	AuthLogin, AuthUser, AuthLogout,
	AdminsMe, AdminsList, AdminsCreate, AdminsUpdate,
	HomeFeatured,
	ProjectsList, ProjectsGet, ProjectsCreate, ProjectsUpdate, ProjectsUpsertTranslation,
	EventsList, EventsGet, EventsCreate, EventsUpdate, EventsUpsertTranslation,
	UploadsRequestURL, Translate,
}

// URL substitutes :param placeholders with the given values. Params with
// no matching placeholder are ignored, mirroring the client-side builder.
func (op Operation) URL(params map[string]string) string {
	url := op.Path
	for key, value := range params {
		url = strings.ReplaceAll(url, ":"+key, value)
	}
	return url
}

// ChiPattern rewrites :param placeholders to chi's {param} form for route
// registration.
func (op Operation) ChiPattern() string {
	if !strings.Contains(op.Path, ":") {
		return op.Path
	}
	parts := strings.Split(op.Path, "/")
	for i, p := range parts {
		if strings.HasPrefix(p, ":") {
			parts[i] = "{" + p[1:] + "}"
		}
	}
	return strings.Join(parts, "/")
}

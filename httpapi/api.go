package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/poiesic/servicefinder/audit"
	"github.com/poiesic/servicefinder/auth"
	"github.com/poiesic/servicefinder/catalog"
	"github.com/poiesic/servicefinder/search"
	"github.com/poiesic/servicefinder/storage"
)

// API is the HTTP layer.
type API struct {
	mux       *http.ServeMux
	searcher  *search.Searcher
	explainer *search.Explainer
	writer    *catalog.Writer
	services  storage.ServiceStore
	orgs      storage.OrganizationStore
	users     storage.UserStore
	sessions  *auth.SessionStore
	auditLog  audit.Log
	logger    *slog.Logger
	version   string
}

// Option configures the API.
type Option func(*API)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *API) {
		if logger == nil {
			logger = slog.Default()
		}
		a.logger = logger
	}
}

// WithAuditLog sets the audit sink. Default discards entries.
func WithAuditLog(log audit.Log) Option {
	return func(a *API) {
		if log == nil {
			log = audit.NopLog()
		}
		a.auditLog = log
	}
}

// WithVersion sets the version string reported by /healthz.
func WithVersion(version string) Option {
	return func(a *API) {
		a.version = version
	}
}

// New wires the routes.
func New(
	searcher *search.Searcher,
	explainer *search.Explainer,
	writer *catalog.Writer,
	services storage.ServiceStore,
	orgs storage.OrganizationStore,
	users storage.UserStore,
	sessions *auth.SessionStore,
	opts ...Option,
) *API {
	a := &API{
		mux:       http.NewServeMux(),
		searcher:  searcher,
		explainer: explainer,
		writer:    writer,
		services:  services,
		orgs:      orgs,
		users:     users,
		sessions:  sessions,
		auditLog:  audit.NopLog(),
		logger:    slog.Default(),
		version:   "dev",
	}
	for _, opt := range opts {
		opt(a)
	}

	// Public endpoints.
	a.mux.HandleFunc("GET /healthz", a.handleHealthz)
	a.mux.HandleFunc("POST /api/search", a.handleSearch)
	a.mux.HandleFunc("POST /api/explain-match", a.handleExplainMatch)

	// Sessions.
	a.mux.HandleFunc("POST /api/login", a.handleLogin)
	a.mux.HandleFunc("POST /api/logout", a.handleLogout)
	a.mux.HandleFunc("GET /api/me", a.withSession(a.handleMe))

	// Catalog admin.
	a.mux.HandleFunc("GET /api/services", a.handleListServices)
	a.mux.HandleFunc("GET /api/services/{id}", a.handleGetService)
	a.mux.HandleFunc("POST /api/services", a.withSession(a.handleCreateService))
	a.mux.HandleFunc("PUT /api/services/{id}", a.withSession(a.handleUpdateService))
	a.mux.HandleFunc("DELETE /api/services/{id}", a.withSession(a.handleDeleteService))

	// Organizations.
	a.mux.HandleFunc("GET /api/organizations", a.handleListOrganizations)
	a.mux.HandleFunc("POST /api/organizations", a.withSuperAdmin(a.handleCreateOrganization))
	a.mux.HandleFunc("DELETE /api/organizations/{code}", a.withSuperAdmin(a.handleDeleteOrganization))

	// Users (superadmin only).
	a.mux.HandleFunc("GET /api/users", a.withSuperAdmin(a.handleListUsers))
	a.mux.HandleFunc("POST /api/users", a.withSuperAdmin(a.handleCreateUser))
	a.mux.HandleFunc("DELETE /api/users/{id}", a.withSuperAdmin(a.handleDeleteUser))

	a.mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	return a
}

// Handler returns the full middleware-wrapped handler.
func (a *API) Handler() http.Handler {
	var h http.Handler = a.mux
	h = MaxBodyBytes(h, 1<<20)
	h = CORS(h)
	h = ClientIP(h)
	h = Logging(h, a.logger)
	return h
}

func (a *API) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": "servicefinder",
		"version": a.version,
	})
}

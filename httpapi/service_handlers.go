package httpapi

import (
	"net/http"
	"strings"

	"github.com/poiesic/servicefinder/auth"
	"github.com/poiesic/servicefinder/core"
)

type serviceResponse struct {
	Service          *core.Service `json:"service"`
	EmbeddingUpdated bool          `json:"embeddingUpdated"`
}

func (a *API) handleListServices(w http.ResponseWriter, r *http.Request) {
	var (
		services []*core.Service
		err      error
	)
	if org := strings.TrimSpace(r.URL.Query().Get("organization")); org != "" {
		services, err = a.services.ListServicesByOrganization(r.Context(), org)
	} else {
		services, err = a.services.ListServices(r.Context())
	}
	if err != nil {
		handleDomainError(w, err)
		return
	}
	// Recent writes mask what the stores have not surfaced yet.
	services = a.writer.Overlay().Merge(services)
	writeJSON(w, http.StatusOK, map[string]any{"services": services})
}

func (a *API) handleGetService(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if service, ok := a.writer.Overlay().Get(id); ok {
		writeJSON(w, http.StatusOK, map[string]any{"service": service})
		return
	}
	service, err := a.services.GetService(r.Context(), id)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"service": service})
}

func (a *API) handleCreateService(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.ActorFromContext(r.Context())

	var service core.Service
	if err := decodeJSON(w, r, &service); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, embeddingUpdated, err := a.writer.Create(r.Context(), actor, &service)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, serviceResponse{Service: created, EmbeddingUpdated: embeddingUpdated})
}

func (a *API) handleUpdateService(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.ActorFromContext(r.Context())

	var service core.Service
	if err := decodeJSON(w, r, &service); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	service.Id = r.PathValue("id")

	updated, embeddingUpdated, err := a.writer.Update(r.Context(), actor, &service)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, serviceResponse{Service: updated, EmbeddingUpdated: embeddingUpdated})
}

func (a *API) handleDeleteService(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.ActorFromContext(r.Context())

	if err := a.writer.Delete(r.Context(), actor, r.PathValue("id")); err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": true})
}

package httpapi

import (
	"net/http"

	"github.com/poiesic/servicefinder/auth"
	"github.com/poiesic/servicefinder/core"
)

func (a *API) handleListOrganizations(w http.ResponseWriter, r *http.Request) {
	orgs, err := a.orgs.ListOrganizations(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"organizations": orgs})
}

func (a *API) handleCreateOrganization(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.ActorFromContext(r.Context())

	var org core.Organization
	if err := decodeJSON(w, r, &org); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := core.ValidateOrganization(&org); err != nil {
		handleDomainError(w, err)
		return
	}
	if err := a.orgs.PutOrganization(r.Context(), &org); err != nil {
		handleDomainError(w, err)
		return
	}
	a.auditLog.Record(r.Context(), core.AuditEntry{
		Actor:  actor.Email,
		Action: "put_organization",
		Ids:    []string{org.Code},
	})
	writeJSON(w, http.StatusCreated, map[string]any{"organization": org})
}

func (a *API) handleDeleteOrganization(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.ActorFromContext(r.Context())
	code := r.PathValue("code")

	if err := a.orgs.DeleteOrganization(r.Context(), code); err != nil {
		handleDomainError(w, err)
		return
	}
	a.auditLog.Record(r.Context(), core.AuditEntry{
		Actor:  actor.Email,
		Action: "delete_organization",
		Ids:    []string{code},
	})
	writeJSON(w, http.StatusOK, map[string]any{"deleted": true})
}

package httpapi

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/poiesic/servicefinder/auth"
	"github.com/poiesic/servicefinder/core"
)

type createUserRequest struct {
	Email               string `json:"email"`
	Password            string `json:"password"`
	OrganizationCode    string `json:"organizationCode"`
	SuperAdmin          bool   `json:"superAdmin"`
	ForcePasswordChange bool   `json:"forcePasswordChange"`
}

// userView is a User without its password hash.
type userView struct {
	Id                  string `json:"id"`
	Email               string `json:"email"`
	OrganizationCode    string `json:"organizationCode"`
	SuperAdmin          bool   `json:"superAdmin"`
	ForcePasswordChange bool   `json:"forcePasswordChange"`
}

func viewOf(user *core.User) userView {
	return userView{
		Id:                  user.Id,
		Email:               user.Email,
		OrganizationCode:    user.OrganizationCode,
		SuperAdmin:          user.SuperAdmin,
		ForcePasswordChange: user.ForcePasswordChange,
	}
}

func (a *API) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := a.users.ListUsers(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}
	views := make([]userView, len(users))
	for i, user := range users {
		views[i] = viewOf(user)
	}
	writeJSON(w, http.StatusOK, map[string]any{"users": views})
}

func (a *API) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.ActorFromContext(r.Context())

	var req createUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		writeError(w, http.StatusBadRequest, "password is required")
		return
	}

	user := &core.User{
		Id:                  uuid.NewString(),
		Email:               req.Email,
		PasswordHash:        hash,
		OrganizationCode:    req.OrganizationCode,
		SuperAdmin:          req.SuperAdmin,
		ForcePasswordChange: req.ForcePasswordChange,
	}
	if err := core.ValidateUser(user); err != nil {
		handleDomainError(w, err)
		return
	}
	if err := a.users.PutUser(r.Context(), user); err != nil {
		handleDomainError(w, err)
		return
	}
	a.auditLog.Record(r.Context(), core.AuditEntry{
		Actor:  actor.Email,
		Action: "create_user",
		Ids:    []string{user.Id},
	})
	writeJSON(w, http.StatusCreated, map[string]any{"user": viewOf(user)})
}

func (a *API) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.ActorFromContext(r.Context())
	id := r.PathValue("id")

	if err := a.users.DeleteUser(r.Context(), id); err != nil {
		handleDomainError(w, err)
		return
	}
	a.sessions.DeleteForUser(id)
	a.auditLog.Record(r.Context(), core.AuditEntry{
		Actor:  actor.Email,
		Action: "delete_user",
		Ids:    []string{id},
	})
	writeJSON(w, http.StatusOK, map[string]any{"deleted": true})
}

package httpapi

import (
	"net/http"
	"strings"

	"github.com/poiesic/servicefinder/auth"
	"github.com/poiesic/servicefinder/core"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	User                userView `json:"user"`
	ForcePasswordChange bool     `json:"forcePasswordChange"`
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := a.users.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		// Same response for unknown email and bad password.
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if err := auth.VerifyPassword(user.PasswordHash, req.Password); err != nil {
		a.auditLog.Record(r.Context(), core.AuditEntry{
			Actor:  req.Email,
			Action: "login_failed",
		})
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	session := a.sessions.Create(auth.Actor{
		UserID:     user.Id,
		Email:      user.Email,
		OrgCode:    user.OrganizationCode,
		SuperAdmin: user.SuperAdmin,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.Expiry,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	a.auditLog.Record(r.Context(), core.AuditEntry{
		Actor:  user.Email,
		Action: "login",
		Ids:    []string{user.Id},
	})
	writeJSON(w, http.StatusOK, loginResponse{
		User:                viewOf(user),
		ForcePasswordChange: user.ForcePasswordChange,
	})
}

func (a *API) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.SessionCookie); err == nil {
		a.sessions.Delete(cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	writeJSON(w, http.StatusOK, map[string]any{"loggedOut": true})
}

func (a *API) handleMe(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.ActorFromContext(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"id":               actor.UserID,
		"email":            actor.Email,
		"organizationCode": actor.OrgCode,
		"superAdmin":       actor.SuperAdmin,
	})
}

package handler

import (
	"bank-admin-api/common"
	"bank-admin-api/logger"
	"bank-admin-api/service"
	"bank-admin-api/web"
	"net/http"
)

// SessionCookieName is the HTTP-only cookie carrying the admin session token.
const SessionCookieName = "admin_session"

// AdminHandler serves the admin pages and the session login/logout flow.
type AdminHandler struct {
	auth *service.AuthService
}

func NewAdminHandler(auth *service.AuthService) *AdminHandler {
	return &AdminHandler{auth: auth}
}

// LoginPage renders the admin login form.
func (h *AdminHandler) LoginPage(w http.ResponseWriter, r *http.Request) *common.AppError {
	return h.renderLogin(w, http.StatusOK, "")
}

// Login handles the login form post. On success it stores the session token
// server-side, sets the HTTP-only cookie and redirects to the dashboard.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) *common.AppError {
	if err := r.ParseForm(); err != nil {
		return common.NewInvalidArgumentError("Invalid login form", err)
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	token, err := h.auth.Login(r.Context(), username, password)
	if err != nil {
		if err == service.ErrInvalidCredentials {
			return h.renderLogin(w, http.StatusUnauthorized, "Invalid credentials")
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not log in", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(h.auth.SessionTTL().Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
	return nil
}

// Logout invalidates the session token and clears the cookie.
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) *common.AppError {
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		if err := h.auth.Logout(r.Context(), cookie.Value); err != nil {
			logger.Log.WithError(err).Warn("Failed to invalidate session token on logout")
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
	return nil
}

// Dashboard renders the admin dashboard shell. Session checking happens in
// SessionMiddleware before this runs.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) *common.AppError {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := web.Templates.ExecuteTemplate(w, "admin.html", nil); err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not render admin page", err)
	}
	return nil
}

func (h *AdminHandler) renderLogin(w http.ResponseWriter, status int, errorMessage string) *common.AppError {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	data := struct{ Error string }{Error: errorMessage}
	if err := web.Templates.ExecuteTemplate(w, "admin_login.html", data); err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not render login page", err)
	}
	return nil
}

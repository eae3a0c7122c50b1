package handler

import (
	"bank-admin-api/service"
	"net/http"
)

// SessionMiddleware guards the admin pages: requests without a valid session
// cookie are redirected to the login page.
func SessionMiddleware(auth *service.AuthService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil || !auth.Authenticate(r.Context(), cookie.Value) {
			http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	})
}

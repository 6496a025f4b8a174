package middleware

import (
	"context"
	"net/http"

	"bewear/internal/domain"
	"bewear/internal/repository"
)

const (
	// UserContextKey is the context key for the authenticated user.
	UserContextKey contextKey = "user"

	sessionCookieName = "bewear_session"
)

// WithUser resolves the session cookie to a user and stores it in the
// request context. Authentication is not required here: an absent or
// expired session simply continues anonymous.
func WithUser(repo repository.Querier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(sessionCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			user, err := repo.GetUserBySessionToken(r.Context(), cookie.Value)
			if err != nil {
				// Expired or unknown session, continue without user.
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), UserContextKey, &user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects anonymous requests. API calls get a 401 JSON body;
// page requests are redirected to the login screen with a return target.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetUser(r.Context()) == nil {
			if acceptsJSON(r) {
				respondUnauthorized(w, r)
				return
			}

			returnTo := r.URL.Path
			if r.URL.RawQuery != "" {
				returnTo += "?" + r.URL.RawQuery
			}
			http.Redirect(w, r, "/login?return_to="+returnTo, http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// GetUser retrieves the authenticated user from the request context.
// Returns nil for anonymous requests.
func GetUser(ctx context.Context) *domain.User {
	user, ok := ctx.Value(UserContextKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}

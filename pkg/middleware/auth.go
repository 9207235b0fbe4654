package middleware

import (
	"net/http"

	"labour-market/internal/data/entity"
	"labour-market/internal/data/repository"
	"labour-market/pkg/utils"

	"go.uber.org/zap"
)

// SessionCookieName holds the session token UUID issued at login.
const SessionCookieName = "session_token"

// resolveSession turns the session cookie into a user. A nil user with a
// nil error means the request is simply not authenticated.
func resolveSession(
	r *http.Request,
	sessions repository.SessionRepository,
	users repository.UserRepository,
) (*entity.User, string, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil, "", nil
	}

	session, err := sessions.FindValidSession(r.Context(), cookie.Value)
	if err != nil {
		return nil, "", err
	}
	if session == nil {
		return nil, "", nil
	}

	user, err := users.FindByID(r.Context(), session.UserID)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", nil
	}

	return user, cookie.Value, nil
}

// AuthSession guards browser-facing routes. Unauthenticated requests are
// sent back to the login page with a notice and no further detail.
func AuthSession(sessions repository.SessionRepository, users repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, token, err := resolveSession(r, sessions, users)
			if err != nil {
				logger.Error("Failed to validate session",
					zap.Error(err),
					zap.String("path", r.URL.Path))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if user == nil {
				utils.RedirectWithFlash(w, r, "/login", "Please log in to continue.")
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.ID, string(user.Role))
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AuthSessionAPI is the JSON flavor used by the chat endpoint, which
// answers with an error payload instead of a redirect.
func AuthSessionAPI(sessions repository.SessionRepository, users repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, token, err := resolveSession(r, sessions, users)
			if err != nil {
				logger.Error("Failed to validate session",
					zap.Error(err),
					zap.String("path", r.URL.Path))
				writeAPIError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			if user == nil {
				logger.Warn("Unauthenticated API request", zap.String("path", r.URL.Path))
				writeAPIError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.ID, string(user.Role))
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a route on the role established by AuthSession. A
// wrong role gets the same silent redirect as a missing session.
func RequireRole(role entity.UserRole, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			current, ok := utils.GetRoleFromContext(r.Context())
			if !ok || current != string(role) {
				logger.Warn("Role check failed",
					zap.String("required", string(role)),
					zap.String("path", r.URL.Path))
				utils.RedirectWithFlash(w, r, "/login", "Please log in to continue.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeAPIError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write([]byte(`{"error":"` + message + `"}`))
}

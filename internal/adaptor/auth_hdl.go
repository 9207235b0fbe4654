package adaptor

import (
	"net/http"
	"strings"
	"time"

	"labour-market/internal/dto/request"
	"labour-market/internal/usecase"
	"labour-market/pkg/middleware"
	"labour-market/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// ShowSignup handles GET /signup
func (h *AuthHandler) ShowSignup(w http.ResponseWriter, r *http.Request) {
	message := utils.PopFlash(w, r)
	if message == "" {
		message = "Sign up"
	}

	utils.ResponseSuccess(w, message, map[string]any{
		"fields": []string{"username", "password", "role"},
		"roles":  []string{"customer", "labourer"},
	})
}

// Signup handles POST /signup (form body)
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		utils.RedirectWithFlash(w, r, "/signup", "Invalid form submission.")
		return
	}

	req := request.SignupRequest{
		Username: strings.TrimSpace(r.PostFormValue("username")),
		Password: r.PostFormValue("password"),
		Role:     r.PostFormValue("role"),
	}

	if _, err := h.service.Register(r.Context(), &req); err != nil {
		h.log.Warn("Signup failed", zap.Error(err), zap.String("username", req.Username))
		utils.RedirectWithFlash(w, r, "/signup", signupNotice(err))
		return
	}

	utils.RedirectWithFlash(w, r, "/login", "Account created successfully! Please login.")
}

// ShowLogin handles GET /login
func (h *AuthHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	message := utils.PopFlash(w, r)
	if message == "" {
		message = "Log in"
	}

	utils.ResponseSuccess(w, message, map[string]any{
		"fields": []string{"username", "password"},
	})
}

// Login handles POST /login (form body)
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		utils.RedirectWithFlash(w, r, "/login", "Invalid form submission.")
		return
	}

	req := request.LoginRequest{
		Username: strings.TrimSpace(r.PostFormValue("username")),
		Password: r.PostFormValue("password"),
	}

	auth, err := h.service.Login(r.Context(), &req)
	if err != nil {
		// One generic notice regardless of which check failed
		utils.RedirectWithFlash(w, r, "/login", "Invalid username or password.")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    auth.Token,
		Path:     "/",
		Expires:  auth.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	utils.RedirectWithFlash(w, r, "/dashboard", "Logged in successfully!")
}

// Logout handles GET /logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil && cookie.Value != "" {
		if err := h.service.Logout(r.Context(), cookie.Value); err != nil {
			// Still clear the cookie; nothing actionable for the user
			h.log.Warn("Logout failed", zap.Error(err))
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
	})

	utils.RedirectWithFlash(w, r, "/", "Logged out successfully!")
}

// signupNotice keeps actionable store errors visible on the form while
// hiding internal ones.
func signupNotice(err error) string {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "already taken"):
		return "That username is already taken."
	case strings.Contains(msg, "invalid role"):
		return "Please choose a valid role."
	case strings.Contains(msg, "validation failed"):
		return msg
	default:
		return "Could not create the account. Please try again."
	}
}

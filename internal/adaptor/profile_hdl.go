package adaptor

import (
	"net/http"
	"strings"

	"labour-market/internal/dto/request"
	"labour-market/internal/usecase"
	"labour-market/pkg/utils"

	"go.uber.org/zap"
)

type ProfileHandler struct {
	service usecase.ProfileService
	log     *zap.Logger
}

func NewProfileHandler(service usecase.ProfileService, log *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		log:     log.With(zap.String("handler", "profile")),
	}
}

// Show handles GET /profile (labourer only)
func (h *ProfileHandler) Show(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RedirectWithFlash(w, r, "/login", "Please log in to continue.")
		return
	}

	profile, err := h.service.GetOrCreate(r.Context(), userID)
	if err != nil {
		h.log.Error("Failed to load profile view", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	message := utils.PopFlash(w, r)
	if message == "" {
		message = "Your profile"
	}

	utils.ResponseSuccess(w, message, profile)
}

// Update handles POST /profile (labourer only, form body)
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RedirectWithFlash(w, r, "/login", "Please log in to continue.")
		return
	}

	if err := r.ParseForm(); err != nil {
		utils.RedirectWithFlash(w, r, "/profile", "Invalid form submission.")
		return
	}

	req := request.UpdateProfileRequest{
		Skills:       strings.TrimSpace(r.PostFormValue("skills")),
		PhoneNumber:  strings.TrimSpace(r.PostFormValue("phone_number")),
		Experience:   strings.TrimSpace(r.PostFormValue("experience")),
		Availability: strings.TrimSpace(r.PostFormValue("availability")),
		HourlyRate:   utils.ParseFloat(r.PostFormValue("hourly_rate"), 0),
	}

	if _, err := h.service.Update(r.Context(), userID, &req); err != nil {
		h.log.Warn("Profile update failed", zap.Error(err), zap.String("user_id", userID.String()))
		notice := "Could not update the profile."
		if strings.Contains(err.Error(), "validation failed") {
			notice = err.Error()
		}
		utils.RedirectWithFlash(w, r, "/profile", notice)
		return
	}

	utils.RedirectWithFlash(w, r, "/profile", "Profile updated successfully!")
}

// Search handles GET /search?service=&location= (customer only).
// The location term is matched against availability text.
func (h *ProfileHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	service := query.Get("service")
	location := query.Get("location")

	results, err := h.service.Search(r.Context(), service, location)
	if err != nil {
		h.log.Error("Search failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "Search results", results)
}

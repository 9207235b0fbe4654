package adaptor

import (
	"net/http"

	"labour-market/internal/data/entity"
	"labour-market/internal/dto/response"
	"labour-market/internal/usecase"
	"labour-market/pkg/utils"

	"go.uber.org/zap"
)

type DashboardHandler struct {
	profiles usecase.ProfileService
	bookings usecase.BookingService
	log      *zap.Logger
}

func NewDashboardHandler(profiles usecase.ProfileService, bookings usecase.BookingService, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		profiles: profiles,
		bookings: bookings,
		log:      log.With(zap.String("handler", "dashboard")),
	}
}

// Dashboard handles GET /dashboard (protected). Customers see the labourer
// listing, labourers see their incoming bookings.
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RedirectWithFlash(w, r, "/login", "Please log in to continue.")
		return
	}

	role, _ := utils.GetRoleFromContext(r.Context())

	view := response.DashboardResponse{Role: entity.UserRole(role)}

	switch entity.UserRole(role) {
	case entity.RoleCustomer:
		labourers, err := h.profiles.ListAll(r.Context())
		if err != nil {
			h.log.Error("Failed to load customer dashboard", zap.Error(err))
			utils.ResponseInternalError(w, "Internal server error")
			return
		}
		view.Labourers = labourers

	case entity.RoleLabourer:
		bookings, err := h.bookings.ListForLabourer(r.Context(), userID)
		if err != nil {
			h.log.Error("Failed to load labourer dashboard", zap.Error(err))
			utils.ResponseInternalError(w, "Internal server error")
			return
		}
		view.Bookings = bookings

	default:
		utils.RedirectWithFlash(w, r, "/login", "Please log in to continue.")
		return
	}

	message := utils.PopFlash(w, r)
	if message == "" {
		message = "Dashboard"
	}

	utils.ResponseSuccess(w, message, view)
}

package adaptor

import (
	"net/http"
	"strings"

	"labour-market/internal/usecase"
	"labour-market/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// Create handles POST /book/{labourerId} (customer only)
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	customerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RedirectWithFlash(w, r, "/login", "Please log in to continue.")
		return
	}

	labourerID, err := uuid.Parse(chi.URLParam(r, "labourerId"))
	if err != nil {
		utils.RedirectWithFlash(w, r, "/dashboard", "Labourer not found.")
		return
	}

	if _, err := h.service.Create(r.Context(), customerID, labourerID); err != nil {
		h.log.Warn("Create booking failed",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
			zap.String("labourer_id", labourerID.String()),
		)
		notice := "Could not create the booking."
		if strings.Contains(err.Error(), "not found") {
			notice = "Labourer not found."
		}
		utils.RedirectWithFlash(w, r, "/dashboard", notice)
		return
	}

	utils.RedirectWithFlash(w, r, "/dashboard", "Booking request sent!")
}

// UpdateStatus handles GET /update_booking/{bookingId}/{status} (labourer
// only; status is a path literal, accepted or rejected)
func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	labourerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RedirectWithFlash(w, r, "/login", "Please log in to continue.")
		return
	}

	bookingID, err := uuid.Parse(chi.URLParam(r, "bookingId"))
	if err != nil {
		utils.RedirectWithFlash(w, r, "/dashboard", "Booking not found.")
		return
	}

	status := chi.URLParam(r, "status")

	if _, err := h.service.SetStatus(r.Context(), labourerID, bookingID, status); err != nil {
		h.log.Warn("Update booking status failed",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", status),
		)
		// Same notice for a missing booking and someone else's booking
		utils.RedirectWithFlash(w, r, "/dashboard", "Could not update the booking.")
		return
	}

	utils.RedirectWithFlash(w, r, "/dashboard", "Booking "+status+"!")
}

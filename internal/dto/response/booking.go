package response

import (
	"time"

	"labour-market/internal/data/entity"
)

type BookingResponse struct {
	ID         string               `json:"id"`
	CustomerID string               `json:"customer_id"`
	LabourerID string               `json:"labourer_id"`
	Status     entity.BookingStatus `json:"status"`
	CreatedAt  time.Time            `json:"created_at"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:         booking.ID.String(),
		CustomerID: booking.CustomerID.String(),
		LabourerID: booking.LabourerID.String(),
		Status:     booking.Status,
		CreatedAt:  booking.CreatedAt,
	}
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		out = append(out, BookingToResponse(booking))
	}
	return out
}

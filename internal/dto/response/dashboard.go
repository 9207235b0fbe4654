package response

import (
	"labour-market/internal/data/entity"
)

// DashboardResponse is the role-dependent dashboard view model: customers
// see the labourer listing, labourers see their incoming bookings.
type DashboardResponse struct {
	Role      entity.UserRole   `json:"role"`
	Labourers []ProfileResponse `json:"labourers,omitempty"`
	Bookings  []BookingResponse `json:"bookings,omitempty"`
}

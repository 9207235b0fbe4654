package entity

import (
	"github.com/google/uuid"
)

// LabourerProfile extends a labourer user with the attributes shown to
// customers. At most one profile exists per user.
type LabourerProfile struct {
	BaseNoDelete
	UserID       uuid.UUID `db:"user_id"`
	Skills       string    `db:"skills"`
	PhoneNumber  string    `db:"phone_number"`
	Experience   string    `db:"experience"`
	Availability string    `db:"availability"`
	HourlyRate   float64   `db:"hourly_rate"`
}

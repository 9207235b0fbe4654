package entity

import (
	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "pending"
	BookingStatusAccepted BookingStatus = "accepted"
	BookingStatusRejected BookingStatus = "rejected"
)

// Booking is a customer's request to engage a labourer. It always starts
// as pending and is moved to accepted or rejected by the target labourer.
type Booking struct {
	BaseNoDelete
	CustomerID uuid.UUID     `db:"customer_id"`
	LabourerID uuid.UUID     `db:"labourer_id"`
	Status     BookingStatus `db:"status"`
}

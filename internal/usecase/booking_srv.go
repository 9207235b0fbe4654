package usecase

import (
	"context"
	"fmt"
	"time"

	"labour-market/internal/data/entity"
	"labour-market/internal/data/repository"
	"labour-market/internal/dto/response"
	"labour-market/pkg/mailer"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	Create(ctx context.Context, customerID, labourerID uuid.UUID) (*response.BookingResponse, error)
	SetStatus(ctx context.Context, labourerID, bookingID uuid.UUID, status string) (*response.BookingResponse, error)
	ListForLabourer(ctx context.Context, labourerID uuid.UUID) ([]response.BookingResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	mail mailer.Mailer
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, mail mailer.Mailer, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		mail: mail,
		log:  log.With(zap.String("service", "booking")),
	}
}

// Create inserts a pending booking and notifies the labourer. Duplicate
// pending bookings between the same pair are allowed.
func (s *bookingService) Create(ctx context.Context, customerID, labourerID uuid.UUID) (*response.BookingResponse, error) {
	// The labourer must exist; their username is the notification address
	labourer, err := s.repo.User.FindByID(ctx, labourerID)
	if err != nil {
		s.log.Error("Failed to look up labourer", zap.Error(err), zap.String("labourer_id", labourerID.String()))
		return nil, fmt.Errorf("failed to look up labourer")
	}
	if labourer == nil {
		return nil, fmt.Errorf("labourer not found")
	}

	now := time.Now()
	booking := &entity.Booking{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CustomerID: customerID,
		LabourerID: labourerID,
		Status:     entity.BookingStatusPending,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
			zap.String("labourer_id", labourerID.String()),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("customer_id", customerID.String()),
		zap.String("labourer_id", labourerID.String()),
	)

	// Best-effort notification: a mail failure never fails the booking
	subject := "New booking request"
	body := fmt.Sprintf("You have a new booking request (ref %s). Log in to accept or reject it.", booking.ID.String())
	if err := s.mail.Send(ctx, labourer.Username, subject, body); err != nil {
		s.log.Warn("Failed to send booking notification",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("labourer", labourer.Username),
		)
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// SetStatus writes the requested status. Only the booking's target
// labourer may do this; beyond that the transition is not policed, so a
// terminal status can be overwritten with another request.
func (s *bookingService) SetStatus(ctx context.Context, labourerID, bookingID uuid.UUID, status string) (*response.BookingResponse, error) {
	newStatus := entity.BookingStatus(status)
	if newStatus != entity.BookingStatusAccepted && newStatus != entity.BookingStatusRejected {
		return nil, fmt.Errorf("invalid status %q", status)
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", bookingID.String()))
		return nil, fmt.Errorf("failed to find booking")
	}
	if booking == nil {
		return nil, fmt.Errorf("booking not found")
	}

	if booking.LabourerID != labourerID {
		s.log.Warn("Booking status change by wrong labourer",
			zap.String("booking_id", bookingID.String()),
			zap.String("caller_id", labourerID.String()),
		)
		return nil, fmt.Errorf("not allowed")
	}

	if err := s.repo.Booking.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		s.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", status),
		)
		return nil, fmt.Errorf("failed to update booking")
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID.String()),
		zap.String("status", status),
	)

	booking.Status = newStatus
	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) ListForLabourer(ctx context.Context, labourerID uuid.UUID) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindByLabourerID(ctx, labourerID)
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err), zap.String("labourer_id", labourerID.String()))
		return nil, fmt.Errorf("failed to list bookings")
	}

	return response.BookingsToResponse(bookings), nil
}

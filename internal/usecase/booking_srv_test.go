package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"labour-market/internal/data/entity"
	"labour-market/internal/data/repository"
	"labour-market/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newBookingService(mail *fakeMailer) (usecase.BookingService, *repository.Repository) {
	repo := &repository.Repository{
		User:    newMemUserRepo(),
		Booking: newMemBookingRepo(),
	}
	return usecase.NewBookingService(repo, mail, zap.NewNop()), repo
}

func addUser(t *testing.T, repo *repository.Repository, username string, role entity.UserRole) uuid.UUID {
	t.Helper()
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     username,
		PasswordHash: "irrelevant",
		Role:         role,
	}
	require.NoError(t, repo.User.Create(context.Background(), user))
	return user.ID
}

func TestBookingService_Create(t *testing.T) {
	t.Run("Should create a pending booking and notify the labourer", func(t *testing.T) {
		mail := &fakeMailer{}
		service, repo := newBookingService(mail)
		ctx := context.Background()

		customerID := addUser(t, repo, "alice@example.com", entity.RoleCustomer)
		labourerID := addUser(t, repo, "bob@example.com", entity.RoleLabourer)

		booking, err := service.Create(ctx, customerID, labourerID)
		require.NoError(t, err)
		assert.Equal(t, entity.BookingStatusPending, booking.Status)

		sent := mail.sentTo()
		require.Len(t, sent, 1)
		assert.Equal(t, "bob@example.com", sent[0].To)
	})

	t.Run("Should fail when the labourer does not exist", func(t *testing.T) {
		mail := &fakeMailer{}
		service, repo := newBookingService(mail)
		customerID := addUser(t, repo, "alice@example.com", entity.RoleCustomer)

		_, err := service.Create(context.Background(), customerID, uuid.New())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
		assert.Empty(t, mail.sentTo())
	})

	t.Run("Should allow duplicate pending bookings for the same pair", func(t *testing.T) {
		mail := &fakeMailer{}
		service, repo := newBookingService(mail)
		ctx := context.Background()

		customerID := addUser(t, repo, "alice@example.com", entity.RoleCustomer)
		labourerID := addUser(t, repo, "bob@example.com", entity.RoleLabourer)

		first, err := service.Create(ctx, customerID, labourerID)
		require.NoError(t, err)
		second, err := service.Create(ctx, customerID, labourerID)
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("Should still create the booking when the mail fails", func(t *testing.T) {
		mail := &fakeMailer{err: errors.New("smtp down")}
		service, repo := newBookingService(mail)
		ctx := context.Background()

		customerID := addUser(t, repo, "alice@example.com", entity.RoleCustomer)
		labourerID := addUser(t, repo, "bob@example.com", entity.RoleLabourer)

		booking, err := service.Create(ctx, customerID, labourerID)
		require.NoError(t, err)

		stored, err := repo.Booking.FindByID(ctx, uuid.MustParse(booking.ID))
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, entity.BookingStatusPending, stored.Status)
	})
}

func TestBookingService_SetStatus(t *testing.T) {
	setup := func(t *testing.T) (usecase.BookingService, *repository.Repository, uuid.UUID, uuid.UUID) {
		t.Helper()
		service, repo := newBookingService(&fakeMailer{})
		customerID := addUser(t, repo, "alice@example.com", entity.RoleCustomer)
		labourerID := addUser(t, repo, "bob@example.com", entity.RoleLabourer)
		booking, err := service.Create(context.Background(), customerID, labourerID)
		require.NoError(t, err)
		return service, repo, labourerID, uuid.MustParse(booking.ID)
	}

	t.Run("Should set exactly the requested status, idempotently", func(t *testing.T) {
		service, repo, labourerID, bookingID := setup(t)
		ctx := context.Background()

		updated, err := service.SetStatus(ctx, labourerID, bookingID, "accepted")
		require.NoError(t, err)
		assert.Equal(t, entity.BookingStatusAccepted, updated.Status)

		// Same value again is a no-op, not an error
		updated, err = service.SetStatus(ctx, labourerID, bookingID, "accepted")
		require.NoError(t, err)
		assert.Equal(t, entity.BookingStatusAccepted, updated.Status)

		stored, err := repo.Booking.FindByID(ctx, bookingID)
		require.NoError(t, err)
		assert.Equal(t, entity.BookingStatusAccepted, stored.Status)
	})

	t.Run("Should overwrite a terminal status when asked again", func(t *testing.T) {
		service, repo, labourerID, bookingID := setup(t)
		ctx := context.Background()

		_, err := service.SetStatus(ctx, labourerID, bookingID, "accepted")
		require.NoError(t, err)
		_, err = service.SetStatus(ctx, labourerID, bookingID, "rejected")
		require.NoError(t, err)

		stored, err := repo.Booking.FindByID(ctx, bookingID)
		require.NoError(t, err)
		assert.Equal(t, entity.BookingStatusRejected, stored.Status)
	})

	t.Run("Should refuse an unknown booking", func(t *testing.T) {
		service, _, labourerID, _ := setup(t)

		_, err := service.SetStatus(context.Background(), labourerID, uuid.New(), "accepted")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("Should refuse a labourer who is not the booking target", func(t *testing.T) {
		service, repo, _, bookingID := setup(t)
		otherID := addUser(t, repo, "carol@example.com", entity.RoleLabourer)

		_, err := service.SetStatus(context.Background(), otherID, bookingID, "accepted")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not allowed")

		stored, err := repo.Booking.FindByID(context.Background(), bookingID)
		require.NoError(t, err)
		assert.Equal(t, entity.BookingStatusPending, stored.Status)
	})

	t.Run("Should refuse a status outside the allowed literals", func(t *testing.T) {
		service, _, labourerID, bookingID := setup(t)

		_, err := service.SetStatus(context.Background(), labourerID, bookingID, "pending")
		require.Error(t, err)
	})
}

func TestBookingService_ListForLabourer(t *testing.T) {
	t.Run("Should return bookings of any status targeting the labourer", func(t *testing.T) {
		service, repo := newBookingService(&fakeMailer{})
		ctx := context.Background()

		customerID := addUser(t, repo, "alice@example.com", entity.RoleCustomer)
		labourerID := addUser(t, repo, "bob@example.com", entity.RoleLabourer)
		otherID := addUser(t, repo, "carol@example.com", entity.RoleLabourer)

		first, err := service.Create(ctx, customerID, labourerID)
		require.NoError(t, err)
		_, err = service.Create(ctx, customerID, otherID)
		require.NoError(t, err)
		_, err = service.SetStatus(ctx, labourerID, uuid.MustParse(first.ID), "accepted")
		require.NoError(t, err)

		bookings, err := service.ListForLabourer(ctx, labourerID)
		require.NoError(t, err)
		require.Len(t, bookings, 1)
		assert.Equal(t, entity.BookingStatusAccepted, bookings[0].Status)
	})
}

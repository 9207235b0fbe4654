package usecase_test

import (
	"context"
	"testing"

	"labour-market/internal/dto/request"
	"labour-market/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestProfileService_GetOrCreate(t *testing.T) {
	t.Run("Should create an empty profile on first view and reuse it afterwards", func(t *testing.T) {
		profiles := newMemProfileRepo()
		service := usecase.NewProfileService(profiles, zap.NewNop())
		ctx := context.Background()
		userID := uuid.New()

		first, err := service.GetOrCreate(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, userID.String(), first.UserID)
		assert.Empty(t, first.Skills)

		second, err := service.GetOrCreate(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
	})
}

func TestProfileService_Update(t *testing.T) {
	t.Run("Should create the row on a labourer's first save", func(t *testing.T) {
		profiles := newMemProfileRepo()
		service := usecase.NewProfileService(profiles, zap.NewNop())
		ctx := context.Background()
		userID := uuid.New()

		updated, err := service.Update(ctx, userID, &request.UpdateProfileRequest{
			Skills:       "plumbing",
			PhoneNumber:  "0400000000",
			Experience:   "10 years",
			Availability: "downtown",
			HourlyRate:   50,
		})
		require.NoError(t, err)
		assert.Equal(t, "plumbing", updated.Skills)
		assert.Equal(t, 50.0, updated.HourlyRate)

		stored, err := profiles.FindByUserID(ctx, userID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "downtown", stored.Availability)
	})

	t.Run("Should reject a negative hourly rate", func(t *testing.T) {
		service := usecase.NewProfileService(newMemProfileRepo(), zap.NewNop())

		_, err := service.Update(context.Background(), uuid.New(), &request.UpdateProfileRequest{
			Skills:       "plumbing",
			PhoneNumber:  "0400000000",
			Experience:   "10 years",
			Availability: "downtown",
			HourlyRate:   -5,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})
}

func TestProfileService_Search(t *testing.T) {
	t.Run("Should match both terms case-insensitively", func(t *testing.T) {
		profiles := newMemProfileRepo()
		service := usecase.NewProfileService(profiles, zap.NewNop())
		ctx := context.Background()

		_, err := service.Update(ctx, uuid.New(), &request.UpdateProfileRequest{
			Skills:       "Plumbing",
			PhoneNumber:  "0400000000",
			Experience:   "10 years",
			Availability: "Downtown weekdays",
			HourlyRate:   50,
		})
		require.NoError(t, err)
		_, err = service.Update(ctx, uuid.New(), &request.UpdateProfileRequest{
			Skills:       "Gardening",
			PhoneNumber:  "0411111111",
			Experience:   "3 years",
			Availability: "North side",
			HourlyRate:   35,
		})
		require.NoError(t, err)

		results, err := service.Search(ctx, "plumb", "town")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Plumbing", results[0].Skills)

		empty, err := service.Search(ctx, "plumb", "north")
		require.NoError(t, err)
		assert.Empty(t, empty)
	})
}

package usecase

import (
	"context"
	"fmt"
	"time"

	"labour-market/internal/data/entity"
	"labour-market/internal/data/repository"
	"labour-market/internal/dto/request"
	"labour-market/internal/dto/response"
	"labour-market/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProfileService interface {
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*response.ProfileResponse, error)
	Update(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.ProfileResponse, error)
	ListAll(ctx context.Context) ([]response.ProfileResponse, error)
	Search(ctx context.Context, service, location string) ([]response.ProfileResponse, error)
}

type profileService struct {
	profiles repository.ProfileRepository
	log      *zap.Logger
}

func NewProfileService(profiles repository.ProfileRepository, log *zap.Logger) ProfileService {
	return &profileService{
		profiles: profiles,
		log:      log.With(zap.String("service", "profile")),
	}
}

// GetOrCreate returns the labourer's own profile, creating an empty row on
// first view so the profile form always has something to show.
func (s *profileService) GetOrCreate(ctx context.Context, userID uuid.UUID) (*response.ProfileResponse, error) {
	profile, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to load profile", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to load profile")
	}

	if profile == nil {
		now := time.Now()
		profile = &entity.LabourerProfile{
			BaseNoDelete: entity.BaseNoDelete{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			UserID: userID,
		}
		if err := s.profiles.Create(ctx, profile); err != nil {
			s.log.Error("Failed to create empty profile", zap.Error(err), zap.String("user_id", userID.String()))
			return nil, fmt.Errorf("failed to create profile")
		}

		s.log.Info("Profile created on first view", zap.String("user_id", userID.String()))
	}

	resp := response.ProfileToResponse(profile)
	return &resp, nil
}

// Update upserts the labourer's profile: the first save creates the row.
func (s *profileService) Update(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.ProfileResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update profile validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	profile := &entity.LabourerProfile{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:       userID,
		Skills:       req.Skills,
		PhoneNumber:  req.PhoneNumber,
		Experience:   req.Experience,
		Availability: req.Availability,
		HourlyRate:   req.HourlyRate,
	}

	if err := s.profiles.Upsert(ctx, profile); err != nil {
		s.log.Error("Failed to update profile", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to update profile")
	}

	s.log.Info("Profile updated",
		zap.String("user_id", userID.String()),
		zap.Float64("hourly_rate", req.HourlyRate))

	resp := response.ProfileToResponse(profile)
	return &resp, nil
}

func (s *profileService) ListAll(ctx context.Context) ([]response.ProfileResponse, error) {
	profiles, err := s.profiles.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list profiles", zap.Error(err))
		return nil, fmt.Errorf("failed to list profiles")
	}

	return response.ProfilesToResponse(profiles), nil
}

// Search matches service against skills and location against availability,
// both as case-insensitive substrings.
func (s *profileService) Search(ctx context.Context, service, location string) ([]response.ProfileResponse, error) {
	profiles, err := s.profiles.Search(ctx, service, location)
	if err != nil {
		s.log.Error("Failed to search profiles",
			zap.Error(err),
			zap.String("service", service),
			zap.String("location", location))
		return nil, fmt.Errorf("failed to search profiles")
	}

	return response.ProfilesToResponse(profiles), nil
}

package repository

import (
	"context"
	"fmt"

	"labour-market/internal/data/entity"
	"labour-market/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.LabourerProfile) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.LabourerProfile, error)
	Upsert(ctx context.Context, profile *entity.LabourerProfile) error
	FindAll(ctx context.Context) ([]*entity.LabourerProfile, error)
	Search(ctx context.Context, skill, availability string) ([]*entity.LabourerProfile, error)
}

type profileRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProfileRepository(db database.PgxIface, log *zap.Logger) ProfileRepository {
	return &profileRepository{
		db:  db,
		log: log.With(zap.String("repository", "profile")),
	}
}

func (r *profileRepository) Create(ctx context.Context, profile *entity.LabourerProfile) error {
	query := `
		INSERT INTO labourer_profiles (id, user_id, skills, phone_number, experience,
		                               availability, hourly_rate, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		profile.ID,
		profile.UserID,
		profile.Skills,
		profile.PhoneNumber,
		profile.Experience,
		profile.Availability,
		profile.HourlyRate,
		profile.CreatedAt,
		profile.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create profile",
			zap.Error(err),
			zap.String("user_id", profile.UserID.String()),
		)
		return fmt.Errorf("create profile for user %s: %w", profile.UserID.String(), err)
	}

	return nil
}

func (r *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.LabourerProfile, error) {
	query := `
		SELECT id, user_id, skills, phone_number, experience, availability,
		       hourly_rate, created_at, updated_at
		FROM labourer_profiles
		WHERE user_id = $1
	`

	var profile entity.LabourerProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.Skills,
		&profile.PhoneNumber,
		&profile.Experience,
		&profile.Availability,
		&profile.HourlyRate,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find profile by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find profile by user ID %s: %w", userID.String(), err)
	}

	return &profile, nil
}

// Upsert writes the profile, creating the row on a labourer's first save.
// One row per user_id is enforced by the unique constraint the conflict
// target rides on.
func (r *profileRepository) Upsert(ctx context.Context, profile *entity.LabourerProfile) error {
	query := `
		INSERT INTO labourer_profiles (id, user_id, skills, phone_number, experience,
		                               availability, hourly_rate, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id) DO UPDATE
		SET skills = EXCLUDED.skills,
		    phone_number = EXCLUDED.phone_number,
		    experience = EXCLUDED.experience,
		    availability = EXCLUDED.availability,
		    hourly_rate = EXCLUDED.hourly_rate,
		    updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.Exec(ctx, query,
		profile.ID,
		profile.UserID,
		profile.Skills,
		profile.PhoneNumber,
		profile.Experience,
		profile.Availability,
		profile.HourlyRate,
		profile.CreatedAt,
		profile.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to upsert profile",
			zap.Error(err),
			zap.String("user_id", profile.UserID.String()),
		)
		return fmt.Errorf("upsert profile for user %s: %w", profile.UserID.String(), err)
	}

	return nil
}

func (r *profileRepository) FindAll(ctx context.Context) ([]*entity.LabourerProfile, error) {
	query := `
		SELECT id, user_id, skills, phone_number, experience, availability,
		       hourly_rate, created_at, updated_at
		FROM labourer_profiles
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to get all profiles", zap.Error(err))
		return nil, fmt.Errorf("find all profiles: %w", err)
	}
	defer rows.Close()

	return scanProfiles(rows)
}

// Search filters profiles by case-insensitive substring match: skill
// against the skills column and availability against the availability
// column. The "location" search box maps onto availability text; that
// conflation comes from the product behavior and is kept as is.
func (r *profileRepository) Search(ctx context.Context, skill, availability string) ([]*entity.LabourerProfile, error) {
	query := `
		SELECT id, user_id, skills, phone_number, experience, availability,
		       hourly_rate, created_at, updated_at
		FROM labourer_profiles
		WHERE skills ILIKE '%' || $1 || '%'
		  AND availability ILIKE '%' || $2 || '%'
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, skill, availability)
	if err != nil {
		r.log.Error("Failed to search profiles",
			zap.Error(err),
			zap.String("skill", skill),
			zap.String("availability", availability),
		)
		return nil, fmt.Errorf("search profiles skill %q availability %q: %w", skill, availability, err)
	}
	defer rows.Close()

	return scanProfiles(rows)
}

func scanProfiles(rows pgx.Rows) ([]*entity.LabourerProfile, error) {
	var profiles []*entity.LabourerProfile
	for rows.Next() {
		var profile entity.LabourerProfile
		err := rows.Scan(
			&profile.ID,
			&profile.UserID,
			&profile.Skills,
			&profile.PhoneNumber,
			&profile.Experience,
			&profile.Availability,
			&profile.HourlyRate,
			&profile.CreatedAt,
			&profile.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan profile row: %w", err)
		}
		profiles = append(profiles, &profile)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate profile rows: %w", err)
	}

	return profiles, nil
}

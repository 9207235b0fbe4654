package response

import (
	"labour-market/internal/data/entity"
)

type ProfileResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	Skills       string  `json:"skills"`
	PhoneNumber  string  `json:"phone_number"`
	Experience   string  `json:"experience"`
	Availability string  `json:"availability"`
	HourlyRate   float64 `json:"hourly_rate"`
}

func ProfileToResponse(profile *entity.LabourerProfile) ProfileResponse {
	return ProfileResponse{
		ID:           profile.ID.String(),
		UserID:       profile.UserID.String(),
		Skills:       profile.Skills,
		PhoneNumber:  profile.PhoneNumber,
		Experience:   profile.Experience,
		Availability: profile.Availability,
		HourlyRate:   profile.HourlyRate,
	}
}

func ProfilesToResponse(profiles []*entity.LabourerProfile) []ProfileResponse {
	out := make([]ProfileResponse, 0, len(profiles))
	for _, profile := range profiles {
		out = append(out, ProfileToResponse(profile))
	}
	return out
}

package request

type UpdateProfileRequest struct {
	Skills       string  `json:"skills" validate:"required,max=200"`
	PhoneNumber  string  `json:"phone_number" validate:"required,max=15"`
	Experience   string  `json:"experience" validate:"required,max=100"`
	Availability string  `json:"availability" validate:"required,max=100"`
	HourlyRate   float64 `json:"hourly_rate" validate:"gte=0"`
}

type SearchRequest struct {
	Service  string `json:"service"`
	Location string `json:"location"`
}

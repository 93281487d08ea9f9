package worker

import "powerlink/internal/domain"

type CreateProfileRequest struct {
	ServiceCategories []string            `json:"serviceCategories" binding:"required,min=1"`
	Skills            []string            `json:"skills"`
	Experience        int                 `json:"experience" binding:"gte=0"`
	HourlyRate        float64             `json:"hourlyRate" binding:"gte=0"`
	Availability      domain.Availability `json:"availability"`
	Latitude          float64             `json:"latitude"`
	Longitude         float64             `json:"longitude"`
	ServiceRadiusKm   float64             `json:"serviceRadiusKm" binding:"gte=0"`
}

// UpdateProfileRequest carries partial updates; nil fields are left alone.
type UpdateProfileRequest struct {
	ServiceCategories *[]string `json:"serviceCategories"`
	Skills            *[]string `json:"skills"`
	Experience        *int      `json:"experience"`
	HourlyRate        *float64  `json:"hourlyRate"`
	IsAvailable       *bool     `json:"isAvailable"`
	Latitude          *float64  `json:"latitude"`
	Longitude         *float64  `json:"longitude"`
	ServiceRadiusKm   *float64  `json:"serviceRadiusKm"`
}

type UpdateAvailabilityRequest struct {
	Availability domain.Availability `json:"availability" binding:"required"`
	IsAvailable  *bool               `json:"isAvailable"`
}

type VerificationDocumentRequest struct {
	DocumentType string `json:"documentType" binding:"required"`
	DocumentPath string `json:"documentPath" binding:"required"`
}

// ListFilter mirrors the query parameters of the public directory.
type ListFilter struct {
	Category      string
	MinRating     float64
	AvailableOnly bool
}

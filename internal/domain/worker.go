package domain

import (
	"strconv"
	"strings"
	"time"
)

type ServiceCategory string

const (
	CategoryElectronics    ServiceCategory = "Electronics"
	CategoryElectrical     ServiceCategory = "Electrical"
	CategoryPlumbing       ServiceCategory = "Plumbing"
	CategoryVehicles       ServiceCategory = "Vehicles"
	CategoryHomeAppliances ServiceCategory = "Home Appliances"
	CategoryOther          ServiceCategory = "Other"
)

func ValidServiceCategory(v string) bool {
	switch ServiceCategory(v) {
	case CategoryElectronics, CategoryElectrical, CategoryPlumbing,
		CategoryVehicles, CategoryHomeAppliances, CategoryOther:
		return true
	}
	return false
}

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

// TimeRange is a time-of-day window, "HH:MM" on both ends.
type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Availability maps lowercase weekday names to working windows.
type Availability map[string][]TimeRange

type VerificationDocument struct {
	DocumentType string    `json:"documentType"`
	DocumentPath string    `json:"documentPath"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

type Worker struct {
	ID                    int64                  `json:"id" gorm:"primaryKey"`
	UserID                int64                  `json:"userId" gorm:"uniqueIndex"`
	ServiceCategories     []string               `json:"serviceCategories" gorm:"serializer:json"`
	Skills                []string               `json:"skills,omitempty" gorm:"serializer:json"`
	Experience            int                    `json:"experience"`
	HourlyRate            float64                `json:"hourlyRate"`
	Availability          Availability           `json:"availability,omitempty" gorm:"serializer:json"`
	IsAvailable           bool                   `json:"isAvailable"`
	AverageRating         float64                `json:"averageRating"`
	TotalJobs             int                    `json:"totalJobs"`
	CompletedJobs         int                    `json:"completedJobs"`
	Verification          VerificationStatus     `json:"verification"`
	VerificationDocuments []VerificationDocument `json:"verificationDocuments,omitempty" gorm:"serializer:json"`
	Latitude              float64                `json:"latitude"`
	Longitude             float64                `json:"longitude"`
	ServiceRadiusKm       float64                `json:"serviceRadiusKm"`
	CreatedAt             time.Time              `json:"createdAt"`
	UpdatedAt             time.Time              `json:"updatedAt"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// WorkerRating is one score left by a customer after a completed booking.
type WorkerRating struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	WorkerID  int64     `json:"workerId" gorm:"index"`
	UserID    int64     `json:"userId"`
	Score     int       `json:"score"`
	Review    string    `json:"review,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"date"`
}

// AverageScore is the arithmetic mean of all rating scores, 0 when none.
func AverageScore(scores []int) float64 {
	if len(scores) == 0 {
		return 0
	}
	total := 0
	for _, s := range scores {
		total += s
	}
	return float64(total) / float64(len(scores))
}

// IsAvailableAt reports whether the worker takes jobs on the given weekday
// ("monday".."sunday") at the given "HH:MM" time of day.
func (w *Worker) IsAvailableAt(day, clock string) bool {
	if !w.IsAvailable {
		return false
	}
	slots := w.Availability[strings.ToLower(day)]
	if len(slots) == 0 {
		return false
	}
	t, ok := clockToMinutes(clock)
	if !ok {
		return false
	}
	for _, slot := range slots {
		start, okS := clockToMinutes(slot.Start)
		end, okE := clockToMinutes(slot.End)
		if okS && okE && t >= start && t <= end {
			return true
		}
	}
	return false
}

func clockToMinutes(clock string) (int, bool) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0, false
	}
	return h*60 + m, true
}

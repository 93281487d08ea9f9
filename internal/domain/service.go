package domain

import "time"

// Service is a bookable catalog entry. Inactive services are hidden from
// listings rather than deleted.
type Service struct {
	ID            int64           `json:"id" gorm:"primaryKey"`
	Name          string          `json:"name" validate:"required"`
	Category      ServiceCategory `json:"category" validate:"required"`
	Subcategory   string          `json:"subcategory,omitempty"`
	Description   string          `json:"description" gorm:"type:text"`
	BasePrice     float64         `json:"basePrice" validate:"gte=0"`
	Image         string          `json:"image,omitempty"`
	EstimatedTime int             `json:"estimatedTime"` // minutes
	IsPopular     bool            `json:"isPopular"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

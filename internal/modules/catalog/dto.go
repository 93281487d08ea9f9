package catalog

type CreateServiceRequest struct {
	Name          string  `json:"name" binding:"required"`
	Category      string  `json:"category" binding:"required"`
	Subcategory   string  `json:"subcategory"`
	Description   string  `json:"description"`
	BasePrice     float64 `json:"basePrice" binding:"gte=0"`
	Image         string  `json:"image"`
	EstimatedTime int     `json:"estimatedTime" binding:"gte=0"`
	IsPopular     bool    `json:"isPopular"`
}

type UpdateServiceRequest struct {
	Name          *string  `json:"name"`
	Category      *string  `json:"category"`
	Subcategory   *string  `json:"subcategory"`
	Description   *string  `json:"description"`
	BasePrice     *float64 `json:"basePrice"`
	Image         *string  `json:"image"`
	EstimatedTime *int     `json:"estimatedTime"`
	IsPopular     *bool    `json:"isPopular"`
}

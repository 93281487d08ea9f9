package booking

import (
	"time"

	"powerlink/internal/domain"
)

type CreateBookingRequest struct {
	ScheduledDate string         `json:"scheduledDate" binding:"required"` // "2006-01-02"
	ScheduledTime string         `json:"scheduledTime" binding:"required"` // "HH:MM"
	Address       domain.Address `json:"address"`
	Notes         string         `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type RateRequest struct {
	Rating int    `json:"rating" binding:"required"`
	Review string `json:"review"`
}

// ServiceSummary and WorkerSummary are resolved by secondary lookups after
// the primary booking read.
type ServiceSummary struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"basePrice"`
}

type WorkerSummary struct {
	UserID       int64  `json:"userId"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	MobileNumber string `json:"mobileNumber"`
}

type CustomerSummary struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	MobileNumber string `json:"mobileNumber"`
}

type BookingDetails struct {
	ID            int64                `json:"id"`
	Status        domain.BookingStatus `json:"status"`
	ScheduledDate time.Time            `json:"scheduledDate"`
	ScheduledTime string               `json:"scheduledTime"`
	Address       domain.Address       `json:"address"`
	TotalAmount   float64              `json:"totalAmount"`
	PaymentStatus domain.PaymentStatus `json:"paymentStatus"`
	Notes         string               `json:"notes,omitempty"`
	Rating        domain.BookingRating `json:"rating,omitzero"`
	CreatedAt     time.Time            `json:"createdAt"`
	CompletedAt   *time.Time           `json:"completedAt,omitempty"`
	Service       *ServiceSummary      `json:"service,omitempty"`
	Worker        *WorkerSummary       `json:"worker,omitempty"`
	Customer      *CustomerSummary     `json:"customer,omitempty"`
}

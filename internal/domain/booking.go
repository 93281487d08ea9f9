package domain

import "time"

type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingAccepted   BookingStatus = "accepted"
	BookingAssigned   BookingStatus = "assigned"
	BookingInProgress BookingStatus = "in-progress"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
)

// Final reports whether the status is terminal: no operation may move a
// booking out of a final status.
func (s BookingStatus) Final() bool {
	return s == BookingCompleted || s == BookingCancelled
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentRefunded  PaymentStatus = "refunded"
)

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentOnline PaymentMethod = "online"
	PaymentWallet PaymentMethod = "wallet"
)

// BookingRating is attached once, after completion, by the owning customer.
type BookingRating struct {
	Score   int        `json:"rating,omitempty"`
	Review  string     `json:"review,omitempty"`
	RatedAt *time.Time `json:"date,omitempty"`
}

type Booking struct {
	ID            int64         `json:"id" gorm:"primaryKey"`
	UserID        int64         `json:"userId" gorm:"index"`
	ServiceID     int64         `json:"serviceId"`
	WorkerID      *int64        `json:"workerId,omitempty" gorm:"index"` // user id of the assigned worker
	ScheduledDate time.Time     `json:"scheduledDate"`
	ScheduledTime string        `json:"scheduledTime"` // "HH:MM"
	Address       Address       `json:"address" gorm:"embedded;embeddedPrefix:address_"`
	Status        BookingStatus `json:"status"`
	TotalAmount   float64       `json:"totalAmount"` // snapshot of the service price at creation
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Notes         string        `json:"notes,omitempty" gorm:"type:text"`
	Rating        BookingRating `json:"rating,omitzero" gorm:"embedded;embeddedPrefix:rating_"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
	CompletedAt   *time.Time    `json:"completedAt,omitempty"`
}

// Rated reports whether a rating has already been attached.
func (b *Booking) Rated() bool {
	return b.Rating.Score != 0
}

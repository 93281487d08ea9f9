package notification

import (
	"context"
	"time"

	"powerlink/internal/domain"
)

// Event is the wire shape pushed to connected clients.
type Event struct {
	Type      string          `json:"type"`
	Booking   *domain.Booking `json:"booking,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

const (
	EventBookingAssigned      = "booking_assigned"
	EventBookingStatusChanged = "booking_status_changed"
	EventBookingCancelled     = "booking_cancelled"
)

// Notifier pushes booking lifecycle events through the hub. Delivery is
// best-effort; offline users simply miss the push.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) NotifyBookingAssigned(ctx context.Context, customerID int64, b *domain.Booking) {
	n.hub.SendToUser(customerID, Event{
		Type:      EventBookingAssigned,
		Booking:   b,
		Timestamp: time.Now(),
	})
}

func (n *Notifier) NotifyBookingStatusChanged(ctx context.Context, customerID int64, b *domain.Booking) {
	n.hub.SendToUser(customerID, Event{
		Type:      EventBookingStatusChanged,
		Booking:   b,
		Timestamp: time.Now(),
	})
}

func (n *Notifier) NotifyBookingCancelled(ctx context.Context, workerUserID int64, b *domain.Booking) {
	n.hub.SendToUser(workerUserID, Event{
		Type:      EventBookingCancelled,
		Booking:   b,
		Timestamp: time.Now(),
	})
}

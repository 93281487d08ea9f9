package sms

import (
	"context"
	"log"
)

// Sender delivers one-time passcodes to a mobile number. Real deployments
// plug in an SMS gateway; a send failure aborts the triggering request.
type Sender interface {
	Send(ctx context.Context, mobileNumber, code string) error
}

// DevConsoleSender logs codes instead of sending them.
type DevConsoleSender struct {
	enabled bool
}

func NewDevConsoleSender(enabled bool) *DevConsoleSender {
	return &DevConsoleSender{enabled: enabled}
}

func (s *DevConsoleSender) Send(_ context.Context, mobileNumber, code string) error {
	if s.enabled {
		log.Printf("[DEV-SMS] otp mobile=%s code=%s", mobileNumber, code)
	}
	return nil
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverageScore(t *testing.T) {
	assert.Equal(t, 0.0, AverageScore(nil))
	assert.Equal(t, 4.0, AverageScore([]int{4}))
	assert.Equal(t, 4.0, AverageScore([]int{3, 5}))
	assert.InDelta(t, 4.333, AverageScore([]int{4, 4, 5}), 0.001)
}

func TestWorker_IsAvailableAt(t *testing.T) {
	w := &Worker{
		IsAvailable: true,
		Availability: Availability{
			"monday": {{Start: "09:00", End: "18:00"}},
			"friday": {{Start: "09:00", End: "12:00"}, {Start: "14:00", End: "18:00"}},
		},
	}

	assert.True(t, w.IsAvailableAt("monday", "09:00"))
	assert.True(t, w.IsAvailableAt("Monday", "17:59"))
	assert.False(t, w.IsAvailableAt("monday", "18:01"))
	assert.False(t, w.IsAvailableAt("sunday", "10:00"))

	// split shift
	assert.True(t, w.IsAvailableAt("friday", "11:00"))
	assert.False(t, w.IsAvailableAt("friday", "13:00"))
	assert.True(t, w.IsAvailableAt("friday", "15:00"))

	// malformed clock
	assert.False(t, w.IsAvailableAt("monday", "nine"))

	w.IsAvailable = false
	assert.False(t, w.IsAvailableAt("monday", "10:00"))
}

func TestBookingStatus_Final(t *testing.T) {
	assert.True(t, BookingCompleted.Final())
	assert.True(t, BookingCancelled.Final())
	assert.False(t, BookingPending.Final())
	assert.False(t, BookingAccepted.Final())
	assert.False(t, BookingAssigned.Final())
	assert.False(t, BookingInProgress.Final())
}

package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAppointmentStatus(t *testing.T) {
	status, ok := ParseAppointmentStatus("scheduled")
	assert.True(t, ok)
	assert.Equal(t, AppointmentStatusScheduled, status)

	status, ok = ParseAppointmentStatus("COMPLETED")
	assert.True(t, ok)
	assert.Equal(t, AppointmentStatusCompleted, status)

	_, ok = ParseAppointmentStatus("done")
	assert.False(t, ok)

	_, ok = ParseAppointmentStatus("")
	assert.False(t, ok)
}

func TestAppointmentStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{AppointmentStatusPending, AppointmentStatusScheduled, true},
		{AppointmentStatusPending, AppointmentStatusCancelled, true},
		{AppointmentStatusPending, AppointmentStatusCompleted, false},
		{AppointmentStatusScheduled, AppointmentStatusCompleted, true},
		{AppointmentStatusScheduled, AppointmentStatusCancelled, true},
		{AppointmentStatusScheduled, AppointmentStatusPending, false},
		{AppointmentStatusCompleted, AppointmentStatusScheduled, false},
		{AppointmentStatusCompleted, AppointmentStatusCancelled, false},
		{AppointmentStatusCancelled, AppointmentStatusScheduled, false},
		// Identical updates are idempotent.
		{AppointmentStatusScheduled, AppointmentStatusScheduled, true},
		{AppointmentStatusCompleted, AppointmentStatusCompleted, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

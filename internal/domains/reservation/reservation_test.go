package reservation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"harborview/internal/domains/reservation"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"pending to confirmed", reservation.StatusPending, reservation.StatusConfirmed, true},
		{"pending to cancelled", reservation.StatusPending, reservation.StatusCancelled, true},
		{"pending to completed", reservation.StatusPending, reservation.StatusCompleted, false},
		{"confirmed to completed", reservation.StatusConfirmed, reservation.StatusCompleted, true},
		{"confirmed to pending", reservation.StatusConfirmed, reservation.StatusPending, false},
		{"confirmed to cancelled", reservation.StatusConfirmed, reservation.StatusCancelled, false},
		{"cancelled is terminal", reservation.StatusCancelled, reservation.StatusPending, false},
		{"completed is terminal", reservation.StatusCompleted, reservation.StatusConfirmed, false},
		{"unknown status", "archived", reservation.StatusConfirmed, false},
		{"same status is not a transition", reservation.StatusPending, reservation.StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reservation.CanTransition(tt.from, tt.to))
		})
	}
}

func TestAllowedNext(t *testing.T) {
	assert.ElementsMatch(t, []string{reservation.StatusConfirmed, reservation.StatusCancelled}, reservation.AllowedNext(reservation.StatusPending))
	assert.ElementsMatch(t, []string{reservation.StatusCompleted}, reservation.AllowedNext(reservation.StatusConfirmed))
	assert.Empty(t, reservation.AllowedNext(reservation.StatusCancelled))
	assert.Empty(t, reservation.AllowedNext(reservation.StatusCompleted))
	assert.Empty(t, reservation.AllowedNext("archived"))
}

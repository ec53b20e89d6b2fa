// Package reservation holds the status lattice shared by room bookings and
// dining reservations.
package reservation

import "slices"

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

var Statuses = []string{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted}

// transitions maps each status to the set of statuses it may move to.
// Cancelled and completed are terminal.
var transitions = map[string][]string{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted},
	StatusCancelled: {},
	StatusCompleted: {},
}

// CanTransition reports whether a reservation may move from one status to another.
func CanTransition(from, to string) bool {
	allowed, ok := transitions[from]
	if !ok {
		return false
	}

	return slices.Contains(allowed, to)
}

// AllowedNext returns the statuses reachable from the given status.
func AllowedNext(from string) []string {
	return slices.Clone(transitions[from])
}

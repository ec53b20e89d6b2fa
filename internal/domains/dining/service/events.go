package service

import (
	"time"

	"harborview/internal/domains/dining/model"
)

const (
	EventDiningCreated       = "dining.created"
	EventDiningStatusChanged = "dining.status_changed"
)

// DiningEvent is the payload published to the dining events topic.
type DiningEvent struct {
	Type           string    `json:"type"`
	ReservationID  string    `json:"reservation_id"`
	GuestEmail     string    `json:"guest_email"`
	Restaurant     string    `json:"restaurant"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	TableNumber    string    `json:"table_number,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

func newDiningEvent(eventType string, res model.DiningReservation, previousStatus string, occurredAt time.Time) DiningEvent {
	return DiningEvent{
		Type:           eventType,
		ReservationID:  res.ID,
		GuestEmail:     res.GuestEmail,
		Restaurant:     res.Restaurant,
		Status:         res.Status,
		PreviousStatus: previousStatus,
		TableNumber:    res.TableNumber,
		OccurredAt:     occurredAt,
	}
}

package service

import (
	"time"

	"harborview/internal/domains/booking/model"
)

const (
	EventBookingCreated       = "booking.created"
	EventBookingStatusChanged = "booking.status_changed"
)

// BookingEvent is the payload published to the booking events topic. Consumers
// such as the notification service live out of process.
type BookingEvent struct {
	Type           string    `json:"type"`
	BookingID      string    `json:"booking_id"`
	GuestID        string    `json:"guest_id"`
	RoomID         string    `json:"room_id"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	TotalPrice     float64   `json:"total_price"`
	OccurredAt     time.Time `json:"occurred_at"`
}

func newBookingEvent(eventType string, booking model.Booking, previousStatus string, occurredAt time.Time) BookingEvent {
	return BookingEvent{
		Type:           eventType,
		BookingID:      booking.ID,
		GuestID:        booking.GuestID,
		RoomID:         booking.RoomID,
		Status:         booking.Status,
		PreviousStatus: previousStatus,
		TotalPrice:     booking.TotalPrice,
		OccurredAt:     occurredAt,
	}
}

package model

import (
	"time"

	"github.com/lib/pq"

	"harborview/shared/model"
)

const (
	TableName  = "dining_reservations"
	EntityName = "dining_reservation"

	FieldID          = "id"
	FieldGuestName   = "guest_name"
	FieldGuestEmail  = "guest_email"
	FieldGuestPhone  = "guest_phone"
	FieldRestaurant  = "restaurant"
	FieldDate        = "date"
	FieldTimeSlot    = "time_slot"
	FieldPartySize   = "party_size"
	FieldStatus      = "status"
	FieldTableNumber = "table_number"
)

const (
	MinPartySize = 1
	MaxPartySize = 20
)

type DiningReservation struct {
	ID                  string         `db:"id"`
	GuestName           string         `db:"guest_name"`
	GuestEmail          string         `db:"guest_email"`
	GuestPhone          string         `db:"guest_phone"`
	Restaurant          string         `db:"restaurant"`
	Date                time.Time      `db:"date"`
	TimeSlot            string         `db:"time_slot"`
	PartySize           int            `db:"party_size"`
	SpecialRequests     string         `db:"special_requests"`
	DietaryRestrictions pq.StringArray `db:"dietary_restrictions"`
	Status              string         `db:"status"`
	TableNumber         string         `db:"table_number"`
	Version             int64          `db:"version"`
	model.Metadata
}

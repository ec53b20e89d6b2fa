package model

import (
	"time"

	"github.com/lib/pq"

	guestModel "harborview/internal/domains/guest/model"
	roomModel "harborview/internal/domains/room/model"
	"harborview/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldGuestID         = "guest_id"
	FieldRoomID          = "room_id"
	FieldCheckIn         = "check_in"
	FieldCheckOut        = "check_out"
	FieldGuests          = "guests"
	FieldTotalPrice      = "total_price"
	FieldStatus          = "status"
	FieldPaymentStatus   = "payment_status"
	FieldSpecialRequests = "special_requests"
)

const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
)

var PaymentStatuses = []string{PaymentPending, PaymentPaid, PaymentRefunded}

type Booking struct {
	ID              string         `db:"id"`
	GuestID         string         `db:"guest_id"`
	RoomID          string         `db:"room_id"`
	CheckIn         time.Time      `db:"check_in"`
	CheckOut        time.Time      `db:"check_out"`
	Guests          int            `db:"guests"`
	TotalPrice      float64        `db:"total_price"`
	Status          string         `db:"status"`
	PaymentStatus   string         `db:"payment_status"`
	AddOns          pq.StringArray `db:"add_ons"`
	SpecialRequests string         `db:"special_requests"`
	Version         int64          `db:"version"`
	GuestFirstName  string         `db:"guest_first_name" table:"guests" column:"first_name"`
	GuestLastName   string         `db:"guest_last_name"  table:"guests" column:"last_name"`
	GuestEmail      string         `db:"guest_email"      table:"guests" column:"email"`
	RoomName        string         `db:"room_name"        table:"rooms"  column:"name"`
	model.Metadata
}

// GetJoinQuery joins guest identity and room name into every booking row so
// admin search can match on them without extra round trips.
func (Booking) GetJoinQuery() string {
	return "LEFT JOIN " + guestModel.TableName + " ON " + guestModel.TableName + ".id = " + TableName + ".guest_id " +
		"LEFT JOIN " + roomModel.TableName + " ON " + roomModel.TableName + ".id = " + TableName + ".room_id"
}

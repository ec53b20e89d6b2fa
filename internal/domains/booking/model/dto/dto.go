package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"harborview/internal/domains/booking/model"
	"harborview/internal/domains/reservation"
	guestDto "harborview/internal/domains/guest/model/dto"
	"harborview/shared"
	"harborview/shared/constant"
	gDto "harborview/shared/dto"
	gModel "harborview/shared/model"
	"harborview/shared/timezone"
)

type QuoteRequest struct {
	RoomID   string `json:"room_id"   validate:"required"`
	CheckIn  string `json:"check_in"  validate:"required"`
	CheckOut string `json:"check_out" validate:"required"`
}

type QuoteResponse struct {
	RoomID      string  `json:"room_id"`
	NightlyRate float64 `json:"nightly_rate"`
	Nights      int     `json:"nights"`
	TotalPrice  float64 `json:"total_price"`
}

type CreateBookingRequest struct {
	Guest           guestDto.CreateGuestRequest `json:"guest"            validate:"required"`
	RoomID          string                      `json:"room_id"          validate:"required"`
	CheckIn         string                      `json:"check_in"         validate:"required"`
	CheckOut        string                      `json:"check_out"        validate:"required"`
	Guests          int                         `json:"guests"           validate:"required,min=1"`
	SpecialRequests string                      `json:"special_requests" validate:"omitempty,max=2000"`
}

// Dates parses the stay boundaries in the application timezone.
func (c *CreateBookingRequest) Dates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.Parse(constant.DateOnlyFormat, c.CheckIn)
	if err != nil {
		return checkIn, checkOut, err //nolint:wrapcheck
	}

	checkOut, err = timezone.Parse(constant.DateOnlyFormat, c.CheckOut)

	return checkIn, checkOut, err //nolint:wrapcheck
}

func (c *CreateBookingRequest) ToModel(user, guestID string, checkIn, checkOut time.Time, totalPrice float64) model.Booking {
	return model.Booking{
		ID:              uuid.NewString(),
		GuestID:         guestID,
		RoomID:          c.RoomID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          c.Guests,
		TotalPrice:      totalPrice,
		Status:          reservation.StatusPending,
		PaymentStatus:   model.PaymentPending,
		AddOns:          pq.StringArray{},
		SpecialRequests: c.SpecialRequests,
		Version:         1,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateBookingRequest struct {
	Guests          *int           `db:"guests"           json:"guests"           validate:"omitempty,min=1"`
	TotalPrice      *float64       `db:"total_price"      json:"total_price"      validate:"omitempty,gte=0"`
	PaymentStatus   string         `db:"payment_status"   json:"payment_status"   validate:"omitempty,oneof=pending paid refunded"`
	AddOns          pq.StringArray `db:"add_ons"          json:"add_ons"          validate:"omitempty,dive,max=100"`
	SpecialRequests string         `db:"special_requests" json:"special_requests" validate:"omitempty,max=2000"`
	ExpectedVersion *int64         `db:"-"                json:"expected_version" validate:"omitempty,min=1"`
}

type UpdateStatusRequest struct {
	Status          string `json:"status"           validate:"required,oneof=pending confirmed cancelled completed"`
	ExpectedVersion *int64 `json:"expected_version" validate:"omitempty,min=1"`
}

type BookingResponse struct {
	ID              string   `json:"id"`
	GuestID         string   `json:"guest_id"`
	RoomID          string   `json:"room_id"`
	GuestFirstName  string   `json:"guest_first_name"`
	GuestLastName   string   `json:"guest_last_name"`
	GuestEmail      string   `json:"guest_email"`
	RoomName        string   `json:"room_name"`
	CheckIn         string   `json:"check_in"`
	CheckOut        string   `json:"check_out"`
	Guests          int      `json:"guests"`
	TotalPrice      float64  `json:"total_price"`
	Status          string   `json:"status"`
	PaymentStatus   string   `json:"payment_status"`
	AddOns          []string `json:"add_ons"`
	SpecialRequests string   `json:"special_requests"`
	Version         int64    `json:"version"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.GuestID = model.GuestID
	r.RoomID = model.RoomID
	r.GuestFirstName = model.GuestFirstName
	r.GuestLastName = model.GuestLastName
	r.GuestEmail = model.GuestEmail
	r.RoomName = model.RoomName
	r.CheckIn = model.CheckIn.Format(constant.DateOnlyFormat)
	r.CheckOut = model.CheckOut.Format(constant.DateOnlyFormat)
	r.Guests = model.Guests
	r.TotalPrice = model.TotalPrice
	r.Status = model.Status
	r.PaymentStatus = model.PaymentStatus
	r.AddOns = model.AddOns
	r.SpecialRequests = model.SpecialRequests
	r.Version = model.Version
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"harborview/internal/domains/dining/model"
	"harborview/internal/domains/reservation"
	"harborview/shared"
	"harborview/shared/constant"
	gDto "harborview/shared/dto"
	gModel "harborview/shared/model"
	"harborview/shared/timezone"
)

type CreateDiningReservationRequest struct {
	GuestName           string         `json:"guest_name"           validate:"required,max=200"`
	GuestEmail          string         `json:"guest_email"          validate:"required,email"`
	GuestPhone          string         `json:"guest_phone"          validate:"omitempty,max=50"`
	Restaurant          string         `json:"restaurant"           validate:"required,max=100"`
	Date                string         `json:"date"                 validate:"required"`
	TimeSlot            string         `json:"time_slot"            validate:"required,max=50"`
	PartySize           int            `json:"party_size"           validate:"required,min=1,max=20"`
	SpecialRequests     string         `json:"special_requests"     validate:"omitempty,max=2000"`
	DietaryRestrictions pq.StringArray `json:"dietary_restrictions" validate:"omitempty,dive,max=100"`
}

// ParseDate parses the reservation day in the application timezone.
func (c *CreateDiningReservationRequest) ParseDate() (time.Time, error) {
	return timezone.Parse(constant.DateOnlyFormat, c.Date) //nolint:wrapcheck
}

func (c *CreateDiningReservationRequest) ToModel(user string, date time.Time) model.DiningReservation {
	restrictions := c.DietaryRestrictions
	if restrictions == nil {
		restrictions = pq.StringArray{}
	}

	return model.DiningReservation{
		ID:                  uuid.NewString(),
		GuestName:           strings.TrimSpace(c.GuestName),
		GuestEmail:          strings.ToLower(strings.TrimSpace(c.GuestEmail)),
		GuestPhone:          strings.TrimSpace(c.GuestPhone),
		Restaurant:          c.Restaurant,
		Date:                date,
		TimeSlot:            c.TimeSlot,
		PartySize:           c.PartySize,
		SpecialRequests:     c.SpecialRequests,
		DietaryRestrictions: restrictions,
		Status:              reservation.StatusPending,
		Version:             1,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateDiningReservationRequest struct {
	GuestPhone          string         `db:"guest_phone"          json:"guest_phone"          validate:"omitempty,max=50"`
	TimeSlot            string         `db:"time_slot"            json:"time_slot"            validate:"omitempty,max=50"`
	PartySize           *int           `db:"party_size"           json:"party_size"           validate:"omitempty,min=1,max=20"`
	SpecialRequests     string         `db:"special_requests"     json:"special_requests"     validate:"omitempty,max=2000"`
	DietaryRestrictions pq.StringArray `db:"dietary_restrictions" json:"dietary_restrictions" validate:"omitempty,dive,max=100"`
	TableNumber         string         `db:"table_number"         json:"table_number"         validate:"omitempty,max=20"`
	ExpectedVersion     *int64         `db:"-"                    json:"expected_version"     validate:"omitempty,min=1"`
}

type UpdateStatusRequest struct {
	Status          string `json:"status"           validate:"required,oneof=pending confirmed cancelled completed"`
	TableNumber     string `json:"table_number"     validate:"omitempty,max=20"`
	ExpectedVersion *int64 `json:"expected_version" validate:"omitempty,min=1"`
}

type DiningReservationResponse struct {
	ID                  string   `json:"id"`
	GuestName           string   `json:"guest_name"`
	GuestEmail          string   `json:"guest_email"`
	GuestPhone          string   `json:"guest_phone"`
	Restaurant          string   `json:"restaurant"`
	Date                string   `json:"date"`
	TimeSlot            string   `json:"time_slot"`
	PartySize           int      `json:"party_size"`
	SpecialRequests     string   `json:"special_requests"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
	Status              string   `json:"status"`
	TableNumber         string   `json:"table_number"`
	Version             int64    `json:"version"`
	gDto.Metadata
}

func (r *DiningReservationResponse) FromModel(model model.DiningReservation) {
	r.ID = model.ID
	r.GuestName = model.GuestName
	r.GuestEmail = model.GuestEmail
	r.GuestPhone = model.GuestPhone
	r.Restaurant = model.Restaurant
	r.Date = model.Date.Format(constant.DateOnlyFormat)
	r.TimeSlot = model.TimeSlot
	r.PartySize = model.PartySize
	r.SpecialRequests = model.SpecialRequests
	r.DietaryRestrictions = model.DietaryRestrictions
	r.Status = model.Status
	r.TableNumber = model.TableNumber
	r.Version = model.Version
	r.Metadata.FromModel(model.Metadata)
}

type GetDiningReservationsResponse struct {
	Reservations []DiningReservationResponse `json:"reservations"`
	TotalPage    int                         `json:"total_page"`
	TotalData    int                         `json:"total_data"`
}

func (r *GetDiningReservationsResponse) FromModels(models []model.DiningReservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]DiningReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}

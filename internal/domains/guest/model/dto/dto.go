package dto

import (
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"harborview/internal/domains/guest/model"
	"harborview/shared"
	gDto "harborview/shared/dto"
	gModel "harborview/shared/model"
	"harborview/shared/timezone"
)

type CreateGuestRequest struct {
	Email       string   `json:"email"       validate:"required,email,max=100"`
	FirstName   string   `json:"first_name"  validate:"required,max=100"`
	LastName    string   `json:"last_name"   validate:"required,max=100"`
	Phone       string   `json:"phone"       validate:"omitempty,max=20"`
	Preferences []string `json:"preferences" validate:"omitempty,dive,max=100"`
}

// ToModel normalizes the email to lower case so that guest identity stays
// keyed by address regardless of how the form was typed.
func (c *CreateGuestRequest) ToModel(user string) model.Guest {
	return model.Guest{
		ID:            uuid.NewString(),
		Email:         strings.ToLower(strings.TrimSpace(c.Email)),
		FirstName:     c.FirstName,
		LastName:      c.LastName,
		Phone:         c.Phone,
		Preferences:   pq.StringArray(c.Preferences),
		LoyaltyStatus: model.LoyaltyBronze,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateGuestRequest struct {
	FirstName     string         `db:"first_name"     json:"first_name"     validate:"omitempty,max=100"`
	LastName      string         `db:"last_name"      json:"last_name"      validate:"omitempty,max=100"`
	Phone         string         `db:"phone"          json:"phone"          validate:"omitempty,max=20"`
	Preferences   pq.StringArray `db:"preferences"    json:"preferences"    validate:"omitempty,dive,max=100"`
	LoyaltyStatus string         `db:"loyalty_status" json:"loyalty_status" validate:"omitempty,oneof=bronze silver gold platinum"`
}

type GuestResponse struct {
	ID            string   `json:"id"`
	Email         string   `json:"email"`
	FirstName     string   `json:"first_name"`
	LastName      string   `json:"last_name"`
	Phone         string   `json:"phone"`
	Preferences   []string `json:"preferences"`
	LoyaltyStatus string   `json:"loyalty_status"`
	gDto.Metadata
}

func (r *GuestResponse) FromModel(model model.Guest) {
	r.ID = model.ID
	r.Email = model.Email
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.Phone = model.Phone
	r.Preferences = model.Preferences
	r.LoyaltyStatus = model.LoyaltyStatus
	r.Metadata.FromModel(model.Metadata)
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}

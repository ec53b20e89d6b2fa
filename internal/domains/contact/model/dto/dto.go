package dto

import (
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"harborview/internal/domains/contact/model"
	"harborview/shared"
	gDto "harborview/shared/dto"
	gModel "harborview/shared/model"
	"harborview/shared/timezone"
)

type SubmissionMetadata struct {
	SessionID          string `json:"session_id"          validate:"omitempty,max=100"`
	SubmissionAttempts int    `json:"submission_attempts" validate:"omitempty,min=0"`
	FormVersion        string `json:"form_version"        validate:"omitempty,max=20"`
}

type CreateContactRequest struct {
	FirstName              string             `json:"first_name"               validate:"required,max=100"`
	LastName               string             `json:"last_name"                validate:"required,max=100"`
	Email                  string             `json:"email"                    validate:"required,email"`
	Phone                  string             `json:"phone"                    validate:"omitempty,max=50"`
	Company                string             `json:"company"                  validate:"omitempty,max=200"`
	Title                  string             `json:"title"                    validate:"omitempty,max=100"`
	Subject                string             `json:"subject"                  validate:"required,max=300"`
	Message                string             `json:"message"                  validate:"required,max=5000"`
	Category               string             `json:"category"                 validate:"required,oneof=general booking event business complaint compliment media"`
	Priority               string             `json:"priority"                 validate:"required,oneof=low medium high urgent"`
	PreferredContactMethod string             `json:"preferred_contact_method" validate:"required,oneof=email phone both"`
	ExpectedResponse       string             `json:"expected_response"        validate:"required,oneof=within_24h within_48h within_week no_rush"`
	ConsentToMarketing     bool               `json:"consent_to_marketing"`
	Source                 string             `json:"source"                   validate:"omitempty,max=100"`
	Referrer               string             `json:"referrer"                 validate:"omitempty,max=500"`
	Metadata               SubmissionMetadata `json:"metadata"`
}

func (c *CreateContactRequest) ToModel(user string) model.Contact {
	return model.Contact{
		ID:                     uuid.NewString(),
		FirstName:              strings.TrimSpace(c.FirstName),
		LastName:               strings.TrimSpace(c.LastName),
		Email:                  strings.ToLower(strings.TrimSpace(c.Email)),
		Phone:                  strings.TrimSpace(c.Phone),
		Company:                strings.TrimSpace(c.Company),
		Title:                  c.Title,
		Subject:                c.Subject,
		Message:                c.Message,
		Category:               c.Category,
		Priority:               c.Priority,
		PreferredContactMethod: c.PreferredContactMethod,
		ExpectedResponse:       c.ExpectedResponse,
		ConsentToMarketing:     c.ConsentToMarketing,
		Source:                 c.Source,
		Referrer:               c.Referrer,
		SessionID:              c.Metadata.SessionID,
		SubmissionAttempts:     c.Metadata.SubmissionAttempts,
		FormVersion:            c.Metadata.FormVersion,
		Status:                 model.StatusNew,
		Tags:                   pq.StringArray(model.DeriveTags(c.Category, c.Priority, strings.TrimSpace(c.Company) != "", c.ConsentToMarketing)),
		ResponseCount:          0,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=read replied resolved archived"`
	Notes  string `json:"notes"  validate:"omitempty,max=5000"`
}

type ContactResponse struct {
	ID                     string             `json:"id"`
	FirstName              string             `json:"first_name"`
	LastName               string             `json:"last_name"`
	Email                  string             `json:"email"`
	Phone                  string             `json:"phone"`
	Company                string             `json:"company"`
	Title                  string             `json:"title"`
	Subject                string             `json:"subject"`
	Message                string             `json:"message"`
	Category               string             `json:"category"`
	Priority               string             `json:"priority"`
	PreferredContactMethod string             `json:"preferred_contact_method"`
	ExpectedResponse       string             `json:"expected_response"`
	ConsentToMarketing     bool               `json:"consent_to_marketing"`
	Source                 string             `json:"source"`
	Referrer               string             `json:"referrer"`
	SubmissionMetadata     SubmissionMetadata `json:"submission_metadata"`
	Status                 string             `json:"status"`
	Tags                   []string           `json:"tags"`
	ResponseCount          int                `json:"response_count"`
	Notes                  string             `json:"notes"`
	gDto.Metadata
}

func (r *ContactResponse) FromModel(model model.Contact) {
	r.ID = model.ID
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.Email = model.Email
	r.Phone = model.Phone
	r.Company = model.Company
	r.Title = model.Title
	r.Subject = model.Subject
	r.Message = model.Message
	r.Category = model.Category
	r.Priority = model.Priority
	r.PreferredContactMethod = model.PreferredContactMethod
	r.ExpectedResponse = model.ExpectedResponse
	r.ConsentToMarketing = model.ConsentToMarketing
	r.Source = model.Source
	r.Referrer = model.Referrer
	r.SubmissionMetadata = SubmissionMetadata{
		SessionID:          model.SessionID,
		SubmissionAttempts: model.SubmissionAttempts,
		FormVersion:        model.FormVersion,
	}
	r.Status = model.Status
	r.Tags = model.Tags
	r.ResponseCount = model.ResponseCount
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

type GetContactsResponse struct {
	Contacts  []ContactResponse `json:"contacts"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetContactsResponse) FromModels(models []model.Contact, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Contacts = make([]ContactResponse, len(models))
	for i, mod := range models {
		r.Contacts[i].FromModel(mod)
	}
}

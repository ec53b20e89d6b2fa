package model

import (
	"slices"

	"github.com/lib/pq"

	"harborview/shared/model"
)

const (
	TableName  = "contacts"
	EntityName = "contact"

	FieldID            = "id"
	FieldFirstName     = "first_name"
	FieldLastName      = "last_name"
	FieldEmail         = "email"
	FieldSubject       = "subject"
	FieldCategory      = "category"
	FieldPriority      = "priority"
	FieldStatus        = "status"
	FieldResponseCount = "response_count"
	FieldNotes         = "notes"
)

const (
	CategoryGeneral    = "general"
	CategoryBooking    = "booking"
	CategoryEvent      = "event"
	CategoryBusiness   = "business"
	CategoryComplaint  = "complaint"
	CategoryCompliment = "compliment"
	CategoryMedia      = "media"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

const (
	ContactMethodEmail = "email"
	ContactMethodPhone = "phone"
	ContactMethodBoth  = "both"
)

const (
	ExpectedResponse24h    = "within_24h"
	ExpectedResponse48h    = "within_48h"
	ExpectedResponseWeek   = "within_week"
	ExpectedResponseNoRush = "no_rush"
)

const (
	StatusNew      = "new"
	StatusRead     = "read"
	StatusReplied  = "replied"
	StatusResolved = "resolved"
	StatusArchived = "archived"
)

var Statuses = []string{StatusNew, StatusRead, StatusReplied, StatusResolved, StatusArchived}

// statusTransitions is the contact inbox lattice. Resolved and archived are
// terminal; new advances to read automatically on first admin detail view.
var statusTransitions = map[string][]string{
	StatusNew:      {StatusRead, StatusReplied},
	StatusRead:     {StatusReplied, StatusResolved, StatusArchived},
	StatusReplied:  {StatusResolved, StatusArchived},
	StatusResolved: {},
	StatusArchived: {},
}

// CanTransition reports whether a submission may move between inbox statuses.
func CanTransition(from, to string) bool {
	allowed, ok := statusTransitions[from]
	if !ok {
		return false
	}

	return slices.Contains(allowed, to)
}

type Contact struct {
	ID                     string         `db:"id"`
	FirstName              string         `db:"first_name"`
	LastName               string         `db:"last_name"`
	Email                  string         `db:"email"`
	Phone                  string         `db:"phone"`
	Company                string         `db:"company"`
	Title                  string         `db:"title"`
	Subject                string         `db:"subject"`
	Message                string         `db:"message"`
	Category               string         `db:"category"`
	Priority               string         `db:"priority"`
	PreferredContactMethod string         `db:"preferred_contact_method"`
	ExpectedResponse       string         `db:"expected_response"`
	ConsentToMarketing     bool           `db:"consent_to_marketing"`
	Source                 string         `db:"source"`
	Referrer               string         `db:"referrer"`
	SessionID              string         `db:"session_id"`
	SubmissionAttempts     int            `db:"submission_attempts"`
	FormVersion            string         `db:"form_version"`
	Status                 string         `db:"status"`
	Tags                   pq.StringArray `db:"tags"`
	ResponseCount          int            `db:"response_count"`
	Notes                  string         `db:"notes"`
	model.Metadata
}

package model

import (
	"slices"

	"github.com/lib/pq"

	"harborview/shared/model"
)

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID            = "id"
	FieldEmail         = "email"
	FieldFirstName     = "first_name"
	FieldLastName      = "last_name"
	FieldPhone         = "phone"
	FieldLoyaltyStatus = "loyalty_status"
)

const (
	LoyaltyBronze   = "bronze"
	LoyaltySilver   = "silver"
	LoyaltyGold     = "gold"
	LoyaltyPlatinum = "platinum"
)

var LoyaltyStatuses = []string{LoyaltyBronze, LoyaltySilver, LoyaltyGold, LoyaltyPlatinum}

// VIP reports whether a loyalty status counts toward the VIP guest segment.
func VIP(loyaltyStatus string) bool {
	return slices.Contains([]string{LoyaltyGold, LoyaltyPlatinum}, loyaltyStatus)
}

type Guest struct {
	ID            string         `db:"id"`
	Email         string         `db:"email"`
	FirstName     string         `db:"first_name"`
	LastName      string         `db:"last_name"`
	Phone         string         `db:"phone"`
	Preferences   pq.StringArray `db:"preferences"`
	LoyaltyStatus string         `db:"loyalty_status"`
	model.Metadata
}

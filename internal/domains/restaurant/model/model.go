package model

import (
	"github.com/lib/pq"

	"harborview/shared/model"
)

const (
	TableName  = "restaurants"
	EntityName = "restaurant"

	FieldID       = "id"
	FieldName     = "name"
	FieldSlug     = "slug"
	FieldCuisine  = "cuisine"
	FieldLocation = "location"
	FieldStatus   = "status"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Restaurant struct {
	ID             string         `db:"id"`
	Name           string         `db:"name"`
	Slug           string         `db:"slug"`
	Description    string         `db:"description"`
	Cuisine        string         `db:"cuisine"`
	Location       string         `db:"location"`
	Phone          string         `db:"phone"`
	Email          string         `db:"email"`
	OperatingHours string         `db:"operating_hours"`
	Capacity       int            `db:"capacity"`
	Rating         float64        `db:"rating"`
	Status         string         `db:"status"`
	Image          string         `db:"image"`
	Features       pq.StringArray `db:"features"`
	model.Metadata
}

package model

import (
	"slices"

	"github.com/lib/pq"

	"harborview/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldName        = "name"
	FieldRoomType    = "room_type"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldCapacity    = "capacity"
	FieldSizeSqm     = "size_sqm"
	FieldIsAvailable = "is_available"
)

const (
	TypeStandard     = "standard"
	TypeDeluxe       = "deluxe"
	TypeSuite        = "suite"
	TypeFamily       = "family"
	TypePresidential = "presidential"
	TypePenthouse    = "penthouse"
)

var Types = []string{TypeStandard, TypeDeluxe, TypeSuite, TypeFamily, TypePresidential, TypePenthouse}

func ValidType(roomType string) bool {
	return slices.Contains(Types, roomType)
}

type Room struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	RoomType    string         `db:"room_type"`
	Description string         `db:"description"`
	Price       float64        `db:"price"`
	Capacity    int            `db:"capacity"`
	SizeSqm     float64        `db:"size_sqm"`
	Amenities   pq.StringArray `db:"amenities"`
	Images      pq.StringArray `db:"images"`
	IsAvailable bool           `db:"is_available"`
	model.Metadata
}
